package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"
	"github.com/SergeyBogomolovv/car-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/car-order-service/internal/handler/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, svc *mocks.MockOrderService) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func do(t *testing.T, router http.Handler, req *http.Request) (int, string) {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	receipt := entities.OrderReceipt{OrderID: 42, TotalPrice: decimal.NewFromInt(1_065_000)}

	testCases := []struct {
		name         string
		body         string
		headers      map[string]string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "existing car with option ids",
			body: `{"user_id":1,"car_id":12,"configuration_id":5,"option_ids":[7,8]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(d entities.OrderDraft) bool {
						return d.UserID == 1 && d.CarID != nil && *d.CarID == 12 && d.ModelID == nil &&
							d.ConfigurationID == 5 && len(d.Options) == 2 &&
							d.Options[0] == entities.OptionSelection{OptionID: 7, Quantity: 1} &&
							d.Options[1] == entities.OptionSelection{OptionID: 8, Quantity: 1}
					})).
					Return(receipt, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"order_id":42,"total_price":"1065000.00"}`,
		},
		{
			name:    "new car with quantities and idempotency key",
			body:    `{"user_id":1,"model_id":3,"configuration_id":5,"color":"Red","options":[{"option_id":7,"quantity":2},{"option_id":8}]}`,
			headers: map[string]string{"Idempotency-Key": "abc"},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(d entities.OrderDraft) bool {
						return d.CarID == nil && d.ModelID != nil && *d.ModelID == 3 && d.Color == "Red" &&
							d.IdempotencyKey == "abc" && len(d.Options) == 2 &&
							d.Options[0].Quantity == 2 && d.Options[1].Quantity == 1
					})).
					Return(receipt, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_id":42`,
		},
		{
			name: "replayed request",
			body: `{"user_id":1,"car_id":12,"configuration_id":5}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.OrderReceipt{OrderID: 42, TotalPrice: decimal.NewFromInt(1), Replayed: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":42`,
		},
		{
			name:         "neither car nor model",
			body:         `{"user_id":1,"configuration_id":5}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"ModelID":"required_without"`,
		},
		{
			name:         "quantity above limit",
			body:         `{"user_id":1,"car_id":12,"configuration_id":5,"options":[{"option_id":7,"quantity":101}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Quantity":"lte"`,
		},
		{
			name:         "missing user",
			body:         `{"car_id":12,"configuration_id":5}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"UserID":"required"`,
		},
		{
			name:         "unknown field",
			body:         `{"user_id":1,"car_id":12,"configuration_id":5,"discount":10}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `unknown field`,
		},
		{
			name:         "broken json",
			body:         `{"user_id":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `invalid request`,
		},
		{
			name: "user not found",
			body: `{"user_id":9,"car_id":12,"configuration_id":5}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.OrderReceipt{}, entities.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"user not found"`,
		},
		{
			name: "car taken",
			body: `{"user_id":1,"car_id":12,"configuration_id":5}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.OrderReceipt{}, entities.ErrCarNotAvailable).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `car is not available`,
		},
		{
			name: "configuration mismatch",
			body: `{"user_id":1,"car_id":12,"configuration_id":5}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.OrderReceipt{}, entities.ErrConfigurationMismatch).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `configuration belongs to a different model`,
		},
		{
			name: "invalid option",
			body: `{"user_id":1,"car_id":12,"configuration_id":5,"option_ids":[99]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.OrderReceipt{}, entities.ErrInvalidOption).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid option`,
		},
		{
			name: "internal error",
			body: `{"user_id":1,"car_id":12,"configuration_id":5}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.OrderReceipt{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			status, body := do(t, newRouter(t, svc), req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_ChangeStatus(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		body         string
		actor        string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "ok with actor",
			path:  "/orders/42/status",
			body:  `{"status":"Confirmed","notes":"deposit received"}`,
			actor: "7",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ChangeStatus(mock.Anything, mock.MatchedBy(func(c entities.StatusChange) bool {
						return c.OrderID == 42 && c.Status == "Confirmed" && c.Notes == "deposit received" &&
							c.ActorID != nil && *c.ActorID == 7 && c.DeliveryDate == nil
					})).
					Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "delivery date is passed through",
			path: "/orders/42/status",
			body: `{"status":"ReadyForDelivery","delivery_date":"2026-11-02T10:00:00Z"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				want := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)
				svc.EXPECT().
					ChangeStatus(mock.Anything, mock.MatchedBy(func(c entities.StatusChange) bool {
						return c.ActorID == nil && c.DeliveryDate != nil && c.DeliveryDate.Equal(want)
					})).
					Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "invalid transition",
			path: "/orders/42/status",
			body: `{"status":"Confirmed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ChangeStatus(mock.Anything, mock.Anything).
					Return(entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `invalid status transition`,
		},
		{
			name: "unknown status",
			path: "/orders/42/status",
			body: `{"status":"Shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ChangeStatus(mock.Anything, mock.Anything).
					Return(entities.ErrInvalidStatus).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid order status`,
		},
		{
			name: "order not found",
			path: "/orders/42/status",
			body: `{"status":"Confirmed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ChangeStatus(mock.Anything, mock.Anything).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "empty status",
			path:         "/orders/42/status",
			body:         `{"notes":"x"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Status":"required"`,
		},
		{
			name:         "bad order id",
			path:         "/orders/abc/status",
			body:         `{"status":"Confirmed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `order_id must be an integer`,
		},
		{
			name:         "bad actor header",
			path:         "/orders/42/status",
			body:         `{"status":"Confirmed"}`,
			actor:        "admin",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `X-Actor-ID must be a positive integer`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body))
			if tc.actor != "" {
				req.Header.Set("X-Actor-ID", tc.actor)
			}

			status, body := do(t, newRouter(t, svc), req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	actor := int64(2)
	order := entities.Order{
		ID:              42,
		UserID:          1,
		CarID:           12,
		ConfigurationID: 5,
		TotalPrice:      decimal.RequireFromString("1065000"),
		Status:          entities.StatusConfirmed,
		OrderDate:       time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		Options: []entities.OrderOption{
			{OrderID: 42, OptionID: 7, Quantity: 2, PriceAtOrder: decimal.NewFromInt(10_000)},
		},
		History: []entities.OrderStatusHistory{
			{Status: entities.StatusNew, ChangedAt: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)},
			{Status: entities.StatusConfirmed, ChangedAt: time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC), ChangedBy: &actor},
		},
	}

	testCases := []struct {
		name         string
		path         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			path: "/orders/42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(42)).Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_price":"1065000.00"`,
		},
		{
			name: "option line with subtotal",
			path: "/orders/42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(42)).Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"option_id":7,"quantity":2,"price_at_order":"10000.00","subtotal":"20000.00"}`,
		},
		{
			name: "not found",
			path: "/orders/43",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(43)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "negative id",
			path:         "/orders/-1",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `invalid request`,
		},
		{
			name: "internal error",
			path: "/orders/42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(42)).Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := do(t, newRouter(t, svc), httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp handler.Order
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, int64(42), resp.ID)
				assert.Equal(t, "Confirmed", resp.Status)
				require.Len(t, resp.Options, 1)
				assert.Equal(t, "10000.00", resp.Options[0].PriceAtOrder)
				require.Len(t, resp.History, 2)
				require.NotNil(t, resp.History[1].ChangedBy)
				assert.Equal(t, actor, *resp.History[1].ChangedBy)
			}
		})
	}
}

func TestHTTPHandler_ListUserOrders(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "default limit",
			path: "/users/1/orders",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListUserOrders(mock.Anything, int64(1), 0).
					Return([]entities.Order{{ID: 5, UserID: 1, Status: entities.StatusNew}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":5`,
		},
		{
			name: "explicit limit",
			path: "/users/1/orders?limit=3",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListUserOrders(mock.Anything, int64(1), 3).Return([]entities.Order{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:         "bad limit",
			path:         "/users/1/orders?limit=zero",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `limit must be a positive integer`,
		},
		{
			name: "unknown user",
			path: "/users/9/orders",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListUserOrders(mock.Anything, int64(9), 0).Return(nil, entities.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"user not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := do(t, newRouter(t, svc), httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().DeleteOrder(mock.Anything, int64(42)).Return(nil).Once()

		status, _ := do(t, newRouter(t, svc), httptest.NewRequest(http.MethodDelete, "/admin/orders/42", nil))
		assert.Equal(t, http.StatusNoContent, status)
	})

	t.Run("not found", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().DeleteOrder(mock.Anything, int64(42)).Return(entities.ErrOrderNotFound).Once()

		status, body := do(t, newRouter(t, svc), httptest.NewRequest(http.MethodDelete, "/admin/orders/42", nil))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, `"order not found"`)
	})
}
