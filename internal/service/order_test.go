package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"
	"github.com/SergeyBogomolovv/car-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/car-order-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/car-order-service/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testListLimit = 50

type testDeps struct {
	tx        *txMocks.MockManager
	catalog   *mocks.MockCatalogReader
	orders    *mocks.MockOrderRepo
	allocator *mocks.MockCarAllocator
	cache     *mocks.MockCache
	logger    *slog.Logger
}

func newTestDeps(t *testing.T) testDeps {
	d := testDeps{
		tx:        txMocks.NewMockManager(t),
		catalog:   mocks.NewMockCatalogReader(t),
		orders:    mocks.NewMockOrderRepo(t),
		allocator: mocks.NewMockCarAllocator(t),
		cache:     mocks.NewMockCache(t),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).
		Maybe()

	return d
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(d testDeps)

	dbError := errors.New("db error")

	user := entities.User{ID: 1, Email: "buyer@example.com"}
	model := entities.Model{ID: 10, BasePrice: decimal.NewFromInt(1_000_000), IsActive: true}
	conf := entities.Configuration{ID: 20, ModelID: 10, AdditionalPrice: decimal.NewFromInt(50_000)}
	otherConf := entities.Configuration{ID: 21, ModelID: 11, AdditionalPrice: decimal.NewFromInt(1)}
	winter := entities.AdditionalOption{ID: 100, Name: "Winter pack", Price: decimal.NewFromInt(10_000)}
	mats := entities.AdditionalOption{ID: 101, Name: "Mats", Price: decimal.NewFromInt(5_000)}
	car := entities.Car{ID: 7, ModelID: 10, Status: entities.CarReserved}

	existingCarDraft := entities.OrderDraft{
		UserID:          1,
		CarID:           ptr(int64(7)),
		ConfigurationID: 20,
		Options: []entities.OptionSelection{
			{OptionID: 100, Quantity: 1},
			{OptionID: 101, Quantity: 1},
		},
		Notes: "call before delivery",
	}

	testCases := []struct {
		name         string
		draft        entities.OrderDraft
		mockBehavior MockBehavior
		want         entities.OrderReceipt
		wantErr      error
	}{
		{
			name:  "existing car with two options",
			draft: existingCarDraft,
			mockBehavior: func(d testDeps) {
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(user, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(20)).Return(conf, nil)
				d.catalog.EXPECT().GetOptions(mock.Anything, []int64{100, 101}).
					Return(map[int64]entities.AdditionalOption{100: winter, 101: mats}, nil)
				d.allocator.EXPECT().Allocate(mock.Anything, entities.AllocationRequest{CarID: ptr(int64(7))}).
					Return(entities.Allocation{Car: car, Model: model}, nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.UserID == 1 && o.CarID == 7 && o.ConfigurationID == 20 &&
						o.Status == entities.StatusNew && o.Notes == "call before delivery" &&
						o.TotalPrice.Equal(decimal.NewFromInt(1_065_000))
				})).Return(int64(500), nil)
				d.orders.EXPECT().SaveOrderOptions(mock.Anything, int64(500), mock.MatchedBy(func(opts []entities.OrderOption) bool {
					return len(opts) == 2 &&
						opts[0].OptionID == 100 && opts[0].PriceAtOrder.Equal(winter.Price) && opts[0].Quantity == 1 &&
						opts[1].OptionID == 101 && opts[1].PriceAtOrder.Equal(mats.Price)
				})).Return(nil)
				d.orders.EXPECT().AppendHistory(mock.Anything, mock.MatchedBy(func(h entities.OrderStatusHistory) bool {
					return h.OrderID == 500 && h.Status == entities.StatusNew &&
						h.ChangedBy != nil && *h.ChangedBy == 1 && h.Notes == "call before delivery"
				})).Return(nil)
			},
			want: entities.OrderReceipt{OrderID: 500, TotalPrice: decimal.NewFromInt(1_065_000)},
		},
		{
			name: "new car from model without options",
			draft: entities.OrderDraft{
				UserID:          1,
				ModelID:         ptr(int64(10)),
				ConfigurationID: 20,
				Color:           "Blue",
			},
			mockBehavior: func(d testDeps) {
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(user, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(20)).Return(conf, nil)
				d.allocator.EXPECT().Allocate(mock.Anything, entities.AllocationRequest{ModelID: ptr(int64(10)), Color: "Blue"}).
					Return(entities.Allocation{Car: entities.Car{ID: 8, ModelID: 10}, Model: model, Created: true}, nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(int64(501), nil)
				d.orders.EXPECT().SaveOrderOptions(mock.Anything, int64(501), []entities.OrderOption{}).Return(nil)
				d.orders.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil)
			},
			want: entities.OrderReceipt{OrderID: 501, TotalPrice: decimal.NewFromInt(1_050_000)},
		},
		{
			name: "duplicate option ids are merged",
			draft: entities.OrderDraft{
				UserID:          1,
				CarID:           ptr(int64(7)),
				ConfigurationID: 20,
				Options: []entities.OptionSelection{
					{OptionID: 101, Quantity: 1},
					{OptionID: 101, Quantity: 2},
				},
			},
			mockBehavior: func(d testDeps) {
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(user, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(20)).Return(conf, nil)
				d.catalog.EXPECT().GetOptions(mock.Anything, []int64{101}).
					Return(map[int64]entities.AdditionalOption{101: mats}, nil)
				d.allocator.EXPECT().Allocate(mock.Anything, mock.Anything).
					Return(entities.Allocation{Car: car, Model: model}, nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(int64(502), nil)
				d.orders.EXPECT().SaveOrderOptions(mock.Anything, int64(502), mock.MatchedBy(func(opts []entities.OrderOption) bool {
					return len(opts) == 1 && opts[0].Quantity == 3
				})).Return(nil)
				d.orders.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil)
			},
			want: entities.OrderReceipt{OrderID: 502, TotalPrice: decimal.NewFromInt(1_065_000)},
		},
		{
			name:  "user not found",
			draft: existingCarDraft,
			mockBehavior: func(d testDeps) {
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrUserNotFound,
		},
		{
			name:  "configuration not found",
			draft: existingCarDraft,
			mockBehavior: func(d testDeps) {
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(user, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(20)).
					Return(entities.Configuration{}, entities.ErrConfigurationNotFound)
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name: "configuration mismatch is caught before a new car is created",
			draft: entities.OrderDraft{
				UserID:          1,
				ModelID:         ptr(int64(10)),
				ConfigurationID: 21,
			},
			mockBehavior: func(d testDeps) {
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(user, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(21)).Return(otherConf, nil)
			},
			wantErr: entities.ErrConfigurationMismatch,
		},
		{
			name: "configuration mismatch with existing car",
			draft: entities.OrderDraft{
				UserID:          1,
				CarID:           ptr(int64(7)),
				ConfigurationID: 21,
			},
			mockBehavior: func(d testDeps) {
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(user, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(21)).Return(otherConf, nil)
				d.allocator.EXPECT().Allocate(mock.Anything, mock.Anything).
					Return(entities.Allocation{Car: car, Model: model}, nil)
			},
			wantErr: entities.ErrConfigurationMismatch,
		},
		{
			name:  "unknown option",
			draft: existingCarDraft,
			mockBehavior: func(d testDeps) {
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(user, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(20)).Return(conf, nil)
				d.catalog.EXPECT().GetOptions(mock.Anything, []int64{100, 101}).
					Return(map[int64]entities.AdditionalOption{100: winter}, nil)
			},
			wantErr: entities.ErrInvalidOption,
		},
		{
			name: "invalid quantity is rejected before the transaction",
			draft: entities.OrderDraft{
				UserID:          1,
				CarID:           ptr(int64(7)),
				ConfigurationID: 20,
				Options:         []entities.OptionSelection{{OptionID: 100, Quantity: 0}},
			},
			mockBehavior: func(d testDeps) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name: "merged quantity above limit",
			draft: entities.OrderDraft{
				UserID:          1,
				CarID:           ptr(int64(7)),
				ConfigurationID: 20,
				Options: []entities.OptionSelection{
					{OptionID: 100, Quantity: entities.MaxOptionQuantity},
					{OptionID: 100, Quantity: 1},
				},
			},
			mockBehavior: func(d testDeps) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:  "car taken",
			draft: existingCarDraft,
			mockBehavior: func(d testDeps) {
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(user, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(20)).Return(conf, nil)
				d.catalog.EXPECT().GetOptions(mock.Anything, mock.Anything).
					Return(map[int64]entities.AdditionalOption{100: winter, 101: mats}, nil)
				d.allocator.EXPECT().Allocate(mock.Anything, mock.Anything).
					Return(entities.Allocation{}, entities.ErrCarNotAvailable)
			},
			wantErr: entities.ErrCarNotAvailable,
		},
		{
			name:  "active order index rejects the car",
			draft: existingCarDraft,
			mockBehavior: func(d testDeps) {
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(user, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(20)).Return(conf, nil)
				d.catalog.EXPECT().GetOptions(mock.Anything, mock.Anything).
					Return(map[int64]entities.AdditionalOption{100: winter, 101: mats}, nil)
				d.allocator.EXPECT().Allocate(mock.Anything, mock.Anything).
					Return(entities.Allocation{Car: car, Model: model}, nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(int64(0), entities.ErrCarNotAvailable)
			},
			wantErr: entities.ErrCarNotAvailable,
		},
		{
			name:  "saving options fails",
			draft: existingCarDraft,
			mockBehavior: func(d testDeps) {
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(user, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(20)).Return(conf, nil)
				d.catalog.EXPECT().GetOptions(mock.Anything, mock.Anything).
					Return(map[int64]entities.AdditionalOption{100: winter, 101: mats}, nil)
				d.allocator.EXPECT().Allocate(mock.Anything, mock.Anything).
					Return(entities.Allocation{Car: car, Model: model}, nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(int64(503), nil)
				d.orders.EXPECT().SaveOrderOptions(mock.Anything, int64(503), mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name: "replay by idempotency key",
			draft: entities.OrderDraft{
				UserID:          1,
				CarID:           ptr(int64(7)),
				ConfigurationID: 20,
				IdempotencyKey:  "key-1",
			},
			mockBehavior: func(d testDeps) {
				d.orders.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "key-1").
					Return(entities.Order{ID: 400, UserID: 1, TotalPrice: decimal.NewFromInt(1_050_000)}, nil)
			},
			want: entities.OrderReceipt{OrderID: 400, TotalPrice: decimal.NewFromInt(1_050_000), Replayed: true},
		},
		{
			name: "idempotency key lost the race",
			draft: entities.OrderDraft{
				UserID:          1,
				CarID:           ptr(int64(7)),
				ConfigurationID: 20,
				IdempotencyKey:  "key-2",
			},
			mockBehavior: func(d testDeps) {
				d.orders.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "key-2").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(user, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(20)).Return(conf, nil)
				d.allocator.EXPECT().Allocate(mock.Anything, mock.Anything).
					Return(entities.Allocation{Car: car, Model: model}, nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(int64(0), entities.ErrDuplicateRequest)
				d.orders.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "key-2").
					Return(entities.Order{ID: 401, UserID: 1, TotalPrice: decimal.NewFromInt(1_050_000)}, nil).Once()
			},
			want: entities.OrderReceipt{OrderID: 401, TotalPrice: decimal.NewFromInt(1_050_000), Replayed: true},
		},
		{
			name: "idempotency key of another user",
			draft: entities.OrderDraft{
				UserID:          2,
				CarID:           ptr(int64(7)),
				ConfigurationID: 20,
				IdempotencyKey:  "key-1",
			},
			mockBehavior: func(d testDeps) {
				d.orders.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "key-1").
					Return(entities.Order{ID: 400, UserID: 1, TotalPrice: decimal.NewFromInt(1_050_000)}, nil)
			},
			wantErr: entities.ErrIdempotencyKeyReused,
		},
		{
			name: "idempotency key of another user wins the race",
			draft: entities.OrderDraft{
				UserID:          2,
				CarID:           ptr(int64(7)),
				ConfigurationID: 20,
				IdempotencyKey:  "key-4",
			},
			mockBehavior: func(d testDeps) {
				d.orders.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "key-4").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				d.catalog.EXPECT().GetUser(mock.Anything, int64(2)).Return(entities.User{ID: 2}, nil)
				d.catalog.EXPECT().GetConfiguration(mock.Anything, int64(20)).Return(conf, nil)
				d.allocator.EXPECT().Allocate(mock.Anything, mock.Anything).
					Return(entities.Allocation{Car: car, Model: model}, nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(int64(0), entities.ErrDuplicateRequest)
				d.orders.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "key-4").
					Return(entities.Order{ID: 402, UserID: 1}, nil).Once()
			},
			wantErr: entities.ErrIdempotencyKeyReused,
		},
		{
			name: "idempotency lookup fails",
			draft: entities.OrderDraft{
				UserID:          1,
				CarID:           ptr(int64(7)),
				ConfigurationID: 20,
				IdempotencyKey:  "key-3",
			},
			mockBehavior: func(d testDeps) {
				d.orders.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "key-3").Return(entities.Order{}, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			tc.mockBehavior(d)

			svc := service.NewOrderService(d.logger, d.tx, d.catalog, d.orders, d.allocator, d.cache, testListLimit)

			got, err := svc.CreateOrder(context.Background(), tc.draft)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want.OrderID, got.OrderID)
			assert.True(t, tc.want.TotalPrice.Equal(got.TotalPrice), "got %s, want %s", got.TotalPrice, tc.want.TotalPrice)
			assert.Equal(t, tc.want.Replayed, got.Replayed)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	type MockBehavior func(d testDeps)

	order := entities.Order{ID: 1, Status: entities.StatusNew}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		want         entities.Order
		wantErr      error
	}{
		{
			name: "from cache",
			mockBehavior: func(d testDeps) {
				d.cache.EXPECT().Get(int64(1)).Return(order, true).Once()
			},
			want: order,
		},
		{
			name: "from repo and set to cache",
			mockBehavior: func(d testDeps) {
				d.cache.EXPECT().Get(int64(1)).Return(entities.Order{}, false).Once()
				d.orders.EXPECT().GetOrder(mock.Anything, int64(1)).Return(order, nil).Once()
				d.cache.EXPECT().Set(int64(1), order).Once()
			},
			want: order,
		},
		{
			name: "not found is not retried",
			mockBehavior: func(d testDeps) {
				d.cache.EXPECT().Get(int64(1)).Return(entities.Order{}, false).Once()
				d.orders.EXPECT().GetOrder(mock.Anything, int64(1)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "transient error is retried",
			mockBehavior: func(d testDeps) {
				d.cache.EXPECT().Get(int64(1)).Return(entities.Order{}, false).Once()
				d.orders.EXPECT().GetOrder(mock.Anything, int64(1)).Return(entities.Order{}, errors.New("conn reset")).Once()
				d.orders.EXPECT().GetOrder(mock.Anything, int64(1)).Return(order, nil).Once()
				d.cache.EXPECT().Set(int64(1), order).Once()
			},
			want: order,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			tc.mockBehavior(d)

			svc := service.NewOrderService(d.logger, d.tx, d.catalog, d.orders, d.allocator, d.cache, testListLimit)

			got, err := svc.GetOrder(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_GetOrder_StaleLoadNotCached(t *testing.T) {
	d := newTestDeps(t)
	svc := service.NewOrderService(d.logger, d.tx, d.catalog, d.orders, d.allocator, d.cache, testListLimit)

	stale := entities.Order{ID: 1, CarID: 7, Status: entities.StatusNew}
	confirmed := entities.Order{ID: 1, CarID: 7, Status: entities.StatusConfirmed}

	d.cache.EXPECT().Get(int64(1)).Return(entities.Order{}, false).Twice()

	// Пока заказ читается, параллельно меняется его статус.
	d.orders.EXPECT().GetOrder(mock.Anything, int64(1)).
		RunAndReturn(func(ctx context.Context, _ int64) (entities.Order, error) {
			require.NoError(t, svc.ChangeStatus(ctx, entities.StatusChange{OrderID: 1, Status: "Confirmed"}))
			return stale, nil
		}).Once()
	d.orders.EXPECT().GetOrderForUpdate(mock.Anything, int64(1)).Return(stale, nil).Once()
	d.orders.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything).Return(nil).Once()
	d.orders.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil).Once()
	d.cache.EXPECT().Delete(int64(1)).Once()

	got, err := svc.GetOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, stale, got)

	// следующая загрузка уже кешируется
	d.orders.EXPECT().GetOrder(mock.Anything, int64(1)).Return(confirmed, nil).Once()
	d.cache.EXPECT().Set(int64(1), confirmed).Once()

	got, err = svc.GetOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, confirmed, got)
	d.cache.AssertNotCalled(t, "Set", int64(1), stale)
}

func TestOrderService_WarmUpCache(t *testing.T) {
	t.Run("loads latest orders", func(t *testing.T) {
		d := newTestDeps(t)
		orders := []entities.Order{{ID: 3}, {ID: 2}}
		d.orders.EXPECT().LatestOrders(mock.Anything, 2).Return(orders, nil)
		d.cache.EXPECT().Set(int64(3), orders[0]).Once()
		d.cache.EXPECT().Set(int64(2), orders[1]).Once()

		svc := service.NewOrderService(d.logger, d.tx, d.catalog, d.orders, d.allocator, d.cache, testListLimit)
		require.NoError(t, svc.WarmUpCache(context.Background(), 2))
	})

	t.Run("zero count does nothing", func(t *testing.T) {
		d := newTestDeps(t)
		svc := service.NewOrderService(d.logger, d.tx, d.catalog, d.orders, d.allocator, d.cache, testListLimit)
		require.NoError(t, svc.WarmUpCache(context.Background(), 0))
	})

	t.Run("repo error", func(t *testing.T) {
		d := newTestDeps(t)
		dbError := errors.New("db error")
		d.orders.EXPECT().LatestOrders(mock.Anything, 5).Return(nil, dbError)

		svc := service.NewOrderService(d.logger, d.tx, d.catalog, d.orders, d.allocator, d.cache, testListLimit)
		assert.ErrorIs(t, svc.WarmUpCache(context.Background(), 5), dbError)
	})
}

func TestOrderService_ListUserOrders(t *testing.T) {
	testCases := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "explicit limit", limit: 10, wantLimit: 10},
		{name: "zero means default", limit: 0, wantLimit: testListLimit},
		{name: "too large is clamped", limit: 10_000, wantLimit: testListLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.catalog.EXPECT().GetUser(mock.Anything, int64(1)).Return(entities.User{ID: 1}, nil)
			d.orders.EXPECT().ListUserOrders(mock.Anything, int64(1), tc.wantLimit).
				Return([]entities.Order{{ID: 9, UserID: 1}}, nil)

			svc := service.NewOrderService(d.logger, d.tx, d.catalog, d.orders, d.allocator, d.cache, testListLimit)

			got, err := svc.ListUserOrders(context.Background(), 1, tc.limit)
			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}

	t.Run("unknown user", func(t *testing.T) {
		d := newTestDeps(t)
		d.catalog.EXPECT().GetUser(mock.Anything, int64(2)).Return(entities.User{}, entities.ErrUserNotFound)

		svc := service.NewOrderService(d.logger, d.tx, d.catalog, d.orders, d.allocator, d.cache, testListLimit)

		_, err := svc.ListUserOrders(context.Background(), 2, 10)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	type MockBehavior func(d testDeps)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "active order releases the car",
			mockBehavior: func(d testDeps) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, CarID: 7, Status: entities.StatusConfirmed}, nil)
				d.allocator.EXPECT().Release(mock.Anything, int64(7)).Return(nil)
				d.orders.EXPECT().DeleteOrder(mock.Anything, int64(1)).Return(nil)
				d.cache.EXPECT().Delete(int64(1)).Once()
			},
		},
		{
			name: "delivered order keeps the car sold",
			mockBehavior: func(d testDeps) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, CarID: 7, Status: entities.StatusDelivered}, nil)
				d.orders.EXPECT().DeleteOrder(mock.Anything, int64(1)).Return(nil)
				d.cache.EXPECT().Delete(int64(1)).Once()
			},
		},
		{
			name: "not found",
			mockBehavior: func(d testDeps) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, int64(1)).
					Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			tc.mockBehavior(d)

			svc := service.NewOrderService(d.logger, d.tx, d.catalog, d.orders, d.allocator, d.cache, testListLimit)

			err := svc.DeleteOrder(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
