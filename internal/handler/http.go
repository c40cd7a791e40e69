package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"
	"github.com/SergeyBogomolovv/car-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	// Идентификатор сотрудника проставляет API-шлюз после аутентификации.
	actorIDHeader = "X-Actor-ID"
)

type OrderService interface {
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.OrderReceipt, error)
	ChangeStatus(ctx context.Context, change entities.StatusChange) error
	GetOrder(ctx context.Context, orderID int64) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID int64, limit int) ([]entities.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", instrument("create_order", h.CreateOrder))
	r.Get("/orders/{order_id}", instrument("get_order", h.GetOrder))
	r.Put("/orders/{order_id}/status", instrument("change_status", h.ChangeStatus))
	r.Get("/users/{user_id}/orders", instrument("list_user_orders", h.ListUserOrders))
	r.Delete("/admin/orders/{order_id}", instrument("delete_order", h.DeleteOrder))
}

// CreateOrder создаёт заказ.
// @Summary      Создать заказ
// @Description  Резервирует машину со склада (car_id) или создаёт новую машину модели (model_id), считает цену и сохраняет заказ
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Ключ идемпотентности"
// @Param        request          body      CreateOrderRequest  true   "Заказ"
// @Success      201  {object}  CreateOrderResponse
// @Success      200  {object}  CreateOrderResponse "Повтор запроса с тем же ключом"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь, модель, комплектация или машина не найдены"
// @Failure      409  {object}  utils.ErrorResponse "Машина уже занята или ключ идемпотентности принадлежит другому пользователю"
// @Failure      422  {object}  utils.ErrorResponse "Комплектация другой модели или модель снята с продажи"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	key := strings.TrimSpace(r.Header.Get(idempotencyKeyHeader))
	if err := h.validate.Var(key, "max=128"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	receipt, err := h.svc.CreateOrder(ctx, CreateOrderRequestToDraft(req, key))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to create order", slog.Int64("user_id", req.UserID))
		return
	}

	code := http.StatusCreated
	if receipt.Replayed {
		code = http.StatusOK
	}
	utils.WriteJSON(w, ReceiptToJSON(receipt), code)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Возвращает заказ с опциями и историей статусов
// @Tags         orders
// @Produce      json
// @Param        order_id   path      int  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := h.pathID(r, "order_id")
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, orderID)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to get order", slog.Int64("order_id", orderID))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ChangeStatus меняет статус заказа.
// @Summary      Сменить статус заказа
// @Description  New → Confirmed → InProduction → ReadyForDelivery → Delivered; Cancelled из любого незавершённого статуса
// @Tags         orders
// @Accept       json
// @Param        order_id    path      int                  true   "Идентификатор заказа"
// @Param        X-Actor-ID  header    int                  false  "Кто меняет статус"
// @Param        request     body      ChangeStatusRequest  true   "Новый статус"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации или неизвестный статус"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/status [put]
func (h *HTTPHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := h.pathID(r, "order_id")
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	actorID, err := h.actorID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req ChangeStatusRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err = h.svc.ChangeStatus(ctx, entities.StatusChange{
		OrderID:      orderID,
		Status:       req.Status,
		Notes:        req.Notes,
		ActorID:      actorID,
		DeliveryDate: req.DeliveryDate,
	})
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to change order status",
			slog.Int64("order_id", orderID), slog.String("status", req.Status))
		return
	}

	utils.WriteNoContent(w)
}

// ListUserOrders возвращает заказы пользователя.
// @Summary      Заказы пользователя
// @Description  Последние заказы пользователя без опций и истории
// @Tags         orders
// @Produce      json
// @Param        user_id  path      int  true   "Идентификатор пользователя"
// @Param        limit    query     int  false  "Сколько заказов вернуть"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/orders [get]
func (h *HTTPHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := h.pathID(r, "user_id")
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err == nil {
			err = h.validate.Var(limit, "gte=1")
		}
		if err != nil {
			utils.WriteValidationError(w, errors.New("limit must be a positive integer"))
			return
		}
	}

	orders, err := h.svc.ListUserOrders(ctx, userID, limit)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to list user orders", slog.Int64("user_id", userID))
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// DeleteOrder удаляет заказ.
// @Summary      Удалить заказ
// @Description  Административное удаление заказа вместе с опциями и историей; машина незавершённого заказа возвращается на склад
// @Tags         admin
// @Param        order_id   path      int  true  "Идентификатор заказа"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{order_id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := h.pathID(r, "order_id")
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.DeleteOrder(ctx, orderID); err != nil {
		h.writeServiceError(ctx, w, err, "failed to delete order", slog.Int64("order_id", orderID))
		return
	}

	utils.WriteNoContent(w)
}

func (h *HTTPHandler) pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	if err := h.validate.Var(id, "gt=0"); err != nil {
		return 0, err
	}
	return id, nil
}

func (h *HTTPHandler) actorID(r *http.Request) (*int64, error) {
	raw := r.Header.Get(actorIDHeader)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.New(actorIDHeader + " must be a positive integer")
	}
	return &id, nil
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error, msg string, attrs ...any) {
	code := errorStatus(err)
	if code == http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, append(attrs, slog.Any("error", err))...)
		utils.WriteError(w, "internal server error", code)
		return
	}

	h.logger.DebugContext(ctx, msg, append(attrs, slog.Any("error", err))...)
	utils.WriteError(w, err.Error(), code)
}

func instrument(operation string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inProgress := orderRequestsInProgress.WithLabelValues(operation)
		inProgress.Inc()
		defer inProgress.Dec()

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		orderRequestTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
		orderRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
