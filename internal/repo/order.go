package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const (
	activeCarIndex      = "orders_active_car_uidx"
	idempotencyKeyIndex = "orders_idempotency_key_uidx"
)

type orderRepo struct {
	postgresRepo
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *orderRepo) CreateOrder(ctx context.Context, o entities.Order) (int64, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"user_id", "car_id", "configuration_id", "total_price", "order_status",
			"order_date", "delivery_date", "notes", "idempotency_key", "updated_at",
		).
		Values(
			o.UserID, o.CarID, o.ConfigurationID, o.TotalPrice, string(o.Status),
			o.OrderDate, nullTime(o.DeliveryDate), nullString(o.Notes), nullString(o.IdempotencyKey), o.UpdatedAt,
		).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	err := r.getContext(ctx, &id, query, args...)
	if constraint, ok := uniqueConstraint(err); ok {
		switch constraint {
		case activeCarIndex:
			return 0, entities.ErrCarNotAvailable
		case idempotencyKeyIndex:
			return 0, entities.ErrDuplicateRequest
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return id, nil
}

func (r *orderRepo) SaveOrderOptions(ctx context.Context, orderID int64, options []entities.OrderOption) error {
	if len(options) == 0 {
		return nil
	}

	q := r.qb.Insert("order_options").Columns(optionColumns...)
	for _, opt := range options {
		q = q.Values(orderID, opt.OptionID, opt.Quantity, opt.PriceAtOrder)
	}
	query, args := q.MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order options: %w", err)
	}
	return nil
}

// AppendHistory only ever inserts: history rows are never updated.
func (r *orderRepo) AppendHistory(ctx context.Context, h entities.OrderStatusHistory) error {
	query, args := r.qb.Insert("order_status_history").
		Columns("order_id", "status", "changed_at", "changed_by", "notes").
		Values(h.OrderID, string(h.Status), h.ChangedAt, nullInt64(h.ChangedBy), nullString(h.Notes)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}
	return nil
}

// GetOrderForUpdate locks the order header. Options and history are not loaded.
func (r *orderRepo) GetOrderForUpdate(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix("FOR UPDATE").
		MustSql()

	return r.getOrderHeader(ctx, query, args...)
}

func (r *orderRepo) GetOrderByIdempotencyKey(ctx context.Context, key string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"idempotency_key": key}).
		MustSql()

	return r.getOrderHeader(ctx, query, args...)
}

func (r *orderRepo) getOrderHeader(ctx context.Context, query string, args ...any) (entities.Order, error) {
	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order, nil, nil)
}

func (r *orderRepo) UpdateOrderStatus(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("order_status", string(o.Status)).
		Set("delivery_date", nullTime(o.DeliveryDate)).
		Set("notes", nullString(o.Notes)).
		Set("updated_at", o.UpdatedAt).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

// GetOrder returns the order with its options and full status history.
func (r *orderRepo) GetOrder(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	result, err := r.loadDetails(ctx, []Order{order})
	if err != nil {
		return entities.Order{}, err
	}
	return result[0], nil
}

func (r *orderRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	// Последние count заказов вместе с опциями и историей
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("order_date DESC", "id DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return r.loadDetails(ctx, orders)
}

// ListUserOrders returns order headers only, newest first.
func (r *orderRepo) ListUserOrders(ctx context.Context, userID int64, limit int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("order_date DESC", "id DESC").
		Limit(uint64(limit)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select user orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		order, err := OrderToEntity(o, nil, nil)
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, nil
}

// DeleteOrder removes the order; options and history go with it by cascade.
func (r *orderRepo) DeleteOrder(ctx context.Context, orderID int64) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepo) loadDetails(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args := r.qb.Select(optionColumns...).
		From("order_options").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "option_id").
		MustSql()

	var options []OrderOption
	if err := r.selectContext(ctx, &options, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order options: %w", err)
	}
	optionsMap := make(map[int64][]OrderOption, len(orders))
	for _, opt := range options {
		optionsMap[opt.OrderID] = append(optionsMap[opt.OrderID], opt)
	}

	query, args = r.qb.Select(historyColumn...).
		From("order_status_history").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "changed_at", "id").
		MustSql()

	var history []OrderStatusHistory
	if err := r.selectContext(ctx, &history, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select status history: %w", err)
	}
	historyMap := make(map[int64][]OrderStatusHistory, len(orders))
	for _, h := range history {
		historyMap[h.OrderID] = append(historyMap[h.OrderID], h)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		order, err := OrderToEntity(o, optionsMap[o.ID], historyMap[o.ID])
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, nil
}
