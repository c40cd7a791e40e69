package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"
)

// ChangeStatus moves the order along the status graph and appends one history
// entry. Cancellation releases the car and delivery marks it sold, all in the
// same transaction.
func (s *orderService) ChangeStatus(ctx context.Context, change entities.StatusChange) error {
	target, err := entities.ParseOrderStatus(change.Status)
	if err != nil {
		return err
	}

	var from entities.OrderStatus
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrderForUpdate(ctx, change.OrderID)
		if err != nil {
			return err
		}
		if err := order.Status.TransitionTo(target); err != nil {
			return err
		}
		from = order.Status

		now := s.now()
		order.Status = target
		order.UpdatedAt = now
		switch {
		case change.DeliveryDate != nil:
			order.DeliveryDate = change.DeliveryDate
		case target == entities.StatusDelivered:
			order.DeliveryDate = &now
		}
		if change.Notes != "" {
			order.Notes = change.Notes
		}

		if err := s.orders.UpdateOrderStatus(ctx, order); err != nil {
			return err
		}
		if err := s.orders.AppendHistory(ctx, entities.OrderStatusHistory{
			OrderID:   order.ID,
			Status:    target,
			ChangedAt: now,
			ChangedBy: change.ActorID,
			Notes:     change.Notes,
		}); err != nil {
			return err
		}

		switch target {
		case entities.StatusCancelled:
			return s.allocator.Release(ctx, order.CarID)
		case entities.StatusDelivered:
			return s.allocator.MarkSold(ctx, order.CarID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(change.OrderID)
	statusChanges.WithLabelValues(target.String()).Inc()
	s.logger.Info("order status changed",
		slog.Int64("order_id", change.OrderID),
		slog.String("from", from.String()),
		slog.String("to", target.String()),
	)
	return nil
}
