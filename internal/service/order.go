package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"
	"github.com/SergeyBogomolovv/car-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/car-order-service/pkg/utils"
)

type CatalogReader interface {
	GetUser(ctx context.Context, userID int64) (entities.User, error)
	GetModel(ctx context.Context, modelID int64) (entities.Model, error)
	GetConfiguration(ctx context.Context, configurationID int64) (entities.Configuration, error)
	// GetOptions returns only the options that exist.
	GetOptions(ctx context.Context, ids []int64) (map[int64]entities.AdditionalOption, error)
}

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) (int64, error)
	SaveOrderOptions(ctx context.Context, orderID int64, options []entities.OrderOption) error
	AppendHistory(ctx context.Context, h entities.OrderStatusHistory) error

	GetOrderForUpdate(ctx context.Context, orderID int64) (entities.Order, error)
	GetOrderByIdempotencyKey(ctx context.Context, key string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, o entities.Order) error

	GetOrder(ctx context.Context, orderID int64) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	ListUserOrders(ctx context.Context, userID int64, limit int) ([]entities.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

type CarAllocator interface {
	Allocate(ctx context.Context, req entities.AllocationRequest) (entities.Allocation, error)
	Release(ctx context.Context, carID int64) error
	MarkSold(ctx context.Context, carID int64) error
}

type Cache interface {
	Get(orderID int64) (entities.Order, bool)
	Set(orderID int64, order entities.Order)
	Delete(orderID int64)
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	catalog   CatalogReader
	orders    OrderRepo
	allocator CarAllocator
	cache     Cache
	listLimit int
	now       func() time.Time

	// cacheGen растёт при каждой инвалидации: загрузка, начатая до неё,
	// не должна положить в кеш устаревший заказ.
	cacheMu  sync.Mutex
	cacheGen uint64
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	catalog CatalogReader,
	orders OrderRepo,
	allocator CarAllocator,
	cache Cache,
	listLimit int,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		catalog:   catalog,
		orders:    orders,
		allocator: allocator,
		cache:     cache,
		listLimit: listLimit,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder allocates a car, prices the order and writes the order, its
// options and the first history entry in one transaction.
func (s *orderService) CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.OrderReceipt, error) {
	if draft.IdempotencyKey != "" {
		receipt, err := s.replay(ctx, draft.UserID, draft.IdempotencyKey)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			return entities.OrderReceipt{}, err
		}
	}

	selections, err := mergeSelections(draft.Options)
	if err != nil {
		return entities.OrderReceipt{}, err
	}

	var (
		receipt entities.OrderReceipt
		path    string
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.catalog.GetUser(ctx, draft.UserID); err != nil {
			return err
		}

		conf, err := s.catalog.GetConfiguration(ctx, draft.ConfigurationID)
		if err != nil {
			return err
		}
		// Для новой машины модель известна заранее: не создаём машину зря.
		if draft.CarID == nil && draft.ModelID != nil && conf.ModelID != *draft.ModelID {
			return fmt.Errorf("%w: configuration %d is for model %d, not %d",
				entities.ErrConfigurationMismatch, conf.ID, conf.ModelID, *draft.ModelID)
		}

		priced, err := s.resolveOptions(ctx, selections)
		if err != nil {
			return err
		}

		alloc, err := s.allocator.Allocate(ctx, entities.AllocationRequest{
			CarID:   draft.CarID,
			ModelID: draft.ModelID,
			Color:   draft.Color,
		})
		if err != nil {
			return err
		}

		total, err := Price(alloc.Model, conf, priced)
		if err != nil {
			return err
		}

		now := s.now()
		order := entities.Order{
			UserID:          draft.UserID,
			CarID:           alloc.Car.ID,
			ConfigurationID: conf.ID,
			TotalPrice:      total,
			Status:          entities.StatusNew,
			OrderDate:       now,
			Notes:           draft.Notes,
			IdempotencyKey:  draft.IdempotencyKey,
			UpdatedAt:       now,
		}
		orderID, err := s.orders.CreateOrder(ctx, order)
		if err != nil {
			return err
		}

		lineItems := make([]entities.OrderOption, 0, len(priced))
		for _, p := range priced {
			lineItems = append(lineItems, entities.OrderOption{
				OrderID:      orderID,
				OptionID:     p.Option.ID,
				Quantity:     p.Quantity,
				PriceAtOrder: p.Option.Price,
			})
		}
		if err := s.orders.SaveOrderOptions(ctx, orderID, lineItems); err != nil {
			return err
		}

		userID := draft.UserID
		if err := s.orders.AppendHistory(ctx, entities.OrderStatusHistory{
			OrderID:   orderID,
			Status:    entities.StatusNew,
			ChangedAt: now,
			ChangedBy: &userID,
			Notes:     draft.Notes,
		}); err != nil {
			return err
		}

		path = "existing"
		if alloc.Created {
			path = "new"
		}
		receipt = entities.OrderReceipt{OrderID: orderID, TotalPrice: total}
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, entities.ErrDuplicateRequest):
		// Параллельный запрос с тем же ключом успел первым.
		return s.replay(ctx, draft.UserID, draft.IdempotencyKey)
	case errors.Is(err, entities.ErrCarNotAvailable):
		allocationConflicts.Inc()
		return entities.OrderReceipt{}, err
	default:
		return entities.OrderReceipt{}, err
	}

	ordersCreated.WithLabelValues(path).Inc()
	s.logger.Info("order created",
		slog.Int64("order_id", receipt.OrderID),
		slog.String("total_price", receipt.TotalPrice.String()),
		slog.String("path", path),
	)
	return receipt, nil
}

// replay returns the order created earlier with key. The key is only
// honoured for the user who created that order.
func (s *orderService) replay(ctx context.Context, userID int64, key string) (entities.OrderReceipt, error) {
	order, err := s.orders.GetOrderByIdempotencyKey(ctx, key)
	if err != nil {
		return entities.OrderReceipt{}, err
	}
	if order.UserID != userID {
		return entities.OrderReceipt{}, fmt.Errorf("%w: key %q", entities.ErrIdempotencyKeyReused, key)
	}
	s.logger.Debug("replaying order", slog.Int64("order_id", order.ID), slog.String("idempotency_key", key))
	return entities.OrderReceipt{OrderID: order.ID, TotalPrice: order.TotalPrice, Replayed: true}, nil
}

func (s *orderService) resolveOptions(ctx context.Context, selections []entities.OptionSelection) ([]PricedOption, error) {
	if len(selections) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(selections))
	for i, sel := range selections {
		ids[i] = sel.OptionID
	}

	found, err := s.catalog.GetOptions(ctx, ids)
	if err != nil {
		return nil, err
	}

	priced := make([]PricedOption, 0, len(selections))
	for _, sel := range selections {
		opt, ok := found[sel.OptionID]
		if !ok {
			return nil, fmt.Errorf("%w: option %d not found", entities.ErrInvalidOption, sel.OptionID)
		}
		priced = append(priced, PricedOption{Option: opt, Quantity: sel.Quantity})
	}
	return priced, nil
}

// mergeSelections sums quantities of repeated option ids, keeping first-seen order.
func mergeSelections(selections []entities.OptionSelection) ([]entities.OptionSelection, error) {
	merged := make([]entities.OptionSelection, 0, len(selections))
	index := make(map[int64]int, len(selections))
	for _, sel := range selections {
		if sel.OptionID <= 0 {
			return nil, fmt.Errorf("%w: option id %d", entities.ErrInvalidOption, sel.OptionID)
		}
		if sel.Quantity <= 0 {
			return nil, fmt.Errorf("%w: option %d quantity %d", entities.ErrInvalidQuantity, sel.OptionID, sel.Quantity)
		}
		i, ok := index[sel.OptionID]
		if !ok {
			i = len(merged)
			index[sel.OptionID] = i
			merged = append(merged, entities.OptionSelection{OptionID: sel.OptionID})
		}
		merged[i].Quantity += sel.Quantity
		if merged[i].Quantity > entities.MaxOptionQuantity {
			return nil, fmt.Errorf("%w: option %d quantity %d exceeds %d",
				entities.ErrInvalidQuantity, sel.OptionID, merged[i].Quantity, entities.MaxOptionQuantity)
		}
	}
	return merged, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID int64) (entities.Order, error) {
	if order, ok := s.cache.Get(orderID); ok {
		return order, nil
	}

	gen := s.cacheGeneration()
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrder(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.fillCache(gen, order)
	return order, nil
}

func (s *orderService) cacheGeneration() uint64 {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	return s.cacheGen
}

// fillCache stores orders unless the cache was invalidated after gen was read.
func (s *orderService) fillCache(gen uint64, orders ...entities.Order) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.cacheGen != gen {
		return
	}
	for _, o := range orders {
		s.cache.Set(o.ID, o)
	}
}

func (s *orderService) invalidate(orderID int64) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cacheGen++
	s.cache.Delete(orderID)
}

// WarmUpCache loads the latest count orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}

	gen := s.cacheGeneration()
	orders, err := s.orders.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	s.fillCache(gen, orders...)

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) ListUserOrders(ctx context.Context, userID int64, limit int) ([]entities.Order, error) {
	if limit <= 0 || limit > s.listLimit {
		limit = s.listLimit
	}
	if _, err := s.catalog.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.orders.ListUserOrders(ctx, userID, limit)
}

// DeleteOrder is the administrative hard delete. A car held by an
// unfinished order goes back to the lot.
func (s *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if !order.Status.IsTerminal() {
			if err := s.allocator.Release(ctx, order.CarID); err != nil {
				return err
			}
		}
		return s.orders.DeleteOrder(ctx, orderID)
	})
	if err != nil {
		return err
	}

	s.invalidate(orderID)
	s.logger.Warn("order deleted", slog.Int64("order_id", orderID))
	return nil
}
