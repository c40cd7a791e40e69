package handler

import (
	"time"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"
)

// CreateOrderRequest запрос на создание заказа.
// Нужно указать либо car_id (машина со склада), либо model_id (новая машина).
type CreateOrderRequest struct {
	UserID          int64           `json:"user_id" validate:"required,gt=0" example:"1"`
	CarID           *int64          `json:"car_id,omitempty" validate:"omitempty,gt=0" example:"12"`
	ModelID         *int64          `json:"model_id,omitempty" validate:"required_without=CarID" example:"3"`
	ConfigurationID int64           `json:"configuration_id" validate:"required,gt=0" example:"5"`
	Color           string          `json:"color,omitempty" validate:"max=64" example:"Black"`
	OptionIDs       []int64         `json:"option_ids,omitempty" validate:"omitempty,dive,gt=0"`
	Options         []OptionRequest `json:"options,omitempty" validate:"omitempty,dive"`
	Notes           string          `json:"notes,omitempty" validate:"max=2000"`
}

// OptionRequest выбранная опция; quantity от 1 до entities.MaxOptionQuantity, по умолчанию 1
type OptionRequest struct {
	OptionID int64 `json:"option_id" validate:"required,gt=0" example:"7"`
	Quantity *int  `json:"quantity,omitempty" validate:"omitempty,gte=1,lte=100" example:"1"`
}

type CreateOrderResponse struct {
	OrderID    int64  `json:"order_id" example:"42"`
	TotalPrice string `json:"total_price" example:"1065000.00"`
}

// ChangeStatusRequest запрос на смену статуса заказа
type ChangeStatusRequest struct {
	Status       string     `json:"status" validate:"required" example:"Confirmed"`
	Notes        string     `json:"notes,omitempty" validate:"max=2000" example:"deposit received"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}

// StatusEvent сообщение о смене статуса от производства или логистики
type StatusEvent struct {
	OrderID      int64      `json:"order_id" validate:"required,gt=0"`
	Status       string     `json:"status" validate:"required"`
	Notes        string     `json:"notes,omitempty" validate:"max=2000"`
	ActorID      *int64     `json:"actor_id,omitempty" validate:"omitempty,gt=0"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}

// Order представляет заказ
type Order struct {
	ID              int64                `json:"id" example:"42"`
	UserID          int64                `json:"user_id" example:"1"`
	CarID           int64                `json:"car_id" example:"12"`
	ConfigurationID int64                `json:"configuration_id" example:"5"`
	TotalPrice      string               `json:"total_price" example:"1065000.00"`
	Status          string               `json:"status" example:"New"`
	OrderDate       time.Time            `json:"order_date"`
	DeliveryDate    *time.Time           `json:"delivery_date,omitempty"`
	Notes           string               `json:"notes,omitempty"`
	Options         []OrderOption        `json:"options,omitempty"`
	History         []OrderStatusHistory `json:"history,omitempty"`
}

// OrderOption опция в заказе с ценой на момент заказа
type OrderOption struct {
	OptionID     int64  `json:"option_id" example:"7"`
	Quantity     int    `json:"quantity" example:"1"`
	PriceAtOrder string `json:"price_at_order" example:"10000.00"`
	Subtotal     string `json:"subtotal" example:"20000.00"`
}

// OrderStatusHistory запись журнала статусов
type OrderStatusHistory struct {
	Status    string    `json:"status" example:"Confirmed"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy *int64    `json:"changed_by,omitempty" example:"2"`
	Notes     string    `json:"notes,omitempty"`
}

func CreateOrderRequestToDraft(req CreateOrderRequest, idempotencyKey string) entities.OrderDraft {
	options := make([]entities.OptionSelection, 0, len(req.OptionIDs)+len(req.Options))
	for _, id := range req.OptionIDs {
		options = append(options, entities.OptionSelection{OptionID: id, Quantity: 1})
	}
	for _, opt := range req.Options {
		quantity := 1
		if opt.Quantity != nil {
			quantity = *opt.Quantity
		}
		options = append(options, entities.OptionSelection{OptionID: opt.OptionID, Quantity: quantity})
	}

	return entities.OrderDraft{
		UserID:          req.UserID,
		CarID:           req.CarID,
		ModelID:         req.ModelID,
		ConfigurationID: req.ConfigurationID,
		Color:           req.Color,
		Options:         options,
		Notes:           req.Notes,
		IdempotencyKey:  idempotencyKey,
	}
}

func StatusEventToChange(e StatusEvent) entities.StatusChange {
	return entities.StatusChange{
		OrderID:      e.OrderID,
		Status:       e.Status,
		Notes:        e.Notes,
		ActorID:      e.ActorID,
		DeliveryDate: e.DeliveryDate,
	}
}

func ReceiptToJSON(r entities.OrderReceipt) CreateOrderResponse {
	return CreateOrderResponse{
		OrderID:    r.OrderID,
		TotalPrice: r.TotalPrice.StringFixed(2),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	options := make([]OrderOption, 0, len(o.Options))
	for _, opt := range o.Options {
		options = append(options, OrderOption{
			OptionID:     opt.OptionID,
			Quantity:     opt.Quantity,
			PriceAtOrder: opt.PriceAtOrder.StringFixed(2),
			Subtotal:     opt.Subtotal().StringFixed(2),
		})
	}

	history := make([]OrderStatusHistory, 0, len(o.History))
	for _, h := range o.History {
		history = append(history, OrderStatusHistory{
			Status:    h.Status.String(),
			ChangedAt: h.ChangedAt,
			ChangedBy: h.ChangedBy,
			Notes:     h.Notes,
		})
	}

	return Order{
		ID:              o.ID,
		UserID:          o.UserID,
		CarID:           o.CarID,
		ConfigurationID: o.ConfigurationID,
		TotalPrice:      o.TotalPrice.StringFixed(2),
		Status:          o.Status.String(),
		OrderDate:       o.OrderDate,
		DeliveryDate:    o.DeliveryDate,
		Notes:           o.Notes,
		Options:         options,
		History:         history,
	}
}
