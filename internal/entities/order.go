package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              int64
	UserID          int64
	CarID           int64
	ConfigurationID int64
	TotalPrice      decimal.Decimal
	Status          OrderStatus
	OrderDate       time.Time
	DeliveryDate    *time.Time
	Notes           string
	IdempotencyKey  string
	UpdatedAt       time.Time

	Options []OrderOption
	History []OrderStatusHistory
}

// MaxOptionQuantity ограничивает количество одной опции в заказе.
const MaxOptionQuantity = 100

// MaxOrderTotal is the largest price the store keeps (NUMERIC(14,2)).
var MaxOrderTotal = decimal.RequireFromString("999999999999.99")

// OrderOption хранит цену опции на момент заказа, чтобы изменения каталога
// не меняли старые заказы.
type OrderOption struct {
	OrderID      int64
	OptionID     int64
	Quantity     int
	PriceAtOrder decimal.Decimal
}

func (o OrderOption) Subtotal() decimal.Decimal {
	return o.PriceAtOrder.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

type OrderStatusHistory struct {
	ID        int64
	OrderID   int64
	Status    OrderStatus
	ChangedAt time.Time
	ChangedBy *int64
	Notes     string
}

type OptionSelection struct {
	OptionID int64
	Quantity int
}

// OrderDraft is a create-order request after transport decoding.
type OrderDraft struct {
	UserID          int64
	CarID           *int64
	ModelID         *int64
	ConfigurationID int64
	Color           string
	Options         []OptionSelection
	Notes           string
	IdempotencyKey  string
}

type OrderReceipt struct {
	OrderID    int64
	TotalPrice decimal.Decimal
	// Replayed is set when the receipt belongs to an order created earlier
	// with the same idempotency key.
	Replayed bool
}

type StatusChange struct {
	OrderID      int64
	Status       string
	Notes        string
	ActorID      *int64
	DeliveryDate *time.Time
}
