package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       int64  `db:"id"`
	Email    string `db:"email"`
	FullName string `db:"full_name"`
}

type Model struct {
	ID           int64           `db:"id"`
	Brand        string          `db:"brand"`
	Name         string          `db:"name"`
	Year         int             `db:"year"`
	BodyType     sql.NullString  `db:"body_type"`
	FuelType     sql.NullString  `db:"fuel_type"`
	BasePrice    decimal.Decimal `db:"base_price"`
	IsActive     bool            `db:"is_active"`
	DefaultColor sql.NullString  `db:"default_color"`
}

type Configuration struct {
	ID              int64           `db:"id"`
	ModelID         int64           `db:"model_id"`
	Name            string          `db:"name"`
	AdditionalPrice decimal.Decimal `db:"additional_price"`
}

type AdditionalOption struct {
	ID    int64           `db:"id"`
	Name  string          `db:"name"`
	Price decimal.Decimal `db:"price"`
}

type Car struct {
	ID             int64         `db:"id"`
	ModelID        int64         `db:"model_id"`
	VIN            string        `db:"vin"`
	Color          string        `db:"color"`
	Status         string        `db:"status"`
	Mileage        sql.NullInt32 `db:"mileage"`
	ProductionDate sql.NullTime  `db:"production_date"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

type Order struct {
	ID              int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	CarID           int64           `db:"car_id"`
	ConfigurationID int64           `db:"configuration_id"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	OrderStatus     string          `db:"order_status"`
	OrderDate       time.Time       `db:"order_date"`
	DeliveryDate    sql.NullTime    `db:"delivery_date"`
	Notes           sql.NullString  `db:"notes"`
	IdempotencyKey  sql.NullString  `db:"idempotency_key"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

type OrderOption struct {
	OrderID      int64           `db:"order_id"`
	OptionID     int64           `db:"option_id"`
	Quantity     int             `db:"quantity"`
	PriceAtOrder decimal.Decimal `db:"price_at_order"`
}

type OrderStatusHistory struct {
	ID        int64          `db:"id"`
	OrderID   int64          `db:"order_id"`
	Status    string         `db:"status"`
	ChangedAt time.Time      `db:"changed_at"`
	ChangedBy sql.NullInt64  `db:"changed_by"`
	Notes     sql.NullString `db:"notes"`
}

var (
	modelColumns  = []string{"id", "brand", "name", "year", "body_type", "fuel_type", "base_price", "is_active", "default_color"}
	carColumns    = []string{"id", "model_id", "vin", "color", "status", "mileage", "production_date", "created_at", "updated_at"}
	orderColumns  = []string{"id", "user_id", "car_id", "configuration_id", "total_price", "order_status", "order_date", "delivery_date", "notes", "idempotency_key", "updated_at"}
	optionColumns = []string{"order_id", "option_id", "quantity", "price_at_order"}
	historyColumn = []string{"id", "order_id", "status", "changed_at", "changed_by", "notes"}
)

func UserToEntity(u User) entities.User {
	return entities.User{ID: u.ID, Email: u.Email, FullName: u.FullName}
}

func ModelToEntity(m Model) entities.Model {
	return entities.Model{
		ID:           m.ID,
		Brand:        m.Brand,
		Name:         m.Name,
		Year:         m.Year,
		BodyType:     nullStringToString(m.BodyType),
		FuelType:     nullStringToString(m.FuelType),
		BasePrice:    m.BasePrice,
		IsActive:     m.IsActive,
		DefaultColor: nullStringToString(m.DefaultColor),
	}
}

func ConfigurationToEntity(c Configuration) entities.Configuration {
	return entities.Configuration{
		ID:              c.ID,
		ModelID:         c.ModelID,
		Name:            c.Name,
		AdditionalPrice: c.AdditionalPrice,
	}
}

func AdditionalOptionToEntity(o AdditionalOption) entities.AdditionalOption {
	return entities.AdditionalOption{ID: o.ID, Name: o.Name, Price: o.Price}
}

func CarToEntity(c Car) (entities.Car, error) {
	status, err := entities.ParseCarStatus(c.Status)
	if err != nil {
		return entities.Car{}, err
	}

	car := entities.Car{
		ID:        c.ID,
		ModelID:   c.ModelID,
		VIN:       c.VIN,
		Color:     c.Color,
		Status:    status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Mileage.Valid {
		mileage := int(c.Mileage.Int32)
		car.Mileage = &mileage
	}
	if c.ProductionDate.Valid {
		date := c.ProductionDate.Time
		car.ProductionDate = &date
	}
	return car, nil
}

func OrderToEntity(o Order, options []OrderOption, history []OrderStatusHistory) (entities.Order, error) {
	status, err := entities.ParseOrderStatus(o.OrderStatus)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:              o.ID,
		UserID:          o.UserID,
		CarID:           o.CarID,
		ConfigurationID: o.ConfigurationID,
		TotalPrice:      o.TotalPrice,
		Status:          status,
		OrderDate:       o.OrderDate,
		Notes:           nullStringToString(o.Notes),
		IdempotencyKey:  nullStringToString(o.IdempotencyKey),
		UpdatedAt:       o.UpdatedAt,
	}
	if o.DeliveryDate.Valid {
		date := o.DeliveryDate.Time
		order.DeliveryDate = &date
	}

	if len(options) > 0 {
		order.Options = make([]entities.OrderOption, 0, len(options))
		for _, opt := range options {
			order.Options = append(order.Options, entities.OrderOption{
				OrderID:      opt.OrderID,
				OptionID:     opt.OptionID,
				Quantity:     opt.Quantity,
				PriceAtOrder: opt.PriceAtOrder,
			})
		}
	}

	if len(history) > 0 {
		order.History = make([]entities.OrderStatusHistory, 0, len(history))
		for _, h := range history {
			entry, err := HistoryToEntity(h)
			if err != nil {
				return entities.Order{}, err
			}
			order.History = append(order.History, entry)
		}
	}

	return order, nil
}

func HistoryToEntity(h OrderStatusHistory) (entities.OrderStatusHistory, error) {
	status, err := entities.ParseOrderStatus(h.Status)
	if err != nil {
		return entities.OrderStatusHistory{}, err
	}

	entry := entities.OrderStatusHistory{
		ID:        h.ID,
		OrderID:   h.OrderID,
		Status:    status,
		ChangedAt: h.ChangedAt,
		Notes:     nullStringToString(h.Notes),
	}
	if h.ChangedBy.Valid {
		actor := h.ChangedBy.Int64
		entry.ChangedBy = &actor
	}
	return entry, nil
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
