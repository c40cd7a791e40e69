package entities

import "github.com/shopspring/decimal"

// Справочные данные каталога. Сервис их только читает.

type User struct {
	ID       int64
	Email    string
	FullName string
}

type Model struct {
	ID           int64
	Brand        string
	Name         string
	Year         int
	BodyType     string
	FuelType     string
	BasePrice    decimal.Decimal
	IsActive     bool
	DefaultColor string
}

type Configuration struct {
	ID              int64
	ModelID         int64
	Name            string
	AdditionalPrice decimal.Decimal
}

type AdditionalOption struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}
