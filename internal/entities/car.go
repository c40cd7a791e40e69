package entities

import (
	"fmt"
	"time"
)

type CarStatus string

const (
	CarAvailable    CarStatus = "Available"
	CarReserved     CarStatus = "Reserved"
	CarSold         CarStatus = "Sold"
	CarInProduction CarStatus = "InProduction"
)

func ParseCarStatus(s string) (CarStatus, error) {
	switch st := CarStatus(s); st {
	case CarAvailable, CarReserved, CarSold, CarInProduction:
		return st, nil
	}
	return "", fmt.Errorf("unknown car status %q", s)
}

type Car struct {
	ID             int64
	ModelID        int64
	VIN            string
	Color          string
	Status         CarStatus
	Mileage        *int
	ProductionDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AllocationRequest описывает, откуда брать машину для заказа:
// существующая машина со склада (CarID) или новая машина модели ModelID.
type AllocationRequest struct {
	CarID   *int64
	ModelID *int64
	Color   string
}

type Allocation struct {
	Car   Car
	Model Model
	// Created is true when the car row was inserted by this allocation.
	Created bool
}
