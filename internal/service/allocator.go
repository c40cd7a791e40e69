package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"

	"github.com/google/uuid"
)

type CarRepo interface {
	GetCarForUpdate(ctx context.Context, carID int64) (entities.Car, error)
	CreateCar(ctx context.Context, car entities.Car) (int64, error)
	UpdateCarStatus(ctx context.Context, carID int64, status entities.CarStatus, updatedAt time.Time) error
}

// pendingVINPrefix marks cars that have no factory VIN yet.
const pendingVINPrefix = "PENDING-"

// Allocator binds a concrete car to an order. It must be called inside a
// transaction: the car row stays locked until commit.
type Allocator struct {
	catalog      CatalogReader
	cars         CarRepo
	defaultColor string
	now          func() time.Time
}

func NewAllocator(catalog CatalogReader, cars CarRepo, defaultColor string) *Allocator {
	return &Allocator{
		catalog:      catalog,
		cars:         cars,
		defaultColor: defaultColor,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (a *Allocator) Allocate(ctx context.Context, req entities.AllocationRequest) (entities.Allocation, error) {
	if req.CarID != nil {
		return a.reserveExisting(ctx, *req.CarID, req.ModelID)
	}
	if req.ModelID == nil {
		return entities.Allocation{}, fmt.Errorf("%w: neither car nor model given", entities.ErrModelNotFound)
	}
	return a.createNew(ctx, *req.ModelID, req.Color)
}

func (a *Allocator) reserveExisting(ctx context.Context, carID int64, modelID *int64) (entities.Allocation, error) {
	car, err := a.cars.GetCarForUpdate(ctx, carID)
	if err != nil {
		return entities.Allocation{}, err
	}
	if car.Status != entities.CarAvailable {
		return entities.Allocation{}, fmt.Errorf("%w: car %d is %s", entities.ErrCarNotAvailable, car.ID, car.Status)
	}
	if modelID != nil && *modelID != car.ModelID {
		return entities.Allocation{}, fmt.Errorf("%w: car %d is model %d, requested %d",
			entities.ErrCarModelMismatch, car.ID, car.ModelID, *modelID)
	}

	// Машина со склада уже существует, поэтому флаг активности модели не проверяем.
	model, err := a.catalog.GetModel(ctx, car.ModelID)
	if err != nil {
		return entities.Allocation{}, err
	}

	car.Status = entities.CarReserved
	car.UpdatedAt = a.now()
	if err := a.cars.UpdateCarStatus(ctx, car.ID, car.Status, car.UpdatedAt); err != nil {
		return entities.Allocation{}, fmt.Errorf("failed to reserve car: %w", err)
	}

	return entities.Allocation{Car: car, Model: model}, nil
}

func (a *Allocator) createNew(ctx context.Context, modelID int64, color string) (entities.Allocation, error) {
	model, err := a.catalog.GetModel(ctx, modelID)
	if err != nil {
		return entities.Allocation{}, err
	}
	if !model.IsActive {
		return entities.Allocation{}, fmt.Errorf("%w: model %d", entities.ErrModelInactive, model.ID)
	}

	if color == "" {
		color = model.DefaultColor
	}
	if color == "" {
		color = a.defaultColor
	}

	now := a.now()
	car := entities.Car{
		ModelID:   model.ID,
		VIN:       pendingVINPrefix + uuid.NewString(),
		Color:     color,
		Status:    entities.CarReserved,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := a.cars.CreateCar(ctx, car)
	if err != nil {
		return entities.Allocation{}, fmt.Errorf("failed to create car: %w", err)
	}
	car.ID = id

	return entities.Allocation{Car: car, Model: model, Created: true}, nil
}

// Release returns a car to the lot.
func (a *Allocator) Release(ctx context.Context, carID int64) error {
	return a.setStatus(ctx, carID, entities.CarAvailable)
}

func (a *Allocator) MarkSold(ctx context.Context, carID int64) error {
	return a.setStatus(ctx, carID, entities.CarSold)
}

func (a *Allocator) setStatus(ctx context.Context, carID int64, status entities.CarStatus) error {
	if err := a.cars.UpdateCarStatus(ctx, carID, status, a.now()); err != nil {
		return fmt.Errorf("failed to set car %d %s: %w", carID, status, err)
	}
	return nil
}
