package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type carRepo struct {
	postgresRepo
}

func NewCarRepo(db *sqlx.DB) *carRepo {
	return &carRepo{postgresRepo: newPostgresRepo(db)}
}

// GetCarForUpdate locks the car row until the surrounding transaction ends,
// so concurrent allocations of the same car are serialized.
func (r *carRepo) GetCarForUpdate(ctx context.Context, carID int64) (entities.Car, error) {
	query, args := r.qb.Select(carColumns...).
		From("cars").
		Where(sq.Eq{"id": carID}).
		Suffix("FOR UPDATE").
		MustSql()

	var car Car
	err := r.getContext(ctx, &car, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Car{}, entities.ErrCarNotFound
	}
	if err != nil {
		return entities.Car{}, fmt.Errorf("failed to get car: %w", err)
	}
	return CarToEntity(car)
}

func (r *carRepo) CreateCar(ctx context.Context, c entities.Car) (int64, error) {
	query, args := r.qb.Insert("cars").
		Columns("model_id", "vin", "color", "status", "mileage", "production_date", "created_at", "updated_at").
		Values(c.ModelID, c.VIN, c.Color, string(c.Status), nullInt32(c.Mileage), nullTime(c.ProductionDate), c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to create car: %w", err)
	}
	return id, nil
}

func (r *carRepo) UpdateCarStatus(ctx context.Context, carID int64, status entities.CarStatus, updatedAt time.Time) error {
	query, args := r.qb.Update("cars").
		Set("status", string(status)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": carID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update car status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update car status: %w", err)
	}
	if n == 0 {
		return entities.ErrCarNotFound
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
