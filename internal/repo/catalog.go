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

// catalogRepo reads users and catalog records. It never writes.
type catalogRepo struct {
	postgresRepo
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *catalogRepo) GetUser(ctx context.Context, userID int64) (entities.User, error) {
	query, args := r.qb.Select("id", "email", "full_name").
		From("users").
		Where(sq.Eq{"id": userID}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *catalogRepo) GetModel(ctx context.Context, modelID int64) (entities.Model, error) {
	query, args := r.qb.Select(modelColumns...).
		From("models").
		Where(sq.Eq{"id": modelID}).
		MustSql()

	var model Model
	err := r.getContext(ctx, &model, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Model{}, entities.ErrModelNotFound
	}
	if err != nil {
		return entities.Model{}, fmt.Errorf("failed to get model: %w", err)
	}
	return ModelToEntity(model), nil
}

func (r *catalogRepo) GetConfiguration(ctx context.Context, configurationID int64) (entities.Configuration, error) {
	query, args := r.qb.Select("id", "model_id", "name", "additional_price").
		From("configurations").
		Where(sq.Eq{"id": configurationID}).
		MustSql()

	var conf Configuration
	err := r.getContext(ctx, &conf, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Configuration{}, entities.ErrConfigurationNotFound
	}
	if err != nil {
		return entities.Configuration{}, fmt.Errorf("failed to get configuration: %w", err)
	}
	return ConfigurationToEntity(conf), nil
}

// GetOptions returns the options that exist among ids. Missing ids are
// simply absent from the result; the caller decides whether that is fatal.
func (r *catalogRepo) GetOptions(ctx context.Context, ids []int64) (map[int64]entities.AdditionalOption, error) {
	if len(ids) == 0 {
		return map[int64]entities.AdditionalOption{}, nil
	}

	query, args := r.qb.Select("id", "name", "price").
		From("additional_options").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var options []AdditionalOption
	if err := r.selectContext(ctx, &options, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select options: %w", err)
	}

	result := make(map[int64]entities.AdditionalOption, len(options))
	for _, opt := range options {
		result[opt.ID] = AdditionalOptionToEntity(opt)
	}
	return result, nil
}
