// Package pgtest starts a disposable PostgreSQL container with the service
// schema applied. It is used by integration tests only.
package pgtest

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/car-order-service/internal/postgres"

	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type Container struct {
	container *tcpostgres.PostgresContainer
	DB        *sqlx.DB
	DSN       string
}

func Start(ctx context.Context) (*Container, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("dealership"),
		tcpostgres.WithUsername("dealer"),
		tcpostgres.WithPassword("dealer"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		container.Terminate(ctx)
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		container.Terminate(ctx)
		return nil, err
	}

	if _, err := postgres.Migrate(ctx, db); err != nil {
		db.Close()
		container.Terminate(ctx)
		return nil, err
	}

	return &Container{container: container, DB: db, DSN: dsn}, nil
}

// Truncate empties every service table and restarts identity sequences.
func (c *Container) Truncate(ctx context.Context) error {
	_, err := c.DB.ExecContext(ctx, `TRUNCATE TABLE
		order_status_history, order_options, orders, cars,
		additional_options, configurations, models, users
		RESTART IDENTITY CASCADE`)
	return err
}

func (c *Container) Terminate(ctx context.Context) error {
	c.DB.Close()
	return c.container.Terminate(ctx)
}

// SkipIfShort skips docker-backed tests under `go test -short`.
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
}
