package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/car-order-service/docs"
	"github.com/SergeyBogomolovv/car-order-service/internal/app"
	"github.com/SergeyBogomolovv/car-order-service/internal/config"
	"github.com/SergeyBogomolovv/car-order-service/internal/entities"
	"github.com/SergeyBogomolovv/car-order-service/internal/handler"
	"github.com/SergeyBogomolovv/car-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/car-order-service/internal/repo"
	"github.com/SergeyBogomolovv/car-order-service/internal/service"
	"github.com/SergeyBogomolovv/car-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/car-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Car Order Service API
// @version         1.0
// @description     Документация HTTP API
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.AutoMigrate {
		applied, err := postgres.Migrate(ctx, db)
		panicIfErr("failed to migrate db", err)
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	isolation, err := trm.ParseIsolation(conf.Postgres.IsolationLevel)
	panicIfErr("invalid isolation level", err)
	txManager := trm.NewManager(db, trm.WithIsolation(isolation))

	catalogRepo := repo.NewCatalogRepo(db)
	carRepo := repo.NewCarRepo(db)
	orderRepo := repo.NewOrderRepo(db)

	orderCache := cache.NewLRUCache[int64, entities.Order](conf.Cache.Capacity, conf.Cache.TTL)

	allocator := service.NewAllocator(catalogRepo, carRepo, conf.Orders.DefaultColor)
	orderService := service.NewOrderService(
		logger, txManager, catalogRepo, orderRepo, allocator, orderCache, conf.Orders.UserOrdersLimit,
	)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Orders.WarmUpCacheCount})

	panicIfErr("failed to start app", app.Start(ctx))

	select {
	case <-ctx.Done():
	case err := <-app.Errors():
		logger.Error("stopping after server failure", slog.Any("error", err))
	}

	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
