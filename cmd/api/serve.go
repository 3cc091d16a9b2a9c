package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/warehouse-service/internal/api/http"
	"github.com/spec-kit/warehouse-service/internal/api/http/handlers"
	"github.com/spec-kit/warehouse-service/internal/config"
	"github.com/spec-kit/warehouse-service/internal/docstore"
	"github.com/spec-kit/warehouse-service/internal/events"
	"github.com/spec-kit/warehouse-service/internal/observability"
	"github.com/spec-kit/warehouse-service/internal/persistence"
	"github.com/spec-kit/warehouse-service/internal/repository"
	"github.com/spec-kit/warehouse-service/internal/service"
	"github.com/spec-kit/warehouse-service/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the warehouse HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	backend, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartChangeFeedWorker(service.NewChangeFeedService(dispatcher, redis.Handle(), cfg.Redis, logger))

	deps := service.Dependencies{
		Products:   repository.NewProductRepository(backend),
		Customers:  repository.NewCustomerRepository(backend),
		Staff:      repository.NewStaffRepository(backend),
		Orders:     repository.NewOrderRepository(backend),
		Dispatcher: dispatcher,
		Logger:     logger,
	}

	dependencies := map[string]handlers.Pinger{backend.Name(): backend}
	if redis != nil {
		dependencies["redis"] = redis
	}

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name, DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies),
		Products:  handlers.NewProductsHandler(service.NewProductService(deps)),
		Customers: handlers.NewCustomersHandler(service.NewCustomerService(deps)),
		Staff:     handlers.NewStaffHandler(service.NewStaffService(deps)),
		Orders:    handlers.NewOrdersHandler(service.NewOrderService(deps)),
		Metrics:   metrics,
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.App.Addr()), zap.String("store", backend.Name()))
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("fiber listen: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
	}
	return app.ShutdownWithTimeout(shutdownTimeout)
}

// openStore connects the configured document store and returns its cleanup.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*docstore.Backend, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect postgres: %w", err)
		}
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), persistence.DefaultMigrationsDir, logger); err != nil {
				pg.Close()
				return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		return docstore.NewPostgresBackend(pg.PoolHandle()), pg.Close, nil
	case config.StoreDriverMemory:
		logger.Warn("using in-memory document store; data is lost on exit")
		return docstore.NewMemoryBackend(), func() {}, nil
	default:
		mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect mongodb: %w", err)
		}
		closeMongo := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			mongo.Close(closeCtx)
		}
		return docstore.NewMongoBackend(mongo.Database), closeMongo, nil
	}
}
