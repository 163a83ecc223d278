package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arizon-automation/sales-dashboard/infrastructure/cache"
	"github.com/arizon-automation/sales-dashboard/infrastructure/database/postgres"
	"github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed"
	"github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed/unleashedclient"
	"github.com/arizon-automation/sales-dashboard/internal/api"
	"github.com/arizon-automation/sales-dashboard/internal/config"
	"github.com/arizon-automation/sales-dashboard/internal/scheduler"
	"github.com/arizon-automation/sales-dashboard/internal/usecases/authenticating"
	"github.com/arizon-automation/sales-dashboard/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := cacheStore(ctx, cfg)

	unleashedClient := unleashedclient.NewClient(cfg.Unleashed)
	unleashedService := unleashed.New(unleashedClient, store)

	reportService := reporting.NewService(unleashedService, cfg.Reporting.ExcludedCustomers)
	authenticator := authenticating.NewService(cfg)

	warmupService := scheduler.NewReportWarmupService(reportService, cfg)
	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("could not start the report warmup scheduler")
	}
	if cfg.ReportWarmup.Enabled {
		warmupService.TriggerWarmup()
	}

	server, err := api.New(cfg, reportService, authenticator, warmupService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// cacheStore builds the vendor response cache selected by CACHE_DRIVER.
// A driver that fails to initialize is fatal.
func cacheStore(ctx context.Context, cfg *config.Config) cache.Store {
	switch cfg.Cache.Driver {
	case "redis":
		store, err := cache.NewRedisStore(ctx, cfg.Cache.RedisAddr, cfg.Cache.TTL)
		if err != nil {
			logrus.WithError(err).Fatal("could not connect to Redis")
		}
		logrus.WithField("addr", cfg.Cache.RedisAddr).Info("using the Redis cache store")
		return store

	case "postgres":
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("could not connect to PostgreSQL")
		}

		store, err := cache.NewPostgresStore(ctx, conn, cfg.Cache.TTL)
		if err != nil {
			logrus.WithError(err).Fatal("could not prepare the PostgreSQL cache store")
		}
		logrus.Info("using the PostgreSQL cache store")
		return store

	default:
		store, err := cache.NewFileStore(cfg.Cache.Dir, cfg.Cache.TTL)
		if err != nil {
			logrus.WithError(err).Fatal("could not prepare the cache directory")
		}
		logrus.WithField("dir", cfg.Cache.Dir).Info("using the file cache store")
		return store
	}
}
