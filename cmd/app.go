package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/supermanager/interview-eval/config"
	"github.com/supermanager/interview-eval/database"
	"github.com/supermanager/interview-eval/internal/cache"
	"github.com/supermanager/interview-eval/internal/logger"
	"github.com/supermanager/interview-eval/internal/metrics"
	"github.com/supermanager/interview-eval/internal/repository"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// coreModule provides configuration, logging and storage. Every command
// builds on it.
var coreModule = fx.Options(
	fx.Provide(
		config.NewConfig,
		database.NewDatabase,
		repository.NewStore,
	),
	fx.Invoke(initLogger),
	fx.Invoke(closeDatabaseOnStop),
)

func initLogger(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Log.JSON)
}

func closeDatabaseOnStop(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.New(reg)
}

// NewRubricCache connects to Redis when REDIS_ADDR is set and falls back to a
// no-op cache otherwise.
func NewRubricCache(lc fx.Lifecycle, cfg *config.Config) (cache.RubricCache, error) {
	client, err := cache.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	if client == nil {
		log.Info().Msg("REDIS_ADDR not set, rubric cache disabled")
		return cache.NopRubricCache{}, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("Rubric cache enabled")
	return cache.NewRedisRubricCache(client, cfg.Redis.TTL), nil
}
