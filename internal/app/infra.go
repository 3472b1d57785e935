package app

import (
	"context"
	"database/sql"

	"github.com/colinjeanne/mealplan/internal/config"
	"github.com/colinjeanne/mealplan/internal/db"
	"github.com/colinjeanne/mealplan/internal/logger"
	"github.com/colinjeanne/mealplan/internal/redis"

	_ "github.com/lib/pq"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunIdentityMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	infra := &Infra{DB: &db.DB{DB: sqlDB}}

	// Redis is optional: without it the verification cache degrades to
	// in-process memory.
	if cfg.RedisAddr == "" {
		logger.Info("redis not configured, verification cache is in-memory", nil)
		return infra, nil
	}

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	infra.Redis = redisClient
	return infra, nil
}
