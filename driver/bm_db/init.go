package bm_db

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"bm/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitDBConnectionPool connects to Postgres using the DB_* environment
// variables, loading a .env file first when one is present.
func InitDBConnectionPool(ctx context.Context) (*pgxpool.Pool, error) {
	if err := godotenv.Load(); err != nil {
		logger.Logger.Info("no .env file loaded", "error", err)
	}

	config, err := pgxpool.ParseConfig(buildConnectionString())
	if err != nil {
		logger.Logger.Error("failed to parse database config", "error", err)
		return nil, err
	}
	config.MaxConns = int32(getEnvIntOrDefault("DB_MAX_CONNS", 20))
	config.MinConns = int32(getEnvIntOrDefault("DB_MIN_CONNS", 5))

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Logger.Error("failed to create connection pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Logger.Error("failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}

func buildConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnvOrDefault("DB_HOST", "localhost"),
		getEnvOrDefault("DB_PORT", "5432"),
		getEnvOrDefault("DB_USER", "devuser"),
		getEnvOrDefault("DB_PASSWORD", "devpassword"),
		getEnvOrDefault("DB_NAME", "devdb"),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
