/*
 * Copyright 2025 reelworks.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

var globalDB *bun.DB

// GetDB returns the global Bun database instance.
func GetDB() *bun.DB { return globalDB }

// InitDB opens the global database connection using the provided configuration.
func InitDB(cfg *Config) (*bun.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	globalDB = db
	return db, nil
}

// CloseDB closes the global database connection.
func CloseDB() error {
	if globalDB == nil {
		return nil
	}
	err := globalDB.Close()
	globalDB = nil
	return err
}

// Open connects to the configured store and wraps it in a dialect-aware Bun
// instance. Supported types are mysql, postgres, and sqlite; an empty type
// defaults to an in-memory sqlite database.
func Open(cfg *Config) (*bun.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration cannot be empty")
	}
	cfg.OverrideFromEnv()

	var (
		sqlDB *sql.DB
		db    *bun.DB
		err   error
	)
	switch cfg.Type {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&timeout=%s",
			cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.connectTimeout())
		sqlDB, err = sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql connection: %w", err)
		}
		db = bun.NewDB(sqlDB, mysqldialect.New())
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s&connect_timeout=%d",
			cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.sslMode(), int(cfg.connectTimeout().Seconds()))
		sqlDB, err = sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", err)
		}
		db = bun.NewDB(sqlDB, pgdialect.New())
	case "sqlite", "":
		dsn := "file::memory:?cache=shared"
		if cfg.DBName != "" {
			dsn = fmt.Sprintf("%s.db", cfg.DBName)
		}
		sqlDB, err = sql.Open(sqliteshim.ShimName, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite connection: %w", err)
		}
		// sqlite serializes writes; a wider pool only produces lock errors.
		sqlDB.SetMaxOpenConns(1)
		db = bun.NewDB(sqlDB, sqlitedialect.New())
	default:
		return nil, fmt.Errorf("unsupported database type: %s, supported types: [mysql postgres sqlite]", cfg.Type)
	}

	tunePool(sqlDB, cfg)
	if cfg.EnableQueryLog {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	db.AddQueryHook(NewQueryHook())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.connectTimeout())
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func tunePool(sqlDB *sql.DB, cfg *Config) {
	if cfg.Type == "sqlite" || cfg.Type == "" {
		return
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}

// HealthStatus holds the result of a health check against the database.
type HealthStatus struct {
	Healthy       bool          `json:"healthy"`
	Connected     bool          `json:"connected"`
	ResponseTime  time.Duration `json:"response_time"`
	ActiveConns   int           `json:"active_conns"`
	IdleConns     int           `json:"idle_conns"`
	LastError     string        `json:"last_error,omitempty"`
	LastCheckTime time.Time     `json:"last_check_time"`
}

// HealthCheck pings the database and reports pool statistics.
func HealthCheck(ctx context.Context, db *bun.DB) *HealthStatus {
	status := &HealthStatus{LastCheckTime: time.Now()}
	if db == nil {
		status.LastError = "database not initialized"
		return status
	}
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		status.LastError = err.Error()
		return status
	}
	stats := db.DB.Stats()
	status.Healthy = true
	status.Connected = true
	status.ResponseTime = time.Since(start)
	status.ActiveConns = stats.InUse
	status.IdleConns = stats.Idle
	return status
}
