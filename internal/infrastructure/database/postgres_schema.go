package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS calculator_configs (
    id                 TEXT PRIMARY KEY,
    slug               TEXT NOT NULL UNIQUE,
    building_type      TEXT NOT NULL,
    base_price_min     DOUBLE PRECISION NOT NULL,
    base_price_max     DOUBLE PRECISION NOT NULL,
    duration_min_weeks INTEGER NOT NULL DEFAULT 8,
    duration_max_weeks INTEGER NOT NULL DEFAULT 16,
    notes              TEXT,
    is_published       BOOLEAN NOT NULL DEFAULT TRUE,
    sort_order         INTEGER NOT NULL DEFAULT 0,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS calculator_options (
    id            TEXT PRIMARY KEY,
    config_id     TEXT NOT NULL REFERENCES calculator_configs(id) ON DELETE CASCADE,
    name          TEXT NOT NULL,
    add_price_min DOUBLE PRECISION NOT NULL,
    add_price_max DOUBLE PRECISION NOT NULL,
    sort_order    INTEGER NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (config_id, name)
)`,
	`CREATE INDEX IF NOT EXISTS calculator_options_config_id_idx ON calculator_options (config_id)`,
	`CREATE TABLE IF NOT EXISTS calculator_regions (
    id          TEXT PRIMARY KEY,
    region      TEXT NOT NULL UNIQUE,
    coefficient DOUBLE PRECISION NOT NULL DEFAULT 1.0,
    sort_order  INTEGER NOT NULL DEFAULT 0,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS leads (
    id                 TEXT PRIMARY KEY,
    name               TEXT NOT NULL,
    phone              TEXT NOT NULL,
    email              TEXT,
    building_type      TEXT,
    area_m2            INTEGER,
    region             TEXT,
    message            TEXT,
    meeting_preference TEXT,
    source             TEXT NOT NULL,
    status             TEXT NOT NULL DEFAULT 'new',
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
}

// EnsurePostgresSchema creates the tables when they are missing. Safe to run on every start.
func EnsurePostgresSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range postgresSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply postgres schema: %w", err)
		}
	}
	log.Printf("[store][postgres] schema ready statements=%d", len(postgresSchema))
	return nil
}
