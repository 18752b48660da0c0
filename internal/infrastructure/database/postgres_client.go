package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresDSNFromEnv prefers DATABASE_URL and otherwise assembles a DSN from
// DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME and DB_SSLMODE.
func PostgresDSNFromEnv() (string, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn, nil
	}

	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	name := os.Getenv("DB_NAME")
	if host == "" || user == "" || name == "" {
		return "", fmt.Errorf("postgres not configured: set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host,
		getenvDefault("DB_PORT", "5432"),
		user,
		os.Getenv("DB_PASSWORD"),
		name,
		getenvDefault("DB_SSLMODE", "disable"),
	), nil
}

// ConnectPostgres opens a pgx-backed *sql.DB and verifies it with a ping.
func ConnectPostgres(ctx context.Context) (*sql.DB, error) {
	dsn, err := PostgresDSNFromEnv()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	log.Printf("[store][postgres] connection established")
	return db, nil
}
