// Package postgres implements the observation repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and ensures the schema exists.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmt := `CREATE TABLE IF NOT EXISTS weather_observations (
		id BIGSERIAL PRIMARY KEY,
		collection_time TIMESTAMPTZ NOT NULL UNIQUE,
		temperature INTEGER,
		temperature_min INTEGER,
		temperature_max INTEGER,
		humidity INTEGER,
		description VARCHAR(200),
		feels_like INTEGER,
		wind_speed DOUBLE PRECISION,
		wind_direction INTEGER,
		create_date TIMESTAMPTZ NOT NULL,
		update_date TIMESTAMPTZ NOT NULL
	);`

	if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
