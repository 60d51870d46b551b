// Package postgres implements the repositories against an external
// PostgreSQL store. Schema provisioning is owned by the deployment; the
// repositories expect the users and transactions relations to exist.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const connectTimeout = 5 * time.Second

// Open connects to postgres using the pgx stdlib driver and verifies the
// connection with a ping.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}
