package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createItemsTable = `
	CREATE TABLE IF NOT EXISTS items (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price DECIMAL NOT NULL CHECK (price >= 0)
	);
`

// Initialize creates the items table if it does not exist. It is idempotent
// and runs once at startup.
func Initialize(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createItemsTable); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}
	log.Println("Database initialized successfully")
	return nil
}
