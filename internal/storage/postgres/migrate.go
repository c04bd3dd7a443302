package postgres

import (
	"context"
	"database/sql"
)

// Migrate creates the transactions table if it does not exist. It is
// idempotent and must complete before the service accepts calls; a failure
// here is fatal to startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	const ddl = `CREATE TABLE IF NOT EXISTS transactions (
	id SERIAL PRIMARY KEY,
	user_id VARCHAR(255) NOT NULL,
	title VARCHAR(255) NOT NULL,
	amount DECIMAL(10,2) NOT NULL,
	category VARCHAR(255) NOT NULL,
	created_at DATE NOT NULL DEFAULT CURRENT_DATE
	)`

	_, err := db.ExecContext(ctx, ddl)
	return err
}
