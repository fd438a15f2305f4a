// Package sqlite serves the reporting ports from a local SQLite file, the
// storage the mobile and desktop clients keep their ledger in.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite handle shared by the repositories of this package.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	// An in-memory database lives on a single connection.
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close releases the underlying handle.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn exposes the raw handle for fixtures and tooling.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

func (db *DB) migrate(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	for _, stmt := range schemaStatements() {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply sqlite schema: %w", err)
		}
	}
	return nil
}

// schemaStatements mirrors the postgres migrations. Timestamps are epoch
// milliseconds and amounts are decimal strings.
func schemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS businesses (
			business_id     TEXT PRIMARY KEY,
			title           TEXT NOT NULL,
			currency_symbol TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			category_id TEXT PRIMARY KEY,
			business_id TEXT NOT NULL REFERENCES businesses (business_id),
			title       TEXT NOT NULL,
			kind        INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS warehouses (
			warehouse_id TEXT PRIMARY KEY,
			business_id  TEXT NOT NULL REFERENCES businesses (business_id),
			title        TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS parties (
			party_id        TEXT PRIMARY KEY,
			business_id     TEXT NOT NULL REFERENCES businesses (business_id),
			name            TEXT NOT NULL,
			role            INTEGER NOT NULL,
			area_id         TEXT,
			category_id     TEXT,
			opening_balance TEXT NOT NULL DEFAULT '0',
			balance         TEXT NOT NULL DEFAULT '0',
			created_at      INTEGER NOT NULL DEFAULT 0,
			updated_at      INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id             TEXT PRIMARY KEY,
			business_id            TEXT NOT NULL REFERENCES businesses (business_id),
			title                  TEXT NOT NULL,
			category_id            TEXT,
			avg_purchase_price     TEXT NOT NULL DEFAULT '0',
			purchase_price         TEXT NOT NULL DEFAULT '0',
			retail_price           TEXT NOT NULL DEFAULT '0',
			wholesale_price        TEXT NOT NULL DEFAULT '0',
			opening_purchase_price TEXT NOT NULL DEFAULT '0',
			is_active              INTEGER NOT NULL DEFAULT 1,
			created_at             INTEGER NOT NULL DEFAULT 0,
			updated_at             INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS product_quantities (
			product_id       TEXT NOT NULL REFERENCES products (product_id),
			warehouse_id     TEXT NOT NULL REFERENCES warehouses (warehouse_id),
			current_quantity TEXT NOT NULL DEFAULT '0',
			opening_quantity TEXT NOT NULL DEFAULT '0',
			minimum_quantity TEXT NOT NULL DEFAULT '0',
			maximum_quantity TEXT NOT NULL DEFAULT '0',
			PRIMARY KEY (product_id, warehouse_id)
		)`,
		`CREATE TABLE IF NOT EXISTS payment_methods (
			payment_method_id TEXT PRIMARY KEY,
			business_id       TEXT NOT NULL REFERENCES businesses (business_id),
			title             TEXT NOT NULL,
			amount            TEXT NOT NULL DEFAULT '0',
			opening_amount    TEXT NOT NULL DEFAULT '0',
			is_active         INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id         TEXT PRIMARY KEY,
			business_id            TEXT NOT NULL REFERENCES businesses (business_id),
			party_id               TEXT,
			transaction_type       INTEGER NOT NULL,
			total_bill             TEXT NOT NULL DEFAULT '0',
			flat_tax               TEXT NOT NULL DEFAULT '0',
			flat_discount          TEXT NOT NULL DEFAULT '0',
			additional_charges     TEXT NOT NULL DEFAULT '0',
			total_paid             TEXT NOT NULL DEFAULT '0',
			payment_method_from_id TEXT,
			payment_method_to_id   TEXT,
			description            TEXT,
			transaction_ts         INTEGER NOT NULL,
			created_at             INTEGER NOT NULL DEFAULT 0,
			updated_at             INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_report ON transactions (business_id, transaction_type, transaction_ts)`,
		`CREATE TABLE IF NOT EXISTS transaction_details (
			detail_id      TEXT PRIMARY KEY,
			transaction_id TEXT NOT NULL REFERENCES transactions (transaction_id) ON DELETE CASCADE,
			product_id     TEXT,
			quantity       TEXT NOT NULL DEFAULT '0',
			price          TEXT NOT NULL DEFAULT '0',
			flat_discount  TEXT NOT NULL DEFAULT '0',
			flat_tax       TEXT NOT NULL DEFAULT '0',
			profit         TEXT NOT NULL DEFAULT '0'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transaction_details_txn ON transaction_details (transaction_id)`,
	}
}
