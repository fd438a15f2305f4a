package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields are the bookkeeping columns shared by the ledger tables.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Category is a row of the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	BusinessID string `db:"business_id"`
	Title      string `db:"title"`
	Kind       int16  `db:"kind"`
}

// Warehouse is a row of the warehouses table.
type Warehouse struct {
	WarehouseID string `db:"warehouse_id"`
	BusinessID  string `db:"business_id"`
	Title       string `db:"title"`
}

// PaymentMethod is a row of the payment_methods table.
type PaymentMethod struct {
	PaymentMethodID string          `db:"payment_method_id"`
	BusinessID      string          `db:"business_id"`
	Title           string          `db:"title"`
	Amount          decimal.Decimal `db:"amount"`
	OpeningAmount   decimal.Decimal `db:"opening_amount"`
	IsActive        bool            `db:"is_active"`
}
