package models

import "github.com/shopspring/decimal"

// Product is a row of the products table.
type Product struct {
	ProductID            string          `db:"product_id"`
	BusinessID           string          `db:"business_id"`
	Title                string          `db:"title"`
	CategoryID           *string         `db:"category_id"` // Nullable
	AvgPurchasePrice     decimal.Decimal `db:"avg_purchase_price"`
	PurchasePrice        decimal.Decimal `db:"purchase_price"`
	RetailPrice          decimal.Decimal `db:"retail_price"`
	WholesalePrice       decimal.Decimal `db:"wholesale_price"`
	OpeningPurchasePrice decimal.Decimal `db:"opening_purchase_price"`
	IsActive             bool            `db:"is_active"`
	AuditFields
}

// ProductQuantity is a row of the product_quantities table.
type ProductQuantity struct {
	ProductID   string          `db:"product_id"`
	WarehouseID string          `db:"warehouse_id"`
	Current     decimal.Decimal `db:"current_quantity"`
	Opening     decimal.Decimal `db:"opening_quantity"`
	Minimum     decimal.Decimal `db:"minimum_quantity"`
	Maximum     decimal.Decimal `db:"maximum_quantity"`
}
