package domain

import "github.com/shopspring/decimal"

// Product is a stock item. AvgPurchasePrice is the moving average cost.
type Product struct {
	ProductID            string          `json:"productID"`
	BusinessID           string          `json:"businessID"`
	Title                string          `json:"title"`
	CategoryID           *string         `json:"categoryID,omitempty"`
	AvgPurchasePrice     decimal.Decimal `json:"avgPurchasePrice"`
	PurchasePrice        decimal.Decimal `json:"purchasePrice"`
	RetailPrice          decimal.Decimal `json:"retailPrice"`
	WholesalePrice       decimal.Decimal `json:"wholesalePrice"`
	OpeningPurchasePrice decimal.Decimal `json:"openingPurchasePrice"`
	Active               bool            `json:"active"`
	AuditFields
}

// ProductsByID indexes products by id.
func ProductsByID(products []Product) map[string]Product {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}
	return byID
}

// ProductQuantity is the stock of one product in one warehouse.
type ProductQuantity struct {
	ProductID   string          `json:"productID"`
	WarehouseID string          `json:"warehouseID"`
	Current     decimal.Decimal `json:"currentQuantity"`
	Opening     decimal.Decimal `json:"openingQuantity"`
	Minimum     decimal.Decimal `json:"minimumQuantity"`
	Maximum     decimal.Decimal `json:"maximumQuantity"`
}

// StockLevel is the stock of one product summed over all warehouses.
type StockLevel struct {
	Current decimal.Decimal
	Opening decimal.Decimal
	Minimum decimal.Decimal
	Maximum decimal.Decimal
}

// IsOutOfStock is true when a minimum is configured and current stock is at or below it.
func (s StockLevel) IsOutOfStock() bool {
	return s.Minimum.IsPositive() && s.Current.LessThanOrEqual(s.Minimum)
}

// AggregateQuantities sums per warehouse quantities into one level per product.
func AggregateQuantities(quantities []ProductQuantity) map[string]StockLevel {
	levels := make(map[string]StockLevel)
	for _, q := range quantities {
		lvl := levels[q.ProductID]
		lvl.Current = lvl.Current.Add(q.Current)
		lvl.Opening = lvl.Opening.Add(q.Opening)
		lvl.Minimum = lvl.Minimum.Add(q.Minimum)
		lvl.Maximum = lvl.Maximum.Add(q.Maximum)
		levels[q.ProductID] = lvl
	}
	return levels
}

// PaymentMethod is a cash or bank account.
type PaymentMethod struct {
	PaymentMethodID string          `json:"paymentMethodID"`
	BusinessID      string          `json:"businessID"`
	Title           string          `json:"title"`
	Amount          decimal.Decimal `json:"amount"`
	OpeningAmount   decimal.Decimal `json:"openingAmount"`
	Active          bool            `json:"active"`
}
