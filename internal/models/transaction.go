package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. TransactionType holds the
// persisted numeric type code.
type Transaction struct {
	TransactionID       string          `db:"transaction_id"`
	BusinessID          string          `db:"business_id"`
	PartyID             *string         `db:"party_id"` // Nullable
	TransactionType     int16           `db:"transaction_type"`
	TotalBill           decimal.Decimal `db:"total_bill"`
	FlatTax             decimal.Decimal `db:"flat_tax"`
	FlatDiscount        decimal.Decimal `db:"flat_discount"`
	AdditionalCharges   decimal.Decimal `db:"additional_charges"`
	TotalPaid           decimal.Decimal `db:"total_paid"`
	PaymentMethodFromID *string         `db:"payment_method_from_id"` // Nullable
	PaymentMethodToID   *string         `db:"payment_method_to_id"`   // Nullable
	Description         *string         `db:"description"`            // Nullable
	TransactionTS       time.Time       `db:"transaction_ts"`
	AuditFields
}

// TransactionDetail is a row of the transaction_details table.
type TransactionDetail struct {
	DetailID      string          `db:"detail_id"`
	TransactionID string          `db:"transaction_id"`
	ProductID     *string         `db:"product_id"` // Nullable
	Quantity      decimal.Decimal `db:"quantity"`
	Price         decimal.Decimal `db:"price"`
	FlatDiscount  decimal.Decimal `db:"flat_discount"`
	FlatTax       decimal.Decimal `db:"flat_tax"`
	Profit        decimal.Decimal `db:"profit"`
}
