package models

import "github.com/shopspring/decimal"

// Party is a row of the parties table.
type Party struct {
	PartyID        string          `db:"party_id"`
	BusinessID     string          `db:"business_id"`
	Name           string          `db:"name"`
	Role           int16           `db:"role"`
	AreaID         *string         `db:"area_id"`     // Nullable, FK -> categories
	CategoryID     *string         `db:"category_id"` // Nullable, FK -> categories
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	Balance        decimal.Decimal `db:"balance"` // Running balance kept by the entry flows
	AuditFields
}
