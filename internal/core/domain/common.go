package domain

import "time"

// AuditFields holds the bookkeeping timestamps recorded by the entry flows.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Category is a business defined label. The same table holds product
// categories, party areas and party categories, told apart by Kind.
type Category struct {
	CategoryID string       `json:"categoryID"`
	BusinessID string       `json:"businessID"`
	Title      string       `json:"title"`
	Kind       CategoryKind `json:"kind"`
}

// CategoryKind tells which dimension a Category belongs to.
type CategoryKind int

const (
	CategoryKindProduct CategoryKind = iota + 1
	CategoryKindPartyArea
	CategoryKindPartyCategory
)

// Warehouse is a stock location.
type Warehouse struct {
	WarehouseID string `json:"warehouseID"`
	BusinessID  string `json:"businessID"`
	Title       string `json:"title"`
}

// CategoryTitles indexes category titles by id.
func CategoryTitles(categories []Category) map[string]string {
	titles := make(map[string]string, len(categories))
	for _, c := range categories {
		titles[c.CategoryID] = c.Title
	}
	return titles
}
