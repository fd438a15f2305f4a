package reports

import (
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
)

// Placeholders used when a historical record points at a deleted entity.
const (
	UnknownProduct = "Unknown Product"
	UnknownParty   = "Unknown"
	Uncategorized  = "Uncategorized"
	NoArea         = "No Area"
	NoCategory     = "No Category"
)

// Entry is one key of an OrderedMap.
type Entry[A any] struct {
	Key   string
	Value A
}

// OrderedMap keeps accumulators in first-seen key order.
type OrderedMap[A any] struct {
	keys   []string
	values map[string]A
}

func newOrderedMap[A any]() *OrderedMap[A] {
	return &OrderedMap[A]{values: make(map[string]A)}
}

// Len returns the number of keys.
func (m *OrderedMap[A]) Len() int {
	return len(m.keys)
}

// Get returns the accumulator for key.
func (m *OrderedMap[A]) Get(key string) (A, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in first-seen order.
func (m *OrderedMap[A]) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Entries returns key/value pairs in first-seen order.
func (m *OrderedMap[A]) Entries() []Entry[A] {
	out := make([]Entry[A], 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Entry[A]{Key: k, Value: m.values[k]})
	}
	return out
}

// Aggregate folds records into one accumulator per key. update receives the
// previous accumulator and returns the next one.
func Aggregate[R any, A any](records []R, key func(R) string, init func(key string) A, update func(A, R) A) *OrderedMap[A] {
	out := newOrderedMap[A]()
	for _, r := range records {
		k := key(r)
		acc, ok := out.values[k]
		if !ok {
			acc = init(k)
			out.keys = append(out.keys, k)
		}
		out.values[k] = update(acc, r)
	}
	return out
}

// DimensionKey identifies a group. ID is empty for the placeholder group.
type DimensionKey struct {
	ID    string
	Label string
}

// RowID is the id used for report rows of the group.
func (k DimensionKey) RowID() string {
	if k.ID == "" {
		return "unknown"
	}
	return k.ID
}

// DimensionFunc resolves the group of a detail line or transaction.
type DimensionFunc func(productID, partyID string) DimensionKey

// Lookups resolves ids of products, parties and categories into group keys.
type Lookups struct {
	Products   map[string]domain.Product
	Parties    map[string]domain.Party
	Categories map[string]string
}

// NewLookups indexes reference data for dimension resolution.
func NewLookups(products []domain.Product, parties []domain.Party, categories []domain.Category) Lookups {
	return Lookups{
		Products:   domain.ProductsByID(products),
		Parties:    domain.PartiesByID(parties),
		Categories: domain.CategoryTitles(categories),
	}
}

// ProductKey groups by product.
func (l Lookups) ProductKey(productID, _ string) DimensionKey {
	if p, ok := l.Products[productID]; ok {
		return DimensionKey{ID: p.ProductID, Label: p.Title}
	}
	return DimensionKey{Label: UnknownProduct}
}

// ProductCategoryKey groups by the category of the product.
func (l Lookups) ProductCategoryKey(productID, _ string) DimensionKey {
	p, ok := l.Products[productID]
	if !ok || p.CategoryID == nil {
		return DimensionKey{Label: Uncategorized}
	}
	return l.categoryKey(*p.CategoryID, Uncategorized)
}

// PartyKey groups by counterparty.
func (l Lookups) PartyKey(_, partyID string) DimensionKey {
	if p, ok := l.Parties[partyID]; ok {
		return DimensionKey{ID: p.PartyID, Label: p.Name}
	}
	return DimensionKey{Label: UnknownParty}
}

// PartyAreaKey groups by the area of the counterparty.
func (l Lookups) PartyAreaKey(_, partyID string) DimensionKey {
	p, ok := l.Parties[partyID]
	if !ok || p.AreaID == nil {
		return DimensionKey{Label: NoArea}
	}
	return l.categoryKey(*p.AreaID, NoArea)
}

// PartyCategoryKey groups by the category of the counterparty.
func (l Lookups) PartyCategoryKey(_, partyID string) DimensionKey {
	p, ok := l.Parties[partyID]
	if !ok || p.CategoryID == nil {
		return DimensionKey{Label: NoCategory}
	}
	return l.categoryKey(*p.CategoryID, NoCategory)
}

func (l Lookups) categoryKey(categoryID, placeholder string) DimensionKey {
	if title, ok := l.Categories[categoryID]; ok {
		return DimensionKey{ID: categoryID, Label: title}
	}
	return DimensionKey{Label: placeholder}
}

// Dimension returns the key function for a grouping. Unknown groupings fall
// back to product.
func (l Lookups) Dimension(g domain.GroupBy) DimensionFunc {
	switch g {
	case domain.GroupByProductCategory:
		return l.ProductCategoryKey
	case domain.GroupByParty:
		return l.PartyKey
	case domain.GroupByPartyArea:
		return l.PartyAreaKey
	case domain.GroupByPartyCategory:
		return l.PartyCategoryKey
	default:
		return l.ProductKey
	}
}

// IsPartyDimension reports whether the grouping works on whole transactions.
func IsPartyDimension(g domain.GroupBy) bool {
	return g == domain.GroupByParty || g == domain.GroupByPartyArea || g == domain.GroupByPartyCategory
}

// DimensionTitle is the column header of the group column.
func DimensionTitle(g domain.GroupBy, partyTitle string) string {
	switch g {
	case domain.GroupByProductCategory, domain.GroupByPartyCategory:
		return "Category"
	case domain.GroupByParty:
		return partyTitle
	case domain.GroupByPartyArea:
		return "Area"
	default:
		return "Product"
	}
}
