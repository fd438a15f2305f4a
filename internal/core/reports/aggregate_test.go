package reports_test

import (
	"testing"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testLookups() reports.Lookups {
	return reports.NewLookups(
		[]domain.Product{
			{ProductID: "p1", Title: "Rice", CategoryID: strPtr("c1")},
			{ProductID: "p2", Title: "Tea"},
			{ProductID: "p3", Title: "Sugar", CategoryID: strPtr("deleted")},
		},
		[]domain.Party{
			{PartyID: "cu1", Name: "Ali", AreaID: strPtr("a1"), CategoryID: strPtr("pc1")},
			{PartyID: "cu2", Name: "Sara"},
		},
		[]domain.Category{
			{CategoryID: "c1", Title: "Grains", Kind: domain.CategoryKindProduct},
			{CategoryID: "a1", Title: "North", Kind: domain.CategoryKindPartyArea},
			{CategoryID: "pc1", Title: "Retail", Kind: domain.CategoryKindPartyCategory},
		},
	)
}

func TestLookups_Dimensions(t *testing.T) {
	l := testLookups()

	tests := []struct {
		name      string
		group     domain.GroupBy
		productID string
		partyID   string
		want      reports.DimensionKey
	}{
		{"product", domain.GroupByProduct, "p1", "", reports.DimensionKey{ID: "p1", Label: "Rice"}},
		{"deleted product", domain.GroupByProduct, "gone", "", reports.DimensionKey{Label: reports.UnknownProduct}},
		{"default grouping is product", domain.GroupByNone, "p2", "", reports.DimensionKey{ID: "p2", Label: "Tea"}},
		{"product category", domain.GroupByProductCategory, "p1", "", reports.DimensionKey{ID: "c1", Label: "Grains"}},
		{"product without category", domain.GroupByProductCategory, "p2", "", reports.DimensionKey{Label: reports.Uncategorized}},
		{"product with deleted category", domain.GroupByProductCategory, "p3", "", reports.DimensionKey{Label: reports.Uncategorized}},
		{"party", domain.GroupByParty, "", "cu1", reports.DimensionKey{ID: "cu1", Label: "Ali"}},
		{"deleted party", domain.GroupByParty, "", "gone", reports.DimensionKey{Label: reports.UnknownParty}},
		{"party area", domain.GroupByPartyArea, "", "cu1", reports.DimensionKey{ID: "a1", Label: "North"}},
		{"party without area", domain.GroupByPartyArea, "", "cu2", reports.DimensionKey{Label: reports.NoArea}},
		{"party category", domain.GroupByPartyCategory, "", "cu1", reports.DimensionKey{ID: "pc1", Label: "Retail"}},
		{"party without category", domain.GroupByPartyCategory, "", "cu2", reports.DimensionKey{Label: reports.NoCategory}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Dimension(tt.group)(tt.productID, tt.partyID))
		})
	}
}

func TestAggregate_PreservesTotalsAndOrder(t *testing.T) {
	l := testLookups()
	details := []domain.TransactionDetail{
		{ProductID: strPtr("p2"), Quantity: dec("1"), Price: dec("10")},
		{ProductID: strPtr("p1"), Quantity: dec("2"), Price: dec("30")},
		{ProductID: strPtr("gone"), Quantity: dec("1"), Price: dec("5")},
		{ProductID: strPtr("p2"), Quantity: dec("3"), Price: dec("10")},
		{Quantity: dec("4"), Price: dec("1")},
	}

	run := func() *reports.OrderedMap[decimal.Decimal] {
		return reports.Aggregate(details,
			func(d domain.TransactionDetail) string {
				return l.ProductKey(d.ProductRef(), "").Label
			},
			func(string) decimal.Decimal { return decimal.Zero },
			func(acc decimal.Decimal, d domain.TransactionDetail) decimal.Decimal { return acc.Add(d.Amount()) },
		)
	}
	grouped := run()

	assert.Equal(t, []string{"Tea", "Rice", reports.UnknownProduct}, grouped.Keys())
	tea, ok := grouped.Get("Tea")
	assert.True(t, ok)
	assertDecimal(t, "40", tea)
	unknown, _ := grouped.Get(reports.UnknownProduct)
	assertDecimal(t, "9", unknown)

	total := decimal.Zero
	for _, e := range grouped.Entries() {
		total = total.Add(e.Value)
	}
	assertDecimal(t, "109", total)

	again := run()
	assert.Equal(t, grouped.Keys(), again.Keys())
	for _, e := range again.Entries() {
		prev, _ := grouped.Get(e.Key)
		assert.True(t, prev.Equal(e.Value))
	}
}

func TestDimensionKey_RowID(t *testing.T) {
	assert.Equal(t, "p1", reports.DimensionKey{ID: "p1", Label: "Rice"}.RowID())
	assert.Equal(t, "unknown", reports.DimensionKey{Label: reports.UnknownProduct}.RowID())
}

func TestDimensionTitle(t *testing.T) {
	assert.Equal(t, "Product", reports.DimensionTitle(domain.GroupByProduct, "Customer"))
	assert.Equal(t, "Customer", reports.DimensionTitle(domain.GroupByParty, "Customer"))
	assert.Equal(t, "Area", reports.DimensionTitle(domain.GroupByPartyArea, "Customer"))
	assert.Equal(t, "Category", reports.DimensionTitle(domain.GroupByPartyCategory, "Customer"))
	assert.True(t, reports.IsPartyDimension(domain.GroupByPartyArea))
	assert.False(t, reports.IsPartyDimension(domain.GroupByProductCategory))
}
