package domain_test

import (
	"testing"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_GrandTotal(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        decimal.Decimal
	}{
		{
			name:        "bill only",
			transaction: domain.Transaction{TotalBill: decimal.NewFromInt(200)},
			want:        decimal.NewFromInt(200),
		},
		{
			name: "bill with charges tax and discount",
			transaction: domain.Transaction{
				TotalBill:         decimal.NewFromInt(200),
				AdditionalCharges: decimal.NewFromInt(15),
				FlatTax:           decimal.NewFromInt(10),
				FlatDiscount:      decimal.NewFromInt(25),
			},
			want: decimal.NewFromInt(200),
		},
		{
			name: "fractional amounts",
			transaction: domain.Transaction{
				TotalBill:    decimal.RequireFromString("99.99"),
				FlatDiscount: decimal.RequireFromString("0.99"),
			},
			want: decimal.NewFromInt(99),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transaction.GrandTotal()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestTransaction_UsesPaymentMethod(t *testing.T) {
	txn := domain.Transaction{
		PaymentMethodFromID: stringPtr("cash"),
		PaymentMethodToID:   stringPtr("bank"),
	}

	assert.True(t, txn.UsesPaymentMethod("cash"))
	assert.True(t, txn.UsesPaymentMethod("bank"))
	assert.False(t, txn.UsesPaymentMethod("wallet"))
	assert.False(t, domain.Transaction{}.UsesPaymentMethod("cash"))
}

func TestPartyRole_Class(t *testing.T) {
	tests := []struct {
		role domain.PartyRole
		want domain.RoleClass
	}{
		{domain.RoleCustomer, domain.RoleClassCustomer},
		{domain.RoleWalkInCustomer, domain.RoleClassCustomer},
		{domain.RoleVendor, domain.RoleClassVendor},
		{domain.RoleDefaultVendor, domain.RoleClassVendor},
		{domain.RoleInvestor, domain.RoleClassInvestor},
		{domain.RoleExpense, domain.RoleClassNone},
		{domain.RoleExtraIncome, domain.RoleClassNone},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Class())
		})
	}
}

func TestAggregateQuantities(t *testing.T) {
	levels := domain.AggregateQuantities([]domain.ProductQuantity{
		{ProductID: "p1", WarehouseID: "w1", Current: decimal.NewFromInt(3), Minimum: decimal.NewFromInt(2)},
		{ProductID: "p1", WarehouseID: "w2", Current: decimal.NewFromInt(1), Minimum: decimal.NewFromInt(3)},
		{ProductID: "p2", WarehouseID: "w1", Current: decimal.NewFromInt(10), Opening: decimal.NewFromInt(4)},
	})

	assert.Len(t, levels, 2)
	assert.True(t, decimal.NewFromInt(4).Equal(levels["p1"].Current))
	assert.True(t, decimal.NewFromInt(5).Equal(levels["p1"].Minimum))
	assert.True(t, levels["p1"].IsOutOfStock())
	assert.False(t, levels["p2"].IsOutOfStock(), "no minimum configured")
	assert.True(t, decimal.NewFromInt(4).Equal(levels["p2"].Opening))
}

func TestProfitLossBreakdown_Sum(t *testing.T) {
	b := domain.ProfitLossBreakdown{
		SaleAmount:                decimal.NewFromInt(1000),
		CostOfSoldProducts:        decimal.NewFromInt(600),
		DiscountTaken:             decimal.NewFromInt(20),
		DiscountGiven:             decimal.NewFromInt(30),
		TotalExpenses:             decimal.NewFromInt(100),
		TotalIncome:               decimal.NewFromInt(50),
		AdditionalChargesReceived: decimal.NewFromInt(10),
		AdditionalChargesPaid:     decimal.NewFromInt(5),
		TaxPaid:                   decimal.NewFromInt(7),
		TaxReceived:               decimal.NewFromInt(12),
	}

	// 1000 - 600 + 20 - 30 - 100 + 50 + 10 - 5 - 7 + 12
	assert.True(t, decimal.NewFromInt(350).Equal(b.Sum()))
}

func TestReportFilters_WithDefaults(t *testing.T) {
	f := domain.ReportFilters{ReportType: domain.ReportSale}.WithDefaults()
	assert.Equal(t, domain.DateThisMonth, f.DateFilter)
	assert.Equal(t, domain.SortDateDesc, f.SortBy)

	kept := domain.ReportFilters{DateFilter: domain.DateAllTime, SortBy: domain.SortTitleAsc}.WithDefaults()
	assert.Equal(t, domain.DateAllTime, kept.DateFilter)
	assert.Equal(t, domain.SortTitleAsc, kept.SortBy)
}

func stringPtr(s string) *string {
	return &s
}
