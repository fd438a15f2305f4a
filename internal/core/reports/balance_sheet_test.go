package reports_test

import (
	"testing"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceivablesAndPayables_UseEachPartySign(t *testing.T) {
	parties := []domain.Party{
		{PartyID: "c", Role: domain.RoleCustomer, Balance: dec("-50")},
		{PartyID: "v", Role: domain.RoleVendor, Balance: dec("30")},
	}

	assertDecimal(t, "50", reports.Receivables(parties).Total)
	assertDecimal(t, "30", reports.Payables(parties).Total)
}

func TestReceivablesAndPayables_ByClass(t *testing.T) {
	parties := []domain.Party{
		{Role: domain.RoleCustomer, Balance: dec("-50")},
		{Role: domain.RoleWalkInCustomer, Balance: dec("20")},
		{Role: domain.RoleVendor, Balance: dec("-5")},
		{Role: domain.RoleDefaultVendor, Balance: dec("30")},
		{Role: domain.RoleInvestor, Balance: dec("1000")},
		{Role: domain.RoleExpense, Balance: dec("-999")},
	}

	r := reports.Receivables(parties)
	assertDecimal(t, "50", r.Customers)
	assertDecimal(t, "5", r.Vendors)
	assertDecimal(t, "0", r.Investors)
	assertDecimal(t, "55", r.Total)

	p := reports.Payables(parties)
	assertDecimal(t, "20", p.Customers)
	assertDecimal(t, "30", p.Vendors)
	assertDecimal(t, "1000", p.Investors)
	assertDecimal(t, "1050", p.Total)
}

func TestProfitLoss(t *testing.T) {
	txns := []domain.Transaction{
		{TransactionID: "s1", Type: domain.Sale, TotalBill: dec("1000"), FlatDiscount: dec("50"), FlatTax: dec("20"), AdditionalCharges: dec("10")},
		{TransactionID: "p1", Type: domain.Purchase, TotalBill: dec("600"), FlatDiscount: dec("15"), FlatTax: dec("6"), AdditionalCharges: dec("4")},
		{TransactionID: "e1", Type: domain.Expense, TotalBill: dec("100"), AdditionalCharges: dec("5")},
		{TransactionID: "i1", Type: domain.ExtraIncome, TotalBill: dec("40")},
	}
	details := []domain.TransactionDetail{
		{TransactionID: "s1", Quantity: dec("10"), Price: dec("100"), Profit: dec("200"), FlatDiscount: dec("5"), FlatTax: dec("2")},
		{TransactionID: "p1", Quantity: dec("6"), Price: dec("100"), FlatDiscount: dec("1")},
	}

	pl := reports.ProfitLoss(txns, details)

	assertDecimal(t, "980", pl.SaleAmount)
	assertDecimal(t, "800", pl.CostOfSoldProducts)
	assertDecimal(t, "55", pl.DiscountGiven)
	assertDecimal(t, "22", pl.TaxReceived)
	assertDecimal(t, "10", pl.AdditionalChargesReceived)
	assertDecimal(t, "16", pl.DiscountTaken)
	assertDecimal(t, "6", pl.TaxPaid)
	assertDecimal(t, "4", pl.AdditionalChargesPaid)
	assertDecimal(t, "105", pl.TotalExpenses)
	assertDecimal(t, "40", pl.TotalIncome)
	// 980 - 800 + 16 - 55 - 105 + 40 + 10 - 4 - 6 + 22
	assertDecimal(t, "98", pl.Total)
}

func TestComposeBalanceSheet(t *testing.T) {
	in := reports.BalanceSheetInput{
		Parties: []domain.Party{
			{PartyID: "c", Role: domain.RoleCustomer, Balance: dec("-50"), OpeningBalance: dec("10")},
			{PartyID: "v", Role: domain.RoleVendor, Balance: dec("30"), OpeningBalance: dec("-4")},
			{PartyID: "x", Role: domain.RoleExpense, OpeningBalance: dec("500")},
		},
		Products: []domain.Product{
			{ProductID: "p1", AvgPurchasePrice: dec("20"), OpeningPurchasePrice: dec("10")},
		},
		Quantities: []domain.ProductQuantity{
			{ProductID: "p1", WarehouseID: "w1", Current: dec("5"), Opening: dec("2")},
			{ProductID: "p1", WarehouseID: "w2", Current: dec("1"), Opening: dec("1")},
		},
		PaymentMethods: []domain.PaymentMethod{
			{PaymentMethodID: "cash", Title: "Cash", Amount: dec("1234.4"), OpeningAmount: dec("100"), Active: true},
			{PaymentMethodID: "old", Title: "Old", Amount: dec("999"), OpeningAmount: dec("7"), Active: false},
		},
	}

	sheet := reports.ComposeBalanceSheet(in, "Rs")
	b := sheet.Breakdowns

	assertDecimal(t, "50", b.Receivables.Total)
	assertDecimal(t, "30", b.Payables.Total)
	assertDecimal(t, "120", b.AvailableStock.Total)
	assertDecimal(t, "1234.4", b.CashInHand.Total)
	require.Len(t, b.CashInHand.Methods, 1)
	assertDecimal(t, "30", b.CapitalInvestment.OpeningStockWorth)
	assertDecimal(t, "6", b.CapitalInvestment.OpeningPartyBalances)
	assertDecimal(t, "107", b.CapitalInvestment.OpeningPaymentAmounts)
	assertDecimal(t, "143", b.CapitalInvestment.Total)
	assertDecimal(t, "1404.4", b.TotalAssets)
	assertDecimal(t, "173", b.TotalLiabilities)

	assert.True(t, b.TotalAssets.Equal(b.Receivables.Total.Add(b.AvailableStock.Total).Add(b.CashInHand.Total)))
	assert.True(t, b.TotalLiabilities.Equal(b.CapitalInvestment.Total.Add(b.Payables.Total).Add(b.ProfitLoss.Total)))

	assert.Equal(t, []string{"Assets", "Liabilities"}, sheet.Columns)
	require.Len(t, sheet.Rows, 11)
	assert.Equal(t, "row_0", sheet.Rows[0].ID)
	assert.Equal(t, []string{"Receivable", "Capital Investment"}, sheet.Rows[0].Values)
	assert.Equal(t, []string{"  Rs 50", "  Rs 143"}, sheet.Rows[1].Values)
	assert.Equal(t, []string{"  Rs 1,234", "  Rs 0"}, sheet.Rows[7].Values)
	assert.Equal(t, []string{"Total Assets", "Total Liabilities"}, sheet.Rows[9].Values)
	assert.Equal(t, []string{"  Rs 1,404", "  Rs 173"}, sheet.Rows[10].Values)
}

func TestPairColumns_PadsShorterSide(t *testing.T) {
	rows := reports.PairColumns([]string{"a", "b", "c"}, []string{"x"})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "x"}, rows[0].Values)
	assert.Equal(t, []string{"c", ""}, rows[2].Values)
	assert.Equal(t, "row_2", rows[2].ID)
}
