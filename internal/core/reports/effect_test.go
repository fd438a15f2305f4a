package reports_test

import (
	"testing"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/stretchr/testify/assert"
)

func TestBalanceEffect(t *testing.T) {
	bill := func(typ domain.TransactionType) domain.Transaction {
		return domain.Transaction{
			Type:              typ,
			TotalBill:         dec("200"),
			AdditionalCharges: dec("20"),
			FlatTax:           dec("10"),
			FlatDiscount:      dec("30"),
			TotalPaid:         dec("50"),
		}
	}

	tests := []struct {
		name  string
		typ   domain.TransactionType
		class domain.RoleClass
		want  string
	}{
		{"sale to customer", domain.Sale, domain.RoleClassCustomer, "150"},
		{"customer return", domain.CustomerReturn, domain.RoleClassCustomer, "-150"},
		{"received from customer", domain.GetFromCustomer, domain.RoleClassCustomer, "-50"},
		{"paid to customer", domain.PayToCustomer, domain.RoleClassCustomer, "50"},
		{"purchase ignored for customer", domain.Purchase, domain.RoleClassCustomer, "0"},
		{"expense ignored for customer", domain.Expense, domain.RoleClassCustomer, "0"},
		{"purchase from vendor", domain.Purchase, domain.RoleClassVendor, "150"},
		{"vendor return", domain.VendorReturn, domain.RoleClassVendor, "-150"},
		{"paid to vendor", domain.PayToVendor, domain.RoleClassVendor, "-50"},
		{"received from vendor", domain.GetFromVendor, domain.RoleClassVendor, "50"},
		{"sale ignored for vendor", domain.Sale, domain.RoleClassVendor, "0"},
		{"investor sees sale", domain.Sale, domain.RoleClassInvestor, "150"},
		{"investor sees purchase", domain.Purchase, domain.RoleClassInvestor, "150"},
		{"investor sees payment to vendor", domain.PayToVendor, domain.RoleClassInvestor, "-50"},
		{"investor ignores stock moves", domain.StockIncrease, domain.RoleClassInvestor, "0"},
		{"no class", domain.Sale, domain.RoleClassNone, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, reports.BalanceEffect(bill(tt.typ), tt.class))
		})
	}
}

func TestBalanceEffect_TotalOverAllTypes(t *testing.T) {
	for _, typ := range domain.AllTransactionTypes() {
		for _, class := range []domain.RoleClass{domain.RoleClassCustomer, domain.RoleClassVendor, domain.RoleClassInvestor} {
			txn := domain.Transaction{Type: typ, TotalBill: dec("10"), TotalPaid: dec("10")}
			assert.NotPanics(t, func() { reports.BalanceEffect(txn, class) })
		}
	}
}

func TestCashScope(t *testing.T) {
	scope := reports.NewCashScope("cash")

	sale := domain.Transaction{Type: domain.Sale, TotalPaid: dec("100")}
	unpaidSale := domain.Transaction{Type: domain.Sale, TotalPaid: dec("0")}
	expense := domain.Transaction{Type: domain.Expense, TotalPaid: dec("40")}
	transferIn := domain.Transaction{Type: domain.PaymentTransfer, TotalPaid: dec("25"), PaymentMethodFromID: strPtr("bank"), PaymentMethodToID: strPtr("cash")}
	transferOut := domain.Transaction{Type: domain.PaymentTransfer, TotalPaid: dec("25"), PaymentMethodFromID: strPtr("cash"), PaymentMethodToID: strPtr("bank")}
	elsewhere := domain.Transaction{Type: domain.PaymentTransfer, TotalPaid: dec("25"), PaymentMethodFromID: strPtr("bank"), PaymentMethodToID: strPtr("wallet")}
	stock := domain.Transaction{Type: domain.StockIncrease, TotalPaid: dec("5")}

	assertDecimal(t, "100", scope.Effect(sale))
	assertDecimal(t, "0", scope.Effect(unpaidSale))
	assertDecimal(t, "-40", scope.Effect(expense))
	assertDecimal(t, "25", scope.Effect(transferIn))
	assertDecimal(t, "-25", scope.Effect(transferOut))
	assertDecimal(t, "0", scope.Effect(elsewhere))
	assertDecimal(t, "0", scope.Effect(stock))

	both := reports.NewCashScope("cash", "bank")
	assertDecimal(t, "0", both.Effect(transferIn))
}

func TestCashScope_IsCredit(t *testing.T) {
	scope := reports.NewCashScope("cash")

	cases := map[domain.TransactionType]bool{
		domain.Sale:               true,
		domain.GetFromCustomer:    true,
		domain.GetFromVendor:      true,
		domain.VendorReturn:       true,
		domain.ExtraIncome:        true,
		domain.InvestmentDeposit:  true,
		domain.Purchase:           false,
		domain.PayToVendor:        false,
		domain.PayToCustomer:      false,
		domain.CustomerReturn:     false,
		domain.Expense:            false,
		domain.InvestmentWithdraw: false,
	}
	for typ, want := range cases {
		t.Run(typ.DisplayName(), func(t *testing.T) {
			txn := domain.Transaction{Type: typ, TotalPaid: dec("1")}
			assert.Equal(t, want, scope.IsCredit(txn))
		})
	}
}
