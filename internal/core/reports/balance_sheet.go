package reports

import (
	"fmt"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfitLossTransactionTypes are the types that feed the lifetime profit or loss.
func ProfitLossTransactionTypes() []domain.TransactionType {
	return []domain.TransactionType{domain.Sale, domain.Purchase, domain.Expense, domain.ExtraIncome}
}

// BalanceSheetInput is the lifetime snapshot a balance sheet is built from.
type BalanceSheetInput struct {
	Parties        []domain.Party
	Products       []domain.Product
	Quantities     []domain.ProductQuantity
	PaymentMethods []domain.PaymentMethod
	Transactions   []domain.Transaction
	Details        []domain.TransactionDetail
}

// BalanceSheet is the composed balance sheet.
type BalanceSheet struct {
	Breakdowns domain.BalanceSheetBreakdowns
	Columns    []string
	Rows       []domain.ReportRow
}

// ComposeBalanceSheet computes both sides independently and pairs them into rows.
// Assets = receivables + stock + cash. Liabilities = capital + payables + profit/loss.
// The two totals are not expected to match.
func ComposeBalanceSheet(in BalanceSheetInput, currencySymbol string) BalanceSheet {
	b := domain.BalanceSheetBreakdowns{
		Receivables:       Receivables(in.Parties),
		Payables:          Payables(in.Parties),
		AvailableStock:    AvailableStock(in.Products, in.Quantities),
		CashInHand:        CashInHand(in.PaymentMethods),
		CapitalInvestment: CapitalInvestment(in.Parties, in.Products, in.Quantities, in.PaymentMethods),
		ProfitLoss:        ProfitLoss(in.Transactions, in.Details),
	}
	b.TotalAssets = b.Receivables.Total.Add(b.AvailableStock.Total).Add(b.CashInHand.Total)
	b.TotalLiabilities = b.CapitalInvestment.Total.Add(b.Payables.Total).Add(b.ProfitLoss.Total)

	cell := func(d decimal.Decimal) string {
		return fmt.Sprintf("  %s %s", currencySymbol, FormatWhole(d))
	}
	assets := []string{
		"Receivable", cell(b.Receivables.Total), "",
		"Available Stock", cell(b.AvailableStock.Total), "",
		"Cash in Hand", cell(b.CashInHand.Total), "",
		"Total Assets", cell(b.TotalAssets),
	}
	liabilities := []string{
		"Capital Investment", cell(b.CapitalInvestment.Total), "",
		"Payables", cell(b.Payables.Total), "",
		"Current Profit/Loss", cell(b.ProfitLoss.Total), "",
		"Total Liabilities", cell(b.TotalLiabilities),
	}

	return BalanceSheet{
		Breakdowns: b,
		Columns:    []string{"Assets", "Liabilities"},
		Rows:       PairColumns(assets, liabilities),
	}
}

// PairColumns zips two cell lists into rows, padding the shorter one with blanks.
func PairColumns(left, right []string) []domain.ReportRow {
	n := max(len(left), len(right))
	rows := make([]domain.ReportRow, 0, n)
	for i := 0; i < n; i++ {
		l, r := "", ""
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		rows = append(rows, domain.ReportRow{ID: fmt.Sprintf("row_%d", i), Values: []string{l, r}})
	}
	return rows
}

// Receivables sums the parties with a negative balance, per class, as positive amounts.
func Receivables(parties []domain.Party) domain.ReceivableBreakdown {
	var out domain.ReceivableBreakdown
	for _, p := range parties {
		if !p.Balance.IsNegative() {
			continue
		}
		owed := p.Balance.Neg()
		switch p.Role.Class() {
		case domain.RoleClassCustomer:
			out.Customers = out.Customers.Add(owed)
		case domain.RoleClassVendor:
			out.Vendors = out.Vendors.Add(owed)
		case domain.RoleClassInvestor:
			out.Investors = out.Investors.Add(owed)
		}
	}
	out.Total = out.Customers.Add(out.Vendors).Add(out.Investors)
	return out
}

// Payables sums the parties with a positive balance, per class.
func Payables(parties []domain.Party) domain.PayableBreakdown {
	var out domain.PayableBreakdown
	for _, p := range parties {
		if !p.Balance.IsPositive() {
			continue
		}
		switch p.Role.Class() {
		case domain.RoleClassCustomer:
			out.Customers = out.Customers.Add(p.Balance)
		case domain.RoleClassVendor:
			out.Vendors = out.Vendors.Add(p.Balance)
		case domain.RoleClassInvestor:
			out.Investors = out.Investors.Add(p.Balance)
		}
	}
	out.Total = out.Customers.Add(out.Vendors).Add(out.Investors)
	return out
}

// AvailableStock values current stock at average purchase price.
func AvailableStock(products []domain.Product, quantities []domain.ProductQuantity) domain.AvailableStockBreakdown {
	byID := domain.ProductsByID(products)
	total := decimal.Zero
	for _, q := range quantities {
		total = total.Add(q.Current.Mul(byID[q.ProductID].AvgPurchasePrice))
	}
	return domain.AvailableStockBreakdown{Total: total}
}

// CashInHand sums the amounts of active payment methods.
func CashInHand(methods []domain.PaymentMethod) domain.CashInHandBreakdown {
	out := domain.CashInHandBreakdown{Methods: []domain.PaymentMethodAmount{}}
	for _, m := range methods {
		if !m.Active {
			continue
		}
		out.Methods = append(out.Methods, domain.PaymentMethodAmount{
			PaymentMethodID: m.PaymentMethodID,
			Title:           m.Title,
			Amount:          m.Amount,
		})
		out.Total = out.Total.Add(m.Amount)
	}
	return out
}

// CapitalInvestment is opening stock worth plus opening party balances plus
// opening payment method amounts.
func CapitalInvestment(parties []domain.Party, products []domain.Product, quantities []domain.ProductQuantity, methods []domain.PaymentMethod) domain.CapitalInvestmentBreakdown {
	var out domain.CapitalInvestmentBreakdown
	byID := domain.ProductsByID(products)
	for _, q := range quantities {
		out.OpeningStockWorth = out.OpeningStockWorth.Add(q.Opening.Mul(byID[q.ProductID].OpeningPurchasePrice))
	}
	for _, p := range parties {
		if p.Role.Class() == domain.RoleClassNone {
			continue
		}
		out.OpeningPartyBalances = out.OpeningPartyBalances.Add(p.OpeningBalance)
	}
	for _, m := range methods {
		out.OpeningPaymentAmounts = out.OpeningPaymentAmounts.Add(m.OpeningAmount)
	}
	out.Total = out.OpeningStockWorth.Add(out.OpeningPartyBalances).Add(out.OpeningPaymentAmounts)
	return out
}

// ProfitLoss folds lifetime transactions into the profit/loss components and
// sums them in one expression.
func ProfitLoss(txns []domain.Transaction, details []domain.TransactionDetail) domain.ProfitLossBreakdown {
	var out domain.ProfitLossBreakdown
	lines := domain.DetailsByTransaction(details)

	for _, txn := range txns {
		items := lines[txn.TransactionID]
		switch txn.Type {
		case domain.Sale:
			out.SaleAmount = out.SaleAmount.Add(txn.GrandTotal())
			for _, d := range items {
				out.CostOfSoldProducts = out.CostOfSoldProducts.Add(d.Amount().Sub(d.Profit))
			}
			out.DiscountGiven = out.DiscountGiven.Add(txn.FlatDiscount).Add(sumDetails(items, detailDiscount))
			out.AdditionalChargesReceived = out.AdditionalChargesReceived.Add(txn.AdditionalCharges)
			out.TaxReceived = out.TaxReceived.Add(txn.FlatTax).Add(sumDetails(items, detailTax))
		case domain.Purchase:
			out.DiscountTaken = out.DiscountTaken.Add(txn.FlatDiscount).Add(sumDetails(items, detailDiscount))
			out.AdditionalChargesPaid = out.AdditionalChargesPaid.Add(txn.AdditionalCharges)
			out.TaxPaid = out.TaxPaid.Add(txn.FlatTax).Add(sumDetails(items, detailTax))
		case domain.Expense:
			out.TotalExpenses = out.TotalExpenses.Add(txn.TotalBill).Add(txn.AdditionalCharges)
		case domain.ExtraIncome:
			out.TotalIncome = out.TotalIncome.Add(txn.TotalBill).Add(txn.AdditionalCharges)
		}
	}
	out.Total = out.Sum()
	return out
}

func detailDiscount(d domain.TransactionDetail) decimal.Decimal { return d.FlatDiscount }

func detailTax(d domain.TransactionDetail) decimal.Decimal { return d.FlatTax }

func sumDetails(details []domain.TransactionDetail, field func(domain.TransactionDetail) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(field(d))
	}
	return total
}
