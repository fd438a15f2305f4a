package domain

import "github.com/shopspring/decimal"

// ProfitLossBreakdown decomposes the lifetime profit or loss of a business.
type ProfitLossBreakdown struct {
	SaleAmount                decimal.Decimal `json:"saleAmount"`
	CostOfSoldProducts        decimal.Decimal `json:"costOfSoldProducts"`
	DiscountTaken             decimal.Decimal `json:"discountTaken"`
	DiscountGiven             decimal.Decimal `json:"discountGiven"`
	TotalExpenses             decimal.Decimal `json:"totalExpenses"`
	TotalIncome               decimal.Decimal `json:"totalIncome"`
	AdditionalChargesReceived decimal.Decimal `json:"additionalChargesReceived"`
	AdditionalChargesPaid     decimal.Decimal `json:"additionalChargesPaid"`
	TaxPaid                   decimal.Decimal `json:"taxPaid"`
	TaxReceived               decimal.Decimal `json:"taxReceived"`
	Total                     decimal.Decimal `json:"totalProfitLoss"`
}

// Sum applies the documented signs to every component.
func (b ProfitLossBreakdown) Sum() decimal.Decimal {
	return b.SaleAmount.
		Sub(b.CostOfSoldProducts).
		Add(b.DiscountTaken).
		Sub(b.DiscountGiven).
		Sub(b.TotalExpenses).
		Add(b.TotalIncome).
		Add(b.AdditionalChargesReceived).
		Sub(b.AdditionalChargesPaid).
		Sub(b.TaxPaid).
		Add(b.TaxReceived)
}

// ReceivableBreakdown is money owed to the business, by counterparty class.
type ReceivableBreakdown struct {
	Customers decimal.Decimal `json:"customerReceivables"`
	Vendors   decimal.Decimal `json:"vendorReceivables"`
	Investors decimal.Decimal `json:"investorReceivables"`
	Total     decimal.Decimal `json:"totalReceivables"`
}

// PayableBreakdown is money the business owes, by counterparty class.
type PayableBreakdown struct {
	Customers decimal.Decimal `json:"customerPayables"`
	Vendors   decimal.Decimal `json:"vendorPayables"`
	Investors decimal.Decimal `json:"investorPayables"`
	Total     decimal.Decimal `json:"totalPayables"`
}

// PaymentMethodAmount is one line of the cash in hand breakdown.
type PaymentMethodAmount struct {
	PaymentMethodID string          `json:"paymentMethodID"`
	Title           string          `json:"title"`
	Amount          decimal.Decimal `json:"amount"`
}

// CashInHandBreakdown is the money held per payment method.
type CashInHandBreakdown struct {
	Methods []PaymentMethodAmount `json:"paymentMethods"`
	Total   decimal.Decimal       `json:"totalCashInHand"`
}

// CapitalInvestmentBreakdown is the opening capital of the business.
type CapitalInvestmentBreakdown struct {
	OpeningStockWorth     decimal.Decimal `json:"openingStockWorth"`
	OpeningPartyBalances  decimal.Decimal `json:"openingPartyBalances"`
	OpeningPaymentAmounts decimal.Decimal `json:"openingPaymentAmounts"`
	Total                 decimal.Decimal `json:"totalCapitalInvestment"`
}

// AvailableStockBreakdown is the current stock valued at average cost.
type AvailableStockBreakdown struct {
	Total decimal.Decimal `json:"totalAvailableStock"`
}

// BalanceSheetBreakdowns keeps every component behind the balance sheet totals.
type BalanceSheetBreakdowns struct {
	ProfitLoss        ProfitLossBreakdown        `json:"profitLoss"`
	Receivables       ReceivableBreakdown        `json:"receivables"`
	Payables          PayableBreakdown           `json:"payables"`
	CashInHand        CashInHandBreakdown        `json:"cashInHand"`
	CapitalInvestment CapitalInvestmentBreakdown `json:"capitalInvestment"`
	AvailableStock    AvailableStockBreakdown    `json:"availableStock"`
	TotalAssets       decimal.Decimal            `json:"totalAssets"`
	TotalLiabilities  decimal.Decimal            `json:"totalLiabilities"`
}
