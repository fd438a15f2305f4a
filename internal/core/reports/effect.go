package reports

import (
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceEffect returns the signed change a transaction makes to a party balance,
// seen from the given counterparty class. Positive is a debit (the party owes
// more), negative a credit. Types that do not touch the class return zero.
//
// Customer: Sale +(grand-paid), CustomerReturn -(grand-paid), GetFromCustomer -paid, PayToCustomer +paid.
// Vendor:   Purchase +(grand-paid), VendorReturn -(grand-paid), PayToVendor -paid, GetFromVendor +paid.
// Investor: union of both tables.
func BalanceEffect(txn domain.Transaction, class domain.RoleClass) decimal.Decimal {
	switch class {
	case domain.RoleClassCustomer:
		if effect, ok := customerEffect(txn); ok {
			return effect
		}
	case domain.RoleClassVendor:
		if effect, ok := vendorEffect(txn); ok {
			return effect
		}
	case domain.RoleClassInvestor:
		if effect, ok := customerEffect(txn); ok {
			return effect
		}
		if effect, ok := vendorEffect(txn); ok {
			return effect
		}
	}
	return decimal.Zero
}

func customerEffect(txn domain.Transaction) (decimal.Decimal, bool) {
	switch txn.Type {
	case domain.Sale:
		return netOutstanding(txn), true
	case domain.CustomerReturn:
		return netOutstanding(txn).Neg(), true
	case domain.GetFromCustomer:
		return txn.TotalPaid.Neg(), true
	case domain.PayToCustomer:
		return txn.TotalPaid, true
	}
	return decimal.Zero, false
}

func vendorEffect(txn domain.Transaction) (decimal.Decimal, bool) {
	switch txn.Type {
	case domain.Purchase:
		return netOutstanding(txn), true
	case domain.VendorReturn:
		return netOutstanding(txn).Neg(), true
	case domain.PayToVendor:
		return txn.TotalPaid.Neg(), true
	case domain.GetFromVendor:
		return txn.TotalPaid, true
	}
	return decimal.Zero, false
}

func netOutstanding(txn domain.Transaction) decimal.Decimal {
	return txn.GrandTotal().Sub(txn.TotalPaid)
}

// PartyTransactionTypes lists the types that can move a balance of the class.
func PartyTransactionTypes(class domain.RoleClass) []domain.TransactionType {
	customer := []domain.TransactionType{domain.Sale, domain.CustomerReturn, domain.GetFromCustomer, domain.PayToCustomer}
	vendor := []domain.TransactionType{domain.Purchase, domain.VendorReturn, domain.PayToVendor, domain.GetFromVendor}
	switch class {
	case domain.RoleClassCustomer:
		return customer
	case domain.RoleClassVendor:
		return vendor
	case domain.RoleClassInvestor:
		return append(customer, vendor...)
	}
	return nil
}

// alwaysCashTypes move money through a payment method whenever something was paid.
var alwaysCashTypes = map[domain.TransactionType]bool{
	domain.Sale:               true,
	domain.Purchase:           true,
	domain.CustomerReturn:     true,
	domain.VendorReturn:       true,
	domain.PayToCustomer:      true,
	domain.GetFromCustomer:    true,
	domain.PayToVendor:        true,
	domain.GetFromVendor:      true,
	domain.Expense:            true,
	domain.ExtraIncome:        true,
	domain.InvestmentDeposit:  true,
	domain.InvestmentWithdraw: true,
}

// cashInTypes add money to the payment method they use.
var cashInTypes = map[domain.TransactionType]bool{
	domain.Sale:              true,
	domain.VendorReturn:      true,
	domain.GetFromVendor:     true,
	domain.GetFromCustomer:   true,
	domain.ExtraIncome:       true,
	domain.InvestmentDeposit: true,
}

// CashTransactionTypes lists every type that can touch cash in hand.
func CashTransactionTypes() []domain.TransactionType {
	return []domain.TransactionType{
		domain.Sale, domain.Purchase, domain.CustomerReturn, domain.VendorReturn,
		domain.PayToCustomer, domain.GetFromCustomer, domain.PayToVendor, domain.GetFromVendor,
		domain.Expense, domain.ExtraIncome, domain.InvestmentDeposit, domain.InvestmentWithdraw,
		domain.PaymentTransfer,
	}
}

// CashScope is the set of payment methods whose cash a report tracks.
type CashScope map[string]bool

// NewCashScope tracks the given payment method ids.
func NewCashScope(paymentMethodIDs ...string) CashScope {
	scope := make(CashScope, len(paymentMethodIDs))
	for _, id := range paymentMethodIDs {
		scope[id] = true
	}
	return scope
}

func (s CashScope) tracks(id *string) bool {
	return id != nil && s[*id]
}

// Touches reports whether txn moved cash in the scope. Ordinary types count
// when something was paid; transfers count when a tracked method is on either side.
func (s CashScope) Touches(txn domain.Transaction) bool {
	if alwaysCashTypes[txn.Type] {
		return txn.TotalPaid.IsPositive()
	}
	if txn.Type == domain.PaymentTransfer {
		return s.tracks(txn.PaymentMethodFromID) || s.tracks(txn.PaymentMethodToID)
	}
	return false
}

// IsCredit reports whether txn adds cash. A transfer credits the scope when
// it is sent to a tracked method.
func (s CashScope) IsCredit(txn domain.Transaction) bool {
	if txn.Type == domain.PaymentTransfer {
		return s.tracks(txn.PaymentMethodToID)
	}
	return cashInTypes[txn.Type]
}

// Effect is the signed change txn makes to cash in the scope. A transfer
// between two tracked methods nets to zero.
func (s CashScope) Effect(txn domain.Transaction) decimal.Decimal {
	if !s.Touches(txn) {
		return decimal.Zero
	}
	if txn.Type == domain.PaymentTransfer {
		effect := decimal.Zero
		if s.tracks(txn.PaymentMethodToID) {
			effect = effect.Add(txn.TotalPaid)
		}
		if s.tracks(txn.PaymentMethodFromID) {
			effect = effect.Sub(txn.TotalPaid)
		}
		return effect
	}
	if cashInTypes[txn.Type] {
		return txn.TotalPaid
	}
	return txn.TotalPaid.Neg()
}
