package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the persisted kind of a ledger entry.
type TransactionType int

const (
	Sale               TransactionType = 1
	SaleOrder          TransactionType = 2
	Purchase           TransactionType = 3
	PayToVendor        TransactionType = 4
	GetFromVendor      TransactionType = 5
	PayToCustomer      TransactionType = 6
	GetFromCustomer    TransactionType = 7
	Expense            TransactionType = 8
	ExtraIncome        TransactionType = 9
	PaymentTransfer    TransactionType = 10
	InvestmentDeposit  TransactionType = 11
	InvestmentWithdraw TransactionType = 12
	StockTransfer      TransactionType = 13
	StockIncrease      TransactionType = 14
	StockReduce        TransactionType = 15
	CustomerReturn     TransactionType = 17
	VendorReturn       TransactionType = 18
	PurchaseOrder      TransactionType = 26
)

var transactionTypeNames = map[TransactionType]string{
	Sale:               "Sale",
	SaleOrder:          "Sale Order",
	Purchase:           "Purchase",
	PayToVendor:        "Pay Payment to Vendor",
	GetFromVendor:      "Get Payment from Vendor",
	PayToCustomer:      "Pay Payment to Customer",
	GetFromCustomer:    "Get Payment from Customer",
	Expense:            "Expense",
	ExtraIncome:        "Extra Income",
	PaymentTransfer:    "Payment Transfer",
	InvestmentDeposit:  "Investment Deposit",
	InvestmentWithdraw: "Investment Withdraw",
	StockTransfer:      "Stock Transfer",
	StockIncrease:      "Stock Increase",
	StockReduce:        "Stock Reduce",
	CustomerReturn:     "Customer Return",
	VendorReturn:       "Vendor Return",
	PurchaseOrder:      "Purchase Order",
}

// AllTransactionTypes lists every type the reporting engine knows about.
func AllTransactionTypes() []TransactionType {
	return []TransactionType{
		Sale, SaleOrder, Purchase, PayToVendor, GetFromVendor, PayToCustomer, GetFromCustomer,
		Expense, ExtraIncome, PaymentTransfer, InvestmentDeposit, InvestmentWithdraw,
		StockTransfer, StockIncrease, StockReduce, CustomerReturn, VendorReturn, PurchaseOrder,
	}
}

// DisplayName returns the human readable name of the type.
func (t TransactionType) DisplayName() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

func (t TransactionType) String() string {
	return t.DisplayName()
}

// IsReturn reports whether the type reverses a sale or purchase.
func (t TransactionType) IsReturn() bool {
	return t == CustomerReturn || t == VendorReturn
}

// Transaction is an immutable ledger entry recorded by the entry flows.
type Transaction struct {
	TransactionID       string          `json:"transactionID"`
	BusinessID          string          `json:"businessID"`
	PartyID             *string         `json:"partyID,omitempty"`
	Type                TransactionType `json:"transactionType"`
	TotalBill           decimal.Decimal `json:"totalBill"`
	FlatTax             decimal.Decimal `json:"flatTax"`
	FlatDiscount        decimal.Decimal `json:"flatDiscount"`
	AdditionalCharges   decimal.Decimal `json:"additionalCharges"`
	TotalPaid           decimal.Decimal `json:"totalPaid"`
	PaymentMethodFromID *string         `json:"paymentMethodFromID,omitempty"`
	PaymentMethodToID   *string         `json:"paymentMethodToID,omitempty"`
	Description         string          `json:"description,omitempty"`
	Timestamp           time.Time       `json:"timestamp"`
	AuditFields
}

// GrandTotal is the bill amount after charges, tax and discount.
func (t Transaction) GrandTotal() decimal.Decimal {
	return t.TotalBill.Add(t.AdditionalCharges).Add(t.FlatTax).Sub(t.FlatDiscount)
}

// PartyRef returns the counterparty id or an empty string.
func (t Transaction) PartyRef() string {
	if t.PartyID == nil {
		return ""
	}
	return *t.PartyID
}

// UsesPaymentMethod reports whether the transaction moves money through the method.
func (t Transaction) UsesPaymentMethod(paymentMethodID string) bool {
	return (t.PaymentMethodFromID != nil && *t.PaymentMethodFromID == paymentMethodID) ||
		(t.PaymentMethodToID != nil && *t.PaymentMethodToID == paymentMethodID)
}

// TransactionDetail is one line item of a Transaction.
type TransactionDetail struct {
	DetailID      string          `json:"detailID"`
	TransactionID string          `json:"transactionID"`
	ProductID     *string         `json:"productID,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	FlatDiscount  decimal.Decimal `json:"flatDiscount"`
	FlatTax       decimal.Decimal `json:"flatTax"`
	Profit        decimal.Decimal `json:"profit"`
}

// Amount is price times quantity.
func (d TransactionDetail) Amount() decimal.Decimal {
	return d.Price.Mul(d.Quantity)
}

// ProductRef returns the product id or an empty string.
func (d TransactionDetail) ProductRef() string {
	if d.ProductID == nil {
		return ""
	}
	return *d.ProductID
}

// TransactionIDs collects the ids of the given transactions.
func TransactionIDs(txns []Transaction) []string {
	ids := make([]string, 0, len(txns))
	for _, t := range txns {
		ids = append(ids, t.TransactionID)
	}
	return ids
}

// DetailsByTransaction groups detail lines under their transaction id.
func DetailsByTransaction(details []TransactionDetail) map[string][]TransactionDetail {
	grouped := make(map[string][]TransactionDetail)
	for _, d := range details {
		grouped[d.TransactionID] = append(grouped[d.TransactionID], d)
	}
	return grouped
}
