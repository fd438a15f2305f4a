package mapping

import (
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/models"
)

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	t := domain.Transaction{
		TransactionID:       m.TransactionID,
		BusinessID:          m.BusinessID,
		PartyID:             m.PartyID,
		Type:                domain.TransactionType(m.TransactionType),
		TotalBill:           m.TotalBill,
		FlatTax:             m.FlatTax,
		FlatDiscount:        m.FlatDiscount,
		AdditionalCharges:   m.AdditionalCharges,
		TotalPaid:           m.TotalPaid,
		PaymentMethodFromID: m.PaymentMethodFromID,
		PaymentMethodToID:   m.PaymentMethodToID,
		Timestamp:           m.TransactionTS,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
	if m.Description != nil {
		t.Description = *m.Description
	}
	return t
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}

// ToDomainTransactionDetail converts a model TransactionDetail to a domain TransactionDetail
func ToDomainTransactionDetail(m models.TransactionDetail) domain.TransactionDetail {
	return domain.TransactionDetail{
		DetailID:      m.DetailID,
		TransactionID: m.TransactionID,
		ProductID:     m.ProductID,
		Quantity:      m.Quantity,
		Price:         m.Price,
		FlatDiscount:  m.FlatDiscount,
		FlatTax:       m.FlatTax,
		Profit:        m.Profit,
	}
}

// ToDomainTransactionDetailSlice converts a slice of model details to domain details
func ToDomainTransactionDetailSlice(ms []models.TransactionDetail) []domain.TransactionDetail {
	out := make([]domain.TransactionDetail, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransactionDetail(m)
	}
	return out
}
