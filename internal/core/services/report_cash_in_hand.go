package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/shopspring/decimal"
)

type cashCategory struct {
	id    string
	label string
	typ   domain.TransactionType
}

var cashCategories = []cashCategory{
	{"sale", "Received Cash from Sale", domain.Sale},
	{"purchase", "Paid Cash for Purchase", domain.Purchase},
	{"customer_return", "Paid Cash for Customer Return", domain.CustomerReturn},
	{"vendor_return", "Received Cash from Vendor Return", domain.VendorReturn},
	{"get_from_customer", "Received from Customers", domain.GetFromCustomer},
	{"pay_to_customer", "Paid to Customers", domain.PayToCustomer},
	{"get_from_vendor", "Received from Vendors", domain.GetFromVendor},
	{"pay_to_vendor", "Paid to Vendors", domain.PayToVendor},
	{"expense", "Paid for Expenses", domain.Expense},
	{"extra_income", "Received as Extra Income", domain.ExtraIncome},
	{"investment_deposit", "Investment Deposited", domain.InvestmentDeposit},
	{"investment_withdraw", "Investment Withdrawn", domain.InvestmentWithdraw},
}

// cashView is the set of payment methods a cash in hand report looks at.
type cashView struct {
	scope    reports.CashScope
	selected string
	current  decimal.Decimal
}

func (v cashView) includes(t domain.Transaction) bool {
	if !v.scope.Touches(t) {
		return false
	}
	if t.Type == domain.PaymentTransfer {
		return true
	}
	if v.selected != "" {
		return t.UsesPaymentMethod(v.selected)
	}
	// Money booked against a retired method is outside the active total.
	for _, id := range []*string{t.PaymentMethodFromID, t.PaymentMethodToID} {
		if id != nil && !v.scope[*id] {
			return false
		}
	}
	return true
}

func (v cashView) filter(txns []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if v.includes(t) {
			out = append(out, t)
		}
	}
	return out
}

func newCashView(methods []domain.PaymentMethod, selected string) (cashView, error) {
	if selected == "" {
		ids := make([]string, 0, len(methods))
		for _, m := range methods {
			if m.Active {
				ids = append(ids, m.PaymentMethodID)
			}
		}
		return cashView{scope: reports.NewCashScope(ids...), current: reports.CashInHand(methods).Total}, nil
	}
	for _, m := range methods {
		if m.PaymentMethodID == selected {
			return cashView{scope: reports.NewCashScope(selected), selected: selected, current: m.Amount}, nil
		}
	}
	return cashView{}, fmt.Errorf("payment method %s: %w", selected, apperrors.ErrNotFound)
}

// cashInHandReport shows cash movement per type, per interval, or as a
// running history of one payment method.
func (s *reportingService) cashInHandReport(ctx context.Context, req reportRequest) (reportOutput, error) {
	refs, err := s.loadReferences(ctx, req.businessID, refPaymentMethods|refParties)
	if err != nil {
		return reportOutput{}, err
	}
	view, err := newCashView(refs.methods, req.filters.SelectedPaymentMethodID)
	if err != nil {
		return reportOutput{}, err
	}

	txns, err := s.loadTransactions(ctx, req.businessID, reports.CashTransactionTypes(), req.period)
	if err != nil {
		return reportOutput{}, err
	}
	window := view.filter(txns)

	if req.mode == domain.FilterCashInHandHistory {
		after, err := s.loadTransactions(ctx, req.businessID, reports.CashTransactionTypes(), req.period.After())
		if err != nil {
			return reportOutput{}, err
		}
		return cashHistory(req, view, window, view.filter(after), domain.PartiesByID(refs.parties)), nil
	}
	if g, ok := reports.GranularityFor(req.mode); ok {
		return cashByInterval(req, g, view, window), nil
	}
	return cashByType(req, view, window), nil
}

func cashHistory(req reportRequest, view cashView, window, after []domain.Transaction, parties map[string]domain.Party) reportOutput {
	flow := reports.BackwardCashFlow(view.current, after, window, view.scope.Effect)

	rows := make([]domain.ReportRow, 0, len(flow.Entries))
	for _, e := range flow.Entries {
		t := e.Transaction
		name := "-"
		if p, ok := parties[t.PartyRef()]; ok {
			name = p.Name
		} else if t.Description != "" {
			name = t.Description
		}
		sign := "-"
		if view.scope.IsCredit(t) {
			sign = "+"
		}
		rows = append(rows, domain.ReportRow{
			ID: t.TransactionID,
			Values: []string{
				name,
				t.TransactionID,
				reports.FormatEntryDate(t.Timestamp, req.loc),
				t.Type.DisplayName(),
				sign + req.money(e.Effect.Abs()),
				req.money(e.Ending),
			},
		})
	}

	return reportOutput{
		columns: []string{"Name", "Transaction ID", "Date", "Type", "Debit/Credit", "Balance"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(view.current),
			RecordCount: len(rows),
			AdditionalInfo: map[string]string{
				"Current Cash in Hand": reports.FormatAmount(view.current, 2),
				"Opening Cash in Hand": reports.FormatAmount(flow.Opening, 2),
				"Total Received":       reports.FormatAmount(flow.TotalDebit, 2),
				"Total Paid":           reports.FormatAmount(flow.TotalCredit, 2),
			},
		},
	}
}

func cashByType(req reportRequest, view cashView, window []domain.Transaction) reportOutput {
	byType := make(map[domain.TransactionType]decimal.Decimal)
	received, paid := decimal.Zero, decimal.Zero
	for _, t := range window {
		effect := view.scope.Effect(t)
		if effect.IsPositive() {
			received = received.Add(effect)
		} else {
			paid = paid.Add(effect.Abs())
		}
		if t.Type != domain.PaymentTransfer {
			byType[t.Type] = byType[t.Type].Add(effect.Abs())
		}
	}

	rows := make([]domain.ReportRow, 0, len(cashCategories))
	for _, c := range cashCategories {
		amount := byType[c.typ]
		if !amount.IsPositive() {
			continue
		}
		rows = append(rows, domain.ReportRow{
			ID:     c.id,
			Values: []string{c.label, req.money(amount)},
		})
	}

	net := received.Sub(paid)
	return reportOutput{
		columns: []string{"Transaction Type", "Amount"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(net),
			RecordCount: len(rows),
			AdditionalInfo: map[string]string{
				"Total Received":       reports.FormatAmount(received, 2),
				"Total Paid":           reports.FormatAmount(paid, 2),
				"Current Cash in Hand": reports.FormatAmount(view.current, 2),
			},
		},
	}
}

func cashByInterval(req reportRequest, g reports.Granularity, view cashView, window []domain.Transaction) reportOutput {
	buckets := reports.Bucketize(window,
		func(t domain.Transaction) time.Time { return req.localTime(t.Timestamp) },
		g,
		func() decimal.Decimal { return decimal.Zero },
		func(acc decimal.Decimal, t domain.Transaction) decimal.Decimal { return acc.Add(view.scope.Effect(t)) },
	)

	net := decimal.Zero
	rows := make([]domain.ReportRow, 0, len(buckets))
	for _, b := range buckets {
		net = net.Add(b.Value)
		cell := "Cr " + req.money(b.Value.Abs())
		if b.Value.IsPositive() {
			cell = "Db " + req.money(b.Value)
		}
		rows = append(rows, domain.ReportRow{
			ID:     b.Key,
			Values: []string{b.Label, cell},
		})
	}

	return reportOutput{
		columns: []string{"Date", "Debit/Credit"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(net),
			RecordCount: len(rows),
		},
	}
}
