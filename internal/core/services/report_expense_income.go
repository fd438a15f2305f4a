package services

import (
	"context"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/shopspring/decimal"
)

// otherHead labels expense or income transactions recorded without a head.
const otherHead = "Other"

type headTotal struct {
	label  string
	amount decimal.Decimal
}

// expenseIncomeReport lists paid amounts of expense or extra income
// transactions, by head or by interval.
func (s *reportingService) expenseIncomeReport(typ domain.TransactionType) reportGenerator {
	return func(ctx context.Context, req reportRequest) (reportOutput, error) {
		txns, err := s.loadTransactions(ctx, req.businessID, []domain.TransactionType{typ}, req.period)
		if err != nil {
			return reportOutput{}, err
		}

		if g, ok := reports.GranularityFor(req.mode); ok {
			return paidByInterval(req, g, txns), nil
		}

		refs, err := s.loadReferences(ctx, req.businessID, refParties)
		if err != nil {
			return reportOutput{}, err
		}
		return paidByHead(req, txns, domain.PartiesByID(refs.parties)), nil
	}
}

func paidByHead(req reportRequest, txns []domain.Transaction, parties map[string]domain.Party) reportOutput {
	headOf := func(t domain.Transaction) (string, string) {
		if p, ok := parties[t.PartyRef()]; ok {
			return p.PartyID, p.Name
		}
		return "other", otherHead
	}

	grouped := reports.Aggregate(reports.SortedAscending(txns),
		func(t domain.Transaction) string { id, _ := headOf(t); return id },
		func(string) headTotal { return headTotal{} },
		func(acc headTotal, t domain.Transaction) headTotal {
			_, acc.label = headOf(t)
			acc.amount = acc.amount.Add(t.TotalPaid)
			return acc
		},
	)

	total := decimal.Zero
	rows := make([]domain.ReportRow, 0, grouped.Len())
	for _, e := range grouped.Entries() {
		total = total.Add(e.Value.amount)
		rows = append(rows, domain.ReportRow{
			ID:     e.Key,
			Values: []string{e.Value.label, req.money(e.Value.amount)},
		})
	}

	return reportOutput{
		columns: []string{"Type", "Amount"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(total),
			RecordCount: len(rows),
		},
	}
}

func paidByInterval(req reportRequest, g reports.Granularity, txns []domain.Transaction) reportOutput {
	buckets := reports.Bucketize(txns,
		func(t domain.Transaction) time.Time { return req.localTime(t.Timestamp) },
		g,
		func() decimal.Decimal { return decimal.Zero },
		func(acc decimal.Decimal, t domain.Transaction) decimal.Decimal { return acc.Add(t.TotalPaid) },
	)

	total := decimal.Zero
	rows := make([]domain.ReportRow, 0, len(buckets))
	for _, b := range buckets {
		total = total.Add(b.Value)
		rows = append(rows, domain.ReportRow{
			ID:     b.Key,
			Values: []string{b.Label, req.money(b.Value)},
		})
	}

	return reportOutput{
		columns: []string{"Date", "Amount"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(total),
			RecordCount: len(rows),
		},
	}
}
