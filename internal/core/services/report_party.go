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

// partyTradeTypes are the stock moving types counted in a party's trade summary.
func partyTradeTypes(class domain.RoleClass) []domain.TransactionType {
	switch class {
	case domain.RoleClassCustomer:
		return saleSide.types()
	case domain.RoleClassVendor:
		return purchaseSide.types()
	default:
		return append(saleSide.types(), purchaseSide.types()...)
	}
}

func onlyParty(txns []domain.Transaction, partyID string) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.PartyRef() == partyID {
			out = append(out, t)
		}
	}
	return out
}

// partyReport builds the customer, vendor or investor report of the selected party.
func (s *reportingService) partyReport(class domain.RoleClass) reportGenerator {
	return func(ctx context.Context, req reportRequest) (reportOutput, error) {
		partyID := req.filters.SelectedPartyID
		if class == domain.RoleClassInvestor {
			partyID = req.filters.SelectedInvestorID
		}

		kinds := refParties
		if req.mode != domain.FilterLedger && req.mode != domain.FilterCashFlow {
			kinds |= refProducts
		}
		refs, err := s.loadReferences(ctx, req.businessID, kinds)
		if err != nil {
			return reportOutput{}, err
		}
		party, ok := domain.PartiesByID(refs.parties)[partyID]
		if !ok {
			return reportOutput{}, fmt.Errorf("party %s: %w", partyID, apperrors.ErrNotFound)
		}

		switch req.mode {
		case domain.FilterLedger:
			return s.partyLedger(ctx, req, class, party)
		case domain.FilterCashFlow:
			return s.partyCashFlow(ctx, req, class, party)
		}

		txns, details, err := s.loadWindow(ctx, req, partyTradeTypes(class))
		if err != nil {
			return reportOutput{}, err
		}
		lines := joinDetails(onlyParty(txns, party.PartyID), details)
		if g, ok := reports.GranularityFor(req.mode); ok {
			return partyTradeByInterval(req, g, lines), nil
		}
		return partyTradeByProduct(req, lines, refs.lookups()), nil
	}
}

func (s *reportingService) partyLedger(ctx context.Context, req reportRequest, class domain.RoleClass, party domain.Party) (reportOutput, error) {
	types := reports.PartyTransactionTypes(class)
	prior, err := s.loadTransactions(ctx, req.businessID, types, req.period.Before())
	if err != nil {
		return reportOutput{}, err
	}
	window, err := s.loadTransactions(ctx, req.businessID, types, req.period)
	if err != nil {
		return reportOutput{}, err
	}

	ledger := reports.ForwardLedger(party.OpeningBalance,
		onlyParty(prior, party.PartyID),
		onlyParty(window, party.PartyID),
		reports.PartyEffect(class))

	rows := make([]domain.ReportRow, 0, len(ledger.Entries))
	for _, e := range ledger.NewestFirst() {
		t := e.Transaction
		rows = append(rows, domain.ReportRow{
			ID: t.TransactionID,
			Values: []string{
				reports.FormatEntryDate(t.Timestamp, req.loc),
				t.Type.DisplayName(),
				t.TransactionID,
				req.money(t.GrandTotal()),
				req.money(t.TotalPaid),
				reports.FormatMoneyOrBlank(req.symbol, e.Debit),
				reports.FormatMoneyOrBlank(req.symbol, e.Credit),
				req.money(e.Balance),
			},
		})
	}

	return reportOutput{
		columns: []string{"Date", "Type", "Transaction ID", "Total Bill", "Paid", "Debit", "Credit", "Balance"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(ledger.Closing),
			RecordCount: len(rows),
			AdditionalInfo: map[string]string{
				"Opening Balance": reports.FormatAmount(ledger.Opening, 2),
				"Total Debit":     reports.FormatAmount(ledger.TotalDebit, 2),
				"Total Credit":    reports.FormatAmount(ledger.TotalCredit, 2),
				"Closing Balance": reports.FormatAmount(ledger.Closing, 2),
			},
		},
	}, nil
}

func (s *reportingService) partyCashFlow(ctx context.Context, req reportRequest, class domain.RoleClass, party domain.Party) (reportOutput, error) {
	types := reports.PartyTransactionTypes(class)
	window, err := s.loadTransactions(ctx, req.businessID, types, req.period)
	if err != nil {
		return reportOutput{}, err
	}
	after, err := s.loadTransactions(ctx, req.businessID, types, req.period.After())
	if err != nil {
		return reportOutput{}, err
	}

	flow := reports.BackwardCashFlow(party.Balance,
		onlyParty(after, party.PartyID),
		onlyParty(window, party.PartyID),
		reports.PartyEffect(class))

	rows := make([]domain.ReportRow, 0, len(flow.Entries))
	for _, e := range flow.Entries {
		t := e.Transaction
		rows = append(rows, domain.ReportRow{
			ID: t.TransactionID,
			Values: []string{
				reports.FormatEntryDate(t.Timestamp, req.loc),
				t.Type.DisplayName(),
				req.money(e.Previous),
				reports.FormatMoneyOrBlank(req.symbol, e.Debit),
				reports.FormatMoneyOrBlank(req.symbol, e.Credit),
			},
		})
	}

	return reportOutput{
		columns: []string{"Date", "Transaction Type", "Previous", "Debit", "Credit"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(flow.Closing),
			RecordCount: len(rows),
			AdditionalInfo: map[string]string{
				"Current Balance": reports.FormatAmount(party.Balance, 2),
				"Opening Balance": reports.FormatAmount(flow.Opening, 2),
				"Total Debit":     reports.FormatAmount(flow.TotalDebit, 2),
				"Total Credit":    reports.FormatAmount(flow.TotalCredit, 2),
			},
		},
	}, nil
}

type partyTrade struct {
	label    string
	sold     decimal.Decimal
	returned decimal.Decimal
	amount   decimal.Decimal
}

func (p partyTrade) add(l detailLine) partyTrade {
	if l.txn.Type.IsReturn() {
		p.returned = p.returned.Add(l.detail.Quantity)
		p.amount = p.amount.Sub(l.detail.Amount())
		return p
	}
	p.sold = p.sold.Add(l.detail.Quantity)
	p.amount = p.amount.Add(l.detail.Amount())
	return p
}

func (p partyTrade) values(req reportRequest, label string) []string {
	return []string{
		label,
		reports.FormatQuantity(p.sold),
		reports.FormatQuantity(p.returned),
		reports.FormatQuantity(p.sold.Sub(p.returned)),
		req.money(p.amount),
	}
}

func partyTradeSummary(total partyTrade, count int) *domain.ReportSummary {
	return &domain.ReportSummary{
		TotalAmount:   reports.Ptr(total.amount),
		TotalQuantity: reports.Ptr(total.sold.Sub(total.returned)),
		RecordCount:   count,
		AdditionalInfo: map[string]string{
			"Total Quantity Sold": reports.FormatQuantity(total.sold),
			"Total Returned":      reports.FormatQuantity(total.returned),
		},
	}
}

func partyTradeByProduct(req reportRequest, lines []detailLine, lookups reports.Lookups) reportOutput {
	grouped := reports.Aggregate(lines,
		func(l detailLine) string { return lookups.ProductKey(l.detail.ProductRef(), "").RowID() },
		func(string) partyTrade { return partyTrade{} },
		func(acc partyTrade, l detailLine) partyTrade {
			acc.label = lookups.ProductKey(l.detail.ProductRef(), "").Label
			return acc.add(l)
		},
	)

	var total partyTrade
	rows := make([]domain.ReportRow, 0, grouped.Len())
	for _, e := range grouped.Entries() {
		total.sold = total.sold.Add(e.Value.sold)
		total.returned = total.returned.Add(e.Value.returned)
		total.amount = total.amount.Add(e.Value.amount)
		rows = append(rows, domain.ReportRow{ID: e.Key, Values: e.Value.values(req, e.Value.label)})
	}

	return reportOutput{
		columns: []string{"Product", "Quantity Sold", "Returned", "Net Sold", "Total Amount"},
		rows:    rows,
		summary: partyTradeSummary(total, len(rows)),
	}
}

func partyTradeByInterval(req reportRequest, g reports.Granularity, lines []detailLine) reportOutput {
	buckets := reports.Bucketize(lines,
		func(l detailLine) time.Time { return req.localTime(l.txn.Timestamp) },
		g,
		func() partyTrade { return partyTrade{} },
		partyTrade.add,
	)

	var total partyTrade
	rows := make([]domain.ReportRow, 0, len(buckets))
	for _, b := range buckets {
		total.sold = total.sold.Add(b.Value.sold)
		total.returned = total.returned.Add(b.Value.returned)
		total.amount = total.amount.Add(b.Value.amount)
		rows = append(rows, domain.ReportRow{ID: b.Key, Values: b.Value.values(req, b.Label)})
	}

	return reportOutput{
		columns: []string{"Date", "Quantity Sold", "Returned", "Net Sold", "Total Amount"},
		rows:    rows,
		summary: partyTradeSummary(total, len(rows)),
	}
}
