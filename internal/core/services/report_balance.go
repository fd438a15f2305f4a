package services

import (
	"context"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/shopspring/decimal"
)

// balanceFilter reports whether a party belongs in the balance report mode.
func balanceFilter(mode domain.AdditionalFilter) func(domain.Party) bool {
	class := func(c domain.RoleClass) func(domain.Party) bool {
		return func(p domain.Party) bool { return p.Role.Class() == c }
	}
	switch mode {
	case domain.FilterAllCustomers:
		return class(domain.RoleClassCustomer)
	case domain.FilterAllVendors:
		return class(domain.RoleClassVendor)
	case domain.FilterCustomerDebit:
		return func(p domain.Party) bool { return class(domain.RoleClassCustomer)(p) && p.Balance.IsPositive() }
	case domain.FilterCustomerCredit:
		return func(p domain.Party) bool { return class(domain.RoleClassCustomer)(p) && p.Balance.IsNegative() }
	case domain.FilterVendorDebit:
		return func(p domain.Party) bool { return class(domain.RoleClassVendor)(p) && p.Balance.IsPositive() }
	case domain.FilterVendorCredit:
		return func(p domain.Party) bool { return class(domain.RoleClassVendor)(p) && p.Balance.IsNegative() }
	}
	return func(domain.Party) bool { return false }
}

type balanceLine struct {
	title   string
	balance decimal.Decimal
}

// balanceReport lists current party balances, optionally rolled up by area
// or category.
func (s *reportingService) balanceReport(ctx context.Context, req reportRequest) (reportOutput, error) {
	refs, err := s.loadReferences(ctx, req.businessID, refParties|refCategories)
	if err != nil {
		return reportOutput{}, err
	}
	lookups := refs.lookups()
	keep := balanceFilter(req.mode)

	parties := make([]domain.Party, 0, len(refs.parties))
	for _, p := range refs.parties {
		if keep(p) {
			parties = append(parties, p)
		}
	}

	var key func(domain.Party) reports.DimensionKey
	switch req.groupBy() {
	case domain.GroupByPartyArea:
		key = func(p domain.Party) reports.DimensionKey { return lookups.PartyAreaKey("", p.PartyID) }
	case domain.GroupByPartyCategory:
		key = func(p domain.Party) reports.DimensionKey { return lookups.PartyCategoryKey("", p.PartyID) }
	default:
		key = func(p domain.Party) reports.DimensionKey { return reports.DimensionKey{ID: p.PartyID, Label: p.Name} }
	}

	grouped := reports.Aggregate(parties,
		func(p domain.Party) string { return key(p).RowID() },
		func(string) balanceLine { return balanceLine{} },
		func(acc balanceLine, p domain.Party) balanceLine {
			acc.title = key(p).Label
			acc.balance = acc.balance.Add(p.Balance)
			return acc
		},
	)

	entries := grouped.Entries()
	order := req.sortOrder()
	if order == "" {
		order = domain.SortTitleAsc
	}
	sortBy(entries, order, func(e reports.Entry[balanceLine]) sortKeys {
		return sortKeys{title: e.Value.title, balance: e.Value.balance}
	})

	total := decimal.Zero
	rows := make([]domain.ReportRow, 0, len(entries))
	for _, e := range entries {
		total = total.Add(e.Value.balance)
		rows = append(rows, domain.ReportRow{
			ID:     e.Key,
			Values: []string{e.Value.title, req.money(e.Value.balance)},
		})
	}

	return reportOutput{
		columns: []string{"Name", "Current Balance"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(total),
			RecordCount: len(rows),
			AdditionalInfo: map[string]string{
				"Total Balance": reports.FormatAmount(total, 2),
			},
		},
	}, nil
}

// balanceSheetReport composes the lifetime balance sheet of the business.
func (s *reportingService) balanceSheetReport(ctx context.Context, req reportRequest) (reportOutput, error) {
	refs, err := s.loadReferences(ctx, req.businessID, refParties|refProducts|refQuantities|refPaymentMethods)
	if err != nil {
		return reportOutput{}, err
	}
	txns, err := s.loadTransactions(ctx, req.businessID, reports.ProfitLossTransactionTypes(), reports.Lifetime(req.loc))
	if err != nil {
		return reportOutput{}, err
	}
	details, err := s.loadDetails(ctx, txns)
	if err != nil {
		return reportOutput{}, err
	}

	sheet := reports.ComposeBalanceSheet(reports.BalanceSheetInput{
		Parties:        refs.parties,
		Products:       refs.products,
		Quantities:     refs.quantities,
		PaymentMethods: refs.methods,
		Transactions:   txns,
		Details:        details,
	}, req.symbol)
	b := sheet.Breakdowns

	return reportOutput{
		columns:    sheet.Columns,
		rows:       sheet.Rows,
		breakdowns: &b,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(b.TotalAssets),
			TotalProfit: reports.Ptr(b.ProfitLoss.Total),
			RecordCount: len(sheet.Rows),
			AdditionalInfo: map[string]string{
				"Total Assets":      reports.FormatAmount(b.TotalAssets, 2),
				"Total Liabilities": reports.FormatAmount(b.TotalLiabilities, 2),
			},
		},
	}, nil
}
