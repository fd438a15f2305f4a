package services

import (
	"context"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/shopspring/decimal"
)

type productMovement struct {
	moved    decimal.Decimal
	returned decimal.Decimal
	amount   decimal.Decimal
	profit   decimal.Decimal
}

func (m productMovement) net() decimal.Decimal {
	return m.moved.Sub(m.returned)
}

// topProductsReport ranks products by net quantity sold, profit, or net
// quantity purchased.
func (s *reportingService) topProductsReport(ctx context.Context, req reportRequest) (reportOutput, error) {
	side := saleSide
	if req.mode == domain.FilterTopPurchased {
		side = purchaseSide
	}

	txns, details, err := s.loadWindow(ctx, req, side.types())
	if err != nil {
		return reportOutput{}, err
	}
	refs, err := s.loadReferences(ctx, req.businessID, refProducts)
	if err != nil {
		return reportOutput{}, err
	}
	products := domain.ProductsByID(refs.products)

	lines := make([]detailLine, 0, len(details))
	for _, l := range joinDetails(txns, details) {
		if l.detail.ProductRef() != "" {
			lines = append(lines, l)
		}
	}
	grouped := reports.Aggregate(lines,
		func(l detailLine) string { return l.detail.ProductRef() },
		func(string) productMovement { return productMovement{} },
		func(acc productMovement, l detailLine) productMovement {
			d := l.detail
			if l.txn.Type == side.ret {
				acc.returned = acc.returned.Add(d.Quantity)
				acc.amount = acc.amount.Sub(d.Amount())
				acc.profit = acc.profit.Sub(d.Profit)
				return acc
			}
			acc.moved = acc.moved.Add(d.Quantity)
			acc.amount = acc.amount.Add(d.Amount())
			acc.profit = acc.profit.Add(d.Profit)
			return acc
		},
	)

	entries := grouped.Entries()
	if req.mode == domain.FilterTopProfit {
		descending(entries, func(e reports.Entry[productMovement]) decimal.Decimal { return e.Value.profit })
	} else {
		descending(entries, func(e reports.Entry[productMovement]) decimal.Decimal { return e.Value.net() })
	}

	var total productMovement
	rows := make([]domain.ReportRow, 0, len(entries))
	for _, e := range entries {
		v := e.Value
		total.moved = total.moved.Add(v.moved)
		total.returned = total.returned.Add(v.returned)
		total.amount = total.amount.Add(v.amount)
		total.profit = total.profit.Add(v.profit)

		title := reports.UnknownProduct
		if p, ok := products[e.Key]; ok {
			title = p.Title
		}
		rows = append(rows, domain.ReportRow{
			ID: e.Key,
			Values: []string{
				title,
				reports.FormatQuantity(v.moved),
				reports.FormatQuantity(v.returned),
				reports.FormatQuantity(v.net()),
				req.money(v.amount),
			},
		})
	}

	columns := []string{"Product", "Quantity Sold", "Returned", "Net Sold", "Total Sale Amount"}
	movedTitle := "Total Quantity Sold"
	if side == purchaseSide {
		columns = []string{"Product", "Quantity Purchased", "Returned", "Net Purchased", "Total Purchase Amount"}
		movedTitle = "Total Quantity Purchased"
	}

	summary := &domain.ReportSummary{
		TotalAmount:   reports.Ptr(total.amount),
		TotalQuantity: reports.Ptr(total.net()),
		RecordCount:   len(rows),
		AdditionalInfo: map[string]string{
			movedTitle:       reports.FormatQuantity(total.moved),
			"Total Returned": reports.FormatQuantity(total.returned),
		},
	}
	if side == saleSide {
		summary.TotalProfit = reports.Ptr(total.profit)
	}
	return reportOutput{columns: columns, rows: rows, summary: summary}, nil
}

type customerTotals struct {
	sale     decimal.Decimal
	paid     decimal.Decimal
	discount decimal.Decimal
	charges  decimal.Decimal
	tax      decimal.Decimal
}

// due is what the customer still owes on the period's trade.
func (c customerTotals) due() decimal.Decimal {
	return c.sale.Sub(c.paid).Sub(c.discount).Add(c.charges).Add(c.tax)
}

// topCustomersReport ranks customers by sales, outstanding credit or cash paid.
func (s *reportingService) topCustomersReport(ctx context.Context, req reportRequest) (reportOutput, error) {
	types := []domain.TransactionType{domain.Sale, domain.CustomerReturn, domain.GetFromCustomer, domain.PayToCustomer}
	txns, err := s.loadTransactions(ctx, req.businessID, types, req.period)
	if err != nil {
		return reportOutput{}, err
	}
	refs, err := s.loadReferences(ctx, req.businessID, refParties)
	if err != nil {
		return reportOutput{}, err
	}
	parties := domain.PartiesByID(refs.parties)

	withParty := make([]domain.Transaction, 0, len(txns))
	for _, t := range reports.SortedAscending(txns) {
		if t.PartyRef() != "" {
			withParty = append(withParty, t)
		}
	}
	grouped := reports.Aggregate(withParty,
		domain.Transaction.PartyRef,
		func(string) customerTotals { return customerTotals{} },
		func(acc customerTotals, t domain.Transaction) customerTotals {
			switch t.Type {
			case domain.Sale:
				acc.sale = acc.sale.Add(t.TotalBill)
				acc.paid = acc.paid.Add(t.TotalPaid)
				acc.discount = acc.discount.Add(t.FlatDiscount)
				acc.charges = acc.charges.Add(t.AdditionalCharges)
				acc.tax = acc.tax.Add(t.FlatTax)
			case domain.CustomerReturn:
				acc.sale = acc.sale.Sub(t.TotalBill)
				acc.paid = acc.paid.Sub(t.TotalPaid)
				acc.discount = acc.discount.Sub(t.FlatDiscount)
				acc.charges = acc.charges.Sub(t.AdditionalCharges)
				acc.tax = acc.tax.Sub(t.FlatTax)
			case domain.GetFromCustomer:
				acc.paid = acc.paid.Add(t.TotalPaid)
			case domain.PayToCustomer:
				acc.paid = acc.paid.Sub(t.TotalPaid)
			}
			return acc
		},
	)

	entries := grouped.Entries()
	switch req.mode {
	case domain.FilterTopPurchased:
		descending(entries, func(e reports.Entry[customerTotals]) decimal.Decimal { return e.Value.sale })
	case domain.FilterTopCashPaid:
		descending(entries, func(e reports.Entry[customerTotals]) decimal.Decimal { return e.Value.paid })
	default:
		descending(entries, func(e reports.Entry[customerTotals]) decimal.Decimal { return e.Value.due() })
	}

	var total customerTotals
	totalDue := decimal.Zero
	rows := make([]domain.ReportRow, 0, len(entries))
	for _, e := range entries {
		v := e.Value
		total.sale = total.sale.Add(v.sale)
		total.paid = total.paid.Add(v.paid)
		total.discount = total.discount.Add(v.discount)
		totalDue = totalDue.Add(v.due())

		name := reports.UnknownParty
		if p, ok := parties[e.Key]; ok {
			name = p.Name
		}
		rows = append(rows, domain.ReportRow{
			ID: e.Key,
			Values: []string{
				name,
				req.money(v.sale),
				req.money(v.paid),
				req.money(v.due()),
				req.money(v.discount),
			},
		})
	}

	return reportOutput{
		columns: []string{"Customer", "Total Sale", "Total Paid", "Total Due", "Discount"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(total.sale),
			RecordCount: len(rows),
			AdditionalInfo: map[string]string{
				"Total Credit Sale":    reports.FormatAmount(totalDue, 2),
				"Total Cash Received":  reports.FormatAmount(total.paid, 2),
				"Total Discount Given": reports.FormatAmount(total.discount, 2),
			},
		},
	}, nil
}
