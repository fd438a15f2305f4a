package services

import (
	"context"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/shopspring/decimal"
)

// tradeSide describes the sale or purchase side of the trade reports.
type tradeSide struct {
	primary       domain.TransactionType
	ret           domain.TransactionType
	partyTitle    string
	quantityTitle string
	totalQtyTitle string
}

var saleSide = tradeSide{
	primary:       domain.Sale,
	ret:           domain.CustomerReturn,
	partyTitle:    "Customer",
	quantityTitle: "Sold Qty",
	totalQtyTitle: "Total Sold Qty",
}

var purchaseSide = tradeSide{
	primary:       domain.Purchase,
	ret:           domain.VendorReturn,
	partyTitle:    "Vendor",
	quantityTitle: "Purchased Qty",
	totalQtyTitle: "Total Purchased Qty",
}

func (side tradeSide) types() []domain.TransactionType {
	return []domain.TransactionType{side.primary, side.ret}
}

type tradeTotals struct {
	key      reports.DimensionKey
	moved    decimal.Decimal
	returned decimal.Decimal
	amount   decimal.Decimal
	profit   decimal.Decimal
}

func (t tradeTotals) add(side tradeSide, typ domain.TransactionType, qty, amount, profit decimal.Decimal) tradeTotals {
	if typ == side.ret {
		t.returned = t.returned.Add(qty)
		t.amount = t.amount.Sub(amount)
		t.profit = t.profit.Sub(profit)
		return t
	}
	t.moved = t.moved.Add(qty)
	t.amount = t.amount.Add(amount)
	t.profit = t.profit.Add(profit)
	return t
}

type tradeInterval struct {
	quantity decimal.Decimal
	amount   decimal.Decimal
	paid     decimal.Decimal
}

func (s *reportingService) tradeReport(side tradeSide) reportGenerator {
	return func(ctx context.Context, req reportRequest) (reportOutput, error) {
		txns, details, err := s.loadWindow(ctx, req, side.types())
		if err != nil {
			return reportOutput{}, err
		}
		if g, ok := reports.GranularityFor(req.mode); ok {
			return side.intervalReport(req, g, txns, details), nil
		}

		refs, err := s.loadReferences(ctx, req.businessID, refParties|refProducts|refCategories)
		if err != nil {
			return reportOutput{}, err
		}
		return side.overallReport(req, txns, details, refs.lookups()), nil
	}
}

func (side tradeSide) overallReport(req reportRequest, txns []domain.Transaction, details []domain.TransactionDetail, lookups reports.Lookups) reportOutput {
	group := req.groupBy()
	if group == domain.GroupByNone {
		group = domain.GroupByProduct
	}
	dim := lookups.Dimension(group)

	var grouped *reports.OrderedMap[tradeTotals]
	amountTitle := "Total Amount"
	if reports.IsPartyDimension(group) {
		amountTitle = "Total Bill"
		lines := domain.DetailsByTransaction(details)
		grouped = reports.Aggregate(reports.SortedAscending(txns),
			func(t domain.Transaction) string { return dim("", t.PartyRef()).RowID() },
			func(string) tradeTotals { return tradeTotals{} },
			func(acc tradeTotals, t domain.Transaction) tradeTotals {
				acc.key = dim("", t.PartyRef())
				items := lines[t.TransactionID]
				return acc.add(side, t.Type, sumQuantity(items), t.GrandTotal(), sumProfit(items))
			},
		)
	} else {
		grouped = reports.Aggregate(joinDetails(txns, details),
			func(l detailLine) string { return dim(l.detail.ProductRef(), l.txn.PartyRef()).RowID() },
			func(string) tradeTotals { return tradeTotals{} },
			func(acc tradeTotals, l detailLine) tradeTotals {
				acc.key = dim(l.detail.ProductRef(), l.txn.PartyRef())
				return acc.add(side, l.txn.Type, l.detail.Quantity, l.detail.Amount(), l.detail.Profit)
			},
		)
	}

	entries := grouped.Entries()
	sortBy(entries, req.sortOrder(), func(e reports.Entry[tradeTotals]) sortKeys {
		return sortKeys{title: e.Value.key.Label, amount: e.Value.amount, profit: e.Value.profit}
	})

	var total tradeTotals
	rows := make([]domain.ReportRow, 0, len(entries))
	for _, e := range entries {
		v := e.Value
		total.moved = total.moved.Add(v.moved)
		total.returned = total.returned.Add(v.returned)
		total.amount = total.amount.Add(v.amount)
		rows = append(rows, domain.ReportRow{
			ID: e.Key,
			Values: []string{
				v.key.Label,
				reports.FormatQuantity(v.moved),
				reports.FormatQuantity(v.returned),
				req.money(v.amount),
			},
		})
	}

	return reportOutput{
		columns: []string{reports.DimensionTitle(group, side.partyTitle), side.quantityTitle, "Returned Qty", amountTitle},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount:   reports.Ptr(total.amount),
			TotalQuantity: reports.Ptr(total.moved.Sub(total.returned)),
			RecordCount:   len(rows),
			AdditionalInfo: map[string]string{
				side.totalQtyTitle:   reports.FormatQuantity(total.moved),
				"Total Returned Qty": reports.FormatQuantity(total.returned),
			},
		},
	}
}

func (side tradeSide) intervalReport(req reportRequest, g reports.Granularity, txns []domain.Transaction, details []domain.TransactionDetail) reportOutput {
	lines := domain.DetailsByTransaction(details)
	buckets := reports.Bucketize(txns,
		func(t domain.Transaction) time.Time { return req.localTime(t.Timestamp) },
		g,
		func() tradeInterval { return tradeInterval{} },
		func(acc tradeInterval, t domain.Transaction) tradeInterval {
			qty := sumQuantity(lines[t.TransactionID])
			if t.Type == side.ret {
				acc.quantity = acc.quantity.Sub(qty)
				acc.amount = acc.amount.Sub(t.GrandTotal())
				acc.paid = acc.paid.Sub(t.TotalPaid)
				return acc
			}
			acc.quantity = acc.quantity.Add(qty)
			acc.amount = acc.amount.Add(t.GrandTotal())
			acc.paid = acc.paid.Add(t.TotalPaid)
			return acc
		},
	)

	var total tradeInterval
	rows := make([]domain.ReportRow, 0, len(buckets))
	for _, b := range buckets {
		total.quantity = total.quantity.Add(b.Value.quantity)
		total.amount = total.amount.Add(b.Value.amount)
		total.paid = total.paid.Add(b.Value.paid)
		rows = append(rows, domain.ReportRow{
			ID: b.Key,
			Values: []string{
				b.Label,
				reports.FormatQuantity(b.Value.quantity),
				req.money(b.Value.amount),
				req.money(b.Value.paid),
			},
		})
	}

	return reportOutput{
		columns: []string{"Date", "Quantity", "Amount", "Paid"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount:   reports.Ptr(total.amount),
			TotalQuantity: reports.Ptr(total.quantity),
			RecordCount:   len(rows),
			AdditionalInfo: map[string]string{
				"Total Paid": reports.FormatAmount(total.paid, 2),
			},
		},
	}
}

func sumQuantity(details []domain.TransactionDetail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Quantity)
	}
	return total
}

func sumProfit(details []domain.TransactionDetail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Profit)
	}
	return total
}
