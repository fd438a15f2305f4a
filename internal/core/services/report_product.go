package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/shopspring/decimal"
)

var productMovementTypes = []domain.TransactionType{
	domain.Sale, domain.Purchase, domain.StockReduce, domain.StockIncrease,
	domain.CustomerReturn, domain.VendorReturn,
}

// productLine is the movement of the selected product within one transaction.
type productLine struct {
	txn      domain.Transaction
	quantity decimal.Decimal
	amount   decimal.Decimal
	price    decimal.Decimal
	profit   decimal.Decimal
}

// productLines merges the detail lines of the selected product per transaction.
// Transactions that do not carry the product are dropped.
func productLines(productID string, txns []domain.Transaction, details []domain.TransactionDetail) []productLine {
	lines := make([]productLine, 0)
	grouped := domain.DetailsByTransaction(details)
	for _, txn := range reports.SortedAscending(txns) {
		var line productLine
		found := false
		for _, d := range grouped[txn.TransactionID] {
			if d.ProductRef() != productID {
				continue
			}
			if !found {
				line = productLine{txn: txn, price: d.Price}
				found = true
			}
			line.quantity = line.quantity.Add(d.Quantity)
			line.amount = line.amount.Add(d.Amount())
			line.profit = line.profit.Add(d.Profit)
		}
		if found {
			lines = append(lines, line)
		}
	}
	return lines
}

// productReport follows one product through stock moving transactions.
func (s *reportingService) productReport(ctx context.Context, req reportRequest) (reportOutput, error) {
	refs, err := s.loadReferences(ctx, req.businessID, refProducts)
	if err != nil {
		return reportOutput{}, err
	}
	if _, ok := domain.ProductsByID(refs.products)[req.filters.SelectedProductID]; !ok {
		return reportOutput{}, fmt.Errorf("product %s: %w", req.filters.SelectedProductID, apperrors.ErrNotFound)
	}

	txns, details, err := s.loadWindow(ctx, req, productMovementTypes)
	if err != nil {
		return reportOutput{}, err
	}
	lines := productLines(req.filters.SelectedProductID, txns, details)

	if g, ok := reports.GranularityFor(req.mode); ok {
		return productByInterval(req, g, lines), nil
	}
	if req.mode == domain.FilterOverall {
		return productByType(req, lines), nil
	}
	return productLedger(req, lines), nil
}

// stockOut reports whether the type takes the product out of stock.
func stockOut(t domain.TransactionType) bool {
	return t == domain.Sale || t == domain.VendorReturn || t == domain.StockReduce
}

func productLedger(req reportRequest, lines []productLine) reportOutput {
	totalIn, totalOut, totalProfit := decimal.Zero, decimal.Zero, decimal.Zero
	rows := make([]domain.ReportRow, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		l := lines[i]
		in, out := l.quantity, decimal.Zero
		if stockOut(l.txn.Type) {
			in, out = decimal.Zero, l.quantity
		}
		totalIn = totalIn.Add(in)
		totalOut = totalOut.Add(out)
		totalProfit = totalProfit.Add(l.profit)
		rows = append(rows, domain.ReportRow{
			ID: l.txn.TransactionID,
			Values: []string{
				reports.FormatEntryDate(l.txn.Timestamp, req.loc),
				l.txn.Type.DisplayName(),
				l.txn.TransactionID,
				reports.FormatQuantity(in),
				reports.FormatQuantity(out),
				req.money(l.price),
				req.money(l.profit),
			},
		})
	}

	return reportOutput{
		columns: []string{"Date", "Type", "Transaction ID", "Debit", "Credit", "Price", "Profit"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalQuantity: reports.Ptr(totalIn.Sub(totalOut)),
			TotalProfit:   reports.Ptr(totalProfit),
			RecordCount:   len(rows),
			AdditionalInfo: map[string]string{
				"Total Debit":  reports.FormatQuantity(totalIn),
				"Total Credit": reports.FormatQuantity(totalOut),
			},
		},
	}
}

type typeTotals struct {
	quantity decimal.Decimal
	amount   decimal.Decimal
}

func productByType(req reportRequest, lines []productLine) reportOutput {
	grouped := reports.Aggregate(lines,
		func(l productLine) string { return strconv.Itoa(int(l.txn.Type)) },
		func(string) typeTotals { return typeTotals{} },
		func(acc typeTotals, l productLine) typeTotals {
			acc.quantity = acc.quantity.Add(l.quantity)
			acc.amount = acc.amount.Add(l.amount)
			return acc
		},
	)

	var total typeTotals
	rows := make([]domain.ReportRow, 0, grouped.Len())
	for _, e := range grouped.Entries() {
		typ, _ := strconv.Atoi(e.Key)
		total.quantity = total.quantity.Add(e.Value.quantity)
		total.amount = total.amount.Add(e.Value.amount)
		rows = append(rows, domain.ReportRow{
			ID: e.Key,
			Values: []string{
				domain.TransactionType(typ).DisplayName(),
				reports.FormatQuantity(e.Value.quantity),
				req.money(e.Value.amount),
			},
		})
	}

	return reportOutput{
		columns: []string{"Transaction Type", "Quantity", "Amount"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount:   reports.Ptr(total.amount),
			TotalQuantity: reports.Ptr(total.quantity),
			RecordCount:   len(rows),
		},
	}
}

type productInterval struct {
	purchase decimal.Decimal
	sale     decimal.Decimal
	sold     decimal.Decimal
	returned decimal.Decimal
}

func productByInterval(req reportRequest, g reports.Granularity, lines []productLine) reportOutput {
	buckets := reports.Bucketize(lines,
		func(l productLine) time.Time { return req.localTime(l.txn.Timestamp) },
		g,
		func() productInterval { return productInterval{} },
		func(acc productInterval, l productLine) productInterval {
			switch l.txn.Type {
			case domain.Sale:
				acc.sale = acc.sale.Add(l.amount)
				acc.sold = acc.sold.Add(l.quantity)
			case domain.CustomerReturn:
				acc.sale = acc.sale.Sub(l.amount)
				acc.returned = acc.returned.Add(l.quantity)
			case domain.Purchase:
				acc.purchase = acc.purchase.Add(l.amount)
			case domain.VendorReturn:
				acc.purchase = acc.purchase.Sub(l.amount)
			}
			return acc
		},
	)

	var total productInterval
	rows := make([]domain.ReportRow, 0, len(buckets))
	for _, b := range buckets {
		v := b.Value
		total.purchase = total.purchase.Add(v.purchase)
		total.sale = total.sale.Add(v.sale)
		total.sold = total.sold.Add(v.sold)
		total.returned = total.returned.Add(v.returned)
		rows = append(rows, domain.ReportRow{
			ID: b.Key,
			Values: []string{
				b.Label,
				req.money(v.purchase),
				req.money(v.sale),
				reports.FormatQuantity(v.sold),
				reports.FormatQuantity(v.returned),
			},
		})
	}

	return reportOutput{
		columns: []string{"Date", "Purchase Amount", "Total Sale Amount", "Quantity Sold", "Quantity Returned"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount:   reports.Ptr(total.sale),
			TotalQuantity: reports.Ptr(total.sold.Sub(total.returned)),
			RecordCount:   len(rows),
			AdditionalInfo: map[string]string{
				"Total Purchase Amount":   reports.FormatAmount(total.purchase, 2),
				"Total Quantity Sold":     reports.FormatQuantity(total.sold),
				"Total Quantity Returned": reports.FormatQuantity(total.returned),
			},
		},
	}
}
