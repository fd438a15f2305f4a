package services

import (
	"context"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/shopspring/decimal"
)

// costBasis returns the unit cost a sale is measured against.
type costBasis func(domain.Product) decimal.Decimal

func avgPurchaseCost(p domain.Product) decimal.Decimal { return p.AvgPurchasePrice }

func purchasePriceCost(p domain.Product) decimal.Decimal { return p.PurchasePrice }

// lineProfit is (price - cost) * qty rounded to cents, negated for returns.
func lineProfit(l detailLine, cost decimal.Decimal) decimal.Decimal {
	profit := l.detail.Price.Sub(cost).Mul(l.detail.Quantity).Round(2)
	if l.txn.Type == domain.CustomerReturn {
		return profit.Neg()
	}
	return profit
}

type profitTotals struct {
	key      reports.DimensionKey
	quantity decimal.Decimal
	sale     decimal.Decimal
	cost     decimal.Decimal
	profit   decimal.Decimal
}

func (p profitTotals) add(l detailLine, unitCost decimal.Decimal) profitTotals {
	cost := unitCost.Mul(l.detail.Quantity).Round(2)
	p.profit = p.profit.Add(lineProfit(l, unitCost))
	if l.txn.Type == domain.CustomerReturn {
		p.quantity = p.quantity.Sub(l.detail.Quantity)
		p.sale = p.sale.Sub(l.detail.Amount())
		p.cost = p.cost.Sub(cost)
		return p
	}
	p.quantity = p.quantity.Add(l.detail.Quantity)
	p.sale = p.sale.Add(l.detail.Amount())
	p.cost = p.cost.Add(cost)
	return p
}

// profitLossReport measures sale profit against the given cost basis, by
// dimension or by interval.
func (s *reportingService) profitLossReport(basis costBasis) reportGenerator {
	return func(ctx context.Context, req reportRequest) (reportOutput, error) {
		txns, details, err := s.loadWindow(ctx, req, saleSide.types())
		if err != nil {
			return reportOutput{}, err
		}
		refs, err := s.loadReferences(ctx, req.businessID, refParties|refProducts|refCategories)
		if err != nil {
			return reportOutput{}, err
		}

		lookups := refs.lookups()
		unitCost := func(l detailLine) decimal.Decimal {
			p, ok := lookups.Products[l.detail.ProductRef()]
			if !ok {
				return decimal.Zero
			}
			return basis(p)
		}
		lines := joinDetails(txns, details)

		if g, ok := reports.GranularityFor(req.mode); ok {
			return profitByInterval(req, g, lines, unitCost), nil
		}
		return profitByDimension(req, lines, lookups, unitCost), nil
	}
}

func profitByDimension(req reportRequest, lines []detailLine, lookups reports.Lookups, unitCost func(detailLine) decimal.Decimal) reportOutput {
	group := req.groupBy()
	if group == domain.GroupByNone {
		group = domain.GroupByProduct
	}
	dim := lookups.Dimension(group)

	grouped := reports.Aggregate(lines,
		func(l detailLine) string { return dim(l.detail.ProductRef(), l.txn.PartyRef()).RowID() },
		func(string) profitTotals { return profitTotals{} },
		func(acc profitTotals, l detailLine) profitTotals {
			acc.key = dim(l.detail.ProductRef(), l.txn.PartyRef())
			return acc.add(l, unitCost(l))
		},
	)

	entries := grouped.Entries()
	sortBy(entries, req.sortOrder(), func(e reports.Entry[profitTotals]) sortKeys {
		return sortKeys{title: e.Value.key.Label, amount: e.Value.sale, profit: e.Value.profit}
	})

	var total profitTotals
	rows := make([]domain.ReportRow, 0, len(entries))
	for _, e := range entries {
		v := e.Value
		total.quantity = total.quantity.Add(v.quantity)
		total.sale = total.sale.Add(v.sale)
		total.profit = total.profit.Add(v.profit)
		rows = append(rows, domain.ReportRow{
			ID: e.Key,
			Values: []string{
				v.key.Label,
				reports.FormatQuantity(v.quantity),
				req.money(v.sale),
				req.money(v.profit),
			},
		})
	}

	return reportOutput{
		columns: []string{reports.DimensionTitle(group, saleSide.partyTitle), "Quantity Sold", "Total Sale Amount", "Profit"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount:   reports.Ptr(total.sale),
			TotalQuantity: reports.Ptr(total.quantity),
			TotalProfit:   reports.Ptr(total.profit),
			RecordCount:   len(rows),
		},
	}
}

func profitByInterval(req reportRequest, g reports.Granularity, lines []detailLine, unitCost func(detailLine) decimal.Decimal) reportOutput {
	buckets := reports.Bucketize(lines,
		func(l detailLine) time.Time { return req.localTime(l.txn.Timestamp) },
		g,
		func() profitTotals { return profitTotals{} },
		func(acc profitTotals, l detailLine) profitTotals { return acc.add(l, unitCost(l)) },
	)

	totalSale, totalCost := decimal.Zero, decimal.Zero
	totalProfit, totalLoss := decimal.Zero, decimal.Zero
	rows := make([]domain.ReportRow, 0, len(buckets))
	for _, b := range buckets {
		v := b.Value
		totalSale = totalSale.Add(v.sale)
		totalCost = totalCost.Add(v.cost)
		profit, loss := decimal.Zero, decimal.Zero
		if v.profit.IsPositive() {
			profit = v.profit
		} else {
			loss = v.profit.Abs()
		}
		totalProfit = totalProfit.Add(profit)
		totalLoss = totalLoss.Add(loss)
		rows = append(rows, domain.ReportRow{
			ID: b.Key,
			Values: []string{
				b.Label,
				req.money(v.sale),
				req.money(v.cost),
				req.money(profit),
				req.money(loss),
			},
		})
	}

	return reportOutput{
		columns: []string{"Date", "Total Sale", "Purchase Cost", "Profit", "Loss"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(totalSale),
			TotalProfit: reports.Ptr(totalProfit),
			RecordCount: len(rows),
			AdditionalInfo: map[string]string{
				"Total Purchase Cost": reports.FormatAmount(totalCost, 2),
				"Total Loss":          reports.FormatAmount(totalLoss, 2),
				"Net Profit":          reports.FormatAmount(totalProfit.Sub(totalLoss), 2),
			},
		},
	}
}
