package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/shopspring/decimal"
)

// unknownWarehouse labels stock held in a warehouse that no longer exists.
const unknownWarehouse = "Unknown Warehouse"

// activeProducts returns the active products ordered by title.
func activeProducts(products []domain.Product, order domain.SortBy) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Active {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Title), strings.ToLower(out[j].Title)
		if order == domain.SortTitleDesc {
			return a > b
		}
		return a < b
	})
	return out
}

// stockReport lists stock movement, stock worth or low stock per product,
// summed over all warehouses.
func (s *reportingService) stockReport(ctx context.Context, req reportRequest) (reportOutput, error) {
	refs, err := s.loadReferences(ctx, req.businessID, refProducts|refQuantities)
	if err != nil {
		return reportOutput{}, err
	}
	products := activeProducts(refs.products, req.sortOrder())
	levels := domain.AggregateQuantities(refs.quantities)

	switch req.mode {
	case domain.FilterStockWorth:
		return stockWorth(req, products, levels), nil
	case domain.FilterOutOfStock:
		return outOfStock(req, products, levels), nil
	}

	types := []domain.TransactionType{domain.Purchase, domain.VendorReturn, domain.Sale, domain.CustomerReturn}
	txns, details, err := s.loadWindow(ctx, req, types)
	if err != nil {
		return reportOutput{}, err
	}
	return stockMovement(req, products, levels, joinDetails(txns, details)), nil
}

type movement struct {
	purchased decimal.Decimal
	sold      decimal.Decimal
}

func stockMovement(req reportRequest, products []domain.Product, levels map[string]domain.StockLevel, lines []detailLine) reportOutput {
	moved := make(map[string]movement)
	for _, l := range lines {
		id := l.detail.ProductRef()
		m := moved[id]
		switch l.txn.Type {
		case domain.Purchase:
			m.purchased = m.purchased.Add(l.detail.Quantity)
		case domain.VendorReturn:
			m.purchased = m.purchased.Sub(l.detail.Quantity)
		case domain.Sale:
			m.sold = m.sold.Add(l.detail.Quantity)
		case domain.CustomerReturn:
			m.sold = m.sold.Sub(l.detail.Quantity)
		}
		moved[id] = m
	}

	stockCount := decimal.Zero
	saleWorth := decimal.Zero
	rows := make([]domain.ReportRow, 0, len(products))
	for _, p := range products {
		lvl := levels[p.ProductID]
		m := moved[p.ProductID]
		stockCount = stockCount.Add(lvl.Current)
		saleWorth = saleWorth.Add(lvl.Current.Mul(p.RetailPrice))
		rows = append(rows, domain.ReportRow{
			ID: p.ProductID,
			Values: []string{
				p.Title,
				reports.FormatQuantity(m.purchased),
				reports.FormatQuantity(m.sold),
				reports.FormatQuantity(lvl.Current),
				req.money(p.AvgPurchasePrice),
				req.money(p.PurchasePrice),
				req.money(p.RetailPrice),
				req.money(p.WholesalePrice),
				reports.FormatQuantity(lvl.Opening),
			},
		})
	}

	return reportOutput{
		columns: []string{"Product", "Purchased Qty", "Sold Qty", "Available Qty", "Avg Purchase Price",
			"Purchase Price", "Sale Price", "Wholesale Price", "Opening Qty"},
		rows: rows,
		summary: &domain.ReportSummary{
			TotalQuantity: reports.Ptr(stockCount),
			RecordCount:   len(rows),
			AdditionalInfo: map[string]string{
				"Total Products":    strconv.Itoa(len(rows)),
				"Total Stock Count": reports.FormatQuantity(stockCount),
				"Stock Sale Worth":  reports.FormatAmount(saleWorth, 2),
			},
		},
	}
}

func stockWorth(req reportRequest, products []domain.Product, levels map[string]domain.StockLevel) reportOutput {
	total := decimal.Zero
	quantity := decimal.Zero
	rows := make([]domain.ReportRow, 0, len(products))
	for _, p := range products {
		lvl := levels[p.ProductID]
		worth := lvl.Current.Mul(p.AvgPurchasePrice)
		total = total.Add(worth)
		quantity = quantity.Add(lvl.Current)
		rows = append(rows, domain.ReportRow{
			ID: p.ProductID,
			Values: []string{
				p.Title,
				reports.FormatQuantity(lvl.Current),
				req.money(p.AvgPurchasePrice),
				req.money(worth),
			},
		})
	}

	return reportOutput{
		columns: []string{"Product", "Quantity", "Avg Purchase Price", "Stock Purchase Worth"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount:   reports.Ptr(total),
			TotalQuantity: reports.Ptr(quantity),
			RecordCount:   len(rows),
			AdditionalInfo: map[string]string{
				"Total Stock Purchase Worth": reports.FormatAmount(total, 2),
			},
		},
	}
}

func outOfStock(req reportRequest, products []domain.Product, levels map[string]domain.StockLevel) reportOutput {
	rows := make([]domain.ReportRow, 0)
	for _, p := range products {
		lvl := levels[p.ProductID]
		if !lvl.IsOutOfStock() {
			continue
		}
		rows = append(rows, domain.ReportRow{
			ID: p.ProductID,
			Values: []string{
				p.Title,
				reports.FormatQuantity(lvl.Current),
				reports.FormatQuantity(lvl.Minimum),
				req.money(p.AvgPurchasePrice),
			},
		})
	}

	return reportOutput{
		columns: []string{"Product", "Quantity", "Minimum Quantity", "Avg Purchase Price"},
		rows:    rows,
		summary: &domain.ReportSummary{
			RecordCount: len(rows),
			AdditionalInfo: map[string]string{
				"Total Products":        strconv.Itoa(len(products)),
				"Out of Stock Products": strconv.Itoa(len(rows)),
			},
		},
	}
}

// warehouseStock is the stock of one active product in one warehouse.
type warehouseStock struct {
	warehouseID string
	warehouse   string
	product     domain.Product
	quantity    domain.ProductQuantity
}

func (w warehouseStock) rowID() string {
	return w.warehouseID + ":" + w.product.ProductID
}

// warehouseReport lists stock per warehouse and product, optionally for one
// selected warehouse.
func (s *reportingService) warehouseReport(ctx context.Context, req reportRequest) (reportOutput, error) {
	refs, err := s.loadReferences(ctx, req.businessID, refProducts|refQuantities|refWarehouses)
	if err != nil {
		return reportOutput{}, err
	}

	titles := make(map[string]string, len(refs.warehouses))
	for _, w := range refs.warehouses {
		titles[w.WarehouseID] = w.Title
	}
	selected := req.filters.SelectedWarehouseID
	if selected != "" {
		if _, ok := titles[selected]; !ok {
			return reportOutput{}, fmt.Errorf("warehouse %s: %w", selected, apperrors.ErrNotFound)
		}
	}

	products := domain.ProductsByID(refs.products)
	stock := make([]warehouseStock, 0, len(refs.quantities))
	for _, q := range refs.quantities {
		if selected != "" && q.WarehouseID != selected {
			continue
		}
		p, ok := products[q.ProductID]
		if !ok || !p.Active {
			continue
		}
		title, ok := titles[q.WarehouseID]
		if !ok {
			title = unknownWarehouse
		}
		stock = append(stock, warehouseStock{warehouseID: q.WarehouseID, warehouse: title, product: p, quantity: q})
	}

	desc := req.sortOrder() == domain.SortTitleDesc
	sort.SliceStable(stock, func(i, j int) bool {
		a, b := stock[i], stock[j]
		if a.warehouse != b.warehouse {
			return strings.ToLower(a.warehouse) < strings.ToLower(b.warehouse)
		}
		if desc {
			return strings.ToLower(a.product.Title) > strings.ToLower(b.product.Title)
		}
		return strings.ToLower(a.product.Title) < strings.ToLower(b.product.Title)
	})

	switch req.mode {
	case domain.FilterStockWorth:
		return warehouseWorth(req, stock), nil
	case domain.FilterOutOfStock:
		return warehouseOutOfStock(stock), nil
	}
	return warehouseLevels(stock), nil
}

func warehouseLevels(stock []warehouseStock) reportOutput {
	total := decimal.Zero
	warehouses := make(map[string]bool)
	rows := make([]domain.ReportRow, 0, len(stock))
	for _, w := range stock {
		total = total.Add(w.quantity.Current)
		warehouses[w.warehouseID] = true
		rows = append(rows, domain.ReportRow{
			ID: w.rowID(),
			Values: []string{
				w.warehouse,
				w.product.Title,
				reports.FormatQuantity(w.quantity.Current),
				reports.FormatQuantity(w.quantity.Opening),
				reports.FormatQuantity(w.quantity.Minimum),
			},
		})
	}

	return reportOutput{
		columns: []string{"Warehouse", "Product", "Available Qty", "Opening Qty", "Minimum Qty"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalQuantity: reports.Ptr(total),
			RecordCount:   len(rows),
			AdditionalInfo: map[string]string{
				"Total Warehouses":  strconv.Itoa(len(warehouses)),
				"Total Stock Count": reports.FormatQuantity(total),
			},
		},
	}
}

func warehouseWorth(req reportRequest, stock []warehouseStock) reportOutput {
	total := decimal.Zero
	rows := make([]domain.ReportRow, 0, len(stock))
	for _, w := range stock {
		worth := w.quantity.Current.Mul(w.product.AvgPurchasePrice)
		total = total.Add(worth)
		rows = append(rows, domain.ReportRow{
			ID: w.rowID(),
			Values: []string{
				w.warehouse,
				w.product.Title,
				reports.FormatQuantity(w.quantity.Current),
				req.money(w.product.AvgPurchasePrice),
				req.money(worth),
			},
		})
	}

	return reportOutput{
		columns: []string{"Warehouse", "Product", "Quantity", "Avg Purchase Price", "Stock Purchase Worth"},
		rows:    rows,
		summary: &domain.ReportSummary{
			TotalAmount: reports.Ptr(total),
			RecordCount: len(rows),
			AdditionalInfo: map[string]string{
				"Total Stock Purchase Worth": reports.FormatAmount(total, 2),
			},
		},
	}
}

func warehouseOutOfStock(stock []warehouseStock) reportOutput {
	rows := make([]domain.ReportRow, 0)
	for _, w := range stock {
		lvl := domain.StockLevel{Current: w.quantity.Current, Minimum: w.quantity.Minimum}
		if !lvl.IsOutOfStock() {
			continue
		}
		rows = append(rows, domain.ReportRow{
			ID: w.rowID(),
			Values: []string{
				w.warehouse,
				w.product.Title,
				reports.FormatQuantity(w.quantity.Current),
				reports.FormatQuantity(w.quantity.Minimum),
			},
		})
	}

	return reportOutput{
		columns: []string{"Warehouse", "Product", "Quantity", "Minimum Quantity"},
		rows:    rows,
		summary: &domain.ReportSummary{
			RecordCount: len(rows),
			AdditionalInfo: map[string]string{
				"Out of Stock Products": strconv.Itoa(len(rows)),
			},
		},
	}
}
