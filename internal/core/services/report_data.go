package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"golang.org/x/sync/errgroup"
)

// referenceKind selects which reference tables loadReferences fetches.
type referenceKind uint8

const (
	refParties referenceKind = 1 << iota
	refProducts
	refQuantities
	refCategories
	refWarehouses
	refPaymentMethods
)

type referenceData struct {
	parties    []domain.Party
	products   []domain.Product
	quantities []domain.ProductQuantity
	categories []domain.Category
	warehouses []domain.Warehouse
	methods    []domain.PaymentMethod
}

func (r referenceData) lookups() reports.Lookups {
	return reports.NewLookups(r.products, r.parties, r.categories)
}

func fetchInto[T any](g *errgroup.Group, ctx context.Context, what string, dst *[]T, fetch func(context.Context) ([]T, error)) {
	g.Go(func() error {
		out, err := fetch(ctx)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", what, err)
		}
		*dst = out
		return nil
	})
}

// loadReferences fetches the requested reference tables concurrently.
func (s *reportingService) loadReferences(ctx context.Context, businessID string, kinds referenceKind) (referenceData, error) {
	var refs referenceData
	g, gctx := errgroup.WithContext(ctx)

	if kinds&refParties != 0 {
		fetchInto(g, gctx, "parties", &refs.parties, func(ctx context.Context) ([]domain.Party, error) {
			return s.data.GetPartiesByBusiness(ctx, businessID)
		})
	}
	if kinds&refProducts != 0 {
		fetchInto(g, gctx, "products", &refs.products, func(ctx context.Context) ([]domain.Product, error) {
			return s.data.GetProductsByBusiness(ctx, businessID)
		})
	}
	if kinds&refQuantities != 0 {
		fetchInto(g, gctx, "product quantities", &refs.quantities, func(ctx context.Context) ([]domain.ProductQuantity, error) {
			return s.data.GetProductQuantitiesByBusiness(ctx, businessID)
		})
	}
	if kinds&refCategories != 0 {
		fetchInto(g, gctx, "categories", &refs.categories, func(ctx context.Context) ([]domain.Category, error) {
			return s.data.GetCategoriesByBusiness(ctx, businessID)
		})
	}
	if kinds&refWarehouses != 0 {
		fetchInto(g, gctx, "warehouses", &refs.warehouses, func(ctx context.Context) ([]domain.Warehouse, error) {
			return s.data.GetWarehousesByBusiness(ctx, businessID)
		})
	}
	if kinds&refPaymentMethods != 0 {
		fetchInto(g, gctx, "payment methods", &refs.methods, func(ctx context.Context) ([]domain.PaymentMethod, error) {
			return s.data.GetPaymentMethodsByBusiness(ctx, businessID)
		})
	}

	if err := g.Wait(); err != nil {
		return referenceData{}, err
	}
	return refs, nil
}

// loadTransactions fetches the transactions of the given types inside period.
func (s *reportingService) loadTransactions(ctx context.Context, businessID string, types []domain.TransactionType, period reports.DateRange) ([]domain.Transaction, error) {
	txns, err := s.data.GetTransactionsForReport(ctx, businessID, types, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txns, nil
}

// loadDetails fetches the line items of txns. No query is made for an empty slice.
func (s *reportingService) loadDetails(ctx context.Context, txns []domain.Transaction) ([]domain.TransactionDetail, error) {
	if len(txns) == 0 {
		return nil, nil
	}
	details, err := s.data.GetDetailsByTransactionIDs(ctx, domain.TransactionIDs(txns))
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction details: %w", err)
	}
	return details, nil
}

// loadWindow fetches the transactions of the report period with their line items.
func (s *reportingService) loadWindow(ctx context.Context, req reportRequest, types []domain.TransactionType) ([]domain.Transaction, []domain.TransactionDetail, error) {
	txns, err := s.loadTransactions(ctx, req.businessID, types, req.period)
	if err != nil {
		return nil, nil, err
	}
	details, err := s.loadDetails(ctx, txns)
	if err != nil {
		return nil, nil, err
	}
	return txns, details, nil
}

// transactionsByID indexes txns by id.
func transactionsByID(txns []domain.Transaction) map[string]domain.Transaction {
	byID := make(map[string]domain.Transaction, len(txns))
	for _, t := range txns {
		byID[t.TransactionID] = t
	}
	return byID
}

// detailLine pairs a line item with the transaction it belongs to.
type detailLine struct {
	txn    domain.Transaction
	detail domain.TransactionDetail
}

// joinDetails attaches each detail to its transaction, in transaction order.
// Details whose transaction is not in txns are dropped.
func joinDetails(txns []domain.Transaction, details []domain.TransactionDetail) []detailLine {
	grouped := domain.DetailsByTransaction(details)
	lines := make([]detailLine, 0, len(details))
	for _, txn := range reports.SortedAscending(txns) {
		for _, d := range grouped[txn.TransactionID] {
			lines = append(lines, detailLine{txn: txn, detail: d})
		}
	}
	return lines
}
