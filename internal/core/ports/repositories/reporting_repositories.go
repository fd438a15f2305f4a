package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
)

// TransactionReader defines read operations for recorded transactions
type TransactionReader interface {
	// GetTransactionsForReport retrieves the transactions of the given types whose
	// business timestamp falls in [from, to), oldest first.
	GetTransactionsForReport(ctx context.Context, businessID string, types []domain.TransactionType, from, to time.Time) ([]domain.Transaction, error)

	// GetDetailsByTransactionIDs retrieves the line items of the given transactions.
	GetDetailsByTransactionIDs(ctx context.Context, transactionIDs []string) ([]domain.TransactionDetail, error)
}

// ReferenceDataReader defines read operations for the entities reports resolve ids against
type ReferenceDataReader interface {
	GetPartiesByBusiness(ctx context.Context, businessID string) ([]domain.Party, error)
	GetProductsByBusiness(ctx context.Context, businessID string) ([]domain.Product, error)
	GetProductQuantitiesByBusiness(ctx context.Context, businessID string) ([]domain.ProductQuantity, error)
	GetCategoriesByBusiness(ctx context.Context, businessID string) ([]domain.Category, error)
	GetWarehousesByBusiness(ctx context.Context, businessID string) ([]domain.Warehouse, error)
	GetPaymentMethodsByBusiness(ctx context.Context, businessID string) ([]domain.PaymentMethod, error)
}

// ReportDataSource combines every read the reporting engine needs.
type ReportDataSource interface {
	TransactionReader
	ReferenceDataReader
}

// BusinessPreferences exposes per business display settings.
type BusinessPreferences interface {
	// GetCurrencySymbol returns the symbol configured for the business, or an
	// empty string when none is configured.
	GetCurrencySymbol(ctx context.Context, businessID string) (string, error)
}
