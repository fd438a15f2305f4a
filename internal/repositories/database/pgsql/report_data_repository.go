package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	portsrepo "github.com/SscSPs/hisaabi_reports/internal/core/ports/repositories"
	"github.com/SscSPs/hisaabi_reports/internal/models"
	"github.com/SscSPs/hisaabi_reports/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportDataRepository reads the ledger tables the reporting engine needs.
type PgxReportDataRepository struct {
	BaseRepository
}

// newPgxReportDataRepository creates a new repository for report data.
func newPgxReportDataRepository(pool *pgxpool.Pool) portsrepo.ReportDataSource {
	return &PgxReportDataRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportDataSource = (*PgxReportDataRepository)(nil)

const transactionColumns = `
	transaction_id, business_id, party_id, transaction_type, total_bill, flat_tax,
	flat_discount, additional_charges, total_paid, payment_method_from_id,
	payment_method_to_id, description, transaction_ts, created_at, updated_at`

// GetTransactionsForReport retrieves the transactions of the given types in [from, to), oldest first.
func (r *PgxReportDataRepository) GetTransactionsForReport(ctx context.Context, businessID string, types []domain.TransactionType, from, to time.Time) ([]domain.Transaction, error) {
	codes := make([]int16, len(types))
	for i, t := range types {
		codes[i] = int16(t)
	}

	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_id = $1
			AND transaction_type = ANY($2)
			AND transaction_ts >= $3
			AND transaction_ts < $4
		ORDER BY transaction_ts, transaction_id;
	`
	rows, err := selectAll[models.Transaction](ctx, &r.BaseRepository, "transactions", query, businessID, codes, from, to)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(rows), nil
}

// GetDetailsByTransactionIDs retrieves the line items of the given transactions.
func (r *PgxReportDataRepository) GetDetailsByTransactionIDs(ctx context.Context, transactionIDs []string) ([]domain.TransactionDetail, error) {
	if len(transactionIDs) == 0 {
		return []domain.TransactionDetail{}, nil
	}
	query := `
		SELECT detail_id, transaction_id, product_id, quantity, price, flat_discount, flat_tax, profit
		FROM transaction_details
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, detail_id;
	`
	rows, err := selectAll[models.TransactionDetail](ctx, &r.BaseRepository, "transaction details", query, transactionIDs)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionDetailSlice(rows), nil
}

// GetPartiesByBusiness retrieves every party of the business.
func (r *PgxReportDataRepository) GetPartiesByBusiness(ctx context.Context, businessID string) ([]domain.Party, error) {
	query := `
		SELECT party_id, business_id, name, role, area_id, category_id, opening_balance, balance, created_at, updated_at
		FROM parties
		WHERE business_id = $1
		ORDER BY name, party_id;
	`
	rows, err := selectAll[models.Party](ctx, &r.BaseRepository, "parties", query, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainParty), nil
}

// GetProductsByBusiness retrieves every product of the business.
func (r *PgxReportDataRepository) GetProductsByBusiness(ctx context.Context, businessID string) ([]domain.Product, error) {
	query := `
		SELECT product_id, business_id, title, category_id, avg_purchase_price, purchase_price, retail_price,
			wholesale_price, opening_purchase_price, is_active, created_at, updated_at
		FROM products
		WHERE business_id = $1
		ORDER BY title, product_id;
	`
	rows, err := selectAll[models.Product](ctx, &r.BaseRepository, "products", query, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainProduct), nil
}

// GetProductQuantitiesByBusiness retrieves per warehouse stock of every product of the business.
func (r *PgxReportDataRepository) GetProductQuantitiesByBusiness(ctx context.Context, businessID string) ([]domain.ProductQuantity, error) {
	query := `
		SELECT q.product_id, q.warehouse_id, q.current_quantity, q.opening_quantity, q.minimum_quantity, q.maximum_quantity
		FROM product_quantities q
		JOIN products p ON p.product_id = q.product_id
		WHERE p.business_id = $1
		ORDER BY q.product_id, q.warehouse_id;
	`
	rows, err := selectAll[models.ProductQuantity](ctx, &r.BaseRepository, "product quantities", query, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainProductQuantity), nil
}

// GetCategoriesByBusiness retrieves the categories, areas and party categories of the business.
func (r *PgxReportDataRepository) GetCategoriesByBusiness(ctx context.Context, businessID string) ([]domain.Category, error) {
	query := `
		SELECT category_id, business_id, title, kind
		FROM categories
		WHERE business_id = $1
		ORDER BY title, category_id;
	`
	rows, err := selectAll[models.Category](ctx, &r.BaseRepository, "categories", query, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainCategory), nil
}

// GetWarehousesByBusiness retrieves the warehouses of the business.
func (r *PgxReportDataRepository) GetWarehousesByBusiness(ctx context.Context, businessID string) ([]domain.Warehouse, error) {
	query := `
		SELECT warehouse_id, business_id, title
		FROM warehouses
		WHERE business_id = $1
		ORDER BY title, warehouse_id;
	`
	rows, err := selectAll[models.Warehouse](ctx, &r.BaseRepository, "warehouses", query, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainWarehouse), nil
}

// GetPaymentMethodsByBusiness retrieves the payment methods of the business.
func (r *PgxReportDataRepository) GetPaymentMethodsByBusiness(ctx context.Context, businessID string) ([]domain.PaymentMethod, error) {
	query := `
		SELECT payment_method_id, business_id, title, amount, opening_amount, is_active
		FROM payment_methods
		WHERE business_id = $1
		ORDER BY title, payment_method_id;
	`
	rows, err := selectAll[models.PaymentMethod](ctx, &r.BaseRepository, "payment methods", query, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainPaymentMethod), nil
}
