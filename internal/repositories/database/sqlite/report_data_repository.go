package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	portsrepo "github.com/SscSPs/hisaabi_reports/internal/core/ports/repositories"
	"github.com/SscSPs/hisaabi_reports/internal/models"
	"github.com/SscSPs/hisaabi_reports/internal/utils/mapping"
)

// ReportDataRepository reads the ledger tables of a local database.
type ReportDataRepository struct {
	db *DB
}

func newReportDataRepository(db *DB) portsrepo.ReportDataSource {
	return &ReportDataRepository{db: db}
}

var _ portsrepo.ReportDataSource = (*ReportDataRepository)(nil)

// scanAll runs query and hands every row to scan.
func scanAll[T any](ctx context.Context, db *DB, what, query string, scan func(*sql.Rows) (T, error), args ...any) ([]T, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to query %s", what), err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to scan %s", what), err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to read %s", what), err)
	}
	return out, nil
}

// placeholders returns "?, ?, ..." for n arguments.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func scanAudit(created, updated int64) models.AuditFields {
	return models.AuditFields{CreatedAt: time.UnixMilli(created), UpdatedAt: time.UnixMilli(updated)}
}

func scanTransaction(rows *sql.Rows) (models.Transaction, error) {
	var m models.Transaction
	var ts, created, updated int64
	err := rows.Scan(&m.TransactionID, &m.BusinessID, &m.PartyID, &m.TransactionType, &m.TotalBill, &m.FlatTax,
		&m.FlatDiscount, &m.AdditionalCharges, &m.TotalPaid, &m.PaymentMethodFromID,
		&m.PaymentMethodToID, &m.Description, &ts, &created, &updated)
	m.TransactionTS = time.UnixMilli(ts)
	m.AuditFields = scanAudit(created, updated)
	return m, err
}

// GetTransactionsForReport retrieves the transactions of the given types in [from, to), oldest first.
func (r *ReportDataRepository) GetTransactionsForReport(ctx context.Context, businessID string, types []domain.TransactionType, from, to time.Time) ([]domain.Transaction, error) {
	if len(types) == 0 {
		return []domain.Transaction{}, nil
	}
	args := make([]any, 0, len(types)+3)
	args = append(args, businessID)
	for _, t := range types {
		args = append(args, int16(t))
	}
	args = append(args, from.UnixMilli(), to.UnixMilli())

	query := `SELECT transaction_id, business_id, party_id, transaction_type, total_bill, flat_tax,
			flat_discount, additional_charges, total_paid, payment_method_from_id,
			payment_method_to_id, description, transaction_ts, created_at, updated_at
		FROM transactions
		WHERE business_id = ?
			AND transaction_type IN (` + placeholders(len(types)) + `)
			AND transaction_ts >= ?
			AND transaction_ts < ?
		ORDER BY transaction_ts, transaction_id`
	rows, err := scanAll(ctx, r.db, "transactions", query, scanTransaction, args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(rows), nil
}

// detailBatchSize bounds the ids bound to one statement, well below the
// SQLite host parameter limit.
const detailBatchSize = 500

func scanDetail(rows *sql.Rows) (models.TransactionDetail, error) {
	var m models.TransactionDetail
	err := rows.Scan(&m.DetailID, &m.TransactionID, &m.ProductID, &m.Quantity, &m.Price, &m.FlatDiscount, &m.FlatTax, &m.Profit)
	return m, err
}

// GetDetailsByTransactionIDs retrieves the line items of the given transactions,
// ordered by transaction id then detail id.
func (r *ReportDataRepository) GetDetailsByTransactionIDs(ctx context.Context, transactionIDs []string) ([]domain.TransactionDetail, error) {
	ids := slices.Clone(transactionIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	out := make([]models.TransactionDetail, 0, len(ids))
	for batch := range slices.Chunk(ids, detailBatchSize) {
		args := make([]any, len(batch))
		for i, id := range batch {
			args[i] = id
		}
		query := `SELECT detail_id, transaction_id, product_id, quantity, price, flat_discount, flat_tax, profit
			FROM transaction_details
			WHERE transaction_id IN (` + placeholders(len(batch)) + `)
			ORDER BY transaction_id, detail_id`
		rows, err := scanAll(ctx, r.db, "transaction details", query, scanDetail, args...)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	return mapping.ToDomainTransactionDetailSlice(out), nil
}

// GetPartiesByBusiness retrieves every party of the business.
func (r *ReportDataRepository) GetPartiesByBusiness(ctx context.Context, businessID string) ([]domain.Party, error) {
	query := `SELECT party_id, business_id, name, role, area_id, category_id, opening_balance, balance, created_at, updated_at
		FROM parties
		WHERE business_id = ?
		ORDER BY name, party_id`
	rows, err := scanAll(ctx, r.db, "parties", query, func(rows *sql.Rows) (models.Party, error) {
		var m models.Party
		var created, updated int64
		err := rows.Scan(&m.PartyID, &m.BusinessID, &m.Name, &m.Role, &m.AreaID, &m.CategoryID,
			&m.OpeningBalance, &m.Balance, &created, &updated)
		m.AuditFields = scanAudit(created, updated)
		return m, err
	}, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainParty), nil
}

// GetProductsByBusiness retrieves every product of the business.
func (r *ReportDataRepository) GetProductsByBusiness(ctx context.Context, businessID string) ([]domain.Product, error) {
	query := `SELECT product_id, business_id, title, category_id, avg_purchase_price, purchase_price, retail_price,
			wholesale_price, opening_purchase_price, is_active, created_at, updated_at
		FROM products
		WHERE business_id = ?
		ORDER BY title, product_id`
	rows, err := scanAll(ctx, r.db, "products", query, func(rows *sql.Rows) (models.Product, error) {
		var m models.Product
		var created, updated int64
		err := rows.Scan(&m.ProductID, &m.BusinessID, &m.Title, &m.CategoryID, &m.AvgPurchasePrice, &m.PurchasePrice,
			&m.RetailPrice, &m.WholesalePrice, &m.OpeningPurchasePrice, &m.IsActive, &created, &updated)
		m.AuditFields = scanAudit(created, updated)
		return m, err
	}, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainProduct), nil
}

// GetProductQuantitiesByBusiness retrieves per warehouse stock of every product of the business.
func (r *ReportDataRepository) GetProductQuantitiesByBusiness(ctx context.Context, businessID string) ([]domain.ProductQuantity, error) {
	query := `SELECT q.product_id, q.warehouse_id, q.current_quantity, q.opening_quantity, q.minimum_quantity, q.maximum_quantity
		FROM product_quantities q
		JOIN products p ON p.product_id = q.product_id
		WHERE p.business_id = ?
		ORDER BY q.product_id, q.warehouse_id`
	rows, err := scanAll(ctx, r.db, "product quantities", query, func(rows *sql.Rows) (models.ProductQuantity, error) {
		var m models.ProductQuantity
		err := rows.Scan(&m.ProductID, &m.WarehouseID, &m.Current, &m.Opening, &m.Minimum, &m.Maximum)
		return m, err
	}, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainProductQuantity), nil
}

// GetCategoriesByBusiness retrieves the categories, areas and party categories of the business.
func (r *ReportDataRepository) GetCategoriesByBusiness(ctx context.Context, businessID string) ([]domain.Category, error) {
	query := `SELECT category_id, business_id, title, kind
		FROM categories
		WHERE business_id = ?
		ORDER BY title, category_id`
	rows, err := scanAll(ctx, r.db, "categories", query, func(rows *sql.Rows) (models.Category, error) {
		var m models.Category
		err := rows.Scan(&m.CategoryID, &m.BusinessID, &m.Title, &m.Kind)
		return m, err
	}, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainCategory), nil
}

// GetWarehousesByBusiness retrieves the warehouses of the business.
func (r *ReportDataRepository) GetWarehousesByBusiness(ctx context.Context, businessID string) ([]domain.Warehouse, error) {
	query := `SELECT warehouse_id, business_id, title
		FROM warehouses
		WHERE business_id = ?
		ORDER BY title, warehouse_id`
	rows, err := scanAll(ctx, r.db, "warehouses", query, func(rows *sql.Rows) (models.Warehouse, error) {
		var m models.Warehouse
		err := rows.Scan(&m.WarehouseID, &m.BusinessID, &m.Title)
		return m, err
	}, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainWarehouse), nil
}

// GetPaymentMethodsByBusiness retrieves the payment methods of the business.
func (r *ReportDataRepository) GetPaymentMethodsByBusiness(ctx context.Context, businessID string) ([]domain.PaymentMethod, error) {
	query := `SELECT payment_method_id, business_id, title, amount, opening_amount, is_active
		FROM payment_methods
		WHERE business_id = ?
		ORDER BY title, payment_method_id`
	rows, err := scanAll(ctx, r.db, "payment methods", query, func(rows *sql.Rows) (models.PaymentMethod, error) {
		var m models.PaymentMethod
		err := rows.Scan(&m.PaymentMethodID, &m.BusinessID, &m.Title, &m.Amount, &m.OpeningAmount, &m.IsActive)
		return m, err
	}, businessID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainPaymentMethod), nil
}
