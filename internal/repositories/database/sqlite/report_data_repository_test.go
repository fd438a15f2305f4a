package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBusiness = "biz-1"

var march = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "hisaabi.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func exec(t *testing.T, db *DB, query string, args ...any) {
	t.Helper()
	_, err := db.Conn().Exec(query, args...)
	require.NoError(t, err)
}

func seedLedger(t *testing.T, db *DB) {
	t.Helper()
	exec(t, db, `INSERT INTO businesses (business_id, title, currency_symbol) VALUES (?, 'Corner Shop', 'Rs')`, testBusiness)
	exec(t, db, `INSERT INTO businesses (business_id, title) VALUES ('biz-2', 'No Symbol')`)
	exec(t, db, `INSERT INTO categories (category_id, business_id, title, kind) VALUES ('c1', ?, 'Fruit', 1)`, testBusiness)
	exec(t, db, `INSERT INTO warehouses (warehouse_id, business_id, title) VALUES ('w1', ?, 'Main')`, testBusiness)
	exec(t, db, `INSERT INTO parties (party_id, business_id, name, role, category_id, opening_balance, balance)
		VALUES ('alice', ?, 'Alice', 0, NULL, '100', '250.50')`, testBusiness)
	exec(t, db, `INSERT INTO products (product_id, business_id, title, category_id, avg_purchase_price, retail_price, is_active)
		VALUES ('apple', ?, 'Apple', 'c1', '4.25', '7', 1)`, testBusiness)
	exec(t, db, `INSERT INTO product_quantities (product_id, warehouse_id, current_quantity, opening_quantity)
		VALUES ('apple', 'w1', '12', '20')`)
	exec(t, db, `INSERT INTO payment_methods (payment_method_id, business_id, title, amount, opening_amount, is_active)
		VALUES ('cash', ?, 'Cash', '500', '400', 1)`, testBusiness)

	insertTxn := `INSERT INTO transactions (transaction_id, business_id, party_id, transaction_type, total_bill, total_paid,
		payment_method_to_id, description, transaction_ts) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	exec(t, db, insertTxn, "t1", testBusiness, "alice", int(domain.Sale), "200", "50", "cash", "first sale", march.Add(24*time.Hour).UnixMilli())
	exec(t, db, insertTxn, "t2", testBusiness, nil, int(domain.Expense), "30", "30", "cash", nil, march.Add(48*time.Hour).UnixMilli())
	exec(t, db, insertTxn, "t3", testBusiness, "alice", int(domain.Sale), "80", "0", nil, nil, march.AddDate(0, 1, 0).UnixMilli())

	exec(t, db, `INSERT INTO transaction_details (detail_id, transaction_id, product_id, quantity, price, profit)
		VALUES ('d1', 't1', 'apple', '3', '66.6667', '20')`)
	exec(t, db, `INSERT INTO transaction_details (detail_id, transaction_id, product_id, quantity, price, profit)
		VALUES ('d2', 't3', 'apple', '1', '80', '10')`)
}

func TestReportDataRepository_TransactionsInWindow(t *testing.T) {
	db := newTestDB(t)
	seedLedger(t, db)
	repo := NewRepositoryProvider(db).ReportData

	txns, err := repo.GetTransactionsForReport(context.Background(), testBusiness,
		[]domain.TransactionType{domain.Sale}, march, march.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Len(t, txns, 1)

	txn := txns[0]
	assert.Equal(t, "t1", txn.TransactionID)
	assert.Equal(t, domain.Sale, txn.Type)
	assert.Equal(t, "alice", txn.PartyRef())
	assert.Equal(t, "first sale", txn.Description)
	assert.True(t, txn.TotalBill.Equal(decimalOf(t, "200")))
	assert.True(t, txn.UsesPaymentMethod("cash"))
	assert.Nil(t, txn.PaymentMethodFromID)
	assert.True(t, txn.Timestamp.Equal(march.Add(24*time.Hour)))
}

func TestReportDataRepository_TransactionsByTypeOrderedOldestFirst(t *testing.T) {
	db := newTestDB(t)
	seedLedger(t, db)
	repo := NewRepositoryProvider(db).ReportData

	txns, err := repo.GetTransactionsForReport(context.Background(), testBusiness,
		[]domain.TransactionType{domain.Sale, domain.Expense}, time.UnixMilli(0), march.AddDate(1, 0, 0))
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, []string{"t1", "t2", "t3"}, []string{txns[0].TransactionID, txns[1].TransactionID, txns[2].TransactionID})
	assert.Nil(t, txns[1].PartyID)
	assert.Empty(t, txns[1].Description)

	none, err := repo.GetTransactionsForReport(context.Background(), testBusiness, nil, march, march.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReportDataRepository_Details(t *testing.T) {
	db := newTestDB(t)
	seedLedger(t, db)
	repo := NewRepositoryProvider(db).ReportData

	details, err := repo.GetDetailsByTransactionIDs(context.Background(), []string{"t1", "t3"})
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "d1", details[0].DetailID)
	require.NotNil(t, details[0].ProductID)
	assert.Equal(t, "apple", *details[0].ProductID)
	assert.Equal(t, "66.6667", details[0].Price.String())

	empty, err := repo.GetDetailsByTransactionIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestReportDataRepository_DetailsAcrossManyTransactions(t *testing.T) {
	db := newTestDB(t)
	seedLedger(t, db)
	repo := NewRepositoryProvider(db).ReportData

	tx, err := db.Conn().Begin()
	require.NoError(t, err)
	const stored = 1200
	for i := 0; i < stored; i++ {
		id := fmt.Sprintf("bulk-%05d", i)
		_, err = tx.Exec(`INSERT INTO transactions (transaction_id, business_id, transaction_type, transaction_ts) VALUES (?, ?, ?, ?)`,
			id, testBusiness, int(domain.Sale), march.UnixMilli())
		require.NoError(t, err)
		_, err = tx.Exec(`INSERT INTO transaction_details (detail_id, transaction_id, quantity) VALUES (?, ?, '1')`, "d-"+id, id)
		require.NoError(t, err)
	}
	require.NoError(t, tx.Commit())

	// Far more ids than SQLite accepts as bound parameters in one statement.
	ids := make([]string, 0, 40000)
	for i := 39999; i >= 0; i-- {
		ids = append(ids, fmt.Sprintf("bulk-%05d", i))
	}
	ids = append(ids, "t1", "bulk-00000")

	details, err := repo.GetDetailsByTransactionIDs(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, details, stored+1)
	assert.Equal(t, "bulk-00000", details[0].TransactionID)
	assert.Equal(t, "bulk-01199", details[stored-1].TransactionID)
	assert.Equal(t, "t1", details[stored].TransactionID)
}

func TestReportDataRepository_ReferenceData(t *testing.T) {
	db := newTestDB(t)
	seedLedger(t, db)
	repo := NewRepositoryProvider(db).ReportData
	ctx := context.Background()

	parties, err := repo.GetPartiesByBusiness(ctx, testBusiness)
	require.NoError(t, err)
	require.Len(t, parties, 1)
	assert.Equal(t, domain.RoleCustomer, parties[0].Role)
	assert.Nil(t, parties[0].CategoryID)
	assert.Equal(t, "250.5", parties[0].Balance.String())

	products, err := repo.GetProductsByBusiness(ctx, testBusiness)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].Active)
	assert.Equal(t, "4.25", products[0].AvgPurchasePrice.String())

	quantities, err := repo.GetProductQuantitiesByBusiness(ctx, testBusiness)
	require.NoError(t, err)
	require.Len(t, quantities, 1)
	assert.Equal(t, "12", quantities[0].Current.String())

	categories, err := repo.GetCategoriesByBusiness(ctx, testBusiness)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, domain.CategoryKindProduct, categories[0].Kind)

	warehouses, err := repo.GetWarehousesByBusiness(ctx, testBusiness)
	require.NoError(t, err)
	assert.Len(t, warehouses, 1)

	methods, err := repo.GetPaymentMethodsByBusiness(ctx, testBusiness)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, "400", methods[0].OpeningAmount.String())

	other, err := repo.GetPartiesByBusiness(ctx, "biz-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPreferencesRepository_GetCurrencySymbol(t *testing.T) {
	db := newTestDB(t)
	seedLedger(t, db)
	prefs := NewRepositoryProvider(db).Preferences
	ctx := context.Background()

	symbol, err := prefs.GetCurrencySymbol(ctx, testBusiness)
	require.NoError(t, err)
	assert.Equal(t, "Rs", symbol)

	symbol, err = prefs.GetCurrencySymbol(ctx, "biz-2")
	require.NoError(t, err)
	assert.Empty(t, symbol)

	_, err = prefs.GetCurrencySymbol(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hisaabi.db")
	first, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(context.Background(), path)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func decimalOf(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
