package reports_test

import (
	"testing"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func strPtr(s string) *string {
	return &s
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func txnAt(id string, typ domain.TransactionType, at time.Time, bill, paid string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Type:          typ,
		TotalBill:     dec(bill),
		TotalPaid:     dec(paid),
		Timestamp:     at,
	}
}
