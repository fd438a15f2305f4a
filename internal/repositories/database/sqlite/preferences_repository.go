package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	portsrepo "github.com/SscSPs/hisaabi_reports/internal/core/ports/repositories"
)

// PreferencesRepository reads per business display settings.
type PreferencesRepository struct {
	db *DB
}

func newPreferencesRepository(db *DB) portsrepo.BusinessPreferences {
	return &PreferencesRepository{db: db}
}

var _ portsrepo.BusinessPreferences = (*PreferencesRepository)(nil)

// GetCurrencySymbol returns the configured symbol, or "" when the business has none.
func (r *PreferencesRepository) GetCurrencySymbol(ctx context.Context, businessID string) (string, error) {
	var symbol string
	err := r.db.conn.QueryRowContext(ctx,
		`SELECT COALESCE(currency_symbol, '') FROM businesses WHERE business_id = ?`, businessID).Scan(&symbol)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("business %s: %w", businessID, apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get currency symbol for business %s: %w", businessID, err)
	}
	return symbol, nil
}
