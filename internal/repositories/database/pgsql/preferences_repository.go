package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	portsrepo "github.com/SscSPs/hisaabi_reports/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPreferencesRepository reads per business display settings.
type PgxPreferencesRepository struct {
	BaseRepository
}

func newPgxPreferencesRepository(pool *pgxpool.Pool) portsrepo.BusinessPreferences {
	return &PgxPreferencesRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BusinessPreferences = (*PgxPreferencesRepository)(nil)

// GetCurrencySymbol returns the configured symbol, or "" when the business has none.
func (r *PgxPreferencesRepository) GetCurrencySymbol(ctx context.Context, businessID string) (string, error) {
	query := `SELECT COALESCE(currency_symbol, '') FROM businesses WHERE business_id = $1;`

	var symbol string
	err := r.Pool.QueryRow(ctx, query, businessID).Scan(&symbol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("business %s: %w", businessID, apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get currency symbol for business %s: %w", businessID, err)
	}
	return symbol, nil
}
