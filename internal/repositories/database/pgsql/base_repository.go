package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// selectAll runs query and maps every row onto a model by its db tags.
func selectAll[T any](ctx context.Context, r *BaseRepository, what, query string, args ...any) ([]T, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to query %s", what), err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to scan %s", what), err)
	}
	if out == nil {
		// Return empty slice instead of nil
		return []T{}, nil
	}
	return out, nil
}
