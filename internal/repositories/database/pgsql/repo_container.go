package pgsql

import (
	portsrepo "github.com/SscSPs/hisaabi_reports/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ReportData:  newPgxReportDataRepository(dbPool),
		Preferences: newPgxPreferencesRepository(dbPool),
	}
}
