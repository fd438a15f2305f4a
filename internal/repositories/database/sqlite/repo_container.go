package sqlite

import portsrepo "github.com/SscSPs/hisaabi_reports/internal/core/ports/repositories"

func NewRepositoryProvider(db *DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ReportData:  newReportDataRepository(db),
		Preferences: newPreferencesRepository(db),
	}
}
