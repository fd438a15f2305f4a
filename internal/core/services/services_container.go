package services

import (
	portsrepo "github.com/SscSPs/hisaabi_reports/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisaabi_reports/internal/core/ports/services"
	"github.com/SscSPs/hisaabi_reports/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, extra ...ReportingServiceOption) *portssvc.ServiceContainer {
	options := []ReportingServiceOption{
		WithLocation(cfg.ReportLocation),
		WithDefaultCurrencySymbol(cfg.DefaultCurrencySymbol),
	}
	options = append(options, extra...)

	return &portssvc.ServiceContainer{
		Reporting: NewReportingService(repos.ReportData, repos.Preferences, options...),
	}
}
