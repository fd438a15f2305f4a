package services

import (
	"context"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
)

// ReportGeneratorSvc defines report generation
type ReportGeneratorSvc interface {
	// GenerateReport builds the report described by filters for one business.
	GenerateReport(ctx context.Context, businessID string, filters domain.ReportFilters) (*domain.ReportResult, error)
}

// ReportCatalogueSvc describes which filters each report accepts
type ReportCatalogueSvc interface {
	Catalogue() []reports.FilterOptions
}

// ReportingService combines all reporting service interfaces
type ReportingService interface {
	ReportGeneratorSvc
	ReportCatalogueSvc
}
