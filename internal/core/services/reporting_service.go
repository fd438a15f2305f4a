package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	portsrepo "github.com/SscSPs/hisaabi_reports/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisaabi_reports/internal/core/ports/services"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol is used when a business has no symbol configured.
const DefaultCurrencySymbol = "Rs"

// Outcomes reported to a ReportObserver.
const (
	OutcomeSuccess       = "success"
	OutcomeValidation    = "validation_error"
	OutcomeConfiguration = "configuration_error"
	OutcomeNotFound      = "not_found"
	OutcomeFailure       = "error"
)

// ReportObserver is notified once per GenerateReport call.
type ReportObserver interface {
	ObserveReport(reportType string, outcome string, elapsed time.Duration)
}

// reportRequest is everything a generator needs for one invocation.
type reportRequest struct {
	businessID string
	filters    domain.ReportFilters
	mode       domain.AdditionalFilter
	period     reports.DateRange
	symbol     string
	loc        *time.Location
}

func (r reportRequest) money(d decimal.Decimal) string {
	return reports.FormatMoney(r.symbol, d)
}

func (r reportRequest) localTime(t time.Time) time.Time {
	return t.In(r.loc)
}

// groupBy returns the requested grouping, or none when it does not apply.
func (r reportRequest) groupBy() domain.GroupBy {
	if reports.AppliesGroupBy(r.filters.ReportType, r.filters.GroupBy) {
		return r.filters.GroupBy
	}
	return domain.GroupByNone
}

// sortOrder returns the requested order, or none when it does not apply.
func (r reportRequest) sortOrder() domain.SortBy {
	if reports.AppliesSortBy(r.filters.ReportType, r.filters.SortBy) {
		return r.filters.SortBy
	}
	return ""
}

// reportOutput is the part of a ReportResult a generator produces.
type reportOutput struct {
	columns    []string
	rows       []domain.ReportRow
	summary    *domain.ReportSummary
	breakdowns *domain.BalanceSheetBreakdowns
}

type reportGenerator func(ctx context.Context, req reportRequest) (reportOutput, error)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	data          portsrepo.ReportDataSource
	prefs         portsrepo.BusinessPreferences
	now           func() time.Time
	loc           *time.Location
	defaultSymbol string
	observer      ReportObserver
	generators    map[domain.ReportType]reportGenerator
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithClock sets the clock used to resolve date ranges and stamp results.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the business timezone used for date ranges and buckets.
func WithLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithDefaultCurrencySymbol sets the symbol used when a business has none.
func WithDefaultCurrencySymbol(symbol string) ReportingServiceOption {
	return func(s *reportingService) {
		if symbol != "" {
			s.defaultSymbol = symbol
		}
	}
}

// WithReportObserver registers an observer for report outcomes and durations.
func WithReportObserver(observer ReportObserver) ReportingServiceOption {
	return func(s *reportingService) {
		s.observer = observer
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(data portsrepo.ReportDataSource, prefs portsrepo.BusinessPreferences, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		data:          data,
		prefs:         prefs,
		now:           time.Now,
		loc:           time.UTC,
		defaultSymbol: DefaultCurrencySymbol,
	}

	for _, option := range options {
		option(svc)
	}

	svc.generators = map[domain.ReportType]reportGenerator{
		domain.ReportSale:                 svc.tradeReport(saleSide),
		domain.ReportPurchase:             svc.tradeReport(purchaseSide),
		domain.ReportExpense:              svc.expenseIncomeReport(domain.Expense),
		domain.ReportExtraIncome:          svc.expenseIncomeReport(domain.ExtraIncome),
		domain.ReportTopProducts:          svc.topProductsReport,
		domain.ReportTopCustomers:         svc.topCustomersReport,
		domain.ReportStock:                svc.stockReport,
		domain.ReportWarehouse:            svc.warehouseReport,
		domain.ReportProduct:              svc.productReport,
		domain.ReportCustomer:             svc.partyReport(domain.RoleClassCustomer),
		domain.ReportVendor:               svc.partyReport(domain.RoleClassVendor),
		domain.ReportInvestor:             svc.partyReport(domain.RoleClassInvestor),
		domain.ReportProfitLoss:           svc.profitLossReport(avgPurchaseCost),
		domain.ReportProfitLossByPurchase: svc.profitLossReport(purchasePriceCost),
		domain.ReportCashInHand:           svc.cashInHandReport,
		domain.ReportBalance:              svc.balanceReport,
		domain.ReportBalanceSheet:         svc.balanceSheetReport,
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// GenerateReport builds the report described by filters for one business.
func (s *reportingService) GenerateReport(ctx context.Context, businessID string, filters domain.ReportFilters) (*domain.ReportResult, error) {
	started := time.Now()
	result, err := s.generate(ctx, businessID, filters)
	if s.observer != nil {
		s.observer.ObserveReport(reportLabel(filters.ReportType), outcomeOf(err), time.Since(started))
	}
	return result, err
}

func (s *reportingService) generate(ctx context.Context, businessID string, filters domain.ReportFilters) (*domain.ReportResult, error) {
	if strings.TrimSpace(businessID) == "" {
		err := apperrors.NewConfigurationError("no business selected")
		s.LogError(ctx, err, "Report requested without a business",
			slog.Int("report_type", int(filters.ReportType)))
		return nil, err
	}

	ctx = s.withReportScope(ctx, businessID, filters.ReportType)
	filters = filters.WithDefaults()
	if err := reports.ValidateFilters(filters); err != nil {
		s.LogDebug(ctx, "Report filters rejected",
			slog.Int("report_type", int(filters.ReportType)),
			slog.String("error", err.Error()))
		return nil, err
	}

	generator, ok := s.generators[filters.ReportType]
	if !ok {
		return nil, apperrors.NewValidationError("reportType", "no generator registered for "+filters.ReportType.Title())
	}

	now := s.now()
	if reports.IsCustomFallback(filters.DateFilter, filters.CustomStartDate, filters.CustomEndDate) {
		s.LogDebug(ctx, "Custom date range could not be parsed, using trailing 30 days",
			slog.String("custom_start", filters.CustomStartDate),
			slog.String("custom_end", filters.CustomEndDate))
	}

	symbol, err := s.currencySymbol(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve currency symbol")
		return nil, err
	}

	req := reportRequest{
		businessID: businessID,
		filters:    filters,
		mode:       reports.EffectiveFilter(filters.ReportType, filters.AdditionalFilter),
		period:     reports.ResolveDateRange(filters.DateFilter, now, s.loc, filters.CustomStartDate, filters.CustomEndDate),
		symbol:     symbol,
		loc:        s.loc,
	}

	out, err := generator(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate report",
			slog.String("mode", req.mode.Title()))
		return nil, fmt.Errorf("failed to generate %s: %w", filters.ReportType.Title(), err)
	}

	rows := out.rows
	if rows == nil {
		rows = []domain.ReportRow{}
	}
	s.LogInfo(ctx, "Report generated successfully",
		slog.String("mode", req.mode.Title()),
		slog.Int("row_count", len(rows)))

	return &domain.ReportResult{
		ReportType:  filters.ReportType,
		Filters:     filters,
		GeneratedAt: now,
		Columns:     out.columns,
		Rows:        rows,
		Summary:     out.summary,
		Breakdowns:  out.breakdowns,
	}, nil
}

// Catalogue returns the filter options of every report type.
func (s *reportingService) Catalogue() []reports.FilterOptions {
	return reports.Catalogue()
}

// currencySymbol falls back to the default symbol only when the business has
// no stored preference.
func (s *reportingService) currencySymbol(ctx context.Context, businessID string) (string, error) {
	if s.prefs == nil {
		return s.defaultSymbol, nil
	}
	symbol, err := s.prefs.GetCurrencySymbol(ctx, businessID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("failed to load currency symbol: %w", err)
		}
		s.LogWarn(ctx, err, "No currency preference stored, using default",
			slog.String("default_symbol", s.defaultSymbol))
		return s.defaultSymbol, nil
	}
	if symbol == "" {
		return s.defaultSymbol, nil
	}
	return symbol, nil
}

func reportLabel(rt domain.ReportType) string {
	if !rt.IsValid() {
		return "unknown"
	}
	return strings.ToLower(strings.NewReplacer(" & ", "_", " ", "_").Replace(rt.Title()))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, apperrors.ErrValidation):
		return OutcomeValidation
	case errors.Is(err, apperrors.ErrConfiguration):
		return OutcomeConfiguration
	case errors.Is(err, apperrors.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeFailure
	}
}
