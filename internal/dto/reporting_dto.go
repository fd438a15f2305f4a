package dto

import (
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// GenerateReportRequest is the body of a report generation call.
type GenerateReportRequest struct {
	ReportType              int    `json:"reportType" binding:"required,min=1"`
	AdditionalFilter        int    `json:"additionalFilter" binding:"min=0"`
	DateFilter              string `json:"dateFilter" binding:"omitempty,date_filter"`
	GroupBy                 string `json:"groupBy" binding:"omitempty,oneof=product party product_category party_area party_category"`
	SortBy                  string `json:"sortBy" binding:"omitempty,sort_by"`
	CustomStartDate         string `json:"customStartDate"`
	CustomEndDate           string `json:"customEndDate"`
	SelectedPartyID         string `json:"selectedPartyID" binding:"omitempty,max=64"`
	SelectedProductID       string `json:"selectedProductID" binding:"omitempty,max=64"`
	SelectedWarehouseID     string `json:"selectedWarehouseID" binding:"omitempty,max=64"`
	SelectedInvestorID      string `json:"selectedInvestorID" binding:"omitempty,max=64"`
	SelectedPaymentMethodID string `json:"selectedPaymentMethodID" binding:"omitempty,max=64"`
}

// ToDomainFilters converts the request into report filters.
func (r GenerateReportRequest) ToDomainFilters() domain.ReportFilters {
	return domain.ReportFilters{
		ReportType:              domain.ReportType(r.ReportType),
		AdditionalFilter:        domain.AdditionalFilter(r.AdditionalFilter),
		DateFilter:              domain.DateFilter(r.DateFilter),
		GroupBy:                 domain.GroupBy(r.GroupBy),
		SortBy:                  domain.SortBy(r.SortBy),
		CustomStartDate:         r.CustomStartDate,
		CustomEndDate:           r.CustomEndDate,
		SelectedPartyID:         r.SelectedPartyID,
		SelectedProductID:       r.SelectedProductID,
		SelectedWarehouseID:     r.SelectedWarehouseID,
		SelectedInvestorID:      r.SelectedInvestorID,
		SelectedPaymentMethodID: r.SelectedPaymentMethodID,
	}
}

var knownDateFilters = map[string]bool{
	string(domain.DateToday): true, string(domain.DateYesterday): true, string(domain.DateLast7Days): true,
	string(domain.DateThisMonth): true, string(domain.DateLastMonth): true, string(domain.DateThisYear): true,
	string(domain.DateLastYear): true, string(domain.DateCustom): true, string(domain.DateAllTime): true,
}

var knownSortOrders = map[string]bool{
	string(domain.SortTitleAsc): true, string(domain.SortTitleDesc): true,
	string(domain.SortProfitAsc): true, string(domain.SortProfitDesc): true,
	string(domain.SortSaleAmountAsc): true, string(domain.SortSaleAmountDesc): true,
	string(domain.SortDateAsc): true, string(domain.SortDateDesc): true,
	string(domain.SortBalanceAsc): true, string(domain.SortBalanceDesc): true,
}

// RegisterReportValidators adds the date_filter and sort_by tags used by GenerateReportRequest.
func RegisterReportValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("date_filter", func(fl validator.FieldLevel) bool {
		return knownDateFilters[fl.Field().String()]
	}); err != nil {
		return err
	}
	return v.RegisterValidation("sort_by", func(fl validator.FieldLevel) bool {
		return knownSortOrders[fl.Field().String()]
	})
}

// NewRequestValidator returns a validator that reads the binding tags, for
// callers that do not go through gin.
func NewRequestValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	if err := RegisterReportValidators(v); err != nil {
		return nil, err
	}
	return v, nil
}

// ReportRowResponse is one display row.
type ReportRowResponse struct {
	ID     string   `json:"id"`
	Values []string `json:"values"`
}

// ReportSummaryResponse carries the numeric totals of a report.
type ReportSummaryResponse struct {
	TotalAmount    *decimal.Decimal  `json:"totalAmount,omitempty"`
	TotalProfit    *decimal.Decimal  `json:"totalProfit,omitempty"`
	TotalQuantity  *decimal.Decimal  `json:"totalQuantity,omitempty"`
	RecordCount    int               `json:"recordCount"`
	AdditionalInfo map[string]string `json:"additionalInfo,omitempty"`
}

// ReportResponse is the generated report returned to clients.
type ReportResponse struct {
	ReportType       int                            `json:"reportType"`
	Title            string                         `json:"title"`
	AdditionalFilter string                         `json:"additionalFilter"`
	Filters          domain.ReportFilters           `json:"filters"`
	GeneratedAt      time.Time                      `json:"generatedAt"`
	Columns          []string                       `json:"columns"`
	Rows             []ReportRowResponse            `json:"rows"`
	Summary          *ReportSummaryResponse         `json:"summary,omitempty"`
	Breakdowns       *domain.BalanceSheetBreakdowns `json:"breakdowns,omitempty"`
}

// ToReportResponse converts a domain result to its response DTO.
func ToReportResponse(result *domain.ReportResult) ReportResponse {
	rows := make([]ReportRowResponse, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = ReportRowResponse{ID: row.ID, Values: row.Values}
	}

	resp := ReportResponse{
		ReportType:       int(result.ReportType),
		Title:            result.ReportType.Title(),
		AdditionalFilter: result.Filters.AdditionalFilter.Title(),
		Filters:          result.Filters,
		GeneratedAt:      result.GeneratedAt,
		Columns:          result.Columns,
		Rows:             rows,
		Breakdowns:       result.Breakdowns,
	}
	if resp.Columns == nil {
		resp.Columns = []string{}
	}
	if s := result.Summary; s != nil {
		resp.Summary = &ReportSummaryResponse{
			TotalAmount:    s.TotalAmount,
			TotalProfit:    s.TotalProfit,
			TotalQuantity:  s.TotalQuantity,
			RecordCount:    s.RecordCount,
			AdditionalInfo: s.AdditionalInfo,
		}
	}
	return resp
}

// FilterOptionResponse names one additional filter.
type FilterOptionResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// CatalogueEntryResponse describes the inputs one report type accepts.
type CatalogueEntryResponse struct {
	ReportType        int                    `json:"reportType"`
	Title             string                 `json:"title"`
	AdditionalFilters []FilterOptionResponse `json:"additionalFilters"`
	GroupBy           []string               `json:"groupBy"`
	SortBy            []string               `json:"sortBy"`
	UsesDateRange     bool                   `json:"usesDateRange"`
	Requires          string                 `json:"requires,omitempty"`
}

// ToCatalogueResponse converts the report catalogue to response DTOs.
func ToCatalogueResponse(options []reports.FilterOptions) []CatalogueEntryResponse {
	out := make([]CatalogueEntryResponse, 0, len(options))
	for _, o := range options {
		entry := CatalogueEntryResponse{
			ReportType:        int(o.ReportType),
			Title:             o.Title,
			AdditionalFilters: make([]FilterOptionResponse, 0, len(o.AdditionalFilters)),
			GroupBy:           make([]string, 0, len(o.GroupBy)),
			SortBy:            make([]string, 0, len(o.SortBy)),
			UsesDateRange:     o.UsesDateRange,
			Requires:          string(o.Requires),
		}
		for _, f := range o.AdditionalFilters {
			entry.AdditionalFilters = append(entry.AdditionalFilters, FilterOptionResponse{ID: int(f), Title: f.Title()})
		}
		for _, g := range o.GroupBy {
			entry.GroupBy = append(entry.GroupBy, string(g))
		}
		for _, s := range o.SortBy {
			entry.SortBy = append(entry.SortBy, string(s))
		}
		out = append(out, entry)
	}
	return out
}
