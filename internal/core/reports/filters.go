package reports

import (
	"fmt"
	"slices"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
)

// Selection names an entity id a report mode cannot run without.
type Selection string

const (
	SelectionNone          Selection = ""
	SelectionParty         Selection = "party"
	SelectionProduct       Selection = "product"
	SelectionInvestor      Selection = "investor"
	SelectionPaymentMethod Selection = "payment_method"
)

// FilterOptions describes what a report type accepts. The first additional
// filter is the default mode.
type FilterOptions struct {
	ReportType        domain.ReportType         `json:"reportType"`
	Title             string                    `json:"title"`
	AdditionalFilters []domain.AdditionalFilter `json:"additionalFilters"`
	GroupBy           []domain.GroupBy          `json:"groupBy"`
	SortBy            []domain.SortBy           `json:"sortBy"`
	UsesDateRange     bool                      `json:"usesDateRange"`
	Requires          Selection                 `json:"requires,omitempty"`
}

var intervalFilters = []domain.AdditionalFilter{
	domain.FilterDaily, domain.FilterWeekly, domain.FilterMonthly, domain.FilterYearly,
}

var allGroupings = []domain.GroupBy{
	domain.GroupByProduct, domain.GroupByParty, domain.GroupByProductCategory,
	domain.GroupByPartyArea, domain.GroupByPartyCategory,
}

var summarySorts = []domain.SortBy{
	domain.SortTitleAsc, domain.SortTitleDesc, domain.SortProfitAsc, domain.SortProfitDesc,
	domain.SortSaleAmountAsc, domain.SortSaleAmountDesc,
}

func withIntervals(first ...domain.AdditionalFilter) []domain.AdditionalFilter {
	return append(first, intervalFilters...)
}

var catalogue = map[domain.ReportType]FilterOptions{
	domain.ReportSale: {
		AdditionalFilters: withIntervals(domain.FilterOverall),
		GroupBy:           allGroupings,
		SortBy:            summarySorts,
		UsesDateRange:     true,
	},
	domain.ReportPurchase: {
		AdditionalFilters: withIntervals(domain.FilterOverall),
		GroupBy:           allGroupings,
		SortBy:            summarySorts,
		UsesDateRange:     true,
	},
	domain.ReportExpense: {
		AdditionalFilters: withIntervals(domain.FilterOverall),
		UsesDateRange:     true,
	},
	domain.ReportExtraIncome: {
		AdditionalFilters: withIntervals(domain.FilterOverall),
		UsesDateRange:     true,
	},
	domain.ReportTopProducts: {
		AdditionalFilters: []domain.AdditionalFilter{domain.FilterTopSold, domain.FilterTopProfit, domain.FilterTopPurchased},
		UsesDateRange:     true,
	},
	domain.ReportTopCustomers: {
		AdditionalFilters: []domain.AdditionalFilter{domain.FilterTopPurchased, domain.FilterTopCredit, domain.FilterTopCashPaid},
		UsesDateRange:     true,
	},
	domain.ReportStock: {
		AdditionalFilters: []domain.AdditionalFilter{domain.FilterOverall, domain.FilterStockWorth, domain.FilterOutOfStock},
		SortBy:            []domain.SortBy{domain.SortTitleAsc, domain.SortTitleDesc},
		UsesDateRange:     true,
	},
	domain.ReportWarehouse: {
		AdditionalFilters: []domain.AdditionalFilter{domain.FilterOverall, domain.FilterStockWorth, domain.FilterOutOfStock},
		SortBy:            []domain.SortBy{domain.SortTitleAsc, domain.SortTitleDesc},
	},
	domain.ReportProduct: {
		AdditionalFilters: withIntervals(domain.FilterLedger, domain.FilterOverall),
		UsesDateRange:     true,
		Requires:          SelectionProduct,
	},
	domain.ReportCustomer: {
		AdditionalFilters: withIntervals(domain.FilterLedger, domain.FilterCashFlow, domain.FilterOverall),
		UsesDateRange:     true,
		Requires:          SelectionParty,
	},
	domain.ReportVendor: {
		AdditionalFilters: withIntervals(domain.FilterLedger, domain.FilterCashFlow, domain.FilterOverall),
		UsesDateRange:     true,
		Requires:          SelectionParty,
	},
	domain.ReportInvestor: {
		AdditionalFilters: withIntervals(domain.FilterLedger, domain.FilterCashFlow, domain.FilterOverall),
		UsesDateRange:     true,
		Requires:          SelectionInvestor,
	},
	domain.ReportProfitLoss: {
		AdditionalFilters: withIntervals(domain.FilterOverall),
		GroupBy:           allGroupings,
		SortBy:            summarySorts,
		UsesDateRange:     true,
	},
	domain.ReportProfitLossByPurchase: {
		AdditionalFilters: withIntervals(domain.FilterOverall),
		GroupBy:           allGroupings,
		SortBy:            summarySorts,
		UsesDateRange:     true,
	},
	domain.ReportCashInHand: {
		AdditionalFilters: withIntervals(domain.FilterOverall, domain.FilterCashInHandHistory),
		UsesDateRange:     true,
	},
	domain.ReportBalance: {
		AdditionalFilters: []domain.AdditionalFilter{
			domain.FilterAllCustomers, domain.FilterAllVendors,
			domain.FilterCustomerDebit, domain.FilterCustomerCredit,
			domain.FilterVendorDebit, domain.FilterVendorCredit,
		},
		GroupBy: []domain.GroupBy{domain.GroupByPartyArea, domain.GroupByPartyCategory},
		SortBy:  []domain.SortBy{domain.SortTitleAsc, domain.SortTitleDesc, domain.SortBalanceAsc, domain.SortBalanceDesc},
	},
	domain.ReportBalanceSheet: {},
}

// AvailableFilters returns the options of a report type.
func AvailableFilters(reportType domain.ReportType) (FilterOptions, bool) {
	opts, ok := catalogue[reportType]
	if !ok {
		return FilterOptions{}, false
	}
	opts.ReportType = reportType
	opts.Title = reportType.Title()
	return opts, true
}

// Catalogue returns the options of every report type in id order.
func Catalogue() []FilterOptions {
	out := make([]FilterOptions, 0, len(catalogue))
	for _, rt := range domain.AllReportTypes() {
		if opts, ok := AvailableFilters(rt); ok {
			out = append(out, opts)
		}
	}
	return out
}

// EffectiveFilter returns the requested mode, or the default mode of the
// report type when none was requested.
func EffectiveFilter(reportType domain.ReportType, requested domain.AdditionalFilter) domain.AdditionalFilter {
	if requested != domain.FilterNone {
		return requested
	}
	opts, ok := catalogue[reportType]
	if !ok || len(opts.AdditionalFilters) == 0 {
		return domain.FilterNone
	}
	return opts.AdditionalFilters[0]
}

// RequiredSelection returns the entity id a report mode needs.
func RequiredSelection(reportType domain.ReportType, filter domain.AdditionalFilter) Selection {
	if reportType == domain.ReportCashInHand && filter == domain.FilterCashInHandHistory {
		return SelectionPaymentMethod
	}
	return catalogue[reportType].Requires
}

var knownDateFilters = []domain.DateFilter{
	domain.DateToday, domain.DateYesterday, domain.DateLast7Days, domain.DateThisMonth,
	domain.DateLastMonth, domain.DateThisYear, domain.DateLastYear, domain.DateCustom, domain.DateAllTime,
}

var knownSorts = []domain.SortBy{
	domain.SortTitleAsc, domain.SortTitleDesc, domain.SortProfitAsc, domain.SortProfitDesc,
	domain.SortSaleAmountAsc, domain.SortSaleAmountDesc, domain.SortDateAsc, domain.SortDateDesc,
	domain.SortBalanceAsc, domain.SortBalanceDesc,
}

// ValidateFilters checks filters against the catalogue. Group and sort values
// that do not apply to the report type are ignored rather than rejected.
func ValidateFilters(f domain.ReportFilters) error {
	opts, ok := catalogue[f.ReportType]
	if !ok {
		return apperrors.NewValidationError("reportType", fmt.Sprintf("unknown report type %d", f.ReportType))
	}
	if f.DateFilter != "" && !slices.Contains(knownDateFilters, f.DateFilter) {
		return apperrors.NewValidationError("dateFilter", fmt.Sprintf("unknown date filter %q", f.DateFilter))
	}
	if f.GroupBy != domain.GroupByNone && !slices.Contains(allGroupings, f.GroupBy) {
		return apperrors.NewValidationError("groupBy", fmt.Sprintf("unknown grouping %q", f.GroupBy))
	}
	if f.SortBy != "" && !slices.Contains(knownSorts, f.SortBy) {
		return apperrors.NewValidationError("sortBy", fmt.Sprintf("unknown sort order %q", f.SortBy))
	}

	mode := EffectiveFilter(f.ReportType, f.AdditionalFilter)
	if mode != domain.FilterNone && !slices.Contains(opts.AdditionalFilters, mode) {
		return apperrors.NewValidationError("additionalFilter",
			fmt.Sprintf("%s is not available for %s", mode.Title(), f.ReportType.Title()))
	}
	if len(opts.AdditionalFilters) == 0 && f.AdditionalFilter != domain.FilterNone {
		return apperrors.NewValidationError("additionalFilter",
			fmt.Sprintf("%s takes no additional filter", f.ReportType.Title()))
	}

	switch RequiredSelection(f.ReportType, mode) {
	case SelectionParty:
		if f.SelectedPartyID == "" {
			return apperrors.NewValidationError("selectedPartyID", "a party must be selected for "+f.ReportType.Title())
		}
	case SelectionProduct:
		if f.SelectedProductID == "" {
			return apperrors.NewValidationError("selectedProductID", "a product must be selected for "+f.ReportType.Title())
		}
	case SelectionInvestor:
		if f.SelectedInvestorID == "" {
			return apperrors.NewValidationError("selectedInvestorID", "an investor must be selected for "+f.ReportType.Title())
		}
	case SelectionPaymentMethod:
		if f.SelectedPaymentMethodID == "" {
			return apperrors.NewValidationError("selectedPaymentMethodID", "a payment method must be selected for cash in hand history")
		}
	}
	return nil
}

// AppliesGroupBy reports whether g is meaningful for the report type.
func AppliesGroupBy(reportType domain.ReportType, g domain.GroupBy) bool {
	return slices.Contains(catalogue[reportType].GroupBy, g)
}

// AppliesSortBy reports whether s is meaningful for the report type.
func AppliesSortBy(reportType domain.ReportType, s domain.SortBy) bool {
	return slices.Contains(catalogue[reportType].SortBy, s)
}
