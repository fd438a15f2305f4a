package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportType identifies a report. Values are persisted by clients.
type ReportType int

const (
	ReportSale                 ReportType = 1
	ReportPurchase             ReportType = 2
	ReportExpense              ReportType = 3
	ReportExtraIncome          ReportType = 4
	ReportTopProducts          ReportType = 5
	ReportTopCustomers         ReportType = 6
	ReportStock                ReportType = 7
	ReportProduct              ReportType = 8
	ReportCustomer             ReportType = 9
	ReportVendor               ReportType = 10
	ReportProfitLoss           ReportType = 11
	ReportCashInHand           ReportType = 12
	ReportBalance              ReportType = 13
	ReportProfitLossByPurchase ReportType = 17
	ReportBalanceSheet         ReportType = 18
	ReportInvestor             ReportType = 19
	ReportWarehouse            ReportType = 20
)

var reportTypeTitles = map[ReportType]string{
	ReportSale:                 "Sale Report",
	ReportPurchase:             "Purchase Report",
	ReportExpense:              "Expense Report",
	ReportExtraIncome:          "Extra Income Report",
	ReportTopProducts:          "Top Products",
	ReportTopCustomers:         "Top Customers",
	ReportStock:                "Stock Report",
	ReportProduct:              "Product Report",
	ReportCustomer:             "Customer Report",
	ReportVendor:               "Vendor Report",
	ReportProfitLoss:           "Profit & Loss Report",
	ReportCashInHand:           "Cash in Hand",
	ReportBalance:              "Balance Report",
	ReportProfitLossByPurchase: "Profit & Loss by Purchase",
	ReportBalanceSheet:         "Balance Sheet",
	ReportInvestor:             "Investor Report",
	ReportWarehouse:            "Warehouse Report",
}

// AllReportTypes lists the report types in display order.
func AllReportTypes() []ReportType {
	return []ReportType{
		ReportSale, ReportPurchase, ReportExpense, ReportExtraIncome, ReportTopProducts,
		ReportTopCustomers, ReportStock, ReportProduct, ReportCustomer, ReportVendor,
		ReportProfitLoss, ReportCashInHand, ReportBalance, ReportProfitLossByPurchase,
		ReportBalanceSheet, ReportInvestor, ReportWarehouse,
	}
}

// Title returns the display title of the report.
func (r ReportType) Title() string {
	if t, ok := reportTypeTitles[r]; ok {
		return t
	}
	return "Unknown Report"
}

// IsValid reports whether r is a known report type.
func (r ReportType) IsValid() bool {
	_, ok := reportTypeTitles[r]
	return ok
}

// AdditionalFilter selects a report specific sub-mode. Zero means none.
type AdditionalFilter int

const (
	FilterNone              AdditionalFilter = 0
	FilterTopProfit         AdditionalFilter = 1
	FilterTopCredit         AdditionalFilter = 2
	FilterTopCashPaid       AdditionalFilter = 3
	FilterTopPurchased      AdditionalFilter = 4
	FilterTopSold           AdditionalFilter = 5
	FilterYearly            AdditionalFilter = 6
	FilterMonthly           AdditionalFilter = 7
	FilterWeekly            AdditionalFilter = 8
	FilterDaily             AdditionalFilter = 9
	FilterOverall           AdditionalFilter = 10
	FilterCashInHandHistory AdditionalFilter = 11
	FilterCashInHandType    AdditionalFilter = 12
	FilterStockWorth        AdditionalFilter = 13
	FilterCustomerDebit     AdditionalFilter = 14
	FilterCustomerCredit    AdditionalFilter = 15
	FilterVendorDebit       AdditionalFilter = 16
	FilterVendorCredit      AdditionalFilter = 17
	FilterAllVendors        AdditionalFilter = 18
	FilterAllCustomers      AdditionalFilter = 19
	FilterLedger            AdditionalFilter = 20
	FilterCashFlow          AdditionalFilter = 21
	FilterProfitOnAvgPrice  AdditionalFilter = 22
	FilterProfitOnPurchase  AdditionalFilter = 23
	FilterOutOfStock        AdditionalFilter = 24
)

var additionalFilterTitles = map[AdditionalFilter]string{
	FilterTopProfit:         "Top Profit",
	FilterTopCredit:         "Top Credit",
	FilterTopCashPaid:       "Top Cash Paid",
	FilterTopPurchased:      "Top Purchased",
	FilterTopSold:           "Top Sold",
	FilterYearly:            "Yearly",
	FilterMonthly:           "Monthly",
	FilterWeekly:            "Weekly",
	FilterDaily:             "Daily",
	FilterOverall:           "Overall",
	FilterCashInHandHistory: "Cash in Hand History",
	FilterCashInHandType:    "Cash in Hand by Type",
	FilterStockWorth:        "Stock Worth",
	FilterCustomerDebit:     "Customer Debit",
	FilterCustomerCredit:    "Customer Credit",
	FilterVendorDebit:       "Vendor Debit",
	FilterVendorCredit:      "Vendor Credit",
	FilterAllVendors:        "All Vendors",
	FilterAllCustomers:      "All Customers",
	FilterLedger:            "Ledger",
	FilterCashFlow:          "Cash Flow",
	FilterProfitOnAvgPrice:  "Profit on Avg Price",
	FilterProfitOnPurchase:  "Profit on Purchase Cost",
	FilterOutOfStock:        "Out of Stock",
}

// Title returns the display title of the filter.
func (f AdditionalFilter) Title() string {
	if t, ok := additionalFilterTitles[f]; ok {
		return t
	}
	return "None"
}

// IsInterval reports whether the filter buckets by calendar interval.
func (f AdditionalFilter) IsInterval() bool {
	switch f {
	case FilterDaily, FilterWeekly, FilterMonthly, FilterYearly:
		return true
	}
	return false
}

// DateFilter is a symbolic date range selector.
type DateFilter string

const (
	DateToday     DateFilter = "today"
	DateYesterday DateFilter = "yesterday"
	DateLast7Days DateFilter = "last_7_days"
	DateThisMonth DateFilter = "this_month"
	DateLastMonth DateFilter = "last_month"
	DateThisYear  DateFilter = "this_year"
	DateLastYear  DateFilter = "last_year"
	DateCustom    DateFilter = "custom"
	DateAllTime   DateFilter = "all_time"
)

// GroupBy is a grouping dimension for summary reports. Empty means default.
type GroupBy string

const (
	GroupByNone            GroupBy = ""
	GroupByProduct         GroupBy = "product"
	GroupByParty           GroupBy = "party"
	GroupByProductCategory GroupBy = "product_category"
	GroupByPartyArea       GroupBy = "party_area"
	GroupByPartyCategory   GroupBy = "party_category"
)

// SortBy orders ranked and listed reports.
type SortBy string

const (
	SortTitleAsc       SortBy = "title_asc"
	SortTitleDesc      SortBy = "title_desc"
	SortProfitAsc      SortBy = "profit_asc"
	SortProfitDesc     SortBy = "profit_desc"
	SortSaleAmountAsc  SortBy = "sale_amount_asc"
	SortSaleAmountDesc SortBy = "sale_amount_desc"
	SortDateAsc        SortBy = "date_asc"
	SortDateDesc       SortBy = "date_desc"
	SortBalanceAsc     SortBy = "balance_asc"
	SortBalanceDesc    SortBy = "balance_desc"
)

// ReportFilters is the full input of one report invocation.
type ReportFilters struct {
	ReportType              ReportType       `json:"reportType"`
	AdditionalFilter        AdditionalFilter `json:"additionalFilter,omitempty"`
	DateFilter              DateFilter       `json:"dateFilter"`
	GroupBy                 GroupBy          `json:"groupBy,omitempty"`
	SortBy                  SortBy           `json:"sortBy,omitempty"`
	CustomStartDate         string           `json:"customStartDate,omitempty"`
	CustomEndDate           string           `json:"customEndDate,omitempty"`
	SelectedPartyID         string           `json:"selectedPartyID,omitempty"`
	SelectedProductID       string           `json:"selectedProductID,omitempty"`
	SelectedWarehouseID     string           `json:"selectedWarehouseID,omitempty"`
	SelectedInvestorID      string           `json:"selectedInvestorID,omitempty"`
	SelectedPaymentMethodID string           `json:"selectedPaymentMethodID,omitempty"`
}

// WithDefaults fills the date filter and sort order when unset.
func (f ReportFilters) WithDefaults() ReportFilters {
	if f.DateFilter == "" {
		f.DateFilter = DateThisMonth
	}
	if f.SortBy == "" {
		f.SortBy = SortDateDesc
	}
	return f
}

// ReportRow is one line of a report. Values are display strings.
type ReportRow struct {
	ID     string   `json:"id"`
	Values []string `json:"values"`
}

// ReportSummary carries numeric totals next to the formatted rows.
type ReportSummary struct {
	TotalAmount    *decimal.Decimal  `json:"totalAmount,omitempty"`
	TotalProfit    *decimal.Decimal  `json:"totalProfit,omitempty"`
	TotalQuantity  *decimal.Decimal  `json:"totalQuantity,omitempty"`
	RecordCount    int               `json:"recordCount"`
	AdditionalInfo map[string]string `json:"additionalInfo,omitempty"`
}

// ReportResult is the output of a report invocation.
type ReportResult struct {
	ReportType  ReportType              `json:"reportType"`
	Filters     ReportFilters           `json:"filters"`
	GeneratedAt time.Time               `json:"generatedAt"`
	Columns     []string                `json:"columns"`
	Rows        []ReportRow             `json:"rows"`
	Summary     *ReportSummary          `json:"summary,omitempty"`
	Breakdowns  *BalanceSheetBreakdowns `json:"breakdowns,omitempty"`
}
