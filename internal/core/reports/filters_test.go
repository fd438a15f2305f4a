package reports_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue_CoversEveryReportType(t *testing.T) {
	all := reports.Catalogue()

	require.Len(t, all, len(domain.AllReportTypes()))
	for _, opts := range all {
		assert.NotEmpty(t, opts.Title)
	}

	sheet, ok := reports.AvailableFilters(domain.ReportBalanceSheet)
	assert.True(t, ok)
	assert.Empty(t, sheet.AdditionalFilters)
	assert.False(t, sheet.UsesDateRange)

	_, ok = reports.AvailableFilters(domain.ReportType(99))
	assert.False(t, ok)
}

func TestEffectiveFilter(t *testing.T) {
	assert.Equal(t, domain.FilterLedger, reports.EffectiveFilter(domain.ReportCustomer, domain.FilterNone))
	assert.Equal(t, domain.FilterOverall, reports.EffectiveFilter(domain.ReportSale, domain.FilterNone))
	assert.Equal(t, domain.FilterWeekly, reports.EffectiveFilter(domain.ReportSale, domain.FilterWeekly))
	assert.Equal(t, domain.FilterNone, reports.EffectiveFilter(domain.ReportBalanceSheet, domain.FilterNone))
}

func TestValidateFilters(t *testing.T) {
	tests := []struct {
		name      string
		filters   domain.ReportFilters
		wantField string
	}{
		{
			name:    "sale with defaults",
			filters: domain.ReportFilters{ReportType: domain.ReportSale},
		},
		{
			name:    "customer ledger with party",
			filters: domain.ReportFilters{ReportType: domain.ReportCustomer, SelectedPartyID: "c1"},
		},
		{
			name:    "irrelevant grouping is ignored",
			filters: domain.ReportFilters{ReportType: domain.ReportStock, GroupBy: domain.GroupByParty},
		},
		{
			name:      "unknown report type",
			filters:   domain.ReportFilters{ReportType: 42},
			wantField: "reportType",
		},
		{
			name:      "customer without party",
			filters:   domain.ReportFilters{ReportType: domain.ReportCustomer},
			wantField: "selectedPartyID",
		},
		{
			name:      "vendor cash flow without party",
			filters:   domain.ReportFilters{ReportType: domain.ReportVendor, AdditionalFilter: domain.FilterCashFlow},
			wantField: "selectedPartyID",
		},
		{
			name:      "investor without investor",
			filters:   domain.ReportFilters{ReportType: domain.ReportInvestor, SelectedPartyID: "p"},
			wantField: "selectedInvestorID",
		},
		{
			name:      "product without product",
			filters:   domain.ReportFilters{ReportType: domain.ReportProduct},
			wantField: "selectedProductID",
		},
		{
			name:      "cash history without payment method",
			filters:   domain.ReportFilters{ReportType: domain.ReportCashInHand, AdditionalFilter: domain.FilterCashInHandHistory},
			wantField: "selectedPaymentMethodID",
		},
		{
			name:      "mode not offered",
			filters:   domain.ReportFilters{ReportType: domain.ReportSale, AdditionalFilter: domain.FilterLedger},
			wantField: "additionalFilter",
		},
		{
			name:      "balance sheet takes no mode",
			filters:   domain.ReportFilters{ReportType: domain.ReportBalanceSheet, AdditionalFilter: domain.FilterOverall},
			wantField: "additionalFilter",
		},
		{
			name:      "unknown date filter",
			filters:   domain.ReportFilters{ReportType: domain.ReportSale, DateFilter: "someday"},
			wantField: "dateFilter",
		},
		{
			name:      "unknown grouping",
			filters:   domain.ReportFilters{ReportType: domain.ReportSale, GroupBy: "warehouse"},
			wantField: "groupBy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reports.ValidateFilters(tt.filters)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
			var vErr *apperrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestRequiredSelection(t *testing.T) {
	assert.Equal(t, reports.SelectionParty, reports.RequiredSelection(domain.ReportVendor, domain.FilterLedger))
	assert.Equal(t, reports.SelectionPaymentMethod, reports.RequiredSelection(domain.ReportCashInHand, domain.FilterCashInHandHistory))
	assert.Equal(t, reports.SelectionNone, reports.RequiredSelection(domain.ReportCashInHand, domain.FilterOverall))
}
