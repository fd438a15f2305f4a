package reports_test

import (
	"testing"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/stretchr/testify/assert"
)

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   domain.DateFilter
		now      time.Time
		start    string
		end      string
		wantFrom time.Time
		wantTo   time.Time
	}{
		{"today", domain.DateToday, now, "", "", day(2024, 3, 15), day(2024, 3, 16)},
		{"yesterday", domain.DateYesterday, now, "", "", day(2024, 3, 14), day(2024, 3, 15)},
		{"last 7 days", domain.DateLast7Days, now, "", "", day(2024, 3, 8), day(2024, 3, 16)},
		{"this month", domain.DateThisMonth, now, "", "", day(2024, 3, 1), day(2024, 3, 16)},
		{"this month on the first", domain.DateThisMonth, day(2024, 3, 1).Add(9 * time.Hour), "", "", day(2024, 3, 1), day(2024, 3, 2)},
		{"last month leap february", domain.DateLastMonth, now, "", "", day(2024, 2, 1), day(2024, 3, 1)},
		{"last month in january", domain.DateLastMonth, day(2024, 1, 20), "", "", day(2023, 12, 1), day(2024, 1, 1)},
		{"this year", domain.DateThisYear, now, "", "", day(2024, 1, 1), day(2024, 3, 16)},
		{"last year", domain.DateLastYear, now, "", "", day(2023, 1, 1), day(2024, 1, 1)},
		{"all time", domain.DateAllTime, now, "", "", day(2020, 1, 1), day(2024, 3, 16)},
		{"custom", domain.DateCustom, now, "2024-01-05", "2024-01-10", day(2024, 1, 5), day(2024, 1, 11)},
		{"custom unparseable", domain.DateCustom, now, "05/01/2024", "2024-01-10", day(2024, 2, 14), day(2024, 3, 16)},
		{"custom missing", domain.DateCustom, now, "", "", day(2024, 2, 14), day(2024, 3, 16)},
		{"unknown behaves like this month", domain.DateFilter("fortnight"), now, "", "", day(2024, 3, 1), day(2024, 3, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reports.ResolveDateRange(tt.filter, tt.now, time.UTC, tt.start, tt.end)
			assert.True(t, tt.wantFrom.Equal(got.From), "from: want %s, got %s", tt.wantFrom, got.From)
			assert.True(t, tt.wantTo.Equal(got.To), "to: want %s, got %s", tt.wantTo, got.To)
		})
	}
}

func TestResolveDateRange_LastMonthLength(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		days int
	}{
		{"february 2023", day(2023, 3, 10), 28},
		{"february 2024", day(2024, 3, 10), 29},
		{"december", day(2024, 1, 31), 31},
		{"april", day(2024, 5, 31), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reports.ResolveDateRange(domain.DateLastMonth, tt.now, time.UTC, "", "")
			assert.Equal(t, tt.days, int(r.To.Sub(r.From).Hours()/24))
			assert.Equal(t, 1, r.From.Day())
		})
	}
}

func TestResolveDateRange_UsesBusinessLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 02:00 UTC on March 1st is still February 29th in loc.
	now := time.Date(2024, time.March, 1, 2, 0, 0, 0, time.UTC)

	r := reports.ResolveDateRange(domain.DateThisMonth, now, loc, "", "")

	assert.True(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, loc).Equal(r.From))
	assert.True(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, loc).Equal(r.To))
}

func TestResolveDateRange_NilLocationIsUTC(t *testing.T) {
	r := reports.ResolveDateRange(domain.DateToday, day(2024, 6, 1), nil, "", "")
	assert.Equal(t, time.UTC, r.From.Location())
}

func TestDateRange_Contains(t *testing.T) {
	r := reports.DateRange{From: day(2024, 1, 1), To: day(2024, 1, 2)}

	assert.True(t, r.Contains(day(2024, 1, 1)))
	assert.True(t, r.Contains(day(2024, 1, 2).Add(-time.Millisecond)))
	assert.False(t, r.Contains(day(2024, 1, 2)))
	assert.False(t, r.Contains(day(2023, 12, 31)))
	assert.Equal(t, r.From.UnixMilli(), r.FromMillis())
	assert.Equal(t, r.To.UnixMilli(), r.ToMillis())
	assert.True(t, r.From.Equal(r.Before().To))
	assert.True(t, r.To.Equal(r.After().From))
	assert.True(t, r.After().To.After(r.To))
}

func TestIsCustomFallback(t *testing.T) {
	assert.True(t, reports.IsCustomFallback(domain.DateCustom, "", "2024-01-01"))
	assert.True(t, reports.IsCustomFallback(domain.DateCustom, "bad", "2024-01-01"))
	assert.False(t, reports.IsCustomFallback(domain.DateCustom, "2024-01-01", "2024-01-31"))
	assert.False(t, reports.IsCustomFallback(domain.DateThisMonth, "", ""))
}
