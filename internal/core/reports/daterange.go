package reports

import (
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
)

const customDateLayout = "2006-01-02"

// customFallbackDays is the trailing window used when custom dates cannot be parsed.
const customFallbackDays = 30

// DateRange is a half-open interval [From, To).
type DateRange struct {
	From time.Time
	To   time.Time
}

// FromMillis returns the inclusive lower bound in epoch milliseconds.
func (r DateRange) FromMillis() int64 {
	return r.From.UnixMilli()
}

// ToMillis returns the exclusive upper bound in epoch milliseconds.
func (r DateRange) ToMillis() int64 {
	return r.To.UnixMilli()
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// Before returns the range from the epoch up to the start of r.
func (r DateRange) Before() DateRange {
	return DateRange{From: time.UnixMilli(0).In(r.From.Location()), To: r.From}
}

// After returns the range from the end of r to the far future.
func (r DateRange) After() DateRange {
	return DateRange{From: r.To, To: farFuture.In(r.To.Location())}
}

var farFuture = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// AllTimeStart is the fixed floor of the all time filter in loc.
func AllTimeStart(loc *time.Location) time.Time {
	return time.Date(2020, time.January, 1, 0, 0, 0, 0, loc)
}

// ResolveDateRange maps a symbolic date filter to a concrete range relative to now.
// End days are inclusive for display and turned into the next midnight here.
// A custom range that is missing or cannot be parsed falls back to the trailing
// 30 days instead of failing. Unknown filters behave like this_month.
func ResolveDateRange(filter domain.DateFilter, now time.Time, loc *time.Location, customStart, customEnd string) DateRange {
	if loc == nil {
		loc = time.UTC
	}
	today := StartOfDay(now.In(loc))
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)

	var start, end time.Time
	switch filter {
	case domain.DateToday:
		start, end = today, today
	case domain.DateYesterday:
		yesterday := today.AddDate(0, 0, -1)
		start, end = yesterday, yesterday
	case domain.DateLast7Days:
		start, end = today.AddDate(0, 0, -7), today
	case domain.DateLastMonth:
		start = firstOfMonth.AddDate(0, -1, 0)
		end = firstOfMonth.AddDate(0, 0, -1)
	case domain.DateThisYear:
		start, end = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, loc), today
	case domain.DateLastYear:
		start = time.Date(today.Year()-1, time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(today.Year()-1, time.December, 31, 0, 0, 0, 0, loc)
	case domain.DateAllTime:
		start, end = AllTimeStart(loc), today
	case domain.DateCustom:
		var ok bool
		start, end, ok = parseCustomRange(customStart, customEnd, loc)
		if !ok {
			start, end = today.AddDate(0, 0, -customFallbackDays), today
		}
	default:
		start, end = firstOfMonth, today
	}

	return DateRange{From: start, To: end.AddDate(0, 0, 1)}
}

func parseCustomRange(customStart, customEnd string, loc *time.Location) (time.Time, time.Time, bool) {
	if customStart == "" || customEnd == "" {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.ParseInLocation(customDateLayout, customStart, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation(customDateLayout, customEnd, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// IsCustomFallback reports whether a custom filter could not be parsed and
// ResolveDateRange will use the trailing window.
func IsCustomFallback(filter domain.DateFilter, customStart, customEnd string) bool {
	if filter != domain.DateCustom {
		return false
	}
	_, _, ok := parseCustomRange(customStart, customEnd, time.UTC)
	return !ok
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MondayOf returns midnight of the Monday that starts t's week.
func MondayOf(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -dayOrdinal(day.Weekday()))
}

// dayOrdinal numbers weekdays from Monday = 0 to Sunday = 6.
func dayOrdinal(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// Lifetime returns the range covering every recorded transaction.
func Lifetime(loc *time.Location) DateRange {
	if loc == nil {
		loc = time.UTC
	}
	return DateRange{From: time.UnixMilli(0).In(loc), To: farFuture.In(loc)}
}
