package reports

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatAmount renders d with thousands separators and the given decimals,
// e.g. 1234.5 with 2 places is "1,234.50".
func FormatAmount(d decimal.Decimal, places int32) string {
	rounded := d.Round(places)
	fixed := rounded.Abs().StringFixed(places)
	whole, frac, _ := strings.Cut(fixed, ".")

	n, err := strconv.ParseInt(whole, 10, 64)
	out := whole
	if err == nil {
		out = humanize.Comma(n)
	}
	if frac != "" {
		out += "." + frac
	}
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

// FormatMoney renders a currency cell, e.g. "Rs 1,234.50".
func FormatMoney(symbol string, d decimal.Decimal) string {
	return symbol + " " + FormatAmount(d, 2)
}

// FormatMoneyOrBlank renders zero as an empty cell.
func FormatMoneyOrBlank(symbol string, d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return FormatMoney(symbol, d)
}

// FormatQuantity renders a quantity with two decimals and no separators.
func FormatQuantity(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatWhole renders d rounded to whole units with thousands separators.
func FormatWhole(d decimal.Decimal) string {
	return FormatAmount(d, 0)
}

// Ptr returns a pointer to a copy of d, for optional summary totals.
func Ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

const entryDateLayout = "02/01/2006 03:04 PM"

// FormatEntryDate renders the timestamp of a ledger line in loc.
func FormatEntryDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(entryDateLayout)
}
