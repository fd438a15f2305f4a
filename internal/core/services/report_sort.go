package services

import (
	"sort"
	"strings"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/shopspring/decimal"
)

// sortKeys are the values a listed row can be ordered by.
type sortKeys struct {
	title   string
	amount  decimal.Decimal
	profit  decimal.Decimal
	balance decimal.Decimal
}

// sortBy orders items in place. Orders that do not apply keep the input order.
func sortBy[T any](items []T, order domain.SortBy, keys func(T) sortKeys) {
	var less func(a, b sortKeys) bool
	switch order {
	case domain.SortTitleAsc:
		less = func(a, b sortKeys) bool { return strings.ToLower(a.title) < strings.ToLower(b.title) }
	case domain.SortTitleDesc:
		less = func(a, b sortKeys) bool { return strings.ToLower(a.title) > strings.ToLower(b.title) }
	case domain.SortProfitAsc:
		less = func(a, b sortKeys) bool { return a.profit.LessThan(b.profit) }
	case domain.SortProfitDesc:
		less = func(a, b sortKeys) bool { return a.profit.GreaterThan(b.profit) }
	case domain.SortSaleAmountAsc:
		less = func(a, b sortKeys) bool { return a.amount.LessThan(b.amount) }
	case domain.SortSaleAmountDesc:
		less = func(a, b sortKeys) bool { return a.amount.GreaterThan(b.amount) }
	case domain.SortBalanceAsc:
		less = func(a, b sortKeys) bool { return a.balance.LessThan(b.balance) }
	case domain.SortBalanceDesc:
		less = func(a, b sortKeys) bool { return a.balance.GreaterThan(b.balance) }
	default:
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		return less(keys(items[i]), keys(items[j]))
	})
}

// descending orders items by a decimal, largest first, keeping ties in input order.
func descending[T any](items []T, value func(T) decimal.Decimal) {
	sort.SliceStable(items, func(i, j int) bool {
		return value(items[i]).GreaterThan(value(items[j]))
	})
}
