package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
)

// Granularity is the calendar width of an interval bucket.
type Granularity int

const (
	Daily Granularity = iota + 1
	Weekly
	Monthly
	Yearly
)

func (g Granularity) String() string {
	switch g {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	}
	return "unknown"
}

// GranularityFor maps an interval filter onto its granularity.
func GranularityFor(f domain.AdditionalFilter) (Granularity, bool) {
	switch f {
	case domain.FilterDaily:
		return Daily, true
	case domain.FilterWeekly:
		return Weekly, true
	case domain.FilterMonthly:
		return Monthly, true
	case domain.FilterYearly:
		return Yearly, true
	}
	return 0, false
}

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
	yearKeyLayout  = "2006"
)

// BucketKey returns a key that sorts lexically in calendar order.
// Weekly keys are the Monday that starts the week.
func BucketKey(t time.Time, g Granularity) string {
	switch g {
	case Weekly:
		return MondayOf(t).Format(dayKeyLayout)
	case Monthly:
		return t.Format(monthKeyLayout)
	case Yearly:
		return t.Format(yearKeyLayout)
	default:
		return t.Format(dayKeyLayout)
	}
}

// BucketLabel turns a bucket key into its display label. Keys that do not
// parse are returned as is.
func BucketLabel(key string, g Granularity) string {
	switch g {
	case Weekly:
		d, err := time.Parse(dayKeyLayout, key)
		if err != nil {
			return key
		}
		return fmt.Sprintf("Week of %s", d.Format("02/01/2006"))
	case Monthly:
		d, err := time.Parse(monthKeyLayout, key)
		if err != nil {
			return key
		}
		return d.Format("Jan 2006")
	case Yearly:
		return key
	default:
		d, err := time.Parse(dayKeyLayout, key)
		if err != nil {
			return key
		}
		return d.Format("02/01/2006")
	}
}

// Bucket is one calendar interval with its accumulated value.
type Bucket[A any] struct {
	Key   string
	Label string
	Value A
}

// Bucketize folds records into calendar buckets. Buckets come back newest first.
func Bucketize[R any, A any](records []R, timeOf func(R) time.Time, g Granularity, init func() A, update func(A, R) A) []Bucket[A] {
	grouped := Aggregate(records,
		func(r R) string { return BucketKey(timeOf(r), g) },
		func(string) A { return init() },
		update,
	)

	buckets := make([]Bucket[A], 0, grouped.Len())
	for _, e := range grouped.Entries() {
		buckets = append(buckets, Bucket[A]{Key: e.Key, Label: BucketLabel(e.Key, g), Value: e.Value})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Key > buckets[j].Key
	})
	return buckets
}
