// Package analytics implements the pure computation pipeline that turns a
// snapshot of activities into derived views: day and month totals, category
// breakdowns, budget allowances, and the weekly chart series.
//
// Every function here is total and side-effect free: it takes the record set
// and explicit reference dates, performs no I/O, and returns defined values
// for empty inputs, unknown categories, and zero budgets. Calendar
// comparisons are done in UTC so that bucketing is identical regardless of
// where a record was created or viewed.
package analytics

import (
	"strings"
	"time"

	"github.com/spendlite/backend/internal/domain/entity"
)

// SameDay returns the activities whose calendar date (year, month, day)
// equals t's calendar date. Time of day is ignored.
func SameDay(activities []*entity.Activity, t time.Time) []*entity.Activity {
	t = t.UTC()
	y, m, d := t.Date()

	matched := make([]*entity.Activity, 0)
	for _, a := range activities {
		ay, am, ad := a.SpentAt.UTC().Date()
		if ay == y && am == m && ad == d {
			matched = append(matched, a)
		}
	}
	return matched
}

// SameMonth returns the activities whose (year, month) equals r's.
func SameMonth(activities []*entity.Activity, r time.Time) []*entity.Activity {
	r = r.UTC()
	y, m := r.Year(), r.Month()

	matched := make([]*entity.Activity, 0)
	for _, a := range activities {
		spent := a.SpentAt.UTC()
		if spent.Year() == y && spent.Month() == m {
			matched = append(matched, a)
		}
	}
	return matched
}

// Filter narrows activities by a free-text query and an active category.
// The text match is a case-insensitive substring match against the name;
// an empty query matches everything. The category match is exact, with
// CategoryAll passing everything through. Both predicates are ANDed and
// input order is preserved.
func Filter(activities []*entity.Activity, query string, category entity.Category) []*entity.Activity {
	query = strings.ToLower(query)

	matched := make([]*entity.Activity, 0, len(activities))
	for _, a := range activities {
		if query != "" && !strings.Contains(strings.ToLower(a.Name), query) {
			continue
		}
		if category != entity.CategoryAll && a.Category != category {
			continue
		}
		matched = append(matched, a)
	}
	return matched
}
