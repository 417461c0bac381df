package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/spendlite/backend/internal/domain/entity"
)

// CategoryTotal is one bucket of a category breakdown.
type CategoryTotal struct {
	Category entity.Category
	Total    decimal.Decimal
	Count    int
}

// Sum returns the total amount over the given activities. An empty slice
// sums to zero.
func Sum(activities []*entity.Activity) decimal.Decimal {
	total := decimal.Zero
	for _, a := range activities {
		total = total.Add(a.Amount)
	}
	return total
}

// GroupByCategory builds per-category totals. Each activity contributes its
// full amount to exactly one bucket, keyed by its literal category value —
// unrecognized categories get their own bucket rather than failing. Buckets
// appear in first-seen order, matching the order records arrive in.
func GroupByCategory(activities []*entity.Activity) []CategoryTotal {
	index := make(map[entity.Category]int)
	buckets := make([]CategoryTotal, 0)

	for _, a := range activities {
		i, ok := index[a.Category]
		if !ok {
			i = len(buckets)
			index[a.Category] = i
			buckets = append(buckets, CategoryTotal{Category: a.Category, Total: decimal.Zero})
		}
		buckets[i].Total = buckets[i].Total.Add(a.Amount)
		buckets[i].Count++
	}
	return buckets
}
