package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlite/backend/internal/domain/entity"
)

func newActivity(name string, amount float64, category entity.Category, spentAt time.Time) *entity.Activity {
	return entity.NewActivity(uuid.New(), name, decimal.NewFromFloat(amount), category, spentAt)
}

func TestSum(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty slice sums to zero", func(t *testing.T) {
		if got := Sum(nil); !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})

	t.Run("sums all amounts", func(t *testing.T) {
		activities := []*entity.Activity{
			newActivity("Lunch", 100, entity.CategoryFood, day),
			newActivity("Snacks", 50, entity.CategoryFood, day),
			newActivity("Bus", 25, entity.CategoryTravel, day),
		}

		if got := Sum(activities); !got.Equal(decimal.NewFromInt(175)) {
			t.Errorf("expected 175, got %s", got)
		}
	})

	t.Run("keeps full decimal precision", func(t *testing.T) {
		activities := []*entity.Activity{
			newActivity("Coffee", 3.33, entity.CategoryFood, day),
			newActivity("Tea", 2.22, entity.CategoryFood, day),
		}

		if got := Sum(activities); !got.Equal(decimal.NewFromFloat(5.55)) {
			t.Errorf("expected 5.55, got %s", got)
		}
	})
}

func TestGroupByCategory(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("buckets in first-seen order", func(t *testing.T) {
		activities := []*entity.Activity{
			newActivity("Lunch", 100, entity.CategoryFood, day),
			newActivity("Snacks", 50, entity.CategoryFood, day),
			newActivity("Bus", 25, entity.CategoryTravel, day),
		}

		buckets := GroupByCategory(activities)
		if len(buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(buckets))
		}
		if buckets[0].Category != entity.CategoryFood || !buckets[0].Total.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected Food=150 first, got %s=%s", buckets[0].Category, buckets[0].Total)
		}
		if buckets[1].Category != entity.CategoryTravel || !buckets[1].Total.Equal(decimal.NewFromInt(25)) {
			t.Errorf("expected Travel=25 second, got %s=%s", buckets[1].Category, buckets[1].Total)
		}
		if buckets[0].Count != 2 || buckets[1].Count != 1 {
			t.Errorf("expected counts 2 and 1, got %d and %d", buckets[0].Count, buckets[1].Count)
		}
	})

	t.Run("bucket totals sum to the overall total", func(t *testing.T) {
		activities := []*entity.Activity{
			newActivity("Lunch", 100, entity.CategoryFood, day),
			newActivity("Mystery", 42, entity.Category("Cryptocurrency"), day),
			newActivity("Bus", 25, entity.CategoryTravel, day),
			newActivity("Dinner", 60, entity.CategoryFood, day),
		}

		total := decimal.Zero
		for _, b := range GroupByCategory(activities) {
			total = total.Add(b.Total)
		}
		if !total.Equal(Sum(activities)) {
			t.Errorf("bucket totals %s != sum %s", total, Sum(activities))
		}
	})

	t.Run("unrecognized category gets its own bucket", func(t *testing.T) {
		activities := []*entity.Activity{
			newActivity("Mystery", 42, entity.Category("Cryptocurrency"), day),
		}

		buckets := GroupByCategory(activities)
		if len(buckets) != 1 {
			t.Fatalf("expected 1 bucket, got %d", len(buckets))
		}
		if buckets[0].Category != entity.Category("Cryptocurrency") {
			t.Errorf("expected literal category key, got %s", buckets[0].Category)
		}
	})

	t.Run("empty input yields no buckets", func(t *testing.T) {
		if buckets := GroupByCategory(nil); len(buckets) != 0 {
			t.Errorf("expected no buckets, got %d", len(buckets))
		}
	})
}
