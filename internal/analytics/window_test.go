package analytics

import (
	"testing"
	"time"

	"github.com/spendlite/backend/internal/domain/entity"
)

func TestSameDay(t *testing.T) {
	target := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)

	activities := []*entity.Activity{
		newActivity("Breakfast", 10, entity.CategoryFood, time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)),
		newActivity("Lunch", 20, entity.CategoryFood, time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)),
		newActivity("Yesterday", 30, entity.CategoryFood, time.Date(2025, 3, 9, 12, 30, 0, 0, time.UTC)),
		newActivity("Next month", 40, entity.CategoryFood, time.Date(2025, 4, 10, 12, 30, 0, 0, time.UTC)),
	}

	t.Run("matches on calendar date ignoring time of day", func(t *testing.T) {
		matched := SameDay(activities, target)
		if len(matched) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(matched))
		}
		if matched[0].Name != "Breakfast" || matched[1].Name != "Lunch" {
			t.Errorf("unexpected matches: %s, %s", matched[0].Name, matched[1].Name)
		}
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		if matched := SameDay(nil, target); len(matched) != 0 {
			t.Errorf("expected no matches, got %d", len(matched))
		}
	})
}

func TestSameMonth(t *testing.T) {
	reference := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)

	activities := []*entity.Activity{
		newActivity("First", 10, entity.CategoryFood, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		newActivity("Last", 20, entity.CategoryFood, time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)),
		newActivity("Prior year same month", 30, entity.CategoryFood, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		newActivity("Next month", 40, entity.CategoryFood, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	matched := SameMonth(activities, reference)
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	for _, a := range matched {
		if a.SpentAt.Year() != 2025 || a.SpentAt.Month() != time.March {
			t.Errorf("activity %q outside March 2025", a.Name)
		}
	}
}

func TestFilter(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	activities := []*entity.Activity{
		newActivity("Lunch", 12, entity.CategoryFood, day),
		newActivity("Laundry", 8, entity.CategoryBills, day),
		newActivity("Dinner", 25, entity.CategoryFood, day),
	}

	t.Run("case-insensitive substring match on name", func(t *testing.T) {
		matched := Filter(activities, "lun", entity.CategoryAll)
		if len(matched) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(matched))
		}
		if matched[0].Name != "Lunch" || matched[1].Name != "Laundry" {
			t.Errorf("unexpected matches: %s, %s", matched[0].Name, matched[1].Name)
		}
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		if matched := Filter(activities, "", entity.CategoryAll); len(matched) != 3 {
			t.Errorf("expected 3 matches, got %d", len(matched))
		}
	})

	t.Run("category filter is exact and ANDed with query", func(t *testing.T) {
		matched := Filter(activities, "lun", entity.CategoryFood)
		if len(matched) != 1 || matched[0].Name != "Lunch" {
			t.Fatalf("expected only Lunch, got %d matches", len(matched))
		}
	})

	t.Run("preserves input order", func(t *testing.T) {
		matched := Filter(activities, "", entity.CategoryFood)
		if len(matched) != 2 || matched[0].Name != "Lunch" || matched[1].Name != "Dinner" {
			t.Errorf("expected Lunch then Dinner")
		}
	})
}
