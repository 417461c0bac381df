package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlite/backend/internal/domain/entity"
)

func TestWeekStart(t *testing.T) {
	t.Run("Wednesday maps to the Monday two days back", func(t *testing.T) {
		// 2025-03-12 is a Wednesday.
		got := WeekStart(time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC))
		want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("Monday maps to itself", func(t *testing.T) {
		got := WeekStart(time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC))
		want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("Sunday maps to the Monday six days back", func(t *testing.T) {
		// 2025-03-16 is a Sunday.
		got := WeekStart(time.Date(2025, 3, 16, 1, 0, 0, 0, time.UTC))
		want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("week start crossing a month boundary", func(t *testing.T) {
		// 2025-05-01 is a Thursday; its Monday is April 28.
		got := WeekStart(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
		want := time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}

func TestWeekSeries(t *testing.T) {
	// Week of Monday 2025-03-10 through Sunday 2025-03-16.
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	wantLabels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	t.Run("always exactly 7 entries with weekday labels", func(t *testing.T) {
		series := WeekSeries(nil, now)
		if len(series) != 7 {
			t.Fatalf("expected 7 entries, got %d", len(series))
		}
		for i, p := range series {
			if p.Label != wantLabels[i] {
				t.Errorf("entry %d: expected label %s, got %s", i, wantLabels[i], p.Label)
			}
			if !p.Total.IsZero() {
				t.Errorf("entry %d: expected zero total, got %s", i, p.Total)
			}
		}
	})

	t.Run("sums per day within the week", func(t *testing.T) {
		activities := []*entity.Activity{
			newActivity("Groceries", 80, entity.CategoryFood, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)),
			newActivity("Dinner", 40, entity.CategoryFood, time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)),
			newActivity("Arcade", 15, entity.CategoryGames, time.Date(2025, 3, 16, 18, 0, 0, 0, time.UTC)),
		}

		series := WeekSeries(activities, now)
		if !series[0].Total.Equal(decimal.NewFromInt(120)) {
			t.Errorf("Monday: expected 120, got %s", series[0].Total)
		}
		for i := 1; i < 6; i++ {
			if !series[i].Total.IsZero() {
				t.Errorf("%s: expected 0, got %s", series[i].Label, series[i].Total)
			}
		}
		if !series[6].Total.Equal(decimal.NewFromInt(15)) {
			t.Errorf("Sunday: expected 15, got %s", series[6].Total)
		}
	})

	t.Run("records outside the week are ignored", func(t *testing.T) {
		activities := []*entity.Activity{
			newActivity("Last week", 100, entity.CategoryFood, time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)),
			newActivity("Next week", 100, entity.CategoryFood, time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)),
		}

		for _, p := range WeekSeries(activities, now) {
			if !p.Total.IsZero() {
				t.Errorf("%s: expected 0, got %s", p.Label, p.Total)
			}
		}
	})

	t.Run("viewed on a Sunday the week still starts the prior Monday", func(t *testing.T) {
		sunday := time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC)
		activities := []*entity.Activity{
			newActivity("Groceries", 80, entity.CategoryFood, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)),
		}

		series := WeekSeries(activities, sunday)
		if !series[0].Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected week to start 2025-03-10, got %s", series[0].Date)
		}
		if !series[0].Total.Equal(decimal.NewFromInt(80)) {
			t.Errorf("Monday: expected 80, got %s", series[0].Total)
		}
	})
}
