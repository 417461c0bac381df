package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBudgetPercent(t *testing.T) {
	limit := decimal.NewFromInt(3000)

	t.Run("exactly at the limit is 100", func(t *testing.T) {
		got := BudgetPercent(decimal.NewFromInt(3000), limit)
		if !got.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", got)
		}
	})

	t.Run("clamped at 100 when overspent", func(t *testing.T) {
		got := BudgetPercent(decimal.NewFromInt(1000000), limit)
		if !got.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", got)
		}
	})

	t.Run("zero spending is zero percent", func(t *testing.T) {
		if got := BudgetPercent(decimal.Zero, limit); !got.IsZero() {
			t.Errorf("expected 0, got %s", got)
		}
	})

	t.Run("zero limit yields 100 rather than failing", func(t *testing.T) {
		got := BudgetPercent(decimal.NewFromInt(500), decimal.Zero)
		if !got.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", got)
		}
	})

	t.Run("always within 0 to 100", func(t *testing.T) {
		totals := []int64{0, 1, 1500, 2999, 3000, 3001, 1 << 40}
		for _, total := range totals {
			got := BudgetPercent(decimal.NewFromInt(total), limit)
			if got.IsNegative() || got.GreaterThan(decimal.NewFromInt(100)) {
				t.Errorf("percent %s out of range for total %d", got, total)
			}
		}
	})
}

func TestRemainingDays(t *testing.T) {
	t.Run("first of a 31-day month", func(t *testing.T) {
		if got := RemainingDays(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)); got != 31 {
			t.Errorf("expected 31, got %d", got)
		}
	})

	t.Run("last day of a 31-day month", func(t *testing.T) {
		if got := RemainingDays(time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
	})

	t.Run("first of a 30-day month", func(t *testing.T) {
		if got := RemainingDays(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)); got != 30 {
			t.Errorf("expected 30, got %d", got)
		}
	})

	t.Run("leap February", func(t *testing.T) {
		if got := RemainingDays(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)); got != 29 {
			t.Errorf("expected 29, got %d", got)
		}
	})
}

func TestRemainingDaily(t *testing.T) {
	limit := decimal.NewFromInt(3000)

	t.Run("untouched budget on day one of a 30-day month", func(t *testing.T) {
		r := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
		got := RemainingDaily(decimal.Zero, limit, r)
		if !got.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", got)
		}
	})

	t.Run("floors at zero when budget is spent", func(t *testing.T) {
		r := time.Date(2025, 4, 15, 9, 0, 0, 0, time.UTC)
		got := RemainingDaily(decimal.NewFromInt(3000), limit, r)
		if !got.IsZero() {
			t.Errorf("expected 0, got %s", got)
		}
	})

	t.Run("floors at zero when overspent", func(t *testing.T) {
		r := time.Date(2025, 4, 15, 9, 0, 0, 0, time.UTC)
		got := RemainingDaily(decimal.NewFromInt(9999), limit, r)
		if got.IsNegative() || !got.IsZero() {
			t.Errorf("expected 0, got %s", got)
		}
	})
}

func TestRemainingDailyAt(t *testing.T) {
	t.Run("adds the viewed day's total back before dividing", func(t *testing.T) {
		// Day 21 of a 30-day month leaves 10 remaining days.
		viewed := time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)
		got := RemainingDailyAt(
			decimal.NewFromInt(1000),
			decimal.NewFromInt(200),
			decimal.NewFromInt(3000),
			viewed,
		)
		// amountLeft = 3000 - 1000 + 200 = 2200; 2200 / 10 = 220.
		if !got.Equal(decimal.NewFromInt(220)) {
			t.Errorf("expected 220, got %s", got)
		}
	})

	t.Run("matches the plain form when the day total is zero", func(t *testing.T) {
		viewed := time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)
		plain := RemainingDaily(decimal.NewFromInt(1000), decimal.NewFromInt(3000), viewed)
		at := RemainingDailyAt(decimal.NewFromInt(1000), decimal.Zero, decimal.NewFromInt(3000), viewed)
		if !plain.Equal(at) {
			t.Errorf("expected %s, got %s", plain, at)
		}
	})

	t.Run("never negative", func(t *testing.T) {
		viewed := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
		got := RemainingDailyAt(
			decimal.NewFromInt(5000),
			decimal.NewFromInt(100),
			decimal.NewFromInt(3000),
			viewed,
		)
		if !got.IsZero() {
			t.Errorf("expected 0, got %s", got)
		}
	})
}

func TestIsOverDaily(t *testing.T) {
	t.Run("over when day total exceeds allowance", func(t *testing.T) {
		if !IsOverDaily(decimal.NewFromInt(250), decimal.NewFromInt(220)) {
			t.Error("expected over")
		}
	})

	t.Run("not over at exactly the allowance", func(t *testing.T) {
		if IsOverDaily(decimal.NewFromInt(220), decimal.NewFromInt(220)) {
			t.Error("expected not over")
		}
	})
}
