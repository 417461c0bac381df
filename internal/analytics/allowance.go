package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BudgetPercent returns how much of the monthly limit has been spent, as a
// percentage clamped to [0, 100]. A zero or negative limit is treated as
// fully spent rather than a division failure.
func BudgetPercent(monthTotal, monthlyLimit decimal.Decimal) decimal.Decimal {
	if monthlyLimit.LessThanOrEqual(decimal.Zero) {
		return hundred
	}
	percent := monthTotal.Div(monthlyLimit).Mul(hundred)
	if percent.GreaterThan(hundred) {
		return hundred
	}
	if percent.IsNegative() {
		return decimal.Zero
	}
	return percent
}

// RemainingDays counts the days left in r's month, inclusive of r itself:
// 1 on the last day of the month, the month's length on the 1st.
func RemainingDays(r time.Time) int {
	r = r.UTC()
	return daysInMonth(r) - r.Day() + 1
}

// RemainingDaily returns the suggested safe daily spend for the rest of r's
// month. Floors at zero when the budget is already exceeded.
func RemainingDaily(monthTotal, monthlyLimit decimal.Decimal, r time.Time) decimal.Decimal {
	return safeDaily(monthlyLimit.Sub(monthTotal), RemainingDays(r))
}

// RemainingDailyAt is the viewed-date variant of RemainingDaily: it adds the
// viewed day's own total back before dividing, so inspecting a past day's
// allowance is not distorted by that day's spending.
func RemainingDailyAt(monthTotal, dayTotal, monthlyLimit decimal.Decimal, t time.Time) decimal.Decimal {
	amountLeft := monthlyLimit.Sub(monthTotal).Add(dayTotal)
	return safeDaily(amountLeft, RemainingDays(t))
}

// IsOverDaily reports whether the viewed day's spending exceeds its
// allowance. Presentation only, no side effects.
func IsOverDaily(dayTotal, remainingDaily decimal.Decimal) bool {
	return dayTotal.GreaterThan(remainingDaily)
}

func safeDaily(amountLeft decimal.Decimal, remainingDays int) decimal.Decimal {
	if amountLeft.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if remainingDays < 1 {
		remainingDays = 1
	}
	return amountLeft.Div(decimal.NewFromInt(int64(remainingDays)))
}

// daysInMonth returns the number of calendar days in t's month.
func daysInMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
