package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlite/backend/internal/domain/entity"
)

// SeriesPoint is one day of the weekly chart series.
type SeriesPoint struct {
	Date  time.Time
	Label string // Short weekday label: "Mon" .. "Sun"
	Total decimal.Decimal
}

// WeekStart returns the Monday of the week containing the given date,
// truncated to midnight UTC. Sunday maps to the Monday six days back.
func WeekStart(date time.Time) time.Time {
	date = date.UTC()
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, time.UTC)
}

// WeekSeries computes daily totals for the Monday-to-Sunday week containing
// now. The result always has exactly 7 entries in weekday order, zero-filled
// for days with no activities.
func WeekSeries(activities []*entity.Activity, now time.Time) []SeriesPoint {
	monday := WeekStart(now)

	series := make([]SeriesPoint, 7)
	for i := range series {
		day := monday.AddDate(0, 0, i)
		series[i] = SeriesPoint{
			Date:  day,
			Label: day.Weekday().String()[:3],
			Total: Sum(SameDay(activities, day)),
		}
	}
	return series
}
