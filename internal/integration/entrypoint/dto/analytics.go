// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/spendlite/backend/internal/application/usecase/analytics"
)

// OverviewResponse represents the daily spending overview in API responses.
type OverviewResponse struct {
	Date           string `json:"date"`
	DayTotal       string `json:"day_total"`
	MonthTotal     string `json:"month_total"`
	MonthlyLimit   string `json:"monthly_limit"`
	BudgetPercent  string `json:"budget_percent"`
	RemainingDays  int    `json:"remaining_days"`
	RemainingDaily string `json:"remaining_daily"`
	IsOverDaily    bool   `json:"is_over_daily"`
}

// BreakdownItemResponse represents one category bucket in API responses.
type BreakdownItemResponse struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Color    string  `json:"color"`
	Icon     string  `json:"icon"`
	Amount   string  `json:"amount"`
	Percent  float64 `json:"percent"`
	Count    int     `json:"count"`
}

// BreakdownResponse represents the month's category breakdown in API responses.
type BreakdownResponse struct {
	Date       string                  `json:"date"`
	MonthTotal string                  `json:"month_total"`
	Items      []BreakdownItemResponse `json:"items"`
}

// SeriesPointResponse represents one day of the weekly chart series.
type SeriesPointResponse struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Total string `json:"total"`
}

// WeekSeriesResponse represents the weekly chart series in API responses.
type WeekSeriesResponse struct {
	WeekStart string                `json:"week_start"`
	Points    []SeriesPointResponse `json:"points"`
}

// ToOverviewResponse converts a GetOverviewOutput to an OverviewResponse DTO.
// Amounts are rounded to whole units here, at the presentation edge only.
func ToOverviewResponse(out *analytics.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		Date:           out.Date.UTC().Format("2006-01-02"),
		DayTotal:       out.DayTotal.Round(0).String(),
		MonthTotal:     out.MonthTotal.Round(0).String(),
		MonthlyLimit:   out.MonthlyLimit.Round(0).String(),
		BudgetPercent:  out.BudgetPercent.Round(0).String(),
		RemainingDays:  out.RemainingDays,
		RemainingDaily: out.RemainingDaily.Round(0).String(),
		IsOverDaily:    out.IsOverDaily,
	}
}

// ToBreakdownResponse converts a GetBreakdownOutput to a BreakdownResponse DTO.
func ToBreakdownResponse(out *analytics.GetBreakdownOutput) BreakdownResponse {
	items := make([]BreakdownItemResponse, len(out.Items))
	for i, item := range out.Items {
		items[i] = BreakdownItemResponse{
			Category: string(item.Category),
			Label:    item.Label,
			Color:    item.Color,
			Icon:     item.Icon,
			Amount:   item.Amount.Round(0).String(),
			Percent:  item.Percent,
			Count:    item.Count,
		}
	}
	return BreakdownResponse{
		Date:       out.Date.UTC().Format("2006-01-02"),
		MonthTotal: out.MonthTotal.Round(0).String(),
		Items:      items,
	}
}

// ToWeekSeriesResponse converts a GetWeekSeriesOutput to a WeekSeriesResponse DTO.
func ToWeekSeriesResponse(out *analytics.GetWeekSeriesOutput) WeekSeriesResponse {
	points := make([]SeriesPointResponse, len(out.Points))
	for i, p := range out.Points {
		points[i] = SeriesPointResponse{
			Date:  p.Date.UTC().Format("2006-01-02"),
			Label: p.Label,
			Total: p.Total.Round(0).String(),
		}
	}
	return WeekSeriesResponse{
		WeekStart: out.WeekStart.UTC().Format("2006-01-02"),
		Points:    points,
	}
}
