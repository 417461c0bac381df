// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendlite/backend/internal/application/usecase/activity"
)

// CreateActivityRequest represents the request body for activity creation.
type CreateActivityRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"required"`
	SpentAt  *string `json:"spent_at,omitempty"` // "2006-01-02", supports backdating
}

// UpdateActivityRequest represents the request body for activity update.
type UpdateActivityRequest struct {
	Name     *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Amount   *float64 `json:"amount,omitempty"`
	Category *string  `json:"category,omitempty"`
	SpentAt  *string  `json:"spent_at,omitempty"`
}

// CategoryMetaResponse represents category display metadata in API responses.
type CategoryMetaResponse struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// ActivityResponse represents a single activity in API responses.
type ActivityResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Amount    string               `json:"amount"`
	Category  string               `json:"category"`
	Meta      CategoryMetaResponse `json:"meta"`
	SpentAt   string               `json:"spent_at"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// ActivityListResponse represents the response for listing activities.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int                `json:"total"`
}

// ToActivityResponse converts an ActivityOutput to an ActivityResponse DTO.
func ToActivityResponse(out *activity.ActivityOutput) ActivityResponse {
	a := out.Activity
	return ActivityResponse{
		ID:       a.ID.String(),
		Name:     a.Name,
		Amount:   a.Amount.String(),
		Category: string(a.Category),
		Meta: CategoryMetaResponse{
			Label: out.Meta.Label,
			Color: out.Meta.Color,
			Icon:  out.Meta.Icon,
		},
		SpentAt:   a.SpentAt.UTC().Format("2006-01-02"),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToActivityListResponse converts a ListActivitiesOutput to an ActivityListResponse DTO.
func ToActivityListResponse(out *activity.ListActivitiesOutput) ActivityListResponse {
	responses := make([]ActivityResponse, len(out.Activities))
	for i, a := range out.Activities {
		responses[i] = ToActivityResponse(a)
	}
	return ActivityListResponse{
		Activities: responses,
		Total:      out.Total,
	}
}
