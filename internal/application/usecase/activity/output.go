// Package activity contains activity-related use cases.
package activity

import (
	"github.com/spendlite/backend/internal/domain/entity"
)

// ActivityOutput represents an activity in use case outputs.
type ActivityOutput struct {
	Activity *entity.Activity
	Meta     entity.CategoryMeta
}

// newActivityOutput builds an ActivityOutput with display metadata resolved.
func newActivityOutput(a *entity.Activity) *ActivityOutput {
	return &ActivityOutput{
		Activity: a,
		Meta:     entity.MetaFor(a.Category),
	}
}
