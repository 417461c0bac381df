// Package activity contains activity-related use cases.
package activity

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/spendlite/backend/internal/domain/entity"
	domainerror "github.com/spendlite/backend/internal/domain/error"
)

func TestValidateActivityFields(t *testing.T) {
	t.Run("accepts a well-formed submission", func(t *testing.T) {
		err := validateActivityFields("Lunch", decimal.NewFromInt(12), entity.CategoryFood)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("accepts a zero amount", func(t *testing.T) {
		err := validateActivityFields("Free sample", decimal.Zero, entity.CategoryOther)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		err := validateActivityFields("   ", decimal.NewFromInt(10), entity.CategoryFood)
		if !errors.Is(err, domainerror.ErrEmptyActivityName) {
			t.Errorf("expected empty name error, got %v", err)
		}
	})

	t.Run("rejects a name over the length cap", func(t *testing.T) {
		err := validateActivityFields(strings.Repeat("x", MaxNameLength+1), decimal.NewFromInt(10), entity.CategoryFood)
		if err == nil {
			t.Fatal("expected an error for an overlong name")
		}

		var activityErr *domainerror.ActivityError
		if !errors.As(err, &activityErr) {
			t.Fatalf("expected an ActivityError, got %T", err)
		}
		if activityErr.Code != domainerror.ErrCodeNameTooLong {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNameTooLong, activityErr.Code)
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		err := validateActivityFields("Refund", decimal.NewFromInt(-5), entity.CategoryFood)
		if !errors.Is(err, domainerror.ErrNegativeAmount) {
			t.Errorf("expected negative amount error, got %v", err)
		}
	})

	t.Run("rejects a category outside the closed set", func(t *testing.T) {
		err := validateActivityFields("Gadget", decimal.NewFromInt(10), entity.Category("Gadgets"))
		if !errors.Is(err, domainerror.ErrInvalidCategory) {
			t.Errorf("expected invalid category error, got %v", err)
		}
	})

	t.Run("every member of the category set is valid", func(t *testing.T) {
		for _, c := range entity.AllCategories() {
			if err := validateActivityFields("Anything", decimal.NewFromInt(1), c); err != nil {
				t.Errorf("category %s unexpectedly rejected: %v", c, err)
			}
		}
	})
}
