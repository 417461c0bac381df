// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlite/backend/internal/domain/entity"
	domainerror "github.com/spendlite/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.Budget
	findErr error
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (r *fakeBudgetRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.Budget, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.budgets[userID], nil
}

func (r *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	r.budgets[budget.UserID] = budget
	return nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	r.budgets[budget.UserID] = budget
	return nil
}

type fakeCache struct {
	invalidated []uuid.UUID
}

func (c *fakeCache) Get(_ context.Context, _ uuid.UUID, _ string) ([]byte, bool) { return nil, false }
func (c *fakeCache) Set(_ context.Context, _ uuid.UUID, _ string, _ []byte)     {}
func (c *fakeCache) InvalidateUser(_ context.Context, userID uuid.UUID) {
	c.invalidated = append(c.invalidated, userID)
}

func TestGetBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("first read stores and returns the default", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewGetBudgetUseCase(repo)
		userID := uuid.New()

		output, err := uc.Execute(ctx, GetBudgetInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Budget.MonthlyLimit.Equal(entity.DefaultMonthlyLimit) {
			t.Errorf("expected default limit %s, got %s", entity.DefaultMonthlyLimit, output.Budget.MonthlyLimit)
		}

		stored := repo.budgets[userID]
		if stored == nil {
			t.Fatal("expected default budget to be persisted")
		}
		if !stored.MonthlyLimit.Equal(entity.DefaultMonthlyLimit) {
			t.Errorf("expected persisted limit %s, got %s", entity.DefaultMonthlyLimit, stored.MonthlyLimit)
		}
	})

	t.Run("existing budget is returned as-is", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		userID := uuid.New()
		limit := decimal.NewFromInt(3000)
		repo.budgets[userID] = entity.NewBudget(userID, limit)

		uc := NewGetBudgetUseCase(repo)
		output, err := uc.Execute(ctx, GetBudgetInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Budget.MonthlyLimit.Equal(limit) {
			t.Errorf("expected limit %s, got %s", limit, output.Budget.MonthlyLimit)
		}
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		repo.findErr = domainerror.ErrBudgetStoreUnavailable

		uc := NewGetBudgetUseCase(repo)
		_, err := uc.Execute(ctx, GetBudgetInput{UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrBudgetStoreUnavailable) {
			t.Errorf("expected store unavailable error, got %v", err)
		}
	})
}

func TestSetBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a non-positive limit", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		cache := &fakeCache{}
		uc := NewSetBudgetUseCase(repo, cache)

		_, err := uc.Execute(ctx, SetBudgetInput{UserID: uuid.New(), MonthlyLimit: decimal.Zero})
		if !errors.Is(err, domainerror.ErrInvalidMonthlyLimit) {
			t.Errorf("expected invalid limit error, got %v", err)
		}
		if len(cache.invalidated) != 0 {
			t.Error("expected no cache invalidation on rejected input")
		}
	})

	t.Run("creates the row on first write", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		cache := &fakeCache{}
		uc := NewSetBudgetUseCase(repo, cache)
		userID := uuid.New()
		limit := decimal.NewFromInt(2500)

		output, err := uc.Execute(ctx, SetBudgetInput{UserID: userID, MonthlyLimit: limit})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Budget.MonthlyLimit.Equal(limit) {
			t.Errorf("expected limit %s, got %s", limit, output.Budget.MonthlyLimit)
		}
		if repo.budgets[userID] == nil {
			t.Fatal("expected budget row to be created")
		}
		if len(cache.invalidated) != 1 || cache.invalidated[0] != userID {
			t.Error("expected cached snapshots to be invalidated for the user")
		}
	})

	t.Run("updates the existing row", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		cache := &fakeCache{}
		userID := uuid.New()
		repo.budgets[userID] = entity.NewBudget(userID, decimal.NewFromInt(1000))

		uc := NewSetBudgetUseCase(repo, cache)
		limit := decimal.NewFromInt(4000)
		output, err := uc.Execute(ctx, SetBudgetInput{UserID: userID, MonthlyLimit: limit})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Budget.MonthlyLimit.Equal(limit) {
			t.Errorf("expected limit %s, got %s", limit, output.Budget.MonthlyLimit)
		}
		if !repo.budgets[userID].MonthlyLimit.Equal(limit) {
			t.Errorf("expected persisted limit %s, got %s", limit, repo.budgets[userID].MonthlyLimit)
		}
	})
}
