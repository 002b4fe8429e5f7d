package app

import (
	"context"

	"consumption/internal/domain"
)

// DefaultDailyLimit is the daily calorie limit used when none is configured.
const DefaultDailyLimit = 1500

// TotalsService derives per-category and grand calorie totals against a
// daily limit.
type TotalsService struct {
	repo  domain.ItemRepository
	limit int64
}

// NewTotalsService creates a TotalsService with the given daily limit.
// A non-positive limit falls back to DefaultDailyLimit.
func NewTotalsService(repo domain.ItemRepository, dailyLimit int64) *TotalsService {
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyLimit
	}
	return &TotalsService{repo: repo, limit: dailyLimit}
}

// Summary holds category subtotals and the grand total compared against the
// daily limit. Overage is zero unless OverLimit is true.
type Summary struct {
	FoodCalories  int64 `json:"foodCalories"`
	DrinkCalories int64 `json:"drinkCalories"`
	OtherCalories int64 `json:"otherCalories,omitempty"`
	GrandTotal    int64 `json:"grandTotal"`
	DailyLimit    int64 `json:"dailyLimit"`
	OverLimit     bool  `json:"overLimit"`
	Overage       int64 `json:"overage"`
}

// Summary computes the current totals.
func (s *TotalsService) Summary(ctx context.Context) (Summary, error) {
	items, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Summary{}, err
	}

	out := Summary{DailyLimit: s.limit}
	for _, item := range items {
		out.GrandTotal += item.Calories
		switch item.Category {
		case domain.CategoryFood:
			out.FoodCalories += item.Calories
		case domain.CategoryDrink:
			out.DrinkCalories += item.Calories
		default:
			out.OtherCalories += item.Calories
		}
	}

	if out.GrandTotal > s.limit {
		out.OverLimit = true
		out.Overage = out.GrandTotal - s.limit
	}
	return out, nil
}
