// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"fmt"
	"strings"
)

// HighCalorieThreshold is the calorie count above which an item counts as
// high-calorie. Strictly greater than, so 500 itself is not high-calorie.
const HighCalorieThreshold = 500

// Category partitions consumables for listing, aggregation and alerting.
type Category string

const (
	CategoryFood  Category = "food"
	CategoryDrink Category = "drink"
)

// Consumable represents a single tracked item: something eaten or drunk.
// Sugary is only meaningful for drinks; the constructors keep it false for
// everything else, so no caller ever needs a type assertion to read it.
type Consumable struct {
	Name     string   `json:"name"`
	Calories int64    `json:"calories"`
	Category Category `json:"category"`
	Sugary   bool     `json:"sugary"`
}

// NewFood creates a food consumable.
func NewFood(name string, calories int64) Consumable {
	return Consumable{Name: name, Calories: calories, Category: CategoryFood}
}

// NewDrink creates a drink consumable with an optional sugary flag.
func NewDrink(name string, calories int64, sugary bool) Consumable {
	return Consumable{Name: name, Calories: calories, Category: CategoryDrink, Sugary: sugary}
}

// HighCalorie reports whether the item exceeds the fixed calorie threshold.
func (c Consumable) HighCalorie() bool {
	return c.Calories > HighCalorieThreshold
}

// MatchesName reports whether name matches the item's name, ignoring case.
func (c Consumable) MatchesName(name string) bool {
	return strings.EqualFold(c.Name, name)
}

// Label renders the item as "<name> (<calories> cal)".
func (c Consumable) Label() string {
	return fmt.Sprintf("%s (%d cal)", c.Name, c.Calories)
}

// ItemRepository is the port for the tracked item collection. Implementations
// preserve insertion order and never hand out a mutable reference to their
// internal sequence.
type ItemRepository interface {
	Append(ctx context.Context, item Consumable) error
	Snapshot(ctx context.Context) ([]Consumable, error)
	RemoveAt(ctx context.Context, index int) (Consumable, bool, error)
	Len(ctx context.Context) (int, error)
	SumCalories(ctx context.Context) (int64, error)
}
