// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"strings"

	"consumption/internal/domain"
)

// TrackerService maintains the authoritative list of consumables and enforces
// insertion-time alerting. Every operation is total: bad indices, unknown
// names and repository failures are reported through the event logger and
// treated as no-ops, never surfaced as errors.
type TrackerService struct {
	repo   domain.ItemRepository
	events domain.EventLogger
}

// NewTrackerService creates a TrackerService backed by the given repository
// and event logger.
func NewTrackerService(repo domain.ItemRepository, events domain.EventLogger) *TrackerService {
	return &TrackerService{repo: repo, events: events}
}

// Add appends the item and emits the insertion alerts for its category.
func (s *TrackerService) Add(ctx context.Context, item domain.Consumable) {
	if err := s.repo.Append(ctx, item); err != nil {
		s.events.Log(err.Error())
		return
	}
	s.events.Log(fmt.Sprintf("%s added!", item.Name))

	switch item.Category {
	case domain.CategoryFood:
		if item.HighCalorie() {
			s.events.Log(fmt.Sprintf("⚠️ Alert: %s is high in calories!", item.Name))
		}
	case domain.CategoryDrink:
		if item.Sugary {
			if item.HighCalorie() {
				s.events.Log(fmt.Sprintf("Warning: %s is both sugary and high in calories!", item.Name))
			} else {
				s.events.Log(fmt.Sprintf("Note: %s is sugary!", item.Name))
			}
		}
	default:
		// Unknown categories never alert.
	}
}

// Items returns a read-only snapshot of the tracked items in insertion order.
func (s *TrackerService) Items(ctx context.Context) []domain.Consumable {
	items, err := s.repo.Snapshot(ctx)
	if err != nil {
		s.events.Log(err.Error())
		return nil
	}
	return items
}

// ListItems renders the tracked items as a single comma-joined string.
func (s *TrackerService) ListItems(ctx context.Context) string {
	items := s.Items(ctx)
	if len(items) == 0 {
		return "No items tracked yet."
	}

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label()
	}
	return strings.Join(labels, ", ")
}

// TotalCalories returns the calorie sum over all tracked items.
func (s *TrackerService) TotalCalories(ctx context.Context) int64 {
	total, err := s.repo.SumCalories(ctx)
	if err != nil {
		s.events.Log(err.Error())
		return 0
	}
	return total
}

// DeleteAt removes the item at index. An out-of-range index is reported via
// the event log and leaves the collection unchanged.
func (s *TrackerService) DeleteAt(ctx context.Context, index int) {
	removed, ok, err := s.repo.RemoveAt(ctx, index)
	if err != nil {
		s.events.Log(err.Error())
		return
	}
	if !ok {
		s.events.Log(fmt.Sprintf("Invalid index: %d", index))
		return
	}
	s.events.Log(fmt.Sprintf("%s removed.", removed.Name))
}

// DeleteByName removes the first item whose name matches, ignoring case.
// A miss is reported via the event log and leaves the collection unchanged.
func (s *TrackerService) DeleteByName(ctx context.Context, name string) {
	items, err := s.repo.Snapshot(ctx)
	if err != nil {
		s.events.Log(err.Error())
		return
	}
	for i, item := range items {
		if item.MatchesName(name) {
			s.DeleteAt(ctx, i)
			return
		}
	}
	s.events.Log(fmt.Sprintf("Item %q not found.", name))
}
