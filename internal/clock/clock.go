// Package clock provides an injectable time source so sinks and tests can
// share deterministic timestamps.
package clock

import "time"

// Service is the time source port.
type Service interface {
	Now() time.Time
}

type systemClock struct{}

// NewService returns a Service backed by the system clock.
func NewService() Service {
	return &systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// TimeSetterFn advances a mock clock.
type TimeSetterFn func(time.Time)

type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}

// NewMockService returns a Service frozen at now, plus a setter to move it.
func NewMockService(now time.Time) (Service, TimeSetterFn) {
	m := &mockClock{now: now}
	return m, func(t time.Time) {
		m.now = t
	}
}
