package service

import (
	"time"

	"mytargets/helpers"
	"mytargets/interfaces"
)

// timeProvider implements interfaces.TimeProvider through an injected now func.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via now. Panics on nil now.
// cmd/main passes time.Now().UTC; tests pass a fixed clock.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

// Now returns the time reported by the injected func.
func (t *timeProvider) Now() time.Time {
	return t.now()
}

// UTCClock is the production clock.
func UTCClock() interfaces.TimeProvider {
	return NewTimeProvider(func() time.Time { return time.Now().UTC() })
}
