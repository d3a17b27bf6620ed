// Package ratelimit provides a blocking gate that bounds outbound requests
// to a fixed number of admissions per second.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter admits at most rps operations per rolling one-second window.
// Callers block in Wait until their slot comes up; nothing is dropped.
// A nil Limiter admits everything immediately.
type Limiter struct {
	lim *rate.Limiter
}

// New creates a limiter for rps admissions per second. rps <= 0 disables
// the gate entirely.
func New(rps int) *Limiter {
	if rps <= 0 {
		return &Limiter{}
	}
	// Burst of 1 keeps admissions evenly spaced inside the window instead
	// of allowing a front-loaded burst.
	return &Limiter{lim: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the next admission slot is available. The only failure
// mode is ctx being cancelled while waiting.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil || l.lim == nil {
		return nil
	}
	return l.lim.Wait(ctx)
}
