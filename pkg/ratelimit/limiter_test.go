package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestWaitBoundsThroughput checks that n admissions at rate R take at least
// (n-1)/R seconds: the limiter never admits more than R per second.
func TestWaitBoundsThroughput(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	const rps = 10
	const n = 11 // one immediate admission plus a full second of refills

	l := New(rps)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < n; i++ {
		require.NoError(t, l.Wait(ctx))
	}
	elapsed := time.Since(start)

	if elapsed < 900*time.Millisecond {
		t.Fatalf("%d admissions at %d rps finished in %v, limiter is leaking", n, rps, elapsed)
	}
}

// TestWaitConcurrent runs many goroutines through one limiter; aggregate
// throughput must stay bounded regardless of caller count.
func TestWaitConcurrent(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	const rps = 10
	const n = 11

	l := New(rps)
	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Wait(context.Background())
		}()
	}
	wg.Wait()

	if elapsed := time.Since(start); elapsed < 900*time.Millisecond {
		t.Fatalf("%d concurrent admissions finished in %v", n, elapsed)
	}
}

func TestUnlimited(t *testing.T) {
	l := New(0)
	start := time.Now()
	for i := 0; i < 1000; i++ {
		require.NoError(t, l.Wait(context.Background()))
	}
	require.Less(t, time.Since(start), time.Second)
}

func TestWaitCancelled(t *testing.T) {
	l := New(1)
	ctx := context.Background()
	require.NoError(t, l.Wait(ctx)) // drain the single token

	cancelled, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	require.Error(t, l.Wait(cancelled))
}

func TestNilLimiter(t *testing.T) {
	var l *Limiter
	require.NoError(t, l.Wait(context.Background()))
}
