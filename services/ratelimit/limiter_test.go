package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_SpacesCalls(t *testing.T) {
	interval := 50 * time.Millisecond
	l := NewLimiter(interval)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := l.Wait(ctx); err != nil {
			t.Fatalf("Wait %d failed: %v", i, err)
		}
	}
	elapsed := time.Since(start)

	// First call is granted immediately, the next two wait one interval each.
	if elapsed < 2*interval-5*time.Millisecond {
		t.Errorf("Expected at least %v between three calls, got %v", 2*interval, elapsed)
	}
}

func TestLimiter_FirstCallImmediate(t *testing.T) {
	l := NewLimiter(time.Second)
	start := time.Now()
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Errorf("First call should not wait")
	}
}

func TestLimiter_CancelledContext(t *testing.T) {
	l := NewLimiter(time.Hour)
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); err == nil {
		t.Error("Expected error when slot is beyond context deadline")
	}
}

func TestLimiter_NilAndZero(t *testing.T) {
	var l *Limiter
	if err := l.Wait(context.Background()); err != nil {
		t.Errorf("nil limiter should not fail: %v", err)
	}
	z := NewLimiter(0)
	for i := 0; i < 10; i++ {
		if err := z.Wait(context.Background()); err != nil {
			t.Errorf("zero interval limiter should not fail: %v", err)
		}
	}
	if z.Interval() != 0 {
		t.Errorf("Expected zero interval, got %v", z.Interval())
	}
}
