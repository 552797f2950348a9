package middleware

import "testing"

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(5)
	defer rl.Close()

	for i := 0; i < 5; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d inside the burst was blocked", i)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("request past the burst was allowed")
	}
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(1)
	defer rl.Close()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first ip blocked")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("first ip not limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatal("second ip throttled by the first ip's bucket")
	}
}

func TestRateLimiter_CloseIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1)
	rl.Close()
	rl.Close()

	// Buckets survive the sweeper.
	if !rl.Allow("10.0.0.1") {
		t.Fatal("limiter stopped limiting after Close")
	}
}
