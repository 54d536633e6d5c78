package middleware

import (
	"testing"
	"time"
)

// TestRateLimiter_ExhaustsBucket allows exactly rate requests per interval.
func TestRateLimiter_ExhaustsBucket(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)

	if !rl.Allow("10.0.0.1") || !rl.Allow("10.0.0.1") {
		t.Fatal("first two requests should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("third request within the interval should be refused")
	}
	// Another IP has its own bucket.
	if !rl.Allow("10.0.0.2") {
		t.Error("other clients must not share the bucket")
	}
}

// TestRateLimiter_RefillsAfterInterval restores tokens once a full interval
// has elapsed.
func TestRateLimiter_RefillsAfterInterval(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("bucket should be empty")
	}

	rl.mu.Lock()
	rl.visitors["10.0.0.1"].lastSeen = time.Now().Add(-2 * time.Hour)
	rl.mu.Unlock()

	if !rl.Allow("10.0.0.1") {
		t.Error("elapsed interval should refill the bucket")
	}
}

// TestRateLimiter_SteadyTrafficStillRefills verifies that refused requests
// inside the interval do not push the next refill away. A client hammering
// an empty bucket must get a token back once the full interval has passed
// since the last refill, not since the last attempt.
func TestRateLimiter_SteadyTrafficStillRefills(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}

	// Half an interval later the bucket is still empty...
	rl.mu.Lock()
	halfAgo := time.Now().Add(-30 * time.Minute)
	rl.visitors["10.0.0.1"].lastSeen = halfAgo
	rl.mu.Unlock()
	if rl.Allow("10.0.0.1") {
		t.Fatal("request before a full interval should be refused")
	}

	// ...and the refused attempt must not have reset the refill clock.
	rl.mu.Lock()
	lastSeen := rl.visitors["10.0.0.1"].lastSeen
	rl.mu.Unlock()
	if !lastSeen.Equal(halfAgo) {
		t.Errorf("refused attempt moved the refill clock to %v", lastSeen)
	}

	// Once the full interval has elapsed since the last refill, the next
	// attempt succeeds even though attempts never stopped.
	rl.mu.Lock()
	rl.visitors["10.0.0.1"].lastSeen = time.Now().Add(-61 * time.Minute)
	rl.mu.Unlock()
	if !rl.Allow("10.0.0.1") {
		t.Error("full interval since last refill should allow the request")
	}
}
