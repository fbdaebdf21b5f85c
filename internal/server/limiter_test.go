package server

import (
	"testing"
	"time"
)

func TestLimiter_PerMinute(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := newLimiter(5, 0, clock.Now)

	for i := range 5 {
		if rej := l.allow("a"); rej != nil {
			t.Fatalf("request %d rejected: %s", i+1, rej.Message)
		}
	}
	rej := l.allow("a")
	if rej == nil {
		t.Fatal("sixth request within a minute should be rejected")
	}
	if rej.RetryAfter != 12*time.Second {
		t.Errorf("RetryAfter = %v, want 12s", rej.RetryAfter)
	}
	if l.allow("b") != nil {
		t.Error("clients are limited independently")
	}

	clock.Advance(12 * time.Second)
	if rej := l.allow("a"); rej != nil {
		t.Fatalf("token should have refilled: %s", rej.Message)
	}
}

func TestLimiter_RejectionDoesNotConsume(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := newLimiter(1, 0, clock.Now)

	if l.allow("a") != nil {
		t.Fatal("first request rejected")
	}
	for range 10 {
		if l.allow("a") == nil {
			t.Fatal("expected rejection")
		}
	}
	clock.Advance(time.Minute)
	if rej := l.allow("a"); rej != nil {
		t.Fatalf("rejected requests must not push the window out: %s", rej.Message)
	}
}

func TestLimiter_PerDay(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)}
	l := newLimiter(0, 3, clock.Now)

	for range 3 {
		if rej := l.allow("a"); rej != nil {
			t.Fatalf("unexpected rejection: %s", rej.Message)
		}
	}
	rej := l.allow("a")
	if rej == nil {
		t.Fatal("fourth request of the day should be rejected")
	}
	if rej.RetryAfter != time.Hour {
		t.Errorf("RetryAfter = %v, want 1h", rej.RetryAfter)
	}

	clock.Advance(2 * time.Hour)
	if rej := l.allow("a"); rej != nil {
		t.Fatalf("quota should reset on a new UTC day: %s", rej.Message)
	}
}

func TestLimiter_DailyRejectionReturnsMinuteToken(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	l := newLimiter(2, 1, clock.Now)

	if l.allow("a") != nil {
		t.Fatal("first request rejected")
	}
	rej := l.allow("a")
	if rej == nil || rej.RetryAfter != time.Hour {
		t.Fatalf("expected daily rejection, got %+v", rej)
	}
	if got := l.clients["a"].minute.TokensAt(clock.Now()); got < 0.99 {
		t.Errorf("minute token should be returned, have %.2f", got)
	}
}

func TestRetrySeconds(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want int
	}{
		{0, 1},
		{300 * time.Millisecond, 1},
		{12 * time.Second, 12},
		{12*time.Second + time.Millisecond, 13},
	}
	for _, tt := range tests {
		if got := retrySeconds(tt.in); got != tt.want {
			t.Errorf("retrySeconds(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
