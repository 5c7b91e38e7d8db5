package clock

import (
	"testing"
	"time"
)

func TestClockElapsed(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewWithNow(func() time.Time { return now })

	if got := c.Elapsed(); got != 0 {
		t.Fatalf("Elapsed at start = %v", got)
	}
	now = now.Add(1500 * time.Millisecond)
	if got := c.Seconds(); got != 1.5 {
		t.Fatalf("Seconds = %v, want 1.5", got)
	}
}

func TestClockPause(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewWithNow(func() time.Time { return now })

	now = now.Add(2 * time.Second)
	c.Toggle()
	if !c.Paused() {
		t.Fatal("expected paused")
	}
	now = now.Add(10 * time.Second) // t=12s, frozen at 2s
	if got := c.Elapsed(); got != 2*time.Second {
		t.Fatalf("Elapsed while paused = %v, want 2s", got)
	}

	c.Toggle()
	if c.Paused() {
		t.Fatal("expected running")
	}
	now = now.Add(3 * time.Second) // t=15s, 10s of it paused
	if got := c.Elapsed(); got != 5*time.Second {
		t.Fatalf("Elapsed after resume = %v, want 5s", got)
	}
}
