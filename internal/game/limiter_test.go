package game

import (
	"testing"
	"time"
)

func TestFrameLimiterUncapped(t *testing.T) {
	l := NewFrameLimiter(0)
	start := time.Now()
	for range 1000 {
		l.Wait()
	}
	if d := time.Since(start); d > 50*time.Millisecond {
		t.Errorf("uncapped limiter blocked for %v", d)
	}
}

func TestFrameLimiterPaces(t *testing.T) {
	l := NewFrameLimiter(200) // 5ms frames
	start := time.Now()
	for range 4 {
		l.Wait()
	}
	if d := time.Since(start); d < 20*time.Millisecond {
		t.Errorf("4 frames at 200 FPS took %v, want at least 20ms", d)
	}
}

func TestFrameLimiterResyncsAfterHitch(t *testing.T) {
	l := NewFrameLimiter(1000)
	l.Wait()
	time.Sleep(20 * time.Millisecond)
	l.Wait()
	if until := time.Until(l.next); until < 0 || until > 2*time.Millisecond {
		t.Errorf("next deadline %v away after hitch, want within one frame", until)
	}
}
