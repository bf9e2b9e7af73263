package core

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(800 * time.Millisecond)
	c.Advance(200 * time.Millisecond)
	if got := c.Now().Sub(start); got != time.Second {
		t.Errorf("advanced %v, expected 1s", got)
	}
}

func TestRuntimeConfigClockFallback(t *testing.T) {
	cfg := DefaultConfig()
	if _, ok := cfg.ClockOrSystem().(SystemClock); !ok {
		t.Error("nil clock should fall back to SystemClock")
	}

	mc := NewManualClock(time.Unix(0, 0))
	cfg.Clock = mc
	if cfg.ClockOrSystem() != mc {
		t.Error("configured clock should be returned")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionFlip)
	f.Click(3, 4)
	if !f.Has(ActionFlip) || len(f.Clicks) != 1 {
		t.Fatalf("frame = %+v", f)
	}

	f.Clear()
	if !f.Empty() || f.Has(ActionFlip) {
		t.Errorf("cleared frame should be empty, got %+v", f)
	}
}
