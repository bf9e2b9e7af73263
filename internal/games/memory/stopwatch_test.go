package memory

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func TestStopwatch(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	w := NewStopwatch(clock)

	if w.Running() || w.Elapsed() != 0 {
		t.Fatal("new stopwatch should be stopped at zero")
	}

	w.Start()
	clock.Advance(2500 * time.Millisecond)
	if got := w.Elapsed(); got != 2500*time.Millisecond {
		t.Errorf("Elapsed() = %v", got)
	}

	final := w.Stop()
	if final != 2500*time.Millisecond || w.Running() {
		t.Errorf("Stop() = %v, running = %v", final, w.Running())
	}

	clock.Advance(time.Minute)
	if w.Elapsed() != final {
		t.Error("stopped stopwatch kept counting")
	}
	if again := w.Stop(); again != final {
		t.Errorf("second Stop() = %v, expected %v", again, final)
	}

	w.Start()
	if w.Elapsed() != 0 {
		t.Error("Start should reset the reading")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
		secs float64
	}{
		{0, "0.0s", 0},
		{12300 * time.Millisecond, "12.3s", 12.3},
		{5060 * time.Millisecond, "5.1s", 5.1},
		{9940 * time.Millisecond, "9.9s", 9.9},
		{90 * time.Second, "90.0s", 90},
	}

	for _, tc := range tests {
		if got := FormatSeconds(tc.d); got != tc.want {
			t.Errorf("FormatSeconds(%v) = %q, expected %q", tc.d, got, tc.want)
		}
		if got := Seconds(tc.d); got != tc.secs {
			t.Errorf("Seconds(%v) = %v, expected %v", tc.d, got, tc.secs)
		}
	}
}
