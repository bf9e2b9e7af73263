package memory

import (
	"math"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Stopwatch measures one game from its first frame to the final match.
type Stopwatch struct {
	clock   core.Clock
	start   time.Time
	final   time.Duration
	running bool
}

// NewStopwatch creates a stopped stopwatch on clock.
func NewStopwatch(clock core.Clock) *Stopwatch {
	return &Stopwatch{clock: clock}
}

// Start resets the stopwatch and starts it.
func (s *Stopwatch) Start() {
	s.start = s.clock.Now()
	s.final = 0
	s.running = true
}

// Elapsed returns the live reading, or the final one once stopped.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.running {
		return s.final
	}
	return s.clock.Now().Sub(s.start)
}

// Stop freezes the reading and returns it. Stopping twice returns the
// same value.
func (s *Stopwatch) Stop() time.Duration {
	if s.running {
		s.final = s.clock.Now().Sub(s.start)
		s.running = false
	}
	return s.final
}

// Running reports whether the stopwatch is counting.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Seconds rounds d to tenths of a second.
func Seconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*10) / 10
}

// FormatSeconds renders d as "12.3s".
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(Seconds(d), 'f', 1, 64) + "s"
}
