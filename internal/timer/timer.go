package timer

import (
	"fmt"
	"strings"
	"time"
)

// Kind selects a countdown preset.
type Kind int

const (
	Focus Kind = iota
	ShortBreak
	LongBreak
)

// Duration returns the preset length for the kind.
func (k Kind) Duration() time.Duration {
	switch k {
	case ShortBreak:
		return 5 * time.Minute
	case LongBreak:
		return 15 * time.Minute
	default: // Focus
		return 25 * time.Minute
	}
}

// String returns the display name for the kind.
func (k Kind) String() string {
	switch k {
	case ShortBreak:
		return "short break"
	case LongBreak:
		return "long break"
	default:
		return "focus"
	}
}

// ParseKind maps a command-line argument to a Kind. An empty string
// defaults to Focus.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "focus", "pomodoro":
		return Focus, nil
	case "short", "short-break", "break":
		return ShortBreak, nil
	case "long", "long-break":
		return LongBreak, nil
	}
	return Focus, fmt.Errorf("unknown timer %q (use focus, short or long)", s)
}

// Timer is a fixed-length countdown over wall-clock time. It never
// sleeps or ticks on its own; callers poll Remaining on whatever
// redraw cadence suits them.
type Timer struct {
	kind      Kind
	duration  time.Duration
	startedAt time.Time
	now       func() time.Time
}

// New starts a countdown of the kind's preset length.
func New(kind Kind) *Timer {
	return NewWithDuration(kind, kind.Duration())
}

// NewWithDuration starts a countdown with an overridden length.
func NewWithDuration(kind Kind, d time.Duration) *Timer {
	return NewWithClock(kind, d, time.Now)
}

// NewWithClock starts a countdown against an injected clock. Tests use
// this to pin the passage of time.
func NewWithClock(kind Kind, d time.Duration, now func() time.Time) *Timer {
	return &Timer{
		kind:      kind,
		duration:  d,
		startedAt: now(),
		now:       now,
	}
}

// Kind returns the countdown's kind.
func (t *Timer) Kind() Kind {
	return t.kind
}

// Duration returns the countdown's full length.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// StartedAt returns when the countdown began.
func (t *Timer) StartedAt() time.Time {
	return t.startedAt
}

// Remaining returns the time left, never negative.
func (t *Timer) Remaining() time.Duration {
	left := t.duration - t.now().Sub(t.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Done reports whether the countdown has run out.
func (t *Timer) Done() bool {
	return t.Remaining() == 0
}

// Progress returns how much of the countdown has elapsed, in [0, 1].
func (t *Timer) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := 1 - t.Remaining().Seconds()/t.duration.Seconds()
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
