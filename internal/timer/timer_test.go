package timer_test

import (
	"testing"
	"time"

	"github.com/rnakano/pomostudy/internal/timer"
)

func TestKindDurations(t *testing.T) {
	tests := []struct {
		kind timer.Kind
		want time.Duration
	}{
		{timer.Focus, 25 * time.Minute},
		{timer.ShortBreak, 5 * time.Minute},
		{timer.LongBreak, 15 * time.Minute},
	}
	for _, tt := range tests {
		if got := tt.kind.Duration(); got != tt.want {
			t.Errorf("%s.Duration() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  timer.Kind
		ok    bool
	}{
		{"", timer.Focus, true},
		{"focus", timer.Focus, true},
		{"pomodoro", timer.Focus, true},
		{"short", timer.ShortBreak, true},
		{"break", timer.ShortBreak, true},
		{"LONG", timer.LongBreak, true},
		{" long-break ", timer.LongBreak, true},
		{"nap", timer.Focus, false},
	}
	for _, tt := range tests {
		got, err := timer.ParseKind(tt.input)
		if tt.ok && err != nil {
			t.Errorf("ParseKind(%q): %v", tt.input, err)
			continue
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("ParseKind(%q) succeeded, want error", tt.input)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCountdown(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	tm := timer.NewWithClock(timer.Focus, 25*time.Minute, clock)

	if got := tm.Remaining(); got != 25*time.Minute {
		t.Errorf("Remaining at start = %v, want 25m", got)
	}
	if tm.Done() {
		t.Error("Done at start = true, want false")
	}
	if got := tm.Progress(); got != 0 {
		t.Errorf("Progress at start = %v, want 0", got)
	}

	now = now.Add(10 * time.Minute)
	if got := tm.Remaining(); got != 15*time.Minute {
		t.Errorf("Remaining after 10m = %v, want 15m", got)
	}
	if got := tm.Progress(); got < 0.39 || got > 0.41 {
		t.Errorf("Progress after 10m = %v, want 0.4", got)
	}

	now = now.Add(15 * time.Minute)
	if got := tm.Remaining(); got != 0 {
		t.Errorf("Remaining at end = %v, want 0", got)
	}
	if !tm.Done() {
		t.Error("Done at end = false, want true")
	}

	// Past the end the countdown stays pinned at done.
	now = now.Add(time.Hour)
	if got := tm.Remaining(); got != 0 {
		t.Errorf("Remaining past end = %v, want 0", got)
	}
	if got := tm.Progress(); got != 1 {
		t.Errorf("Progress past end = %v, want 1", got)
	}
}

func TestCustomDuration(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	tm := timer.NewWithClock(timer.Focus, 10*time.Minute, clock)
	if got := tm.Duration(); got != 10*time.Minute {
		t.Errorf("Duration = %v, want 10m", got)
	}

	now = now.Add(10 * time.Minute)
	if !tm.Done() {
		t.Error("custom-length countdown not done after its duration")
	}
}

func TestZeroDurationProgress(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	tm := timer.NewWithClock(timer.Focus, 0, func() time.Time { return now })

	if got := tm.Progress(); got != 1 {
		t.Errorf("Progress with zero duration = %v, want 1", got)
	}
	if !tm.Done() {
		t.Error("zero-length countdown should be done immediately")
	}
}
