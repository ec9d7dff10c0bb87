package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseMinutes parses a study-time amount in minutes.
// Supported formats:
// - bare minutes (e.g., "25")
// - Go durations (e.g., "25m", "1h30m")
// Zero is allowed; negative amounts are rejected here, at the input
// boundary, rather than by the store.
func ParseMinutes(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("minutes required")
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("minutes cannot be negative")
		}
		return n, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes %q (use a number like 25, or a duration like 25m, 1h30m)", input)
	}
	if d < 0 {
		return 0, fmt.Errorf("minutes cannot be negative")
	}
	return int(d.Minutes()), nil
}

// ParseTimerLength parses a countdown override for the timer command.
// Unlike study minutes, a timer length must be strictly positive.
func ParseTimerLength(input string) (time.Duration, error) {
	minutes, err := ParseMinutes(input)
	if err != nil {
		return 0, err
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("timer length must be at least one minute")
	}
	return time.Duration(minutes) * time.Minute, nil
}
