package model

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration indicates a duration string that matches none of the
// accepted shapes.
var ErrInvalidDuration = errors.New("invalid duration format")

var durationRegexp = regexp.MustCompile(`^(?i)(?:(\d+)h)?(?:(\d+)m)?$`)

// ParseDuration converts a human-entered duration string into minutes.
// Accepted shapes are "1h30m", "2h", "45m" and a bare integer, which is read
// as minutes. Unit letters are case-insensitive and surrounding whitespace is
// ignored.
func ParseDuration(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
	}

	if minutes, err := strconv.Atoi(s); err == nil {
		if minutes < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
		}
		return minutes, nil
	}

	match := durationRegexp.FindStringSubmatch(s)
	if match == nil || (match[1] == "" && match[2] == "") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	return hours*60 + minutes, nil
}

// FormatDuration renders a minute count as "Xh Ym", or just "Ym" when there is
// no full hour. Zero renders as "0m".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// RoundMinutes converts an elapsed duration to whole minutes, rounding to the
// nearest minute with ties away from zero. Every elapsed-time and summary
// figure in the tool goes through this so the numbers are consistent across
// commands.
func RoundMinutes(d time.Duration) int {
	return int(math.Round(float64(d.Milliseconds()) / 60000.0))
}
