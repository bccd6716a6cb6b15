package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime indicates a time anchor string that is neither a bare clock
// time nor a parseable absolute datetime.
var ErrInvalidTime = errors.New("invalid time format")

var clockRegexp = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// anchorLayouts are the absolute datetime layouts tried, in order, for
// anchors that are not bare clock times. A date-only anchor resolves to
// midnight.
var anchorLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ResolveAnchor turns a human-entered time string into a concrete timestamp.
// A bare "HH:MM" is placed on ref's calendar day in ref's location, with
// seconds zeroed. Hour and minute are deliberately not range-checked: values
// like "25:30" are normalized by date arithmetic and roll over into the
// adjacent day. Anything else is parsed as an absolute datetime against a
// fixed set of layouts.
func ResolveAnchor(text string, ref time.Time) (time.Time, error) {
	s := strings.TrimSpace(text)

	if match := clockRegexp.FindStringSubmatch(s); match != nil {
		hour, _ := strconv.Atoi(match[1])
		minute, _ := strconv.Atoi(match[2])
		return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location()), nil
	}

	for _, layout := range anchorLayouts {
		if t, err := time.ParseInLocation(layout, s, ref.Location()); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, text)
}
