package model_test

import (
	"errors"
	"testing"
	"time"

	"clockctl/internal/model"
)

var anchorRef = time.Date(2022, 11, 13, 17, 42, 31, 500, time.Local)

func TestResolveAnchor(t *testing.T) {
	t.Run("BareClockTime", func(t *testing.T) {
		result, err := model.ResolveAnchor("09:30", anchorRef)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected := time.Date(2022, 11, 13, 9, 30, 0, 0, time.Local)
		if !result.Equal(expected) {
			t.Errorf("resolved to %s, expected %s", result, expected)
		}
	})

	t.Run("SingleDigitHour", func(t *testing.T) {
		result, err := model.ResolveAnchor("7:05", anchorRef)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if result.Hour() != 7 || result.Minute() != 5 {
			t.Errorf("resolved to %s, expected 07:05", result)
		}
	})

	t.Run("OutOfRangeHourRollsOver", func(t *testing.T) {
		result, err := model.ResolveAnchor("25:30", anchorRef)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected := time.Date(2022, 11, 14, 1, 30, 0, 0, time.Local)
		if !result.Equal(expected) {
			t.Errorf("resolved to %s, expected rollover to %s", result, expected)
		}
	})

	t.Run("AbsoluteDatetime", func(t *testing.T) {
		result, err := model.ResolveAnchor("2022-10-01 08:15", anchorRef)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected := time.Date(2022, 10, 1, 8, 15, 0, 0, time.Local)
		if !result.Equal(expected) {
			t.Errorf("resolved to %s, expected %s", result, expected)
		}
	})

	t.Run("DateOnly", func(t *testing.T) {
		result, err := model.ResolveAnchor("2022-10-01", anchorRef)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected := time.Date(2022, 10, 1, 0, 0, 0, 0, time.Local)
		if !result.Equal(expected) {
			t.Errorf("resolved to %s, expected %s", result, expected)
		}
	})

	t.Run("Unparseable", func(t *testing.T) {
		for _, input := range []string{"soon", "12h30", "2022-13-45T99", ""} {
			_, err := model.ResolveAnchor(input, anchorRef)
			if !errors.Is(err, model.ErrInvalidTime) {
				t.Errorf("ResolveAnchor(%q) did not fail with ErrInvalidTime (got %v)", input, err)
			}
		}
	})
}
