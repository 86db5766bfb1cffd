package timezone_test

import (
	"rental/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	if now.Location() == nil {
		t.Error("Now() returned a time without location")
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2024-03-09")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	if parsed.Location() != time.UTC || parsed.Hour() != 0 {
		t.Errorf("expected UTC midnight, got %v", parsed)
	}

	if _, err := timezone.ParseDate("09/03/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		start, end string
		expected   int
	}{
		{"2024-01-01", "2024-01-31", 30},
		{"2024-03-09", "2024-03-11", 2},
		{"2024-02-01", "2024-03-02", 30},
		{"2024-01-10", "2024-01-01", -9},
	}

	for _, tt := range tests {
		start, _ := timezone.ParseDate(tt.start)
		end, _ := timezone.ParseDate(tt.end)

		if got := timezone.DaysBetween(start, end); got != tt.expected {
			t.Errorf("DaysBetween(%s, %s) = %d, expected %d", tt.start, tt.end, got, tt.expected)
		}
	}

	// Same wall dates across a DST switch still count whole days.
	ny, err := time.LoadLocation("America/New_York")
	if err == nil {
		start := time.Date(2024, 3, 9, 0, 0, 0, 0, ny)
		end := time.Date(2024, 3, 11, 0, 0, 0, 0, ny)

		if got := timezone.DaysBetween(start, end); got != 2 {
			t.Errorf("expected 2 days across DST, got %d", got)
		}
	}
}
