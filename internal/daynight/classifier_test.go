package daynight

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// utcAt builds an instant whose local hour in UTC is the given wall time.
func utcAt(hour, minute int) time.Time {
	return time.Date(2024, 12, 9, hour, minute, 0, 0, time.UTC)
}

func TestClassifier_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{"19:59 is day", utcAt(19, 59), false},
		{"20:00 is night", utcAt(20, 0), true},
		{"23:59 is night", utcAt(23, 59), true},
		{"midnight is night", utcAt(0, 0), true},
		{"05:59 is night", utcAt(5, 59), true},
		{"06:00 is day", utcAt(6, 0), false},
		{"noon is day", utcAt(12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(discardLogger())
			if got := c.Classify("UTC", tt.now); got != tt.expected {
				t.Errorf("Classify(UTC, %v) = %v, want %v", tt.now, got, tt.expected)
			}
		})
	}
}

func TestClassifier_UsesLocalHour(t *testing.T) {
	c := NewClassifier(discardLogger())

	// 11:00 UTC is 21:30 in Adelaide (UTC+10:30 in December): night there,
	// day in London.
	now := time.Date(2024, 12, 9, 11, 0, 0, 0, time.UTC)

	if !c.Classify("Australia/Adelaide", now) {
		t.Error("expected night in Adelaide")
	}
	if c.Classify("Europe/London", now) {
		t.Error("expected day in London")
	}
}

func TestClassifier_AbsentTimezone(t *testing.T) {
	c := NewClassifier(discardLogger())

	// Default before any successful classification is day.
	if c.Classify("", utcAt(23, 0)) {
		t.Error("expected default day classification for absent timezone")
	}

	// After a night classification, an absent timezone keeps the last answer.
	if !c.Classify("UTC", utcAt(23, 0)) {
		t.Fatal("expected night at 23:00 UTC")
	}
	if !c.Classify("", utcAt(12, 0)) {
		t.Error("expected last-known night classification for absent timezone")
	}
}

func TestClassifier_UnknownTimezone(t *testing.T) {
	c := NewClassifier(discardLogger())

	if !c.Classify("UTC", utcAt(4, 0)) {
		t.Fatal("expected night at 04:00 UTC")
	}
	// An unloadable identifier must not panic or flip the answer.
	if !c.Classify("Not/AZone", utcAt(12, 0)) {
		t.Error("expected last-known classification for unknown timezone")
	}
}
