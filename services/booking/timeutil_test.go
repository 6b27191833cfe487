package booking

import (
	"testing"
	"time"
)

func TestParseClockMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"12:00 AM", 0, false},
		{"12:30 AM", 30, false},
		{"1:00 AM", 60, false},
		{"9:05 AM", 545, false},
		{"12:00 PM", 720, false},
		{"2:30 PM", 870, false},
		{"11:59 PM", 1439, false},
		{" 10:00 AM ", 600, false},
		{"13:00 PM", 0, true},
		{"10:60 AM", 0, true},
		{"10:00", 0, true},
		{"10:00 am", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClockMinutes(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClockMinutes(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClockMinutes(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClockMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSplitSlotLabel(t *testing.T) {
	start, end, err := splitSlotLabel("10:00 AM - 11:00 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start != "10:00 AM" || end != "11:00 AM" {
		t.Errorf("got (%q, %q)", start, end)
	}

	if _, _, err := splitSlotLabel("10:00 AM"); err == nil {
		t.Error("expected error for label without separator")
	}
}

func TestSlotEndInstant(t *testing.T) {
	end, err := slotEndInstant("2026-03-09", "10:00 AM - 11:30 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 9, 11, 30, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Errorf("slotEndInstant = %v, want %v", end, want)
	}

	if _, err := slotEndInstant("09-03-2026", "10:00 AM - 11:00 AM"); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := slotEndInstant("2026-03-09", "10:00 AM to 11:00 AM"); err == nil {
		t.Error("expected error for malformed label")
	}
}

func TestWeekdayOf(t *testing.T) {
	day, err := weekdayOf("2026-03-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != "Monday" {
		t.Errorf("weekdayOf = %q, want Monday", day)
	}
}

func TestFormatLongDate(t *testing.T) {
	if got := formatLongDate("2026-03-09"); got != "Monday, March 9, 2026" {
		t.Errorf("formatLongDate = %q", got)
	}
	// Unparseable input falls back to the raw string.
	if got := formatLongDate("soon"); got != "soon" {
		t.Errorf("formatLongDate fallback = %q", got)
	}
}
