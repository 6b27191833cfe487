package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var clockPattern = regexp.MustCompile(`^(0?[1-9]|1[0-2]):([0-5][0-9]) (AM|PM)$`)

// parseDate parses a calendar date of the form "2006-01-02" at UTC midnight.
func parseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", date, err)
	}
	return t, nil
}

// ParseClockMinutes converts a 12-hour clock string such as "2:30 PM" to
// minutes since midnight. "12:00 AM" is 0, "12:00 PM" is 720.
func ParseClockMinutes(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid time %q, expected format like 2:30 PM", s)
	}
	hour, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if hour == 12 {
		hour = 0
	}
	if m[3] == "PM" {
		hour += 12
	}
	return hour*60 + min, nil
}

// splitSlotLabel splits a "<start> - <end>" slot label into its parts.
func splitSlotLabel(label string) (start, end string, err error) {
	parts := strings.SplitN(label, " - ", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid time slot label %q", label)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// slotEndInstant computes the UTC instant at which a session on the given
// date and slot label ends.
func slotEndInstant(date, timeSlot string) (time.Time, error) {
	day, err := parseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	_, endClock, err := splitSlotLabel(timeSlot)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := ParseClockMinutes(endClock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// weekdayOf returns the English weekday name of a date string, e.g. "Monday".
func weekdayOf(date string) (string, error) {
	t, err := parseDate(date)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// IsWeekdayName reports whether day is a valid English weekday name.
func IsWeekdayName(day string) bool {
	return weekdays[day]
}

// formatLongDate renders a date string for emails, e.g. "Monday, January 2, 2006".
// Falls back to the raw string if it does not parse.
func formatLongDate(date string) string {
	t, err := parseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}
