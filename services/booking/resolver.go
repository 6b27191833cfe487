package booking

import (
	"context"
	"fmt"
	"time"

	"mentorify/models"
)

// ConflictQuery reports whether an active session already holds the exact
// (mentor, date, timeSlot) tuple in the ledger.
type ConflictQuery func(ctx context.Context, mentorID, date, timeSlot string) (bool, error)

// ResolveSlot validates a booking request against a mentor's availability
// template and the ledger, returning the matching slot definition. Checks
// run in a fixed order so the caller always gets the most specific failure:
//
//  1. day is a real weekday name
//  2. date parses and is not in the past
//  3. date actually falls on day
//  4. the mentor offers that day
//  5. the mentor offers that slot on that day
//  6. no active session holds the slot on that date, per the template's
//     booking marker and the injected ledger query
//
// The conflict check is date-exact: booking one date never blocks the same
// weekly slot on other dates.
func ResolveSlot(ctx context.Context, tpl *models.MentorAvailability, day, date, timeSlot string, now time.Time, conflict ConflictQuery) (*models.TimeSlot, error) {
	if !IsWeekdayName(day) {
		return nil, errInvalidDay(day)
	}

	requested, err := parseDate(date)
	if err != nil {
		return nil, errInvalidDate(date)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if requested.Before(today) {
		return nil, errInvalidDate(date)
	}

	if requested.Weekday().String() != day {
		return nil, errDateDayMismatch(date, day)
	}

	if !tpl.HasDay(day) {
		return nil, errSlotNotOffered(day, timeSlot)
	}
	slot := tpl.FindSlot(day, timeSlot)
	if slot == nil {
		return nil, errSlotNotOffered(day, timeSlot)
	}

	if slot.IsBookedOn(date) {
		return nil, errAlreadyBooked(date, timeSlot)
	}
	if conflict != nil {
		taken, err := conflict(ctx, tpl.MentorID, date, slot.Label())
		if err != nil {
			return nil, fmt.Errorf("failed to check slot conflicts: %w", err)
		}
		if taken {
			return nil, errAlreadyBooked(date, timeSlot)
		}
	}
	return slot, nil
}
