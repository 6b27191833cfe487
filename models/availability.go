package models

import "fmt"

// TimeSlot is a named time interval within a mentor's weekly template.
// Times use the 12-hour clock ("H:MM AM/PM"). BookedDates lists the concrete
// calendar dates ("YYYY-MM-DD") on which this slot has an active booking;
// the same weekly slot stays open on every other date.
type TimeSlot struct {
	StartTime   string   `bson:"startTime" json:"startTime" binding:"required"`
	EndTime     string   `bson:"endTime" json:"endTime" binding:"required"`
	BookedDates []string `bson:"bookedDates,omitempty" json:"bookedDates,omitempty"`
}

// Label returns the slot identifier used throughout the booking flow,
// e.g. "10:00 AM - 11:00 AM".
func (s TimeSlot) Label() string {
	return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
}

// IsBookedOn reports whether this slot has an active booking on the given date.
func (s TimeSlot) IsBookedOn(date string) bool {
	for _, d := range s.BookedDates {
		if d == date {
			return true
		}
	}
	return false
}

// DaySlots groups the template slots offered on one weekday.
type DaySlots struct {
	Day   string     `bson:"day" json:"day" binding:"required"`
	Slots []TimeSlot `bson:"slots" json:"slots" binding:"required"`
}

// MentorAvailability is a mentor's recurring weekly availability template,
// distinct from concrete date bookings. One template per mentor.
type MentorAvailability struct {
	MentorID      string     `bson:"mentorId" json:"mentorId"`
	AvailableDays []string   `bson:"availableDays" json:"availableDays"`
	SlotsPerDay   []DaySlots `bson:"slotsPerDay" json:"slotsPerDay"`
}

// SlotsFor returns the day entry for the given weekday, or nil.
func (a *MentorAvailability) SlotsFor(day string) *DaySlots {
	for i := range a.SlotsPerDay {
		if a.SlotsPerDay[i].Day == day {
			return &a.SlotsPerDay[i]
		}
	}
	return nil
}

// FindSlot returns the slot whose label matches timeSlot on the given day, or nil.
func (a *MentorAvailability) FindSlot(day, timeSlot string) *TimeSlot {
	daySlots := a.SlotsFor(day)
	if daySlots == nil {
		return nil
	}
	for i := range daySlots.Slots {
		if daySlots.Slots[i].Label() == timeSlot {
			return &daySlots.Slots[i]
		}
	}
	return nil
}

// HasDay reports whether the template offers the given weekday.
func (a *MentorAvailability) HasDay(day string) bool {
	for _, d := range a.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}
