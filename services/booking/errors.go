package booking

import "mentorify/utils"

// Booking-scoped error constructors over the shared taxonomy.

func errInvalidDay(day string) error {
	return utils.Errf(utils.CodeInvalidInput, "invalid day: %s", day)
}

func errInvalidDate(date string) error {
	return utils.Errf(utils.CodeInvalidInput, "invalid or past date: %s", date)
}

func errDateDayMismatch(date, day string) error {
	return utils.Errf(utils.CodeInvalidInput, "selected date (%s) is not a %s", date, day)
}

func errSlotNotOffered(day, timeSlot string) error {
	return utils.Errf(utils.CodeInvalidInput, "mentor does not offer slot %q on %s", timeSlot, day)
}

func errAlreadyBooked(date, timeSlot string) error {
	return utils.Errf(utils.CodeConflict, "slot %q is already booked for %s", timeSlot, date)
}

func errActiveSessionExists() error {
	return utils.Errf(utils.CodeConflict, "please complete your existing session before booking a new one")
}

func errSessionNotFound(id string) error {
	return utils.Errf(utils.CodeNotFound, "session %s not found", id)
}

func errNotSessionOwner() error {
	return utils.Errf(utils.CodeForbidden, "you do not own this session")
}

func errTooEarly() error {
	return utils.Errf(utils.CodeTooEarly, "cannot mark session as completed before it ends")
}

func errNotPending() error {
	return utils.Errf(utils.CodeConflict, "session is not awaiting confirmation")
}

func errNotConfirmed() error {
	return utils.Errf(utils.CodeConflict, "session is not confirmed")
}

func errNotActive() error {
	return utils.Errf(utils.CodeConflict, "session is already completed or cancelled")
}

func errMentorUnavailable() error {
	return utils.Errf(utils.CodeNotFound, "mentor has not published availability")
}

func errInvalidMeetingLink(link string) error {
	return utils.Errf(utils.CodeInvalidInput, "meeting link must be an https URL, got %q", link)
}

func errMeetingLinkMissing() error {
	return utils.Errf(utils.CodeNotFound, "meeting link has not been added yet")
}
