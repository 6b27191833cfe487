package availability

import (
	"context"
	"fmt"

	availabilityRepo "mentorify/database/repository/availability"
	sessionRepo "mentorify/database/repository/session"
	"mentorify/models"
	"mentorify/services/booking"
	"mentorify/utils"
)

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	availability availabilityRepo.AvailabilityRepository
	sessions     sessionRepo.SessionRepository
	clock        booking.Clock
}

// NewAvailabilityService wires the service. A nil clock defaults to the
// system clock.
func NewAvailabilityService(
	availability availabilityRepo.AvailabilityRepository,
	sessions sessionRepo.SessionRepository,
	clock booking.Clock,
) *DefaultAvailabilityService {
	if clock == nil {
		clock = booking.SystemClock
	}
	return &DefaultAvailabilityService{availability: availability, sessions: sessions, clock: clock}
}

func (s *DefaultAvailabilityService) CreateAvailability(ctx context.Context, mentorID string, input models.SetAvailabilityInput) (*models.MentorAvailability, error) {
	tpl, err := buildTemplate(mentorID, input)
	if err != nil {
		return nil, err
	}

	if err := s.availability.Create(ctx, tpl); err != nil {
		if err == availabilityRepo.ErrTemplateExists {
			return nil, utils.Errf(utils.CodeConflict, "mentor %s already has an availability template", mentorID)
		}
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}
	return tpl, nil
}

func (s *DefaultAvailabilityService) ReplaceAvailability(ctx context.Context, mentorID string, input models.SetAvailabilityInput) (*models.MentorAvailability, error) {
	tpl, err := buildTemplate(mentorID, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.availability.GetByMentorID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if existing == nil {
		return nil, utils.Errf(utils.CodeNotFound, "mentor %s has no availability", mentorID)
	}

	if err := s.guardLiveSlots(ctx, existing, tpl); err != nil {
		return nil, err
	}

	// Markers start empty on the new template. The session ledger stays the
	// source of truth for held dates, so a replacement never double-books.
	if err := s.availability.Replace(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to replace availability: %w", err)
	}
	return tpl, nil
}

func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, mentorID string) (*models.MentorAvailability, error) {
	tpl, err := s.availability.GetByMentorID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if tpl == nil {
		return nil, utils.Errf(utils.CodeNotFound, "mentor %s has no availability", mentorID)
	}
	return tpl, nil
}

// guardLiveSlots rejects a replacement that drops a slot still referenced by
// an upcoming pending or confirmed session.
func (s *DefaultAvailabilityService) guardLiveSlots(ctx context.Context, old, next *models.MentorAvailability) error {
	today := s.clock.Now().UTC().Format("2006-01-02")
	for _, daySlots := range old.SlotsPerDay {
		for _, slot := range daySlots.Slots {
			if next.FindSlot(daySlots.Day, slot.Label()) != nil {
				continue
			}
			live, err := s.sessions.FindUpcomingForSlot(ctx, old.MentorID, daySlots.Day, slot.Label(), today, models.ActiveStatuses)
			if err != nil {
				return fmt.Errorf("failed to check live sessions: %w", err)
			}
			if live != nil {
				return utils.Errf(utils.CodeConflict,
					"cannot remove slot %q on %s: a session is still booked on %s",
					slot.Label(), daySlots.Day, live.Date)
			}
		}
	}
	return nil
}

// buildTemplate validates the input and normalizes it into a stored template.
// Client-supplied booking markers are discarded.
func buildTemplate(mentorID string, input models.SetAvailabilityInput) (*models.MentorAvailability, error) {
	if len(input.AvailableDays) == 0 || len(input.SlotsPerDay) == 0 {
		return nil, utils.Errf(utils.CodeInvalidInput, "availability must list at least one day with slots")
	}

	days := make(map[string]bool, len(input.AvailableDays))
	for _, day := range input.AvailableDays {
		if !booking.IsWeekdayName(day) {
			return nil, utils.Errf(utils.CodeInvalidInput, "invalid day: %s", day)
		}
		if days[day] {
			return nil, utils.Errf(utils.CodeInvalidInput, "duplicate day: %s", day)
		}
		days[day] = true
	}

	seen := make(map[string]bool, len(input.SlotsPerDay))
	slotsPerDay := make([]models.DaySlots, 0, len(input.SlotsPerDay))
	for _, daySlots := range input.SlotsPerDay {
		if !days[daySlots.Day] {
			return nil, utils.Errf(utils.CodeInvalidInput, "slots given for %s, which is not in availableDays", daySlots.Day)
		}
		if seen[daySlots.Day] {
			return nil, utils.Errf(utils.CodeInvalidInput, "duplicate slot list for %s", daySlots.Day)
		}
		seen[daySlots.Day] = true

		slots, err := validateDaySlots(daySlots)
		if err != nil {
			return nil, err
		}
		slotsPerDay = append(slotsPerDay, models.DaySlots{Day: daySlots.Day, Slots: slots})
	}
	for day := range days {
		if !seen[day] {
			return nil, utils.Errf(utils.CodeInvalidInput, "no slots given for %s", day)
		}
	}

	return &models.MentorAvailability{
		MentorID:      mentorID,
		AvailableDays: input.AvailableDays,
		SlotsPerDay:   slotsPerDay,
	}, nil
}

type slotInterval struct {
	start, end int
	label      string
}

func validateDaySlots(daySlots models.DaySlots) ([]models.TimeSlot, error) {
	if len(daySlots.Slots) == 0 {
		return nil, utils.Errf(utils.CodeInvalidInput, "no slots given for %s", daySlots.Day)
	}

	intervals := make([]slotInterval, 0, len(daySlots.Slots))
	slots := make([]models.TimeSlot, 0, len(daySlots.Slots))
	for _, slot := range daySlots.Slots {
		start, err := booking.ParseClockMinutes(slot.StartTime)
		if err != nil {
			return nil, utils.Errf(utils.CodeInvalidInput, "%s: %v", daySlots.Day, err)
		}
		end, err := booking.ParseClockMinutes(slot.EndTime)
		if err != nil {
			return nil, utils.Errf(utils.CodeInvalidInput, "%s: %v", daySlots.Day, err)
		}
		if end <= start {
			return nil, utils.Errf(utils.CodeInvalidInput, "%s: slot %q ends before it starts", daySlots.Day, slot.Label())
		}
		for _, other := range intervals {
			if other.label == slot.Label() {
				return nil, utils.Errf(utils.CodeInvalidInput, "%s: duplicate slot %q", daySlots.Day, slot.Label())
			}
			if start < other.end && other.start < end {
				return nil, utils.Errf(utils.CodeInvalidInput, "%s: slot %q overlaps %q", daySlots.Day, slot.Label(), other.label)
			}
		}
		intervals = append(intervals, slotInterval{start: start, end: end, label: slot.Label()})
		slots = append(slots, models.TimeSlot{StartTime: slot.StartTime, EndTime: slot.EndTime})
	}
	return slots, nil
}
