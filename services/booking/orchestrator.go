package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	availabilityRepo "mentorify/database/repository/availability"
	menteeRepo "mentorify/database/repository/mentee"
	mentorRepo "mentorify/database/repository/mentor"
	sessionRepo "mentorify/database/repository/session"
	"mentorify/models"
	"mentorify/services/notification"
	"mentorify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService over the Mongo ledger.
type DefaultBookingService struct {
	sessions     sessionRepo.SessionRepository
	availability availabilityRepo.AvailabilityRepository
	mentors      mentorRepo.MentorRepository
	mentees      menteeRepo.MenteeRepository
	notifier     notification.Notifier
	clock        Clock
}

// NewBookingService wires the orchestrator. A nil clock defaults to the
// system clock.
func NewBookingService(
	sessions sessionRepo.SessionRepository,
	availability availabilityRepo.AvailabilityRepository,
	mentors mentorRepo.MentorRepository,
	mentees menteeRepo.MenteeRepository,
	notifier notification.Notifier,
	clock Clock,
) *DefaultBookingService {
	if clock == nil {
		clock = SystemClock
	}
	return &DefaultBookingService{
		sessions:     sessions,
		availability: availability,
		mentors:      mentors,
		mentees:      mentees,
		notifier:     notifier,
		clock:        clock,
	}
}

func (s *DefaultBookingService) Book(ctx context.Context, menteeID string, input models.BookSessionInput) (*models.Session, error) {
	mentor, err := s.mentors.GetByID(ctx, input.MentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentor: %w", err)
	}
	if mentor == nil || !mentor.Approved {
		return nil, utils.Errf(utils.CodeNotFound, "mentor %s not found", input.MentorID)
	}

	tpl, err := s.availability.GetByMentorID(ctx, input.MentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if tpl == nil {
		return nil, errMentorUnavailable()
	}

	active, err := s.sessions.FindActiveForMentee(ctx, menteeID, models.ActiveStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to check mentee sessions: %w", err)
	}
	if active != nil {
		return nil, errActiveSessionExists()
	}

	slot, err := ResolveSlot(ctx, tpl, input.Day, input.Date, input.TimeSlot, s.clock.Now(), s.ledgerConflict)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := &models.Session{
		ID:        uuid.NewString(),
		MentorID:  input.MentorID,
		MenteeID:  menteeID,
		Day:       input.Day,
		Date:      input.Date,
		TimeSlot:  slot.Label(),
		Message:   input.Message,
		Status:    models.SessionPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		// The partial unique index closes the check-then-write race.
		if errors.Is(err, sessionRepo.ErrDuplicateActiveSession) {
			return nil, errAlreadyBooked(input.Date, input.TimeSlot)
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.availability.MarkSlotBooked(ctx, input.MentorID, input.Day, slot.Label(), input.Date); err != nil {
		utils.GetLogger().Warn("failed to mark slot booked",
			zap.String("sessionId", session.ID), zap.Error(err))
	}

	s.notifyBooked(ctx, session, mentor)
	return session, nil
}

func (s *DefaultBookingService) Accept(ctx context.Context, mentorID, sessionID string) (*models.Session, error) {
	session, err := s.ownedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.MentorID != mentorID {
		return nil, errNotSessionOwner()
	}

	updated, err := s.sessions.UpdateStatus(ctx, sessionID, []string{models.SessionPending}, models.SessionConfirmed)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm session: %w", err)
	}
	if updated == nil {
		return nil, errNotPending()
	}

	s.notifyStatus(ctx, updated, notification.SessionConfirmed)
	return updated, nil
}

func (s *DefaultBookingService) Cancel(ctx context.Context, actorID, actorRole, sessionID string) (*models.Session, error) {
	session, err := s.ownedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch actorRole {
	case models.RoleMentor:
		if session.MentorID != actorID {
			return nil, errNotSessionOwner()
		}
	case models.RoleMentee:
		if session.MenteeID != actorID {
			return nil, errNotSessionOwner()
		}
	default:
		return nil, errNotSessionOwner()
	}

	updated, err := s.sessions.UpdateStatus(ctx, sessionID, models.ActiveStatuses, models.SessionCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel session: %w", err)
	}
	if updated == nil {
		return nil, errNotActive()
	}

	s.releaseSlot(ctx, updated)
	s.notifyCancelled(ctx, updated, actorRole)
	return updated, nil
}

func (s *DefaultBookingService) Complete(ctx context.Context, mentorID, sessionID string) (*models.Session, error) {
	session, err := s.ownedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.MentorID != mentorID {
		return nil, errNotSessionOwner()
	}
	if session.Status != models.SessionConfirmed {
		return nil, errNotConfirmed()
	}

	end, err := slotEndInstant(session.Date, session.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to compute session end: %w", err)
	}
	if s.clock.Now().Before(end) {
		return nil, errTooEarly()
	}

	updated, err := s.sessions.UpdateStatus(ctx, sessionID, []string{models.SessionConfirmed}, models.SessionCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}
	if updated == nil {
		return nil, errNotConfirmed()
	}

	s.releaseSlot(ctx, updated)
	return updated, nil
}

func (s *DefaultBookingService) AddMeetingLink(ctx context.Context, mentorID, sessionID, link string) (*models.Session, error) {
	if !strings.HasPrefix(link, "https://") {
		return nil, errInvalidMeetingLink(link)
	}
	session, err := s.ownedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.MentorID != mentorID {
		return nil, errNotSessionOwner()
	}
	if session.Status != models.SessionConfirmed {
		return nil, errNotConfirmed()
	}

	if err := s.sessions.SetMeetingLink(ctx, sessionID, link); err != nil {
		return nil, fmt.Errorf("failed to set meeting link: %w", err)
	}
	session.MeetingLink = link

	mentee, mentor, err := s.participants(ctx, session)
	if err != nil {
		utils.GetLogger().Warn("failed to load participants for meeting link email", zap.Error(err))
		return session, nil
	}
	subject, body := notification.MeetingLinkAdded(
		mentee.Name, mentor.Name, formatLongDate(session.Date), session.TimeSlot, link)
	notification.SendAsync(s.notifier, mentee.Email, subject, body)
	return session, nil
}

func (s *DefaultBookingService) GetMeetingLink(ctx context.Context, menteeID, sessionID string) (string, error) {
	session, err := s.ownedSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session.MenteeID != menteeID {
		return "", errNotSessionOwner()
	}
	if session.MeetingLink == "" {
		return "", errMeetingLinkMissing()
	}
	return session.MeetingLink, nil
}

func (s *DefaultBookingService) MenteeDashboard(ctx context.Context, menteeID string) (*Dashboard, error) {
	return s.dashboard(ctx, menteeID, s.sessions.ListForMentee)
}

func (s *DefaultBookingService) MentorDashboard(ctx context.Context, mentorID string) (*Dashboard, error) {
	return s.dashboard(ctx, mentorID, s.sessions.ListForMentor)
}

type sessionLister func(ctx context.Context, ownerID string, statuses []string, fromDate string) ([]models.Session, error)

func (s *DefaultBookingService) dashboard(ctx context.Context, ownerID string, list sessionLister) (*Dashboard, error) {
	today := s.clock.Now().UTC().Format(dateLayout)

	pending, err := list(ctx, ownerID, []string{models.SessionPending}, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending sessions: %w", err)
	}
	upcoming, err := list(ctx, ownerID, []string{models.SessionConfirmed}, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming sessions: %w", err)
	}
	history, err := list(ctx, ownerID, []string{models.SessionCompleted, models.SessionCancelled}, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list session history: %w", err)
	}
	return &Dashboard{Pending: pending, Upcoming: upcoming, History: history}, nil
}

// SweepExpiredSessions cancels pending requests whose slot end has passed.
// Sessions dated before today expire outright; today's pending sessions
// expire once their slot's end time is behind the clock. Confirmed sessions
// are never swept, completion stays a mentor action.
func (s *DefaultBookingService) SweepExpiredSessions(ctx context.Context) (int, error) {
	now := s.clock.Now().UTC()
	today := now.Format(dateLayout)

	expired, err := s.sessions.ListPendingBefore(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired sessions: %w", err)
	}
	todays, err := s.sessions.ListPendingOn(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to list today's pending sessions: %w", err)
	}
	for _, session := range todays {
		end, err := slotEndInstant(session.Date, session.TimeSlot)
		if err != nil {
			utils.GetLogger().Warn("skipping session with unparseable slot",
				zap.String("sessionId", session.ID), zap.Error(err))
			continue
		}
		if !now.Before(end) {
			expired = append(expired, session)
		}
	}

	cancelled := 0
	for i := range expired {
		updated, err := s.sessions.UpdateStatus(ctx, expired[i].ID, []string{models.SessionPending}, models.SessionCancelled)
		if err != nil {
			utils.GetLogger().Error("failed to expire session",
				zap.String("sessionId", expired[i].ID), zap.Error(err))
			continue
		}
		if updated == nil {
			continue
		}
		s.releaseSlot(ctx, updated)
		s.notifyCancelled(ctx, updated, models.RoleMentor)
		cancelled++
	}
	if cancelled > 0 {
		utils.GetLogger().Info("expired pending sessions cancelled", zap.Int("count", cancelled))
	}
	return cancelled, nil
}

// ledgerConflict is the ConflictQuery backing slot resolution.
func (s *DefaultBookingService) ledgerConflict(ctx context.Context, mentorID, date, timeSlot string) (bool, error) {
	taken, err := s.sessions.FindConflicting(ctx, mentorID, date, timeSlot, models.ActiveStatuses)
	if err != nil {
		return false, err
	}
	return taken != nil, nil
}

// ownedSession loads a session or maps its absence to the caller-facing error.
func (s *DefaultBookingService) ownedSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, errSessionNotFound(sessionID)
	}
	return session, nil
}

// releaseSlot clears the availability booking marker after a session leaves
// the active set. Marker drift is logged, never surfaced.
func (s *DefaultBookingService) releaseSlot(ctx context.Context, session *models.Session) {
	err := s.availability.ClearSlotBooking(ctx, session.MentorID, session.Day, session.TimeSlot, session.Date)
	if err != nil {
		utils.GetLogger().Warn("failed to clear slot booking marker",
			zap.String("sessionId", session.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) participants(ctx context.Context, session *models.Session) (*models.Mentee, *models.Mentor, error) {
	mentee, err := s.mentees.GetByID(ctx, session.MenteeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load mentee: %w", err)
	}
	mentor, err := s.mentors.GetByID(ctx, session.MentorID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load mentor: %w", err)
	}
	if mentee == nil || mentor == nil {
		return nil, nil, fmt.Errorf("session %s references a missing participant", session.ID)
	}
	return mentee, mentor, nil
}

func (s *DefaultBookingService) notifyBooked(ctx context.Context, session *models.Session, mentor *models.Mentor) {
	mentee, err := s.mentees.GetByID(ctx, session.MenteeID)
	if err != nil || mentee == nil {
		utils.GetLogger().Warn("failed to load mentee for booking emails",
			zap.String("sessionId", session.ID), zap.Error(err))
		return
	}
	date := formatLongDate(session.Date)
	subject, body := notification.BookingRequestedMentee(mentee.Name, mentor.Name, date, session.TimeSlot)
	notification.SendAsync(s.notifier, mentee.Email, subject, body)
	subject, body = notification.BookingRequestedMentor(mentor.Name, mentee.Name, date, session.TimeSlot, session.Message)
	notification.SendAsync(s.notifier, mentor.Email, subject, body)
}

// notifyStatus mails the mentee about a lifecycle change using the given
// template. Participants load on the caller's context; delivery is async.
func (s *DefaultBookingService) notifyStatus(ctx context.Context, session *models.Session, tmpl func(menteeName, mentorName, date, timeSlot string) (string, string)) {
	mentee, mentor, err := s.participants(ctx, session)
	if err != nil {
		utils.GetLogger().Warn("failed to load participants for status email", zap.Error(err))
		return
	}
	subject, body := tmpl(mentee.Name, mentor.Name, formatLongDate(session.Date), session.TimeSlot)
	notification.SendAsync(s.notifier, mentee.Email, subject, body)
}

// notifyCancelled mails the party who did not cancel.
func (s *DefaultBookingService) notifyCancelled(ctx context.Context, session *models.Session, actorRole string) {
	mentee, mentor, err := s.participants(ctx, session)
	if err != nil {
		utils.GetLogger().Warn("failed to load participants for cancellation email", zap.Error(err))
		return
	}
	date := formatLongDate(session.Date)
	if actorRole == models.RoleMentee {
		subject, body := notification.SessionCancelled(mentor.Name, mentor.Name, date, session.TimeSlot)
		notification.SendAsync(s.notifier, mentor.Email, subject, body)
		return
	}
	subject, body := notification.SessionCancelled(mentee.Name, mentor.Name, date, session.TimeSlot)
	notification.SendAsync(s.notifier, mentee.Email, subject, body)
}
