package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	sessionRepo "mentorify/database/repository/session"
	"mentorify/models"
	"mentorify/utils"
)

// --- fakes ---

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

type fakeNotifier struct {
	mu    sync.Mutex
	sends int
}

func (n *fakeNotifier) Send(to, subject, htmlBody string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sends++
	return nil
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sends
}

func hasStatus(statuses []string, s string) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.MentorID == session.MentorID && s.Date == session.Date &&
			s.TimeSlot == session.TimeSlot && hasStatus(models.ActiveStatuses, s.Status) {
			return sessionRepo.ErrDuplicateActiveSession
		}
	}
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) FindConflicting(ctx context.Context, mentorID, date, timeSlot string, statuses []string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.MentorID == mentorID && s.Date == date && s.TimeSlot == timeSlot && hasStatus(statuses, s.Status) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindActiveForMentee(ctx context.Context, menteeID string, statuses []string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.MenteeID == menteeID && hasStatus(statuses, s.Status) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindUpcomingForSlot(ctx context.Context, mentorID, day, timeSlot, fromDate string, statuses []string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.MentorID == mentorID && s.Day == day && s.TimeSlot == timeSlot &&
			s.Date >= fromDate && hasStatus(statuses, s.Status) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) UpdateStatus(ctx context.Context, id string, expected []string, next string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || !hasStatus(expected, s.Status) {
		return nil, nil
	}
	s.Status = next
	s.UpdatedAt = time.Now()
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) SetMeetingLink(ctx context.Context, id, link string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.MeetingLink = link
	}
	return nil
}

func (r *fakeSessionRepo) AttachReview(ctx context.Context, sessionID, reviewID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[sessionID]; ok {
		s.ReviewID = reviewID
	}
	return nil
}

func (r *fakeSessionRepo) list(filter func(*models.Session) bool) []models.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Session
	for _, s := range r.sessions {
		if filter(s) {
			out = append(out, *s)
		}
	}
	return out
}

func (r *fakeSessionRepo) ListForMentee(ctx context.Context, menteeID string, statuses []string, fromDate string) ([]models.Session, error) {
	return r.list(func(s *models.Session) bool {
		return s.MenteeID == menteeID && hasStatus(statuses, s.Status) &&
			(fromDate == "" || s.Date >= fromDate)
	}), nil
}

func (r *fakeSessionRepo) ListForMentor(ctx context.Context, mentorID string, statuses []string, fromDate string) ([]models.Session, error) {
	return r.list(func(s *models.Session) bool {
		return s.MentorID == mentorID && hasStatus(statuses, s.Status) &&
			(fromDate == "" || s.Date >= fromDate)
	}), nil
}

func (r *fakeSessionRepo) ListPendingBefore(ctx context.Context, date string) ([]models.Session, error) {
	return r.list(func(s *models.Session) bool {
		return s.Status == models.SessionPending && s.Date < date
	}), nil
}

func (r *fakeSessionRepo) ListPendingOn(ctx context.Context, date string) ([]models.Session, error) {
	return r.list(func(s *models.Session) bool {
		return s.Status == models.SessionPending && s.Date == date
	}), nil
}

type fakeAvailabilityRepo struct {
	mu  sync.Mutex
	tpl *models.MentorAvailability
}

func (r *fakeAvailabilityRepo) Create(ctx context.Context, tpl *models.MentorAvailability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tpl = tpl
	return nil
}

func (r *fakeAvailabilityRepo) GetByMentorID(ctx context.Context, mentorID string) (*models.MentorAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tpl == nil || r.tpl.MentorID != mentorID {
		return nil, nil
	}
	return r.tpl, nil
}

func (r *fakeAvailabilityRepo) Replace(ctx context.Context, tpl *models.MentorAvailability) error {
	return r.Create(ctx, tpl)
}

func (r *fakeAvailabilityRepo) MarkSlotBooked(ctx context.Context, mentorID, day, timeSlot, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot := r.tpl.FindSlot(day, timeSlot); slot != nil {
		slot.BookedDates = append(slot.BookedDates, date)
	}
	return nil
}

func (r *fakeAvailabilityRepo) ClearSlotBooking(ctx context.Context, mentorID, day, timeSlot, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot := r.tpl.FindSlot(day, timeSlot)
	if slot == nil {
		return nil
	}
	kept := slot.BookedDates[:0]
	for _, d := range slot.BookedDates {
		if d != date {
			kept = append(kept, d)
		}
	}
	slot.BookedDates = kept
	return nil
}

type fakeMentorRepo struct {
	mentor *models.Mentor
}

func (r *fakeMentorRepo) Create(ctx context.Context, m *models.Mentor) error { return nil }
func (r *fakeMentorRepo) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	if r.mentor != nil && r.mentor.ID == id {
		return r.mentor, nil
	}
	return nil, nil
}
func (r *fakeMentorRepo) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	return nil, nil
}
func (r *fakeMentorRepo) GetByTokenHash(ctx context.Context, hash string) (*models.Mentor, error) {
	return nil, nil
}
func (r *fakeMentorRepo) Update(ctx context.Context, m *models.Mentor) error { return nil }
func (r *fakeMentorRepo) Delete(ctx context.Context, id string) error        { return nil }
func (r *fakeMentorRepo) SetTokenHash(ctx context.Context, id, hash string) error {
	return nil
}
func (r *fakeMentorRepo) SetApproved(ctx context.Context, id string, approved bool) (*models.Mentor, error) {
	return nil, nil
}
func (r *fakeMentorRepo) List(ctx context.Context, approvedOnly bool) ([]models.Mentor, error) {
	return nil, nil
}
func (r *fakeMentorRepo) ListPending(ctx context.Context) ([]models.Mentor, error) {
	return nil, nil
}
func (r *fakeMentorRepo) ApplyReviewRating(ctx context.Context, mentorID string, rating int) error {
	return nil
}

type fakeMenteeRepo struct {
	mentee *models.Mentee
}

func (r *fakeMenteeRepo) Create(ctx context.Context, m *models.Mentee) error { return nil }
func (r *fakeMenteeRepo) GetByID(ctx context.Context, id string) (*models.Mentee, error) {
	if r.mentee != nil && r.mentee.ID == id {
		return r.mentee, nil
	}
	return nil, nil
}
func (r *fakeMenteeRepo) GetByEmail(ctx context.Context, email string) (*models.Mentee, error) {
	return nil, nil
}
func (r *fakeMenteeRepo) GetByTokenHash(ctx context.Context, hash string) (*models.Mentee, error) {
	return nil, nil
}
func (r *fakeMenteeRepo) SetTokenHash(ctx context.Context, id, hash string) error { return nil }
func (r *fakeMenteeRepo) List(ctx context.Context) ([]models.Mentee, error)       { return nil, nil }

// --- harness ---

type harness struct {
	svc      *DefaultBookingService
	sessions *fakeSessionRepo
	avail    *fakeAvailabilityRepo
	clock    *fakeClock
	notifier *fakeNotifier
}

// newHarness wires the orchestrator against fakes. The clock starts on
// Monday 2026-03-02 at 09:00 UTC.
func newHarness() *harness {
	sessions := newFakeSessionRepo()
	avail := &fakeAvailabilityRepo{tpl: testTemplate()}
	clock := &fakeClock{t: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	mentors := &fakeMentorRepo{mentor: &models.Mentor{
		ID: "mentor-1", Name: "Asha", Email: "asha@example.com", Approved: true,
	}}
	mentees := &fakeMenteeRepo{mentee: &models.Mentee{
		ID: "mentee-1", Name: "Ben", Email: "ben@example.com",
	}}
	notifier := &fakeNotifier{}
	svc := NewBookingService(sessions, avail, mentors, mentees, notifier, clock)
	return &harness{svc: svc, sessions: sessions, avail: avail, clock: clock, notifier: notifier}
}

func (h *harness) book(t *testing.T, menteeID string) *models.Session {
	t.Helper()
	session, err := h.svc.Book(context.Background(), menteeID, models.BookSessionInput{
		MentorID: "mentor-1",
		Day:      "Monday",
		Date:     "2026-03-09",
		TimeSlot: "10:00 AM - 11:00 AM",
	})
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	return session
}

// --- tests ---

func TestBook(t *testing.T) {
	t.Run("creates a pending session and marks the slot", func(t *testing.T) {
		h := newHarness()
		session := h.book(t, "mentee-1")

		if session.Status != models.SessionPending {
			t.Errorf("status = %s, want pending", session.Status)
		}
		if session.TimeSlot != "10:00 AM - 11:00 AM" {
			t.Errorf("timeSlot = %s", session.TimeSlot)
		}
		slot := h.avail.tpl.FindSlot("Monday", "10:00 AM - 11:00 AM")
		if !slot.IsBookedOn("2026-03-09") {
			t.Error("slot not marked booked for the session date")
		}
	})

	t.Run("rejects a slot already held by another mentee", func(t *testing.T) {
		h := newHarness()
		h.book(t, "mentee-1")

		_, err := h.svc.Book(context.Background(), "mentee-2", models.BookSessionInput{
			MentorID: "mentor-1", Day: "Monday", Date: "2026-03-09", TimeSlot: "10:00 AM - 11:00 AM",
		})
		if code := errCode(t, err); code != utils.CodeConflict {
			t.Errorf("code = %s, want CONFLICT", code)
		}
	})

	t.Run("same slot on another date stays bookable", func(t *testing.T) {
		h := newHarness()
		h.book(t, "mentee-1")

		_, err := h.svc.Book(context.Background(), "mentee-2", models.BookSessionInput{
			MentorID: "mentor-1", Day: "Monday", Date: "2026-03-16", TimeSlot: "10:00 AM - 11:00 AM",
		})
		if err != nil {
			t.Fatalf("Book failed: %v", err)
		}
	})

	t.Run("rejects a mentee who already has an active session", func(t *testing.T) {
		h := newHarness()
		h.book(t, "mentee-1")

		_, err := h.svc.Book(context.Background(), "mentee-1", models.BookSessionInput{
			MentorID: "mentor-1", Day: "Monday", Date: "2026-03-16", TimeSlot: "2:00 PM - 3:00 PM",
		})
		if code := errCode(t, err); code != utils.CodeConflict {
			t.Errorf("code = %s, want CONFLICT", code)
		}
	})

	t.Run("slot reopens after the holding session is cancelled", func(t *testing.T) {
		h := newHarness()
		first := h.book(t, "mentee-1")

		if _, err := h.svc.Cancel(context.Background(), "mentee-1", models.RoleMentee, first.ID); err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}
		if _, err := h.svc.Book(context.Background(), "mentee-2", models.BookSessionInput{
			MentorID: "mentor-1", Day: "Monday", Date: "2026-03-09", TimeSlot: "10:00 AM - 11:00 AM",
		}); err != nil {
			t.Fatalf("rebook after cancel failed: %v", err)
		}
	})

	t.Run("rejects an unknown mentor", func(t *testing.T) {
		h := newHarness()
		_, err := h.svc.Book(context.Background(), "mentee-1", models.BookSessionInput{
			MentorID: "mentor-9", Day: "Monday", Date: "2026-03-09", TimeSlot: "10:00 AM - 11:00 AM",
		})
		if code := errCode(t, err); code != utils.CodeNotFound {
			t.Errorf("code = %s, want NOT_FOUND", code)
		}
	})

	t.Run("rejects a past date", func(t *testing.T) {
		h := newHarness()
		_, err := h.svc.Book(context.Background(), "mentee-1", models.BookSessionInput{
			MentorID: "mentor-1", Day: "Monday", Date: "2026-02-23", TimeSlot: "10:00 AM - 11:00 AM",
		})
		if code := errCode(t, err); code != utils.CodeInvalidInput {
			t.Errorf("code = %s, want INVALID_INPUT", code)
		}
	})
}

func TestAccept(t *testing.T) {
	t.Run("confirms a pending session", func(t *testing.T) {
		h := newHarness()
		session := h.book(t, "mentee-1")

		updated, err := h.svc.Accept(context.Background(), "mentor-1", session.ID)
		if err != nil {
			t.Fatalf("Accept failed: %v", err)
		}
		if updated.Status != models.SessionConfirmed {
			t.Errorf("status = %s, want confirmed", updated.Status)
		}
	})

	t.Run("rejects a mentor who does not own the session", func(t *testing.T) {
		h := newHarness()
		session := h.book(t, "mentee-1")

		_, err := h.svc.Accept(context.Background(), "mentor-2", session.ID)
		if code := errCode(t, err); code != utils.CodeForbidden {
			t.Errorf("code = %s, want FORBIDDEN", code)
		}
	})

	t.Run("rejects a second accept", func(t *testing.T) {
		h := newHarness()
		session := h.book(t, "mentee-1")
		if _, err := h.svc.Accept(context.Background(), "mentor-1", session.ID); err != nil {
			t.Fatalf("Accept failed: %v", err)
		}

		_, err := h.svc.Accept(context.Background(), "mentor-1", session.ID)
		if code := errCode(t, err); code != utils.CodeConflict {
			t.Errorf("code = %s, want CONFLICT", code)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		h := newHarness()
		_, err := h.svc.Accept(context.Background(), "mentor-1", "nope")
		if code := errCode(t, err); code != utils.CodeNotFound {
			t.Errorf("code = %s, want NOT_FOUND", code)
		}
	})
}

func TestCancel(t *testing.T) {
	t.Run("mentee cancels their pending session and frees the slot", func(t *testing.T) {
		h := newHarness()
		session := h.book(t, "mentee-1")

		updated, err := h.svc.Cancel(context.Background(), "mentee-1", models.RoleMentee, session.ID)
		if err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}
		if updated.Status != models.SessionCancelled {
			t.Errorf("status = %s, want cancelled", updated.Status)
		}
		slot := h.avail.tpl.FindSlot("Monday", "10:00 AM - 11:00 AM")
		if slot.IsBookedOn("2026-03-09") {
			t.Error("slot marker not cleared after cancellation")
		}
	})

	t.Run("mentor cancels a confirmed session", func(t *testing.T) {
		h := newHarness()
		session := h.book(t, "mentee-1")
		if _, err := h.svc.Accept(context.Background(), "mentor-1", session.ID); err != nil {
			t.Fatalf("Accept failed: %v", err)
		}

		updated, err := h.svc.Cancel(context.Background(), "mentor-1", models.RoleMentor, session.ID)
		if err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}
		if updated.Status != models.SessionCancelled {
			t.Errorf("status = %s, want cancelled", updated.Status)
		}
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		h := newHarness()
		session := h.book(t, "mentee-1")

		_, err := h.svc.Cancel(context.Background(), "mentee-2", models.RoleMentee, session.ID)
		if code := errCode(t, err); code != utils.CodeForbidden {
			t.Errorf("code = %s, want FORBIDDEN", code)
		}
	})

	t.Run("cancelled session cannot be cancelled again", func(t *testing.T) {
		h := newHarness()
		session := h.book(t, "mentee-1")
		if _, err := h.svc.Cancel(context.Background(), "mentee-1", models.RoleMentee, session.ID); err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}

		_, err := h.svc.Cancel(context.Background(), "mentee-1", models.RoleMentee, session.ID)
		if code := errCode(t, err); code != utils.CodeConflict {
			t.Errorf("code = %s, want CONFLICT", code)
		}
	})
}

func TestComplete(t *testing.T) {
	t.Run("rejected before the slot ends", func(t *testing.T) {
		h := newHarness()
		session := h.book(t, "mentee-1")
		if _, err := h.svc.Accept(context.Background(), "mentor-1", session.ID); err != nil {
			t.Fatalf("Accept failed: %v", err)
		}

		// Mid-session: the slot runs 10:00 to 11:00 on 2026-03-09.
		h.clock.Set(time.Date(2026, 3, 9, 10, 30, 0, 0, time.UTC))
		_, err := h.svc.Complete(context.Background(), "mentor-1", session.ID)
		if code := errCode(t, err); code != utils.CodeTooEarly {
			t.Errorf("code = %s, want TOO_EARLY", code)
		}
	})

	t.Run("allowed once the slot has ended", func(t *testing.T) {
		h := newHarness()
		session := h.book(t, "mentee-1")
		if _, err := h.svc.Accept(context.Background(), "mentor-1", session.ID); err != nil {
			t.Fatalf("Accept failed: %v", err)
		}

		h.clock.Set(time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC))
		updated, err := h.svc.Complete(context.Background(), "mentor-1", session.ID)
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if updated.Status != models.SessionCompleted {
			t.Errorf("status = %s, want completed", updated.Status)
		}
		slot := h.avail.tpl.FindSlot("Monday", "10:00 AM - 11:00 AM")
		if slot.IsBookedOn("2026-03-09") {
			t.Error("slot marker not cleared after completion")
		}
	})

	t.Run("pending session cannot be completed", func(t *testing.T) {
		h := newHarness()
		session := h.book(t, "mentee-1")

		h.clock.Set(time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC))
		_, err := h.svc.Complete(context.Background(), "mentor-1", session.ID)
		if code := errCode(t, err); code != utils.CodeConflict {
			t.Errorf("code = %s, want CONFLICT", code)
		}
	})
}

func TestMeetingLink(t *testing.T) {
	h := newHarness()
	session := h.book(t, "mentee-1")

	t.Run("cannot attach to a pending session", func(t *testing.T) {
		_, err := h.svc.AddMeetingLink(context.Background(), "mentor-1", session.ID, "https://meet.example.com/x")
		if code := errCode(t, err); code != utils.CodeConflict {
			t.Errorf("code = %s, want CONFLICT", code)
		}
	})

	if _, err := h.svc.Accept(context.Background(), "mentor-1", session.ID); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	t.Run("rejects non-https links", func(t *testing.T) {
		_, err := h.svc.AddMeetingLink(context.Background(), "mentor-1", session.ID, "meet.example.com/x")
		if code := errCode(t, err); code != utils.CodeInvalidInput {
			t.Errorf("code = %s, want INVALID_INPUT", code)
		}
	})

	t.Run("link missing until the mentor adds it", func(t *testing.T) {
		_, err := h.svc.GetMeetingLink(context.Background(), "mentee-1", session.ID)
		if code := errCode(t, err); code != utils.CodeNotFound {
			t.Errorf("code = %s, want NOT_FOUND", code)
		}
	})

	t.Run("mentee reads the attached link", func(t *testing.T) {
		if _, err := h.svc.AddMeetingLink(context.Background(), "mentor-1", session.ID, "https://meet.example.com/x"); err != nil {
			t.Fatalf("AddMeetingLink failed: %v", err)
		}
		link, err := h.svc.GetMeetingLink(context.Background(), "mentee-1", session.ID)
		if err != nil {
			t.Fatalf("GetMeetingLink failed: %v", err)
		}
		if link != "https://meet.example.com/x" {
			t.Errorf("link = %s", link)
		}
	})

	t.Run("only the session's mentee reads the link", func(t *testing.T) {
		_, err := h.svc.GetMeetingLink(context.Background(), "mentee-2", session.ID)
		if code := errCode(t, err); code != utils.CodeForbidden {
			t.Errorf("code = %s, want FORBIDDEN", code)
		}
	})
}

func TestSweepExpiredSessions(t *testing.T) {
	h := newHarness()
	session := h.book(t, "mentee-1")

	// A confirmed session for another mentee, also in the past after the
	// clock moves. Confirmed sessions must survive the sweep.
	other, err := h.svc.Book(context.Background(), "mentee-2", models.BookSessionInput{
		MentorID: "mentor-1", Day: "Monday", Date: "2026-03-09", TimeSlot: "2:00 PM - 3:00 PM",
	})
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	if _, err := h.svc.Accept(context.Background(), "mentor-1", other.ID); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	// A pending session later the same week stays untouched.
	future, err := h.svc.Book(context.Background(), "mentee-3", models.BookSessionInput{
		MentorID: "mentor-1", Day: "Wednesday", Date: "2026-03-11", TimeSlot: "9:00 AM - 10:00 AM",
	})
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	// Tuesday morning: Monday's pending request has expired.
	h.clock.Set(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	cancelled, err := h.svc.SweepExpiredSessions(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if cancelled != 1 {
		t.Fatalf("cancelled = %d, want 1", cancelled)
	}

	got, _ := h.sessions.GetByID(context.Background(), session.ID)
	if got.Status != models.SessionCancelled {
		t.Errorf("expired session status = %s, want cancelled", got.Status)
	}
	got, _ = h.sessions.GetByID(context.Background(), other.ID)
	if got.Status != models.SessionConfirmed {
		t.Errorf("confirmed session status = %s, want confirmed", got.Status)
	}
	got, _ = h.sessions.GetByID(context.Background(), future.ID)
	if got.Status != models.SessionPending {
		t.Errorf("future session status = %s, want pending", got.Status)
	}

	t.Run("same-day pending expires once its slot ends", func(t *testing.T) {
		h.clock.Set(time.Date(2026, 3, 11, 10, 30, 0, 0, time.UTC))
		cancelled, err := h.svc.SweepExpiredSessions(context.Background())
		if err != nil {
			t.Fatalf("sweep failed: %v", err)
		}
		if cancelled != 1 {
			t.Fatalf("cancelled = %d, want 1", cancelled)
		}
		got, _ := h.sessions.GetByID(context.Background(), future.ID)
		if got.Status != models.SessionCancelled {
			t.Errorf("status = %s, want cancelled", got.Status)
		}
	})
}

func TestDashboards(t *testing.T) {
	h := newHarness()
	session := h.book(t, "mentee-1")

	dash, err := h.svc.MenteeDashboard(context.Background(), "mentee-1")
	if err != nil {
		t.Fatalf("MenteeDashboard failed: %v", err)
	}
	if len(dash.Pending) != 1 || dash.Pending[0].ID != session.ID {
		t.Errorf("pending = %+v", dash.Pending)
	}
	if len(dash.Upcoming) != 0 || len(dash.History) != 0 {
		t.Errorf("unexpected upcoming/history: %+v %+v", dash.Upcoming, dash.History)
	}

	if _, err := h.svc.Accept(context.Background(), "mentor-1", session.ID); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	dash, err = h.svc.MentorDashboard(context.Background(), "mentor-1")
	if err != nil {
		t.Fatalf("MentorDashboard failed: %v", err)
	}
	if len(dash.Pending) != 0 || len(dash.Upcoming) != 1 {
		t.Errorf("pending/upcoming = %+v %+v", dash.Pending, dash.Upcoming)
	}

	h.clock.Set(time.Date(2026, 3, 9, 11, 30, 0, 0, time.UTC))
	if _, err := h.svc.Complete(context.Background(), "mentor-1", session.ID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	dash, err = h.svc.MenteeDashboard(context.Background(), "mentee-1")
	if err != nil {
		t.Fatalf("MenteeDashboard failed: %v", err)
	}
	if len(dash.History) != 1 || dash.History[0].Status != models.SessionCompleted {
		t.Errorf("history = %+v", dash.History)
	}
}

func TestLifecycleNotifications(t *testing.T) {
	h := newHarness()
	session := h.book(t, "mentee-1")

	if _, err := h.svc.Accept(context.Background(), "mentor-1", session.ID); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if _, err := h.svc.Cancel(context.Background(), "mentor-1", models.RoleMentor, session.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	// Booking mails both parties; confirmation and cancellation mail the
	// mentee. Delivery is dispatched asynchronously, so poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for h.notifier.count() < 4 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := h.notifier.count(); got != 4 {
		t.Errorf("notifications sent = %d, want 4", got)
	}
}
