package review

import (
	"context"
	"errors"
	"fmt"
	"testing"

	reviewRepo "mentorify/database/repository/review"
	"mentorify/models"
	"mentorify/utils"
)

type fakeReviewRepo struct {
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *models.Review) error {
	if _, ok := r.reviews[review.SessionID]; ok {
		return reviewRepo.ErrReviewExists
	}
	cp := *review
	r.reviews[review.SessionID] = &cp
	return nil
}

func (r *fakeReviewRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.Review, error) {
	if rv, ok := r.reviews[sessionID]; ok {
		cp := *rv
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeReviewRepo) ListForMentor(ctx context.Context, mentorID string) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.MentorID == mentorID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

// stubSessionRepo serves a single session and records review attachment.
type stubSessionRepo struct {
	session  *models.Session
	attached string
}

func (r *stubSessionRepo) Create(ctx context.Context, s *models.Session) error { return nil }
func (r *stubSessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	if r.session != nil && r.session.ID == id {
		cp := *r.session
		return &cp, nil
	}
	return nil, nil
}
func (r *stubSessionRepo) FindConflicting(ctx context.Context, mentorID, date, timeSlot string, statuses []string) (*models.Session, error) {
	return nil, nil
}
func (r *stubSessionRepo) FindActiveForMentee(ctx context.Context, menteeID string, statuses []string) (*models.Session, error) {
	return nil, nil
}
func (r *stubSessionRepo) FindUpcomingForSlot(ctx context.Context, mentorID, day, timeSlot, fromDate string, statuses []string) (*models.Session, error) {
	return nil, nil
}
func (r *stubSessionRepo) UpdateStatus(ctx context.Context, id string, expected []string, next string) (*models.Session, error) {
	return nil, nil
}
func (r *stubSessionRepo) SetMeetingLink(ctx context.Context, id, link string) error { return nil }
func (r *stubSessionRepo) AttachReview(ctx context.Context, sessionID, reviewID string) error {
	r.attached = reviewID
	if r.session != nil && r.session.ID == sessionID {
		r.session.ReviewID = reviewID
	}
	return nil
}
func (r *stubSessionRepo) ListForMentee(ctx context.Context, menteeID string, statuses []string, fromDate string) ([]models.Session, error) {
	return nil, nil
}
func (r *stubSessionRepo) ListForMentor(ctx context.Context, mentorID string, statuses []string, fromDate string) ([]models.Session, error) {
	return nil, nil
}
func (r *stubSessionRepo) ListPendingBefore(ctx context.Context, date string) ([]models.Session, error) {
	return nil, nil
}
func (r *stubSessionRepo) ListPendingOn(ctx context.Context, date string) ([]models.Session, error) {
	return nil, nil
}

// stubMentorRepo records the ratings folded into the summary.
type stubMentorRepo struct {
	applied []int
	summary models.RatingSummary
}

func (r *stubMentorRepo) Create(ctx context.Context, m *models.Mentor) error { return nil }
func (r *stubMentorRepo) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	return nil, nil
}
func (r *stubMentorRepo) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	return nil, nil
}
func (r *stubMentorRepo) GetByTokenHash(ctx context.Context, hash string) (*models.Mentor, error) {
	return nil, nil
}
func (r *stubMentorRepo) Update(ctx context.Context, m *models.Mentor) error { return nil }
func (r *stubMentorRepo) Delete(ctx context.Context, id string) error        { return nil }
func (r *stubMentorRepo) SetTokenHash(ctx context.Context, id, hash string) error {
	return nil
}
func (r *stubMentorRepo) SetApproved(ctx context.Context, id string, approved bool) (*models.Mentor, error) {
	return nil, nil
}
func (r *stubMentorRepo) List(ctx context.Context, approvedOnly bool) ([]models.Mentor, error) {
	return nil, nil
}
func (r *stubMentorRepo) ListPending(ctx context.Context) ([]models.Mentor, error) {
	return nil, nil
}
func (r *stubMentorRepo) ApplyReviewRating(ctx context.Context, mentorID string, rating int) error {
	r.applied = append(r.applied, rating)
	r.summary.Apply(rating)
	return nil
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	var svcErr *utils.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected a classified error, got %v", err)
	}
	return svcErr.Code
}

func completedSession() *models.Session {
	return &models.Session{
		ID:       "session-1",
		MentorID: "mentor-1",
		MenteeID: "mentee-1",
		Day:      "Monday",
		Date:     "2026-03-09",
		TimeSlot: "10:00 AM - 11:00 AM",
		Status:   models.SessionCompleted,
	}
}

func validReview() models.SubmitReviewInput {
	return models.SubmitReviewInput{
		SessionID: "session-1",
		MentorID:  "mentor-1",
		Rating:    5,
		Comment:   "Great session, very helpful.",
	}
}

func TestSubmitReview(t *testing.T) {
	t.Run("records the review and updates the mentor summary", func(t *testing.T) {
		sessions := &stubSessionRepo{session: completedSession()}
		mentors := &stubMentorRepo{}
		svc := NewReviewService(newFakeReviewRepo(), sessions, mentors)

		rv, err := svc.SubmitReview(context.Background(), "mentee-1", validReview())
		if err != nil {
			t.Fatalf("SubmitReview failed: %v", err)
		}
		if rv.Rating != 5 || rv.MentorID != "mentor-1" {
			t.Errorf("review = %+v", rv)
		}
		if sessions.attached != rv.ID {
			t.Errorf("review not attached to session: %q", sessions.attached)
		}
		if len(mentors.applied) != 1 || mentors.applied[0] != 5 {
			t.Errorf("ratings applied = %v", mentors.applied)
		}
	})

	t.Run("aggregate tracks the running weighted average", func(t *testing.T) {
		sessions := &stubSessionRepo{}
		mentors := &stubMentorRepo{}
		svc := NewReviewService(newFakeReviewRepo(), sessions, mentors)

		for i, rating := range []int{5, 5, 4} {
			session := completedSession()
			session.ID = fmt.Sprintf("session-%d", i+1)
			sessions.session = session

			input := validReview()
			input.SessionID = session.ID
			input.Rating = rating
			if _, err := svc.SubmitReview(context.Background(), "mentee-1", input); err != nil {
				t.Fatalf("SubmitReview failed: %v", err)
			}
		}

		if mentors.summary.Average != 4.67 {
			t.Errorf("average = %v, want 4.67", mentors.summary.Average)
		}
		if mentors.summary.TotalReviews != 3 {
			t.Errorf("totalReviews = %d, want 3", mentors.summary.TotalReviews)
		}
		if mentors.summary.FiveStars != 2 || mentors.summary.FourStars != 1 {
			t.Errorf("buckets = %d five / %d four, want 2 / 1",
				mentors.summary.FiveStars, mentors.summary.FourStars)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc := NewReviewService(newFakeReviewRepo(), &stubSessionRepo{session: completedSession()}, &stubMentorRepo{})
		for _, rating := range []int{0, 6, -1} {
			input := validReview()
			input.Rating = rating
			_, err := svc.SubmitReview(context.Background(), "mentee-1", input)
			if code := errCode(t, err); code != utils.CodeInvalidInput {
				t.Errorf("rating %d: code = %s, want INVALID_INPUT", rating, code)
			}
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		svc := NewReviewService(newFakeReviewRepo(), &stubSessionRepo{}, &stubMentorRepo{})
		_, err := svc.SubmitReview(context.Background(), "mentee-1", validReview())
		if code := errCode(t, err); code != utils.CodeNotFound {
			t.Errorf("code = %s, want NOT_FOUND", code)
		}
	})

	t.Run("only the session's mentee may review", func(t *testing.T) {
		svc := NewReviewService(newFakeReviewRepo(), &stubSessionRepo{session: completedSession()}, &stubMentorRepo{})
		_, err := svc.SubmitReview(context.Background(), "mentee-2", validReview())
		if code := errCode(t, err); code != utils.CodeForbidden {
			t.Errorf("code = %s, want FORBIDDEN", code)
		}
	})

	t.Run("mentor must match the session", func(t *testing.T) {
		svc := NewReviewService(newFakeReviewRepo(), &stubSessionRepo{session: completedSession()}, &stubMentorRepo{})
		input := validReview()
		input.MentorID = "mentor-2"
		_, err := svc.SubmitReview(context.Background(), "mentee-1", input)
		if code := errCode(t, err); code != utils.CodeInvalidInput {
			t.Errorf("code = %s, want INVALID_INPUT", code)
		}
	})

	t.Run("incomplete sessions cannot be reviewed", func(t *testing.T) {
		for _, status := range []string{models.SessionPending, models.SessionConfirmed, models.SessionCancelled} {
			session := completedSession()
			session.Status = status
			svc := NewReviewService(newFakeReviewRepo(), &stubSessionRepo{session: session}, &stubMentorRepo{})
			_, err := svc.SubmitReview(context.Background(), "mentee-1", validReview())
			if code := errCode(t, err); code != utils.CodeConflict {
				t.Errorf("status %s: code = %s, want CONFLICT", status, code)
			}
		}
	})

	t.Run("second review is rejected", func(t *testing.T) {
		sessions := &stubSessionRepo{session: completedSession()}
		mentors := &stubMentorRepo{}
		svc := NewReviewService(newFakeReviewRepo(), sessions, mentors)

		if _, err := svc.SubmitReview(context.Background(), "mentee-1", validReview()); err != nil {
			t.Fatalf("SubmitReview failed: %v", err)
		}
		_, err := svc.SubmitReview(context.Background(), "mentee-1", validReview())
		if code := errCode(t, err); code != utils.CodeConflict {
			t.Errorf("code = %s, want CONFLICT", code)
		}
		if len(mentors.applied) != 1 {
			t.Errorf("summary updated %d times, want 1", len(mentors.applied))
		}
	})
}

func TestListMentorReviews(t *testing.T) {
	reviews := newFakeReviewRepo()
	sessions := &stubSessionRepo{session: completedSession()}
	svc := NewReviewService(reviews, sessions, &stubMentorRepo{})

	if _, err := svc.SubmitReview(context.Background(), "mentee-1", validReview()); err != nil {
		t.Fatalf("SubmitReview failed: %v", err)
	}

	got, err := svc.ListMentorReviews(context.Background(), "mentor-1")
	if err != nil {
		t.Fatalf("ListMentorReviews failed: %v", err)
	}
	if len(got) != 1 || got[0].SessionID != "session-1" {
		t.Errorf("reviews = %+v", got)
	}

	rv, err := svc.GetSessionReview(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("GetSessionReview failed: %v", err)
	}
	if rv == nil || rv.Comment != "Great session, very helpful." {
		t.Errorf("review = %+v", rv)
	}
}
