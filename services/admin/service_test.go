package admin

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mentorify/models"
	"mentorify/utils"
)

type fakeAdminRepo struct{}

func (r *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return nil, nil
}
func (r *fakeAdminRepo) GetByTokenHash(ctx context.Context, hash string) (*models.Admin, error) {
	return nil, nil
}
func (r *fakeAdminRepo) SetTokenHash(ctx context.Context, id, hash string) error { return nil }

type fakeMentorRepo struct {
	mentors map[string]*models.Mentor
}

func newFakeMentorRepo(mentors ...*models.Mentor) *fakeMentorRepo {
	repo := &fakeMentorRepo{mentors: make(map[string]*models.Mentor)}
	for _, m := range mentors {
		repo.mentors[m.ID] = m
	}
	return repo
}

func (r *fakeMentorRepo) Create(ctx context.Context, m *models.Mentor) error { return nil }
func (r *fakeMentorRepo) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	if m, ok := r.mentors[id]; ok {
		cp := *m
		return &cp, nil
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
func (r *fakeMentorRepo) Delete(ctx context.Context, id string) error {
	delete(r.mentors, id)
	return nil
}
func (r *fakeMentorRepo) SetTokenHash(ctx context.Context, id, hash string) error { return nil }
func (r *fakeMentorRepo) SetApproved(ctx context.Context, id string, approved bool) (*models.Mentor, error) {
	m, ok := r.mentors[id]
	if !ok {
		return nil, nil
	}
	m.Approved = approved
	cp := *m
	return &cp, nil
}
func (r *fakeMentorRepo) List(ctx context.Context, approvedOnly bool) ([]models.Mentor, error) {
	var out []models.Mentor
	for _, m := range r.mentors {
		if !approvedOnly || m.Approved {
			out = append(out, *m)
		}
	}
	return out, nil
}
func (r *fakeMentorRepo) ListPending(ctx context.Context) ([]models.Mentor, error) {
	var out []models.Mentor
	for _, m := range r.mentors {
		if !m.Approved {
			out = append(out, *m)
		}
	}
	return out, nil
}
func (r *fakeMentorRepo) ApplyReviewRating(ctx context.Context, mentorID string, rating int) error {
	return nil
}

type fakeMenteeRepo struct{}

func (r *fakeMenteeRepo) Create(ctx context.Context, m *models.Mentee) error { return nil }
func (r *fakeMenteeRepo) GetByID(ctx context.Context, id string) (*models.Mentee, error) {
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

func errCode(t *testing.T, err error) string {
	t.Helper()
	var svcErr *utils.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected a classified error, got %v", err)
	}
	return svcErr.Code
}

func newService(mentors *fakeMentorRepo) *DefaultAdminService {
	return NewAdminService(&fakeAdminRepo{}, mentors, &fakeMenteeRepo{}, &fakeNotifier{})
}

func pendingMentor() *models.Mentor {
	return &models.Mentor{ID: "mentor-1", Name: "Asha", Email: "asha@example.com"}
}

func approvedMentor() *models.Mentor {
	m := pendingMentor()
	m.Approved = true
	return m
}

func TestApproveMentor(t *testing.T) {
	t.Run("approves a pending mentor", func(t *testing.T) {
		mentors := newFakeMentorRepo(pendingMentor())
		svc := newService(mentors)

		mentor, err := svc.ApproveMentor(context.Background(), "mentor-1")
		if err != nil {
			t.Fatalf("ApproveMentor failed: %v", err)
		}
		if !mentor.Approved {
			t.Error("mentor not approved")
		}
		if pending, _ := svc.ListPendingMentors(context.Background()); len(pending) != 0 {
			t.Errorf("pending queue = %+v, want empty", pending)
		}
	})

	t.Run("unknown mentor", func(t *testing.T) {
		svc := newService(newFakeMentorRepo())
		_, err := svc.ApproveMentor(context.Background(), "mentor-9")
		if code := errCode(t, err); code != utils.CodeNotFound {
			t.Errorf("code = %s, want NOT_FOUND", code)
		}
	})
}

func TestRemoveMentor(t *testing.T) {
	t.Run("removes an approved mentor", func(t *testing.T) {
		mentors := newFakeMentorRepo(approvedMentor())
		svc := newService(mentors)

		if err := svc.RemoveMentor(context.Background(), "mentor-1"); err != nil {
			t.Fatalf("RemoveMentor failed: %v", err)
		}
		if _, ok := mentors.mentors["mentor-1"]; ok {
			t.Error("mentor still present after removal")
		}
	})

	t.Run("refuses an unapproved applicant", func(t *testing.T) {
		mentors := newFakeMentorRepo(pendingMentor())
		svc := newService(mentors)

		err := svc.RemoveMentor(context.Background(), "mentor-1")
		if code := errCode(t, err); code != utils.CodeConflict {
			t.Errorf("code = %s, want CONFLICT", code)
		}
		if _, ok := mentors.mentors["mentor-1"]; !ok {
			t.Error("unapproved applicant was deleted")
		}
	})

	t.Run("unknown mentor", func(t *testing.T) {
		svc := newService(newFakeMentorRepo())
		err := svc.RemoveMentor(context.Background(), "mentor-9")
		if code := errCode(t, err); code != utils.CodeNotFound {
			t.Errorf("code = %s, want NOT_FOUND", code)
		}
	})
}
