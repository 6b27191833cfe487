package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	mentorRepo "mentorify/database/repository/mentor"
	reviewRepo "mentorify/database/repository/review"
	sessionRepo "mentorify/database/repository/session"
	"mentorify/models"
	"mentorify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	reviews  reviewRepo.ReviewRepository
	sessions sessionRepo.SessionRepository
	mentors  mentorRepo.MentorRepository
}

func NewReviewService(
	reviews reviewRepo.ReviewRepository,
	sessions sessionRepo.SessionRepository,
	mentors mentorRepo.MentorRepository,
) *DefaultReviewService {
	return &DefaultReviewService{reviews: reviews, sessions: sessions, mentors: mentors}
}

func (s *DefaultReviewService) SubmitReview(ctx context.Context, menteeID string, input models.SubmitReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.Errf(utils.CodeInvalidInput, "rating must be between 1 and 5, got %d", input.Rating)
	}

	session, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, utils.Errf(utils.CodeNotFound, "session %s not found", input.SessionID)
	}
	if session.MenteeID != menteeID {
		return nil, utils.Errf(utils.CodeForbidden, "you can only review your own sessions")
	}
	if session.MentorID != input.MentorID {
		return nil, utils.Errf(utils.CodeInvalidInput, "mentor does not match the session")
	}
	if session.Status != models.SessionCompleted {
		return nil, utils.Errf(utils.CodeConflict, "only completed sessions can be reviewed")
	}
	if session.ReviewID != "" {
		return nil, utils.Errf(utils.CodeConflict, "this session has already been reviewed")
	}

	review := &models.Review{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		MenteeID:  menteeID,
		MentorID:  session.MentorID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		// The unique sessionId index closes the check-then-write race.
		if errors.Is(err, reviewRepo.ErrReviewExists) {
			return nil, utils.Errf(utils.CodeConflict, "this session has already been reviewed")
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.sessions.AttachReview(ctx, session.ID, review.ID); err != nil {
		utils.GetLogger().Warn("failed to attach review to session",
			zap.String("sessionId", session.ID), zap.Error(err))
	}
	if err := s.mentors.ApplyReviewRating(ctx, session.MentorID, input.Rating); err != nil {
		utils.GetLogger().Error("failed to update mentor rating summary",
			zap.String("mentorId", session.MentorID), zap.Error(err))
	}
	return review, nil
}

func (s *DefaultReviewService) GetSessionReview(ctx context.Context, sessionID string) (*models.Review, error) {
	review, err := s.reviews.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	return review, nil
}

func (s *DefaultReviewService) ListMentorReviews(ctx context.Context, mentorID string) ([]models.Review, error) {
	reviews, err := s.reviews.ListForMentor(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
