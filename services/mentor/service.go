package mentor

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	mentorRepo "mentorify/database/repository/mentor"
	"mentorify/models"
	"mentorify/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL      = 24 * time.Hour
	pictureFolder = "mentorify/mentors"
)

// DefaultMentorService implements MentorService.
type DefaultMentorService struct {
	mentors mentorRepo.MentorRepository
	storage PictureStorage
}

func NewMentorService(mentors mentorRepo.MentorRepository, storage PictureStorage) *DefaultMentorService {
	return &DefaultMentorService{mentors: mentors, storage: storage}
}

func (s *DefaultMentorService) Signup(ctx context.Context, input models.MentorSignupInput) (*models.Mentor, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if len(input.Password) < 8 {
		return nil, utils.Errf(utils.CodeInvalidInput, "password must be at least 8 characters")
	}

	existing, err := s.mentors.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, utils.Errf(utils.CodeConflict, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	mentor := &models.Mentor{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(input.Name),
		Email:           email,
		PasswordHash:    string(hash),
		Experience:      input.Experience,
		CurrentPosition: input.CurrentPosition,
		Approved:        false,
		Role:            models.RoleMentor,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.mentors.Create(ctx, mentor); err != nil {
		return nil, fmt.Errorf("failed to create mentor: %w", err)
	}
	return mentor, nil
}

func (s *DefaultMentorService) Login(ctx context.Context, input models.LoginInput) (*models.Mentor, string, error) {
	mentor, err := s.mentors.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to load mentor: %w", err)
	}
	if mentor == nil {
		return nil, "", utils.Errf(utils.CodeUnauthorized, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(mentor.PasswordHash), []byte(input.Password)) != nil {
		return nil, "", utils.Errf(utils.CodeUnauthorized, "invalid email or password")
	}
	if !mentor.Approved {
		return nil, "", utils.Errf(utils.CodeForbidden, "your account is pending admin approval")
	}

	token, err := utils.GenerateToken(mentor.ID, mentor.Email, models.RoleMentor, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.mentors.SetTokenHash(ctx, mentor.ID, hash); err != nil {
		return nil, "", fmt.Errorf("failed to store token hash: %w", err)
	}
	utils.CacheTokenHash(models.RoleMentor, mentor.ID, hash)
	return mentor, token, nil
}

func (s *DefaultMentorService) Logout(ctx context.Context, mentorID string) error {
	if err := s.mentors.SetTokenHash(ctx, mentorID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	utils.DropCachedTokenHash(models.RoleMentor, mentorID)
	return nil
}

func (s *DefaultMentorService) GetProfile(ctx context.Context, mentorID string) (*models.Mentor, error) {
	mentor, err := s.mentors.GetByID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentor: %w", err)
	}
	if mentor == nil {
		return nil, utils.Errf(utils.CodeNotFound, "mentor %s not found", mentorID)
	}
	return mentor, nil
}

func (s *DefaultMentorService) UpdateProfile(ctx context.Context, mentorID string, input models.UpdateMentorProfileInput) (*models.Mentor, error) {
	mentor, err := s.GetProfile(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		mentor.Name = strings.TrimSpace(input.Name)
	}
	if input.ProfilePicture != "" {
		mentor.ProfilePicture = input.ProfilePicture
	}
	if input.Experience != "" {
		mentor.Experience = input.Experience
	}
	if input.CurrentPosition != "" {
		mentor.CurrentPosition = input.CurrentPosition
	}
	mentor.UpdatedAt = time.Now()

	if err := s.mentors.Update(ctx, mentor); err != nil {
		return nil, fmt.Errorf("failed to update mentor: %w", err)
	}
	return mentor, nil
}

func (s *DefaultMentorService) UploadProfilePicture(ctx context.Context, mentorID string, file multipart.File) (string, error) {
	mentor, err := s.GetProfile(ctx, mentorID)
	if err != nil {
		return "", err
	}

	url, err := s.storage.UploadProfilePicture(ctx, file, pictureFolder)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile picture: %w", err)
	}

	mentor.ProfilePicture = url
	mentor.UpdatedAt = time.Now()
	if err := s.mentors.Update(ctx, mentor); err != nil {
		return "", fmt.Errorf("failed to save profile picture: %w", err)
	}
	return url, nil
}

func (s *DefaultMentorService) ListApproved(ctx context.Context) ([]models.Mentor, error) {
	mentors, err := s.mentors.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	return mentors, nil
}
