package mentee

import (
	"context"
	"fmt"
	"strings"
	"time"

	menteeRepo "mentorify/database/repository/mentee"
	"mentorify/models"
	"mentorify/services/notification"
	"mentorify/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// DefaultMenteeService implements MenteeService.
type DefaultMenteeService struct {
	mentees  menteeRepo.MenteeRepository
	notifier notification.Notifier
}

func NewMenteeService(mentees menteeRepo.MenteeRepository, notifier notification.Notifier) *DefaultMenteeService {
	return &DefaultMenteeService{mentees: mentees, notifier: notifier}
}

func (s *DefaultMenteeService) SendSignupOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return utils.Errf(utils.CodeInvalidInput, "email is required")
	}

	existing, err := s.mentees.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return utils.Errf(utils.CodeConflict, "an account with this email already exists")
	}

	otp, err := utils.InitiateSignupOTP(email)
	if err != nil {
		return fmt.Errorf("failed to initiate OTP: %w", err)
	}
	subject, body := notification.SignupOTP(otp)
	if err := s.notifier.Send(email, subject, body); err != nil {
		return fmt.Errorf("failed to deliver OTP email: %w", err)
	}
	return nil
}

func (s *DefaultMenteeService) Signup(ctx context.Context, input models.MenteeSignupInput) (*models.Mentee, string, error) {
	email := normalizeEmail(input.Email)
	if input.Password != input.ConfirmPassword {
		return nil, "", utils.Errf(utils.CodeInvalidInput, "passwords do not match")
	}
	if len(input.Password) < 8 {
		return nil, "", utils.Errf(utils.CodeInvalidInput, "password must be at least 8 characters")
	}
	if err := utils.VerifySignupOTP(email, input.OTP); err != nil {
		return nil, "", utils.Errf(utils.CodeInvalidInput, "invalid or expired OTP")
	}

	existing, err := s.mentees.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, "", utils.Errf(utils.CodeConflict, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	mentee := &models.Mentee{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleMentee,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.mentees.Create(ctx, mentee); err != nil {
		return nil, "", fmt.Errorf("failed to create mentee: %w", err)
	}

	token, err := s.issueToken(ctx, mentee)
	if err != nil {
		return nil, "", err
	}
	return mentee, token, nil
}

func (s *DefaultMenteeService) Login(ctx context.Context, input models.LoginInput) (*models.Mentee, string, error) {
	mentee, err := s.mentees.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, "", fmt.Errorf("failed to load mentee: %w", err)
	}
	if mentee == nil {
		return nil, "", errBadCredentials()
	}
	if bcrypt.CompareHashAndPassword([]byte(mentee.PasswordHash), []byte(input.Password)) != nil {
		return nil, "", errBadCredentials()
	}

	token, err := s.issueToken(ctx, mentee)
	if err != nil {
		return nil, "", err
	}
	return mentee, token, nil
}

func (s *DefaultMenteeService) Logout(ctx context.Context, menteeID string) error {
	if err := s.mentees.SetTokenHash(ctx, menteeID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	utils.DropCachedTokenHash(models.RoleMentee, menteeID)
	return nil
}

func (s *DefaultMenteeService) GetProfile(ctx context.Context, menteeID string) (*models.Mentee, error) {
	mentee, err := s.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentee: %w", err)
	}
	if mentee == nil {
		return nil, utils.Errf(utils.CodeNotFound, "mentee %s not found", menteeID)
	}
	return mentee, nil
}

// issueToken mints a JWT and stores its hash, superseding any earlier token.
func (s *DefaultMenteeService) issueToken(ctx context.Context, mentee *models.Mentee) (string, error) {
	token, err := utils.GenerateToken(mentee.ID, mentee.Email, models.RoleMentee, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.mentees.SetTokenHash(ctx, mentee.ID, hash); err != nil {
		return "", fmt.Errorf("failed to store token hash: %w", err)
	}
	utils.CacheTokenHash(models.RoleMentee, mentee.ID, hash)
	return token, nil
}

func errBadCredentials() error {
	return utils.Errf(utils.CodeUnauthorized, "invalid email or password")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
