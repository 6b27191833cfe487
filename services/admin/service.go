package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	adminRepo "mentorify/database/repository/admin"
	menteeRepo "mentorify/database/repository/mentee"
	mentorRepo "mentorify/database/repository/mentor"
	"mentorify/models"
	"mentorify/services/notification"
	"mentorify/utils"

	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	admins   adminRepo.AdminRepository
	mentors  mentorRepo.MentorRepository
	mentees  menteeRepo.MenteeRepository
	notifier notification.Notifier
}

func NewAdminService(
	admins adminRepo.AdminRepository,
	mentors mentorRepo.MentorRepository,
	mentees menteeRepo.MenteeRepository,
	notifier notification.Notifier,
) *DefaultAdminService {
	return &DefaultAdminService{admins: admins, mentors: mentors, mentees: mentees, notifier: notifier}
}

func (s *DefaultAdminService) Login(ctx context.Context, input models.LoginInput) (*models.Admin, string, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to load admin: %w", err)
	}
	if admin == nil {
		return nil, "", utils.Errf(utils.CodeUnauthorized, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
		return nil, "", utils.Errf(utils.CodeUnauthorized, "invalid email or password")
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, models.RoleAdmin, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.admins.SetTokenHash(ctx, admin.ID, hash); err != nil {
		return nil, "", fmt.Errorf("failed to store token hash: %w", err)
	}
	utils.CacheTokenHash(models.RoleAdmin, admin.ID, hash)
	return admin, token, nil
}

func (s *DefaultAdminService) Logout(ctx context.Context, adminID string) error {
	if err := s.admins.SetTokenHash(ctx, adminID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	utils.DropCachedTokenHash(models.RoleAdmin, adminID)
	return nil
}

func (s *DefaultAdminService) ListPendingMentors(ctx context.Context) ([]models.Mentor, error) {
	mentors, err := s.mentors.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending mentors: %w", err)
	}
	return mentors, nil
}

func (s *DefaultAdminService) ApproveMentor(ctx context.Context, mentorID string) (*models.Mentor, error) {
	mentor, err := s.mentors.SetApproved(ctx, mentorID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to approve mentor: %w", err)
	}
	if mentor == nil {
		return nil, utils.Errf(utils.CodeNotFound, "mentor %s not found", mentorID)
	}

	subject, body := notification.MentorApproved(mentor.Name)
	notification.SendAsync(s.notifier, mentor.Email, subject, body)
	return mentor, nil
}

func (s *DefaultAdminService) RemoveMentor(ctx context.Context, mentorID string) error {
	mentor, err := s.mentors.GetByID(ctx, mentorID)
	if err != nil {
		return fmt.Errorf("failed to load mentor: %w", err)
	}
	if mentor == nil {
		return utils.Errf(utils.CodeNotFound, "mentor %s not found", mentorID)
	}
	if !mentor.Approved {
		return utils.Errf(utils.CodeConflict, "mentor %s is not approved", mentorID)
	}

	if err := s.mentors.Delete(ctx, mentorID); err != nil {
		return fmt.Errorf("failed to delete mentor: %w", err)
	}

	subject, body := notification.MentorRemoved(mentor.Name)
	notification.SendAsync(s.notifier, mentor.Email, subject, body)
	return nil
}

func (s *DefaultAdminService) ListMentors(ctx context.Context) ([]models.Mentor, error) {
	mentors, err := s.mentors.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	return mentors, nil
}

func (s *DefaultAdminService) ListMentees(ctx context.Context) ([]models.Mentee, error) {
	mentees, err := s.mentees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentees: %w", err)
	}
	return mentees, nil
}
