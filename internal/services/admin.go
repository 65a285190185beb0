package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"time"

	"showcase/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type adminService struct {
	recordingRepo domain.RecordingRepository
	inactiveRepo  domain.InactiveWeekRepository
	adminRepo     domain.AdminRepository
	emailService  domain.EmailService
	logger        *slog.Logger
	now           func() time.Time
}

// NewAdminService creates an AdminService. now may be nil, in which case
// time.Now is used.
func NewAdminService(
	recordingRepo domain.RecordingRepository,
	inactiveRepo domain.InactiveWeekRepository,
	adminRepo domain.AdminRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	now func() time.Time,
) domain.AdminService {
	if now == nil {
		now = time.Now
	}
	return &adminService{
		recordingRepo: recordingRepo,
		inactiveRepo:  inactiveRepo,
		adminRepo:     adminRepo,
		emailService:  emailService,
		logger:        logger,
		now:           now,
	}
}

func (s *adminService) CheckAdminStatus(ctx context.Context, actor domain.Actor) (bool, error) {
	if !actor.IsAuthenticated() || actor.IsAnonymous || actor.Email == "" {
		return false, nil
	}
	isAdmin, err := s.adminRepo.Exists(ctx, domain.CanonicalEmail(actor.Email))
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	return isAdmin, nil
}

func (s *adminService) SetRecording(ctx context.Context, actor domain.Actor, meetingDate, recordingURL string) (*domain.Recording, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	if !dateKeyRegexp.MatchString(meetingDate) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	recordingURL = strings.TrimSpace(recordingURL)
	if err := validateRecordingURL(recordingURL); err != nil {
		return nil, err
	}

	rec := &domain.Recording{
		MeetingDate:  meetingDate,
		RecordingURL: recordingURL,
		AddedBy:      domain.CanonicalEmail(actor.Email),
		AddedAt:      s.now(),
	}
	if err := s.recordingRepo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("upsert recording: %w", err)
	}
	return rec, nil
}

func (s *adminService) RemoveRecording(ctx context.Context, actor domain.Actor, meetingDate string) error {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return err
	}
	if err := s.recordingRepo.Delete(ctx, meetingDate); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete recording: %w", err)
	}
	return nil
}

func (s *adminService) MarkWeekInactive(ctx context.Context, actor domain.Actor, meetingDate, reason string) (*domain.InactiveWeek, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	if !dateKeyRegexp.MatchString(meetingDate) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	week := &domain.InactiveWeek{
		MeetingDate: meetingDate,
		Reason:      strings.TrimSpace(reason),
		MarkedBy:    domain.CanonicalEmail(actor.Email),
		MarkedAt:    s.now(),
	}
	if err := s.inactiveRepo.Upsert(ctx, week); err != nil {
		return nil, fmt.Errorf("upsert inactive week: %w", err)
	}
	return week, nil
}

func (s *adminService) MarkWeekActive(ctx context.Context, actor domain.Actor, meetingDate string) error {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return err
	}
	if err := s.inactiveRepo.Delete(ctx, meetingDate); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrWeekNotInactive
		}
		return fmt.Errorf("delete inactive week: %w", err)
	}
	return nil
}

func (s *adminService) AddAdmin(ctx context.Context, actor domain.Actor, email string) (*domain.Admin, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	email = domain.CanonicalEmail(email)
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}

	admin := &domain.Admin{
		Email:   email,
		AddedBy: domain.CanonicalEmail(actor.Email),
		AddedAt: s.now(),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrAlreadyAdmin) {
			return nil, domain.ErrAlreadyAdmin
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	// Notification failure never rolls back the grant.
	if err := s.emailService.SendAdminGranted(ctx, &domain.AdminGrantedEmailData{
		Email:   admin.Email,
		AddedBy: admin.AddedBy,
	}); err != nil {
		s.logger.Error("failed to send admin notification", "email", admin.Email, "error", err)
	}
	return admin, nil
}

func (s *adminService) RemoveAdmin(ctx context.Context, actor domain.Actor, email string) error {
	isAdmin, err := s.CheckAdminStatus(ctx, actor)
	if err != nil {
		return err
	}
	email = domain.CanonicalEmail(email)
	if err := domain.AuthorizeAdminRemoval(actor, email, isAdmin); err != nil {
		return err
	}
	if err := s.adminRepo.Delete(ctx, email); err != nil {
		if errors.Is(err, domain.ErrNotAdmin) {
			return domain.ErrNotAdmin
		}
		return fmt.Errorf("delete admin: %w", err)
	}
	return nil
}

func (s *adminService) ListAdmins(ctx context.Context, actor domain.Actor) ([]*domain.Admin, error) {
	isAdmin, err := s.CheckAdminStatus(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return []*domain.Admin{}, nil
	}
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

func (s *adminService) requireAdmin(ctx context.Context, actor domain.Actor) error {
	isAdmin, err := s.CheckAdminStatus(ctx, actor)
	if err != nil {
		return err
	}
	return domain.AuthorizeAdminAction(actor, isAdmin)
}

func validateRecordingURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: recording URL is required", domain.ErrInvalidInput)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: recording URL must be an absolute http(s) URL", domain.ErrInvalidInput)
	}
	return nil
}
