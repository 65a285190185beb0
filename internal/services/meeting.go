package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"showcase/internal/domain"
	"showcase/internal/schedule"
)

var dateKeyRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type meetingService struct {
	presentationRepo domain.PresentationRepository
	recordingRepo    domain.RecordingRepository
	inactiveRepo     domain.InactiveWeekRepository
	adminRepo        domain.AdminRepository
	userRepo         domain.UserRepository
	engine           schedule.Engine
	now              func() time.Time
}

// NewMeetingService creates a MeetingService. now may be nil, in which case
// time.Now is used; tests inject a fixed clock.
func NewMeetingService(
	presentationRepo domain.PresentationRepository,
	recordingRepo domain.RecordingRepository,
	inactiveRepo domain.InactiveWeekRepository,
	adminRepo domain.AdminRepository,
	userRepo domain.UserRepository,
	engine schedule.Engine,
	now func() time.Time,
) domain.MeetingService {
	if now == nil {
		now = time.Now
	}
	return &meetingService{
		presentationRepo: presentationRepo,
		recordingRepo:    recordingRepo,
		inactiveRepo:     inactiveRepo,
		adminRepo:        adminRepo,
		userRepo:         userRepo,
		engine:           engine,
		now:              now,
	}
}

func (s *meetingService) GetUpcomingMeeting(ctx context.Context) (*domain.MeetingView, error) {
	return s.GetMeetingByDate(ctx, s.engine.NextMeetingDate(s.now()))
}

func (s *meetingService) GetMeetingByDate(ctx context.Context, date string) (*domain.MeetingView, error) {
	if !dateKeyRegexp.MatchString(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	presentations, err := s.presentationRepo.ListByMeetingDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}

	view := &domain.MeetingView{
		Date:          date,
		FormattedDate: schedule.FormatForDisplay(date),
		Presentations: presentations,
	}

	rec, err := s.recordingRepo.GetByMeetingDate(ctx, date)
	if err == nil {
		view.RecordingURL = rec.RecordingURL
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get recording: %w", err)
	}

	marker, err := s.inactiveRepo.GetByMeetingDate(ctx, date)
	if err == nil {
		view.IsInactive = true
		view.InactiveReason = marker.Reason
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get inactive marker: %w", err)
	}

	return view, nil
}

func (s *meetingService) ListAvailableWeeks(ctx context.Context) ([]domain.Week, error) {
	dates, err := s.presentationRepo.ListAllDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list presentation dates: %w", err)
	}
	markers, err := s.inactiveRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inactive weeks: %w", err)
	}
	inactive := make(map[string]string, len(markers))
	for _, m := range markers {
		inactive[m.MeetingDate] = m.Reason
	}
	return s.engine.EnumerateWeeks(s.now(), dates, inactive), nil
}

func (s *meetingService) SignUpToPresent(ctx context.Context, actor domain.Actor, title, meetingDate string) (*domain.Presentation, error) {
	if meetingDate == "" {
		meetingDate = s.engine.NextMeetingDate(s.now())
	} else if !dateKeyRegexp.MatchString(meetingDate) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	// Identity checks come before store lookups keyed on the actor's email.
	if !actor.IsAuthenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	if actor.IsAnonymous || actor.Email == "" {
		return nil, domain.ErrForbidden
	}

	weekInactive, err := s.isWeekInactive(ctx, meetingDate)
	if err != nil {
		return nil, err
	}
	alreadySignedUp, err := s.hasSignup(ctx, meetingDate, actor.Email)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeSignUp(actor, weekInactive, alreadySignedUp); err != nil {
		return nil, err
	}

	// Eligibility is settled before the title is looked at, so an inactive
	// week rejects the signup no matter what was submitted.
	title, err = validateTitle(title)
	if err != nil {
		return nil, err
	}

	p := domain.NewPresentation(title, s.presenterName(ctx, actor), actor.Email, meetingDate, s.now())
	// The unique (meeting_date, presenter_email) constraint backstops the
	// check above against a concurrent signup.
	if err := s.presentationRepo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicateSignup) {
			return nil, domain.ErrDuplicateSignup
		}
		return nil, fmt.Errorf("create presentation: %w", err)
	}
	return p, nil
}

func (s *meetingService) EditPresentation(ctx context.Context, actor domain.Actor, id, title string) (*domain.Presentation, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	p, err := s.presentationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get presentation: %w", err)
	}
	if err := s.authorizeChange(ctx, actor, p); err != nil {
		return nil, err
	}

	if err := s.presentationRepo.UpdateTitle(ctx, id, title); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update presentation: %w", err)
	}
	p.Title = title
	return p, nil
}

func (s *meetingService) DeletePresentation(ctx context.Context, actor domain.Actor, id string) error {
	p, err := s.presentationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get presentation: %w", err)
	}
	if err := s.authorizeChange(ctx, actor, p); err != nil {
		return err
	}

	if err := s.presentationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete presentation: %w", err)
	}
	return nil
}

// authorizeChange re-derives the inactive marker and admin flag from the
// store; a view rendered before an admin toggled the week is never trusted.
func (s *meetingService) authorizeChange(ctx context.Context, actor domain.Actor, p *domain.Presentation) error {
	weekInactive, err := s.isWeekInactive(ctx, p.MeetingDate)
	if err != nil {
		return err
	}
	isAdmin := false
	if actor.Email != "" && !actor.IsAnonymous {
		isAdmin, err = s.adminRepo.Exists(ctx, domain.CanonicalEmail(actor.Email))
		if err != nil {
			return fmt.Errorf("check admin: %w", err)
		}
	}
	return domain.AuthorizePresentationChange(actor, p.PresenterEmail, weekInactive, isAdmin)
}

func (s *meetingService) isWeekInactive(ctx context.Context, meetingDate string) (bool, error) {
	_, err := s.inactiveRepo.GetByMeetingDate(ctx, meetingDate)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("get inactive marker: %w", err)
}

func (s *meetingService) hasSignup(ctx context.Context, meetingDate, email string) (bool, error) {
	_, err := s.presentationRepo.GetByDateAndEmail(ctx, meetingDate, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("get existing signup: %w", err)
}

// presenterName prefers the user's stored name, then a name inferred from
// the email, then the email itself. A failed user lookup falls through to
// the email-derived name rather than failing the signup.
func (s *meetingService) presenterName(ctx context.Context, actor domain.Actor) string {
	if user, err := s.userRepo.GetByID(ctx, actor.UserID); err == nil && user.Name != "" {
		return user.Name
	}
	if name := inferNameFromEmail(actor.Email); name != "" {
		return name
	}
	return actor.Email
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if len(title) > domain.MaxTitleLength {
		return "", fmt.Errorf("%w: title must be at most %d characters", domain.ErrInvalidInput, domain.MaxTitleLength)
	}
	return title, nil
}
