package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"showcase/internal/domain"
)

const minPasswordLength = 8

type authService struct {
	userRepo     domain.UserRepository
	hasher       domain.PasswordHasher
	issuer       domain.TokenIssuer
	emailService domain.EmailService
	tokenExpiry  time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewAuthService creates an AuthService. now may be nil, in which case
// time.Now is used.
func NewAuthService(
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	emailService domain.EmailService,
	tokenExpiry time.Duration,
	logger *slog.Logger,
	now func() time.Time,
) domain.AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		issuer:       issuer,
		emailService: emailService,
		tokenExpiry:  tokenExpiry,
		logger:       logger,
		now:          now,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = domain.CanonicalEmail(email)
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}
	if name == "" {
		name = inferNameFromEmail(email)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := domain.NewUser(email, hash, salt, name, now, now)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Welcome email failure never rolls back the signup.
	if err := s.emailService.SendWelcomeMessage(ctx, &domain.WelcomeMessageEmailData{
		Email: user.Email,
		Name:  user.Name,
	}); err != nil {
		s.logger.Error("failed to send welcome email", "email", user.Email, "error", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.CanonicalEmail(email)
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(domain.Actor{UserID: user.ID, Email: user.Email}, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *authService) LoginAnonymously(ctx context.Context) (string, error) {
	actor := domain.Actor{
		UserID:      "guest-" + uuid.NewString(),
		IsAnonymous: true,
	}
	token, err := s.issuer.Issue(actor, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue guest token: %w", err)
	}
	return token, nil
}

func (s *authService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
