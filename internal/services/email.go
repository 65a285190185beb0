package services

import (
	"context"
	"fmt"

	"showcase/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService creates an EmailService backed by the given mailer and
// template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

func (s *emailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	subject, html, text, err := s.renderer.Render("welcome", data)
	if err != nil {
		return fmt.Errorf("render welcome email: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, html, text); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	return nil
}

func (s *emailService) SendAdminGranted(ctx context.Context, data *domain.AdminGrantedEmailData) error {
	subject, html, text, err := s.renderer.Render("admin_granted", data)
	if err != nil {
		return fmt.Errorf("render admin email: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, html, text); err != nil {
		return fmt.Errorf("send admin email: %w", err)
	}
	return nil
}
