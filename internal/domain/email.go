package domain

import (
	"context"
	"strings"
)

// CanonicalEmail returns the canonical form of an email address used for all
// admin-roster storage and lookups: trimmed and lowercased.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeMessageEmailData holds data for the welcome email.
type WelcomeMessageEmailData struct {
	Email string
	Name  string
}

// AdminGrantedEmailData holds data for the notification sent when someone is
// added to the admin roster.
type AdminGrantedEmailData struct {
	Email   string
	AddedBy string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWelcomeMessage(ctx context.Context, data *WelcomeMessageEmailData) error
	SendAdminGranted(ctx context.Context, data *AdminGrantedEmailData) error
}
