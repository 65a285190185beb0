package domain

import (
	"context"
	"time"
)

// MaxTitleLength caps presentation titles. Enforced server-side on every
// create and edit, not just in the UI.
const MaxTitleLength = 200

// Presentation represents a talk slot on a meeting date.
// swagger:model Presentation
type Presentation struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	PresenterName  string    `json:"presenter_name"`
	PresenterEmail string    `json:"presenter_email"`
	MeetingDate    string    `json:"meeting_date"` // YYYY-MM-DD
	SignupTime     time.Time `json:"signup_time"`
}

// NewPresentation returns a new Presentation with the given fields. ID is typically set by the repository on create.
func NewPresentation(title, presenterName, presenterEmail, meetingDate string, signupTime time.Time) *Presentation {
	return &Presentation{
		Title:          title,
		PresenterName:  presenterName,
		PresenterEmail: presenterEmail,
		MeetingDate:    meetingDate,
		SignupTime:     signupTime,
	}
}

// PresentationRepository defines the interface for presentation storage.
// A unique constraint on (meeting_date, presenter_email) backs the
// duplicate-signup check; Create returns ErrDuplicateSignup when it fires.
type PresentationRepository interface {
	Create(ctx context.Context, p *Presentation) error
	GetByID(ctx context.Context, id string) (*Presentation, error)
	// ListByMeetingDate returns presentations for the date ordered by
	// signup_time ascending.
	ListByMeetingDate(ctx context.Context, meetingDate string) ([]*Presentation, error)
	GetByDateAndEmail(ctx context.Context, meetingDate, email string) (*Presentation, error)
	// ListAllDates returns the meeting_date of every presentation, duplicates
	// included, in ascending date order.
	ListAllDates(ctx context.Context) ([]string, error)
	UpdateTitle(ctx context.Context, id, title string) error
	Delete(ctx context.Context, id string) error
}
