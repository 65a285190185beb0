package domain

import "context"

// Week is one entry in the week selector.
// swagger:model Week
type Week struct {
	Date           string `json:"date"` // YYYY-MM-DD
	FormattedDate  string `json:"formatted_date"`
	IsPast         bool   `json:"is_past"`
	IsCurrent      bool   `json:"is_current"`
	IsInactive     bool   `json:"is_inactive"`
	InactiveReason string `json:"inactive_reason,omitempty"`
}

// MeetingView is the full view of one meeting date: its presentations in
// signup order, the recording link if any, and the inactive status.
// swagger:model MeetingView
type MeetingView struct {
	Date           string          `json:"date"`
	FormattedDate  string          `json:"formatted_date"`
	Presentations  []*Presentation `json:"presentations"`
	RecordingURL   string          `json:"recording_url,omitempty"`
	IsInactive     bool            `json:"is_inactive"`
	InactiveReason string          `json:"inactive_reason,omitempty"`
}

// MeetingService defines attendee-facing operations: week views and
// presentation sign-up, edit, and delete. Every mutation re-derives
// eligibility (inactive marker, admin roster, existing signup) from the
// store at call time.
type MeetingService interface {
	GetUpcomingMeeting(ctx context.Context) (*MeetingView, error)
	GetMeetingByDate(ctx context.Context, date string) (*MeetingView, error)
	ListAvailableWeeks(ctx context.Context) ([]Week, error)
	// SignUpToPresent registers the actor for meetingDate (next meeting when
	// empty). One signup per (date, presenter email).
	SignUpToPresent(ctx context.Context, actor Actor, title, meetingDate string) (*Presentation, error)
	EditPresentation(ctx context.Context, actor Actor, id, title string) (*Presentation, error)
	DeletePresentation(ctx context.Context, actor Actor, id string) error
}

// AdminService defines admin-gated operations: recordings, inactive weeks,
// and the admin roster.
type AdminService interface {
	// CheckAdminStatus never fails: unauthenticated and anonymous actors are
	// simply not admins.
	CheckAdminStatus(ctx context.Context, actor Actor) (bool, error)
	SetRecording(ctx context.Context, actor Actor, meetingDate, recordingURL string) (*Recording, error)
	RemoveRecording(ctx context.Context, actor Actor, meetingDate string) error
	MarkWeekInactive(ctx context.Context, actor Actor, meetingDate, reason string) (*InactiveWeek, error)
	MarkWeekActive(ctx context.Context, actor Actor, meetingDate string) error
	AddAdmin(ctx context.Context, actor Actor, email string) (*Admin, error)
	RemoveAdmin(ctx context.Context, actor Actor, email string) error
	// ListAdmins returns an empty slice (not an error) for non-admins so the
	// roster's existence is not leaked.
	ListAdmins(ctx context.Context, actor Actor) ([]*Admin, error)
}
