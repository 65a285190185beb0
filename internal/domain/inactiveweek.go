package domain

import (
	"context"
	"time"
)

// InactiveWeek marks a meeting date as inactive: its mere existence encodes
// the state. A week's inactive flag is always derived from a lookup here,
// never cached elsewhere.
// swagger:model InactiveWeek
type InactiveWeek struct {
	MeetingDate string    `json:"meeting_date"` // YYYY-MM-DD, unique key
	Reason      string    `json:"reason,omitempty"`
	MarkedBy    string    `json:"marked_by"`
	MarkedAt    time.Time `json:"marked_at"`
}

// InactiveWeekRepository defines the interface for inactive-week markers.
type InactiveWeekRepository interface {
	GetByMeetingDate(ctx context.Context, meetingDate string) (*InactiveWeek, error)
	// Upsert inserts the marker or replaces the existing one for the same
	// date in a single atomic statement.
	Upsert(ctx context.Context, week *InactiveWeek) error
	// Delete marks the week active again; ErrNotFound when no marker exists.
	Delete(ctx context.Context, meetingDate string) error
	ListAll(ctx context.Context) ([]*InactiveWeek, error)
}
