package domain

import (
	"context"
	"time"
)

// Recording links a meeting date to its recorded video. At most one per date.
// swagger:model Recording
type Recording struct {
	MeetingDate  string    `json:"meeting_date"` // YYYY-MM-DD, unique key
	RecordingURL string    `json:"recording_url"`
	AddedBy      string    `json:"added_by"`
	AddedAt      time.Time `json:"added_at"`
}

// RecordingRepository defines the interface for recording storage.
type RecordingRepository interface {
	GetByMeetingDate(ctx context.Context, meetingDate string) (*Recording, error)
	// Upsert inserts the recording or replaces the existing one for the same
	// date in a single atomic statement.
	Upsert(ctx context.Context, rec *Recording) error
	// Delete removes the recording for the date; ErrNotFound when none exists.
	Delete(ctx context.Context, meetingDate string) error
}
