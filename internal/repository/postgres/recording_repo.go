package postgres

import (
	"context"
	"database/sql"
	"errors"

	"showcase/internal/domain"
)

type recordingRepository struct {
	DB *sql.DB
}

func NewRecordingRepository(db *sql.DB) domain.RecordingRepository {
	return &recordingRepository{DB: db}
}

func (r *recordingRepository) GetByMeetingDate(ctx context.Context, meetingDate string) (*domain.Recording, error) {
	query := `
		SELECT meeting_date, recording_url, added_by, added_at
		FROM recordings
		WHERE meeting_date = $1
	`
	rec := &domain.Recording{}
	err := r.DB.QueryRowContext(ctx, query, meetingDate).
		Scan(&rec.MeetingDate, &rec.RecordingURL, &rec.AddedBy, &rec.AddedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Upsert is a single conditional statement so concurrent admin updates for
// the same date cannot interleave a check with a write.
func (r *recordingRepository) Upsert(ctx context.Context, rec *domain.Recording) error {
	query := `
		INSERT INTO recordings (meeting_date, recording_url, added_by, added_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (meeting_date) DO UPDATE
		SET recording_url = EXCLUDED.recording_url,
		    added_by = EXCLUDED.added_by,
		    added_at = EXCLUDED.added_at
	`
	_, err := r.DB.ExecContext(ctx, query, rec.MeetingDate, rec.RecordingURL, rec.AddedBy, rec.AddedAt)
	return err
}

func (r *recordingRepository) Delete(ctx context.Context, meetingDate string) error {
	query := `
		DELETE FROM recordings
		WHERE meeting_date = $1
	`
	res, err := r.DB.ExecContext(ctx, query, meetingDate)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
