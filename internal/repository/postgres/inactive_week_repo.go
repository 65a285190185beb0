package postgres

import (
	"context"
	"database/sql"
	"errors"

	"showcase/internal/domain"
)

type inactiveWeekRepository struct {
	DB *sql.DB
}

func NewInactiveWeekRepository(db *sql.DB) domain.InactiveWeekRepository {
	return &inactiveWeekRepository{DB: db}
}

func (r *inactiveWeekRepository) GetByMeetingDate(ctx context.Context, meetingDate string) (*domain.InactiveWeek, error) {
	query := `
		SELECT meeting_date, COALESCE(reason, ''), marked_by, marked_at
		FROM inactive_weeks
		WHERE meeting_date = $1
	`
	week := &domain.InactiveWeek{}
	err := r.DB.QueryRowContext(ctx, query, meetingDate).
		Scan(&week.MeetingDate, &week.Reason, &week.MarkedBy, &week.MarkedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return week, nil
}

func (r *inactiveWeekRepository) Upsert(ctx context.Context, week *domain.InactiveWeek) error {
	query := `
		INSERT INTO inactive_weeks (meeting_date, reason, marked_by, marked_at)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		ON CONFLICT (meeting_date) DO UPDATE
		SET reason = EXCLUDED.reason,
		    marked_by = EXCLUDED.marked_by,
		    marked_at = EXCLUDED.marked_at
	`
	_, err := r.DB.ExecContext(ctx, query, week.MeetingDate, week.Reason, week.MarkedBy, week.MarkedAt)
	return err
}

func (r *inactiveWeekRepository) Delete(ctx context.Context, meetingDate string) error {
	query := `
		DELETE FROM inactive_weeks
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

func (r *inactiveWeekRepository) ListAll(ctx context.Context) ([]*domain.InactiveWeek, error) {
	query := `
		SELECT meeting_date, COALESCE(reason, ''), marked_by, marked_at
		FROM inactive_weeks
		ORDER BY meeting_date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []*domain.InactiveWeek
	for rows.Next() {
		week := &domain.InactiveWeek{}
		if err := rows.Scan(&week.MeetingDate, &week.Reason, &week.MarkedBy, &week.MarkedAt); err != nil {
			return nil, err
		}
		weeks = append(weeks, week)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if weeks == nil {
		weeks = []*domain.InactiveWeek{}
	}
	return weeks, nil
}
