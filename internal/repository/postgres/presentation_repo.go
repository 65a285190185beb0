package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"showcase/internal/domain"
)

type presentationRepository struct {
	DB *sql.DB
}

func NewPresentationRepository(db *sql.DB) domain.PresentationRepository {
	return &presentationRepository{DB: db}
}

func (r *presentationRepository) Create(ctx context.Context, p *domain.Presentation) error {
	query := `
		INSERT INTO presentations (title, presenter_name, presenter_email, meeting_date, signup_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, p.Title, p.PresenterName, p.PresenterEmail, p.MeetingDate, p.SignupTime).
		Scan(&p.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateSignup
		}
		return err
	}
	return nil
}

func (r *presentationRepository) GetByID(ctx context.Context, id string) (*domain.Presentation, error) {
	query := `
		SELECT id, title, presenter_name, presenter_email, meeting_date, signup_time
		FROM presentations
		WHERE id = $1
	`
	p := &domain.Presentation{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Title, &p.PresenterName, &p.PresenterEmail, &p.MeetingDate, &p.SignupTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *presentationRepository) ListByMeetingDate(ctx context.Context, meetingDate string) ([]*domain.Presentation, error) {
	query := `
		SELECT id, title, presenter_name, presenter_email, meeting_date, signup_time
		FROM presentations
		WHERE meeting_date = $1
		ORDER BY signup_time ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, meetingDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presentations []*domain.Presentation
	for rows.Next() {
		p := &domain.Presentation{}
		if err := rows.Scan(&p.ID, &p.Title, &p.PresenterName, &p.PresenterEmail, &p.MeetingDate, &p.SignupTime); err != nil {
			return nil, err
		}
		presentations = append(presentations, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if presentations == nil {
		presentations = []*domain.Presentation{}
	}
	return presentations, nil
}

func (r *presentationRepository) GetByDateAndEmail(ctx context.Context, meetingDate, email string) (*domain.Presentation, error) {
	query := `
		SELECT id, title, presenter_name, presenter_email, meeting_date, signup_time
		FROM presentations
		WHERE meeting_date = $1 AND presenter_email = $2
	`
	p := &domain.Presentation{}
	err := r.DB.QueryRowContext(ctx, query, meetingDate, email).
		Scan(&p.ID, &p.Title, &p.PresenterName, &p.PresenterEmail, &p.MeetingDate, &p.SignupTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *presentationRepository) ListAllDates(ctx context.Context) ([]string, error) {
	query := `
		SELECT meeting_date
		FROM presentations
		ORDER BY meeting_date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *presentationRepository) UpdateTitle(ctx context.Context, id, title string) error {
	query := `
		UPDATE presentations
		SET title = $1
		WHERE id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, title, id)
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

func (r *presentationRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM presentations
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, id)
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
