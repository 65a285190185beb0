package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"showcase/internal/domain"
)

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{DB: db}
}

func (r *adminRepository) Exists(ctx context.Context, email string) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	query := `
		INSERT INTO admins (email, added_by, added_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, admin.Email, admin.AddedBy, admin.AddedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrAlreadyAdmin
		}
		return err
	}
	return nil
}

func (r *adminRepository) Delete(ctx context.Context, email string) error {
	query := `
		DELETE FROM admins
		WHERE email = $1
	`
	res, err := r.DB.ExecContext(ctx, query, email)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotAdmin
	}
	return nil
}

func (r *adminRepository) List(ctx context.Context) ([]*domain.Admin, error) {
	query := `
		SELECT email, added_by, added_at
		FROM admins
		ORDER BY added_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*domain.Admin
	for rows.Next() {
		admin := &domain.Admin{}
		if err := rows.Scan(&admin.Email, &admin.AddedBy, &admin.AddedAt); err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if admins == nil {
		admins = []*domain.Admin{}
	}
	return admins, nil
}
