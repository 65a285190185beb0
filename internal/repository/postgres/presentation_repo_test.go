package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"showcase/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestPresentationRepository_Create(t *testing.T) {
	ctx := context.Background()
	signup := time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success returns generated id",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO presentations`).
					WithArgs("Intro to Go", "Alice Smith", "alice@example.com", "2024-01-04", signup).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("pres-uuid-1"))
			},
		},
		{
			name: "unique violation returns ErrDuplicateSignup",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO presentations`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateSignup,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO presentations`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewPresentationRepository(db)
			p := domain.NewPresentation("Intro to Go", "Alice Smith", "alice@example.com", "2024-01-04", signup)
			err = repo.Create(ctx, p)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, "pres-uuid-1", p.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPresentationRepository_ListByMeetingDate(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	early := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "title", "presenter_name", "presenter_email", "meeting_date", "signup_time"}).
		AddRow("p1", "First", "Alice", "alice@example.com", "2024-01-04", early).
		AddRow("p2", "Second", "Bob", "bob@example.com", "2024-01-04", late)
	mock.ExpectQuery(`SELECT (.+) FROM presentations`).
		WithArgs("2024-01-04").
		WillReturnRows(rows)

	got, err := NewPresentationRepository(db).ListByMeetingDate(ctx, "2024-01-04")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "p1", got[0].ID)
	require.Equal(t, "p2", got[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresentationRepository_ListByMeetingDate_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM presentations`).
		WithArgs("2024-01-11").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "presenter_name", "presenter_email", "meeting_date", "signup_time"}))

	got, err := NewPresentationRepository(db).ListByMeetingDate(context.Background(), "2024-01-11")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresentationRepository_GetByDateAndEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM presentations`).
		WithArgs("2024-01-04", "carol@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = NewPresentationRepository(db).GetByDateAndEmail(context.Background(), "2024-01-04", "carol@example.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresentationRepository_UpdateTitle(t *testing.T) {
	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE presentations`).
					WithArgs("New Title", "p1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "zero rows affected returns ErrNotFound",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE presentations`).
					WithArgs("New Title", "p1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewPresentationRepository(db).UpdateTitle(context.Background(), "p1", "New Title")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
