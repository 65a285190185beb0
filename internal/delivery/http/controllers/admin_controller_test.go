package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"showcase/internal/delivery/http/helpers"
	"showcase/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdminService implements domain.AdminService for handler tests.
type fakeAdminService struct {
	isAdmin      bool
	statusErr    error
	recording    *domain.Recording
	recordingErr error
	removeRecErr error
	inactiveWeek *domain.InactiveWeek
	inactiveErr  error
	activeErr    error
	admin        *domain.Admin
	addErr       error
	removeErr    error
	admins       []*domain.Admin
	listErr      error

	lastDate   string
	lastURL    string
	lastReason string
	lastEmail  string
}

func (f *fakeAdminService) CheckAdminStatus(ctx context.Context, actor domain.Actor) (bool, error) {
	if f.statusErr != nil {
		return false, f.statusErr
	}
	return f.isAdmin, nil
}

func (f *fakeAdminService) SetRecording(ctx context.Context, actor domain.Actor, meetingDate, recordingURL string) (*domain.Recording, error) {
	f.lastDate, f.lastURL = meetingDate, recordingURL
	if f.recordingErr != nil {
		return nil, f.recordingErr
	}
	return f.recording, nil
}

func (f *fakeAdminService) RemoveRecording(ctx context.Context, actor domain.Actor, meetingDate string) error {
	f.lastDate = meetingDate
	return f.removeRecErr
}

func (f *fakeAdminService) MarkWeekInactive(ctx context.Context, actor domain.Actor, meetingDate, reason string) (*domain.InactiveWeek, error) {
	f.lastDate, f.lastReason = meetingDate, reason
	if f.inactiveErr != nil {
		return nil, f.inactiveErr
	}
	return f.inactiveWeek, nil
}

func (f *fakeAdminService) MarkWeekActive(ctx context.Context, actor domain.Actor, meetingDate string) error {
	f.lastDate = meetingDate
	return f.activeErr
}

func (f *fakeAdminService) AddAdmin(ctx context.Context, actor domain.Actor, email string) (*domain.Admin, error) {
	f.lastEmail = email
	if f.addErr != nil {
		return nil, f.addErr
	}
	return f.admin, nil
}

func (f *fakeAdminService) RemoveAdmin(ctx context.Context, actor domain.Actor, email string) error {
	f.lastEmail = email
	return f.removeErr
}

func (f *fakeAdminService) ListAdmins(ctx context.Context, actor domain.Actor) ([]*domain.Admin, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.admins, nil
}

var adminCtxActor = domain.Actor{UserID: "user-1", Email: "admin@example.com"}

func TestAdminController_Status(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		c := NewAdminController(testLogger(), &fakeAdminService{isAdmin: true})

		rec := httptest.NewRecorder()
		c.Status(rec, withActor(httptest.NewRequest(http.MethodGet, "/admin/status", nil), adminCtxActor))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		require.Nil(t, resp.Error)
		assert.Equal(t, true, resp.Data.(map[string]any)["is_admin"])
	})

	t.Run("no token still succeeds with false", func(t *testing.T) {
		c := NewAdminController(testLogger(), &fakeAdminService{})

		rec := httptest.NewRecorder()
		c.Status(rec, httptest.NewRequest(http.MethodGet, "/admin/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		require.Nil(t, resp.Error)
		assert.Equal(t, false, resp.Data.(map[string]any)["is_admin"])
	})
}

func TestAdminController_SetRecording(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAdminService{recording: &domain.Recording{MeetingDate: "2024-01-04"}}
		c := NewAdminController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPut, "/meetings/2024-01-04/recording",
			bytes.NewBufferString(`{"recording_url":"https://tube.example.com/v/1"}`))
		req.SetPathValue("date", "2024-01-04")
		rec := httptest.NewRecorder()
		c.SetRecording(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2024-01-04", svc.lastDate)
		assert.Equal(t, "https://tube.example.com/v/1", svc.lastURL)
	})

	t.Run("missing url", func(t *testing.T) {
		c := NewAdminController(testLogger(), &fakeAdminService{})

		req := httptest.NewRequest(http.MethodPut, "/meetings/2024-01-04/recording", bytes.NewBufferString(`{}`))
		req.SetPathValue("date", "2024-01-04")
		rec := httptest.NewRecorder()
		c.SetRecording(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-admin", func(t *testing.T) {
		c := NewAdminController(testLogger(), &fakeAdminService{recordingErr: domain.ErrForbidden})

		req := httptest.NewRequest(http.MethodPut, "/meetings/2024-01-04/recording",
			bytes.NewBufferString(`{"recording_url":"https://tube.example.com/v/1"}`))
		req.SetPathValue("date", "2024-01-04")
		rec := httptest.NewRecorder()
		c.SetRecording(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeForbidden, resp.Error.Code)
	})
}

func TestAdminController_RemoveRecording(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAdminService{}
		c := NewAdminController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodDelete, "/meetings/2024-01-04/recording", nil)
		req.SetPathValue("date", "2024-01-04")
		rec := httptest.NewRecorder()
		c.RemoveRecording(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2024-01-04", svc.lastDate)
	})

	t.Run("no recording", func(t *testing.T) {
		c := NewAdminController(testLogger(), &fakeAdminService{removeRecErr: domain.ErrNotFound})

		req := httptest.NewRequest(http.MethodDelete, "/meetings/2024-01-04/recording", nil)
		req.SetPathValue("date", "2024-01-04")
		rec := httptest.NewRecorder()
		c.RemoveRecording(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminController_InactiveWeeks(t *testing.T) {
	t.Run("mark inactive with a reason", func(t *testing.T) {
		svc := &fakeAdminService{inactiveWeek: &domain.InactiveWeek{MeetingDate: "2024-01-04", Reason: "holiday"}}
		c := NewAdminController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPut, "/meetings/2024-01-04/inactive",
			bytes.NewBufferString(`{"reason":"holiday"}`))
		req.SetPathValue("date", "2024-01-04")
		rec := httptest.NewRecorder()
		c.MarkInactive(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "holiday", svc.lastReason)
	})

	t.Run("reason is optional", func(t *testing.T) {
		svc := &fakeAdminService{inactiveWeek: &domain.InactiveWeek{MeetingDate: "2024-01-04"}}
		c := NewAdminController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPut, "/meetings/2024-01-04/inactive", bytes.NewBufferString(`{}`))
		req.SetPathValue("date", "2024-01-04")
		rec := httptest.NewRecorder()
		c.MarkInactive(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unmark an active week", func(t *testing.T) {
		c := NewAdminController(testLogger(), &fakeAdminService{activeErr: domain.ErrWeekNotInactive})

		req := httptest.NewRequest(http.MethodDelete, "/meetings/2024-01-04/inactive", nil)
		req.SetPathValue("date", "2024-01-04")
		rec := httptest.NewRecorder()
		c.MarkActive(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeInvalidState, resp.Error.Code)
	})
}

func TestAdminController_Roster(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		c := NewAdminController(testLogger(), &fakeAdminService{admins: []*domain.Admin{
			{Email: "a@example.com"}, {Email: "b@example.com"},
		}})

		rec := httptest.NewRecorder()
		c.ListAdmins(rec, withActor(httptest.NewRequest(http.MethodGet, "/admins", nil), adminCtxActor))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Len(t, resp.Data, 2)
	})

	t.Run("add", func(t *testing.T) {
		svc := &fakeAdminService{admin: &domain.Admin{Email: "new@example.com"}}
		c := NewAdminController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPost, "/admins", bytes.NewBufferString(`{"email":"new@example.com"}`))
		rec := httptest.NewRecorder()
		c.AddAdmin(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "new@example.com", svc.lastEmail)
	})

	t.Run("add duplicate", func(t *testing.T) {
		c := NewAdminController(testLogger(), &fakeAdminService{addErr: domain.ErrAlreadyAdmin})

		req := httptest.NewRequest(http.MethodPost, "/admins", bytes.NewBufferString(`{"email":"a@example.com"}`))
		rec := httptest.NewRecorder()
		c.AddAdmin(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("remove self", func(t *testing.T) {
		c := NewAdminController(testLogger(), &fakeAdminService{removeErr: domain.ErrSelfRemoval})

		req := httptest.NewRequest(http.MethodDelete, "/admins/admin@example.com", nil)
		req.SetPathValue("email", "admin@example.com")
		rec := httptest.NewRecorder()
		c.RemoveAdmin(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("remove", func(t *testing.T) {
		svc := &fakeAdminService{}
		c := NewAdminController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodDelete, "/admins/other@example.com", nil)
		req.SetPathValue("email", "other@example.com")
		rec := httptest.NewRecorder()
		c.RemoveAdmin(rec, withActor(req, adminCtxActor))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "other@example.com", svc.lastEmail)
	})
}
