package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "showcase/internal/delivery/http/helpers"
	"showcase/internal/delivery/http/middleware"
	"showcase/internal/domain"
)

// SetRecordingRequest is the request body for PUT /meetings/{date}/recording
type SetRecordingRequest struct {
	RecordingURL string `json:"recording_url"`
}

// Validate implements Validator.
func (s SetRecordingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.RecordingURL) == "" {
		errs = append(errs, "recording_url is required")
	}
	return errs
}

// MarkInactiveRequest is the request body for PUT /meetings/{date}/inactive
type MarkInactiveRequest struct {
	Reason string `json:"reason"` // optional
}

// AddAdminRequest is the request body for POST /admins
type AddAdminRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (a AddAdminRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// AdminStatusResponse is the response body for GET /admin/status
type AdminStatusResponse struct {
	IsAdmin bool `json:"is_admin"`
}

type AdminController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
	}
}

// Status godoc
// @Summary Check admin status
// @Description Reports whether the caller is an admin. Unauthenticated and guest callers get false, never an error.
// @Tags admin
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains is_admin"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/status [get]
func (c *AdminController) Status(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())
	isAdmin, err := c.Service.CheckAdminStatus(r.Context(), actor)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, AdminStatusResponse{IsAdmin: isAdmin})
}

// SetRecording godoc
// @Summary Set a meeting recording
// @Description Stores or replaces the recording link for the date. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date path string true "Meeting date (YYYY-MM-DD)"
// @Param body body SetRecordingRequest true "Recording link"
// @Success 200 {object} helpers.APIResponse "data contains the recording"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: not_authenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /meetings/{date}/recording [put]
func (c *AdminController) SetRecording(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.WriteDomainError(w, domain.ErrNotAuthenticated)
		return
	}
	var req SetRecordingRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	rec, err := c.Service.SetRecording(r.Context(), actor, r.PathValue("date"), req.RecordingURL)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, rec)
}

// RemoveRecording godoc
// @Summary Remove a meeting recording
// @Description Deletes the recording link for the date. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date path string true "Meeting date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 401 {object} helpers.APIResponse "error.code: not_authenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /meetings/{date}/recording [delete]
func (c *AdminController) RemoveRecording(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.WriteDomainError(w, domain.ErrNotAuthenticated)
		return
	}
	if err := c.Service.RemoveRecording(r.Context(), actor, r.PathValue("date")); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

// MarkInactive godoc
// @Summary Mark a week inactive
// @Description Marks the date's week inactive with an optional reason. Marking an already inactive week updates the reason. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date path string true "Meeting date (YYYY-MM-DD)"
// @Param body body MarkInactiveRequest true "Optional reason"
// @Success 200 {object} helpers.APIResponse "data contains the inactive-week marker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: not_authenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /meetings/{date}/inactive [put]
func (c *AdminController) MarkInactive(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.WriteDomainError(w, domain.ErrNotAuthenticated)
		return
	}
	var req MarkInactiveRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	week, err := c.Service.MarkWeekInactive(r.Context(), actor, r.PathValue("date"), req.Reason)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, week)
}

// MarkActive godoc
// @Summary Mark a week active again
// @Description Removes the inactive marker for the date. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date path string true "Meeting date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 401 {object} helpers.APIResponse "error.code: not_authenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_state (week is not inactive)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /meetings/{date}/inactive [delete]
func (c *AdminController) MarkActive(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.WriteDomainError(w, domain.ErrNotAuthenticated)
		return
	}
	if err := c.Service.MarkWeekActive(r.Context(), actor, r.PathValue("date")); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

// ListAdmins godoc
// @Summary List the admin roster
// @Description Returns all admins in grant order. Non-admin callers get an empty list, not an error.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the admin list"
// @Failure 401 {object} helpers.APIResponse "error.code: not_authenticated"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admins [get]
func (c *AdminController) ListAdmins(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())
	admins, err := c.Service.ListAdmins(r.Context(), actor)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, admins)
}

// AddAdmin godoc
// @Summary Grant admin rights
// @Description Adds an email to the admin roster (stored lowercased). Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AddAdminRequest true "Email to grant"
// @Success 201 {object} helpers.APIResponse "data contains the new admin"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: not_authenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_state (already an admin)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admins [post]
func (c *AdminController) AddAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.WriteDomainError(w, domain.ErrNotAuthenticated)
		return
	}
	var req AddAdminRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	admin, err := c.Service.AddAdmin(r.Context(), actor, req.Email)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, admin)
}

// RemoveAdmin godoc
// @Summary Revoke admin rights
// @Description Removes an email from the admin roster. Admins cannot remove themselves. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email to revoke"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 401 {object} helpers.APIResponse "error.code: not_authenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_state (not an admin, or self-removal)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admins/{email} [delete]
func (c *AdminController) RemoveAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.WriteDomainError(w, domain.ErrNotAuthenticated)
		return
	}
	if err := c.Service.RemoveAdmin(r.Context(), actor, r.PathValue("email")); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

func (c *AdminController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if !domain.IsClientError(err) {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	h.WriteDomainError(w, err)
}
