package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "showcase/internal/delivery/http/helpers"
	"showcase/internal/delivery/http/middleware"
	"showcase/internal/domain"
)

// SignUpToPresentRequest is the request body for POST /presentations
type SignUpToPresentRequest struct {
	Title       string `json:"title"`
	MeetingDate string `json:"meeting_date"` // optional, YYYY-MM-DD; defaults to the next meeting
}

// Validate implements Validator.
func (s SignUpToPresentRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Title) == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

// EditPresentationRequest is the request body for PATCH /presentations/{id}
type EditPresentationRequest struct {
	Title string `json:"title"`
}

// Validate implements Validator.
func (e EditPresentationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Title) == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

type MeetingController struct {
	Logger  *slog.Logger
	Service domain.MeetingService
}

func NewMeetingController(logger *slog.Logger, svc domain.MeetingService) *MeetingController {
	return &MeetingController{
		Logger:  logger,
		Service: svc,
	}
}

// GetCurrent godoc
// @Summary Get the upcoming meeting
// @Description Returns the next meeting date with its presentations, recording link, and inactive status. Same-day requests before the signup cutoff still target today.
// @Tags meetings
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the meeting view"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /meetings/current [get]
func (c *MeetingController) GetCurrent(w http.ResponseWriter, r *http.Request) {
	view, err := c.Service.GetUpcomingMeeting(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, view)
}

// GetByDate godoc
// @Summary Get a meeting by date
// @Description Returns the meeting view for the given YYYY-MM-DD date. Dates with no presentations return an empty list, not 404.
// @Tags meetings
// @Produce json
// @Param date path string true "Meeting date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains the meeting view"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /meetings/{date} [get]
func (c *MeetingController) GetByDate(w http.ResponseWriter, r *http.Request) {
	view, err := c.Service.GetMeetingByDate(r.Context(), r.PathValue("date"))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, view)
}

// ListWeeks godoc
// @Summary List selectable weeks
// @Description Returns past weeks that have presentations or inactive markers plus the next eight future weeks, oldest first.
// @Tags meetings
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the week list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /meetings/weeks [get]
func (c *MeetingController) ListWeeks(w http.ResponseWriter, r *http.Request) {
	weeks, err := c.Service.ListAvailableWeeks(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, weeks)
}

// SignUp godoc
// @Summary Sign up to present
// @Description Registers the authenticated user to present on the given date (next meeting when omitted). One signup per user per week; guests cannot sign up.
// @Tags presentations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SignUpToPresentRequest true "Presentation data"
// @Success 201 {object} helpers.APIResponse "data contains the created presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: not_authenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (guest session)"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_state (inactive week or duplicate signup)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations [post]
func (c *MeetingController) SignUp(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.WriteDomainError(w, domain.ErrNotAuthenticated)
		return
	}
	var req SignUpToPresentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.SignUpToPresent(r.Context(), actor, req.Title, req.MeetingDate)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, p)
}

// Edit godoc
// @Summary Edit a presentation title
// @Description Updates the title. Allowed for the presenter or an admin; blocked on inactive weeks for non-admins.
// @Tags presentations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Presentation ID"
// @Param body body EditPresentationRequest true "New title"
// @Success 200 {object} helpers.APIResponse "data contains the updated presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: not_authenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_state (inactive week)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations/{id} [patch]
func (c *MeetingController) Edit(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.WriteDomainError(w, domain.ErrNotAuthenticated)
		return
	}
	var req EditPresentationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.EditPresentation(r.Context(), actor, r.PathValue("id"), req.Title)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, p)
}

// Delete godoc
// @Summary Delete a presentation
// @Description Removes a presentation. Allowed for the presenter or an admin; blocked on inactive weeks for non-admins.
// @Tags presentations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Presentation ID"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 401 {object} helpers.APIResponse "error.code: not_authenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_state (inactive week)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations/{id} [delete]
func (c *MeetingController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.WriteDomainError(w, domain.ErrNotAuthenticated)
		return
	}
	if err := c.Service.DeletePresentation(r.Context(), actor, r.PathValue("id")); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

func (c *MeetingController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if !domain.IsClientError(err) {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	h.WriteDomainError(w, err)
}
