package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"showcase/internal/delivery/http/controllers"
	"showcase/internal/delivery/http/middleware"
	"showcase/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Public meeting views take an optional token so logged-in visitors see the
// same routes; mutations require one.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	meetingController *controllers.MeetingController,
	adminController *controllers.AdminController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)
	optional := middleware.OptionalAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("POST /auth/anonymous", authController.Anonymous)
	mux.HandleFunc("GET /users/me", auth(authController.Me))

	// Meetings (public views)
	mux.HandleFunc("GET /meetings/current", meetingController.GetCurrent)
	mux.HandleFunc("GET /meetings/weeks", meetingController.ListWeeks)
	mux.HandleFunc("GET /meetings/{date}", meetingController.GetByDate)

	// Presentations
	mux.HandleFunc("POST /presentations", auth(meetingController.SignUp))
	mux.HandleFunc("PATCH /presentations/{id}", auth(meetingController.Edit))
	mux.HandleFunc("DELETE /presentations/{id}", auth(meetingController.Delete))

	// Admin
	mux.HandleFunc("GET /admin/status", optional(adminController.Status))
	mux.HandleFunc("PUT /meetings/{date}/recording", auth(adminController.SetRecording))
	mux.HandleFunc("DELETE /meetings/{date}/recording", auth(adminController.RemoveRecording))
	mux.HandleFunc("PUT /meetings/{date}/inactive", auth(adminController.MarkInactive))
	mux.HandleFunc("DELETE /meetings/{date}/inactive", auth(adminController.MarkActive))
	mux.HandleFunc("GET /admins", auth(adminController.ListAdmins))
	mux.HandleFunc("POST /admins", auth(adminController.AddAdmin))
	mux.HandleFunc("DELETE /admins/{email}", auth(adminController.RemoveAdmin))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
