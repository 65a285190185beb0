// Package main wires the presentation sign-up API together: config, storage,
// adapters, services, and the HTTP router.
//
// @title Showcase API
// @version 1.0
// @description Weekly presentation sign-up sheet: meeting schedules, talk sign-ups, recordings, and admin tooling.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"showcase/config"
	_ "showcase/docs"
	authadapter "showcase/internal/adapters/auth"
	emailadapter "showcase/internal/adapters/email"
	delivery "showcase/internal/delivery/http"
	"showcase/internal/delivery/http/controllers"
	"showcase/internal/delivery/http/middleware"
	"showcase/internal/repository/postgres"
	"showcase/internal/schedule"
	"showcase/internal/services"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.Mailer.SESRegion,
			AccessKeyID:     cfg.Mailer.SESAccessKeyID,
			SecretAccessKey: cfg.Mailer.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	issuer, verifier := authadapter.NewJWTCodec(cfg.JWTSecret)
	hasher := authadapter.NewBcryptHasher(bcrypt.DefaultCost)
	engine := schedule.NewEngine(cfg.MeetingWeekday, cfg.SignupCutoffHour)

	presentationRepo := postgres.NewPresentationRepository(db)
	recordingRepo := postgres.NewRecordingRepository(db)
	inactiveRepo := postgres.NewInactiveWeekRepository(db)
	adminRepo := postgres.NewAdminRepository(db)
	userRepo := postgres.NewUserRepository(db)

	emailSvc := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	authSvc := services.NewAuthService(userRepo, hasher, issuer, emailSvc, cfg.JWTExpiry, logger, nil)
	meetingSvc := services.NewMeetingService(presentationRepo, recordingRepo, inactiveRepo, adminRepo, userRepo, engine, nil)
	adminSvc := services.NewAdminService(recordingRepo, inactiveRepo, adminRepo, emailSvc, logger, nil)

	mux := delivery.NewRouter(
		logger,
		verifier,
		controllers.NewAuthController(logger, authSvc),
		controllers.NewMeetingController(logger, meetingSvc),
		controllers.NewAdminController(logger, adminSvc),
	)

	handler := middleware.RequestID(middleware.Logging(logger, mux))
	handler = middleware.CORS(cfg.AllowedOrigins, handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
