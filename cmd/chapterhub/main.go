package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"chapterhub/config"
	_ "chapterhub/docs"
	"chapterhub/internal/adapters/auth"
	"chapterhub/internal/adapters/email"
	chapterhttp "chapterhub/internal/delivery/http"
	"chapterhub/internal/delivery/http/controllers"
	"chapterhub/internal/delivery/http/middleware"
	"chapterhub/internal/domain"
	"chapterhub/internal/services"
	"chapterhub/internal/store/file"
	"chapterhub/internal/store/postgres"
)

// @title Chapter Hub API
// @version 1.0
// @description Backend for the IEEE student chapter website: events, members, blog, gallery, form submissions, and the admin area.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := config.NewLogger()
	logger.Info("starting chapterhub", "environment", cfg.Environment, "store_driver", cfg.StoreDriver)

	store, cleanup, err := newStore(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize catalog store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx := context.Background()
	catalog, err := services.NewCatalogService(ctx, store)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	credentials, err := auth.NewStaticVerifier(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		logger.Error("failed to initialize credential verifier", "error", err)
		os.Exit(1)
	}
	issuer, tokens := auth.NewJWTAdapter(cfg.JWTSecret)
	sessions := auth.NewFileSessionStore(cfg.SessionFile)
	gate := services.NewAdminGate(credentials, issuer, tokens, sessions, cfg.AdminEmail)

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)
	notifier := email.NewSubmissionNotifier(mailer, cfg.NotifyAddress)

	router := chapterhttp.NewRouter(chapterhttp.Controllers{
		Auth:        controllers.NewAuthController(logger, gate),
		Events:      controllers.NewEventController(logger, catalog),
		Members:     controllers.NewMemberController(logger, catalog),
		Blog:        controllers.NewBlogController(logger, catalog),
		Gallery:     controllers.NewGalleryController(logger, catalog),
		Submissions: controllers.NewSubmissionController(logger, catalog, notifier),
		Dashboard:   controllers.NewDashboardController(logger, catalog),
	}, gate, logger)

	handler := middleware.Logging(logger, middleware.CORS(cfg.CORSAllowedOrigins, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}

// newStore builds the configured catalog store. The returned cleanup closes
// any underlying database connection.
func newStore(cfg *config.Config, logger *slog.Logger) (domain.CatalogStore, func(), error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewStore(db, logger), func() { db.Close() }, nil
	default:
		return file.NewStore(cfg.DataFile, logger), func() {}, nil
	}
}
