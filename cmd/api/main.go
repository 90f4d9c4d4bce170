// Package main is the entrypoint for the Nordfolio API server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nordfolio/nordfolio/internal/auth"
	"github.com/nordfolio/nordfolio/internal/cache"
	"github.com/nordfolio/nordfolio/internal/config"
	"github.com/nordfolio/nordfolio/internal/handler"
	"github.com/nordfolio/nordfolio/internal/middleware"
	"github.com/nordfolio/nordfolio/internal/repository"
	"github.com/nordfolio/nordfolio/internal/server"
	"github.com/nordfolio/nordfolio/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to Redis")

	codec, err := auth.NewTokenCodec(cfg.SessionSecret, cfg.IsProduction())
	if err != nil {
		logger.Error("failed to initialize session codec", "error", err)
		os.Exit(1)
	}

	// Services. Every content mutation invalidates the public rendering
	// through the shared cache client.
	projectSvc := service.NewContent(repository.NewOrdered(repo, repository.ProjectSchema), cacheClient, service.ValidateProject, logger)
	experienceSvc := service.NewContent(repository.NewOrdered(repo, repository.ExperienceSchema), cacheClient, service.ValidateExperience, logger)
	educationSvc := service.NewContent(repository.NewOrdered(repo, repository.EducationSchema), cacheClient, service.ValidateEducation, logger)
	certificationSvc := service.NewContent(repository.NewOrdered(repo, repository.CertificationSchema), cacheClient, service.ValidateCertification, logger)
	achievementSvc := service.NewContent(repository.NewOrdered(repo, repository.AchievementSchema), cacheClient, service.ValidateAchievement, logger)
	skillCategorySvc := service.NewContent(repository.NewOrdered(repo, repository.SkillCategorySchema), cacheClient, service.ValidateSkillCategory, logger)

	settingsSvc := service.NewSettings(repo, cacheClient, logger)
	portfolioSvc := service.NewPortfolio(
		settingsSvc,
		projectSvc, experienceSvc, educationSvc,
		certificationSvc, achievementSvc, skillCategorySvc,
		cacheClient, cfg.RenderCacheTTL, logger,
	)
	inboxSvc := service.NewInbox(repo)
	analyticsSvc := service.NewAnalytics(repo)

	// Handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	authHandler := handler.NewAuthHandler(repo, codec, cfg.IsProduction(), logger)
	publicHandler := handler.NewPublicHandler(portfolioSvc, logger)
	settingsHandler := handler.NewSettingsHandler(settingsSvc, logger)
	contactHandler := handler.NewContactHandler(inboxSvc, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc, logger)
	revalidateHandler := handler.NewRevalidateHandler(cacheClient, logger)

	projectHandler := handler.NewContent(projectSvc, "project", logger)
	experienceHandler := handler.NewContent(experienceSvc, "experience", logger)
	educationHandler := handler.NewContent(educationSvc, "education", logger)
	certificationHandler := handler.NewContent(certificationSvc, "certification", logger)
	achievementHandler := handler.NewContent(achievementSvc, "achievement", logger)
	skillCategoryHandler := handler.NewContent(skillCategorySvc, "skill_category", logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Public portfolio rendering
	r.Get("/", publicHandler.Portfolio)

	requireSession := middleware.RequireSession(codec, logger)
	publicRateLimit := middleware.RateLimitIP(middleware.RateLimitConfig{
		Logger:  logger,
		Cache:   cacheClient,
		Enabled: cfg.RateLimitPublicEnabled,
		RPS:     cfg.RateLimitPublicRPS,
		Burst:   cfg.RateLimitPublicBurst,
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.With(requireSession).Get("/me", authHandler.Me)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingsHandler.Get)
			r.With(requireSession).Put("/", settingsHandler.Update)
		})

		contentRoutes(r, "/projects", projectHandler, requireSession)
		contentRoutes(r, "/experiences", experienceHandler, requireSession)
		contentRoutes(r, "/education", educationHandler, requireSession)
		contentRoutes(r, "/certifications", certificationHandler, requireSession)
		contentRoutes(r, "/achievements", achievementHandler, requireSession)
		contentRoutes(r, "/skill-categories", skillCategoryHandler, requireSession)

		r.Route("/contact", func(r chi.Router) {
			r.With(publicRateLimit).Post("/", contactHandler.Submit)
			r.With(requireSession).Get("/", contactHandler.List)
			r.With(requireSession).Patch("/{id}", contactHandler.UpdateFlags)
			r.With(requireSession).Delete("/{id}", contactHandler.Delete)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.With(publicRateLimit).Post("/", analyticsHandler.Record)
			r.With(requireSession).Get("/", analyticsHandler.List)
		})

		r.With(requireSession).Post("/revalidate", revalidateHandler.Revalidate)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	srv := server.New(r, server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	// Registered first, released last: in-flight requests may still be
	// touching the pool while Redis closes.
	srv.OnClose("postgres", func(context.Context) error {
		repo.Close()
		return nil
	})
	srv.OnClose("redis", func(context.Context) error {
		return cacheClient.Close()
	})

	logger.Info("starting server",
		"addr", srv.Addr(),
		"env", cfg.AppEnv,
		"render_ttl", cfg.RenderCacheTTL.String(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// contentRoutes mounts the standard route set for one ordered collection:
// public reads, session-gated writes.
func contentRoutes[T any](r chi.Router, pattern string, h *handler.Content[T], requireSession func(http.Handler) http.Handler) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.With(requireSession).Post("/", h.Create)
		r.With(requireSession).Put("/{id}", h.Update)
		r.With(requireSession).Delete("/{id}", h.Delete)
	})
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
