// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Responses with personal wellness data are never cacheable
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/guptaakarshan/mental-health/docs"
	"github.com/guptaakarshan/mental-health/internal/answer"
	"github.com/guptaakarshan/mental-health/internal/config"
	"github.com/guptaakarshan/mental-health/internal/domain"
	"github.com/guptaakarshan/mental-health/internal/http/handlers"
	"github.com/guptaakarshan/mental-health/internal/http/middleware"
	"github.com/guptaakarshan/mental-health/internal/repo"
	"github.com/guptaakarshan/mental-health/internal/services"
)

// moodRepoShim adapts the repository free functions to the services.MoodRepo
// interface. This keeps services decoupled from the concrete repo package
// while reusing the existing functions.
type moodRepoShim struct{}

func (moodRepoShim) CreateMoodLog(ctx context.Context, db *gorm.DB, token string, score int, label string, notes *string) (*domain.MoodLog, error) {
	return repo.CreateMoodLog(ctx, db, token, score, label, notes)
}

func (moodRepoShim) ListMoodLogs(ctx context.Context, db *gorm.DB, token string, since *time.Time) ([]domain.MoodLog, error) {
	return repo.ListMoodLogs(ctx, db, token, since)
}

func (moodRepoShim) DeleteMoodLogs(ctx context.Context, db *gorm.DB, token string) error {
	return repo.DeleteMoodLogs(ctx, db, token)
}

// journalRepoShim adapts the repo free functions to services.JournalRepo.
type journalRepoShim struct{}

func (journalRepoShim) CreateJournalEntry(ctx context.Context, db *gorm.DB, token string, title *string, content string, moodScore *int) (*domain.JournalEntry, error) {
	return repo.CreateJournalEntry(ctx, db, token, title, content, moodScore)
}

func (journalRepoShim) ListJournalEntries(ctx context.Context, db *gorm.DB, token string, since *time.Time) ([]domain.JournalEntry, error) {
	return repo.ListJournalEntries(ctx, db, token, since)
}

func (journalRepoShim) DeleteJournalEntries(ctx context.Context, db *gorm.DB, token string) error {
	return repo.DeleteJournalEntries(ctx, db, token)
}

// sessionRepoShim adapts the repo free functions to services.SessionRepo.
type sessionRepoShim struct{}

func (sessionRepoShim) CreateSession(ctx context.Context, db *gorm.DB, token string) (*domain.ChatSession, error) {
	return repo.CreateSession(ctx, db, token)
}

func (sessionRepoShim) ListSessions(ctx context.Context, db *gorm.DB, token string) ([]domain.ChatSession, error) {
	return repo.ListSessions(ctx, db, token)
}

func (sessionRepoShim) UpdateSessionTitle(ctx context.Context, db *gorm.DB, id, title string) error {
	return repo.UpdateSessionTitle(ctx, db, id, title)
}

func (sessionRepoShim) DeleteSessions(ctx context.Context, db *gorm.DB, token string) error {
	return repo.DeleteSessions(ctx, db, token)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), compression and
// rate limiting, CORS and security headers, health/metrics/swagger endpoints,
// and then mounts the public API under the configured base path.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with token scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression (export payloads benefit most)
//  7. Metrics
//  8. Rate limiter (per token/IP)
//  9. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, answers *answer.Client, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with session-token scrubbing
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compression
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per session token / IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByTokenOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header.
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Content-Disposition"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, okOrigin := allowed[origin]; okOrigin {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers; NoStore because every payload is personal data.
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      true,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (off by default)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db/upstream client
	moodSvc := services.NewMoodService(db, moodRepoShim{})
	journalSvc := services.NewJournalService(db, journalRepoShim{})
	sessionSvc := services.NewSessionService(db, sessionRepoShim{})
	msgSvc := &services.MessageService{DB: db, MaxContentRunes: 4000}
	surveySvc := &services.SurveyService{DB: db}
	analyticsSvc := &services.AnalyticsService{DB: db}
	exportSvc := &services.ExportService{DB: db}

	h := handlers.New(moodSvc, journalSvc, sessionSvc, msgSvc, surveySvc, analyticsSvc, exportSvc, answers)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Tokens
		api.POST("/tokens", h.IssueToken)

		// Mood logs
		api.GET("/mood-logs", h.ListMoodLogs)
		api.POST("/mood-logs", h.CreateMoodLog)
		api.DELETE("/mood-logs", h.DeleteMoodLogs)

		// Journal entries
		api.GET("/journal-entries", h.ListJournalEntries)
		api.POST("/journal-entries", h.CreateJournalEntry)
		api.DELETE("/journal-entries", h.DeleteJournalEntries)

		// Chat sessions
		api.GET("/sessions", h.ListSessions)
		api.POST("/sessions", h.CreateSession)
		api.PUT("/sessions", h.UpdateSession)
		api.DELETE("/sessions", h.DeleteSessions)

		// Chat messages
		api.GET("/messages", h.ListMessages)
		api.POST("/messages", h.CreateMessage)

		// Chat proxy
		api.POST("/chat", h.Chat)

		// Survey, analytics, export
		api.POST("/survey", h.SubmitSurvey)
		api.GET("/analytics", h.Analytics)
		api.GET("/export", h.Export)
	}
}

// limitBody caps the request body size for all endpoints using
// http.MaxBytesReader; reads past the cap error downstream.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
