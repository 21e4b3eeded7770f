// Handler wiring and shared helpers.
//
// This file defines the service contracts consumed by the HTTP layer, the
// Handlers aggregate that groups all endpoints, and small helpers shared
// across handler files (token extraction, start-date parsing, service-error
// mapping). Handlers are transport-thin: validate input, call a service,
// translate the result.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guptaakarshan/mental-health/internal/domain"
	"github.com/guptaakarshan/mental-health/internal/services"
	"github.com/guptaakarshan/mental-health/internal/utils"
)

//
// Service contracts (context-aware)
//

// MoodService defines mood-log operations consumed by HTTP handlers.
// Implementations must be safe for concurrent use and honor the context.
type MoodService interface {
	// Log appends a mood check-in for token.
	Log(ctx context.Context, token string, score int, label, notes string) (*domain.MoodLog, error)
	// List returns the token's logs oldest-first, optionally since a date.
	List(ctx context.Context, token string, since *time.Time) ([]domain.MoodLog, error)
	// DeleteAll removes every log owned by token.
	DeleteAll(ctx context.Context, token string) error
}

// JournalService defines journal-entry operations consumed by HTTP handlers.
type JournalService interface {
	// Write appends a journal entry for token.
	Write(ctx context.Context, token, title, content string, moodScore *int) (*domain.JournalEntry, error)
	// List returns the token's entries oldest-first, optionally since a date.
	List(ctx context.Context, token string, since *time.Time) ([]domain.JournalEntry, error)
	// DeleteAll removes every entry owned by token.
	DeleteAll(ctx context.Context, token string) error
}

// SessionService defines chat-session lifecycle operations.
type SessionService interface {
	// Create starts a new placeholder-titled session for token.
	Create(ctx context.Context, token string) (*domain.ChatSession, error)
	// List returns the token's sessions, most recent first.
	List(ctx context.Context, token string) ([]domain.ChatSession, error)
	// Rename updates a session title.
	Rename(ctx context.Context, sessionID, title string) error
	// DeleteAll removes the token's sessions and their messages.
	DeleteAll(ctx context.Context, token string) error
}

// MessageService defines chat-message operations.
type MessageService interface {
	// Save persists a message inside a session, auto-titling on first user turn.
	Save(ctx context.Context, sessionID, role, content string) (*domain.ChatMessage, error)
	// List returns one session's messages in insertion order.
	List(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	// ListForToken returns every message across all of a token's sessions.
	ListForToken(ctx context.Context, token string) ([]domain.ChatMessage, error)
}

// SurveyService defines survey submission handling.
type SurveyService interface {
	// Submit scores and persists a set of responses, returning the result and
	// the (possibly newly minted) session token.
	Submit(ctx context.Context, token string, responses map[string]string) (services.SurveyResult, string, error)
}

// AnalyticsService defines the derived dashboard view.
type AnalyticsService interface {
	// Overview aggregates a token's records into the dashboard summary.
	Overview(ctx context.Context, token string, since *time.Time) (services.AnalyticsSummary, error)
}

// ExportService defines the data takeout operation.
type ExportService interface {
	// Bundle gathers every record owned by token into one document.
	Bundle(ctx context.Context, token, displayName string) (*services.ExportBundle, error)
}

// AnswerClient is the upstream answer-service contract used by the chat
// proxy endpoint.
type AnswerClient interface {
	// Ask sends one question upstream and returns the answer text.
	Ask(ctx context.Context, question string) (string, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for mood logs, journal entries, chat
// sessions and messages, the chat proxy, surveys, analytics, and export. It
// depends on service interfaces to keep transport separate from business
// logic.
type Handlers struct {
	moodSvc      MoodService
	journalSvc   JournalService
	sessionSvc   SessionService
	msgSvc       MessageService
	surveySvc    SurveyService
	analyticsSvc AnalyticsService
	exportSvc    ExportService
	answers      AnswerClient
}

// New constructs a Handlers instance bound to the given services.
func New(
	mood MoodService,
	journal JournalService,
	sessions SessionService,
	messages MessageService,
	survey SurveyService,
	analytics AnalyticsService,
	export ExportService,
	answers AnswerClient,
) *Handlers {
	return &Handlers{
		moodSvc:      mood,
		journalSvc:   journal,
		sessionSvc:   sessions,
		msgSvc:       messages,
		surveySvc:    survey,
		analyticsSvc: analytics,
		exportSvc:    export,
		answers:      answers,
	}
}

//
// Helpers
//

// queryToken extracts the session token from the query string, accepting both
// the long and the short parameter name used across the API.
func queryToken(c *gin.Context) string {
	if t := strings.TrimSpace(c.Query("sessionToken")); t != "" {
		return t
	}
	return strings.TrimSpace(c.Query("token"))
}

// parseStartDate reads the optional startDate query parameter. Accepted
// formats: RFC 3339 and plain "2006-01-02" (midnight UTC). Returns
// (nil, true) when absent, (nil, false) when malformed.
func parseStartDate(c *gin.Context) (*time.Time, bool) {
	return utils.ParseDate(strings.TrimSpace(c.Query("startDate")))
}

// failFromService maps service sentinel errors onto HTTP responses. Known
// validation errors become 400, unknown sessions 404, everything else the
// supplied fallback status and code.
func failFromService(c *gin.Context, err error, fallbackStatus int, fallbackCode string) {
	switch {
	case errors.Is(err, services.ErrTokenRequired),
		errors.Is(err, services.ErrInvalidMoodScore),
		errors.Is(err, services.ErrMoodLabelRequired),
		errors.Is(err, services.ErrContentRequired),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrNoResponses),
		errors.Is(err, services.ErrEmptyConversation):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrSessionNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	default:
		fail(c, fallbackStatus, fallbackCode, err.Error())
	}
}
