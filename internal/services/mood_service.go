// Package services - MoodService
//
// This file implements the MoodService, which manages the lifecycle of mood
// logs: validating check-ins, appending them to the token's log, listing with
// an optional start-date filter, and bulk deletion. Logs are immutable once
// created; there is no point update.
//
// Service-level errors (e.g., ErrInvalidMoodScore) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// MoodRepo defines the repository contract required by MoodService.
// Implementations are responsible for persistence of mood log aggregates.
type MoodRepo interface {
	// CreateMoodLog appends a new mood log for the given token.
	CreateMoodLog(ctx context.Context, db *gorm.DB, token string, score int, label string, notes *string) (*domain.MoodLog, error)

	// ListMoodLogs returns the token's logs oldest-first, optionally
	// filtered to logs created at or after since.
	ListMoodLogs(ctx context.Context, db *gorm.DB, token string, since *time.Time) ([]domain.MoodLog, error)

	// DeleteMoodLogs removes every log owned by the token.
	DeleteMoodLogs(ctx context.Context, db *gorm.DB, token string) error
}

// MoodService provides mood-log operations: append, list, and bulk delete.
// It enforces the 1–10 scale and required-label rule.
type MoodService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the mood repository used by this service.
	Repo MoodRepo
}

// NewMoodService constructs a MoodService.
func NewMoodService(db *gorm.DB, r MoodRepo) *MoodService {
	return &MoodService{DB: db, Repo: r}
}

// Log appends a mood check-in for token. Notes are optional; blank notes are
// stored as NULL rather than an empty string.
func (s *MoodService) Log(ctx context.Context, token string, score int, label string, notes string) (*domain.MoodLog, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}
	if score < 1 || score > 10 {
		return nil, ErrInvalidMoodScore
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrMoodLabelRequired
	}

	var notesPtr *string
	if n := strings.TrimSpace(notes); n != "" {
		notesPtr = &n
	}
	return s.Repo.CreateMoodLog(ctx, s.DB, token, score, label, notesPtr)
}

// List returns the token's mood logs oldest-first. since, when non-nil,
// restricts the result to logs created at or after that instant. Unknown
// tokens produce an empty slice.
func (s *MoodService) List(ctx context.Context, token string, since *time.Time) ([]domain.MoodLog, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}
	return s.Repo.ListMoodLogs(ctx, s.DB, token, since)
}

// DeleteAll removes every mood log owned by token.
func (s *MoodService) DeleteAll(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenRequired
	}
	return s.Repo.DeleteMoodLogs(ctx, s.DB, token)
}
