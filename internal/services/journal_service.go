// Package services - JournalService
//
// This file implements the JournalService, which manages journal entries:
// validating and appending new entries, listing with an optional start-date
// filter, and bulk deletion. Content is the only required field; the title
// and the advisory mood score are optional.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// JournalRepo defines the repository contract required by JournalService.
type JournalRepo interface {
	// CreateJournalEntry appends a new entry for the given token.
	CreateJournalEntry(ctx context.Context, db *gorm.DB, token string, title *string, content string, moodScore *int) (*domain.JournalEntry, error)

	// ListJournalEntries returns the token's entries oldest-first,
	// optionally filtered to entries created at or after since.
	ListJournalEntries(ctx context.Context, db *gorm.DB, token string, since *time.Time) ([]domain.JournalEntry, error)

	// DeleteJournalEntries removes every entry owned by the token.
	DeleteJournalEntries(ctx context.Context, db *gorm.DB, token string) error
}

// JournalService provides journal-entry operations: append, list, and bulk
// delete.
type JournalService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the journal repository used by this service.
	Repo JournalRepo
}

// NewJournalService constructs a JournalService.
func NewJournalService(db *gorm.DB, r JournalRepo) *JournalService {
	return &JournalService{DB: db, Repo: r}
}

// Write appends a journal entry for token. Content must be non-empty. A blank
// title is stored as NULL; a mood score, when present, must be on the 1–10
// scale.
func (s *JournalService) Write(ctx context.Context, token, title, content string, moodScore *int) (*domain.JournalEntry, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if moodScore != nil && (*moodScore < 1 || *moodScore > 10) {
		return nil, ErrInvalidMoodScore
	}

	var titlePtr *string
	if t := strings.TrimSpace(title); t != "" {
		titlePtr = &t
	}
	return s.Repo.CreateJournalEntry(ctx, s.DB, token, titlePtr, content, moodScore)
}

// List returns the token's journal entries oldest-first, optionally filtered
// by since. Unknown tokens produce an empty slice.
func (s *JournalService) List(ctx context.Context, token string, since *time.Time) ([]domain.JournalEntry, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}
	return s.Repo.ListJournalEntries(ctx, s.DB, token, since)
}

// DeleteAll removes every journal entry owned by token.
func (s *JournalService) DeleteAll(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenRequired
	}
	return s.Repo.DeleteJournalEntries(ctx, s.DB, token)
}
