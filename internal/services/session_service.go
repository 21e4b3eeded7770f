// Package services - SessionService
//
// This file implements the SessionService, which manages the lifecycle of
// chat sessions: creating placeholder-titled sessions, listing them
// newest-first, renaming, and bulk deletion (which also removes the messages
// a session contains).
//
// Renaming is a real point update. The behavior it replaces acknowledged the
// rename and then dropped it on the floor; callers here can rely on a
// subsequent list reflecting the new title.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// SessionRepo defines the repository contract required by SessionService.
type SessionRepo interface {
	// CreateSession inserts a new session for the given token.
	CreateSession(ctx context.Context, db *gorm.DB, token string) (*domain.ChatSession, error)

	// ListSessions returns the token's sessions, most recent first.
	ListSessions(ctx context.Context, db *gorm.DB, token string) ([]domain.ChatSession, error)

	// UpdateSessionTitle renames a session by id.
	UpdateSessionTitle(ctx context.Context, db *gorm.DB, id, title string) error

	// DeleteSessions removes the token's sessions and their messages.
	DeleteSessions(ctx context.Context, db *gorm.DB, token string) error
}

// SessionService provides chat-session operations. It enforces title rules
// (trim, clip, placeholder fallback).
type SessionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the session repository used by this service.
	Repo SessionRepo

	// TitleMaxLen caps stored titles by rune length.
	TitleMaxLen int
}

// NewSessionService constructs a SessionService with sane title defaults.
func NewSessionService(db *gorm.DB, r SessionRepo) *SessionService {
	return &SessionService{DB: db, Repo: r, TitleMaxLen: 255}
}

// Create starts a new session owned by token, titled with the placeholder.
func (s *SessionService) Create(ctx context.Context, token string) (*domain.ChatSession, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}
	return s.Repo.CreateSession(ctx, s.DB, token)
}

// List returns all sessions for token, most recent first.
func (s *SessionService) List(ctx context.Context, token string) ([]domain.ChatSession, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}
	return s.Repo.ListSessions(ctx, s.DB, token)
}

// Rename updates a session's title. A blank title falls back to the
// placeholder. Returns ErrSessionNotFound when the id is unknown.
func (s *SessionService) Rename(ctx context.Context, sessionID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		title = domain.DefaultSessionTitle
	}
	err := s.Repo.UpdateSessionTitle(ctx, s.DB, sessionID, s.clip(title))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSessionNotFound
	}
	return err
}

// DeleteAll removes every session owned by token along with their messages.
func (s *SessionService) DeleteAll(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenRequired
	}
	return s.Repo.DeleteSessions(ctx, s.DB, token)
}

// clip truncates a session title to the configured maximum rune length.
func (s *SessionService) clip(title string) string {
	if s.TitleMaxLen > 0 && utf8.RuneCountInString(title) > s.TitleMaxLen {
		return string([]rune(title)[:s.TitleMaxLen])
	}
	return title
}
