// Package services - MessageService
//
// This file implements MessageService, the application-level component that
// owns the lifecycle of chat messages. It validates inputs, checks that the
// parent session exists, and persists each message. Saving the first user
// message into a session that still carries the placeholder title rewrites
// that title to a short excerpt of the message, inside the same transaction.
//
// Observability: public methods are OpenTelemetry-instrumented; spans include
// session identifiers where applicable.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
	"github.com/guptaakarshan/mental-health/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// titleExcerptRunes is the excerpt length used when auto-titling a session
// from its first user message.
const titleExcerptRunes = 30

// MessageService coordinates chat-message persistence and session
// auto-titling.
type MessageService struct {
	DB *gorm.DB

	// MaxContentRunes caps message content length; 0 disables the cap.
	MaxContentRunes int
}

// Save validates and persists a message inside sessionID. When the message is
// the session's first user utterance and the session title is still the
// placeholder, the title is rewritten to an excerpt of the content.
func (s *MessageService) Save(ctx context.Context, sessionID, role, content string) (*domain.ChatMessage, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "Save",
		trace.WithAttributes(
			attribute.String("session.id", sessionID),
			attribute.String("message.role", role),
		),
	)
	defer span.End()

	if role != domain.RoleUser && role != domain.RoleAssistant {
		return nil, ErrInvalidRole
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if s.MaxContentRunes > 0 && utf8.RuneCountInString(content) > s.MaxContentRunes {
		content = string([]rune(content)[:s.MaxContentRunes])
	}

	session, err := repo.GetSession(ctx, s.DB, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var msg *domain.ChatMessage
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.CreateMessage(tx, sessionID, role, content)
		if err != nil {
			return err
		}
		msg = m

		if role == domain.RoleUser && session.Title == domain.DefaultSessionTitle {
			if gen := ExcerptTitle(content); gen != "" {
				if uerr := tx.Model(&domain.ChatSession{}).
					Where("id = ? AND title = ?", sessionID, domain.DefaultSessionTitle).
					Update("title", gen).Error; uerr != nil {
					return uerr
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns the messages of one session in insertion order.
func (s *MessageService) List(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(attribute.String("session.id", sessionID)),
	)
	defer span.End()

	return repo.ListMessages(ctx, s.DB, sessionID)
}

// ListForToken returns every message across all sessions owned by token.
func (s *MessageService) ListForToken(ctx context.Context, token string) ([]domain.ChatMessage, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}
	return repo.ListMessagesForToken(ctx, s.DB, token)
}

// ExcerptTitle derives a session title from the first user message: the
// whitespace-collapsed content, truncated to 30 runes with a "..." suffix
// when longer.
func ExcerptTitle(content string) string {
	content = strings.Join(strings.Fields(content), " ")
	if content == "" {
		return ""
	}
	if utf8.RuneCountInString(content) > titleExcerptRunes {
		return string([]rune(content)[:titleExcerptRunes]) + "..."
	}
	return content
}
