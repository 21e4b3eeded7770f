// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the ChatMessage
// model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// CreateMessage inserts a new message row for sessionID.
func CreateMessage(db *gorm.DB, sessionID, role, content string) (*domain.ChatMessage, error) {
	m := &domain.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	return m, db.Create(m).Error
}

// ListMessages returns a session's messages ordered deterministically
// (CreatedAt ASC, ID ASC). Unknown session IDs yield an empty slice.
func ListMessages(ctx context.Context, db *gorm.DB, sessionID string) ([]domain.ChatMessage, error) {
	out := []domain.ChatMessage{}
	err := db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// ListMessagesForToken returns every message across all sessions owned by
// token, ordered by creation time. Used by the export and stats surfaces.
func ListMessagesForToken(ctx context.Context, db *gorm.DB, token string) ([]domain.ChatMessage, error) {
	out := []domain.ChatMessage{}
	sub := db.Model(&domain.ChatSession{}).
		Select("id").
		Where("session_token = ?", token)
	err := db.WithContext(ctx).
		Where("session_id IN (?)", sub).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// CountMessages uses a raw COUNT so a missing table surfaces as an error.
func CountMessages(ctx context.Context, db *gorm.DB, sessionID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM chat_messages WHERE session_id = ?", sessionID).
		Scan(&total).Error
	return total, err
}
