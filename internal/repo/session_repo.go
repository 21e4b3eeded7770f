// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the ChatSession
// model.
//
// Sessions are listed newest-first (the conversation picker shows the most
// recent chat on top), unlike the oldest-first ordering used for mood logs
// and journal entries.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// CreateSession inserts a new chat session owned by token with the default
// placeholder title.
func CreateSession(ctx context.Context, db *gorm.DB, token string) (*domain.ChatSession, error) {
	s := &domain.ChatSession{
		ID:           uuid.NewString(),
		SessionToken: token,
		Title:        domain.DefaultSessionTitle,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// ListSessions returns all sessions belonging to token, most recent first.
// Unknown tokens yield an empty slice.
func ListSessions(ctx context.Context, db *gorm.DB, token string) ([]domain.ChatSession, error) {
	out := []domain.ChatSession{}
	err := db.WithContext(ctx).
		Where("session_token = ?", token).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// GetSession fetches a single session by its ID. If the record does not
// exist, it returns ErrNotFound.
func GetSession(ctx context.Context, db *gorm.DB, id string) (*domain.ChatSession, error) {
	var s domain.ChatSession
	if err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSessionTitle updates the title of the session identified by id.
// If no rows are affected (session missing), it returns ErrNotFound.
func UpdateSessionTitle(ctx context.Context, db *gorm.DB, id, title string) error {
	res := db.WithContext(ctx).
		Model(&domain.ChatSession{}).
		Where("id = ?", id).
		Update("title", title)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountSessions returns the total number of sessions owned by token.
func CountSessions(ctx context.Context, db *gorm.DB, token string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ChatSession{}).
		Where("session_token = ?", token).
		Count(&total).Error
	return total, err
}

// DeleteSessions removes every session owned by token together with the
// messages they contain. Runs in one transaction so a partial delete never
// leaves orphaned messages behind.
func DeleteSessions(ctx context.Context, db *gorm.DB, token string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&domain.ChatSession{}).
			Select("id").
			Where("session_token = ?", token)
		if err := tx.Where("session_id IN (?)", sub).Delete(&domain.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Where("session_token = ?", token).Delete(&domain.ChatSession{}).Error
	})
}
