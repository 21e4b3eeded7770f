// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// JournalEntry model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// CreateJournalEntry inserts a new journal entry owned by token. Title and
// moodScore are optional; CreatedAt/UpdatedAt are set to the same UTC instant.
func CreateJournalEntry(ctx context.Context, db *gorm.DB, token string, title *string, content string, moodScore *int) (*domain.JournalEntry, error) {
	now := time.Now().UTC()
	e := &domain.JournalEntry{
		ID:           uuid.NewString(),
		SessionToken: token,
		Title:        title,
		Content:      content,
		MoodScore:    moodScore,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

// ListJournalEntries returns all journal entries for token in insertion order
// (oldest first), optionally filtered to entries created at or after since.
// Unknown tokens yield an empty slice.
func ListJournalEntries(ctx context.Context, db *gorm.DB, token string, since *time.Time) ([]domain.JournalEntry, error) {
	out := []domain.JournalEntry{}
	q := db.WithContext(ctx).
		Where("session_token = ?", token).
		Order("created_at ASC, id ASC")
	if since != nil {
		q = q.Where("created_at >= ?", since.UTC())
	}
	err := q.Find(&out).Error
	return out, err
}

// CountJournalEntries returns the total number of entries owned by token.
func CountJournalEntries(ctx context.Context, db *gorm.DB, token string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.JournalEntry{}).
		Where("session_token = ?", token).
		Count(&total).Error
	return total, err
}

// DeleteJournalEntries removes every journal entry owned by token.
func DeleteJournalEntries(ctx context.Context, db *gorm.DB, token string) error {
	return db.WithContext(ctx).
		Where("session_token = ?", token).
		Delete(&domain.JournalEntry{}).Error
}
