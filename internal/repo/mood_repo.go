// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the MoodLog
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - Listing for an unknown token returns an empty slice, never an error.
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateMoodLog inserts a new mood log owned by token. The log ID is a
// randomly generated UUID (string), and CreatedAt is set to UTC.
func CreateMoodLog(ctx context.Context, db *gorm.DB, token string, score int, label string, notes *string) (*domain.MoodLog, error) {
	m := &domain.MoodLog{
		ID:           uuid.NewString(),
		SessionToken: token,
		MoodScore:    score,
		MoodLabel:    label,
		Notes:        notes,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListMoodLogs returns all mood logs for token in insertion order (oldest
// first). When since is non-nil, only logs created at or after it are
// returned. Unknown tokens yield an empty slice.
func ListMoodLogs(ctx context.Context, db *gorm.DB, token string, since *time.Time) ([]domain.MoodLog, error) {
	out := []domain.MoodLog{}
	q := db.WithContext(ctx).
		Where("session_token = ?", token).
		Order("created_at ASC, id ASC")
	if since != nil {
		q = q.Where("created_at >= ?", since.UTC())
	}
	err := q.Find(&out).Error
	return out, err
}

// CountMoodLogs returns the total number of mood logs owned by token.
func CountMoodLogs(ctx context.Context, db *gorm.DB, token string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.MoodLog{}).
		Where("session_token = ?", token).
		Count(&total).Error
	return total, err
}

// DeleteMoodLogs removes every mood log owned by token. Deleting for an
// unknown token is a no-op, not an error.
func DeleteMoodLogs(ctx context.Context, db *gorm.DB, token string) error {
	return db.WithContext(ctx).
		Where("session_token = ?", token).
		Delete(&domain.MoodLog{}).Error
}
