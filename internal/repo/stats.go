// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// by the export surface. Each function is context-aware and safe to call from
// services or handlers.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// TokenStats holds per-collection record counts for one session token.
type TokenStats struct {
	MoodLogs       int64 `json:"moodLogs"`
	JournalEntries int64 `json:"journalEntries"`
	ChatSessions   int64 `json:"chatSessions"`
	Messages       int64 `json:"messages"`
}

// CountTokenRecords returns record counts across all four collections owned
// by token. A token with no data yields all-zero counts, never an error.
func CountTokenRecords(ctx context.Context, db *gorm.DB, token string) (TokenStats, error) {
	var st TokenStats
	var err error

	if st.MoodLogs, err = CountMoodLogs(ctx, db, token); err != nil {
		return st, err
	}
	if st.JournalEntries, err = CountJournalEntries(ctx, db, token); err != nil {
		return st, err
	}
	if st.ChatSessions, err = CountSessions(ctx, db, token); err != nil {
		return st, err
	}

	sub := db.Model(&domain.ChatSession{}).
		Select("id").
		Where("session_token = ?", token)
	err = db.WithContext(ctx).
		Model(&domain.ChatMessage{}).
		Where("session_id IN (?)", sub).
		Count(&st.Messages).Error
	return st, err
}
