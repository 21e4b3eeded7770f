// Package services - ExportService
//
// This file implements the data export: a single JSON document bundling all
// four record collections owned by a token plus summary statistics, served so
// users can take a complete copy of their data with them.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
	"github.com/guptaakarshan/mental-health/internal/repo"
)

// ExportSessionInfo identifies the exported partition.
type ExportSessionInfo struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name,omitempty"`
}

// ExportBundle is the full takeout document for one token.
type ExportBundle struct {
	ExportDate     time.Time             `json:"export_date"`
	SessionInfo    ExportSessionInfo     `json:"session_info"`
	MoodLogs       []domain.MoodLog      `json:"mood_logs"`
	JournalEntries []domain.JournalEntry `json:"journal_entries"`
	ChatSessions   []domain.ChatSession  `json:"chat_sessions"`
	Messages       []domain.ChatMessage  `json:"messages"`
	Statistics     repo.TokenStats       `json:"statistics"`
}

// ExportService assembles takeout bundles.
type ExportService struct {
	// DB is the GORM handle used for reads.
	DB *gorm.DB
}

// Bundle gathers every record owned by token into one document. displayName
// is caller-persisted state echoed into the bundle; it is not stored here.
func (s *ExportService) Bundle(ctx context.Context, token, displayName string) (*ExportBundle, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}

	logs, err := repo.ListMoodLogs(ctx, s.DB, token, nil)
	if err != nil {
		return nil, err
	}
	entries, err := repo.ListJournalEntries(ctx, s.DB, token, nil)
	if err != nil {
		return nil, err
	}
	sessions, err := repo.ListSessions(ctx, s.DB, token)
	if err != nil {
		return nil, err
	}
	messages, err := repo.ListMessagesForToken(ctx, s.DB, token)
	if err != nil {
		return nil, err
	}
	stats, err := repo.CountTokenRecords(ctx, s.DB, token)
	if err != nil {
		return nil, err
	}

	return &ExportBundle{
		ExportDate:     time.Now().UTC(),
		SessionInfo:    ExportSessionInfo{Token: token, DisplayName: displayName},
		MoodLogs:       logs,
		JournalEntries: entries,
		ChatSessions:   sessions,
		Messages:       messages,
		Statistics:     stats,
	}, nil
}
