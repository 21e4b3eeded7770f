// Package domain defines the persistence models for mood logs, journal
// entries, chat sessions, chat messages, and survey submissions. These types
// are mapped with GORM and form the core data layer of the wellness backend.
//
// Every per-user record carries a SessionToken column: an opaque, anonymous
// partition key supplied (or issued) to the client. No cross-token references
// exist; a token exclusively owns its record lists.
package domain

import (
	"time"
)

// MoodLog is a single immutable mood check-in. Logs are append-only and are
// removed only by a bulk delete of the owning token's logs.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - SessionToken: anonymous partition key; indexed for per-user retrieval.
//   - MoodScore: integer rating 1–10 (enforced by DB constraint).
//   - MoodLabel: human-readable mood name chosen alongside the score.
//   - Notes: optional free text attached to the check-in.
//   - CreatedAt: insertion timestamp (UTC); list order and date filters key on it.
type MoodLog struct {
	ID           string    `json:"id"            gorm:"type:char(36);primaryKey"`
	SessionToken string    `json:"-"             gorm:"type:varchar(64);not null;index:idx_token_moods,priority:1"`
	MoodScore    int       `json:"mood_score"    gorm:"not null;check:mood_score BETWEEN 1 AND 10"`
	MoodLabel    string    `json:"mood_label"    gorm:"type:varchar(64);not null"`
	Notes        *string   `json:"notes"         gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"    gorm:"index:idx_token_moods,priority:2"`
}

// TableName returns the database table name for MoodLog.
func (MoodLog) TableName() string { return "mood_logs" }

// JournalEntry is a written reflection, optionally tagged with a mood score.
// Entries share the mood 1–10 scale with MoodLog but the value is advisory;
// nothing enforces agreement between the two collections.
type JournalEntry struct {
	ID           string    `json:"id"         gorm:"type:char(36);primaryKey"`
	SessionToken string    `json:"-"          gorm:"type:varchar(64);not null;index:idx_token_journal,priority:1"`
	Title        *string   `json:"title"      gorm:"type:varchar(255)"`
	Content      string    `json:"content"    gorm:"type:text;not null"`
	MoodScore    *int      `json:"mood_score"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_token_journal,priority:2"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for JournalEntry.
func (JournalEntry) TableName() string { return "journal_entries" }

// ChatSession groups the messages of one conversation. The title starts as a
// placeholder and is later rewritten to an excerpt of the first user message.
// Title is the only mutable field on any record in this schema.
type ChatSession struct {
	ID           string    `json:"id"         gorm:"type:char(36);primaryKey"`
	SessionToken string    `json:"-"          gorm:"type:varchar(64);not null;index:idx_token_sessions"`
	Title        string    `json:"title"      gorm:"type:varchar(255);not null;default:'New Chat Session'"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for ChatSession.
func (ChatSession) TableName() string { return "chat_sessions" }

// ChatMessage is a single utterance within a session, authored either by the
// "user" or the "assistant". Messages are immutable and ordered by insertion.
type ChatMessage struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	SessionID string    `json:"session_id" gorm:"type:char(36);not null;index:idx_session_msgs,priority:1"`
	Role      string    `json:"role"       gorm:"type:varchar(16);not null;check:role IN ('user','assistant')"`
	Content   string    `json:"content"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_session_msgs,priority:2"`

	// Session is the parent conversation. Messages are cascade-deleted
	// when their session is removed.
	Session ChatSession `json:"-" gorm:"foreignKey:SessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ChatMessage.
func (ChatMessage) TableName() string { return "chat_messages" }

// SurveySubmission is a scored risk-assessment result. Responses are stored
// as the raw question→answer mapping (JSON) alongside the derived score and
// tier so a submission can be audited without re-running the rubric.
type SurveySubmission struct {
	ID           string    `json:"id"         gorm:"type:char(36);primaryKey"`
	SessionToken string    `json:"-"          gorm:"type:varchar(64);not null;index:idx_token_surveys"`
	Responses    string    `json:"responses"  gorm:"type:text;not null"`
	Score        int       `json:"score"      gorm:"not null;check:score BETWEEN 0 AND 30"`
	RiskLevel    string    `json:"risk_level" gorm:"type:varchar(16);not null;check:risk_level IN ('low','moderate','high')"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for SurveySubmission.
func (SurveySubmission) TableName() string { return "survey_submissions" }

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultSessionTitle is the placeholder title given to a new chat session
// before the first user message provides an excerpt.
const DefaultSessionTitle = "New Chat Session"
