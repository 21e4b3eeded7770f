package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/guptaakarshan/mental-health/internal/domain"
	"github.com/guptaakarshan/mental-health/internal/repo"
)

func newExportDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:exportsvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestExportService_Bundle_RequiresToken(t *testing.T) {
	s := &ExportService{DB: newExportDB(t)}
	if _, err := s.Bundle(context.Background(), "  ", ""); err != ErrTokenRequired {
		t.Fatalf("got %v; want ErrTokenRequired", err)
	}
}

func TestExportService_Bundle_EmptyToken(t *testing.T) {
	s := &ExportService{DB: newExportDB(t)}

	b, err := s.Bundle(context.Background(), "unknown-token", "")
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	if len(b.MoodLogs) != 0 || len(b.JournalEntries) != 0 || len(b.ChatSessions) != 0 || len(b.Messages) != 0 {
		t.Fatalf("expected empty collections for unknown token: %+v", b)
	}
	if b.Statistics.MoodLogs != 0 || b.Statistics.Messages != 0 {
		t.Fatalf("statistics should be zero: %+v", b.Statistics)
	}
}

func TestExportService_Bundle_GathersEverything(t *testing.T) {
	db := newExportDB(t)
	s := &ExportService{DB: db}
	ctx := context.Background()

	if _, err := repo.CreateMoodLog(ctx, db, "tok", 7, "Good", nil); err != nil {
		t.Fatalf("seed mood: %v", err)
	}
	if _, err := repo.CreateMoodLog(ctx, db, "tok", 4, "Low", nil); err != nil {
		t.Fatalf("seed mood: %v", err)
	}
	if _, err := repo.CreateJournalEntry(ctx, db, "tok", nil, "dear diary", nil); err != nil {
		t.Fatalf("seed journal: %v", err)
	}
	sess, err := repo.CreateSession(ctx, db, "tok")
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	if _, err := repo.CreateMessage(db, sess.ID, domain.RoleUser, "hello"); err != nil {
		t.Fatalf("seed message: %v", err)
	}
	// Foreign data must not leak into the bundle.
	if _, err := repo.CreateMoodLog(ctx, db, "other", 1, "Bad", nil); err != nil {
		t.Fatalf("seed other: %v", err)
	}

	before := time.Now().UTC()
	b, err := s.Bundle(ctx, "tok", "Alex")
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}

	if b.SessionInfo.Token != "tok" || b.SessionInfo.DisplayName != "Alex" {
		t.Fatalf("session_info = %+v", b.SessionInfo)
	}
	if b.ExportDate.Before(before.Add(-time.Minute)) {
		t.Fatalf("export_date = %v", b.ExportDate)
	}
	if len(b.MoodLogs) != 2 || len(b.JournalEntries) != 1 || len(b.ChatSessions) != 1 || len(b.Messages) != 1 {
		t.Fatalf("collection sizes = %d/%d/%d/%d", len(b.MoodLogs), len(b.JournalEntries), len(b.ChatSessions), len(b.Messages))
	}
	st := b.Statistics
	if st.MoodLogs != 2 || st.JournalEntries != 1 || st.ChatSessions != 1 || st.Messages != 1 {
		t.Fatalf("statistics = %+v", st)
	}
}
