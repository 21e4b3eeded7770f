package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// newRepoDB opens a fresh in-memory database for one test. Writes are
// serialized on a single connection so concurrent tests exercise the repo,
// not the sqlite driver's connection juggling.
func newRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreateMoodLog_SetsIDAndUTCTimestamp(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	before := time.Now().UTC()
	notes := "rough morning"
	m, err := CreateMoodLog(ctx, db, "tok", 3, "Low", &notes)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uuid.Parse(m.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", m.ID, err)
	}
	if m.CreatedAt.Location() != time.UTC {
		t.Fatalf("created_at not UTC: %v", m.CreatedAt)
	}
	if m.CreatedAt.Before(before.Add(-time.Minute)) {
		t.Fatalf("created_at = %v", m.CreatedAt)
	}
	if m.Notes == nil || *m.Notes != notes {
		t.Fatalf("notes = %v", m.Notes)
	}
}

func TestListMoodLogs_OldestFirst(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, label := range []string{"first", "second", "third"} {
		m := &domain.MoodLog{
			ID:           uuid.NewString(),
			SessionToken: "tok",
			MoodScore:    5,
			MoodLabel:    label,
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	logs, err := ListMoodLogs(ctx, db, "tok", nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("got %d logs", len(logs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if logs[i].MoodLabel != want {
			t.Fatalf("logs[%d] = %q; want %q", i, logs[i].MoodLabel, want)
		}
	}
}

func TestListMoodLogs_SinceFilter(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		m := &domain.MoodLog{
			ID:           uuid.NewString(),
			SessionToken: "tok",
			MoodScore:    5,
			MoodLabel:    "x",
			CreatedAt:    base.AddDate(0, 0, i),
		}
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	since := base.AddDate(0, 0, 3)
	logs, err := ListMoodLogs(ctx, db, "tok", &since)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// Cutoff is inclusive: days 3 and 4 survive.
	if len(logs) != 2 {
		t.Fatalf("got %d logs; want 2", len(logs))
	}
	if logs[0].CreatedAt.Before(since) {
		t.Fatalf("log before cutoff leaked: %v", logs[0].CreatedAt)
	}
}

func TestListMoodLogs_UnknownTokenIsEmptyNotNil(t *testing.T) {
	db := newRepoDB(t)

	logs, err := ListMoodLogs(context.Background(), db, "nobody", nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if logs == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(logs) != 0 {
		t.Fatalf("got %d logs", len(logs))
	}
}

func TestDeleteMoodLogs_OnlyOwnedRows(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	if _, err := CreateMoodLog(ctx, db, "tok", 5, "x", nil); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := CreateMoodLog(ctx, db, "other", 5, "x", nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := DeleteMoodLogs(ctx, db, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	n, err := CountMoodLogs(ctx, db, "tok")
	if err != nil || n != 0 {
		t.Fatalf("tok count = %d (%v)", n, err)
	}
	n, err = CountMoodLogs(ctx, db, "other")
	if err != nil || n != 1 {
		t.Fatalf("other count = %d (%v); delete must not cross tokens", n, err)
	}

	// Unknown token is a no-op.
	if err := DeleteMoodLogs(ctx, db, "ghost"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
}

func TestCreateMoodLog_ConcurrentAppendsLoseNothing(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := CreateMoodLog(ctx, db, "tok", score%10+1, "burst", nil); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent create: %v", err)
	}

	total, err := CountMoodLogs(ctx, db, "tok")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != n {
		t.Fatalf("count = %d; want %d", total, n)
	}
}
