package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

func TestCreateSession_PlaceholderTitle(t *testing.T) {
	db := newRepoDB(t)

	s, err := CreateSession(context.Background(), db, "tok")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.Title != domain.DefaultSessionTitle {
		t.Fatalf("title = %q", s.Title)
	}
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", s.ID, err)
	}
}

func TestListSessions_NewestFirst(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "mid", "new"} {
		s := &domain.ChatSession{
			ID:           uuid.NewString(),
			SessionToken: "tok",
			Title:        title,
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	sessions, err := ListSessions(ctx, db, "tok")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions", len(sessions))
	}
	for i, want := range []string{"new", "mid", "old"} {
		if sessions[i].Title != want {
			t.Fatalf("sessions[%d] = %q; want %q", i, sessions[i].Title, want)
		}
	}
}

func TestUpdateSessionTitle(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	s, err := CreateSession(ctx, db, "tok")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := UpdateSessionTitle(ctx, db, s.ID, "Exam stress"); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := GetSession(ctx, db, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Exam stress" {
		t.Fatalf("title = %q", got.Title)
	}

	if err := UpdateSessionTitle(ctx, db, "missing", "t"); err != gorm.ErrRecordNotFound {
		t.Fatalf("missing session: got %v; want ErrRecordNotFound", err)
	}
}

func TestDeleteSessions_RemovesMessagesToo(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	mine, err := CreateSession(ctx, db, "tok")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	theirs, err := CreateSession(ctx, db, "other")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, sid := range []string{mine.ID, mine.ID, theirs.ID} {
		if _, err := CreateMessage(db, sid, domain.RoleUser, "hi"); err != nil {
			t.Fatalf("seed message: %v", err)
		}
	}

	if err := DeleteSessions(ctx, db, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	sessions, err := ListSessions(ctx, db, "tok")
	if err != nil || len(sessions) != 0 {
		t.Fatalf("tok sessions = %d (%v)", len(sessions), err)
	}
	orphans, err := ListMessages(ctx, db, mine.ID)
	if err != nil || len(orphans) != 0 {
		t.Fatalf("orphaned messages = %d (%v)", len(orphans), err)
	}

	// Other token untouched.
	kept, err := ListMessages(ctx, db, theirs.ID)
	if err != nil || len(kept) != 1 {
		t.Fatalf("other token messages = %d (%v)", len(kept), err)
	}
}
