package repo

import (
	"context"
	"testing"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

func TestListMessagesForToken_CrossesSessions(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	a, err := CreateSession(ctx, db, "tok")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := CreateSession(ctx, db, "tok")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	other, err := CreateSession(ctx, db, "other")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, sid := range []string{a.ID, b.ID, other.ID} {
		if _, err := CreateMessage(db, sid, domain.RoleUser, "hello"); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	msgs, err := ListMessagesForToken(ctx, db, "tok")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages; want 2", len(msgs))
	}
	for _, m := range msgs {
		if m.SessionID != a.ID && m.SessionID != b.ID {
			t.Fatalf("foreign message leaked: %+v", m)
		}
	}
}

func TestListMessages_UnknownSessionIsEmpty(t *testing.T) {
	db := newRepoDB(t)

	msgs, err := ListMessages(context.Background(), db, "missing")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if msgs == nil || len(msgs) != 0 {
		t.Fatalf("want empty slice, got %v", msgs)
	}
}

func TestCountTokenRecords(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	if _, err := CreateMoodLog(ctx, db, "tok", 5, "x", nil); err != nil {
		t.Fatalf("seed mood: %v", err)
	}
	if _, err := CreateJournalEntry(ctx, db, "tok", nil, "body", nil); err != nil {
		t.Fatalf("seed journal: %v", err)
	}
	s, err := CreateSession(ctx, db, "tok")
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := CreateMessage(db, s.ID, domain.RoleUser, "m"); err != nil {
			t.Fatalf("seed message: %v", err)
		}
	}
	// Another token's data must not count.
	if _, err := CreateMoodLog(ctx, db, "other", 5, "x", nil); err != nil {
		t.Fatalf("seed other: %v", err)
	}

	st, err := CountTokenRecords(ctx, db, "tok")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if st.MoodLogs != 1 || st.JournalEntries != 1 || st.ChatSessions != 1 || st.Messages != 3 {
		t.Fatalf("stats = %+v", st)
	}

	empty, err := CountTokenRecords(ctx, db, "nobody")
	if err != nil {
		t.Fatalf("count empty: %v", err)
	}
	if empty != (TokenStats{}) {
		t.Fatalf("empty stats = %+v", empty)
	}
}
