package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

func TestCreateJournalEntry_Created(t *testing.T) {
	var gotScore *int
	journal := &stubJournal{
		writeFn: func(ctx context.Context, token, title, content string, moodScore *int) (*domain.JournalEntry, error) {
			gotScore = moodScore
			return &domain.JournalEntry{ID: "j1", SessionToken: token, Content: content}, nil
		},
	}
	r := newTestRouter(deps{journal: journal})

	score := 6
	w := doJSON(t, r, http.MethodPost, "/api/journal-entries", CreateJournalEntryRequest{
		SessionToken: "tok", Title: "Monday", Content: "long day", MoodScore: &score,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if gotScore == nil || *gotScore != 6 {
		t.Fatalf("service saw moodScore %v", gotScore)
	}

	var resp JournalEntryResponse
	decodeBody(t, w, &resp)
	if resp.JournalEntry == nil || resp.JournalEntry.ID != "j1" {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestListJournalEntries_OK(t *testing.T) {
	journal := &stubJournal{
		listFn: func(ctx context.Context, token string, since *time.Time) ([]domain.JournalEntry, error) {
			return []domain.JournalEntry{{ID: "j1"}, {ID: "j2"}}, nil
		},
	}
	r := newTestRouter(deps{journal: journal})

	w := doJSON(t, r, http.MethodGet, "/api/journal-entries?sessionToken=tok", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp JournalEntriesResponse
	decodeBody(t, w, &resp)
	if len(resp.JournalEntries) != 2 {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestDeleteJournalEntries_NoContent(t *testing.T) {
	journal := &stubJournal{
		deleteFn: func(ctx context.Context, token string) error { return nil },
	}
	r := newTestRouter(deps{journal: journal})

	w := doJSON(t, r, http.MethodDelete, "/api/journal-entries?sessionToken=tok", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
}
