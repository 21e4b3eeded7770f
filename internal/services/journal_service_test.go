package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// ----- Fake repo -----

type fakeJournalRepo struct {
	createToken string
	createTitle *string
	createBody  string
	createScore *int

	listToken string
	listSince *time.Time
	listItems []domain.JournalEntry

	deleteToken string
}

func (r *fakeJournalRepo) CreateJournalEntry(ctx context.Context, db *gorm.DB, token string, title *string, content string, moodScore *int) (*domain.JournalEntry, error) {
	r.createToken, r.createTitle, r.createBody, r.createScore = token, title, content, moodScore
	return &domain.JournalEntry{ID: "j1", SessionToken: token, Title: title, Content: content, MoodScore: moodScore}, nil
}

func (r *fakeJournalRepo) ListJournalEntries(ctx context.Context, db *gorm.DB, token string, since *time.Time) ([]domain.JournalEntry, error) {
	r.listToken, r.listSince = token, since
	return r.listItems, nil
}

func (r *fakeJournalRepo) DeleteJournalEntries(ctx context.Context, db *gorm.DB, token string) error {
	r.deleteToken = token
	return nil
}

// ----- Tests -----

func TestJournalService_Write_Validation(t *testing.T) {
	s := NewJournalService(nil, &fakeJournalRepo{})

	if _, err := s.Write(context.Background(), "", "t", "body", nil); err != ErrTokenRequired {
		t.Fatalf("blank token: got %v", err)
	}
	if _, err := s.Write(context.Background(), "tok", "t", "   ", nil); err != ErrContentRequired {
		t.Fatalf("blank content: got %v", err)
	}
	bad := 11
	if _, err := s.Write(context.Background(), "tok", "t", "body", &bad); err != ErrInvalidMoodScore {
		t.Fatalf("score 11: got %v", err)
	}
}

func TestJournalService_Write_OptionalFields(t *testing.T) {
	r := &fakeJournalRepo{}
	s := NewJournalService(nil, r)

	// Blank title becomes NULL; mood score is optional.
	if _, err := s.Write(context.Background(), "tok", "   ", "  some reflection  ", nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if r.createTitle != nil {
		t.Fatalf("blank title should be nil, got %q", *r.createTitle)
	}
	if r.createBody != "some reflection" {
		t.Fatalf("content = %q; want trimmed", r.createBody)
	}
	if r.createScore != nil {
		t.Fatalf("score should be nil")
	}

	score := 6
	if _, err := s.Write(context.Background(), "tok", " Monday ", "body", &score); err != nil {
		t.Fatalf("write: %v", err)
	}
	if r.createTitle == nil || *r.createTitle != "Monday" {
		t.Fatalf("title = %v; want trimmed Monday", r.createTitle)
	}
	if r.createScore == nil || *r.createScore != 6 {
		t.Fatalf("score = %v; want 6", r.createScore)
	}
}

func TestJournalService_ListAndDelete(t *testing.T) {
	r := &fakeJournalRepo{listItems: []domain.JournalEntry{{ID: "a"}}}
	s := NewJournalService(nil, r)

	entries, err := s.List(context.Background(), "tok", nil)
	if err != nil || len(entries) != 1 {
		t.Fatalf("list: %v (%d entries)", err, len(entries))
	}
	if _, err := s.List(context.Background(), "", nil); err != ErrTokenRequired {
		t.Fatalf("blank token: got %v", err)
	}

	if err := s.DeleteAll(context.Background(), "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if r.deleteToken != "tok" {
		t.Fatalf("repo saw token %q", r.deleteToken)
	}
}
