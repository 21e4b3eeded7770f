package services

import (
	"context"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// ----- Fake repo -----

type fakeSessionRepo struct {
	createToken string

	listToken string
	listItems []domain.ChatSession

	updateID    string
	updateTitle string
	updateErr   error

	deleteToken string
}

func (r *fakeSessionRepo) CreateSession(ctx context.Context, db *gorm.DB, token string) (*domain.ChatSession, error) {
	r.createToken = token
	return &domain.ChatSession{ID: "s1", SessionToken: token, Title: domain.DefaultSessionTitle}, nil
}

func (r *fakeSessionRepo) ListSessions(ctx context.Context, db *gorm.DB, token string) ([]domain.ChatSession, error) {
	r.listToken = token
	return r.listItems, nil
}

func (r *fakeSessionRepo) UpdateSessionTitle(ctx context.Context, db *gorm.DB, id, title string) error {
	r.updateID, r.updateTitle = id, title
	return r.updateErr
}

func (r *fakeSessionRepo) DeleteSessions(ctx context.Context, db *gorm.DB, token string) error {
	r.deleteToken = token
	return nil
}

// ----- Tests -----

func TestNewSessionService_Defaults(t *testing.T) {
	r := &fakeSessionRepo{}
	s := NewSessionService(nil, r)

	if s.Repo != r {
		t.Fatalf("repo not set")
	}
	if s.TitleMaxLen != 255 {
		t.Fatalf("TitleMaxLen default = 255, got %d", s.TitleMaxLen)
	}
}

func TestSessionService_Create_RequiresToken(t *testing.T) {
	r := &fakeSessionRepo{}
	s := NewSessionService(nil, r)

	if _, err := s.Create(context.Background(), "  "); err != ErrTokenRequired {
		t.Fatalf("blank token: got %v", err)
	}
	sess, err := s.Create(context.Background(), "tok")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.Title != domain.DefaultSessionTitle {
		t.Fatalf("title = %q; want placeholder", sess.Title)
	}
}

func TestSessionService_Rename_BlankFallsBackToPlaceholder(t *testing.T) {
	r := &fakeSessionRepo{}
	s := NewSessionService(nil, r)

	if err := s.Rename(context.Background(), "s1", "   "); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if r.updateTitle != domain.DefaultSessionTitle {
		t.Fatalf("title = %q; want placeholder", r.updateTitle)
	}
}

func TestSessionService_Rename_ClipsByRunes(t *testing.T) {
	r := &fakeSessionRepo{}
	s := NewSessionService(nil, r)
	s.TitleMaxLen = 5

	if err := s.Rename(context.Background(), "s1", "αβγδεζη"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if r.updateTitle != "αβγδε" {
		t.Fatalf("title = %q; want 5 runes", r.updateTitle)
	}
}

func TestSessionService_Rename_NotFound(t *testing.T) {
	r := &fakeSessionRepo{updateErr: gorm.ErrRecordNotFound}
	s := NewSessionService(nil, r)

	if err := s.Rename(context.Background(), "missing", "t"); err != ErrSessionNotFound {
		t.Fatalf("got %v; want ErrSessionNotFound", err)
	}
}

func TestSessionService_Rename_PersistsTrimmedTitle(t *testing.T) {
	r := &fakeSessionRepo{}
	s := NewSessionService(nil, r)

	long := strings.Repeat("a", 300)
	if err := s.Rename(context.Background(), "s1", long); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if len(r.updateTitle) != 255 {
		t.Fatalf("title length = %d; want clipped to 255", len(r.updateTitle))
	}
}

func TestSessionService_ListAndDelete(t *testing.T) {
	r := &fakeSessionRepo{listItems: []domain.ChatSession{{ID: "s2"}, {ID: "s1"}}}
	s := NewSessionService(nil, r)

	sessions, err := s.List(context.Background(), "tok")
	if err != nil || len(sessions) != 2 {
		t.Fatalf("list: %v (%d)", err, len(sessions))
	}
	if _, err := s.List(context.Background(), ""); err != ErrTokenRequired {
		t.Fatalf("blank token: got %v", err)
	}

	if err := s.DeleteAll(context.Background(), "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if r.deleteToken != "tok" {
		t.Fatalf("repo saw %q", r.deleteToken)
	}
	if err := s.DeleteAll(context.Background(), ""); err != ErrTokenRequired {
		t.Fatalf("blank token: got %v", err)
	}
}
