package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/guptaakarshan/mental-health/internal/domain"
	"github.com/guptaakarshan/mental-health/internal/services"
)

func TestListMessages_SessionIDRequired(t *testing.T) {
	r := newTestRouter(deps{})

	w := doJSON(t, r, http.MethodGet, "/api/messages", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var e ErrorResponse
	decodeBody(t, w, &e)
	if e.Error != "sessionId is required" {
		t.Fatalf("error = %q", e.Error)
	}
}

func TestListMessages_SingleSession(t *testing.T) {
	var gotSessionID string
	messages := &stubMessages{
		listFn: func(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
			gotSessionID = sessionID
			return []domain.ChatMessage{{ID: "m1", Content: "hi"}}, nil
		},
	}
	r := newTestRouter(deps{messages: messages})

	w := doJSON(t, r, http.MethodGet, "/api/messages?sessionId=s1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if gotSessionID != "s1" {
		t.Fatalf("service saw sessionId %q", gotSessionID)
	}

	var resp MessagesResponse
	decodeBody(t, w, &resp)
	if len(resp.Messages) != 1 || resp.Messages[0].ID != "m1" {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestListMessages_AllRequiresToken(t *testing.T) {
	r := newTestRouter(deps{})

	w := doJSON(t, r, http.MethodGet, "/api/messages?sessionId=all", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var e ErrorResponse
	decodeBody(t, w, &e)
	if e.Error != "sessionToken is required with sessionId=all" {
		t.Fatalf("error = %q", e.Error)
	}
}

func TestListMessages_AllSpansToken(t *testing.T) {
	var gotToken string
	messages := &stubMessages{
		listForTokenFn: func(ctx context.Context, token string) ([]domain.ChatMessage, error) {
			gotToken = token
			return nil, nil
		},
	}
	r := newTestRouter(deps{messages: messages})

	w := doJSON(t, r, http.MethodGet, "/api/messages?sessionId=all&sessionToken=tok", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if gotToken != "tok" {
		t.Fatalf("service saw token %q", gotToken)
	}

	var raw map[string]any
	decodeBody(t, w, &raw)
	if raw["messages"] == nil {
		t.Fatalf("messages serialized as null: %s", w.Body.String())
	}
}

func TestCreateMessage_Created(t *testing.T) {
	messages := &stubMessages{
		saveFn: func(ctx context.Context, sessionID, role, content string) (*domain.ChatMessage, error) {
			return &domain.ChatMessage{ID: "m1", SessionID: sessionID, Role: role, Content: content}, nil
		},
	}
	r := newTestRouter(deps{messages: messages})

	w := doJSON(t, r, http.MethodPost, "/api/messages", CreateMessageRequest{
		SessionID: "s1", Role: domain.RoleUser, Content: "hello",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp MessageResponse
	decodeBody(t, w, &resp)
	if resp.Message == nil || resp.Message.Role != domain.RoleUser {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestCreateMessage_SessionNotFound(t *testing.T) {
	messages := &stubMessages{
		saveFn: func(ctx context.Context, sessionID, role, content string) (*domain.ChatMessage, error) {
			return nil, services.ErrSessionNotFound
		},
	}
	r := newTestRouter(deps{messages: messages})

	w := doJSON(t, r, http.MethodPost, "/api/messages", CreateMessageRequest{
		SessionID: "missing", Role: domain.RoleUser, Content: "hello",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}
