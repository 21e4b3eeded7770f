// Chat-session HTTP handlers.
//
//   - GET    /sessions     (list, newest first)
//   - POST   /sessions     (create with placeholder title)
//   - PUT    /sessions     (rename by session id)
//   - DELETE /sessions     (bulk clear, including messages)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// CreateSessionRequest is the JSON payload for starting a chat session.
type CreateSessionRequest struct {
	SessionToken string `json:"sessionToken" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// UpdateSessionRequest is the JSON payload for renaming a chat session.
type UpdateSessionRequest struct {
	SessionID string `json:"sessionId" example:"6b9f0a1e-0c0e-4f7e-9f6a-2e9d2a1b3c4d"`
	Title     string `json:"title" example:"Exam stress"`
}

// SessionResponse wraps a single chat session.
type SessionResponse struct {
	Session *domain.ChatSession `json:"session"`
}

// SessionsResponse wraps a token's chat sessions, newest first.
type SessionsResponse struct {
	Sessions []domain.ChatSession `json:"sessions"`
}

// UpdateSessionResponse acknowledges a rename.
type UpdateSessionResponse struct {
	Success bool `json:"success" example:"true"`
}

// ListSessions godoc
// @ID          listSessions
// @Summary     List chat sessions
// @Description Returns the token's chat sessions, most recent first.
// @Tags        Sessions
// @Produce     json
//
// @Param       token  query  string  true  "Session token"
//
// @Success     200  {object}  handlers.SessionsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sessions [get]
func (h *Handlers) ListSessions(c *gin.Context) {
	token := queryToken(c)
	if token == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "token is required")
		return
	}

	sessions, err := h.sessionSvc.List(c.Request.Context(), token)
	if err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeListFailed)
		return
	}
	if sessions == nil {
		sessions = []domain.ChatSession{}
	}
	ok(c, http.StatusOK, SessionsResponse{Sessions: sessions})
}

// CreateSession godoc
// @ID          createSession
// @Summary     Start a chat session
// @Description Creates a session for the token with the placeholder title "New Chat Session".
// @Tags        Sessions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateSessionRequest  true  "Create session payload"
//
// @Success     201  {object}  handlers.SessionResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sessions [post]
func (h *Handlers) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	session, err := h.sessionSvc.Create(c.Request.Context(), req.SessionToken)
	if err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusCreated, SessionResponse{Session: session})
}

// UpdateSession godoc
// @ID          updateSession
// @Summary     Rename a chat session
// @Description Persists a new title for the session. A blank title restores the placeholder.
// @Tags        Sessions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.UpdateSessionRequest  true  "Rename payload"
//
// @Success     200  {object}  handlers.UpdateSessionResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Session not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sessions [put]
func (h *Handlers) UpdateSession(c *gin.Context) {
	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sessionId is required")
		return
	}

	if err := h.sessionSvc.Rename(c.Request.Context(), req.SessionID, req.Title); err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeInternal)
		return
	}
	ok(c, http.StatusOK, UpdateSessionResponse{Success: true})
}

// DeleteSessions godoc
// @ID          deleteSessions
// @Summary     Delete all chat sessions
// @Description Removes every session owned by the token together with the messages they contain.
// @Tags        Sessions
// @Produce     json
//
// @Param       token  query  string  true  "Session token"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sessions [delete]
func (h *Handlers) DeleteSessions(c *gin.Context) {
	token := queryToken(c)
	if token == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "token is required")
		return
	}
	if err := h.sessionSvc.DeleteAll(c.Request.Context(), token); err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeDeleteFailed)
		return
	}
	noContent(c)
}
