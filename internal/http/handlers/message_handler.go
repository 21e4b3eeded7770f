// Chat-message HTTP handlers.
//
//   - GET  /messages?sessionId=<id>            (one session, insertion order)
//   - GET  /messages?sessionId=all&sessionToken=<t>  (all sessions of a token)
//   - POST /messages                           (append user/assistant turn)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// CreateMessageRequest is the JSON payload for appending a chat message.
type CreateMessageRequest struct {
	SessionID string `json:"sessionId" example:"6b9f0a1e-0c0e-4f7e-9f6a-2e9d2a1b3c4d"`
	Content   string `json:"content" example:"I have been feeling anxious about finals."`
	// Role is "user" or "assistant".
	Role string `json:"role" example:"user"`
}

// MessageResponse wraps a single chat message.
type MessageResponse struct {
	Message *domain.ChatMessage `json:"message"`
}

// MessagesResponse wraps messages in insertion order.
type MessagesResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

// ListMessages godoc
// @ID          listMessages
// @Summary     List chat messages
// @Description Returns one session's messages in insertion order. With sessionId=all and a sessionToken, returns every message across the token's sessions.
// @Tags        Messages
// @Produce     json
//
// @Param       sessionId     query  string  true   "Session ID, or \"all\""
// @Param       sessionToken  query  string  false  "Session token (required with sessionId=all)"
//
// @Success     200  {object}  handlers.MessagesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /messages [get]
func (h *Handlers) ListMessages(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("sessionId"))
	if sessionID == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sessionId is required")
		return
	}

	var (
		msgs []domain.ChatMessage
		err  error
	)
	if sessionID == "all" {
		token := queryToken(c)
		if token == "" {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sessionToken is required with sessionId=all")
			return
		}
		msgs, err = h.msgSvc.ListForToken(c.Request.Context(), token)
	} else {
		msgs, err = h.msgSvc.List(c.Request.Context(), sessionID)
	}
	if err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeListFailed)
		return
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	ok(c, http.StatusOK, MessagesResponse{Messages: msgs})
}

// CreateMessage godoc
// @ID          createMessage
// @Summary     Append a chat message
// @Description Persists one message inside a session. The first user message rewrites a placeholder session title to an excerpt of the content.
// @Tags        Messages
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateMessageRequest  true  "Message payload"
//
// @Success     201  {object}  handlers.MessageResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Session not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /messages [post]
func (h *Handlers) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sessionId is required")
		return
	}

	msg, err := h.msgSvc.Save(c.Request.Context(), req.SessionID, req.Role, req.Content)
	if err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusCreated, MessageResponse{Message: msg})
}
