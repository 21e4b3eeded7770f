// Chat proxy handler.
//
// POST /chat forwards the most recent user utterance from the submitted
// conversation to the external answer service and returns its reply. The
// endpoint is deliberately single-turn: earlier turns are accepted in the
// payload but only the last user message is sent upstream. It is stateless;
// persisting the exchange is the client's job via POST /messages.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guptaakarshan/mental-health/internal/domain"
	"github.com/guptaakarshan/mental-health/internal/http/middleware"
)

// ChatTurn is one conversation turn in the chat payload.
type ChatTurn struct {
	// Role is "user" or "assistant".
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"How do I deal with exam stress?"`
}

// ChatRequest is the JSON payload for the chat proxy.
type ChatRequest struct {
	Messages []ChatTurn `json:"messages"`
}

// ChatResponse carries the upstream answer.
type ChatResponse struct {
	Answer string `json:"answer" example:"Taking regular breaks helps."`
}

// Chat godoc
// @ID          chat
// @Summary     Ask the assistant
// @Description Sends the last user message of the conversation to the answer service and returns its reply verbatim. Upstream failures yield a generic 500; the upstream error body is never exposed.
// @Tags        Chat
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ChatRequest  true  "Conversation so far"
//
// @Success     200  {object}  handlers.ChatResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Answer service unavailable"
// @Router      /chat [post]
func (h *Handlers) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if len(req.Messages) == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "no messages provided")
		return
	}

	question := lastUserContent(req.Messages)
	if question == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "conversation has no user message")
		return
	}

	answerText, err := h.answers.Ask(c.Request.Context(), question)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("answer service call failed")
		fail(c, http.StatusInternalServerError, ErrCodeAnswerFailed, "unable to get answer")
		return
	}
	ok(c, http.StatusOK, ChatResponse{Answer: answerText})
}

// lastUserContent returns the content of the most recent user turn, or "".
func lastUserContent(turns []ChatTurn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == domain.RoleUser && turns[i].Content != "" {
			return turns[i].Content
		}
	}
	return ""
}
