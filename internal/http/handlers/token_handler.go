// Session-token issuance.
//
// Tokens are opaque partition keys, not credentials: the server never
// authenticates them, it only uses them to scope reads and writes. Issuing
// them server-side gives clients collision-resistant UUIDs instead of
// whatever they would invent locally.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	SessionToken string `json:"sessionToken" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// IssueToken godoc
// @ID          issueToken
// @Summary     Issue a session token
// @Description Returns a fresh opaque session token (UUIDv4). Clients may also bring their own token; nothing is registered server-side.
// @Tags        Tokens
// @Produce     json
//
// @Success     201  {object}  handlers.TokenResponse
// @Router      /tokens [post]
func (h *Handlers) IssueToken(c *gin.Context) {
	ok(c, http.StatusCreated, TokenResponse{SessionToken: uuid.NewString()})
}
