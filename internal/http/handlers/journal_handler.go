// Journal-entry HTTP handlers.
//
//   - GET    /journal-entries     (list, optional startDate filter)
//   - POST   /journal-entries     (append an entry)
//   - DELETE /journal-entries     (bulk clear for a token)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// CreateJournalEntryRequest is the JSON payload for writing a journal entry.
type CreateJournalEntryRequest struct {
	SessionToken string `json:"sessionToken" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// Title optionally names the entry.
	Title   string `json:"title,omitempty" example:"Monday reflections"`
	Content string `json:"content" example:"Today was better than expected."`
	// MoodScore optionally tags the entry with a 1–10 mood.
	MoodScore *int `json:"moodScore,omitempty" example:"6"`
}

// JournalEntryResponse wraps a single journal entry.
type JournalEntryResponse struct {
	JournalEntry *domain.JournalEntry `json:"journalEntry"`
}

// JournalEntriesResponse wraps a token's journal entries, oldest first.
type JournalEntriesResponse struct {
	JournalEntries []domain.JournalEntry `json:"journalEntries"`
}

// ListJournalEntries godoc
// @ID          listJournalEntries
// @Summary     List journal entries
// @Description Returns the token's journal entries oldest-first. An unknown token yields an empty list.
// @Tags        Journal
// @Produce     json
//
// @Param       sessionToken  query  string  true   "Session token"
// @Param       startDate     query  string  false  "Only entries created at or after this date (RFC 3339 or YYYY-MM-DD)"
//
// @Success     200  {object}  handlers.JournalEntriesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /journal-entries [get]
func (h *Handlers) ListJournalEntries(c *gin.Context) {
	token := queryToken(c)
	if token == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sessionToken is required")
		return
	}
	since, okDate := parseStartDate(c)
	if !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "startDate must be RFC 3339 or YYYY-MM-DD")
		return
	}

	entries, err := h.journalSvc.List(c.Request.Context(), token, since)
	if err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeListFailed)
		return
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	ok(c, http.StatusOK, JournalEntriesResponse{JournalEntries: entries})
}

// CreateJournalEntry godoc
// @ID          createJournalEntry
// @Summary     Write a journal entry
// @Description Appends a journal entry for the token. Content is required; title and mood score are optional.
// @Tags        Journal
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateJournalEntryRequest  true  "Journal entry payload"
//
// @Success     201  {object}  handlers.JournalEntryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /journal-entries [post]
func (h *Handlers) CreateJournalEntry(c *gin.Context) {
	var req CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	entry, err := h.journalSvc.Write(c.Request.Context(), req.SessionToken, req.Title, req.Content, req.MoodScore)
	if err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusCreated, JournalEntryResponse{JournalEntry: entry})
}

// DeleteJournalEntries godoc
// @ID          deleteJournalEntries
// @Summary     Delete all journal entries
// @Description Removes every journal entry owned by the token.
// @Tags        Journal
// @Produce     json
//
// @Param       sessionToken  query  string  true  "Session token"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /journal-entries [delete]
func (h *Handlers) DeleteJournalEntries(c *gin.Context) {
	token := queryToken(c)
	if token == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sessionToken is required")
		return
	}
	if err := h.journalSvc.DeleteAll(c.Request.Context(), token); err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeDeleteFailed)
		return
	}
	noContent(c)
}
