// Mood-log HTTP handlers.
//
// This file exposes REST endpoints for mood-log resources:
//   - GET    /mood-logs     (list, optional startDate filter)
//   - POST   /mood-logs     (append a check-in)
//   - DELETE /mood-logs     (bulk clear for a token)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// CreateMoodLogRequest is the JSON payload for logging a mood check-in.
type CreateMoodLogRequest struct {
	SessionToken string `json:"sessionToken" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// MoodScore is the self-reported mood on the 1–10 scale.
	MoodScore int    `json:"moodScore" example:"7"`
	MoodLabel string `json:"moodLabel" example:"Good"`
	// Notes optionally adds free text to the check-in.
	Notes string `json:"notes,omitempty" example:"slept well"`
}

// MoodLogResponse wraps a single mood log.
type MoodLogResponse struct {
	MoodLog *domain.MoodLog `json:"moodLog"`
}

// MoodLogsResponse wraps a token's mood logs, oldest first.
type MoodLogsResponse struct {
	MoodLogs []domain.MoodLog `json:"moodLogs"`
}

// ListMoodLogs godoc
// @ID          listMoodLogs
// @Summary     List mood logs
// @Description Returns the token's mood logs oldest-first. An unknown token yields an empty list.
// @Tags        MoodLogs
// @Produce     json
//
// @Param       sessionToken  query  string  true   "Session token"
// @Param       startDate     query  string  false  "Only logs created at or after this date (RFC 3339 or YYYY-MM-DD)"
//
// @Success     200  {object}  handlers.MoodLogsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /mood-logs [get]
func (h *Handlers) ListMoodLogs(c *gin.Context) {
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

	logs, err := h.moodSvc.List(c.Request.Context(), token, since)
	if err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeListFailed)
		return
	}
	if logs == nil {
		logs = []domain.MoodLog{}
	}
	ok(c, http.StatusOK, MoodLogsResponse{MoodLogs: logs})
}

// CreateMoodLog godoc
// @ID          createMoodLog
// @Summary     Log a mood check-in
// @Description Appends a mood log for the token. Score must be on the 1–10 scale and the label is required.
// @Tags        MoodLogs
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateMoodLogRequest  true  "Mood check-in payload"
//
// @Success     201  {object}  handlers.MoodLogResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /mood-logs [post]
func (h *Handlers) CreateMoodLog(c *gin.Context) {
	var req CreateMoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	log, err := h.moodSvc.Log(c.Request.Context(), req.SessionToken, req.MoodScore, req.MoodLabel, req.Notes)
	if err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusCreated, MoodLogResponse{MoodLog: log})
}

// DeleteMoodLogs godoc
// @ID          deleteMoodLogs
// @Summary     Delete all mood logs
// @Description Removes every mood log owned by the token.
// @Tags        MoodLogs
// @Produce     json
//
// @Param       sessionToken  query  string  true  "Session token"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /mood-logs [delete]
func (h *Handlers) DeleteMoodLogs(c *gin.Context) {
	token := queryToken(c)
	if token == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sessionToken is required")
		return
	}
	if err := h.moodSvc.DeleteAll(c.Request.Context(), token); err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeDeleteFailed)
		return
	}
	noContent(c)
}
