// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints: the structured error envelope, the fail/ok/noContent helpers,
// and consistent JSON serialization. Every failure goes through fail() so
// 5xx responses are logged with request context and all errors share one
// shape.
//
// Example error response:
//
//	HTTP/1.1 400 Bad Request
//	{
//	  "error": "moodScore must be between 1 and 10",
//	  "code": "bad_request",
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000"
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guptaakarshan/mental-health/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
// Error is the human-readable description; Code is a stable machine-readable
// string (see errors.go); RequestID correlates server logs with client errors.
type ErrorResponse struct {
	// Human-readable message (safe to show to users)
	Error string `json:"error" example:"sessionToken is required"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"bad_request"`
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
}

// fail aborts the request with a structured error envelope. Server errors
// (>= 500) are logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		Error:     msg,
		Code:      code,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail() for use outside this package
// (e.g. router fallbacks).
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response with the given status.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
