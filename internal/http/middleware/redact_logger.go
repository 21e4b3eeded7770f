// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements RedactingLogger, a structured HTTP logger that scrubs
// sensitive values from request metadata before emitting logs. Session tokens
// are the privacy boundary of this service: they travel in query strings
// (e.g. ?sessionToken=<uuid>) and must never reach the logs in the clear.
//
// Behavior:
//   - Never logs request or response bodies
//   - Masks token-bearing query parameters (sessionToken, token) entirely
//   - Redacts UUID-like identifiers and email addresses from the remaining
//     query string and from header values
//   - Fully masks sensitive headers (Authorization, Cookie, Set-Cookie, plus
//     any configured extras)
//
// Redaction reduces but does not eliminate the risk of sensitive data in
// logs; clients should still keep personal data out of query strings.
package middleware

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedactOptions configures additional scrub behavior for RedactingLogger.
//
// MaskHeaders lists extra header names whose values are replaced with
// "[REDACTED]" (case-insensitive, merged with the built-in set).
// MaskQueryParams lists extra query parameter names to mask the same way,
// merged with the built-in token parameters.
type RedactOptions struct {
	MaskHeaders     []string
	MaskQueryParams []string
}

// RedactingLogger returns a Gin middleware that logs HTTP requests with
// sensitive values scrubbed. Logs at INFO, WARN for 4xx, ERROR for 5xx.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	uuidRE := regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailRE := regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)

	redact := func(s string) string {
		if s == "" {
			return s
		}
		out := uuidRE.ReplaceAllString(s, "[REDACTED:id]")
		return emailRE.ReplaceAllString(out, "[REDACTED:email]")
	}

	maskHeaders := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			maskHeaders[h] = struct{}{}
		}
	}

	maskParams := map[string]struct{}{
		"sessiontoken": {},
		"token":        {},
	}
	for _, p := range opts.MaskQueryParams {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			maskParams[p] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		safeQuery := redact(maskQuery(c.Request.URL.RawQuery, maskParams))

		safeHeaders := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			val := strings.Join(vv, ", ")
			if _, ok := maskHeaders[strings.ToLower(k)]; ok {
				safeHeaders[k] = "[REDACTED]"
				continue
			}
			safeHeaders[k] = redact(val)
		}

		reqID := c.Writer.Header().Get("X-Request-ID")
		if reqID == "" {
			reqID = c.GetHeader("X-Request-ID")
		}

		// Request-scoped logger for handlers (see LoggerFrom). Carries only
		// scrubbed fields.
		reqLogger := log.With().
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", path).
			Logger()
		c.Set("logger", &reqLogger)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}

		ev.
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", safeQuery).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", latency).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}

// maskQuery replaces the values of masked parameters with [REDACTED],
// preserving parameter order as received. A query that fails to parse is
// masked wholesale rather than risk leaking a token.
func maskQuery(raw string, masked map[string]struct{}) string {
	if raw == "" {
		return raw
	}
	pairs := strings.Split(raw, "&")
	for i, p := range pairs {
		k, _, found := strings.Cut(p, "=")
		if !found {
			continue
		}
		key, err := url.QueryUnescape(k)
		if err != nil {
			return "[REDACTED]"
		}
		if _, ok := masked[strings.ToLower(key)]; ok {
			pairs[i] = k + "=[REDACTED]"
		}
	}
	return strings.Join(pairs, "&")
}
