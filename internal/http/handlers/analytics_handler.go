// Analytics HTTP handler.
//
// GET /analytics serves the derived dashboard view for one token: totals,
// average mood, trend, streak, histograms, and templated insights. Read-only.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Analytics godoc
// @ID          analytics
// @Summary     Analytics overview
// @Description Aggregates the token's mood logs and journal entries into the dashboard summary. Optionally restricted to records created at or after startDate.
// @Tags        Analytics
// @Produce     json
//
// @Param       sessionToken  query  string  true   "Session token"
// @Param       startDate     query  string  false  "Only records created at or after this date (RFC 3339 or YYYY-MM-DD)"
//
// @Success     200  {object}  services.AnalyticsSummary
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /analytics [get]
func (h *Handlers) Analytics(c *gin.Context) {
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

	summary, err := h.analyticsSvc.Overview(c.Request.Context(), token, since)
	if err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, summary)
}
