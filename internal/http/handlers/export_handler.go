// Export HTTP handler.
//
// GET /export serves the full takeout document for one token: every record
// collection plus summary statistics in a single JSON body, offered as a
// download.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Export godoc
// @ID          export
// @Summary     Export all data for a token
// @Description Bundles mood logs, journal entries, chat sessions, messages, and summary statistics into one JSON document.
// @Tags        Export
// @Produce     json
//
// @Param       sessionToken  query  string  true   "Session token"
// @Param       displayName   query  string  false  "Display name echoed into session_info"
//
// @Success     200  {object}  services.ExportBundle
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /export [get]
func (h *Handlers) Export(c *gin.Context) {
	token := queryToken(c)
	if token == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sessionToken is required")
		return
	}

	bundle, err := h.exportSvc.Bundle(c.Request.Context(), token, c.Query("displayName"))
	if err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeExportFailed)
		return
	}

	filename := "wellness-data-" + time.Now().UTC().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ok(c, http.StatusOK, bundle)
}
