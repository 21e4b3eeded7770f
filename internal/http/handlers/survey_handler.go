// Survey HTTP handler.
//
// POST /survey scores a set of rubric responses server-side, persists the
// submission, and returns the score, risk tier, and tier-specific guidance.
// Clients never submit a score; only raw answers are trusted.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SurveyRequest is the JSON payload for a survey submission. Responses maps
// question id to the chosen answer value.
type SurveyRequest struct {
	SessionToken string            `json:"sessionToken,omitempty" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Responses    map[string]string `json:"responses"`
}

// SurveyResponse is the scored outcome of a submission.
type SurveyResponse struct {
	Success         bool     `json:"success" example:"true"`
	SessionToken    string   `json:"sessionToken"`
	Score           int      `json:"score" example:"12"`
	RiskLevel       string   `json:"riskLevel" example:"moderate"`
	Recommendations []string `json:"recommendations"`
	Message         string   `json:"message" example:"Survey submitted successfully"`
}

// SubmitSurvey godoc
// @ID          submitSurvey
// @Summary     Submit the wellbeing survey
// @Description Scores the ten-question rubric (0–30), classifies the risk tier (low ≤8, moderate 9–16, high ≥17), persists the submission, and returns tier guidance. A caller-supplied sessionToken is kept; a fresh one is minted only when absent.
// @Tags        Survey
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SurveyRequest  true  "Survey responses"
//
// @Success     200  {object}  handlers.SurveyResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /survey [post]
func (h *Handlers) SubmitSurvey(c *gin.Context) {
	var req SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if len(req.Responses) == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "responses are required")
		return
	}

	result, token, err := h.surveySvc.Submit(c.Request.Context(), req.SessionToken, req.Responses)
	if err != nil {
		failFromService(c, err, http.StatusInternalServerError, ErrCodeCreateFailed)
		return
	}

	ok(c, http.StatusOK, SurveyResponse{
		Success:         true,
		SessionToken:    token,
		Score:           result.Score,
		RiskLevel:       result.RiskLevel,
		Recommendations: result.Recommendations,
		Message:         "Survey submitted successfully",
	})
}
