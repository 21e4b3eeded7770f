// Package services - SurveyService
//
// This file implements the risk-assessment survey: a fixed rubric of ten
// questions, each with four ordinal answer options scored 0–3, summed into a
// 0–30 total and classified into a low/moderate/high risk tier with
// tier-specific guidance text.
//
// Score is a pure function with no I/O; Submit wraps it with persistence and
// token handling. Unanswered (or unrecognized) questions contribute 0, so a
// partially completed survey still scores. The handler layer only rejects a
// submission with no answers at all.
package services

import (
	"context"
	"encoding/json"
	"strings"

	"gorm.io/gorm"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/guptaakarshan/mental-health/internal/domain"
	"github.com/guptaakarshan/mental-health/internal/repo"
)

// Risk tiers.
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// SurveyOption is one ordinal answer to a survey question.
type SurveyOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// SurveyQuestion is one rubric item with its four answer options.
type SurveyQuestion struct {
	ID       string         `json:"id"`
	Question string         `json:"question"`
	Options  []SurveyOption `json:"options"`
}

// SurveyQuestions is the fixed ten-question rubric. Order matters for
// presentation; scoring is order-independent.
var SurveyQuestions = []SurveyQuestion{
	{
		ID:       "mood",
		Question: "Over the past two weeks, how often have you felt down, depressed, or hopeless?",
		Options: []SurveyOption{
			{Value: "not_at_all", Label: "Not at all", Score: 0},
			{Value: "several_days", Label: "Several days", Score: 1},
			{Value: "more_than_half", Label: "More than half the days", Score: 2},
			{Value: "nearly_every_day", Label: "Nearly every day", Score: 3},
		},
	},
	{
		ID:       "anxiety",
		Question: "How often have you felt nervous, anxious, or on edge?",
		Options: []SurveyOption{
			{Value: "not_at_all", Label: "Not at all", Score: 0},
			{Value: "several_days", Label: "Several days", Score: 1},
			{Value: "more_than_half", Label: "More than half the days", Score: 2},
			{Value: "nearly_every_day", Label: "Nearly every day", Score: 3},
		},
	},
	{
		ID:       "sleep",
		Question: "How would you rate your sleep quality over the past month?",
		Options: []SurveyOption{
			{Value: "excellent", Label: "Excellent - I sleep well and feel rested", Score: 0},
			{Value: "good", Label: "Good - Minor sleep issues occasionally", Score: 1},
			{Value: "poor", Label: "Poor - Frequent sleep problems", Score: 2},
			{Value: "very_poor", Label: "Very poor - Severe sleep difficulties", Score: 3},
		},
	},
	{
		ID:       "stress",
		Question: "How often do you feel overwhelmed by academic or personal responsibilities?",
		Options: []SurveyOption{
			{Value: "rarely", Label: "Rarely or never", Score: 0},
			{Value: "sometimes", Label: "Sometimes", Score: 1},
			{Value: "often", Label: "Often", Score: 2},
			{Value: "constantly", Label: "Almost constantly", Score: 3},
		},
	},
	{
		ID:       "social_support",
		Question: "How satisfied are you with your social support system (friends, family, etc.)?",
		Options: []SurveyOption{
			{Value: "very_satisfied", Label: "Very satisfied", Score: 0},
			{Value: "satisfied", Label: "Satisfied", Score: 1},
			{Value: "dissatisfied", Label: "Dissatisfied", Score: 2},
			{Value: "very_dissatisfied", Label: "Very dissatisfied", Score: 3},
		},
	},
	{
		ID:       "concentration",
		Question: "How often do you have trouble concentrating on tasks or studies?",
		Options: []SurveyOption{
			{Value: "not_at_all", Label: "Not at all", Score: 0},
			{Value: "several_days", Label: "Several days", Score: 1},
			{Value: "more_than_half", Label: "More than half the days", Score: 2},
			{Value: "nearly_every_day", Label: "Nearly every day", Score: 3},
		},
	},
	{
		ID:       "self_care",
		Question: "How often do you engage in self-care activities (exercise, hobbies, relaxation)?",
		Options: []SurveyOption{
			{Value: "daily", Label: "Daily or almost daily", Score: 0},
			{Value: "weekly", Label: "Several times a week", Score: 1},
			{Value: "monthly", Label: "A few times a month", Score: 2},
			{Value: "rarely", Label: "Rarely or never", Score: 3},
		},
	},
	{
		ID:       "energy",
		Question: "How would you describe your energy levels recently?",
		Options: []SurveyOption{
			{Value: "high", Label: "High - I feel energetic most days", Score: 0},
			{Value: "moderate", Label: "Moderate - Some ups and downs", Score: 1},
			{Value: "low", Label: "Low - Often feeling tired or drained", Score: 2},
			{Value: "very_low", Label: "Very low - Constantly exhausted", Score: 3},
		},
	},
	{
		ID:       "help_seeking",
		Question: "How comfortable are you with seeking help when you're struggling?",
		Options: []SurveyOption{
			{Value: "very_comfortable", Label: "Very comfortable", Score: 0},
			{Value: "somewhat_comfortable", Label: "Somewhat comfortable", Score: 1},
			{Value: "uncomfortable", Label: "Uncomfortable", Score: 2},
			{Value: "very_uncomfortable", Label: "Very uncomfortable", Score: 3},
		},
	},
	{
		ID:       "overall_wellbeing",
		Question: "Overall, how would you rate your mental health and wellbeing right now?",
		Options: []SurveyOption{
			{Value: "excellent", Label: "Excellent", Score: 0},
			{Value: "good", Label: "Good", Score: 1},
			{Value: "fair", Label: "Fair", Score: 2},
			{Value: "poor", Label: "Poor", Score: 3},
		},
	},
}

// Tier-specific recommendation lists. Order is fixed and user-facing.
var (
	lowRiskRecommendations = []string{
		"Your mental health appears to be in a good place! Keep up the positive habits.",
		"Continue engaging in self-care activities and maintaining your support network.",
		"Consider sharing your coping strategies with friends who might benefit.",
		"Stay aware of your mental health and don't hesitate to seek support if things change.",
	}
	moderateRiskRecommendations = []string{
		"You may be experiencing some mental health challenges that could benefit from attention.",
		"Consider speaking with a counselor, therapist, or trusted friend about how you're feeling.",
		"Focus on improving sleep hygiene, regular exercise, and stress management techniques.",
		"Explore campus mental health resources or online therapy options.",
		"Practice mindfulness, meditation, or other relaxation techniques daily.",
	}
	highRiskRecommendations = []string{
		"Your responses suggest you may be experiencing significant mental health challenges.",
		"It's important to reach out for professional support as soon as possible.",
		"Contact your campus counseling center, a mental health professional, or a crisis helpline.",
		"Consider speaking with a trusted friend, family member, or advisor about how you're feeling.",
		"Remember that seeking help is a sign of strength, not weakness.",
		"If you're having thoughts of self-harm, please contact emergency services or a crisis hotline immediately.",
	}
)

// SurveyResult is the outcome of scoring one set of responses.
type SurveyResult struct {
	Score           int      `json:"score"`
	RiskLevel       string   `json:"riskLevel"`
	Recommendations []string `json:"recommendations"`
}

// ScoreSurvey applies the fixed rubric to responses (question id → answer
// value) and returns the summed score, risk tier, and tier guidance. Pure:
// no side effects, no I/O. Unknown question ids and unknown answer values
// contribute 0.
func ScoreSurvey(responses map[string]string) SurveyResult {
	total := 0
	for _, q := range SurveyQuestions {
		answer, ok := responses[q.ID]
		if !ok {
			continue
		}
		for _, opt := range q.Options {
			if opt.Value == answer {
				total += opt.Score
				break
			}
		}
	}

	var tier string
	var recs []string
	switch {
	case total <= 8:
		tier, recs = RiskLow, lowRiskRecommendations
	case total <= 16:
		tier, recs = RiskModerate, moderateRiskRecommendations
	default:
		tier, recs = RiskHigh, highRiskRecommendations
	}

	return SurveyResult{Score: total, RiskLevel: tier, Recommendations: recs}
}

// SurveyService scores submissions and persists them per token.
type SurveyService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Submit scores responses and stores the submission. When the caller already
// has a session token it is kept, so a survey no longer orphans previously
// logged data; a fresh UUID token is minted only when none is supplied.
// Returns the result and the (possibly new) token.
func (s *SurveyService) Submit(ctx context.Context, token string, responses map[string]string) (SurveyResult, string, error) {
	tr := otel.Tracer("services/SurveyService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(attribute.Int("survey.answers", len(responses))),
	)
	defer span.End()

	if len(responses) == 0 {
		return SurveyResult{}, "", ErrNoResponses
	}
	if strings.TrimSpace(token) == "" {
		token = uuid.NewString()
	}

	result := ScoreSurvey(responses)

	raw, err := json.Marshal(responses)
	if err != nil {
		return SurveyResult{}, "", err
	}
	if _, err := repo.CreateSurveySubmission(ctx, s.DB, token, string(raw), result.Score, result.RiskLevel); err != nil {
		return SurveyResult{}, "", err
	}
	return result, token, nil
}

// History returns a token's past submissions, most recent first.
func (s *SurveyService) History(ctx context.Context, token string) ([]domain.SurveySubmission, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}
	return repo.ListSurveySubmissions(ctx, s.DB, token)
}
