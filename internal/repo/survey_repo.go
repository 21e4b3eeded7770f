// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// SurveySubmission model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guptaakarshan/mental-health/internal/domain"
)

// CreateSurveySubmission inserts a scored survey submission owned by token.
// responses is the raw question→answer mapping serialized as JSON.
func CreateSurveySubmission(ctx context.Context, db *gorm.DB, token, responses string, score int, riskLevel string) (*domain.SurveySubmission, error) {
	s := &domain.SurveySubmission{
		ID:           uuid.NewString(),
		SessionToken: token,
		Responses:    responses,
		Score:        score,
		RiskLevel:    riskLevel,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// ListSurveySubmissions returns a token's submissions, most recent first.
func ListSurveySubmissions(ctx context.Context, db *gorm.DB, token string) ([]domain.SurveySubmission, error) {
	out := []domain.SurveySubmission{}
	err := db.WithContext(ctx).
		Where("session_token = ?", token).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
