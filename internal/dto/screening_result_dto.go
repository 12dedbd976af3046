package dto

import (
	"time"

	"github.com/google/uuid"
)

type ScreeningResultDTO struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	RulesScore    *int      `json:"rules_score"`
	SemanticScore *int      `json:"semantic_score"`
	FinalScore    *int      `json:"final_score"`
	Reasons       []string  `json:"reasons"`
	AISummary     string    `json:"ai_summary"`
	AIQuestions   []string  `json:"ai_questions"`
	AIStatus      string    `json:"ai_status"` // e.g. "pending", "processing", "complete", "failed"
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
