package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Screening lifecycle. Transitions only move forward, except failed -> processing
// (retry) and complete -> processing (manual re-trigger).
const (
	ScreeningStatusPending    = "pending"
	ScreeningStatusProcessing = "processing"
	ScreeningStatusComplete   = "complete"
	ScreeningStatusFailed     = "failed"
)

// ScreeningResult holds the outcome of screening one application. Exactly one
// row exists per application once screening has been triggered; score columns
// stay NULL until a run completes and are always written together.
type ScreeningResult struct {
	ID            uuid.UUID                  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex" json:"application_id"`
	RulesScore    *int                       `json:"rules_score"`
	SemanticScore *int                       `json:"semantic_score"`
	FinalScore    *int                       `json:"final_score"`
	Reasons       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"reasons"`
	AISummary     string                     `gorm:"type:text" json:"ai_summary"`
	AIQuestions   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ai_questions"`
	AIStatus      string                     `gorm:"type:varchar(50);default:'pending'" json:"ai_status"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}
