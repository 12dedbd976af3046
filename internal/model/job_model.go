package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Job struct {
	ID             uuid.UUID                  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title          string                     `json:"title"`
	Description    string                     `gorm:"type:text" json:"description"`
	RequiredSkills datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"required_skills"`
	MinYears       int                        `json:"min_years"`
	Embedding      pgvector.Vector            `gorm:"type:vector(3072)" json:"-"` // pakai pgvector
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
