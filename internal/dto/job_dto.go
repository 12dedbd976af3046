package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	MinYears       int      `json:"min_years"`
}

type JobDTO struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	MinYears       int       `json:"min_years"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UpsertProfileRequest struct {
	Email           string   `json:"email"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
}
