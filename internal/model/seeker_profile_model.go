package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SeekerProfile struct {
	ID              uuid.UUID                  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SeekerID        uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex" json:"seeker_id"`
	Email           string                     `gorm:"type:varchar(255)" json:"email"`
	Skills          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills"`
	ExperienceYears int                        `json:"experience_years"`
	ResumeText      string                     `gorm:"type:text" json:"resume_text"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

func (p *SeekerProfile) TableName() string {
	return "seeker_profiles"
}
