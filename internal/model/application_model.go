package model

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses, controlled by the employer side only. Screening never
// touches Application.Status.
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusScreened    = "screened"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusInterview   = "interview"
	ApplicationStatusOffer       = "offer"
	ApplicationStatusHired       = "hired"
	ApplicationStatusRejected    = "rejected"
)

var applicationStatuses = map[string]bool{
	ApplicationStatusApplied:     true,
	ApplicationStatusScreened:    true,
	ApplicationStatusShortlisted: true,
	ApplicationStatusInterview:   true,
	ApplicationStatusOffer:       true,
	ApplicationStatusHired:       true,
	ApplicationStatusRejected:    true,
}

// IsValidApplicationStatus reports whether s is one of the known statuses.
func IsValidApplicationStatus(s string) bool {
	return applicationStatuses[s]
}

type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker" json:"job_id"`
	SeekerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker" json:"seeker_id"`
	Status    string    `gorm:"type:varchar(50);default:'applied'" json:"status"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
