package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitApplicationRequest struct {
	JobID    uuid.UUID `json:"job_id"`
	SeekerID uuid.UUID `json:"seeker_id"`
	Note     string    `json:"note"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

type ApplicationDTO struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	SeekerID  uuid.UUID `json:"seeker_id"`
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
