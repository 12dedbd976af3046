package repository

import (
	"github.com/fadilmartias/job-portal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeekerProfileRepository struct {
	db *gorm.DB
}

func NewSeekerProfileRepository(db *gorm.DB) *SeekerProfileRepository {
	return &SeekerProfileRepository{db}
}

func (r *SeekerProfileRepository) FindBySeekerID(seekerID uuid.UUID) (*model.SeekerProfile, error) {
	var profile model.SeekerProfile
	err := r.db.First(&profile, "seeker_id = ?", seekerID).Error
	return &profile, err
}

// UpsertProfile creates the profile on first write and updates it afterwards.
func (r *SeekerProfileRepository) UpsertProfile(profile *model.SeekerProfile) error {
	var existing model.SeekerProfile
	err := r.db.First(&existing, "seeker_id = ?", profile.SeekerID).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}
