package usecase

import (
	"errors"
	"time"

	"github.com/fadilmartias/job-portal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeekerUsecase struct {
	profiles ProfileStore
}

func NewSeekerUsecase(profiles ProfileStore) *SeekerUsecase {
	return &SeekerUsecase{profiles: profiles}
}

func (uc *SeekerUsecase) UpsertProfile(seekerID uuid.UUID, email string, skills []string, experienceYears int) (*model.SeekerProfile, error) {
	existingResume := ""
	if existing, err := uc.profiles.FindBySeekerID(seekerID); err == nil {
		existingResume = existing.ResumeText
	}

	profile := &model.SeekerProfile{
		SeekerID:        seekerID,
		Email:           email,
		Skills:          skills,
		ExperienceYears: experienceYears,
		ResumeText:      existingResume,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uc.profiles.UpsertProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetResumeText stores extracted resume text on the profile, creating a bare
// profile when none exists yet.
func (uc *SeekerUsecase) SetResumeText(seekerID uuid.UUID, resumeText string) (*model.SeekerProfile, error) {
	profile, err := uc.profiles.FindBySeekerID(seekerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = &model.SeekerProfile{
			SeekerID:  seekerID,
			CreatedAt: time.Now(),
		}
	} else if err != nil {
		return nil, err
	}

	profile.ResumeText = resumeText
	profile.UpdatedAt = time.Now()
	if err := uc.profiles.UpsertProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
