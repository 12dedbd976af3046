package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/job-portal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationUsecase struct {
	applications ApplicationStore
	screening    *ScreeningUsecase
}

func NewApplicationUsecase(applications ApplicationStore, screening *ScreeningUsecase) *ApplicationUsecase {
	return &ApplicationUsecase{applications: applications, screening: screening}
}

// Submit creates the application and kicks off screening in the background.
// A seeker gets at most one application per job.
func (uc *ApplicationUsecase) Submit(jobID, seekerID uuid.UUID, note string) (*model.Application, error) {
	_, err := uc.applications.FindByJobAndSeeker(jobID, seekerID)
	if err == nil {
		return nil, ErrApplicationExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing application: %w", err)
	}

	app := &model.Application{
		JobID:     jobID,
		SeekerID:  seekerID,
		Status:    model.ApplicationStatusApplied,
		Note:      note,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.applications.CreateApplication(app); err != nil {
		return nil, err
	}

	uc.screening.TriggerScreening(app.ID)

	return app, nil
}

// UpdateStatus is the employer-side status change. Screening never calls this.
func (uc *ApplicationUsecase) UpdateStatus(id uuid.UUID, status string) (*model.Application, error) {
	if !model.IsValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	app, err := uc.applications.FindApplicationByID(id)
	if err != nil {
		return nil, err
	}

	app.Status = status
	app.UpdatedAt = time.Now()
	if err := uc.applications.UpdateApplication(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (uc *ApplicationUsecase) Rescreen(id uuid.UUID) {
	uc.screening.TriggerScreening(id)
}

func (uc *ApplicationUsecase) GetScreeningResult(id uuid.UUID) (*model.ScreeningResult, error) {
	return uc.screening.GetResult(id)
}
