package repository

import (
	"github.com/fadilmartias/job-portal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationContext bundles everything the screening pipeline needs to score
// one application: the application itself, the job it targets, and the
// seeker's profile.
type ApplicationContext struct {
	Application *model.Application
	Job         *model.Job
	Profile     *model.SeekerProfile
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) CreateApplication(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepository) UpdateApplication(app *model.Application) error {
	return r.db.Save(app).Error
}

func (r *ApplicationRepository) FindApplicationByID(id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.First(&app, "id = ?", id).Error
	return &app, err
}

// FindByJobAndSeeker backs the one-application-per-(job, seeker) rule.
func (r *ApplicationRepository) FindByJobAndSeeker(jobID, seekerID uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.First(&app, "job_id = ? AND seeker_id = ?", jobID, seekerID).Error
	return &app, err
}

// FindApplicationWithContext loads the application plus its job and the
// seeker's profile. Any missing piece surfaces as gorm.ErrRecordNotFound.
func (r *ApplicationRepository) FindApplicationWithContext(id uuid.UUID) (*ApplicationContext, error) {
	var app model.Application
	if err := r.db.First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var job model.Job
	if err := r.db.First(&job, "id = ?", app.JobID).Error; err != nil {
		return nil, err
	}

	var profile model.SeekerProfile
	if err := r.db.First(&profile, "seeker_id = ?", app.SeekerID).Error; err != nil {
		return nil, err
	}

	return &ApplicationContext{Application: &app, Job: &job, Profile: &profile}, nil
}
