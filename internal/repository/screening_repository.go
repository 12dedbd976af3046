package repository

import (
	"github.com/fadilmartias/job-portal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScreeningRepository struct {
	db *gorm.DB
}

func NewScreeningRepository(db *gorm.DB) *ScreeningRepository {
	return &ScreeningRepository{db}
}

// GetOrCreateResult returns the screening result for the application, creating
// it in "pending" on first trigger. The unique index on application_id keeps
// concurrent first triggers from producing two rows.
func (r *ScreeningRepository) GetOrCreateResult(applicationID uuid.UUID) (*model.ScreeningResult, error) {
	var result model.ScreeningResult
	err := r.db.
		Where(model.ScreeningResult{ApplicationID: applicationID}).
		Attrs(model.ScreeningResult{AIStatus: model.ScreeningStatusPending}).
		FirstOrCreate(&result).Error
	return &result, err
}

func (r *ScreeningRepository) UpdateResult(result *model.ScreeningResult) error {
	return r.db.Save(result).Error
}

func (r *ScreeningRepository) FindResultByApplicationID(applicationID uuid.UUID) (*model.ScreeningResult, error) {
	var result model.ScreeningResult
	err := r.db.First(&result, "application_id = ?", applicationID).Error
	return &result, err
}
