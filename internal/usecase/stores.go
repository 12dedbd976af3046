package usecase

import (
	"context"

	"github.com/fadilmartias/job-portal/internal/model"
	"github.com/fadilmartias/job-portal/internal/repository"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Collaborator contracts the usecases depend on. The gorm repositories satisfy
// them in production; tests swap in in-memory fakes.

type ApplicationStore interface {
	CreateApplication(app *model.Application) error
	UpdateApplication(app *model.Application) error
	FindApplicationByID(id uuid.UUID) (*model.Application, error)
	FindByJobAndSeeker(jobID, seekerID uuid.UUID) (*model.Application, error)
	FindApplicationWithContext(id uuid.UUID) (*repository.ApplicationContext, error)
}

type ScreeningStore interface {
	GetOrCreateResult(applicationID uuid.UUID) (*model.ScreeningResult, error)
	UpdateResult(result *model.ScreeningResult) error
	FindResultByApplicationID(applicationID uuid.UUID) (*model.ScreeningResult, error)
}

type JobStore interface {
	CreateJob(job *model.Job) error
	UpdateJob(job *model.Job) error
	FindJobByID(id string) (*model.Job, error)
	GetJobs(page, pageSize int) ([]model.Job, int64, error)
	SearchJobs(embedding pgvector.Vector, topK int) ([]model.Job, error)
}

type ProfileStore interface {
	FindBySeekerID(seekerID uuid.UUID) (*model.SeekerProfile, error)
	UpsertProfile(profile *model.SeekerProfile) error
}

// EmbeddingService is the optional embedding capability; nil when no Gemini
// credential is configured.
type EmbeddingService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}
