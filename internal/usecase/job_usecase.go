package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fadilmartias/job-portal/internal/model"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

const recommendationTopK = 5

type JobUsecase struct {
	jobs     JobStore
	profiles ProfileStore
	embedder EmbeddingService // nil when no Gemini credential is configured
}

func NewJobUsecase(jobs JobStore, profiles ProfileStore, embedder EmbeddingService) *JobUsecase {
	return &JobUsecase{jobs: jobs, profiles: profiles, embedder: embedder}
}

// CreateJob persists the posting and attaches an embedding when an embedder is
// available. Embedding failure is not fatal; the job is still listed, just not
// recommendable by similarity.
func (uc *JobUsecase) CreateJob(ctx context.Context, title, description string, requiredSkills []string, minYears int) (*model.Job, error) {
	job := &model.Job{
		Title:          title,
		Description:    description,
		RequiredSkills: requiredSkills,
		MinYears:       minYears,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := uc.jobs.CreateJob(job); err != nil {
		return nil, err
	}

	if uc.embedder != nil {
		emb, err := uc.embedder.GenerateEmbedding(ctx, job.Title+"\n"+job.Description)
		if err != nil {
			log.Printf("embedding for job %s failed: %v", job.ID, err)
			return job, nil
		}
		job.Embedding = pgvector.NewVector(emb)
		if err := uc.jobs.UpdateJob(job); err != nil {
			log.Printf("could not store embedding for job %s: %v", job.ID, err)
		}
	}

	return job, nil
}

func (uc *JobUsecase) GetJobs(page, pageSize int) ([]model.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return uc.jobs.GetJobs(page, pageSize)
}

// Recommend returns the jobs nearest to the seeker's resume. Without an
// embedder or resume text it falls back to the latest postings.
func (uc *JobUsecase) Recommend(ctx context.Context, seekerID uuid.UUID) ([]model.Job, error) {
	profile, err := uc.profiles.FindBySeekerID(seekerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if uc.embedder != nil && err == nil && profile.ResumeText != "" {
		emb, embErr := uc.embedder.GenerateEmbedding(ctx, profile.ResumeText)
		if embErr == nil {
			return uc.jobs.SearchJobs(pgvector.NewVector(emb), recommendationTopK)
		}
		log.Printf("resume embedding for seeker %s failed, falling back to latest jobs: %v", seekerID, embErr)
	}

	jobs, _, listErr := uc.jobs.GetJobs(1, recommendationTopK)
	return jobs, listErr
}
