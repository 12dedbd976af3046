package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/fadilmartias/job-portal/internal/model"
	"github.com/fadilmartias/job-portal/internal/repository"
	"github.com/fadilmartias/job-portal/internal/scoring"
	"github.com/fadilmartias/job-portal/internal/service"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// fakeStore is an in-memory stand-in for the gorm repositories. It satisfies
// ApplicationStore, ScreeningStore, JobStore, and ProfileStore and records
// every aiStatus write so tests can assert on the transition order.
type fakeStore struct {
	mu          sync.Mutex
	apps        map[uuid.UUID]*model.Application
	jobs        map[uuid.UUID]*model.Job
	profiles    map[uuid.UUID]*model.SeekerProfile
	results     map[uuid.UUID]*model.ScreeningResult
	statusLog   []string
	searchCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		apps:     map[uuid.UUID]*model.Application{},
		jobs:     map[uuid.UUID]*model.Job{},
		profiles: map[uuid.UUID]*model.SeekerProfile{},
		results:  map[uuid.UUID]*model.ScreeningResult{},
	}
}

func (f *fakeStore) seedJob(title string, requiredSkills []string, minYears int) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.jobs[id] = &model.Job{ID: id, Title: title, Description: title + " role", RequiredSkills: requiredSkills, MinYears: minYears, CreatedAt: time.Now()}
	return id
}

func (f *fakeStore) seedProfile(skills []string, years int, resume string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	seekerID := uuid.New()
	f.profiles[seekerID] = &model.SeekerProfile{ID: uuid.New(), SeekerID: seekerID, Email: "seeker@example.com", Skills: skills, ExperienceYears: years, ResumeText: resume}
	return seekerID
}

func (f *fakeStore) seedApplication(jobID, seekerID uuid.UUID) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.apps[id] = &model.Application{ID: id, JobID: jobID, SeekerID: seekerID, Status: model.ApplicationStatusApplied}
	return id
}

func (f *fakeStore) resultCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.results)
}

func (f *fakeStore) statuses() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.statusLog...)
}

// ApplicationStore

func (f *fakeStore) CreateApplication(app *model.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	saved := *app
	f.apps[app.ID] = &saved
	return nil
}

func (f *fakeStore) UpdateApplication(app *model.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *app
	f.apps[app.ID] = &saved
	return nil
}

func (f *fakeStore) FindApplicationByID(id uuid.UUID) (*model.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *app
	return &found, nil
}

func (f *fakeStore) FindByJobAndSeeker(jobID, seekerID uuid.UUID) (*model.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, app := range f.apps {
		if app.JobID == jobID && app.SeekerID == seekerID {
			found := *app
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) FindApplicationWithContext(id uuid.UUID) (*repository.ApplicationContext, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	job, ok := f.jobs[app.JobID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	profile, ok := f.profiles[app.SeekerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a, j, p := *app, *job, *profile
	return &repository.ApplicationContext{Application: &a, Job: &j, Profile: &p}, nil
}

// ScreeningStore

func (f *fakeStore) GetOrCreateResult(applicationID uuid.UUID) (*model.ScreeningResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if result, ok := f.results[applicationID]; ok {
		found := *result
		return &found, nil
	}
	result := &model.ScreeningResult{ID: uuid.New(), ApplicationID: applicationID, AIStatus: model.ScreeningStatusPending}
	f.results[applicationID] = result
	f.statusLog = append(f.statusLog, model.ScreeningStatusPending)
	created := *result
	return &created, nil
}

func (f *fakeStore) UpdateResult(result *model.ScreeningResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *result
	f.results[result.ApplicationID] = &saved
	f.statusLog = append(f.statusLog, result.AIStatus)
	return nil
}

func (f *fakeStore) FindResultByApplicationID(applicationID uuid.UUID) (*model.ScreeningResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result, ok := f.results[applicationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *result
	return &found, nil
}

// JobStore

func (f *fakeStore) CreateJob(job *model.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	saved := *job
	f.jobs[job.ID] = &saved
	return nil
}

func (f *fakeStore) UpdateJob(job *model.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *job
	f.jobs[job.ID] = &saved
	return nil
}

func (f *fakeStore) FindJobByID(id string) (*model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	job, ok := f.jobs[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *job
	return &found, nil
}

func (f *fakeStore) GetJobs(page, pageSize int) ([]model.Job, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	jobs := []model.Job{}
	for _, job := range f.jobs {
		if len(jobs) < pageSize {
			jobs = append(jobs, *job)
		}
	}
	return jobs, int64(len(f.jobs)), nil
}

func (f *fakeStore) SearchJobs(embedding pgvector.Vector, topK int) ([]model.Job, error) {
	f.mu.Lock()
	f.searchCalls++
	f.mu.Unlock()
	jobs, _, err := f.GetJobs(1, topK)
	return jobs, err
}

// ProfileStore

func (f *fakeStore) FindBySeekerID(seekerID uuid.UUID) (*model.SeekerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[seekerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *profile
	return &found, nil
}

func (f *fakeStore) UpsertProfile(profile *model.SeekerProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *profile
	f.profiles[profile.SeekerID] = &saved
	return nil
}

// stubEvaluator lets tests control the semantic evaluation outcome.
type stubEvaluator struct {
	eval     *service.Evaluation
	err      error
	panicMsg string
}

func (s *stubEvaluator) Evaluate(ctx context.Context, candidate scoring.CandidateFacts, job scoring.JobFacts) (*service.Evaluation, error) {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	if s.err != nil {
		return nil, s.err
	}
	eval := *s.eval
	return &eval, nil
}

// stubEmbedder returns a fixed vector, or fails.
type stubEmbedder struct {
	vec []float32
	err error
}

func (s *stubEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vec, nil
}
