package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fadilmartias/job-portal/internal/model"
	"github.com/fadilmartias/job-portal/internal/repository"
	"github.com/fadilmartias/job-portal/internal/service"
	"github.com/fadilmartias/job-portal/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memStore is a minimal in-memory ApplicationStore + ScreeningStore for
// exercising the handlers end to end.
type memStore struct {
	mu       sync.Mutex
	apps     map[uuid.UUID]*model.Application
	jobs     map[uuid.UUID]*model.Job
	profiles map[uuid.UUID]*model.SeekerProfile
	results  map[uuid.UUID]*model.ScreeningResult
}

func newMemStore() *memStore {
	return &memStore{
		apps:     map[uuid.UUID]*model.Application{},
		jobs:     map[uuid.UUID]*model.Job{},
		profiles: map[uuid.UUID]*model.SeekerProfile{},
		results:  map[uuid.UUID]*model.ScreeningResult{},
	}
}

func (m *memStore) CreateApplication(app *model.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	saved := *app
	m.apps[app.ID] = &saved
	return nil
}

func (m *memStore) UpdateApplication(app *model.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := *app
	m.apps[app.ID] = &saved
	return nil
}

func (m *memStore) FindApplicationByID(id uuid.UUID) (*model.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := m.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *app
	return &found, nil
}

func (m *memStore) FindByJobAndSeeker(jobID, seekerID uuid.UUID) (*model.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, app := range m.apps {
		if app.JobID == jobID && app.SeekerID == seekerID {
			found := *app
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) FindApplicationWithContext(id uuid.UUID) (*repository.ApplicationContext, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := m.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	job, ok := m.jobs[app.JobID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	profile, ok := m.profiles[app.SeekerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a, j, p := *app, *job, *profile
	return &repository.ApplicationContext{Application: &a, Job: &j, Profile: &p}, nil
}

func (m *memStore) GetOrCreateResult(applicationID uuid.UUID) (*model.ScreeningResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if result, ok := m.results[applicationID]; ok {
		found := *result
		return &found, nil
	}
	result := &model.ScreeningResult{ID: uuid.New(), ApplicationID: applicationID, AIStatus: model.ScreeningStatusPending}
	m.results[applicationID] = result
	created := *result
	return &created, nil
}

func (m *memStore) UpdateResult(result *model.ScreeningResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := *result
	m.results[result.ApplicationID] = &saved
	return nil
}

func (m *memStore) FindResultByApplicationID(applicationID uuid.UUID) (*model.ScreeningResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result, ok := m.results[applicationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *result
	return &found, nil
}

// newTestApp wires the handler over the in-memory store with the mock
// evaluator. Routes are registered without the rate limiter so consecutive
// test requests are not throttled.
func newTestApp(store *memStore) *fiber.App {
	screening := usecase.NewScreeningUsecase(store, store, service.NewMockEvaluator())
	uc := usecase.NewApplicationUsecase(store, screening)
	h := NewApplicationHandler(uc)

	app := fiber.New()
	app.Post("/applications", h.Submit)
	app.Post("/applications/:id/screen", h.Screen)
	app.Get("/applications/:id/screening", h.Screening)
	app.Patch("/applications/:id/status", h.UpdateStatus)
	return app
}

func seed(store *memStore) (jobID, seekerID uuid.UUID) {
	jobID = uuid.New()
	seekerID = uuid.New()
	store.jobs[jobID] = &model.Job{ID: jobID, Title: "Backend Engineer", Description: "Go services", RequiredSkills: []string{"Go"}, MinYears: 2}
	store.profiles[seekerID] = &model.SeekerProfile{ID: uuid.New(), SeekerID: seekerID, Skills: []string{"Go"}, ExperienceYears: 4}
	return jobID, seekerID
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func TestSubmitApplication_EndToEnd(t *testing.T) {
	store := newMemStore()
	jobID, seekerID := seed(store)
	app := newTestApp(store)

	resp := doJSON(t, app, fiber.MethodPost, "/applications", map[string]any{
		"job_id":    jobID,
		"seeker_id": seekerID,
		"note":      "hi",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "applied", data["status"])
	assert.Equal(t, "pending", data["ai_status"])
	appID := data["id"].(string)

	// Background screening settles to complete with the mock evaluator.
	assert.Eventually(t, func() bool {
		r := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/applications/%s/screening", appID), nil)
		if r.StatusCode != fiber.StatusOK {
			return false
		}
		body := decodeEnvelope(t, r)
		result := body["data"].(map[string]any)
		return result["ai_status"] == model.ScreeningStatusComplete
	}, 3*time.Second, 50*time.Millisecond)
}

func TestSubmitApplication_MissingIDs(t *testing.T) {
	app := newTestApp(newMemStore())

	resp := doJSON(t, app, fiber.MethodPost, "/applications", map[string]any{"note": "hi"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitApplication_Duplicate(t *testing.T) {
	store := newMemStore()
	jobID, seekerID := seed(store)
	app := newTestApp(store)

	body := map[string]any{"job_id": jobID, "seeker_id": seekerID}
	first := doJSON(t, app, fiber.MethodPost, "/applications", body)
	require.Equal(t, fiber.StatusCreated, first.StatusCode)

	second := doJSON(t, app, fiber.MethodPost, "/applications", body)
	assert.Equal(t, fiber.StatusConflict, second.StatusCode)
}

func TestScreen_InvalidID(t *testing.T) {
	app := newTestApp(newMemStore())

	resp := doJSON(t, app, fiber.MethodPost, "/applications/not-a-uuid/screen", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestScreen_UnknownApplicationIsAccepted(t *testing.T) {
	store := newMemStore()
	app := newTestApp(store)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/applications/%s/screen", uuid.New()), nil)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	// The pipeline drops the unknown id without creating a result.
	time.Sleep(100 * time.Millisecond)
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.results)
}

func TestScreening_NotFound(t *testing.T) {
	app := newTestApp(newMemStore())

	resp := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/applications/%s/screening", uuid.New()), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateStatus_Flow(t *testing.T) {
	store := newMemStore()
	jobID, seekerID := seed(store)
	appID := uuid.New()
	store.apps[appID] = &model.Application{ID: appID, JobID: jobID, SeekerID: seekerID, Status: model.ApplicationStatusApplied}

	app := newTestApp(store)

	resp := doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/applications/%s/status", appID), map[string]any{"status": "shortlisted"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "shortlisted", data["status"])

	resp = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/applications/%s/status", appID), map[string]any{"status": "bogus"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/applications/%s/status", uuid.New()), map[string]any{"status": "hired"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
