package handler

import (
	"errors"
	"time"

	"github.com/fadilmartias/job-portal/internal/dto"
	"github.com/fadilmartias/job-portal/internal/middleware"
	"github.com/fadilmartias/job-portal/internal/usecase"
	"github.com/fadilmartias/job-portal/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/applications", middleware.RateLimiter(1, 4*time.Second), h.Submit)
	app.Post("/applications/:id/screen", middleware.RateLimiter(1, 4*time.Second), h.Screen)
	app.Get("/applications/:id/screening", h.Screening)
	app.Patch("/applications/:id/status", h.UpdateStatus)
}

// Submit creates an application and triggers screening in the background. The
// response never waits for the screening outcome.
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.JobID == uuid.Nil || req.SeekerID == uuid.Nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "job_id and seeker_id are required",
		}, nil)
	}

	app, err := h.uc.Submit(req.JobID, req.SeekerID, req.Note)
	if errors.Is(err, usecase.ErrApplicationExists) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "you have already applied to this job",
		}, err)
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit application",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success submit application",
		Data:    fiber.Map{"id": app.ID, "status": app.Status, "ai_status": "pending"},
	})
}

// Screen is the manual re-trigger. A malformed id fails synchronously; an
// unknown id is accepted and dropped by the pipeline.
func (h *ApplicationHandler) Screen(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}

	h.uc.Rescreen(id)

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "Screening triggered",
		Data:    fiber.Map{"id": id},
	})
}

func (h *ApplicationHandler) Screening(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}

	result, err := h.uc.GetScreeningResult(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "screening result not found",
		}, nil)
	}

	data := dto.ScreeningResultDTO{
		ID:            result.ID,
		ApplicationID: result.ApplicationID,
		RulesScore:    result.RulesScore,
		SemanticScore: result.SemanticScore,
		FinalScore:    result.FinalScore,
		Reasons:       result.Reasons,
		AISummary:     result.AISummary,
		AIQuestions:   result.AIQuestions,
		AIStatus:      result.AIStatus,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get screening result",
		Data:    data,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	app, err := h.uc.UpdateStatus(id, req.Status)
	if errors.Is(err, usecase.ErrInvalidStatus) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application status",
		}, err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "application not found",
		}, nil)
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update application status",
		}, err)
	}

	data := dto.ApplicationDTO{
		ID:        app.ID,
		JobID:     app.JobID,
		SeekerID:  app.SeekerID,
		Status:    app.Status,
		Note:      app.Note,
		CreatedAt: app.CreatedAt,
		UpdatedAt: app.UpdatedAt,
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update application status",
		Data:    data,
	})
}
