package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/job-portal/internal/dto"
	"github.com/fadilmartias/job-portal/internal/usecase"
	"github.com/fadilmartias/job-portal/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SeekerHandler struct {
	seekers *usecase.SeekerUsecase
	jobs    *usecase.JobUsecase
}

func NewSeekerHandler(seekers *usecase.SeekerUsecase, jobs *usecase.JobUsecase) *SeekerHandler {
	return &SeekerHandler{seekers: seekers, jobs: jobs}
}

func (h *SeekerHandler) RegisterRoutes(app *fiber.App) {
	app.Put("/seekers/:id/profile", h.UpsertProfile)
	app.Post("/seekers/:id/resume", h.UploadResume)
	app.Get("/seekers/:id/recommendations", h.Recommendations)
}

func (h *SeekerHandler) UpsertProfile(c *fiber.Ctx) error {
	seekerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid seeker id",
		}, err)
	}

	var req dto.UpsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	profile, err := h.seekers.UpsertProfile(seekerID, req.Email, req.Skills, req.ExperienceYears)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to save profile",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success save profile",
		Data:    profile,
	})
}

// UploadResume accepts a PDF, OCRs it, and stores the text on the profile. The
// uploaded file itself is transient.
func (h *SeekerHandler) UploadResume(c *fiber.Ctx) error {
	seekerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid seeker id",
		}, err)
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}
	if file.Size > 5*1024*1024 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file size is too large (max 5MB)",
		}, nil)
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "unsupported resume file type",
		}, nil)
	}

	savePath := filepath.Join("./uploads/resume/", fmt.Sprintf("%s-%s", seekerID, file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save resume file",
		}, err)
	}

	text, err := util.ExtractResumeText(savePath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to extract resume text",
		}, err)
	}

	profile, err := h.seekers.SetResumeText(seekerID, text)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to save resume text",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success upload resume",
		Data:    fiber.Map{"seeker_id": profile.SeekerID, "resume_chars": len(profile.ResumeText)},
	})
}

func (h *SeekerHandler) Recommendations(c *fiber.Ctx) error {
	seekerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid seeker id",
		}, err)
	}

	jobs, err := h.jobs.Recommend(c.Context(), seekerID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get recommendations",
		}, err)
	}

	data := make([]dto.JobDTO, 0, len(jobs))
	for i := range jobs {
		data = append(data, *toJobDTO(&jobs[i]))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get recommendations",
		Data:    data,
	})
}
