package handler

import (
	"math"
	"strings"

	"github.com/fadilmartias/job-portal/internal/dto"
	"github.com/fadilmartias/job-portal/internal/model"
	"github.com/fadilmartias/job-portal/internal/response"
	"github.com/fadilmartias/job-portal/internal/usecase"
	"github.com/fadilmartias/job-portal/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/jobs", h.Create)
	app.Get("/jobs", h.List)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if strings.TrimSpace(req.Title) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "title is required",
		}, nil)
	}

	job, err := h.uc.CreateJob(c.Context(), req.Title, req.Description, req.RequiredSkills, req.MinYears)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create job",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job",
		Data:    toJobDTO(job),
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	jobs, total, err := h.uc.GetJobs(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list jobs",
		}, err)
	}

	data := make([]dto.JobDTO, 0, len(jobs))
	for i := range jobs {
		data = append(data, *toJobDTO(&jobs[i]))
	}

	totalPages := int64(math.Ceil(float64(total) / float64(pageSize)))
	from := (page-1)*pageSize + 1
	if len(data) == 0 {
		from = 0
	}
	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         from + len(data) - 1,
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list jobs",
		Data:       data,
		Pagination: pagination,
	})
}

func toJobDTO(job *model.Job) *dto.JobDTO {
	return &dto.JobDTO{
		ID:             job.ID,
		Title:          job.Title,
		Description:    job.Description,
		RequiredSkills: job.RequiredSkills,
		MinYears:       job.MinYears,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
}
