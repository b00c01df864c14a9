package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agenthub_backend/internal/middleware"
	"agenthub_backend/internal/models"
	"agenthub_backend/internal/services"
	"agenthub_backend/internal/services/dto"
)

type JobHandler struct {
	BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(router *gin.RouterGroup) {
	jobs := router.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.POST("", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer), h.CreateJob)
		jobs.GET("/my", middleware.AuthMiddleware(), h.ListMyJobs)
		jobs.GET("/:id", h.GetJob)
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobService.ListJobs()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListMyJobs(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
