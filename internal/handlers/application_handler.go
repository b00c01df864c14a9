package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agenthub_backend/internal/middleware"
	"agenthub_backend/internal/services"
	"agenthub_backend/internal/services/dto"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(router *gin.RouterGroup) {
	applications := router.Group("/applications", middleware.AuthMiddleware())
	{
		// The :id segment is the job id for apply and the application id
		// for status updates; gin requires a single param name per level.
		applications.POST("/:id/apply", h.Apply)
		applications.GET("/my", h.GetMyApplications)
		applications.GET("/job/:id", h.GetJobApplications)
		applications.POST("/:id/status", h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}
	role, ok := h.RequireRole(c)
	if !ok {
		return
	}

	// A missing body means an application without a cover letter.
	var req dto.ApplyRequest
	if c.Request.ContentLength > 0 {
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
	}

	resp, err := h.applicationService.Apply(userID, role, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.GetMyApplications(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) GetJobApplications(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.GetJobApplications(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.UpdateStatus(userID, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
