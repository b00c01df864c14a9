package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agenthub_backend/internal/middleware"
	"agenthub_backend/internal/services"
	"agenthub_backend/internal/services/dto"
	"agenthub_backend/pkg/apperrors"
)

type ProfileHandler struct {
	BaseHandler
	profileService *services.ProfileService
	uploadService  *services.UploadService
}

func NewProfileHandler(base BaseHandler, profileService *services.ProfileService, uploadService *services.UploadService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
		uploadService:  uploadService,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/profiles", middleware.AuthMiddleware())
	{
		profiles.GET("/me", h.GetMyProfile)
		profiles.POST("/update", h.UpdateProfile)
		profiles.POST("/upload", h.Upload)
	}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetMyProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Upload accepts a multipart "file" field and returns the stored URL.
func (h *ProfileHandler) Upload(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("A 'file' form field is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	url, err := h.uploadService.Upload(
		c.Request.Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
