package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agenthub_backend/internal/middleware"
	"agenthub_backend/internal/services"
	"agenthub_backend/internal/services/dto"
)

type AuthHandler struct {
	BaseHandler
	authService *services.AuthService
}

func NewAuthHandler(base BaseHandler, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/signout", h.Signout)
		auth.GET("/me", middleware.AuthMiddleware(), h.Me)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Signout is a stateless confirmation; tokens expire on their own and
// clients drop them locally.
func (h *AuthHandler) Signout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetMe(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
