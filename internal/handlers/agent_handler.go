package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agenthub_backend/internal/services"
)

// AgentHandler serves the public agent directory.
type AgentHandler struct {
	BaseHandler
	profileService *services.ProfileService
}

func NewAgentHandler(base BaseHandler, profileService *services.ProfileService) *AgentHandler {
	return &AgentHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *AgentHandler) RegisterRoutes(router *gin.RouterGroup) {
	agents := router.Group("/agents")
	{
		agents.GET("", h.ListAgents)
		agents.GET("/:id", h.GetAgent)
	}
}

func (h *AgentHandler) ListAgents(c *gin.Context) {
	entries, err := h.profileService.ListAgents()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *AgentHandler) GetAgent(c *gin.Context) {
	entry, err := h.profileService.GetAgent(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
