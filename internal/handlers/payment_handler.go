package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agenthub_backend/internal/middleware"
	"agenthub_backend/internal/models"
	"agenthub_backend/internal/services"
	"agenthub_backend/internal/services/dto"
)

type PaymentHandler struct {
	BaseHandler
	paymentService *services.PaymentService
}

func NewPaymentHandler(base BaseHandler, paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	payment := router.Group("/payment", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		payment.POST("/create-order", h.CreateOrder)
		payment.POST("/verify", h.VerifyPayment)
	}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.CreateOrder(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.VerifyPayment(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
