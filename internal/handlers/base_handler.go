package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agenthub_backend/internal/middleware"
	"agenthub_backend/internal/models"
	"agenthub_backend/internal/validator"
	"agenthub_backend/pkg/apperrors"
)

// BaseHandler holds the pieces every handler needs.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidateJSON binds the request body and writes the error
// response itself on failure. Returns false when the request is
// already answered.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		err = h.validator.TranslateBindingError(err)

		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}

		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return true
}

// HandleServiceError maps a service error onto the response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// RequireUserID fetches the authenticated user id or answers 401.
func (h *BaseHandler) RequireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: apperrors.NewUnauthorizedError("Authentication required"),
		})
		return "", false
	}
	return userID, true
}

// RequireRole fetches the authenticated role or answers 401.
func (h *BaseHandler) RequireRole(c *gin.Context) (models.UserRole, bool) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: apperrors.NewUnauthorizedError("Authentication required"),
		})
		return "", false
	}
	return role, true
}
