package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Deepanshu41008/Yapassio-platform/internal/logger"
	"github.com/Deepanshu41008/Yapassio-platform/internal/validator"
	"github.com/Deepanshu41008/Yapassio-platform/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
	log       logger.Logger
}

func NewBaseHandler(v *validator.Validator, log logger.Logger) *BaseHandler {
	return &BaseHandler{validator: v, log: log}
}

// successEnvelope mirrors apperrors.ErrorResponse for the success half:
// {"success": true, "data": {...}}.
type successEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// Respond writes a payload wrapped in the success envelope.
func (h *BaseHandler) Respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, successEnvelope{Success: true, Data: data})
}

// BindAndValidateJSON binds the body and runs the domain rules. On failure it
// writes the error envelope and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.log.Warn("failed to bind request body", map[string]interface{}{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		apperrors.HandleError(c, apperrors.InvalidInput("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			h.log.Warn("validation failed", map[string]interface{}{
				"path":   c.Request.URL.Path,
				"errors": vErr.Errors,
			})
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		h.log.Warn("service error", map[string]interface{}{
			"path":    c.Request.URL.Path,
			"code":    string(appErr.Code),
			"message": appErr.Message,
		})
		apperrors.HandleError(c, appErr)
		return
	}

	h.log.WithError(err).Error("internal server error", map[string]interface{}{
		"path": c.Request.URL.Path,
	})
	apperrors.HandleError(c, apperrors.InternalError(err))
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
