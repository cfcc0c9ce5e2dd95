package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/consultation"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/validation"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func respondOK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data, Message: message})
}

func respondCreated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data, Message: message})
}

// respondServiceError maps domain and validation errors to HTTP statuses.
// Every rejection carries a user-visible reason.
func respondServiceError(c *gin.Context, err error) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fieldErr.Reason,
			Field: fieldErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, appointment.ErrAppointmentNotFound),
		errors.Is(err, consultation.ErrConsultationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, consultation.ErrConsultationExists),
		errors.Is(err, consultation.ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, patient.ErrPatientInactive),
		errors.Is(err, appointment.ErrNotScheduled),
		errors.Is(err, appointment.ErrScheduledInPast),
		errors.Is(err, appointment.ErrInvalidStatusTransition):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

func parseUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	raw := c.Param(param)
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

func requestID(c *gin.Context) string {
	return c.GetString(ctxKeyRequestID)
}
