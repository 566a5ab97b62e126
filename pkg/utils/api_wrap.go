package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
	})
}

// HandleServiceError maps service errors onto HTTP responses. Validation
// failures from the schedule engine carry user-facing messages as-is.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidWindow):
		RespondError(c, http.StatusBadRequest, ErrInvalidWindow.Error())
	case errors.Is(err, ErrOverlapConflict):
		RespondError(c, http.StatusConflict, ErrOverlapConflict.Error())
	case errors.Is(err, ErrInsufficientEvents):
		RespondError(c, http.StatusUnprocessableEntity, ErrInsufficientEvents.Error())
	case errors.Is(err, ErrMissingLocation):
		RespondError(c, http.StatusUnprocessableEntity, ErrMissingLocation.Error())
	case errors.Is(err, ErrRouteTooLong):
		RespondError(c, http.StatusUnprocessableEntity, ErrRouteTooLong.Error())
	case errors.Is(err, ErrDayOverflow):
		RespondError(c, http.StatusUnprocessableEntity, ErrDayOverflow.Error())
	case errors.Is(err, ErrProviderUnavailable),
		errors.Is(err, ErrMalformedProviderResponse):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrDayNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrCollaboratorNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, ErrEmailAlreadyExists.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, ErrInvalidCredentials.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, ErrForbidden.Error())
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
