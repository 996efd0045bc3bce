package common

import (
	"errors"
	"log"
	"net/http"

	"axiapac.com/timesheets/service"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Error: message,
	}
}

// AbortWithError maps service errors to a status code and writes the error body.
func AbortWithError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
	case errors.Is(err, service.ErrTimesheetNotFound), errors.Is(err, service.ErrTaskNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, NewErrorResponse(err.Error()))
	case errors.Is(err, service.ErrArchiveDisabled), errors.Is(err, service.ErrArchiveNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, NewErrorResponse(err.Error()))
	default:
		log.Printf("[ERROR] %s %s: %v\n", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, NewErrorResponse("Internal server error"))
	}
}
