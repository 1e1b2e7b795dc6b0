package utils

import (
	"net/http"

	"clinicflow/internal/apperror"

	"github.com/gin-gonic/gin"
)

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// AppErrorResponse maps an error from the core layers to an HTTP status
func AppErrorResponse(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperror.KindOf(err) {
	case apperror.Validation:
		status = http.StatusBadRequest
	case apperror.Conflict:
		status = http.StatusConflict
	case apperror.Reference:
		status = http.StatusUnprocessableEntity
	case apperror.NotFound:
		status = http.StatusNotFound
	}
	ErrorResponse(c, status, err.Error())
}
