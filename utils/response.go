package utils

import "github.com/gin-gonic/gin"

// MessageResponse is the body of every error and of plain acknowledgements
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse aborts the request with {"message": ...}
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, MessageResponse{Message: message})
}

// CustomErrorResponse renders a CustomError including its headers
func CustomErrorResponse(c *gin.Context, err *CustomError) {
	for k, v := range err.Headers {
		c.Header(k, v)
	}
	ErrorResponse(c, err.StatusCode, err.Message)
}
