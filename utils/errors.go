package utils

import "net/http"

// CustomError is an error carrying the HTTP status it should be rendered with
type CustomError struct {
	StatusCode int               `json:"-"`
	Message    string            `json:"message"`
	Headers    map[string]string `json:"-"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError builds a CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// NewUnauthorizedError builds a 401 that carries the bearer challenge header
func NewUnauthorizedError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
		Headers:    map[string]string{"WWW-Authenticate": "Bearer"},
	}
}
