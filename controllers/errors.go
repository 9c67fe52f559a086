package controllers

import (
	"FibonacciAPI/services"
	"FibonacciAPI/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// abortWithServiceError maps service errors to HTTP errors for the error
// handler middleware. notFound is the message used for ErrNotFound.
func abortWithServiceError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		err = utils.NewCustomError(http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrForbidden):
		err = utils.NewCustomError(http.StatusForbidden, "Forbidden, not your session")
	case errors.Is(err, services.ErrUnauthorized):
		err = utils.NewUnauthorizedError("Could not validate credentials")
	case errors.Is(err, services.ErrConflict):
		err = utils.NewCustomError(http.StatusConflict, "Username already registered")
	case errors.Is(err, services.ErrInvalidLimit):
		err = utils.NewCustomError(http.StatusBadRequest, err.Error())
	}
	_ = c.Error(err)
	c.Abort()
}
