package handlers

import (
	"FibonacciAPI/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ServiceTitle   = "Fibonacci API"
	ServiceVersion = "0.1"
)

func RegisterHealthRoutes(router gin.IRouter) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:  "ok",
			Title:   ServiceTitle,
			Version: ServiceVersion,
		})
	})
}
