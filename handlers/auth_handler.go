package handlers

import (
	"FibonacciAPI/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router gin.IRouter, authController *controllers.AuthController) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/create_user", authController.CreateUser)
		authGroup.POST("/token", authController.Token)
	}
}
