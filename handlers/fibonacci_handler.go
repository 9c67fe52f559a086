package handlers

import (
	"FibonacciAPI/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterFibonacciRoutes sets up the fibonacci and session routes. auth
// guards the routes that need a caller identity.
func RegisterFibonacciRoutes(router gin.IRouter, fibController *controllers.FibonacciController, auth gin.HandlerFunc) {
	fibGroup := router.Group("/fibonacci")
	{
		fibGroup.POST("/fibbonacci", auth, fibController.Compute)
		fibGroup.GET("/all_sessions", fibController.AllSessions)
		fibGroup.GET("/all_users", fibController.AllUsers)
		fibGroup.GET("/sessions_by_user/", auth, fibController.SessionsByUser)
		fibGroup.GET("/session_by_id/:id", auth, fibController.SessionByID)
		fibGroup.DELETE("/session/:id", auth, fibController.DeleteSession)
	}
}
