package controllers

import (
	"FibonacciAPI/middleware"
	"FibonacciAPI/models"
	"FibonacciAPI/services"
	"FibonacciAPI/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FibonacciController struct {
	FibonacciService *services.FibonacciService
	SessionService   *services.SessionService
}

func NewFibonacciController(fib *services.FibonacciService, sessions *services.SessionService) *FibonacciController {
	return &FibonacciController{
		FibonacciService: fib,
		SessionService:   sessions,
	}
}

func currentUser(c *gin.Context) (*models.CurrentUser, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.CustomErrorResponse(c, utils.NewUnauthorizedError("Could not validate credentials"))
	}
	return user, ok
}

// Compute records a new fibonacci session for the caller
func (f *FibonacciController) Compute(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.FibonacciRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "upper_limit is required and must be an integer")
		return
	}

	session, err := f.FibonacciService.Compute(c.Request.Context(), user, *req.UpperLimit)
	if err != nil {
		abortWithServiceError(c, err, "No session found")
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{Session: session})
}

func (f *FibonacciController) AllSessions(c *gin.Context) {
	ids, err := f.SessionService.ListSessionIDs(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "No sessions found")
		return
	}

	c.JSON(http.StatusOK, models.SessionIDsResponse{Sessions: ids})
}

func (f *FibonacciController) AllUsers(c *gin.Context) {
	users, err := f.SessionService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "No users found")
		return
	}

	c.JSON(http.StatusOK, models.UsersResponse{Users: users})
}

// SessionsByUser responds with {<userId>: [sessionId...]}
func (f *FibonacciController) SessionsByUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	ids, err := f.SessionService.ListSessionIDsByUser(c.Request.Context(), user.ID)
	if err != nil {
		abortWithServiceError(c, err, "No sessions found")
		return
	}

	c.JSON(http.StatusOK, map[string][]string{user.ID: ids})
}

func (f *FibonacciController) SessionByID(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	session, err := f.SessionService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err, "No session found")
		return
	}

	c.JSON(http.StatusOK, session)
}

func (f *FibonacciController) DeleteSession(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := f.SessionService.DeleteSession(c.Request.Context(), user, c.Param("id")); err != nil {
		abortWithServiceError(c, err, "No session found")
		return
	}

	c.JSON(http.StatusOK, models.DeleteResponse{Status: http.StatusOK, Transaction: "Successful"})
}
