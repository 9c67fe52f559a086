package controllers

import (
	"FibonacciAPI/models"
	"FibonacciAPI/services"
	"FibonacciAPI/utils"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *services.AuthService
	TokenTTL    time.Duration
}

func NewAuthController(authService *services.AuthService, tokenTTL time.Duration) *AuthController {
	return &AuthController{
		AuthService: authService,
		TokenTTL:    tokenTTL,
	}
}

// CreateUser registers a new user from a JSON body
func (a *AuthController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if _, err := a.AuthService.RegisterUser(c.Request.Context(), req); err != nil {
		abortWithServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusCreated, utils.MessageResponse{Message: "User created successfully"})
}

// Token implements the OAuth2 password flow with a form-encoded body
func (a *AuthController) Token(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := a.AuthService.Login(c.Request.Context(), req.Username, req.Password, a.TokenTTL)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			utils.CustomErrorResponse(c, utils.NewUnauthorizedError("Incorrect username or password"))
			return
		}
		abortWithServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
