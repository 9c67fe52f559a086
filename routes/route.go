package route

import (
	"FibonacciAPI/controllers"
	"FibonacciAPI/handlers"
	"FibonacciAPI/middleware"
	"FibonacciAPI/mirror"
	"FibonacciAPI/repositories"
	"FibonacciAPI/services"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the process-wide collaborators shared by all handlers.
type Dependencies struct {
	Users            repositories.UserRepository
	Sessions         repositories.SessionRepository
	Mirror           mirror.Writer
	JWTSecret        []byte
	AccessTokenTTL   time.Duration
	CORSAllowOrigins []string
	Log              *zap.SugaredLogger
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(middleware.ErrorHandlerMiddleware(deps.Log))

	origins := deps.CORSAllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "DELETE"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "WWW-Authenticate"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterRoutes(r, deps)
	return r
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router gin.IRouter, deps Dependencies) {
	tokens := services.NewTokenIssuer(deps.JWTSecret)
	authService := services.NewAuthService(deps.Users, tokens, deps.Log)
	fibService := services.NewFibonacciService(deps.Sessions, deps.Mirror, deps.Log)
	sessionService := services.NewSessionService(deps.Sessions, deps.Users, deps.Log)

	authController := controllers.NewAuthController(authService, deps.AccessTokenTTL)
	fibController := controllers.NewFibonacciController(fibService, sessionService)

	handlers.RegisterHealthRoutes(router)
	handlers.RegisterAuthRoutes(router, authController)
	handlers.RegisterFibonacciRoutes(router, fibController, middleware.AuthMiddleware(authService))
}
