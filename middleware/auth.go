package middleware

import (
	"FibonacciAPI/models"
	"FibonacciAPI/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// CurrentUserKey holds the *models.CurrentUser of an authenticated request
	CurrentUserKey = "currentUser"
	// UserIDKey holds the caller's user id as a string
	UserIDKey = "userId"

	credentialsMessage = "Could not validate credentials"
)

// TokenResolver turns a bearer token into the caller identity.
type TokenResolver interface {
	ResolveCurrentUser(token string) (*models.CurrentUser, error)
}

// AuthMiddleware requires "Authorization: Bearer <token>" and stores the
// resolved identity in the gin context.
func AuthMiddleware(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			utils.CustomErrorResponse(c, utils.NewUnauthorizedError("Not authenticated"))
			return
		}

		user, err := resolver.ResolveCurrentUser(token)
		if err != nil {
			utils.CustomErrorResponse(c, utils.NewUnauthorizedError(credentialsMessage))
			return
		}

		c.Set(CurrentUserKey, user)
		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// CurrentUser returns the identity stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.CurrentUser, bool) {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.CurrentUser)
	return user, ok
}
