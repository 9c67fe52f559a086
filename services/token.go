package services

import (
	"FibonacciAPI/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL applies when IssueToken is called without a lifetime.
const DefaultTokenTTL = 15 * time.Minute

// Claims is the signed claim set: sub is the username, id the user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret []byte) *TokenIssuer {
	return &TokenIssuer{secret: secret, now: time.Now}
}

func (t *TokenIssuer) IssueToken(username, userID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(t.now().Add(ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(t.secret)
}

// ResolveToken verifies signature, algorithm and expiry and returns the
// identity carried by the token. Every failure is ErrUnauthorized.
func (t *TokenIssuer) ResolveToken(tokenString string) (*models.CurrentUser, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	if claims.Subject == "" || claims.UserID == "" {
		return nil, ErrUnauthorized
	}

	return &models.CurrentUser{Username: claims.Subject, ID: claims.UserID}, nil
}
