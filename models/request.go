package models

type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Name        string `json:"name" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phone_number"`
}

// TokenRequest is the form-encoded OAuth2 password flow body
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type FibonacciRequest struct {
	UpperLimit *int64 `json:"upper_limit" binding:"required"`
}
