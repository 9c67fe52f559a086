package models

type User struct {
	ID          string `json:"id" firestore:"id"`
	Username    string `json:"username" firestore:"username"`
	Email       string `json:"email,omitempty" firestore:"email"`
	Name        string `json:"name" firestore:"name"`
	Password    string `json:"-" firestore:"password"` // bcrypt hash, never serialized to clients
	PhoneNumber string `json:"phone_number,omitempty" firestore:"phone_number"`
}

// CurrentUser is the identity resolved from a bearer token
type CurrentUser struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}
