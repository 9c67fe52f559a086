package models

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type SessionResponse struct {
	Session *Session `json:"session"`
}

type SessionIDsResponse struct {
	Sessions []string `json:"sessions"`
}

type UsersResponse struct {
	Users []*User `json:"users"`
}

type DeleteResponse struct {
	Status      int    `json:"status"`
	Transaction string `json:"transaction"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Title   string `json:"title"`
	Version string `json:"version"`
}
