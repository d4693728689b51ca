package model

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// AuthUser is the identity resolved from a verified access token and attached
// to the request context by the auth middleware.
type AuthUser struct {
	ID       string
	Username string
}
