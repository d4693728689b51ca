package model

import "time"

type User struct {
	ID           string
	Username     string
	Pseudonym    string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Pseudonym string `json:"pseudonym" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// UserResponse is the external view of a User. The stored credential never
// leaves the process.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Pseudonym string    `json:"pseudonym"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Pseudonym: u.Pseudonym,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
