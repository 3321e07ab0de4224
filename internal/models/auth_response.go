package models

import "time"

// UserResponse is the serializable view of a user. It never carries the
// password hash.
type UserResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse represents the response after signup or login
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"` // JWT token
}

// ProfileResponse represents the response for the profile endpoint
type ProfileResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
