package model

import (
	"errors"
	"strings"
	"time"
)

// User represents a user account as returned by the backend.
type User struct {
	ID             string    `json:"_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Admin          bool      `json:"admin"`
	Firstname      string    `json:"firstname"`
	Lastname       string    `json:"lastname"`
	Follows        []User    `json:"follows"`
	Description    *string   `json:"description,omitempty"`
	ProfilePicture *string   `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// IsFollowing reports whether the follow list contains the given user.
// Follow uniqueness is by id; the backend returns follows as full user objects.
func (u User) IsFollowing(userID string) bool {
	for _, f := range u.Follows {
		if f.ID == userID {
			return true
		}
	}
	return false
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	return strings.TrimSpace(u.Firstname + " " + u.Lastname)
}

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the request body for registering a new account.
type RegisterRequest struct {
	Firstname       string `json:"firstname"`
	Lastname        string `json:"lastname"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Admin           bool   `json:"admin"`
}

// UpdateUserRequest is the request body for editing a profile. Only the
// fields the edit form exposes are sent; the backend echoes the full user.
type UpdateUserRequest struct {
	Firstname      string  `json:"firstname"`
	Lastname       string  `json:"lastname"`
	Email          string  `json:"email"`
	Description    *string `json:"description,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	Admin          bool    `json:"admin"`
}

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("not logged in")
)
