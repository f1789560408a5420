package identity

import (
	"time"

	"github.com/google/uuid"
)

// SignupInput contains input for user registration
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// SignupResult contains the created user
type SignupResult struct {
	User UserInfo
}

// LoginInput contains input for the login operation
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains tokens and user info after successful login
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	TokenType   string
	User        UserInfo
}

// GetCurrentUserInput contains input for fetching the session user
type GetCurrentUserInput struct {
	UserID uuid.UUID
}

// GetCurrentUserResult contains the session user
type GetCurrentUserResult struct {
	User UserInfo
}

// ChangePasswordInput contains input for the change password operation
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// LogoutInput contains input for the logout operation
type LogoutInput struct {
	UserID   uuid.UUID
	TokenJTI string
	TokenTTL time.Duration
}

// UserInfo is the user representation returned by the service.
// The password hash is never exposed here.
type UserInfo struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}
