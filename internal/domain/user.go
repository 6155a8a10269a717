package domain

import (
	"context"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Fetch(ctx context.Context) ([]User, error)
}

// LoginResult pairs the authenticated user with their issued token.
type LoginResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type AuthUsecase interface {
	Register(ctx context.Context, email, username, password string) (*User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	// ListUsers returns all accounts; callers must be admins.
	ListUsers(ctx context.Context) ([]User, error)
}
