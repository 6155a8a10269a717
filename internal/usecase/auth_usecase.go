package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-publishing-backend/internal/domain"
	"go-publishing-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (uc *authUsecase) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if len(username) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters")
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("email already registered")
	}
	if existing, err := uc.userRepo.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, fmt.Errorf("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      false,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login accepts a username or an email. The error is deliberately the same
// for an unknown account and a wrong password.
func (uc *authUsecase) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	username = strings.TrimSpace(username)

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		user, err = uc.userRepo.GetByEmail(ctx, strings.ToLower(username))
	}
	if err != nil || user == nil {
		return nil, fmt.Errorf("invalid username or password")
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	token, err := uc.tokens.Issue(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.LoginResult{User: user, Token: token}, nil
}

func (uc *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *authUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	isAdmin, _ := ctx.Value(domain.KeyIsAdmin).(bool)
	if !isAdmin {
		return nil, fmt.Errorf("Only admins can list users")
	}
	return uc.userRepo.Fetch(ctx)
}
