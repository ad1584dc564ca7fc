package usecase

import (
	"context"
	"time"

	"vialidades/internal/domain/entity"
	"vialidades/internal/domain/repository"
	"vialidades/internal/domain/service"
	"vialidades/pkg/errors"
	"vialidades/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:         uid,
		Email:      input.Email,
		Username:   input.Username,
		Role:       entity.RoleUser,
		Reputation: service.MaxReputation,
		Sanctions:  0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

type UpdateProfileInput struct {
	Username  string
	Email     string
	AvatarURL string
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Email != "" && input.Email != user.Email {
		if err := uc.firebaseAuth.UpdateUserEmail(ctx, userID, input.Email); err != nil {
			return nil, errors.Internal("Failed to update email in authentication provider", err)
		}
		user.Email = input.Email
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
