package handler

import (
	"github.com/labstack/echo/v4"

	"vialidades/internal/usecase"
	"vialidades/pkg/errors"
	"vialidades/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"token": result.Token,
		"user":  result.User,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"token": result.Token,
		"user":  result.User,
	})
}

func (h *AuthHandler) GetCurrentUser(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.authUseCase.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updateProfileRequest struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	user, err := h.authUseCase.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Username:  req.Username,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
