// Package handler contains the echo handlers for the HTTP API.
package handler

import (
	"net/http"
	"time"

	"editais/internal/delivery/http/response"
	"editais/internal/domain/entity"
	"editais/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandler serves the authentication endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUsecase usecase.UserUsecase
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUsecase: params.UserUsecase}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	User         userView `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

// Register handles POST /api/auth/register
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.userUsecase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(out), "Conta criada com sucesso")
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.userUsecase.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAuthResponse(out), "Login realizado com sucesso")
}

func toAuthResponse(out *usecase.AuthOutput) authResponse {
	return authResponse{
		User:         toUserView(out.User),
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
	}
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
