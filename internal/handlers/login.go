package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
	"github.com/sbilibin2017/gw-profit-tracker/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, login, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username or email
	// required: true
	// default: john_doe
	Login string `json:"login" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// LoginUser is the public part of the account
type LoginUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// default: Login successful
	Message string `json:"message"`

	// JWT token
	Token string `json:"token"`

	User LoginUser `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login a user
// @Description Authenticates a verified user by username or email and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} handlers.LoginResponse "Login successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 403 {object} handlers.ErrorResponse "Please verify your account"
// @Failure 500 {object} handlers.ErrorResponse "Login error"
// @Router /api/users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req, "Invalid login request") {
			return
		}

		token, user, err := svc.Login(r.Context(), req.Login, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			case errors.Is(err, services.ErrAccountNotVerified):
				writeMessage(w, http.StatusForbidden, "Please verify your account")
			default:
				writeInternalError(w, "Login error", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message: "Login successful",
			Token:   token,
			User: LoginUser{
				ID:       user.UserID,
				Username: user.Username,
				Email:    user.Email,
			},
		})
	}
}
