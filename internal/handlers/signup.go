package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/services"
)

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, email, password string) (uuid.UUID, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required,min=3,max=20"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6"`
}

// SignupResponse represents a successful registration response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// default: User registered. Please verify OTP
	Message string `json:"message"`

	// Id of the new account, needed for OTP verification
	UserID uuid.UUID `json:"userId"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an unverified account and emails a 6 digit verification code valid for 10 minutes.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User registration request"
// @Success 201 {object} handlers.SignupResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "User already exists / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Signup error"
// @Router /api/users/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if !decodeBody(w, r, &req, "Invalid signup request") {
			return
		}

		userID, err := svc.Signup(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeMessage(w, http.StatusBadRequest, "User already exists with this email or username")
			default:
				writeInternalError(w, "Signup error", err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{
			Message: "User registered. Please verify OTP",
			UserID:  userID,
		})
	}
}
