package handlers

//go:generate mockgen -source=password.go -destination=password_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/services"
)

// PasswordForgetter defines the interface that the service must implement.
type PasswordForgetter interface {
	ForgotPassword(ctx context.Context, email string) (uuid.UUID, error)
}

// PasswordResetter defines the interface that the service must implement.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, userID uuid.UUID, code, newPassword string) error
}

// ForgotPasswordRequest represents the JSON body for requesting a reset code
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Account email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordResponse is returned once the reset code was issued
// swagger:model ForgotPasswordResponse
type ForgotPasswordResponse struct {
	// default: Reset OTP sent
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

// ResetPasswordRequest represents the JSON body for a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// required: true
	UserID uuid.UUID `json:"userId" validate:"required"`

	// Code from the reset email
	// required: true
	OTP string `json:"otp" validate:"required,len=6,numeric"`

	// required: true
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// NewForgotPasswordHandler returns an HTTP handler that emails a reset code.
// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Reset request"
// @Success 200 {object} handlers.ForgotPasswordResponse "Reset OTP sent"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Forgot password error"
// @Router /api/users/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordForgetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if !decodeBody(w, r, &req, "Invalid forgot password request") {
			return
		}

		userID, err := svc.ForgotPassword(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeMessage(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, "Forgot password error", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, ForgotPasswordResponse{
			Message: "Reset OTP sent",
			UserID:  userID,
		})
	}
}

// NewResetPasswordHandler returns an HTTP handler that sets a new password.
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} handlers.MessageResponse "Password reset successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired OTP"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Password reset error"
// @Router /api/users/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if !decodeBody(w, r, &req, "Invalid reset password request") {
			return
		}

		if err := svc.ResetPassword(r.Context(), req.UserID, req.OTP, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeMessage(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrInvalidOrExpiredCode):
				writeMessage(w, http.StatusBadRequest, "Invalid or expired OTP")
			default:
				writeInternalError(w, "Password reset error", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password reset successful"})
	}
}
