package handlers

//go:generate mockgen -source=verify_otp.go -destination=verify_otp_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/services"
)

// OTPVerifier defines the interface that the service must implement.
type OTPVerifier interface {
	VerifyOTP(ctx context.Context, userID uuid.UUID, code string) error
}

// VerifyOTPRequest represents the JSON body for account verification
// swagger:model VerifyOTPRequest
type VerifyOTPRequest struct {
	// Id returned by signup
	// required: true
	UserID uuid.UUID `json:"userId" validate:"required"`

	// Code from the verification email
	// required: true
	// default: 123456
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}

// NewVerifyOTPHandler returns an HTTP handler that verifies a new account.
// @Summary Verify account
// @Description Consumes the signup code and marks the account verified.
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyOTPRequest body handlers.VerifyOTPRequest true "Verification request"
// @Success 200 {object} handlers.MessageResponse "Account verified successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired OTP"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Verification error"
// @Router /api/users/verify-otp [post]
func NewVerifyOTPHandler(svc OTPVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyOTPRequest
		if !decodeBody(w, r, &req, "Invalid or expired OTP") {
			return
		}

		if err := svc.VerifyOTP(r.Context(), req.UserID, req.OTP); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeMessage(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrInvalidOrExpiredCode):
				writeMessage(w, http.StatusBadRequest, "Invalid or expired OTP")
			default:
				writeInternalError(w, "Verification error", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Account verified successfully"})
	}
}
