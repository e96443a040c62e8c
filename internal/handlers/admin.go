package handlers

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
	"github.com/sbilibin2017/gw-profit-tracker/internal/services"
)

// AdminLoginer defines the interface that the service must implement.
type AdminLoginer interface {
	Login(ctx context.Context, username, password string) (string, *models.AdminDB, error)
}

// AdminProfiler defines the interface that the service must implement.
type AdminProfiler interface {
	Profile(ctx context.Context, adminID uuid.UUID) (*models.AdminDB, error)
}

// AdminLoginRequest represents the JSON body for admin login
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	// required: true
	// default: superadmin
	Username string `json:"username" validate:"required"`

	// required: true
	Password string `json:"password" validate:"required"`
}

// AdminInfo is the public part of an admin account
type AdminInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// AdminLoginResponse represents a successful admin login
// swagger:model AdminLoginResponse
type AdminLoginResponse struct {
	// default: Login successful
	Message string    `json:"message"`
	Token   string    `json:"token"`
	Admin   AdminInfo `json:"admin"`
}

// AdminDashboardResponse greets the admin
// swagger:model AdminDashboardResponse
type AdminDashboardResponse struct {
	// default: Welcome to admin dashboard
	Message string    `json:"message"`
	Admin   AdminInfo `json:"admin"`
}

// NewAdminLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param adminLoginRequest body handlers.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} handlers.AdminLoginResponse "Login successful"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /api/admin/login [post]
func NewAdminLoginHandler(svc AdminLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest
		if !decodeBody(w, r, &req, "Invalid login request") {
			return
		}

		token, admin, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			default:
				writeInternalError(w, "Server error", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, AdminLoginResponse{
			Message: "Login successful",
			Token:   token,
			Admin:   AdminInfo{ID: admin.AdminID, Username: admin.Username},
		})
	}
}

// NewAdminDashboardHandler returns an HTTP handler for the admin dashboard.
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.AdminDashboardResponse "Welcome to admin dashboard"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /api/admin/dashboard [get]
func NewAdminDashboardHandler(svc AdminProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := accountID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		admin, err := svc.Profile(r.Context(), adminID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeMessage(w, http.StatusUnauthorized, "Admin not found")
			default:
				writeInternalError(w, "Server error", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, AdminDashboardResponse{
			Message: "Welcome to admin dashboard",
			Admin:   AdminInfo{ID: admin.AdminID, Username: admin.Username},
		})
	}
}
