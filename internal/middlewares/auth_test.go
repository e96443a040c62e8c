package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-profit-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	userClaims := &jwt.Claims{UserID: userID, Username: "alice", Role: models.RoleUser}
	adminClaims := &jwt.Claims{UserID: userID, Username: "root", Role: models.RoleAdmin}

	tests := []struct {
		name             string
		mockSetup        func(tk *MockTokener, ch *MockAccountChecker)
		expectedStatus   int
		expectedBody     string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tk *MockTokener, ch *MockAccountChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Not authorized, no token"}`,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tk *MockTokener, ch *MockAccountChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Not authorized, token failed"}`,
		},
		{
			name: "WrongRole",
			mockSetup: func(tk *MockTokener, ch *MockAccountChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("admintoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "admintoken").
					Return(adminClaims, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Not authorized, token failed"}`,
		},
		{
			name: "AccountGone",
			mockSetup: func(tk *MockTokener, ch *MockAccountChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(userClaims, nil)
				ch.EXPECT().Exists(gomock.Any(), userID).Return(false, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Not authorized, account not found"}`,
		},
		{
			name: "LookupError",
			mockSetup: func(tk *MockTokener, ch *MockAccountChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(userClaims, nil)
				ch.EXPECT().Exists(gomock.Any(), userID).Return(false, errors.New("db down"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Not authorized, token failed"}`,
		},
		{
			name: "ValidToken",
			mockSetup: func(tk *MockTokener, ch *MockAccountChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(userClaims, nil)
				ch.EXPECT().Exists(gomock.Any(), userID).Return(true, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockChecker := NewMockAccountChecker(ctrl)
			tt.mockSetup(mockTokener, mockChecker)

			// Wrap a next handler to check if it was called
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				claims, ok := jwt.ClaimsFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, claims.UserID)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockChecker, models.RoleUser)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
