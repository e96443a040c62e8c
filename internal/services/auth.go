package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-profit-tracker/internal/logger"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
	"github.com/sbilibin2017/gw-profit-tracker/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotVerified = errors.New("account not verified")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)
	SetPendingCode(ctx context.Context, userID uuid.UUID, purpose models.CodePurpose, code string, expiresAt time.Time) error
	MarkVerified(ctx context.Context, userID uuid.UUID) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// CodeIssuer issues and verifies one-time codes.
type CodeIssuer interface {
	Issue(ctx context.Context, userID uuid.UUID, purpose models.CodePurpose) (uuid.UUID, error)
	Verify(ctx context.Context, userID uuid.UUID, code string, purpose models.CodePurpose) error
}

// TokenGenerator defines an interface for generating JWT tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username, role string) (string, error)
}

// AuthService handles the user credential lifecycle.
type AuthService struct {
	reader UserReader
	writer UserWriter
	otp    CodeIssuer
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, otp CodeIssuer, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		otp:    otp,
		jwt:    jwt,
	}
}

// Signup creates an unverified user and sends the verification code.
func (svc *AuthService) Signup(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return uuid.Nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Create(ctx, username, email, string(hashedPassword))
	if errors.Is(err, repositories.ErrConflict) {
		return uuid.Nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	return svc.otp.Issue(ctx, userID, models.PurposeSignup)
}

// VerifyOTP consumes the signup code and marks the user verified.
func (svc *AuthService) VerifyOTP(ctx context.Context, userID uuid.UUID, code string) error {
	return svc.otp.Verify(ctx, userID, code, models.PurposeSignup)
}

// Login authenticates a user by username or email and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, login, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, login, login)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "login", login)
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		logger.Log.Errorw("user not verified", "userID", user.UserID)
		return "", nil, ErrAccountNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "login", login)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username, models.RoleUser)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// ForgotPassword sends a password reset code to the owner of email.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) (uuid.UUID, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, ErrUserNotFound
	}

	return svc.otp.Issue(ctx, user.UserID, models.PurposeReset)
}

// ResetPassword replaces the password once the reset code is verified.
func (svc *AuthService) ResetPassword(ctx context.Context, userID uuid.UUID, code, newPassword string) error {
	if err := svc.otp.Verify(ctx, userID, code, models.PurposeReset); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "userID", userID, "err", err)
		return err
	}

	return nil
}
