package services

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-profit-tracker/internal/logger"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

// AdminReader defines read-only operations for admins.
type AdminReader interface {
	GetByUsername(ctx context.Context, username string) (*models.AdminDB, error)
	GetByID(ctx context.Context, adminID uuid.UUID) (*models.AdminDB, error)
}

// AdminWriter defines write operations for admins.
type AdminWriter interface {
	Create(ctx context.Context, username, passwordHash string) (bool, error)
}

// AdminService handles administrator authentication.
type AdminService struct {
	reader AdminReader
	writer AdminWriter
	jwt    TokenGenerator
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(reader AdminReader, writer AdminWriter, jwt TokenGenerator) *AdminService {
	return &AdminService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Login authenticates an admin and returns a token carrying the admin role.
func (svc *AdminService) Login(ctx context.Context, username, password string) (string, *models.AdminDB, error) {
	admin, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get admin", "err", err)
		return "", nil, err
	}
	if admin == nil {
		logger.Log.Errorw("admin does not exist", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, admin.AdminID, admin.Username, models.RoleAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, admin, nil
}

// Profile returns the admin with the given id.
func (svc *AdminService) Profile(ctx context.Context, adminID uuid.UUID) (*models.AdminDB, error) {
	admin, err := svc.reader.GetByID(ctx, adminID)
	if err != nil {
		logger.Log.Errorw("failed to get admin", "adminID", adminID, "err", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrUserNotFound
	}
	return admin, nil
}

// Seed creates the admin account unless one with that username exists.
func (svc *AdminService) Seed(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	created, err := svc.writer.Create(ctx, username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to seed admin", "username", username, "err", err)
		return err
	}
	if created {
		logger.Log.Infow("admin account created", "username", username)
	}
	return nil
}
