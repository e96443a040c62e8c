package services

//go:generate mockgen -source=otp.go -destination=otp_mock.go -package=services

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/logger"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

// ErrInvalidOrExpiredCode is returned when a submitted code does not match
// the pending one or has expired.
var ErrInvalidOrExpiredCode = errors.New("invalid or expired OTP")

// DefaultOTPExpiration is how long an issued code stays valid.
const DefaultOTPExpiration = 10 * time.Minute

const (
	otpMin = 100000
	otpMax = 999999
)

// CodeSender delivers a one-time code to the account owner.
type CodeSender interface {
	Send(ctx context.Context, recipient string, purpose models.CodePurpose, code string) error
}

// OTPService issues and verifies purpose-tagged one-time codes.
type OTPService struct {
	reader   UserReader
	writer   UserWriter
	sender   CodeSender
	exp      time.Duration
	now      func() time.Time
	generate func() (string, error)
}

// OTPOpt configures an OTPService.
type OTPOpt func(*OTPService)

// WithOTPExpiration sets how long issued codes stay valid.
func WithOTPExpiration(exp time.Duration) OTPOpt {
	return func(s *OTPService) {
		if exp > 0 {
			s.exp = exp
		}
	}
}

// WithOTPClock replaces the wall clock used for expiry.
func WithOTPClock(now func() time.Time) OTPOpt {
	return func(s *OTPService) {
		s.now = now
	}
}

// WithOTPGenerator replaces the random code generator.
func WithOTPGenerator(generate func() (string, error)) OTPOpt {
	return func(s *OTPService) {
		s.generate = generate
	}
}

// NewOTPService creates a new OTPService instance.
func NewOTPService(reader UserReader, writer UserWriter, sender CodeSender, opts ...OTPOpt) *OTPService {
	s := &OTPService{
		reader:   reader,
		writer:   writer,
		sender:   sender,
		exp:      DefaultOTPExpiration,
		now:      time.Now,
		generate: GenerateOTP,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateOTP returns a uniformly random six digit code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}

// Issue stores a fresh code for purpose, replacing any pending one, and sends
// it to the user's email. A failed send is logged and does not fail Issue.
func (s *OTPService) Issue(ctx context.Context, userID uuid.UUID, purpose models.CodePurpose) (uuid.UUID, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, ErrUserNotFound
	}

	code, err := s.generate()
	if err != nil {
		logger.Log.Errorw("failed to generate otp", "err", err)
		return uuid.Nil, err
	}

	expiresAt := s.now().Add(s.exp)
	if err := s.writer.SetPendingCode(ctx, user.UserID, purpose, code, expiresAt); err != nil {
		logger.Log.Errorw("failed to store otp", "userID", user.UserID, "purpose", purpose, "err", err)
		return uuid.Nil, err
	}

	if err := s.sender.Send(ctx, user.Email, purpose, code); err != nil {
		logger.Log.Errorw("failed to send otp", "userID", user.UserID, "purpose", purpose, "err", err)
	}

	return user.UserID, nil
}

// Verify checks code against the pending code of purpose. A verified signup
// code marks the account verified and is cleared. A reset code is left in
// place for the password change to clear.
func (s *OTPService) Verify(ctx context.Context, userID uuid.UUID, code string, purpose models.CodePurpose) error {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	pending := user.PendingCode(purpose)
	if pending == nil || pending.Code != code || pending.Expired(s.now()) {
		logger.Log.Warnw("otp rejected", "userID", userID, "purpose", purpose)
		return ErrInvalidOrExpiredCode
	}

	if purpose == models.PurposeSignup {
		if err := s.writer.MarkVerified(ctx, userID); err != nil {
			logger.Log.Errorw("failed to mark user verified", "userID", userID, "err", err)
			return err
		}
	}

	return nil
}
