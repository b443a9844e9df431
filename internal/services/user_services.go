package services

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"time"

	"TaskTrackerAPI/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// OTPTTL is how long a requested verification code stays retrievable.
const OTPTTL = 180 * time.Second

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserRepository persists identity records. Absent users are reported as
// ErrUserNotFound, username conflicts on Save as ErrDuplicateUsername.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Save(ctx context.Context, user *model.User) (*model.User, error)
}

// OTPStore is an expiring key-value store for verification codes keyed by
// email. Get reports entries past their TTL (or never set) as ErrOTPExpired;
// the store's own expiry is authoritative.
type OTPStore interface {
	Set(ctx context.Context, email string, code int, ttl time.Duration) error
	Get(ctx context.Context, email string) (int, error)
	Delete(ctx context.Context, email string) error
}

// Mailer is the trigger point for out-of-band notifications. Delivery is
// somebody else's problem.
type Mailer interface {
	SendVerifiedNotice(ctx context.Context, toEmail string) error
}

type UserService struct {
	users  UserRepository
	otps   OTPStore
	tokens *TokenService
	mailer Mailer
	logger *slog.Logger
}

func NewUserService(users UserRepository, otps OTPStore, tokens *TokenService, mailer Mailer, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{users: users, otps: otps, tokens: tokens, mailer: mailer, logger: logger}
}

// HashPassword applies bcrypt with a fresh random salt, so two calls with
// the same plaintext never produce the same hash.
func (s *UserService) HashPassword(plainPassword string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plainPassword matches hash. A hash that is
// not structurally valid bcrypt fails with ErrMalformedHash.
func (s *UserService) VerifyPassword(plainPassword, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plainPassword))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrMalformedHash
}

// CreateOTP returns a uniformly random 4-digit code. Deliberately not
// crypto-grade: the code lives for OTPTTL and is bound to an authenticated
// identity.
func (s *UserService) CreateOTP() int {
	return rand.IntN(9000) + 1000
}

func (s *UserService) SignUp(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{Username: username, PasswordHash: hash}
	return s.users.Save(ctx, user)
}

// Login verifies credentials and returns a session token. Unknown usernames
// fail with ErrUserNotFound, wrong passwords with ErrNotAuthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	ok, err := s.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotAuthorized
	}
	return s.tokens.Issue(user.Username)
}

// RequestOTP stores a fresh code for email with the fixed TTL, overwriting
// any previous entry, and returns the code.
func (s *UserService) RequestOTP(ctx context.Context, email string) (int, error) {
	if !emailRegex.MatchString(email) {
		return 0, ErrInvalidEmail
	}
	code := s.CreateOTP()
	if err := s.otps.Set(ctx, email, code, OTPTTL); err != nil {
		return 0, err
	}
	return code, nil
}

// VerifyOTP checks the claimed email+code pair against the store. On match
// the entry is invalidated and a notification is sent fire-and-forget; the
// caller gets the verified identity back without waiting for delivery.
func (s *UserService) VerifyOTP(ctx context.Context, user *model.User, email string, code int) (*model.User, error) {
	stored, err := s.otps.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if stored != code {
		return nil, ErrOTPMismatch
	}
	if err := s.otps.Delete(ctx, email); err != nil {
		s.logger.Warn("failed to invalidate otp", "email", email, "error", err)
	}

	notifyCtx := context.WithoutCancel(ctx)
	go func() {
		if err := s.mailer.SendVerifiedNotice(notifyCtx, email); err != nil {
			s.logger.Error("failed to send verification notice", "email", email, "error", err)
		}
	}()

	return user, nil
}
