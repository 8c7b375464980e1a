package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"urban_access/internal/apperr"
	"urban_access/internal/middleware"
	"urban_access/internal/models"
)

// AuthResult is returned by a successful login or registration.
type AuthResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

type RegisterInput struct {
	Name       string
	Email      string
	NationalID string
	Phone      string
	Password   string
}

// IdentityService validates credentials and issues/verifies bearer tokens.
type IdentityService struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenService
	logger *logrus.Logger
	now    func() time.Time

	// dummyHash is verified against when the email is unknown so both failure paths cost one bcrypt run.
	dummyOnce sync.Once
	dummyHash string
}

func NewIdentityService(users UserRepository, hasher PasswordHasher, tokens TokenService, logger *logrus.Logger) *IdentityService {
	return &IdentityService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

// Authenticate looks the user up by case-insensitive email and checks the password.
// Unknown email and wrong password produce the same error.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "identity",
		"method":  "Authenticate",
	})

	user, err := s.users.GetByEmailFold(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			s.burnVerify(password)
			log.Info("Login attempt for unknown email")
			return nil, apperr.ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to look up user")
		return nil, fmt.Errorf("service: could not authenticate: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		log.WithField("user_id", user.ID).Info("Login attempt with wrong password")
		return nil, apperr.ErrInvalidCredentials
	}

	log.WithField("user_id", user.ID).Info("User authenticated")
	return s.issue(user)
}

// Register creates a user after checking email (exact match) and national id uniqueness.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "identity",
		"method":  "Register",
	})

	taken, err := s.users.ExistsByEmail(ctx, in.Email, 0)
	if err != nil {
		log.WithError(err).Error("Failed to check email uniqueness")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}
	if taken {
		return nil, apperr.ErrDuplicateEmail
	}

	taken, err = s.users.ExistsByNationalID(ctx, in.NationalID, 0)
	if err != nil {
		log.WithError(err).Error("Failed to check national id uniqueness")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}
	if taken {
		return nil, apperr.ErrDuplicateNationalID
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		NationalID:   in.NationalID,
		Phone:        in.Phone,
		PasswordHash: hash,
		RegisteredAt: s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// the unique constraints still fire when two registrations race past the checks above
		if errors.Is(err, apperr.ErrDuplicateEmail) || errors.Is(err, apperr.ErrDuplicateNationalID) {
			return nil, err
		}
		log.WithError(err).Error("Failed to create user")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered")
	return s.issue(user)
}

// ChangePassword reports false when the user is unknown or oldPassword does not verify.
func (s *IdentityService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "identity",
		"method":  "ChangePassword",
		"user_id": userID,
	})

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("service: could not change password: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, oldPassword) {
		log.Info("Password change rejected: current password mismatch")
		return false, nil
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return false, fmt.Errorf("service: could not change password: %w", err)
	}
	if err := s.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			return false, nil
		}
		log.WithError(err).Error("Failed to store new password hash")
		return false, fmt.Errorf("service: could not change password: %w", err)
	}

	log.Info("Password changed")
	return true, nil
}

// VerifyToken resolves a bearer token into its claims. It never touches the store.
func (s *IdentityService) VerifyToken(token string) (*middleware.Claims, error) {
	return s.tokens.VerifyToken(token)
}

func (s *IdentityService) issue(user *models.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *IdentityService) burnVerify(password string) {
	s.dummyOnce.Do(func() {
		if h, err := s.hasher.Hash("urban-access-dummy-password"); err == nil {
			s.dummyHash = h
		}
	})
	if s.dummyHash != "" {
		s.hasher.Verify(s.dummyHash, password)
	}
}
