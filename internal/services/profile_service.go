package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"urban_access/internal/apperr"
	"urban_access/internal/models"
)

// ProfileUpdate carries the optional profile fields; nil leaves a field untouched.
type ProfileUpdate struct {
	Name  *string
	Phone *string
}

type credentialChanger interface {
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) (bool, error)
}

type ProfileService struct {
	users       UserRepository
	credentials credentialChanger
	logger      *logrus.Logger
}

func NewProfileService(users UserRepository, credentials credentialChanger, logger *logrus.Logger) *ProfileService {
	return &ProfileService{
		users:       users,
		credentials: credentials,
		logger:      logger,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			return nil, err
		}
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to load profile")
		return nil, fmt.Errorf("service: could not load profile: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update of name and phone.
// Email and national id are immutable here but are still re-checked against other users.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "UpdateProfile",
		"user_id": userID,
	})

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// nil keeps the stored value; a present but blank value is rejected
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, apperr.NewValidation("Nome não pode ser vazio")
		}
		user.Name = name
	}
	if upd.Phone != nil {
		phone := strings.TrimSpace(*upd.Phone)
		if phone == "" {
			return nil, apperr.NewValidation("Telefone não pode ser vazio")
		}
		user.Phone = phone
	}

	taken, err := s.users.ExistsByEmail(ctx, user.Email, user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to check email uniqueness")
		return nil, fmt.Errorf("service: could not update profile: %w", err)
	}
	if taken {
		return nil, apperr.ErrDuplicateEmail
	}
	taken, err = s.users.ExistsByNationalID(ctx, user.NationalID, user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to check national id uniqueness")
		return nil, fmt.Errorf("service: could not update profile: %w", err)
	}
	if taken {
		return nil, apperr.ErrDuplicateNationalID
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			return nil, err
		}
		log.WithError(err).Error("Failed to update profile")
		return nil, fmt.Errorf("service: could not update profile: %w", err)
	}

	log.Info("Profile updated")
	return user, nil
}

func (s *ProfileService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) (bool, error) {
	return s.credentials.ChangePassword(ctx, userID, oldPassword, newPassword)
}
