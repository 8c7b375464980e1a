package services

//go:generate mockgen -source=interfaces.go -destination=mocks/repositories_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/twpayne/go-geom"

	"urban_access/internal/middleware"
	"urban_access/internal/models"
)

// UserRepository is the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// GetByEmailFold matches the email case-insensitively.
	GetByEmailFold(ctx context.Context, email string) (*models.User, error)
	// ExistsByEmail and ExistsByNationalID match exactly and ignore the row with excludeID (0 ignores nothing).
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	ExistsByNationalID(ctx context.Context, nationalID string, excludeID uint) (bool, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
}

// CategoryRepository reads the seeded category taxonomy.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
}

// IncidentRepository is the incident store.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	// GetByID loads category, reporter and validations with their validators.
	GetByID(ctx context.Context, id uint) (*models.Incident, error)
	ListAll(ctx context.Context) ([]models.Incident, error)
	ListByReporter(ctx context.Context, reporterID uint) ([]models.Incident, error)
	// ListWithinBounds returns incidents inside an XY (lon, lat) box, newest first.
	ListWithinBounds(ctx context.Context, bounds *geom.Bounds) ([]models.Incident, error)
	// ApplyValidation inserts v and moves its incident to status in one transaction.
	// found is false, and nothing is written, when the incident does not exist.
	ApplyValidation(ctx context.Context, v *models.Validation, status models.IncidentStatus) (found bool, err error)
	UpdateImageURL(ctx context.Context, id uint, imageURL string) error
}

// CategoryCache is an optional read-through cache in front of CategoryRepository.
type CategoryCache interface {
	GetAll(ctx context.Context) ([]models.Category, bool, error)
	SetAll(ctx context.Context, categories []models.Category, ttl time.Duration) error
	Get(ctx context.Context, id uint) (*models.Category, bool, error)
	Set(ctx context.Context, category *models.Category, ttl time.Duration) error
}

// PasswordHasher hides bcrypt so tests can pick a cheap cost.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenService signs and verifies bearer tokens.
type TokenService interface {
	Issue(user *models.User) (string, time.Time, error)
	VerifyToken(token string) (*middleware.Claims, error)
}
