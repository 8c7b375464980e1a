package controllers

//go:generate mockgen -source=interfaces.go -destination=mocks/services_mock.go -package=mocks

import (
	"context"

	"urban_access/internal/models"
	"urban_access/internal/services"
)

type IdentityService interface {
	Authenticate(ctx context.Context, email, password string) (*services.AuthResult, error)
	Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, upd services.ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) (bool, error)
}

type IncidentService interface {
	Submit(ctx context.Context, in services.SubmitInput) (*models.Incident, error)
	UpdateImageReference(ctx context.Context, incidentID uint, imageURL string) (string, error)
	Validate(ctx context.Context, incidentID, validatorID uint, comment *string) (bool, error)
	FindNear(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.Incident, error)
	FindByReporter(ctx context.Context, reporterID uint) ([]models.Incident, error)
	FindByID(ctx context.Context, id uint) (*models.Incident, error)
	ListAll(ctx context.Context) ([]models.Incident, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id uint) (*models.Category, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
