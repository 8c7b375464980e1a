package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"urban_access/internal/apperr"
	"urban_access/internal/models"
)

// SubmitInput is a new report as received from an authenticated reporter.
type SubmitInput struct {
	ReporterID     uint
	CategoryID     uint
	Description    string
	Address        string
	Latitude       float64
	Longitude      float64
	ImageURL       *string
	Urgent         bool
	PublicLocation bool
}

// IncidentService owns submission, the validation workflow and proximity queries.
type IncidentService struct {
	repo    IncidentRepository
	logger  *logrus.Logger
	metrics *WorkflowMetrics
	now     func() time.Time
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, metrics *WorkflowMetrics) *IncidentService {
	return &IncidentService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// Submit persists a new incident awaiting validation. Identical reports are all kept.
func (s *IncidentService) Submit(ctx context.Context, in SubmitInput) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Submit",
		"reporter_id": in.ReporterID,
		"category_id": in.CategoryID,
	})

	// the HTTP layer rejects these first; reaching here with blanks is a caller bug
	if strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Address) == "" {
		log.Warn("Submit called without description or address")
		return nil, apperr.NewValidation("Descrição e endereço são obrigatórios")
	}

	incident := &models.Incident{
		ReporterID:     in.ReporterID,
		CategoryID:     in.CategoryID,
		Description:    in.Description,
		Address:        in.Address,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		ImageURL:       nonEmpty(in.ImageURL),
		CreatedAt:      s.now().UTC(),
		Status:         models.StatusAwaitingValidation,
		Urgent:         in.Urgent,
		PublicLocation: in.PublicLocation,
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		if errors.Is(err, apperr.ErrUnknownCategory) {
			return nil, err
		}
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	s.metrics.incSubmitted()
	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return incident, nil
}

// UpdateImageReference replaces the photo URL of an existing incident.
func (s *IncidentService) UpdateImageReference(ctx context.Context, incidentID uint, imageURL string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateImageReference",
		"incident_id": incidentID,
	})

	if err := s.repo.UpdateImageURL(ctx, incidentID, imageURL); err != nil {
		if errors.Is(err, apperr.ErrIncidentNotFound) {
			return "", err
		}
		log.WithError(err).Error("Failed to update incident image")
		return "", fmt.Errorf("service: could not update incident image: %w", err)
	}

	log.Info("Incident image updated")
	return imageURL, nil
}

// Validate records a peer validation and moves the incident to validada.
// A single validation is enough and repeated calls each add a row.
// It returns false when the incident does not exist.
func (s *IncidentService) Validate(ctx context.Context, incidentID, validatorID uint, comment *string) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "Validate",
		"incident_id":  incidentID,
		"validator_id": validatorID,
	})

	validation := &models.Validation{
		IncidentID:  incidentID,
		ValidatorID: validatorID,
		Comment:     nonEmpty(comment),
		ValidatedAt: s.now().UTC(),
	}

	found, err := s.repo.ApplyValidation(ctx, validation, models.StatusValidated)
	if err != nil {
		log.WithError(err).Error("Failed to apply validation")
		return false, fmt.Errorf("service: could not validate incident: %w", err)
	}
	if !found {
		log.Info("Validation requested for unknown incident")
		return false, nil
	}

	s.metrics.incValidations()
	log.WithField("validation_id", validation.ID).Info("Incident validated")
	return true, nil
}

// FindNear returns incidents inside the degree box around the point, newest first.
// Callers that received no radius pass DefaultRadiusKm.
func (s *IncidentService) FindNear(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.Incident, error) {
	bounds := SearchBounds(latitude, longitude, radiusKm)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "FindNear",
		"radius_km": radiusKm,
	})

	incidents, err := s.repo.ListWithinBounds(ctx, bounds)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby incidents")
		return nil, fmt.Errorf("service: could not find nearby incidents: %w", err)
	}

	s.metrics.observeNearby(len(incidents))
	log.WithField("count", len(incidents)).Debug("Nearby incidents found")
	return incidents, nil
}

func (s *IncidentService) FindByReporter(ctx context.Context, reporterID uint) ([]models.Incident, error) {
	incidents, err := s.repo.ListByReporter(ctx, reporterID)
	if err != nil {
		s.logger.WithError(err).WithField("reporter_id", reporterID).Error("Failed to list reporter incidents")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

func (s *IncidentService) FindByID(ctx context.Context, id uint) (*models.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrIncidentNotFound) {
			return nil, err
		}
		s.logger.WithError(err).WithField("incident_id", id).Error("Failed to get incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

func (s *IncidentService) ListAll(ctx context.Context) ([]models.Incident, error) {
	incidents, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list incidents")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// nonEmpty drops blank optional strings so they are stored as NULL.
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
