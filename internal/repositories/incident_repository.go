package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	"gorm.io/gorm"

	"urban_access/internal/apperr"
	"urban_access/internal/models"
	"urban_access/internal/services"
)

var _ services.IncidentRepository = (*IncidentRepository)(nil)

type IncidentRepository struct {
	db *gorm.DB
}

func NewIncidentRepository(db *gorm.DB) *IncidentRepository {
	return &IncidentRepository{db: db}
}

// Create persists a new incident and fills in its id
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	if err := r.db.WithContext(ctx).Omit("Reporter", "Category", "Validations").Create(incident).Error; err != nil {
		if domainErr := translatePgError(err); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID batch-loads the incident graph shown on the detail screen.
func (r *IncidentRepository) GetByID(ctx context.Context, id uint) (*models.Incident, error) {
	var incident models.Incident
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Reporter").
		Preload("Validations", func(db *gorm.DB) *gorm.DB {
			return db.Order("validated_at ASC")
		}).
		Preload("Validations.Validator").
		First(&incident, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return &incident, nil
}

func (r *IncidentRepository) ListAll(ctx context.Context) ([]models.Incident, error) {
	incidents := make([]models.Incident, 0)
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Reporter").
		Order("created_at DESC").
		Find(&incidents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return incidents, nil
}

func (r *IncidentRepository) ListByReporter(ctx context.Context, reporterID uint) ([]models.Incident, error) {
	incidents := make([]models.Incident, 0)
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("reporter_id = ?", reporterID).
		Order("created_at DESC").
		Find(&incidents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by reporter: %w", err)
	}
	return incidents, nil
}

// ListWithinBounds selects by the axis-aligned box only; X is longitude, Y is latitude.
func (r *IncidentRepository) ListWithinBounds(ctx context.Context, bounds *geom.Bounds) ([]models.Incident, error) {
	incidents := make([]models.Incident, 0)
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("latitude BETWEEN ? AND ?", bounds.Min(1), bounds.Max(1)).
		Where("longitude BETWEEN ? AND ?", bounds.Min(0), bounds.Max(0)).
		Order("created_at DESC").
		Find(&incidents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find incidents within bounds: %w", err)
	}
	return incidents, nil
}

func (r *IncidentRepository) ApplyValidation(ctx context.Context, v *models.Validation, status models.IncidentStatus) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var incident models.Incident
		if err := tx.Select("id").First(&incident, v.IncidentID).Error; err != nil {
			return err
		}
		if err := tx.Omit("Validator").Create(v).Error; err != nil {
			return err
		}
		return tx.Model(&models.Incident{}).
			Where("id = ?", v.IncidentID).
			Update("status", string(status)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to apply validation: %w", err)
	}
	return true, nil
}

func (r *IncidentRepository) UpdateImageURL(ctx context.Context, id uint, imageURL string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Incident{}).
		Where("id = ?", id).
		Update("image_url", imageURL)
	if res.Error != nil {
		return fmt.Errorf("failed to update incident image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrIncidentNotFound
	}
	return nil
}
