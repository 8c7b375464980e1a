package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"urban_access/internal/apperr"
	"urban_access/internal/models"
)

// CategoryService serves the category catalogue, read-through cached when a cache is set.
type CategoryService struct {
	repo   CategoryRepository
	cache  CategoryCache
	ttl    time.Duration
	logger *logrus.Logger
}

// NewCategoryService accepts a nil cache, in which case every read goes to the database.
func NewCategoryService(repo CategoryRepository, cache CategoryCache, ttl time.Duration, logger *logrus.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "category",
		"method":  "List",
	})

	if s.cache != nil {
		categories, ok, err := s.cache.GetAll(ctx)
		if err != nil {
			log.WithError(err).Warn("Category cache read failed, falling back to database")
		} else if ok {
			return categories, nil
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		return nil, fmt.Errorf("service: could not list categories: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetAll(ctx, categories, s.ttl); err != nil {
			log.WithError(err).Warn("Failed to populate category cache")
		}
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "category",
		"method":      "Get",
		"category_id": id,
	})

	if s.cache != nil {
		category, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Category cache read failed, falling back to database")
		} else if ok {
			return category, nil
		}
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrCategoryNotFound) {
			return nil, err
		}
		log.WithError(err).Error("Failed to get category")
		return nil, fmt.Errorf("service: could not get category: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, category, s.ttl); err != nil {
			log.WithError(err).Warn("Failed to populate category cache")
		}
	}
	return category, nil
}
