package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"urban_access/internal/apperr"
	"urban_access/internal/models"
	"urban_access/internal/services/mocks"
)

const testCacheTTL = 10 * time.Minute

func TestCategoryList_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCategoryRepository(ctrl)
	cache := mocks.NewMockCategoryCache(ctrl)
	service := NewCategoryService(repo, cache, testCacheTTL, newTestLogger())
	ctx := context.Background()
	cached := []models.Category{{ID: 1, Name: "Falta de Rampa"}}

	cache.EXPECT().GetAll(ctx).Return(cached, true, nil)

	got, err := service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestCategoryList_CacheMissPopulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCategoryRepository(ctrl)
	cache := mocks.NewMockCategoryCache(ctrl)
	service := NewCategoryService(repo, cache, testCacheTTL, newTestLogger())
	ctx := context.Background()
	stored := []models.Category{{ID: 1, Name: "Falta de Rampa"}, {ID: 2, Name: "Vaga Inacessível"}}

	gomock.InOrder(
		cache.EXPECT().GetAll(ctx).Return(nil, false, nil),
		repo.EXPECT().List(ctx).Return(stored, nil),
		cache.EXPECT().SetAll(ctx, stored, testCacheTTL).Return(nil),
	)

	got, err := service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestCategoryGet_CacheErrorFallsBackToDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCategoryRepository(ctrl)
	cache := mocks.NewMockCategoryCache(ctrl)
	service := NewCategoryService(repo, cache, testCacheTTL, newTestLogger())
	ctx := context.Background()
	stored := &models.Category{ID: 3, Name: "Obstáculo na Via"}

	cache.EXPECT().Get(ctx, uint(3)).Return(nil, false, errors.New("redis: connection refused"))
	repo.EXPECT().GetByID(ctx, uint(3)).Return(stored, nil)
	cache.EXPECT().Set(ctx, stored, testCacheTTL).Return(errors.New("redis: connection refused"))

	got, err := service.Get(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestCategoryGet_NoCacheNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCategoryRepository(ctrl)
	service := NewCategoryService(repo, nil, testCacheTTL, newTestLogger())
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, uint(99)).Return(nil, apperr.ErrCategoryNotFound)

	_, err := service.Get(ctx, 99)

	assert.ErrorIs(t, err, apperr.ErrCategoryNotFound)
}
