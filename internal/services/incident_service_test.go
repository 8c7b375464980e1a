package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"go.uber.org/mock/gomock"

	"urban_access/internal/apperr"
	"urban_access/internal/models"
	"urban_access/internal/services/mocks"
)

var fixedNow = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func newTestIncidentService(t *testing.T) (*IncidentService, *mocks.MockIncidentRepository, *WorkflowMetrics) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIncidentRepository(ctrl)
	metrics := NewWorkflowMetrics(prometheus.NewRegistry())
	service := NewIncidentService(repo, newTestLogger(), metrics)
	service.now = func() time.Time { return fixedNow }
	return service, repo, metrics
}

func strPtr(s string) *string { return &s }

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestSubmit_Success(t *testing.T) {
	service, repo, metrics := newTestIncidentService(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inc *models.Incident) error {
		inc.ID = 11
		return nil
	})

	incident, err := service.Submit(ctx, SubmitInput{
		ReporterID:  1,
		CategoryID:  2,
		Description: "Calçada quebrada",
		Address:     "Rua Augusta, 500",
		Latitude:    -23.55,
		Longitude:   -46.63,
		ImageURL:    strPtr(""),
		Urgent:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), incident.ID)
	assert.Equal(t, models.StatusAwaitingValidation, incident.Status)
	assert.Equal(t, fixedNow, incident.CreatedAt)
	assert.Nil(t, incident.ImageURL)
	assert.True(t, incident.Urgent)
	assert.Equal(t, float64(1), counterValue(t, metrics.submitted))
}

func TestSubmit_RequiresDescriptionAndAddress(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	_, err := service.Submit(context.Background(), SubmitInput{Description: "  ", Address: "Rua A"})

	require.Error(t, err)
	assert.Equal(t, apperr.TypeValidation, apperr.TypeOf(err))
}

func TestSubmit_UnknownCategory(t *testing.T) {
	service, repo, _ := newTestIncidentService(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(apperr.ErrUnknownCategory)

	_, err := service.Submit(ctx, SubmitInput{CategoryID: 999, Description: "x", Address: "y"})

	assert.ErrorIs(t, err, apperr.ErrUnknownCategory)
}

func TestUpdateImageReference(t *testing.T) {
	service, repo, _ := newTestIncidentService(t)
	ctx := context.Background()

	repo.EXPECT().UpdateImageURL(ctx, uint(5), "https://img/1.jpg").Return(nil)
	repo.EXPECT().UpdateImageURL(ctx, uint(6), "https://img/2.jpg").Return(apperr.ErrIncidentNotFound)

	url, err := service.UpdateImageReference(ctx, 5, "https://img/1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://img/1.jpg", url)

	_, err = service.UpdateImageReference(ctx, 6, "https://img/2.jpg")
	assert.ErrorIs(t, err, apperr.ErrIncidentNotFound)
}

func TestValidate_Success(t *testing.T) {
	service, repo, metrics := newTestIncidentService(t)
	ctx := context.Background()

	repo.EXPECT().
		ApplyValidation(ctx, gomock.Any(), models.StatusValidated).
		DoAndReturn(func(_ context.Context, v *models.Validation, _ models.IncidentStatus) (bool, error) {
			assert.Equal(t, uint(4), v.IncidentID)
			assert.Equal(t, uint(9), v.ValidatorID)
			assert.Equal(t, "Confirmado", *v.Comment)
			assert.Equal(t, fixedNow, v.ValidatedAt)
			return true, nil
		})

	ok, err := service.Validate(ctx, 4, 9, strPtr("Confirmado"))

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, float64(1), counterValue(t, metrics.validations))
}

func TestValidate_UnknownIncident(t *testing.T) {
	service, repo, metrics := newTestIncidentService(t)
	ctx := context.Background()

	repo.EXPECT().ApplyValidation(ctx, gomock.Any(), models.StatusValidated).Return(false, nil)

	ok, err := service.Validate(ctx, 404, 9, nil)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, float64(0), counterValue(t, metrics.validations))
}

func TestValidate_RepositoryFailure(t *testing.T) {
	service, repo, _ := newTestIncidentService(t)
	ctx := context.Background()
	dbErr := errors.New("deadlock detected")

	repo.EXPECT().ApplyValidation(ctx, gomock.Any(), models.StatusValidated).Return(false, dbErr)

	ok, err := service.Validate(ctx, 1, 2, nil)

	assert.False(t, ok)
	assert.ErrorIs(t, err, dbErr)
}

func TestFindNear_PassesDegreeBox(t *testing.T) {
	service, repo, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := []models.Incident{{ID: 2}, {ID: 1}}

	repo.EXPECT().
		ListWithinBounds(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, b *geom.Bounds) ([]models.Incident, error) {
			assert.InDelta(t, -23.60, b.Min(1), 1e-9)
			assert.InDelta(t, -23.50, b.Max(1), 1e-9)
			assert.InDelta(t, -46.68, b.Min(0), 1e-9)
			assert.InDelta(t, -46.58, b.Max(0), 1e-9)
			return expected, nil
		})

	incidents, err := service.FindNear(ctx, -23.55, -46.63, DefaultRadiusKm)

	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestFindByID_NotFound(t *testing.T) {
	service, repo, _ := newTestIncidentService(t)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, uint(8)).Return(nil, apperr.ErrIncidentNotFound)

	_, err := service.FindByID(ctx, 8)

	assert.ErrorIs(t, err, apperr.ErrIncidentNotFound)
}

func TestFindByReporterAndListAll(t *testing.T) {
	service, repo, _ := newTestIncidentService(t)
	ctx := context.Background()
	mine := []models.Incident{{ID: 3, ReporterID: 1}}
	all := []models.Incident{{ID: 4}, {ID: 3, ReporterID: 1}}

	repo.EXPECT().ListByReporter(ctx, uint(1)).Return(mine, nil)
	repo.EXPECT().ListAll(ctx).Return(all, nil)

	got, err := service.FindByReporter(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, mine, got)

	got, err = service.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, got)
}
