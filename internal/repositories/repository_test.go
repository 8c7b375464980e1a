package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"urban_access/internal/apperr"
	"urban_access/internal/models"
	"urban_access/internal/services"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

var incidentColumns = []string{
	"id", "reporter_id", "category_id", "description", "address", "latitude", "longitude",
	"image_url", "created_at", "status", "urgent", "public_location",
}

func TestTranslatePgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"duplicate email", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}, apperr.ErrDuplicateEmail},
		{"duplicate cpf", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_cpf_key"}, apperr.ErrDuplicateNationalID},
		{"unknown category", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "incidents_category_id_fkey"}, apperr.ErrUnknownCategory},
		{"other unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "categories_name_key"}, nil},
		{"not a pg error", errors.New("boom"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translatePgError(tt.err))
		})
	}
}

func TestIncidentRepository_ListWithinBounds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIncidentRepository(db)
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "incidents" WHERE \(latitude BETWEEN \$1 AND \$2\) AND \(longitude BETWEEN \$3 AND \$4\) ORDER BY created_at DESC`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(incidentColumns).
			AddRow(2, 1, 3, "Sem rampa", "Rua Augusta", -23.55, -46.63, nil, created, "aguardando_validacao", false, true).
			AddRow(1, 1, 3, "Buraco", "Av. Paulista", -23.55, -46.63, nil, created.Add(-time.Hour), "validada", true, true))
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE "categories"."id" = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "icon"}).AddRow(3, "Obstáculo na Via", nil, "block"))

	incidents, err := repo.ListWithinBounds(context.Background(), services.SearchBounds(-23.5505, -46.6333, 5))

	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, uint(2), incidents[0].ID)
	require.NotNil(t, incidents[1].Category)
	assert.Equal(t, "Obstáculo na Via", incidents[1].Category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncidentRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIncidentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "incidents" WHERE "incidents"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(incidentColumns))

	_, err := repo.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, apperr.ErrIncidentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncidentRepository_CreateUnknownCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIncidentRepository(db)

	mock.ExpectQuery(`INSERT INTO "incidents"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "incidents_category_id_fkey"})

	err := repo.Create(context.Background(), &models.Incident{CategoryID: 999, Description: "d", Address: "a"})

	assert.ErrorIs(t, err, apperr.ErrUnknownCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncidentRepository_ApplyValidationUnknownIncident(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIncidentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "incidents" WHERE "incidents"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	found, err := repo.ApplyValidation(context.Background(), &models.Validation{IncidentID: 404, ValidatorID: 1}, models.StatusValidated)

	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncidentRepository_ApplyValidation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIncidentRepository(db)
	v := &models.Validation{IncidentID: 4, ValidatorID: 9, ValidatedAt: time.Now().UTC()}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "incidents" WHERE "incidents"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery(`INSERT INTO "validations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectExec(`UPDATE "incidents" SET "status"=\$1 WHERE id = \$2`).
		WithArgs("validada", 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	found, err := repo.ApplyValidation(context.Background(), v, models.StatusValidated)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint(10), v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncidentRepository_UpdateImageURLNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIncidentRepository(db)

	mock.ExpectExec(`UPDATE "incidents" SET "image_url"=\$1 WHERE id = \$2`).
		WithArgs("https://img/x.jpg", 77).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateImageURL(context.Background(), 77, "https://img/x.jpg")

	assert.ErrorIs(t, err, apperr.ErrIncidentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmailFold(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(email\) = LOWER\(\$1\) ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "cpf", "phone", "password_hash", "registered_at"}).
			AddRow(1, "Maria", "maria@example.com", "529.982.247-25", "(11) 91234-5678", "hash", time.Now()))

	user, err := repo.GetByEmailFold(context.Background(), "MARIA@Example.com")

	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.Equal(t, "529.982.247-25", user.NationalID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByEmailExcludesSelf(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1 AND id <> \$2`).
		WithArgs("ana@example.com", 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err := repo.ExistsByEmail(context.Background(), "ana@example.com", 5)

	require.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfileUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(context.Background(), &models.User{ID: 3, Name: "X", Phone: "(11) 91234-5678"})

	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE "categories"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "icon"}))

	_, err := repo.GetByID(context.Background(), 12)

	assert.ErrorIs(t, err, apperr.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
