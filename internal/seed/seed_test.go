package seed

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"urban_access/internal/services"
)

func newTestSeeder(t *testing.T) (*Seeder, sqlmock.Sqlmock, services.PasswordHasher) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	hasher := services.NewBcryptHasher(bcrypt.MinCost)
	return NewSeeder(db, hasher, log), mock, hasher
}

var userColumns = []string{"id", "name", "email", "cpf", "phone", "password_hash", "registered_at"}

func expectCategoryInsert(mock sqlmock.Sqlmock, inserted int) {
	rows := sqlmock.NewRows([]string{"id"})
	for i := 1; i <= inserted; i++ {
		rows.AddRow(i)
	}
	mock.ExpectQuery(`INSERT INTO "categories" .* ON CONFLICT \("name"\) DO NOTHING`).WillReturnRows(rows)
}

func TestRun_CategoriesOnly(t *testing.T) {
	seeder, mock, _ := newTestSeeder(t)

	expectCategoryInsert(mock, len(defaultCategories))

	require.NoError(t, seeder.Run(context.Background(), false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_DemoUserAlreadyValid(t *testing.T) {
	seeder, mock, hasher := newTestSeeder(t)
	hash, err := hasher.Hash(DemoPassword)
	require.NoError(t, err)

	expectCategoryInsert(mock, 0)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Usuário Teste", DemoEmail, "123.456.789-00", "(11) 98765-4321", hash, time.Now()))

	require.NoError(t, seeder.Run(context.Background(), true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_DemoUserStaleHashIsRefreshed(t *testing.T) {
	seeder, mock, _ := newTestSeeder(t)

	expectCategoryInsert(mock, 0)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Usuário Teste", DemoEmail, "123.456.789-00", "(11) 98765-4321", "not-a-bcrypt-hash", time.Now()))
	mock.ExpectExec(`UPDATE "users" SET "password_hash"=\$1 WHERE id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, seeder.Run(context.Background(), true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDefaultCategories(t *testing.T) {
	require.Len(t, defaultCategories, 7)
	names := make(map[string]bool)
	for _, c := range defaultCategories {
		assert.NotEmpty(t, c.icon)
		assert.False(t, names[c.name], "duplicate category %s", c.name)
		names[c.name] = true
	}
}
