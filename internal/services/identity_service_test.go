package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"urban_access/internal/apperr"
	"urban_access/internal/middleware"
	"urban_access/internal/models"
	"urban_access/internal/services/mocks"
)

const testSigningKey = "test-signing-key-with-at-least-32-bytes!"

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func newTestIdentityService(t *testing.T) (*IdentityService, *mocks.MockUserRepository, PasswordHasher) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	hasher := NewBcryptHasher(bcrypt.MinCost)
	tokens := middleware.NewTokenManager(testSigningKey, "urban-access", "urban-access-app", time.Hour)
	return NewIdentityService(users, hasher, tokens, newTestLogger()), users, hasher
}

func mustHash(t *testing.T, hasher PasswordHasher, password string) string {
	t.Helper()
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	return hash
}

func TestAuthenticate_Success(t *testing.T) {
	service, users, hasher := newTestIdentityService(t)
	ctx := context.Background()
	user := &models.User{ID: 7, Name: "Maria", Email: "maria@example.com", PasswordHash: mustHash(t, hasher, "segredo1")}

	users.EXPECT().GetByEmailFold(ctx, "MARIA@example.com").Return(user, nil)

	result, err := service.Authenticate(ctx, "MARIA@example.com", "segredo1")

	require.NoError(t, err)
	assert.Equal(t, user, result.User)
	assert.NotEmpty(t, result.Token)

	claims, err := service.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "maria@example.com", claims.Email)
}

func TestAuthenticate_WrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	service, users, hasher := newTestIdentityService(t)
	ctx := context.Background()
	user := &models.User{ID: 7, Email: "maria@example.com", PasswordHash: mustHash(t, hasher, "segredo1")}

	users.EXPECT().GetByEmailFold(ctx, "maria@example.com").Return(user, nil)
	users.EXPECT().GetByEmailFold(ctx, "ninguem@example.com").Return(nil, apperr.ErrUserNotFound)

	_, wrongPassword := service.Authenticate(ctx, "maria@example.com", "errada")
	_, unknownEmail := service.Authenticate(ctx, "ninguem@example.com", "segredo1")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.ErrorIs(t, wrongPassword, apperr.ErrInvalidCredentials)
}

func TestAuthenticate_RepositoryFailure(t *testing.T) {
	service, users, _ := newTestIdentityService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	users.EXPECT().GetByEmailFold(ctx, "maria@example.com").Return(nil, dbErr)

	_, err := service.Authenticate(ctx, "maria@example.com", "segredo1")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, apperr.TypeInternal, apperr.TypeOf(err))
}

func TestRegister_ThenAuthenticate(t *testing.T) {
	service, users, _ := newTestIdentityService(t)
	ctx := context.Background()
	in := RegisterInput{
		Name:       "João",
		Email:      "joao@example.com",
		NationalID: "529.982.247-25",
		Phone:      "(11) 91234-5678",
		Password:   "segredo1",
	}

	var stored *models.User
	users.EXPECT().ExistsByEmail(ctx, in.Email, uint(0)).Return(false, nil)
	users.EXPECT().ExistsByNationalID(ctx, in.NationalID, uint(0)).Return(false, nil)
	users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		u.ID = 42
		stored = u
		return nil
	})

	result, err := service.Register(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, uint(42), result.User.ID)
	assert.NotEqual(t, in.Password, stored.PasswordHash)
	assert.False(t, stored.RegisteredAt.IsZero())

	users.EXPECT().GetByEmailFold(ctx, in.Email).Return(stored, nil)

	login, err := service.Authenticate(ctx, in.Email, in.Password)
	require.NoError(t, err)
	assert.Equal(t, uint(42), login.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, users, _ := newTestIdentityService(t)
	ctx := context.Background()

	users.EXPECT().ExistsByEmail(ctx, "joao@example.com", uint(0)).Return(true, nil)

	_, err := service.Register(ctx, RegisterInput{Email: "joao@example.com", NationalID: "529.982.247-25", Password: "segredo1"})

	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)
}

func TestRegister_DuplicateNationalID(t *testing.T) {
	service, users, _ := newTestIdentityService(t)
	ctx := context.Background()

	users.EXPECT().ExistsByEmail(ctx, "outro@example.com", uint(0)).Return(false, nil)
	users.EXPECT().ExistsByNationalID(ctx, "529.982.247-25", uint(0)).Return(true, nil)

	_, err := service.Register(ctx, RegisterInput{Email: "outro@example.com", NationalID: "529.982.247-25", Password: "segredo1"})

	assert.ErrorIs(t, err, apperr.ErrDuplicateNationalID)
}

func TestRegister_ConstraintRaceSurfacesAsDuplicate(t *testing.T) {
	service, users, _ := newTestIdentityService(t)
	ctx := context.Background()

	users.EXPECT().ExistsByEmail(ctx, gomock.Any(), uint(0)).Return(false, nil)
	users.EXPECT().ExistsByNationalID(ctx, gomock.Any(), uint(0)).Return(false, nil)
	users.EXPECT().Create(ctx, gomock.Any()).Return(apperr.ErrDuplicateEmail)

	_, err := service.Register(ctx, RegisterInput{Email: "joao@example.com", NationalID: "529.982.247-25", Password: "segredo1"})

	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)
}

func TestChangePassword(t *testing.T) {
	service, users, hasher := newTestIdentityService(t)
	ctx := context.Background()
	user := &models.User{ID: 3, PasswordHash: mustHash(t, hasher, "antiga1")}

	t.Run("wrong current password", func(t *testing.T) {
		users.EXPECT().GetByID(ctx, uint(3)).Return(user, nil)

		ok, err := service.ChangePassword(ctx, 3, "errada", "nova123")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown user", func(t *testing.T) {
		users.EXPECT().GetByID(ctx, uint(99)).Return(nil, apperr.ErrUserNotFound)

		ok, err := service.ChangePassword(ctx, 99, "antiga1", "nova123")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("success stores a hash of the new password", func(t *testing.T) {
		var newHash string
		users.EXPECT().GetByID(ctx, uint(3)).Return(user, nil)
		users.EXPECT().UpdatePasswordHash(ctx, uint(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ uint, h string) error {
			newHash = h
			return nil
		})

		ok, err := service.ChangePassword(ctx, 3, "antiga1", "nova123")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, hasher.Verify(newHash, "nova123"))
		assert.False(t, hasher.Verify(newHash, "antiga1"))
	})
}

func TestVerifyToken_RejectsGarbage(t *testing.T) {
	service, _, _ := newTestIdentityService(t)

	_, err := service.VerifyToken("not-a-jwt")

	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}
