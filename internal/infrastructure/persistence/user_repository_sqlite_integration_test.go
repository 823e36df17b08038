//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, users.RoleCustomer)
	err := ctx.UserRepo.Create(context.Background(), user)
	require.NoError(t, err)

	var created models.UserModel
	err = ctx.DB.First(&created, "id = ?", user.ID).Error
	require.NoError(t, err)
	assert.Equal(t, user.Phone, created.Phone)
	assert.Equal(t, string(users.RoleCustomer), created.Role)
}

func TestUserSqliteRepository_Create_DuplicatePhone(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, users.RoleCustomer)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	clone := users.NewUser("Other User", "", user.Phone, "$2a$10$hash", users.RoleDealer)
	err := ctx.UserRepo.Create(context.Background(), clone)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindDuplicate))
}

func TestUserSqliteRepository_Create_Invalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.UserRepo.Create(context.Background(), &users.User{})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestUserSqliteRepository_Lookups(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	user := users.NewUser("Asha Rao", "Asha@Example.com", "+919812345678", "$2a$10$hash", users.RoleCustomer)
	require.NoError(t, ctx.UserRepo.Create(bg, user))

	byPhone, err := ctx.UserRepo.GetByPhone(bg, "+919812345678")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byPhone.ID)

	byEmail, err := ctx.UserRepo.GetByEmail(bg, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	exists, err := ctx.UserRepo.ExistsByEmail(bg, "ASHA@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ctx.UserRepo.ExistsByPhone(bg, "+919800000000")
	require.NoError(t, err)
	assert.False(t, exists)

	count, err := ctx.UserRepo.CountByRole(bg, users.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.GetByID(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Contains(t, err.Error(), "not found")
}

func TestUserSqliteRepository_UpdateAndDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	user := CreateTestUser(t, users.RoleDealer)
	require.NoError(t, ctx.UserRepo.Create(bg, user))

	user.Active = true
	user.Name = "Renamed Dealer"
	require.NoError(t, ctx.UserRepo.Update(bg, user))

	fetched, err := ctx.UserRepo.GetByID(bg, user.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Active)
	assert.Equal(t, "Renamed Dealer", fetched.Name)

	require.NoError(t, ctx.UserRepo.DeleteByID(bg, user.ID))
	_, err = ctx.UserRepo.GetByID(bg, user.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestSessionSqliteRepository_Lifecycle(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	user := CreateTestUser(t, users.RoleCustomer)
	require.NoError(t, ctx.UserRepo.Create(bg, user))

	session := &users.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: "abc123",
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, ctx.SessionRepo.Create(bg, session))

	fetched, err := ctx.SessionRepo.GetByTokenHash(bg, "abc123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.UserID)

	require.NoError(t, ctx.SessionRepo.DeleteByUserID(bg, user.ID))
	_, err = ctx.SessionRepo.GetByTokenHash(bg, "abc123")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	user := CreateTestUser(t, users.RoleCustomer)
	err := ctx.Transactor.WithinTransaction(bg, func(txCtx context.Context) error {
		if err := ctx.UserRepo.Create(txCtx, user); err != nil {
			return err
		}
		return apperror.Conflict("abort")
	})
	require.Error(t, err)

	_, err = ctx.UserRepo.GetByID(bg, user.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestTransactor_NestedJoinsOuter(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	user := CreateTestUser(t, users.RoleCustomer)
	err := ctx.Transactor.WithinTransaction(bg, func(outer context.Context) error {
		return ctx.Transactor.WithinTransaction(outer, func(inner context.Context) error {
			return ctx.UserRepo.Create(inner, user)
		})
	})
	require.NoError(t, err)

	_, err = ctx.UserRepo.GetByID(bg, user.ID)
	require.NoError(t, err)
}
