//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/territories"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDealer(t *testing.T, ctx *TestContext, businessName string) *partners.Dealer {
	t.Helper()

	user := CreateTestUser(t, users.RoleDealer)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	dealer := CreateTestDealer(t, user.ID)
	dealer.BusinessName = businessName
	require.NoError(t, ctx.DealerRepo.Create(context.Background(), dealer))
	return dealer
}

func TestDealerSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	dealer := createDealer(t, ctx, "Sharma Electricals")

	fetched, err := ctx.DealerRepo.GetByID(context.Background(), dealer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sharma Electricals", fetched.BusinessName)
	assert.Equal(t, partners.AccountPending, fetched.AccountStatus)
	assert.Equal(t, partners.DefaultTrustScore, fetched.TrustScore)

	byUser, err := ctx.DealerRepo.GetByUserID(context.Background(), dealer.UserID)
	require.NoError(t, err)
	assert.Equal(t, dealer.ID, byUser.ID)
}

func TestDealerSqliteRepository_Create_UppercasesGST(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, users.RoleDealer)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	dealer := CreateTestDealer(t, user.ID)
	dealer.GSTNumber = "27aapfu0939f1zv"
	require.NoError(t, ctx.DealerRepo.Create(context.Background(), dealer))

	fetched, err := ctx.DealerRepo.GetByID(context.Background(), dealer.ID)
	require.NoError(t, err)
	assert.Equal(t, "27AAPFU0939F1ZV", fetched.GSTNumber)
}

func TestDealerSqliteRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	approved := createDealer(t, ctx, "Bright Cooling")
	require.NoError(t, ctx.DealerRepo.UpdateAccountStatus(bg, approved.ID, partners.AccountApproved, ""))
	createDealer(t, ctx, "Sharma Electricals")
	createDealer(t, ctx, "Sharma Plumbing")

	list, total, err := ctx.DealerRepo.List(bg, &partners.DealerQuery{Search: "sharma"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	list, total, err = ctx.DealerRepo.List(bg, &partners.DealerQuery{AccountStatus: partners.AccountApproved})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, approved.ID, list[0].ID)

	list, total, err = ctx.DealerRepo.List(bg, &partners.DealerQuery{
		Page: listing.Page{Limit: 1, Offset: 1, SortBy: "business_name", SortOrder: "asc"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Sharma Electricals", list[0].BusinessName)
}

func TestDealerSqliteRepository_ColumnUpdatesLeaveOtherColumns(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	dealer := createDealer(t, ctx, "Bright Cooling")

	// each writer touches only its own columns
	require.NoError(t, ctx.DealerRepo.UpdateAccountStatus(bg, dealer.ID, partners.AccountSuspended, "late payments"))
	require.NoError(t, ctx.DealerRepo.UpdateTrustScore(bg, dealer.ID, 70))
	require.NoError(t, ctx.DealerRepo.UpdateKYCStatus(bg, dealer.ID, partners.KYCRejected, "blurry scan"))

	fetched, err := ctx.DealerRepo.GetByIDForUpdate(bg, dealer.ID)
	require.NoError(t, err)
	assert.Equal(t, partners.AccountSuspended, fetched.AccountStatus)
	assert.Equal(t, "late payments", fetched.StatusReason)
	assert.Equal(t, 70, fetched.TrustScore)
	assert.Equal(t, partners.KYCRejected, fetched.KYCStatus)
	assert.Equal(t, "blurry scan", fetched.KYCReason)
	assert.Equal(t, "Bright Cooling", fetched.BusinessName)

	missing := "00000000-0000-4000-8000-00000000ffff"
	assert.True(t, apperror.Is(ctx.DealerRepo.UpdateTrustScore(bg, missing, 10), apperror.KindNotFound))
	_, err = ctx.DealerRepo.GetByIDForUpdate(bg, missing)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestTechnicianSqliteRepository_ColumnUpdates(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	user := CreateTestUser(t, users.RoleTechnician)
	require.NoError(t, ctx.UserRepo.Create(bg, user))
	tech := CreateTestTechnician(t, user.ID)
	require.NoError(t, ctx.TechnicianRepo.Create(bg, tech))

	require.NoError(t, ctx.TechnicianRepo.UpdateKYCStatus(bg, tech.ID, partners.KYCSubmitted, ""))
	require.NoError(t, ctx.TechnicianRepo.UpdateAccountStatus(bg, tech.ID, partners.AccountApproved, ""))
	require.NoError(t, ctx.TechnicianRepo.UpdateTrustScore(bg, tech.ID, 35))

	fetched, err := ctx.TechnicianRepo.GetByIDForUpdate(bg, tech.ID)
	require.NoError(t, err)
	assert.Equal(t, partners.KYCSubmitted, fetched.KYCStatus)
	assert.Equal(t, partners.AccountApproved, fetched.AccountStatus)
	assert.Equal(t, 35, fetched.TrustScore)
	assert.Equal(t, tech.Skills, fetched.Skills)
}

func TestDealerSqliteRepository_List_RejectsUnknownSort(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, _, err := ctx.DealerRepo.List(context.Background(), &partners.DealerQuery{
		Page: listing.Page{SortBy: "password_hash"},
	})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestDealerSqliteRepository_CountByAccountStatus(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	d := createDealer(t, ctx, "Bright Cooling")
	require.NoError(t, ctx.DealerRepo.UpdateAccountStatus(bg, d.ID, partners.AccountApproved, ""))
	createDealer(t, ctx, "Sharma Electricals")

	counts, err := ctx.DealerRepo.CountByAccountStatus(bg)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[partners.AccountApproved])
	assert.Equal(t, int64(1), counts[partners.AccountPending])
}

func TestTechnicianSqliteRepository_ListBySkillAndDealer(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	dealer := createDealer(t, ctx, "Bright Cooling")

	for i, skills := range [][]string{{"wiring"}, {"ac repair", "plumbing"}} {
		user := CreateTestUser(t, users.RoleTechnician)
		require.NoError(t, ctx.UserRepo.Create(bg, user))
		tech := CreateTestTechnician(t, user.ID)
		tech.Skills = skills
		if i == 0 {
			tech.DealerID = &dealer.ID
		}
		require.NoError(t, ctx.TechnicianRepo.Create(bg, tech))
	}

	list, total, err := ctx.TechnicianRepo.List(bg, &partners.TechnicianQuery{Skill: "AC Repair"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"ac repair", "plumbing"}, list[0].Skills)

	list, total, err = ctx.TechnicianRepo.List(bg, &partners.TechnicianQuery{DealerID: dealer.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"wiring"}, list[0].Skills)
}

func TestTechnicianSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	user := CreateTestUser(t, users.RoleTechnician)
	require.NoError(t, ctx.UserRepo.Create(bg, user))
	tech := CreateTestTechnician(t, user.ID)
	require.NoError(t, ctx.TechnicianRepo.Create(bg, tech))

	require.NoError(t, ctx.TechnicianRepo.DeleteByID(bg, tech.ID))
	_, err := ctx.TechnicianRepo.GetByID(bg, tech.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestCategorySqliteRepository_FindByPincode(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	west := territories.NewCategory(&territories.Input{Name: "Pune West", Pincodes: []string{"411001", "411002"}})
	require.NoError(t, ctx.TerritoryRepo.Create(bg, west))
	east := territories.NewCategory(&territories.Input{Name: "Pune East", Pincodes: []string{"411014"}})
	require.NoError(t, ctx.TerritoryRepo.Create(bg, east))

	found, err := ctx.TerritoryRepo.FindByPincode(bg, "411002")
	require.NoError(t, err)
	assert.Equal(t, west.ID, found.ID)

	_, err = ctx.TerritoryRepo.FindByPincode(bg, "41100")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	exists, err := ctx.TerritoryRepo.ExistsByName(bg, "pune east", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ctx.TerritoryRepo.ExistsByName(bg, "Pune East", east.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
