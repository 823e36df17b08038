//go:build integration
// +build integration

package persistence

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	*Repositories
	DB *gorm.DB
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrateAll(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	repos, err := NewRepositories(db, log)
	require.NoError(t, err, "Failed to create repositories")

	tc := &TestContext{Repositories: repos, DB: db}

	return tc
}

// CreateTestUser builds a valid user with a unique phone number
func CreateTestUser(t *testing.T, role users.Role) *users.User {
	t.Helper()

	phone := fmt.Sprintf("+9198%08d", rand.Intn(100000000))
	return users.NewUser("Test User", "", phone, "$2a$10$hash", role)
}

// CreateTestDealer builds a valid dealer profile owned by userID
func CreateTestDealer(t *testing.T, userID string) *partners.Dealer {
	t.Helper()

	d := partners.NewDealer(userID)
	d.BusinessName = "Sharma Electricals"
	d.OwnerName = "Ravi Sharma"
	d.Address = "12 MG Road"
	d.City = "Pune"
	d.State = "Maharashtra"
	d.Pincode = "411001"
	return d
}

// CreateTestTechnician builds a valid technician profile owned by userID
func CreateTestTechnician(t *testing.T, userID string) *partners.Technician {
	t.Helper()

	tech := partners.NewTechnician(userID)
	tech.Skills = []string{"wiring", "ac repair"}
	tech.ExperienceYears = 4
	tech.City = "Pune"
	tech.Pincode = "411002"
	return tech
}

// CreateTestBooking builds a pending booking scheduled tomorrow
func CreateTestBooking(t *testing.T, customerID, dealerID string) *bookings.Booking {
	t.Helper()

	return bookings.NewBooking(customerID, dealerID, &bookings.CreateInput{
		DealerID:    dealerID,
		ServiceType: "AC service",
		Address:     "4 Park Street",
		Pincode:     "411001",
		ScheduledAt: time.Now().Add(24 * time.Hour).UTC(),
	})
}

// CreateTestProduct builds an active product for sellerID
func CreateTestProduct(t *testing.T, sellerID, sku string, stock int) *commerce.Product {
	t.Helper()

	return commerce.NewProduct(&commerce.ProductInput{
		SellerID: sellerID,
		Name:     "Copper wire 1.5mm",
		SKU:      sku,
		Category: "electrical",
		Price:    decimal.RequireFromString("249.50"),
		Stock:    stock,
		Active:   true,
	})
}
