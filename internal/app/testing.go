//go:build integration
// +build integration

package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/domain/dashboard"
	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/marketing"
	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/registration"
	"github.com/MGTheTrain/servicehub/internal/domain/territories"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/connector"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/pdf"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// recordingNotifier keeps every message instead of delivering it
type recordingNotifier struct {
	mu       sync.Mutex
	messages []notifications.Message
}

func (n *recordingNotifier) Notify(_ context.Context, msgs ...notifications.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msgs...)
}

// Events returns the event names of all recorded messages
func (n *recordingNotifier) Events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	events := make([]string, 0, len(n.messages))
	for _, m := range n.messages {
		events = append(events, m.Event)
	}
	return events
}

// stubAssistant answers every prompt with a fixed text
type stubAssistant struct {
	answer     string
	lastPrompt string
}

func (a *stubAssistant) Complete(_ context.Context, _, prompt string) (string, string, error) {
	a.lastPrompt = prompt
	return a.answer, "stub-model", nil
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService         users.AuthService
	RegistrationService registration.RegistrationService
	DealerService       partners.DealerService
	TechnicianService   partners.TechnicianService
	BookingService      bookings.BookingService
	ComplaintService    bookings.ComplaintService
	TrustService        trust.TrustService
	SellerService       commerce.SellerService
	ProductService      commerce.ProductService
	OrderService        commerce.OrderService
	ContentService      marketing.ContentService
	TerritoryService    territories.TerritoryService
	DocumentService     documents.DocumentService
	AuditService        audits.AuditService
	DashboardService    dashboard.DashboardService

	Notifier  *recordingNotifier
	Assistant *stubAssistant
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	db := persistence.SetupTestDB(t, dbType)

	blobConnector, err := connector.NewLocalBlobConnector(&config.BlobConnectorSettings{
		CloudProvider: config.LocalCloudProvider,
		LocalPath:     t.TempDir(),
	}, logger)
	require.NoError(t, err, "Failed to create blob connector")

	aesProcessor, err := cryptography.NewAESProcessor(logger)
	require.NoError(t, err, "Failed to create AES processor")

	key := make([]byte, 32)
	_, err = rand.Read(key)
	require.NoError(t, err)
	documentSettings := &config.DocumentSettings{EncryptionKey: base64.StdEncoding.EncodeToString(key)}

	notifier := &recordingNotifier{}
	assistant := &stubAssistant{answer: "RISK: LOW\n- No upheld complaints."}
	renderer := pdf.NewRenderer()
	verifier := connector.NewInsecureVerifier()

	ts := &TestServices{Notifier: notifier, Assistant: assistant, DBContext: db}

	ts.AuthService, err = NewAuthService(db.UserRepo, db.SessionRepo, &config.AuthSettings{}, logger)
	require.NoError(t, err, "Failed to create AuthService")

	ts.RegistrationService, err = NewRegistrationService(db.Transactor, db.UserRepo, db.DealerRepo, db.TechnicianRepo, db.TerritoryRepo, verifier, notifier, logger)
	require.NoError(t, err, "Failed to create RegistrationService")

	ts.DealerService, err = NewDealerService(db.Transactor, db.DealerRepo, db.UserRepo, db.SessionRepo, notifier, logger)
	require.NoError(t, err, "Failed to create DealerService")

	ts.TechnicianService, err = NewTechnicianService(db.Transactor, db.TechnicianRepo, db.DealerRepo, db.UserRepo, db.SessionRepo, notifier, logger)
	require.NoError(t, err, "Failed to create TechnicianService")

	ts.BookingService, err = NewBookingService(db.Transactor, db.BookingRepo, db.DealerRepo, db.TechnicianRepo, db.UserRepo, renderer, notifier, logger)
	require.NoError(t, err, "Failed to create BookingService")

	ts.ComplaintService, err = NewComplaintService(db.ComplaintRepo, db.BookingRepo, db.UserRepo, notifier, logger)
	require.NoError(t, err, "Failed to create ComplaintService")

	ts.TrustService, err = NewTrustService(db.Transactor, db.TrustRepo, db.DealerRepo, db.TechnicianRepo, db.BookingRepo, db.ComplaintRepo, logger)
	require.NoError(t, err, "Failed to create TrustService")

	ts.SellerService, err = NewSellerService(db.SellerRepo, db.ProductRepo, logger)
	require.NoError(t, err, "Failed to create SellerService")

	ts.ProductService, err = NewProductService(db.ProductRepo, db.SellerRepo, blobConnector, logger)
	require.NoError(t, err, "Failed to create ProductService")

	ts.OrderService, err = NewOrderService(db.Transactor, db.OrderRepo, db.ProductRepo, db.UserRepo, renderer, notifier, logger)
	require.NoError(t, err, "Failed to create OrderService")

	ts.ContentService, err = NewContentService(db.ContentRepo, blobConnector, logger)
	require.NoError(t, err, "Failed to create ContentService")

	ts.TerritoryService, err = NewTerritoryService(db.TerritoryRepo, logger)
	require.NoError(t, err, "Failed to create TerritoryService")

	ts.DocumentService, err = NewDocumentService(db.Transactor, db.DocumentRepo, db.DealerRepo, db.TechnicianRepo, blobConnector, aesProcessor, documentSettings, logger)
	require.NoError(t, err, "Failed to create DocumentService")

	ts.AuditService, err = NewAuditService(db.AuditRepo, db.DealerRepo, db.TechnicianRepo, db.TrustRepo, db.BookingRepo, db.ComplaintRepo, assistant, renderer, logger)
	require.NoError(t, err, "Failed to create AuditService")

	ts.DashboardService, err = NewDashboardService(db.DealerRepo, db.TechnicianRepo, db.BookingRepo, db.ComplaintRepo, db.OrderRepo, logger)
	require.NoError(t, err, "Failed to create DashboardService")

	return ts
}

// admin returns a principal for an admin of the given role
func admin(role users.Role) *users.Principal {
	return &users.Principal{UserID: "00000000-0000-4000-8000-000000000001", Role: role, Name: "Admin"}
}
