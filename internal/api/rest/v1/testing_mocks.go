//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/domain/dashboard"
	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/marketing"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/registration"
	"github.com/MGTheTrain/servicehub/internal/domain/territories"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"
	"github.com/MGTheTrain/servicehub/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*users.LoginResult, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.LoginResult), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*users.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Principal), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Me(ctx context.Context, actor *users.Principal) (*users.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) CreateAdmin(ctx context.Context, actor *users.Principal, input *users.CreateAdminInput) (*users.User, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) BootstrapSuperAdmin(ctx context.Context, input *users.CreateAdminInput) (*users.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockRegistrationService is a mock implementation of RegistrationService
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) RegisterDealer(ctx context.Context, input *registration.DealerInput) (*registration.DealerRegistration, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registration.DealerRegistration), args.Error(1)
}

func (m *MockRegistrationService) RegisterTechnician(ctx context.Context, input *registration.TechnicianInput) (*registration.TechnicianRegistration, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registration.TechnicianRegistration), args.Error(1)
}

func (m *MockRegistrationService) RegisterCustomer(ctx context.Context, input *registration.CustomerInput) (*users.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockDealerService is a mock implementation of DealerService
type MockDealerService struct {
	mock.Mock
}

func (m *MockDealerService) List(ctx context.Context, query *partners.DealerQuery) ([]*partners.Dealer, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*partners.Dealer), args.Get(1).(int64), args.Error(2)
}

func (m *MockDealerService) GetByID(ctx context.Context, dealerID string) (*partners.Dealer, error) {
	args := m.Called(ctx, dealerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.Dealer), args.Error(1)
}

func (m *MockDealerService) UpdateAccountStatus(ctx context.Context, actor *users.Principal, dealerID string, change *partners.StatusChange) (*partners.Dealer, error) {
	args := m.Called(ctx, actor, dealerID, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.Dealer), args.Error(1)
}

func (m *MockDealerService) UpdateKYCStatus(ctx context.Context, actor *users.Principal, dealerID string, change *partners.StatusChange) (*partners.Dealer, error) {
	args := m.Called(ctx, actor, dealerID, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.Dealer), args.Error(1)
}

func (m *MockDealerService) DeleteByID(ctx context.Context, actor *users.Principal, dealerID string) error {
	args := m.Called(ctx, actor, dealerID)
	return args.Error(0)
}

// MockTechnicianService is a mock implementation of TechnicianService
type MockTechnicianService struct {
	mock.Mock
}

func (m *MockTechnicianService) List(ctx context.Context, query *partners.TechnicianQuery) ([]*partners.Technician, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*partners.Technician), args.Get(1).(int64), args.Error(2)
}

func (m *MockTechnicianService) ListForDealer(ctx context.Context, actor *users.Principal, query *partners.TechnicianQuery) ([]*partners.Technician, int64, error) {
	args := m.Called(ctx, actor, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*partners.Technician), args.Get(1).(int64), args.Error(2)
}

func (m *MockTechnicianService) GetByID(ctx context.Context, technicianID string) (*partners.Technician, error) {
	args := m.Called(ctx, technicianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.Technician), args.Error(1)
}

func (m *MockTechnicianService) UpdateAccountStatus(ctx context.Context, actor *users.Principal, technicianID string, change *partners.StatusChange) (*partners.Technician, error) {
	args := m.Called(ctx, actor, technicianID, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.Technician), args.Error(1)
}

func (m *MockTechnicianService) UpdateKYCStatus(ctx context.Context, actor *users.Principal, technicianID string, change *partners.StatusChange) (*partners.Technician, error) {
	args := m.Called(ctx, actor, technicianID, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.Technician), args.Error(1)
}

func (m *MockTechnicianService) DeleteByID(ctx context.Context, actor *users.Principal, technicianID string) error {
	args := m.Called(ctx, actor, technicianID)
	return args.Error(0)
}

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, actor *users.Principal, input *bookings.CreateInput) (*bookings.Booking, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) GetByID(ctx context.Context, actor *users.Principal, bookingID string) (*bookings.Booking, error) {
	args := m.Called(ctx, actor, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context, actor *users.Principal, query *bookings.Query) ([]*bookings.Booking, int64, error) {
	args := m.Called(ctx, actor, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*bookings.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingService) UpdateStatus(ctx context.Context, actor *users.Principal, bookingID string, input *bookings.StatusInput) (*bookings.Booking, error) {
	args := m.Called(ctx, actor, bookingID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) AssignTechnician(ctx context.Context, actor *users.Principal, bookingID string, input *bookings.AssignInput) (*bookings.Booking, error) {
	args := m.Called(ctx, actor, bookingID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) History(ctx context.Context, actor *users.Principal, bookingID string) ([]*bookings.Event, error) {
	args := m.Called(ctx, actor, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.Event), args.Error(1)
}

func (m *MockBookingService) JobSheet(ctx context.Context, actor *users.Principal, bookingID string) ([]byte, error) {
	args := m.Called(ctx, actor, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockComplaintService is a mock implementation of ComplaintService
type MockComplaintService struct {
	mock.Mock
}

func (m *MockComplaintService) Raise(ctx context.Context, actor *users.Principal, bookingID string, input *bookings.RaiseInput) (*bookings.Complaint, error) {
	args := m.Called(ctx, actor, bookingID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Complaint), args.Error(1)
}

func (m *MockComplaintService) Update(ctx context.Context, actor *users.Principal, complaintID string, update *bookings.ComplaintUpdate) (*bookings.Complaint, error) {
	args := m.Called(ctx, actor, complaintID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Complaint), args.Error(1)
}

func (m *MockComplaintService) List(ctx context.Context, actor *users.Principal, query *bookings.ComplaintQuery) ([]*bookings.Complaint, int64, error) {
	args := m.Called(ctx, actor, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*bookings.Complaint), args.Get(1).(int64), args.Error(2)
}

// MockTrustService is a mock implementation of TrustService
type MockTrustService struct {
	mock.Mock
}

func (m *MockTrustService) Adjust(ctx context.Context, actor *users.Principal, input *trust.AdjustInput) (*trust.History, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trust.History), args.Error(1)
}

func (m *MockTrustService) Recalculate(ctx context.Context, actor *users.Principal, input *trust.RecalculateInput) (*trust.History, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trust.History), args.Error(1)
}

func (m *MockTrustService) History(ctx context.Context, query *trust.HistoryQuery) ([]*trust.History, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*trust.History), args.Get(1).(int64), args.Error(2)
}

// MockSellerService is a mock implementation of SellerService
type MockSellerService struct {
	mock.Mock
}

func (m *MockSellerService) Create(ctx context.Context, input *commerce.SellerInput) (*commerce.Seller, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Seller), args.Error(1)
}

func (m *MockSellerService) GetByID(ctx context.Context, sellerID string) (*commerce.Seller, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Seller), args.Error(1)
}

func (m *MockSellerService) List(ctx context.Context, query *commerce.SellerQuery) ([]*commerce.Seller, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*commerce.Seller), args.Get(1).(int64), args.Error(2)
}

func (m *MockSellerService) UpdateStatus(ctx context.Context, sellerID string, input *commerce.SellerStatusInput) (*commerce.Seller, error) {
	args := m.Called(ctx, sellerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Seller), args.Error(1)
}

func (m *MockSellerService) DeleteByID(ctx context.Context, sellerID string) error {
	args := m.Called(ctx, sellerID)
	return args.Error(0)
}

// MockProductService is a mock implementation of ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, input *commerce.ProductInput) (*commerce.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, productID string, input *commerce.ProductInput) (*commerce.Product, error) {
	args := m.Called(ctx, productID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, productID string) (*commerce.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, query *commerce.ProductQuery) ([]*commerce.Product, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*commerce.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) DeleteByID(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductService) SetStock(ctx context.Context, productID string, input *commerce.StockInput) (*commerce.Product, error) {
	args := m.Called(ctx, productID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Product), args.Error(1)
}

func (m *MockProductService) SetActive(ctx context.Context, productID string, input *commerce.ActiveInput) (*commerce.Product, error) {
	args := m.Called(ctx, productID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Product), args.Error(1)
}

func (m *MockProductService) UploadImage(ctx context.Context, productID string, file *multipart.FileHeader) (*commerce.Product, error) {
	args := m.Called(ctx, productID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Product), args.Error(1)
}

func (m *MockProductService) Image(ctx context.Context, productID string) ([]byte, string, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockProductService) Catalog(ctx context.Context, query *commerce.ProductQuery) ([]*commerce.Product, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*commerce.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) CatalogItem(ctx context.Context, productID string) (*commerce.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Product), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Place(ctx context.Context, actor *users.Principal, input *commerce.PlaceOrderInput) (*commerce.Order, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, actor *users.Principal, orderID string) (*commerce.Order, error) {
	args := m.Called(ctx, actor, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, actor *users.Principal, query *commerce.OrderQuery) ([]*commerce.Order, int64, error) {
	args := m.Called(ctx, actor, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*commerce.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, actor *users.Principal, orderID string, input *commerce.OrderStatusInput) (*commerce.Order, error) {
	args := m.Called(ctx, actor, orderID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.Order), args.Error(1)
}

func (m *MockOrderService) Invoice(ctx context.Context, actor *users.Principal, orderID string) ([]byte, error) {
	args := m.Called(ctx, actor, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockContentService is a mock implementation of ContentService
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Create(ctx context.Context, input *marketing.Input) (*marketing.Content, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.Content), args.Error(1)
}

func (m *MockContentService) Update(ctx context.Context, contentID string, input *marketing.Input) (*marketing.Content, error) {
	args := m.Called(ctx, contentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.Content), args.Error(1)
}

func (m *MockContentService) GetByID(ctx context.Context, contentID string) (*marketing.Content, error) {
	args := m.Called(ctx, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.Content), args.Error(1)
}

func (m *MockContentService) List(ctx context.Context, query *marketing.Query) ([]*marketing.Content, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*marketing.Content), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentService) Active(ctx context.Context, kind marketing.Kind) ([]*marketing.Content, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*marketing.Content), args.Error(1)
}

func (m *MockContentService) SetPublished(ctx context.Context, contentID string, input *marketing.PublishInput) (*marketing.Content, error) {
	args := m.Called(ctx, contentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.Content), args.Error(1)
}

func (m *MockContentService) DeleteByID(ctx context.Context, contentID string) error {
	args := m.Called(ctx, contentID)
	return args.Error(0)
}

func (m *MockContentService) UploadImage(ctx context.Context, contentID string, file *multipart.FileHeader) (*marketing.Content, error) {
	args := m.Called(ctx, contentID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.Content), args.Error(1)
}

func (m *MockContentService) Image(ctx context.Context, contentID string) ([]byte, string, error) {
	args := m.Called(ctx, contentID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// MockTerritoryService is a mock implementation of TerritoryService
type MockTerritoryService struct {
	mock.Mock
}

func (m *MockTerritoryService) Create(ctx context.Context, input *territories.Input) (*territories.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*territories.Category), args.Error(1)
}

func (m *MockTerritoryService) Update(ctx context.Context, categoryID string, input *territories.Input) (*territories.Category, error) {
	args := m.Called(ctx, categoryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*territories.Category), args.Error(1)
}

func (m *MockTerritoryService) GetByID(ctx context.Context, categoryID string) (*territories.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*territories.Category), args.Error(1)
}

func (m *MockTerritoryService) List(ctx context.Context, query *territories.Query) ([]*territories.Category, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*territories.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockTerritoryService) DeleteByID(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockTerritoryService) Resolve(ctx context.Context, pincode string) (*territories.Category, error) {
	args := m.Called(ctx, pincode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*territories.Category), args.Error(1)
}

// MockDocumentService is a mock implementation of DocumentService
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, actor *users.Principal, form *multipart.Form) ([]*documents.DocumentMeta, error) {
	args := m.Called(ctx, actor, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.DocumentMeta), args.Error(1)
}

func (m *MockDocumentService) ListOwn(ctx context.Context, actor *users.Principal) ([]*documents.DocumentMeta, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.DocumentMeta), args.Error(1)
}

func (m *MockDocumentService) ListForOwner(ctx context.Context, ownerType partners.PartnerType, ownerID string) ([]*documents.DocumentMeta, error) {
	args := m.Called(ctx, ownerType, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.DocumentMeta), args.Error(1)
}

func (m *MockDocumentService) Download(ctx context.Context, actor *users.Principal, docID string) ([]byte, *documents.DocumentMeta, error) {
	args := m.Called(ctx, actor, docID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]byte), args.Get(1).(*documents.DocumentMeta), args.Error(2)
}

// MockAuditService is a mock implementation of AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Run(ctx context.Context, actor *users.Principal, input *audits.RunInput) (*audits.Report, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*audits.Report), args.Error(1)
}

func (m *MockAuditService) GetByID(ctx context.Context, reportID string) (*audits.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*audits.Report), args.Error(1)
}

func (m *MockAuditService) List(ctx context.Context, query *audits.Query) ([]*audits.Report, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*audits.Report), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditService) ReportPDF(ctx context.Context, reportID string) ([]byte, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*dashboard.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Stats), args.Error(1)
}
