package persistence

import (
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/marketing"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/territories"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"
	"github.com/MGTheTrain/servicehub/internal/domain/txn"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"gorm.io/gorm"
)

// Repositories bundles every gorm-backed repository sharing one connection
type Repositories struct {
	Transactor     txn.Transactor
	UserRepo       users.UserRepository
	SessionRepo    users.SessionRepository
	DealerRepo     partners.DealerRepository
	TechnicianRepo partners.TechnicianRepository
	TerritoryRepo  territories.CategoryRepository
	BookingRepo    bookings.BookingRepository
	ComplaintRepo  bookings.ComplaintRepository
	TrustRepo      trust.HistoryRepository
	SellerRepo     commerce.SellerRepository
	ProductRepo    commerce.ProductRepository
	OrderRepo      commerce.OrderRepository
	ContentRepo    marketing.ContentRepository
	DocumentRepo   documents.DocumentRepository
	AuditRepo      audits.ReportRepository
}

// NewRepositories creates all repositories on top of db
func NewRepositories(db *gorm.DB, logger logger.Logger) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}

	var err error
	r := &Repositories{Transactor: NewTransactor(db)}

	if r.UserRepo, err = NewGormUserRepository(db, logger); err != nil {
		return nil, fmt.Errorf("user repository: %w", err)
	}
	if r.SessionRepo, err = NewGormSessionRepository(db); err != nil {
		return nil, fmt.Errorf("session repository: %w", err)
	}
	if r.DealerRepo, err = NewGormDealerRepository(db, logger); err != nil {
		return nil, fmt.Errorf("dealer repository: %w", err)
	}
	if r.TechnicianRepo, err = NewGormTechnicianRepository(db, logger); err != nil {
		return nil, fmt.Errorf("technician repository: %w", err)
	}
	if r.TerritoryRepo, err = NewGormCategoryRepository(db, logger); err != nil {
		return nil, fmt.Errorf("category repository: %w", err)
	}
	if r.BookingRepo, err = NewGormBookingRepository(db, logger); err != nil {
		return nil, fmt.Errorf("booking repository: %w", err)
	}
	if r.ComplaintRepo, err = NewGormComplaintRepository(db, logger); err != nil {
		return nil, fmt.Errorf("complaint repository: %w", err)
	}
	if r.TrustRepo, err = NewGormTrustHistoryRepository(db); err != nil {
		return nil, fmt.Errorf("trust history repository: %w", err)
	}
	if r.SellerRepo, err = NewGormSellerRepository(db, logger); err != nil {
		return nil, fmt.Errorf("seller repository: %w", err)
	}
	if r.ProductRepo, err = NewGormProductRepository(db, logger); err != nil {
		return nil, fmt.Errorf("product repository: %w", err)
	}
	if r.OrderRepo, err = NewGormOrderRepository(db, logger); err != nil {
		return nil, fmt.Errorf("order repository: %w", err)
	}
	if r.ContentRepo, err = NewGormContentRepository(db, logger); err != nil {
		return nil, fmt.Errorf("content repository: %w", err)
	}
	if r.DocumentRepo, err = NewGormDocumentRepository(db, logger); err != nil {
		return nil, fmt.Errorf("document repository: %w", err)
	}
	if r.AuditRepo, err = NewGormAuditReportRepository(db); err != nil {
		return nil, fmt.Errorf("audit report repository: %w", err)
	}

	return r, nil
}
