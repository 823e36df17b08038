package v1

import (
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/domain/dashboard"
	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/marketing"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/territories"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"
	"github.com/MGTheTrain/servicehub/internal/domain/users"

	"github.com/shopspring/decimal"
)

// ListResponse wraps one page of items
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func newListResponse[E any, T any](items []E, total int64, limit, offset int, convert func(E) T) ListResponse[T] {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return ListResponse[T]{Items: out, Total: total, Limit: limit, Offset: offset}
}

func mapSlice[E any, T any](items []E, convert func(E) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone"`
	Role          users.Role `json:"role"`
	PhoneVerified bool       `json:"phoneVerified"`
	EmailVerified bool       `json:"emailVerified"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func newUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.EmailAddress(),
		Phone:         u.Phone,
		Role:          u.Role,
		PhoneVerified: u.PhoneVerified,
		EmailVerified: u.EmailVerified,
		Active:        u.Active,
		CreatedAt:     u.CreatedAt,
	}
}

// DealerResponse is the view of a dealer profile
type DealerResponse struct {
	ID                  string                 `json:"id"`
	UserID              string                 `json:"userId"`
	BusinessName        string                 `json:"businessName"`
	OwnerName           string                 `json:"ownerName"`
	GSTNumber           string                 `json:"gstNumber,omitempty"`
	Address             string                 `json:"address"`
	City                string                 `json:"city"`
	State               string                 `json:"state"`
	Pincode             string                 `json:"pincode"`
	TerritoryCategoryID *string                `json:"territoryCategoryId,omitempty"`
	AccountStatus       partners.AccountStatus `json:"accountStatus"`
	KYCStatus           partners.KYCStatus     `json:"kycStatus"`
	TrustScore          int                    `json:"trustScore"`
	StatusReason        string                 `json:"statusReason,omitempty"`
	KYCReason           string                 `json:"kycReason,omitempty"`
	CreatedAt           time.Time              `json:"createdAt"`
	UpdatedAt           time.Time              `json:"updatedAt"`
}

func newDealerResponse(d *partners.Dealer) DealerResponse {
	return DealerResponse{
		ID:                  d.ID,
		UserID:              d.UserID,
		BusinessName:        d.BusinessName,
		OwnerName:           d.OwnerName,
		GSTNumber:           d.GSTNumber,
		Address:             d.Address,
		City:                d.City,
		State:               d.State,
		Pincode:             d.Pincode,
		TerritoryCategoryID: d.TerritoryCategoryID,
		AccountStatus:       d.AccountStatus,
		KYCStatus:           d.KYCStatus,
		TrustScore:          d.TrustScore,
		StatusReason:        d.StatusReason,
		KYCReason:           d.KYCReason,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

// TechnicianResponse is the view of a technician profile
type TechnicianResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	DealerID        *string                `json:"dealerId,omitempty"`
	Skills          []string               `json:"skills"`
	ExperienceYears int                    `json:"experienceYears"`
	City            string                 `json:"city"`
	Pincode         string                 `json:"pincode"`
	AccountStatus   partners.AccountStatus `json:"accountStatus"`
	KYCStatus       partners.KYCStatus     `json:"kycStatus"`
	TrustScore      int                    `json:"trustScore"`
	StatusReason    string                 `json:"statusReason,omitempty"`
	KYCReason       string                 `json:"kycReason,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

func newTechnicianResponse(t *partners.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:              t.ID,
		UserID:          t.UserID,
		DealerID:        t.DealerID,
		Skills:          t.Skills,
		ExperienceYears: t.ExperienceYears,
		City:            t.City,
		Pincode:         t.Pincode,
		AccountStatus:   t.AccountStatus,
		KYCStatus:       t.KYCStatus,
		TrustScore:      t.TrustScore,
		StatusReason:    t.StatusReason,
		KYCReason:       t.KYCReason,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// DealerRegistrationResponse is returned after a dealer signs up
type DealerRegistrationResponse struct {
	User   UserResponse   `json:"user"`
	Dealer DealerResponse `json:"dealer"`
}

// TechnicianRegistrationResponse is returned after a technician signs up
type TechnicianRegistrationResponse struct {
	User       UserResponse       `json:"user"`
	Technician TechnicianResponse `json:"technician"`
}

// BookingResponse is the view of a booking
type BookingResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	DealerID     string          `json:"dealerId"`
	TechnicianID *string         `json:"technicianId,omitempty"`
	ServiceType  string          `json:"serviceType"`
	Description  string          `json:"description,omitempty"`
	Address      string          `json:"address"`
	Pincode      string          `json:"pincode"`
	ScheduledAt  time.Time       `json:"scheduledAt"`
	Status       bookings.Status `json:"status"`
	StatusReason string          `json:"statusReason,omitempty"`
	Version      int             `json:"version"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func newBookingResponse(b *bookings.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		DealerID:     b.DealerID,
		TechnicianID: b.TechnicianID,
		ServiceType:  b.ServiceType,
		Description:  b.Description,
		Address:      b.Address,
		Pincode:      b.Pincode,
		ScheduledAt:  b.ScheduledAt,
		Status:       b.Status,
		StatusReason: b.StatusReason,
		Version:      b.Version,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// BookingEventResponse is one entry of a booking history
type BookingEventResponse struct {
	FromStatus bookings.Status `json:"fromStatus,omitempty"`
	ToStatus   bookings.Status `json:"toStatus"`
	ActorID    string          `json:"actorId"`
	ActorRole  users.Role      `json:"actorRole"`
	Reason     string          `json:"reason,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func newBookingEventResponse(e *bookings.Event) BookingEventResponse {
	return BookingEventResponse{
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		ActorID:    e.ActorID,
		ActorRole:  e.ActorRole,
		Reason:     e.Reason,
		CreatedAt:  e.CreatedAt,
	}
}

// ComplaintResponse is the view of a complaint
type ComplaintResponse struct {
	ID          string                   `json:"id"`
	BookingID   string                   `json:"bookingId"`
	CustomerID  string                   `json:"customerId"`
	Subject     string                   `json:"subject"`
	Description string                   `json:"description"`
	Status      bookings.ComplaintStatus `json:"status"`
	Resolution  string                   `json:"resolution,omitempty"`
	Upheld      bool                     `json:"upheld"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

func newComplaintResponse(c *bookings.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:          c.ID,
		BookingID:   c.BookingID,
		CustomerID:  c.CustomerID,
		Subject:     c.Subject,
		Description: c.Description,
		Status:      c.Status,
		Resolution:  c.Resolution,
		Upheld:      c.Upheld,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// TrustHistoryResponse is one trust score change
type TrustHistoryResponse struct {
	ID            string               `json:"id"`
	SubjectType   partners.PartnerType `json:"subjectType"`
	SubjectID     string               `json:"subjectId"`
	PreviousScore int                  `json:"previousScore"`
	NewScore      int                  `json:"newScore"`
	Delta         int                  `json:"delta"`
	Reason        string               `json:"reason"`
	ActorID       string               `json:"actorId"`
	Source        trust.Source         `json:"source"`
	CreatedAt     time.Time            `json:"createdAt"`
}

func newTrustHistoryResponse(h *trust.History) TrustHistoryResponse {
	return TrustHistoryResponse{
		ID:            h.ID,
		SubjectType:   h.SubjectType,
		SubjectID:     h.SubjectID,
		PreviousScore: h.PreviousScore,
		NewScore:      h.NewScore,
		Delta:         h.Delta,
		Reason:        h.Reason,
		ActorID:       h.ActorID,
		Source:        h.Source,
		CreatedAt:     h.CreatedAt,
	}
}

// SellerResponse is the view of a seller
type SellerResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone"`
	GSTNumber      string                `json:"gstNumber,omitempty"`
	Status         commerce.SellerStatus `json:"status"`
	CommissionRate decimal.Decimal       `json:"commissionRate"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

func newSellerResponse(s *commerce.Seller) SellerResponse {
	return SellerResponse{
		ID:             s.ID,
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		GSTNumber:      s.GSTNumber,
		Status:         s.Status,
		CommissionRate: s.CommissionRate,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ProductResponse is the view of a product
type ProductResponse struct {
	ID          string          `json:"id"`
	SellerID    string          `json:"sellerId"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	HasImage    bool            `json:"hasImage"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func newProductResponse(p *commerce.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		HasImage:    p.ImageKey != "",
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// OrderItemResponse is one order line
type OrderItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// OrderResponse is the view of an order
type OrderResponse struct {
	ID              string               `json:"id"`
	CustomerID      string               `json:"customerId"`
	Items           []OrderItemResponse  `json:"items"`
	Total           decimal.Decimal      `json:"total"`
	Status          commerce.OrderStatus `json:"status"`
	ShippingAddress string               `json:"shippingAddress"`
	Version         int                  `json:"version"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func newOrderResponse(o *commerce.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Items: mapSlice(o.Items, func(i *commerce.OrderItem) OrderItemResponse {
			return OrderItemResponse{
				ProductID:   i.ProductID,
				ProductName: i.ProductName,
				UnitPrice:   i.UnitPrice,
				Quantity:    i.Quantity,
				LineTotal:   i.LineTotal,
			}
		}),
		Total:           o.Total,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		Version:         o.Version,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ContentResponse is the view of a marketing item
type ContentResponse struct {
	ID        string         `json:"id"`
	Kind      marketing.Kind `json:"kind"`
	Title     string         `json:"title"`
	Body      string         `json:"body,omitempty"`
	HasImage  bool           `json:"hasImage"`
	LinkURL   string         `json:"linkUrl,omitempty"`
	Position  int            `json:"position"`
	Published bool           `json:"published"`
	StartsAt  *time.Time     `json:"startsAt,omitempty"`
	EndsAt    *time.Time     `json:"endsAt,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func newContentResponse(c *marketing.Content) ContentResponse {
	return ContentResponse{
		ID:        c.ID,
		Kind:      c.Kind,
		Title:     c.Title,
		Body:      c.Body,
		HasImage:  c.ImageKey != "",
		LinkURL:   c.LinkURL,
		Position:  c.Position,
		Published: c.Published,
		StartsAt:  c.StartsAt,
		EndsAt:    c.EndsAt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CategoryResponse is the view of a territory category
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Pincodes    []string  `json:"pincodes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newCategoryResponse(c *territories.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Pincodes:    c.Pincodes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// DocumentResponse is the metadata of a KYC document
type DocumentResponse struct {
	ID          string               `json:"id"`
	OwnerType   partners.PartnerType `json:"ownerType"`
	OwnerID     string               `json:"ownerId"`
	Kind        documents.Kind       `json:"kind"`
	Name        string               `json:"name"`
	ContentType string               `json:"contentType"`
	Size        int64                `json:"size"`
	Encrypted   bool                 `json:"encrypted"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func newDocumentResponse(d *documents.DocumentMeta) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		OwnerType:   d.OwnerType,
		OwnerID:     d.OwnerID,
		Kind:        d.Kind,
		Name:        d.Name,
		ContentType: d.ContentType,
		Size:        d.Size,
		Encrypted:   d.Encrypted,
		CreatedAt:   d.CreatedAt,
	}
}

// ReportResponse is the view of an audit report
type ReportResponse struct {
	ID          string               `json:"id"`
	SubjectType partners.PartnerType `json:"subjectType"`
	SubjectID   string               `json:"subjectId"`
	Question    string               `json:"question"`
	Findings    string               `json:"findings"`
	RiskLevel   audits.RiskLevel     `json:"riskLevel"`
	Model       string               `json:"model"`
	RequestedBy string               `json:"requestedBy"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func newReportResponse(r *audits.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID,
		SubjectType: r.SubjectType,
		SubjectID:   r.SubjectID,
		Question:    r.Question,
		Findings:    r.Findings,
		RiskLevel:   r.RiskLevel,
		Model:       r.Model,
		RequestedBy: r.RequestedBy,
		CreatedAt:   r.CreatedAt,
	}
}

// StatsResponse is the admin dashboard overview
type StatsResponse struct {
	DealersByStatus     map[string]int64 `json:"dealersByStatus"`
	TechniciansByStatus map[string]int64 `json:"techniciansByStatus"`
	BookingsByStatus    map[string]int64 `json:"bookingsByStatus"`
	OpenComplaints      int64            `json:"openComplaints"`
	PendingOrders       int64            `json:"pendingOrders"`
	DeliveredRevenue    decimal.Decimal  `json:"deliveredRevenue"`
}

func newStatsResponse(s *dashboard.Stats) StatsResponse {
	return StatsResponse{
		DealersByStatus:     s.DealersByStatus,
		TechniciansByStatus: s.TechniciansByStatus,
		BookingsByStatus:    s.BookingsByStatus,
		OpenComplaints:      s.OpenComplaints,
		PendingOrders:       s.PendingOrders,
		DeliveredRevenue:    s.DeliveredRevenue,
	}
}
