package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBookingRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBookingRepository creates a new GORM-based BookingRepository implementation
func NewGormBookingRepository(db *gorm.DB, logger logger.Logger) (bookings.BookingRepository, error) {
	return &gormBookingRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBookingRepository) Create(ctx context.Context, booking *bookings.Booking) error {
	if err := booking.Validate(); err != nil {
		return err
	}

	model := &models.BookingModel{}
	model.FromDomain(booking)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "booking", booking.ID)
	}

	r.logger.Info("booking created", "booking_id", booking.ID, "dealer_id", booking.DealerID)
	return nil
}

func (r *gormBookingRepository) GetByID(ctx context.Context, bookingID string) (*bookings.Booking, error) {
	var model models.BookingModel
	if err := conn(ctx, r.db).Where("id = ?", bookingID).First(&model).Error; err != nil {
		return nil, translate(err, "booking", bookingID)
	}
	return model.ToDomain(), nil
}

func (r *gormBookingRepository) List(ctx context.Context, query *bookings.Query) ([]*bookings.Booking, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := conn(ctx, r.db).Model(&models.BookingModel{})

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", string(query.Status))
	}
	if query.CustomerID != "" {
		dbQuery = dbQuery.Where("customer_id = ?", query.CustomerID)
	}
	if query.DealerID != "" {
		dbQuery = dbQuery.Where("dealer_id = ?", query.DealerID)
	}
	if query.TechnicianID != "" {
		dbQuery = dbQuery.Where("technician_id = ?", query.TechnicianID)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("scheduled_at >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("scheduled_at <= ?", query.To)
	}

	var modelList []*models.BookingModel
	total, err := paginate(dbQuery, &query.Page, "created_at", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	domainList := make([]*bookings.Booking, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

// Update writes booking only while the stored version still equals expectedVersion
func (r *gormBookingRepository) Update(ctx context.Context, booking *bookings.Booking, expectedVersion int) error {
	if err := booking.Validate(); err != nil {
		return err
	}

	db := conn(ctx, r.db)
	result := db.Model(&models.BookingModel{}).
		Where("id = ? AND version = ?", booking.ID, expectedVersion).
		Updates(map[string]interface{}{
			"technician_id": booking.TechnicianID,
			"scheduled_at":  booking.ScheduledAt,
			"status":        string(booking.Status),
			"status_reason": booking.StatusReason,
			"version":       booking.Version,
			"updated_at":    booking.UpdatedAt,
		})
	if result.Error != nil {
		return translate(result.Error, "booking", booking.ID)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.BookingModel{}).Where("id = ?", booking.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check booking: %w", err)
		}
		if count == 0 {
			return apperror.NotFound("booking", booking.ID)
		}
		return apperror.Conflict("booking %s was modified concurrently, reload and retry", booking.ID)
	}

	r.logger.Info("booking updated", "booking_id", booking.ID, "status", string(booking.Status), "version", booking.Version)
	return nil
}

func (r *gormBookingRepository) AppendEvent(ctx context.Context, event *bookings.Event) error {
	model := &models.BookingEventModel{}
	model.FromDomain(event)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "booking event", event.ID)
	}
	return nil
}

func (r *gormBookingRepository) ListEvents(ctx context.Context, bookingID string) ([]*bookings.Event, error) {
	var modelList []*models.BookingEventModel
	err := conn(ctx, r.db).Where("booking_id = ?", bookingID).
		Order("created_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking events: %w", err)
	}

	events := make([]*bookings.Event, len(modelList))
	for i, model := range modelList {
		events[i] = model.ToDomain()
	}
	return events, nil
}

func (r *gormBookingRepository) CountByStatus(ctx context.Context, filter bookings.CountFilter) (map[bookings.Status]int64, error) {
	dbQuery := conn(ctx, r.db).Model(&models.BookingModel{})
	if filter.DealerID != "" {
		dbQuery = dbQuery.Where("dealer_id = ?", filter.DealerID)
	}
	if filter.TechnicianID != "" {
		dbQuery = dbQuery.Where("technician_id = ?", filter.TechnicianID)
	}

	counts, err := countByStatus(dbQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	out := make(map[bookings.Status]int64, len(counts))
	for status, count := range counts {
		out[bookings.Status(status)] = count
	}
	return out, nil
}

type gormComplaintRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormComplaintRepository creates a new GORM-based ComplaintRepository implementation
func NewGormComplaintRepository(db *gorm.DB, logger logger.Logger) (bookings.ComplaintRepository, error) {
	return &gormComplaintRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormComplaintRepository) Create(ctx context.Context, complaint *bookings.Complaint) error {
	if err := complaint.Validate(); err != nil {
		return err
	}

	model := &models.ComplaintModel{}
	model.FromDomain(complaint)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "complaint", complaint.ID)
	}

	r.logger.Info("complaint raised", "complaint_id", complaint.ID, "booking_id", complaint.BookingID)
	return nil
}

func (r *gormComplaintRepository) GetByID(ctx context.Context, complaintID string) (*bookings.Complaint, error) {
	var model models.ComplaintModel
	if err := conn(ctx, r.db).Where("id = ?", complaintID).First(&model).Error; err != nil {
		return nil, translate(err, "complaint", complaintID)
	}
	return model.ToDomain(), nil
}

func (r *gormComplaintRepository) List(ctx context.Context, query *bookings.ComplaintQuery) ([]*bookings.Complaint, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := conn(ctx, r.db).Model(&models.ComplaintModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", string(query.Status))
	}
	if query.CustomerID != "" {
		dbQuery = dbQuery.Where("customer_id = ?", query.CustomerID)
	}
	if query.BookingID != "" {
		dbQuery = dbQuery.Where("booking_id = ?", query.BookingID)
	}

	var modelList []*models.ComplaintModel
	total, err := paginate(dbQuery, &query.Page, "created_at", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch complaints: %w", err)
	}

	domainList := make([]*bookings.Complaint, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormComplaintRepository) Update(ctx context.Context, complaint *bookings.Complaint) error {
	if err := complaint.Validate(); err != nil {
		return err
	}

	model := &models.ComplaintModel{}
	model.FromDomain(complaint)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translate(err, "complaint", complaint.ID)
	}

	r.logger.Info("complaint updated", "complaint_id", complaint.ID, "status", string(complaint.Status))
	return nil
}

func (r *gormComplaintRepository) HasActive(ctx context.Context, bookingID string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.ComplaintModel{}).
		Where("booking_id = ? AND status <> ?", bookingID, string(bookings.ComplaintClosed)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check complaints: %w", err)
	}
	return count > 0, nil
}

// CountUpheld counts resolved complaints that went against the dealer or technician of the booking
func (r *gormComplaintRepository) CountUpheld(ctx context.Context, filter bookings.CountFilter) (int64, error) {
	dbQuery := r.joinBookings(conn(ctx, r.db), filter).
		Where("complaints.upheld = ?", true).
		Where("complaints.status IN ?", []string{
			string(bookings.ComplaintResolved),
			string(bookings.ComplaintClosed),
		})

	var count int64
	if err := dbQuery.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count upheld complaints: %w", err)
	}
	return count, nil
}

func (r *gormComplaintRepository) CountByStatus(ctx context.Context, filter bookings.CountFilter) (map[bookings.ComplaintStatus]int64, error) {
	var rows []statusCount
	err := r.joinBookings(conn(ctx, r.db), filter).
		Select("complaints.status as status, count(*) as count").
		Group("complaints.status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count complaints: %w", err)
	}

	out := make(map[bookings.ComplaintStatus]int64, len(rows))
	for _, row := range rows {
		out[bookings.ComplaintStatus(row.Status)] = row.Count
	}
	return out, nil
}

func (r *gormComplaintRepository) joinBookings(db *gorm.DB, filter bookings.CountFilter) *gorm.DB {
	q := db.Model(&models.ComplaintModel{})
	if filter.DealerID == "" && filter.TechnicianID == "" {
		return q
	}
	q = q.Joins("JOIN bookings ON bookings.id = complaints.booking_id")
	if filter.DealerID != "" {
		q = q.Where("bookings.dealer_id = ?", filter.DealerID)
	}
	if filter.TechnicianID != "" {
		q = q.Where("bookings.technician_id = ?", filter.TechnicianID)
	}
	return q
}
