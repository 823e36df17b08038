package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	json "github.com/goccy/go-json"
)

const (
	auditHistoryLimit = 20

	auditSystemPrompt = `You audit service partners of a home services marketplace.
Answer the admin's question using only the JSON snapshot provided.
Start your answer with exactly one line "RISK: LOW", "RISK: MEDIUM" or "RISK: HIGH",
followed by concise findings as bullet points. Do not invent data that is not in the snapshot.`
)

// auditSnapshot is the data the assistant reasons about
type auditSnapshot struct {
	SubjectType  partners.PartnerType `json:"subjectType"`
	Profile      interface{}          `json:"profile"`
	TrustHistory []auditHistoryEntry  `json:"trustHistory"`
	Bookings     map[string]int64     `json:"bookingsByStatus"`
	Complaints   map[string]int64     `json:"complaintsByStatus"`
	UpheldCount  int64                `json:"upheldComplaints"`
	GeneratedAt  time.Time            `json:"generatedAt"`
}

type auditHistoryEntry struct {
	Previous int       `json:"previous"`
	Score    int       `json:"score"`
	Reason   string    `json:"reason"`
	Source   string    `json:"source"`
	At       time.Time `json:"at"`
}

type dealerProfile struct {
	BusinessName  string `json:"businessName"`
	City          string `json:"city"`
	State         string `json:"state"`
	AccountStatus string `json:"accountStatus"`
	KYCStatus     string `json:"kycStatus"`
	TrustScore    int    `json:"trustScore"`
	MemberSince   string `json:"memberSince"`
}

type technicianProfile struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears"`
	City            string   `json:"city"`
	AccountStatus   string   `json:"accountStatus"`
	KYCStatus       string   `json:"kycStatus"`
	TrustScore      int      `json:"trustScore"`
	MemberSince     string   `json:"memberSince"`
}

// auditService implements the AuditService interface
type auditService struct {
	reportRepo     audits.ReportRepository
	dealerRepo     partners.DealerRepository
	technicianRepo partners.TechnicianRepository
	historyRepo    trust.HistoryRepository
	bookingRepo    bookings.BookingRepository
	complaintRepo  bookings.ComplaintRepository
	assistant      audits.Assistant
	renderer       audits.ReportRenderer
	logger         logger.Logger
}

// NewAuditService creates a new instance of AuditService
func NewAuditService(
	reportRepo audits.ReportRepository,
	dealerRepo partners.DealerRepository,
	technicianRepo partners.TechnicianRepository,
	historyRepo trust.HistoryRepository,
	bookingRepo bookings.BookingRepository,
	complaintRepo bookings.ComplaintRepository,
	assistant audits.Assistant,
	renderer audits.ReportRenderer,
	logger logger.Logger,
) (audits.AuditService, error) {
	return &auditService{
		reportRepo:     reportRepo,
		dealerRepo:     dealerRepo,
		technicianRepo: technicianRepo,
		historyRepo:    historyRepo,
		bookingRepo:    bookingRepo,
		complaintRepo:  complaintRepo,
		assistant:      assistant,
		renderer:       renderer,
		logger:         logger,
	}, nil
}

// snapshot collects the subject, its recent trust history and its booking and complaint counters
func (s *auditService) snapshot(ctx context.Context, subjectType partners.PartnerType, subjectID string) (*auditSnapshot, error) {
	snap := &auditSnapshot{SubjectType: subjectType, GeneratedAt: time.Now().UTC()}
	filter := bookings.CountFilter{}

	switch subjectType {
	case partners.TypeDealer:
		dealer, err := s.dealerRepo.GetByID(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		snap.Profile = dealerProfile{
			BusinessName:  dealer.BusinessName,
			City:          dealer.City,
			State:         dealer.State,
			AccountStatus: string(dealer.AccountStatus),
			KYCStatus:     string(dealer.KYCStatus),
			TrustScore:    dealer.TrustScore,
			MemberSince:   dealer.CreatedAt.Format("2006-01-02"),
		}
		filter.DealerID = dealer.ID
	case partners.TypeTechnician:
		technician, err := s.technicianRepo.GetByID(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		snap.Profile = technicianProfile{
			Skills:          technician.Skills,
			ExperienceYears: technician.ExperienceYears,
			City:            technician.City,
			AccountStatus:   string(technician.AccountStatus),
			KYCStatus:       string(technician.KYCStatus),
			TrustScore:      technician.TrustScore,
			MemberSince:     technician.CreatedAt.Format("2006-01-02"),
		}
		filter.TechnicianID = technician.ID
	default:
		return nil, apperror.FieldValidation("subjectType", "subjectType must be DEALER or TECHNICIAN")
	}

	history, _, err := s.historyRepo.List(ctx, &trust.HistoryQuery{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Page:        listing.Page{Limit: auditHistoryLimit},
	})
	if err != nil {
		return nil, err
	}
	for _, h := range history {
		snap.TrustHistory = append(snap.TrustHistory, auditHistoryEntry{
			Previous: h.PreviousScore,
			Score:    h.NewScore,
			Reason:   h.Reason,
			Source:   string(h.Source),
			At:       h.CreatedAt,
		})
	}

	bookingCounts, err := s.bookingRepo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}
	snap.Bookings = make(map[string]int64, len(bookingCounts))
	for status, n := range bookingCounts {
		snap.Bookings[string(status)] = n
	}

	complaintCounts, err := s.complaintRepo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}
	snap.Complaints = make(map[string]int64, len(complaintCounts))
	for status, n := range complaintCounts {
		snap.Complaints[string(status)] = n
	}

	if snap.UpheldCount, err = s.complaintRepo.CountUpheld(ctx, filter); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *auditService) Run(ctx context.Context, actor *users.Principal, input *audits.RunInput) (*audits.Report, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("only admins may run audits")
	}
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx, input.SubjectType, input.SubjectID)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode audit snapshot: %w", err)
	}

	var prompt strings.Builder
	prompt.WriteString("Question: ")
	prompt.WriteString(strings.TrimSpace(input.Question))
	prompt.WriteString("\n\nSnapshot:\n")
	prompt.Write(data)

	findings, model, err := s.assistant.Complete(ctx, auditSystemPrompt, prompt.String())
	if err != nil {
		return nil, err
	}

	report := audits.NewReport(input, findings, model, actor.UserID)
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info("audit report created", "reportId", report.ID, "subjectType", string(report.SubjectType),
		"subjectId", report.SubjectID, "riskLevel", string(report.RiskLevel), "model", report.Model)
	return report, nil
}

func (s *auditService) GetByID(ctx context.Context, reportID string) (*audits.Report, error) {
	return s.reportRepo.GetByID(ctx, reportID)
}

func (s *auditService) List(ctx context.Context, query *audits.Query) ([]*audits.Report, int64, error) {
	if query == nil {
		query = &audits.Query{}
	}
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	return s.reportRepo.List(ctx, query)
}

func (s *auditService) ReportPDF(ctx context.Context, reportID string) ([]byte, error) {
	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return s.renderer.AuditReport(report)
}
