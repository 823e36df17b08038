// Package audits defines AI-assisted audit reports about dealers and technicians.
package audits

import (
	"bufio"
	"context"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/users"

	"github.com/google/uuid"
)

// RiskLevel assessed by the assistant
type RiskLevel string

// Risk levels
const (
	RiskLow     RiskLevel = "LOW"
	RiskMedium  RiskLevel = "MEDIUM"
	RiskHigh    RiskLevel = "HIGH"
	RiskUnknown RiskLevel = "UNKNOWN"
)

// Report is one persisted audit run
type Report struct {
	ID          string
	SubjectType partners.PartnerType
	SubjectID   string
	Question    string
	Findings    string
	RiskLevel   RiskLevel
	Model       string
	RequestedBy string
	CreatedAt   time.Time
}

// NewReport creates a report for a finished assistant run
func NewReport(input *RunInput, findings, model, requestedBy string) *Report {
	return &Report{
		ID:          uuid.NewString(),
		SubjectType: input.SubjectType,
		SubjectID:   input.SubjectID,
		Question:    strings.TrimSpace(input.Question),
		Findings:    strings.TrimSpace(findings),
		RiskLevel:   ParseRiskLevel(findings),
		Model:       model,
		RequestedBy: requestedBy,
		CreatedAt:   time.Now().UTC(),
	}
}

// ParseRiskLevel reads "RISK: LOW|MEDIUM|HIGH" from the first non-empty line of text
func ParseRiskLevel(text string) RiskLevel {
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		line = strings.Trim(line, "*_# ")
		upper := strings.ToUpper(line)
		if !strings.HasPrefix(upper, "RISK:") {
			return RiskUnknown
		}
		switch RiskLevel(strings.TrimSpace(strings.TrimPrefix(upper, "RISK:"))) {
		case RiskLow:
			return RiskLow
		case RiskMedium:
			return RiskMedium
		case RiskHigh:
			return RiskHigh
		default:
			return RiskUnknown
		}
	}
	return RiskUnknown
}

// RunInput asks the assistant to audit a subject
type RunInput struct {
	SubjectType partners.PartnerType `json:"subjectType" validate:"required,oneof=DEALER TECHNICIAN"`
	SubjectID   string               `json:"subjectId" validate:"required,uuid4"`
	Question    string               `json:"question" validate:"required,min=5,max=2000"`
}

// Query filters the report list
type Query struct {
	SubjectType partners.PartnerType
	SubjectID   string
	RiskLevel   RiskLevel
	listing.Page
}

// Validate checks the query parameters
func (q *Query) Validate() error {
	return q.Page.Validate("created_at", "risk_level")
}

// Assistant completes prompts with a large language model
type Assistant interface {
	// Complete returns the generated text and the model that produced it.
	Complete(ctx context.Context, systemPrompt, prompt string) (string, string, error)
}

// ReportRepository persists audit reports
type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	GetByID(ctx context.Context, reportID string) (*Report, error)
	List(ctx context.Context, query *Query) ([]*Report, int64, error)
}

// ReportRenderer renders an audit report document
type ReportRenderer interface {
	AuditReport(report *Report) ([]byte, error)
}

// AuditService runs and lists audits
type AuditService interface {
	Run(ctx context.Context, actor *users.Principal, input *RunInput) (*Report, error)
	GetByID(ctx context.Context, reportID string) (*Report, error)
	List(ctx context.Context, query *Query) ([]*Report, int64, error)
	ReportPDF(ctx context.Context, reportID string) ([]byte, error)
}
