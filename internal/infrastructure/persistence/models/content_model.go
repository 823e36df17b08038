package models

import (
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/marketing"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
)

// MarketingContentModel is the GORM database model for marketing content
type MarketingContentModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Kind      string `gorm:"not null;index;type:varchar(20)"`
	Title     string `gorm:"not null;type:varchar(200)"`
	Body      string `gorm:"type:text"`
	ImageKey  string `gorm:"type:varchar(512)"`
	LinkURL   string `gorm:"type:varchar(1000)"`
	Position  int    `gorm:"not null;default:0"`
	Published bool   `gorm:"not null;default:false;index"`
	StartsAt  *time.Time
	EndsAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (MarketingContentModel) TableName() string {
	return "marketing_contents"
}

// ToDomain converts GORM model to domain entity
func (m *MarketingContentModel) ToDomain() *marketing.Content {
	return &marketing.Content{
		ID:        m.ID,
		Kind:      marketing.Kind(m.Kind),
		Title:     m.Title,
		Body:      m.Body,
		ImageKey:  m.ImageKey,
		LinkURL:   m.LinkURL,
		Position:  m.Position,
		Published: m.Published,
		StartsAt:  m.StartsAt,
		EndsAt:    m.EndsAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MarketingContentModel) FromDomain(c *marketing.Content) {
	m.ID = c.ID
	m.Kind = string(c.Kind)
	m.Title = c.Title
	m.Body = c.Body
	m.ImageKey = c.ImageKey
	m.LinkURL = c.LinkURL
	m.Position = c.Position
	m.Published = c.Published
	m.StartsAt = c.StartsAt
	m.EndsAt = c.EndsAt
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// DocumentModel is the GORM database model for KYC document metadata
type DocumentModel struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	OwnerType   string `gorm:"not null;index:idx_document_owner;type:varchar(20)"`
	OwnerID     string `gorm:"not null;index:idx_document_owner;type:varchar(36)"`
	UserID      string `gorm:"not null;index;type:varchar(36)"`
	Kind        string `gorm:"not null;type:varchar(30)"`
	Name        string `gorm:"not null;type:varchar(255)"`
	ContentType string `gorm:"not null;type:varchar(100)"`
	Size        int64  `gorm:"not null"`
	StorageKey  string `gorm:"not null;uniqueIndex;type:varchar(512)"`
	Encrypted   bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts GORM model to domain entity
func (m *DocumentModel) ToDomain() *documents.DocumentMeta {
	return &documents.DocumentMeta{
		ID:          m.ID,
		OwnerType:   partners.PartnerType(m.OwnerType),
		OwnerID:     m.OwnerID,
		UserID:      m.UserID,
		Kind:        documents.Kind(m.Kind),
		Name:        m.Name,
		ContentType: m.ContentType,
		Size:        m.Size,
		StorageKey:  m.StorageKey,
		Encrypted:   m.Encrypted,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DocumentModel) FromDomain(d *documents.DocumentMeta) {
	m.ID = d.ID
	m.OwnerType = string(d.OwnerType)
	m.OwnerID = d.OwnerID
	m.UserID = d.UserID
	m.Kind = string(d.Kind)
	m.Name = d.Name
	m.ContentType = d.ContentType
	m.Size = d.Size
	m.StorageKey = d.StorageKey
	m.Encrypted = d.Encrypted
	m.CreatedAt = d.CreatedAt
}

// AuditReportModel is the GORM database model for AI audit reports
type AuditReportModel struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	SubjectType string `gorm:"not null;index:idx_audit_subject;type:varchar(20)"`
	SubjectID   string `gorm:"not null;index:idx_audit_subject;type:varchar(36)"`
	Question    string `gorm:"not null;type:text"`
	Findings    string `gorm:"not null;type:text"`
	RiskLevel   string `gorm:"not null;index;type:varchar(10)"`
	Model       string `gorm:"type:varchar(100)"`
	RequestedBy string `gorm:"not null;type:varchar(36)"`
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (AuditReportModel) TableName() string {
	return "audit_reports"
}

// ToDomain converts GORM model to domain entity
func (m *AuditReportModel) ToDomain() *audits.Report {
	return &audits.Report{
		ID:          m.ID,
		SubjectType: partners.PartnerType(m.SubjectType),
		SubjectID:   m.SubjectID,
		Question:    m.Question,
		Findings:    m.Findings,
		RiskLevel:   audits.RiskLevel(m.RiskLevel),
		Model:       m.Model,
		RequestedBy: m.RequestedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuditReportModel) FromDomain(r *audits.Report) {
	m.ID = r.ID
	m.SubjectType = string(r.SubjectType)
	m.SubjectID = r.SubjectID
	m.Question = r.Question
	m.Findings = r.Findings
	m.RiskLevel = string(r.RiskLevel)
	m.Model = r.Model
	m.RequestedBy = r.RequestedBy
	m.CreatedAt = r.CreatedAt
}
