package models

import (
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"
)

// TrustScoreHistoryModel is the GORM database model for trust score history
type TrustScoreHistoryModel struct {
	ID            string `gorm:"primaryKey;type:varchar(36)"`
	SubjectType   string `gorm:"not null;index:idx_trust_subject;type:varchar(20)"`
	SubjectID     string `gorm:"not null;index:idx_trust_subject;type:varchar(36)"`
	PreviousScore int    `gorm:"not null"`
	NewScore      int    `gorm:"not null"`
	Delta         int    `gorm:"not null"`
	Reason        string `gorm:"not null;type:varchar(500)"`
	ActorID       string `gorm:"not null;type:varchar(36)"`
	Source        string `gorm:"not null;type:varchar(20)"`
	CreatedAt     time.Time
}

// TableName specifies the table name for GORM
func (TrustScoreHistoryModel) TableName() string {
	return "trust_score_history"
}

// ToDomain converts GORM model to domain entity
func (m *TrustScoreHistoryModel) ToDomain() *trust.History {
	return &trust.History{
		ID:            m.ID,
		SubjectType:   partners.PartnerType(m.SubjectType),
		SubjectID:     m.SubjectID,
		PreviousScore: m.PreviousScore,
		NewScore:      m.NewScore,
		Delta:         m.Delta,
		Reason:        m.Reason,
		ActorID:       m.ActorID,
		Source:        trust.Source(m.Source),
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TrustScoreHistoryModel) FromDomain(h *trust.History) {
	m.ID = h.ID
	m.SubjectType = string(h.SubjectType)
	m.SubjectID = h.SubjectID
	m.PreviousScore = h.PreviousScore
	m.NewScore = h.NewScore
	m.Delta = h.Delta
	m.Reason = h.Reason
	m.ActorID = h.ActorID
	m.Source = string(h.Source)
	m.CreatedAt = h.CreatedAt
}
