package models

import (
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/partners"
)

// DealerModel is the GORM database model for dealer profiles
type DealerModel struct {
	ID                  string  `gorm:"primaryKey;type:varchar(36)"`
	UserID              string  `gorm:"not null;uniqueIndex;type:varchar(36)"`
	BusinessName        string  `gorm:"not null;type:varchar(200)"`
	OwnerName           string  `gorm:"not null;type:varchar(120)"`
	GSTNumber           string  `gorm:"type:varchar(15)"`
	Address             string  `gorm:"not null;type:varchar(500)"`
	City                string  `gorm:"not null;index;type:varchar(100)"`
	State               string  `gorm:"not null;type:varchar(100)"`
	Pincode             string  `gorm:"not null;index;type:varchar(6)"`
	TerritoryCategoryID *string `gorm:"index;type:varchar(36)"`
	AccountStatus       string  `gorm:"not null;index;type:varchar(20)"`
	KYCStatus           string  `gorm:"column:kyc_status;not null;index;type:varchar(20)"`
	TrustScore          int     `gorm:"not null;default:50"`
	StatusReason        string  `gorm:"type:varchar(500)"`
	KYCReason           string  `gorm:"column:kyc_reason;type:varchar(500)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (DealerModel) TableName() string {
	return "dealers"
}

// ToDomain converts GORM model to domain entity
func (m *DealerModel) ToDomain() *partners.Dealer {
	return &partners.Dealer{
		ID:                  m.ID,
		UserID:              m.UserID,
		BusinessName:        m.BusinessName,
		OwnerName:           m.OwnerName,
		GSTNumber:           m.GSTNumber,
		Address:             m.Address,
		City:                m.City,
		State:               m.State,
		Pincode:             m.Pincode,
		TerritoryCategoryID: m.TerritoryCategoryID,
		AccountStatus:       partners.AccountStatus(m.AccountStatus),
		KYCStatus:           partners.KYCStatus(m.KYCStatus),
		TrustScore:          m.TrustScore,
		StatusReason:        m.StatusReason,
		KYCReason:           m.KYCReason,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DealerModel) FromDomain(d *partners.Dealer) {
	m.ID = d.ID
	m.UserID = d.UserID
	m.BusinessName = d.BusinessName
	m.OwnerName = d.OwnerName
	m.GSTNumber = d.GSTNumber
	m.Address = d.Address
	m.City = d.City
	m.State = d.State
	m.Pincode = d.Pincode
	m.TerritoryCategoryID = d.TerritoryCategoryID
	m.AccountStatus = string(d.AccountStatus)
	m.KYCStatus = string(d.KYCStatus)
	m.TrustScore = d.TrustScore
	m.StatusReason = d.StatusReason
	m.KYCReason = d.KYCReason
	m.CreatedAt = d.CreatedAt
	m.UpdatedAt = d.UpdatedAt
}

// TechnicianModel is the GORM database model for technician profiles
type TechnicianModel struct {
	ID              string  `gorm:"primaryKey;type:varchar(36)"`
	UserID          string  `gorm:"not null;uniqueIndex;type:varchar(36)"`
	DealerID        *string `gorm:"index;type:varchar(36)"`
	Skills          string  `gorm:"not null;type:varchar(1000)"`
	ExperienceYears int     `gorm:"not null;default:0"`
	City            string  `gorm:"not null;index;type:varchar(100)"`
	Pincode         string  `gorm:"not null;index;type:varchar(6)"`
	AccountStatus   string  `gorm:"not null;index;type:varchar(20)"`
	KYCStatus       string  `gorm:"column:kyc_status;not null;index;type:varchar(20)"`
	TrustScore      int     `gorm:"not null;default:50"`
	StatusReason    string  `gorm:"type:varchar(500)"`
	KYCReason       string  `gorm:"column:kyc_reason;type:varchar(500)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (TechnicianModel) TableName() string {
	return "technicians"
}

// ToDomain converts GORM model to domain entity
func (m *TechnicianModel) ToDomain() *partners.Technician {
	return &partners.Technician{
		ID:              m.ID,
		UserID:          m.UserID,
		DealerID:        m.DealerID,
		Skills:          splitList(m.Skills),
		ExperienceYears: m.ExperienceYears,
		City:            m.City,
		Pincode:         m.Pincode,
		AccountStatus:   partners.AccountStatus(m.AccountStatus),
		KYCStatus:       partners.KYCStatus(m.KYCStatus),
		TrustScore:      m.TrustScore,
		StatusReason:    m.StatusReason,
		KYCReason:       m.KYCReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TechnicianModel) FromDomain(t *partners.Technician) {
	m.ID = t.ID
	m.UserID = t.UserID
	m.DealerID = t.DealerID
	m.Skills = joinList(t.Skills)
	m.ExperienceYears = t.ExperienceYears
	m.City = t.City
	m.Pincode = t.Pincode
	m.AccountStatus = string(t.AccountStatus)
	m.KYCStatus = string(t.KYCStatus)
	m.TrustScore = t.TrustScore
	m.StatusReason = t.StatusReason
	m.KYCReason = t.KYCReason
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}
