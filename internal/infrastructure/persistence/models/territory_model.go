package models

import (
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/territories"
)

// TerritoryCategoryModel is the GORM database model for territory categories
type TerritoryCategoryModel struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Name        string `gorm:"not null;uniqueIndex;type:varchar(120)"`
	Description string `gorm:"type:varchar(1000)"`
	Pincodes    string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (TerritoryCategoryModel) TableName() string {
	return "territory_categories"
}

// ToDomain converts GORM model to domain entity
func (m *TerritoryCategoryModel) ToDomain() *territories.Category {
	return &territories.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Pincodes:    splitList(m.Pincodes),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TerritoryCategoryModel) FromDomain(c *territories.Category) {
	m.ID = c.ID
	m.Name = c.Name
	m.Description = c.Description
	m.Pincodes = joinList(c.Pincodes)
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
