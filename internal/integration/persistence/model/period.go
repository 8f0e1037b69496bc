// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PeriodModel represents the periods table in the database.
type PeriodModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year      int       `gorm:"not null;uniqueIndex:idx_period_year_month"`
	Month     int       `gorm:"not null;uniqueIndex:idx_period_year_month"`
	StartDate time.Time `gorm:"not null;index"`
	Label     string    `gorm:"type:varchar(10);not null"`
}

// TableName returns the table name for the PeriodModel.
func (PeriodModel) TableName() string {
	return "periods"
}

// ToEntity converts a PeriodModel to a domain Period entity.
func (m *PeriodModel) ToEntity() *entity.Period {
	return &entity.Period{
		ID:    m.ID,
		Year:  m.Year,
		Month: m.Month,
		Start: m.StartDate,
		Label: m.Label,
	}
}

// PeriodFromEntity creates a PeriodModel from a domain Period entity.
func PeriodFromEntity(period *entity.Period) *PeriodModel {
	return &PeriodModel{
		ID:        period.ID,
		Year:      period.Year,
		Month:     period.Month,
		StartDate: period.Start.UTC(),
		Label:     period.Label,
	}
}
