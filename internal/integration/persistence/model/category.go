// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Type      string     `gorm:"type:varchar(10);not null"`
	GroupID   *uuid.UUID `gorm:"type:uuid;index"`
	SortOrder int        `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Type:      entity.CategoryType(m.Type),
		GroupID:   m.GroupID,
		Order:     m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Type:      string(category.Type),
		GroupID:   category.GroupID,
		SortOrder: category.Order,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// CategoryGroupModel represents the category_groups table in the database.
type CategoryGroupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	Collapsed bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryGroupModel.
func (CategoryGroupModel) TableName() string {
	return "category_groups"
}

// ToEntity converts a CategoryGroupModel to a domain CategoryGroup entity.
func (m *CategoryGroupModel) ToEntity() *entity.CategoryGroup {
	return &entity.CategoryGroup{
		ID:        m.ID,
		Name:      m.Name,
		Order:     m.SortOrder,
		Collapsed: m.Collapsed,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryGroupFromEntity creates a CategoryGroupModel from a domain CategoryGroup entity.
func CategoryGroupFromEntity(group *entity.CategoryGroup) *CategoryGroupModel {
	return &CategoryGroupModel{
		ID:        group.ID,
		Name:      group.Name,
		SortOrder: group.Order,
		Collapsed: group.Collapsed,
		CreatedAt: group.CreatedAt,
		UpdatedAt: group.UpdatedAt,
	}
}
