// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category.
type CategoryType string

const (
	CategoryTypeIncome     CategoryType = "income"
	CategoryTypeExpense    CategoryType = "expense"
	CategoryTypeInvestment CategoryType = "investment"
)

// IsValid reports whether the category type is known.
func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeInvestment:
		return true
	}
	return false
}

// Category represents a budgeting category.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	GroupID   *uuid.UUID // Optional membership in a CategoryGroup
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType, groupID *uuid.UUID, order int) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		GroupID:   groupID,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryGroup groups categories for display.
type CategoryGroup struct {
	ID        uuid.UUID
	Name      string
	Order     int
	Collapsed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategoryGroup creates a new CategoryGroup entity.
func NewCategoryGroup(name string, order int) *CategoryGroup {
	now := time.Now().UTC()

	return &CategoryGroup{
		ID:        uuid.New(),
		Name:      name,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OrderKey returns the manual order key.
func (c *Category) OrderKey() int { return c.Order }

// SetOrderKey sets the manual order key.
func (c *Category) SetOrderKey(key int) { c.Order = key }

// OrderKey returns the manual order key.
func (g *CategoryGroup) OrderKey() int { return g.Order }

// SetOrderKey sets the manual order key.
func (g *CategoryGroup) SetOrderKey(key int) { g.Order = key }
