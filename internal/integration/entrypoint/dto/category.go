package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=100"`
	Type    string  `json:"type" binding:"required,oneof=income expense investment"`
	GroupID *string `json:"group_id,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type       *string `json:"type,omitempty" binding:"omitempty,oneof=income expense investment"`
	GroupID    *string `json:"group_id,omitempty"`
	ClearGroup bool    `json:"clear_group,omitempty"`
}

// CreateGroupRequest represents the request body for category group creation.
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateGroupRequest represents the request body for category group update.
type UpdateGroupRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Collapsed *bool   `json:"collapsed,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	GroupID   *string   `json:"group_id,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupResponse represents a single category group in API responses.
type GroupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	Collapsed bool      `json:"collapsed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Groups     []GroupResponse    `json:"groups"`
}

// CategoryBalanceResponse represents the signed total of a category in a period.
type CategoryBalanceResponse struct {
	CategoryID string `json:"category_id"`
	PeriodID   string `json:"period_id"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
}

// CategoryBudgetResponse represents the budget position of a category in a period.
type CategoryBudgetResponse struct {
	CategoryID string           `json:"category_id"`
	PeriodID   string           `json:"period_id"`
	Budget     int64            `json:"budget"`
	Balance    int64            `json:"balance"`
	Remaining  int64            `json:"remaining"`
	Budgets    []BudgetResponse `json:"budgets"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Type:      string(c.Type),
		GroupID:   idString(c.GroupID),
		Order:     c.Order,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToGroupResponse converts a domain CategoryGroup entity to a GroupResponse DTO.
func ToGroupResponse(g *entity.CategoryGroup) GroupResponse {
	return GroupResponse{
		ID:        g.ID.String(),
		Name:      g.Name,
		Order:     g.Order,
		Collapsed: g.Collapsed,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// ToCategoryListResponse converts categories and groups to a CategoryListResponse DTO.
func ToCategoryListResponse(categories []*entity.Category, groups []*entity.CategoryGroup) CategoryListResponse {
	resp := CategoryListResponse{
		Categories: make([]CategoryResponse, len(categories)),
		Groups:     make([]GroupResponse, len(groups)),
	}
	for i, c := range categories {
		resp.Categories[i] = ToCategoryResponse(c)
	}
	for i, g := range groups {
		resp.Groups[i] = ToGroupResponse(g)
	}
	return resp
}

// ToCategoryBalanceResponse converts a category balance output to its DTO.
func ToCategoryBalanceResponse(output *balance.GetCategoryBalanceOutput) CategoryBalanceResponse {
	return CategoryBalanceResponse{
		CategoryID: output.CategoryID.String(),
		PeriodID:   output.PeriodID.String(),
		Currency:   output.Currency,
		Amount:     output.Amount,
	}
}

// ToCategoryBudgetResponse converts a category budget output to its DTO.
func ToCategoryBudgetResponse(output *budget.CategoryBudgetOutput) CategoryBudgetResponse {
	return CategoryBudgetResponse{
		CategoryID: output.CategoryID.String(),
		PeriodID:   output.PeriodID.String(),
		Budget:     output.Budget,
		Balance:    output.Balance,
		Remaining:  output.Remaining,
		Budgets:    ToBudgetResponses(output.Rows),
	}
}
