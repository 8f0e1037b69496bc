package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// CategoryController handles category and category group HTTP requests.
type CategoryController struct {
	createUseCase      *category.CreateCategoryUseCase
	listUseCase        *category.ListCategoriesUseCase
	updateUseCase      *category.UpdateCategoryUseCase
	deleteUseCase      *category.DeleteCategoryUseCase
	createGroupUseCase *category.CreateGroupUseCase
	updateGroupUseCase *category.UpdateGroupUseCase
	deleteGroupUseCase *category.DeleteGroupUseCase
	balanceUseCase     *balance.GetCategoryBalanceUseCase
	budgetUseCase      *budget.GetCategoryBudgetUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createUseCase *category.CreateCategoryUseCase,
	listUseCase *category.ListCategoriesUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	createGroupUseCase *category.CreateGroupUseCase,
	updateGroupUseCase *category.UpdateGroupUseCase,
	deleteGroupUseCase *category.DeleteGroupUseCase,
	balanceUseCase *balance.GetCategoryBalanceUseCase,
	budgetUseCase *budget.GetCategoryBudgetUseCase,
) *CategoryController {
	return &CategoryController{
		createUseCase:      createUseCase,
		listUseCase:        listUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		createGroupUseCase: createGroupUseCase,
		updateGroupUseCase: updateGroupUseCase,
		deleteGroupUseCase: deleteGroupUseCase,
		balanceUseCase:     balanceUseCase,
		budgetUseCase:      budgetUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories, output.Groups))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}
	groupID, ok := optionalID(ctx, req.GroupID, "group_id")
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name:    req.Name,
		Type:    entity.CategoryType(req.Type),
		GroupID: groupID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "category")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}
	groupID, ok := optionalID(ctx, req.GroupID, "group_id")
	if !ok {
		return
	}

	input := category.UpdateCategoryInput{
		ID:         id,
		Name:       req.Name,
		GroupID:    groupID,
		ClearGroup: req.ClearGroup,
	}
	if req.Type != nil {
		t := entity.CategoryType(*req.Type)
		input.Type = &t
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "category")
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{ID: id}); err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Balance handles GET /categories/:id/balance?period_id= requests.
func (c *CategoryController) Balance(ctx *gin.Context) {
	id, ok := pathID(ctx, "category")
	if !ok {
		return
	}
	periodID, ok := queryID(ctx, "period_id")
	if !ok {
		return
	}
	output, err := c.balanceUseCase.Execute(ctx.Request.Context(), balance.GetCategoryBalanceInput{
		CategoryID: id,
		PeriodID:   periodID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryBalanceResponse(output))
}

// Budget handles GET /categories/:id/budget?period_id= requests.
// The response carries the budget, the balance and the remaining amount.
func (c *CategoryController) Budget(ctx *gin.Context) {
	id, ok := pathID(ctx, "category")
	if !ok {
		return
	}
	periodID, ok := queryID(ctx, "period_id")
	if !ok {
		return
	}
	output, err := c.budgetUseCase.Execute(ctx.Request.Context(), budget.CategoryBudgetInput{
		CategoryID: id,
		PeriodID:   periodID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryBudgetResponse(output))
}

// CreateGroup handles POST /category-groups requests.
func (c *CategoryController) CreateGroup(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}
	g, err := c.createGroupUseCase.Execute(ctx.Request.Context(), category.CreateGroupInput{Name: req.Name})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToGroupResponse(g))
}

// UpdateGroup handles PATCH /category-groups/:id requests.
func (c *CategoryController) UpdateGroup(ctx *gin.Context) {
	id, ok := pathID(ctx, "group")
	if !ok {
		return
	}
	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}
	g, err := c.updateGroupUseCase.Execute(ctx.Request.Context(), category.UpdateGroupInput{
		ID:        id,
		Name:      req.Name,
		Collapsed: req.Collapsed,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGroupResponse(g))
}

// DeleteGroup handles DELETE /category-groups/:id requests.
// Member categories are kept and become ungrouped.
func (c *CategoryController) DeleteGroup(ctx *gin.Context) {
	id, ok := pathID(ctx, "group")
	if !ok {
		return
	}
	if err := c.deleteGroupUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
