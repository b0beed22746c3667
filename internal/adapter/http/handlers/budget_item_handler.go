package handlers

import (
	"errors"
	"net/http"

	request "ongeo_api/internal/adapter/http/dto/request"
	response "ongeo_api/internal/adapter/http/dto/response"
	"ongeo_api/internal/adapter/http/middleware"
	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase"
	"ongeo_api/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetItemHandler handles the item overlay of a budget.
type BudgetItemHandler struct {
	usecase usecase.IBudgetItemUseCase
}

func NewBudgetItemHandler(uc usecase.IBudgetItemUseCase) *BudgetItemHandler {
	return &BudgetItemHandler{usecase: uc}
}

// List godoc
// @Summary List the items of a budget grouped by type
// @Tags budget-items
// @Produce json
// @Param id path string true "Budget id"
// @Success 200 {object} response.ItemOverlayResponse
// @Security BearerAuth
// @Router /api/budgets/{id}/items [get]
func (h *BudgetItemHandler) List(c *gin.Context) {
	overlay, err := h.usecase.List(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItemOverlay(overlay))
}

// Create godoc
// @Summary Add an item to a budget
// @Tags budget-items
// @Accept json
// @Produce json
// @Param id path string true "Budget id"
// @Param body body request.BudgetItemRequest true "Item"
// @Success 201 {object} response.BudgetItemResponse
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /api/budgets/{id}/items [post]
func (h *BudgetItemHandler) Create(c *gin.Context) {
	var payload request.BudgetItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	it, err := h.usecase.Create(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapBudgetItemError(err))
		return
	}
	c.JSON(http.StatusCreated, response.BudgetItemResponse{Success: true, Item: it})
}

// Update godoc
// @Summary Replace a budget item
// @Tags budget-items
// @Accept json
// @Produce json
// @Param item_id path string true "Item id"
// @Param body body request.BudgetItemRequest true "Item"
// @Success 200 {object} response.BudgetItemResponse
// @Security BearerAuth
// @Router /api/budget-items/{item_id} [put]
func (h *BudgetItemHandler) Update(c *gin.Context) {
	var payload request.BudgetItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	it, err := h.usecase.Update(c.Request.Context(), middleware.OwnerID(c), c.Param("item_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapBudgetItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.BudgetItemResponse{Success: true, Item: it})
}

// Delete godoc
// @Summary Delete a budget item
// @Tags budget-items
// @Produce json
// @Param item_id path string true "Item id"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} response.SuccessResponse
// @Security BearerAuth
// @Router /api/budget-items/{item_id} [delete]
func (h *BudgetItemHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.OwnerID(c), c.Param("item_id"), confirmed(c)); err != nil {
		writeError(c, mapBudgetItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true, Detail: "Item excluído"})
}

// ListTemplates godoc
// @Summary List active item templates
// @Tags budget-items
// @Produce json
// @Success 200 {object} response.TemplatesResponse
// @Security BearerAuth
// @Router /api/budget-item-templates [get]
func (h *BudgetItemHandler) ListTemplates(c *gin.Context) {
	templates, err := h.usecase.ListTemplates(c.Request.Context())
	if err != nil {
		writeError(c, mapBudgetItemError(err))
		return
	}
	if templates == nil {
		templates = []entities.BudgetItemTemplate{}
	}
	c.JSON(http.StatusOK, response.TemplatesResponse{Success: true, Templates: templates})
}

func mapBudgetItemError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return errBudgetNotFound
	case errors.Is(err, usecase.ErrBudgetItemNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_ITEM_NOT_FOUND", "Item não encontrado", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
