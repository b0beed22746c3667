package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "ongeo_api/internal/adapter/http/dto/request"
	response "ongeo_api/internal/adapter/http/dto/response"
	"ongeo_api/internal/adapter/http/middleware"
	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase"
	"ongeo_api/pkg"

	"github.com/gin-gonic/gin"
)

const idempotencyKeyHeader = "Idempotency-Key"

// BudgetHandler handles HTTP requests for budgets, both the dashboard routes
// and the public custom link routes.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// Calculate godoc
// @Summary Price a budget request
// @Tags budgets
// @Accept json
// @Produce json
// @Param body body request.BudgetFormRequest true "Budget form"
// @Success 200 {object} response.CalculateResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /api/calculate-budget [post]
func (h *BudgetHandler) Calculate(c *gin.Context) {
	var payload request.BudgetFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	result, err := h.usecase.Calculate(c.Request.Context(), payload.ToDomain())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.CalculateResponse{Success: true, BudgetResult: result})
}

// Create godoc
// @Summary Create a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replay protection key"
// @Param body body request.CreateBudgetRequest true "Budget form"
// @Success 201 {object} response.BudgetResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /api/budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.OwnerID(c), usecase.CreateBudgetInput{
		Request:        payload.ToDomain(),
		ClientID:       strings.TrimSpace(payload.ClientID),
		IdempotencyKey: strings.TrimSpace(c.GetHeader(idempotencyKeyHeader)),
	})
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.BudgetResponse{Success: true, Budget: created})
}

// List godoc
// @Summary List the caller's budgets, newest first
// @Tags budgets
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} response.BudgetListResponse
// @Security BearerAuth
// @Router /api/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	status := entities.BudgetStatus(strings.TrimSpace(c.Query("status")))
	if status != "" && !status.Valid() {
		writeError(c, errInvalidRequest)
		return
	}

	budgets, err := h.usecase.List(c.Request.Context(), middleware.OwnerID(c), status)
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	if budgets == nil {
		budgets = []entities.Budget{}
	}
	c.JSON(http.StatusOK, response.BudgetListResponse{Success: true, Budgets: budgets, Count: len(budgets)})
}

// Get godoc
// @Summary Get a budget
// @Tags budgets
// @Produce json
// @Param id path string true "Budget id"
// @Success 200 {object} response.BudgetResponse
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /api/budgets/{id} [get]
func (h *BudgetHandler) Get(c *gin.Context) {
	b, err := h.usecase.Get(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.BudgetResponse{Success: true, Budget: b})
}

// Update godoc
// @Summary Edit the request fields of a budget (the price is not recalculated)
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget id"
// @Param body body request.BudgetFormRequest true "Budget form"
// @Success 200 {object} response.BudgetResponse
// @Security BearerAuth
// @Router /api/budgets/{id} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	var payload request.BudgetFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	b, err := h.usecase.Edit(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), payload.ToDomain())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.BudgetResponse{Success: true, Budget: b})
}

// Delete godoc
// @Summary Delete a budget and its items
// @Tags budgets
// @Produce json
// @Param id path string true "Budget id"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} response.SuccessResponse
// @Failure 428 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /api/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), confirmed(c)); err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true, Detail: "Orçamento excluído"})
}

// SetCustomLink godoc
// @Summary Change the public link of a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget id"
// @Param body body request.CustomLinkRequest true "New link"
// @Success 200 {object} response.CustomLinkResponse
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /api/budgets/{id}/link [put]
func (h *BudgetHandler) SetCustomLink(c *gin.Context) {
	var payload request.CustomLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	b, err := h.usecase.SetCustomLink(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), payload.CustomLink)
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.CustomLinkResponse{Success: true, CustomLink: b.CustomLink})
}

// Totals godoc
// @Summary Compute the display total, including session-only items
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget id"
// @Param body body request.BudgetTotalsRequest false "Additional items"
// @Success 200 {object} response.BudgetTotalsResponse
// @Security BearerAuth
// @Router /api/budgets/{id}/total [post]
func (h *BudgetHandler) Totals(c *gin.Context) {
	var payload request.BudgetTotalsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, bindError(err))
			return
		}
	}

	totals, err := h.usecase.Totals(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), payload.AdditionalItems)
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetTotals(totals))
}

// GetPublic godoc
// @Summary View a budget through its public link
// @Tags public
// @Produce json
// @Param custom_link path string true "Public link"
// @Success 200 {object} response.PublicBudgetResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /api/budgets/link/{custom_link} [get]
func (h *BudgetHandler) GetPublic(c *gin.Context) {
	b, err := h.usecase.GetByCustomLink(c.Request.Context(), c.Param("custom_link"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicBudget(b))
}

// Approve godoc
// @Summary Approve a budget through its public link
// @Tags public
// @Produce json
// @Param custom_link path string true "Public link"
// @Success 200 {object} response.PublicBudgetResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /api/budgets/link/{custom_link}/approve [post]
func (h *BudgetHandler) Approve(c *gin.Context) {
	b, err := h.usecase.Approve(c.Request.Context(), c.Param("custom_link"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicBudget(b))
}

// Reject godoc
// @Summary Reject a budget through its public link
// @Tags public
// @Accept json
// @Produce json
// @Param custom_link path string true "Public link"
// @Param body body request.RejectBudgetRequest false "Optional comment"
// @Success 200 {object} response.PublicBudgetResponse
// @Router /api/budgets/link/{custom_link}/reject [post]
func (h *BudgetHandler) Reject(c *gin.Context) {
	var payload request.RejectBudgetRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, bindError(err))
			return
		}
	}

	b, err := h.usecase.Reject(c.Request.Context(), c.Param("custom_link"), payload.Comment)
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicBudget(b))
}

// Resubmit godoc
// @Summary Resubmit a rejected budget with corrected data
// @Tags public
// @Accept json
// @Produce json
// @Param custom_link path string true "Public link"
// @Param body body request.BudgetFormRequest true "Budget form"
// @Success 200 {object} response.SuccessResponse
// @Router /api/budgets/link/{custom_link}/resubmit [post]
func (h *BudgetHandler) Resubmit(c *gin.Context) {
	var payload request.BudgetFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	if _, err := h.usecase.Resubmit(c.Request.Context(), c.Param("custom_link"), payload.ToDomain()); err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true, Detail: "Orçamento reenviado"})
}

func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}

func mapBudgetError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidCustomLink):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return errBudgetNotFound
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Cliente não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomLinkTaken):
		return pkg.NewDomainErrorSimple("CUSTOM_LINK_TAKEN", "Este link já está em uso por outro orçamento", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "O orçamento não pode mudar para este status", http.StatusConflict)
	default:
		return internalError(err)
	}
}
