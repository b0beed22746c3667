package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "ongeo_api/internal/adapter/http/dto/response"
	"ongeo_api/internal/adapter/http/middleware"
	"ongeo_api/internal/logger"
	"ongeo_api/internal/usecase"
	"ongeo_api/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetPaymentHandler handles HTTP requests for budget payments.
type BudgetPaymentHandler struct {
	usecase usecase.IBudgetPaymentUseCase
}

func NewBudgetPaymentHandler(uc usecase.IBudgetPaymentUseCase) *BudgetPaymentHandler {
	return &BudgetPaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary Charge an approved budget through Mercado Pago
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Budget id"
// @Param body body request.BudgetPaymentCreateRequest true "Mercado Pago payload"
// @Success 200 {object} response.BudgetPaymentResponse
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /api/budgets/{id}/payments [post]
func (h *BudgetPaymentHandler) CreatePayment(c *gin.Context) {
	log := logger.Component("payment.handler")
	budgetID := c.Param("id")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Info().Err(err).Str("budget_id", budgetID).Msg("invalid payload")
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), middleware.OwnerID(c), budgetID, mpPayload)
	if err != nil {
		writeError(c, mapBudgetPaymentError(err))
		return
	}
	log.Info().
		Str("budget_id", budgetID).
		Str("payment_id", created.ID).
		Str("status", string(created.Status)).
		Msg("create success")

	c.JSON(http.StatusOK, response.FromBudgetPayment(created))
}

// ListPayments godoc
// @Summary List the payments of a budget, oldest first
// @Tags payments
// @Produce json
// @Param id path string true "Budget id"
// @Success 200 {object} response.BudgetPaymentListResponse
// @Security BearerAuth
// @Router /api/budgets/{id}/payments [get]
func (h *BudgetPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByBudgetID(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetPayments(payments))
}

// GetPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment id"
// @Success 200 {object} response.BudgetPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /api/payments/{id} [get]
func (h *BudgetPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBudgetPaymentError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return errBudgetNotFound
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Budget total is zero", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
