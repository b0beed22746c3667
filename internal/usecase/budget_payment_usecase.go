package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/domain/pricing"
	"ongeo_api/internal/logger"
	"ongeo_api/internal/usecase/interfaces"
)

var (
	ErrBudgetPaymentNotFound          = errors.New("budget payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrBudgetNotApproved              = errors.New("budget not approved")
	ErrNothingToCharge                = errors.New("budget total is zero")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings carries the Mercado Pago knobs read from configuration.
type PaymentSettings struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (s PaymentSettings) sandbox() bool { return strings.HasPrefix(s.AccessToken, "TEST-") }

// IBudgetPaymentUseCase charges approved budgets.
type IBudgetPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, ownerID, budgetID string, mpPayload json.RawMessage) (entities.BudgetPayment, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.BudgetPayment, error)
	ListByBudgetID(ctx context.Context, ownerID, budgetID string) ([]entities.BudgetPayment, error)
}

type BudgetPaymentUseCase struct {
	repo     interfaces.IBudgetPaymentRepository
	budgets  interfaces.IBudgetRepository
	items    interfaces.IBudgetItemRepository
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings

	now func() time.Time
}

var _ IBudgetPaymentUseCase = (*BudgetPaymentUseCase)(nil)

func NewBudgetPaymentUseCase(
	repo interfaces.IBudgetPaymentRepository,
	budgets interfaces.IBudgetRepository,
	items interfaces.IBudgetItemRepository,
	gateway interfaces.IPaymentGateway,
	settings PaymentSettings,
) *BudgetPaymentUseCase {
	return &BudgetPaymentUseCase{
		repo:     repo,
		budgets:  budgets,
		items:    items,
		gateway:  gateway,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *BudgetPaymentUseCase) ownedBudget(ctx context.Context, ownerID, budgetID string) (entities.Budget, error) {
	if strings.TrimSpace(ownerID) == "" {
		return entities.Budget{}, ErrInvalidOwner
	}
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" || b.UserID != ownerID {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// CreateAndApprove charges the display total of an approved budget through
// Mercado Pago and stores the provider response.
func (u *BudgetPaymentUseCase) CreateAndApprove(ctx context.Context, ownerID, budgetID string, mpPayload json.RawMessage) (entities.BudgetPayment, error) {
	lg := logger.Component("payment.usecase")
	mock := u.settings.Mock

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mock {
			return entities.BudgetPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mock {
		return entities.BudgetPayment{}, ErrPaymentGatewayNotConfigured
	}

	b, err := u.ownedBudget(ctx, ownerID, budgetID)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if b.Status != entities.BudgetStatusApproved {
		lg.Info().Str("budget_id", b.ID).Str("status", string(b.Status)).Msg("payment refused, budget not approved")
		return entities.BudgetPayment{}, ErrBudgetNotApproved
	}

	items, err := u.items.ListByBudgetID(ctx, b.ID)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	amount := pricing.DisplayTotal(b, items, nil).Amount.Round(2)
	if !amount.IsPositive() {
		return entities.BudgetPayment{}, ErrNothingToCharge
	}
	charge := amount.InexactFloat64()

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mock {
			return entities.BudgetPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.BudgetPayment{}, ErrInvalidMPPayload
		}
		u.mapSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			return entities.BudgetPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = b.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Orçamento %s - %s", b.CustomLink, b.Request.PropertyName)
	}
	reqMap["transaction_amount"] = charge
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BudgetPayment{}, err
	}

	var (
		providerID     string
		providerStatus string
		providerResp   json.RawMessage
	)
	if mock {
		lg.Info().Str("budget_id", b.ID).Msg("mock mode, skipping payment gateway")
		providerID, providerStatus, providerResp, err = u.mockPayment(reqMap)
	} else {
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		err = classifyGatewayError(err)
	}
	if err != nil {
		lg.Error().Err(err).Str("budget_id", b.ID).Msg("payment gateway failed")
		return entities.BudgetPayment{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		lg.Warn().Err(err).Str("budget_id", b.ID).Msg("provider response is not an object")
	}

	p := entities.BudgetPayment{
		ID:           providerID,
		BudgetID:     b.ID,
		Amount:       charge,
		Date:         u.now(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	lg.Info().
		Str("budget_id", b.ID).
		Str("payment_id", created.ID).
		Str("status", string(created.Status)).
		Str("amount", amount.StringFixed(2)).
		Msg("budget payment stored")
	return created, nil
}

func (u *BudgetPaymentUseCase) mockPayment(req map[string]any) (string, string, json.RawMessage, error) {
	now := u.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, in sandbox, a test e-mail when
// neither payer.id nor payer.email was sent.
func (u *BudgetPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		if m["payer"] != nil {
			return
		}
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.settings.TestPayerEmail != "":
		payer["email"] = u.settings.TestPayerEmail
	case u.settings.sandbox():
		payer["email"] = "test_user_br@testuser.com"
	}
}

// mapSandboxPayer swaps the configured sandbox payer user id for its e-mail,
// which is what the sandbox accepts.
func (u *BudgetPaymentUseCase) mapSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.settings.sandbox() || u.settings.TestPayerUserID == "" || u.settings.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.settings.TestPayerUserID {
		return
	}
	payer["email"] = u.settings.TestPayerEmail
	delete(payer, "id")
}

func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}

func (u *BudgetPaymentUseCase) GetByID(ctx context.Context, ownerID, id string) (entities.BudgetPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetPayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if p.ID == "" {
		return entities.BudgetPayment{}, ErrBudgetPaymentNotFound
	}
	if _, err := u.ownedBudget(ctx, ownerID, p.BudgetID); err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			return entities.BudgetPayment{}, ErrBudgetPaymentNotFound
		}
		return entities.BudgetPayment{}, err
	}
	return p, nil
}

func (u *BudgetPaymentUseCase) ListByBudgetID(ctx context.Context, ownerID, budgetID string) ([]entities.BudgetPayment, error) {
	b, err := u.ownedBudget(ctx, ownerID, budgetID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByBudgetID(ctx, b.ID)
}
