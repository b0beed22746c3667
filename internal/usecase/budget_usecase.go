package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/domain/pricing"
	"ongeo_api/internal/logger"
	"ongeo_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound          = errors.New("budget not found")
	ErrInvalidBudgetID         = errors.New("invalid budget id")
	ErrInvalidOwner            = errors.New("invalid owner")
	ErrInvalidCustomLink       = errors.New("invalid custom link")
	ErrCustomLinkTaken         = errors.New("custom link already in use")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrConfirmationRequired    = errors.New("confirmation required")
	ErrRequestInFlight         = errors.New("request already in progress")
	ErrClientNotFound          = errors.New("client not found")
)

const maxLinkAttempts = 5

// CreateBudgetInput is the authenticated budget form submission.
type CreateBudgetInput struct {
	Request        entities.BudgetRequest
	ClientID       string
	IdempotencyKey string
}

// BudgetTotals is the money view of a budget.
//
// Display follows the breakdown > items > recorded precedence and includes
// the additional items; ItemsTotal is the item overlay grand total, computed
// independently.
type BudgetTotals struct {
	Display         pricing.Money
	ItemsTotal      decimal.Decimal
	AdditionalTotal decimal.Decimal
	Groups          []pricing.ItemGroup
}

// IBudgetUseCase exposes the budget store operations.
type IBudgetUseCase interface {
	Calculate(ctx context.Context, req entities.BudgetRequest) (entities.BudgetResult, error)
	Create(ctx context.Context, ownerID string, in CreateBudgetInput) (entities.Budget, error)
	Get(ctx context.Context, ownerID, id string) (entities.Budget, error)
	List(ctx context.Context, ownerID string, status entities.BudgetStatus) ([]entities.Budget, error)
	Edit(ctx context.Context, ownerID, id string, req entities.BudgetRequest) (entities.Budget, error)
	SetCustomLink(ctx context.Context, ownerID, id, customLink string) (entities.Budget, error)
	Delete(ctx context.Context, ownerID, id string, confirmed bool) error
	Totals(ctx context.Context, ownerID, id string, additional []entities.AdditionalItem) (BudgetTotals, error)
	GetByCustomLink(ctx context.Context, customLink string) (entities.Budget, error)
	Approve(ctx context.Context, customLink string) (entities.Budget, error)
	Reject(ctx context.Context, customLink, comment string) (entities.Budget, error)
	Resubmit(ctx context.Context, customLink string, req entities.BudgetRequest) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo        interfaces.IBudgetRepository
	items       interfaces.IBudgetItemRepository
	clients     interfaces.IClientRepository
	calculator  interfaces.IPriceCalculator
	idempotency interfaces.IIdempotencyRepository
	idemTTL     time.Duration

	now   func() time.Time
	newID func() string
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	items interfaces.IBudgetItemRepository,
	clients interfaces.IClientRepository,
	calculator interfaces.IPriceCalculator,
	idempotency interfaces.IIdempotencyRepository,
	idemTTL time.Duration,
) *BudgetUseCase {
	return &BudgetUseCase{
		repo:        repo,
		items:       items,
		clients:     clients,
		calculator:  calculator,
		idempotency: idempotency,
		idemTTL:     idemTTL,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

func budgetLog() *zerolog.Logger {
	l := logger.Component("budget.usecase")
	return &l
}

// Calculate validates the request and asks the external calculator for a
// price without persisting anything.
func (u *BudgetUseCase) Calculate(ctx context.Context, req entities.BudgetRequest) (entities.BudgetResult, error) {
	req = normalizeBudgetRequest(req)
	if err := validateBudgetRequest(req); err != nil {
		return entities.BudgetResult{}, err
	}
	return u.calculate(ctx, req)
}

func (u *BudgetUseCase) calculate(ctx context.Context, req entities.BudgetRequest) (entities.BudgetResult, error) {
	result, err := u.calculator.Calculate(ctx, req)
	if err != nil {
		budgetLog().Warn().Err(err).Str("city", req.City).Int("vertices_count", req.VerticesCount).Msg("calculator failed")
		return entities.BudgetResult{}, err
	}
	return result, nil
}

func (u *BudgetUseCase) Create(ctx context.Context, ownerID string, in CreateBudgetInput) (created entities.Budget, err error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Budget{}, ErrInvalidOwner
	}
	req := normalizeBudgetRequest(in.Request)
	if err := validateBudgetRequest(req); err != nil {
		return entities.Budget{}, err
	}

	var existing entities.Client
	if clientID := strings.TrimSpace(in.ClientID); clientID != "" {
		existing, err = u.ownedClient(ctx, ownerID, clientID)
		if err != nil {
			return entities.Budget{}, err
		}
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key != "" && u.idempotency != nil {
		rec, err := u.idempotency.Reserve(ctx, ownerID, key, u.idemTTL)
		if err != nil {
			return entities.Budget{}, err
		}
		if !rec.Reserved {
			if rec.BudgetID == "" {
				return entities.Budget{}, ErrRequestInFlight
			}
			budgetLog().Info().Str("owner_id", ownerID).Str("budget_id", rec.BudgetID).Msg("idempotent replay")
			return u.Get(ctx, ownerID, rec.BudgetID)
		}
		defer func() {
			if err != nil {
				if relErr := u.idempotency.Release(context.WithoutCancel(ctx), ownerID, key); relErr != nil {
					budgetLog().Error().Err(relErr).Str("owner_id", ownerID).Msg("failed releasing idempotency key")
				}
				return
			}
			if cErr := u.idempotency.Complete(context.WithoutCancel(ctx), ownerID, key, created.ID); cErr != nil {
				budgetLog().Error().Err(cErr).Str("owner_id", ownerID).Str("budget_id", created.ID).Msg("failed completing idempotency key")
			}
		}()
	}

	result, err := u.calculate(ctx, req)
	if err != nil {
		return entities.Budget{}, err
	}

	return u.persist(ctx, ownerID, "", req, result, existing)
}

// CreateFromFormLink creates a budget submitted through a public intake
// form. The budget belongs to the form owner; a client with the same e-mail
// is reused when one exists.
func (u *BudgetUseCase) CreateFromFormLink(ctx context.Context, link entities.BudgetFormLink, req entities.BudgetRequest) (entities.Budget, error) {
	req = normalizeBudgetRequest(req)
	if err := validateBudgetRequest(req); err != nil {
		return entities.Budget{}, err
	}

	existing, err := u.clients.FindByEmail(ctx, link.UserID, req.ClientEmail)
	if err != nil {
		return entities.Budget{}, err
	}
	if !existing.IsActive {
		existing = entities.Client{}
	}

	result, err := u.calculate(ctx, req)
	if err != nil {
		return entities.Budget{}, err
	}
	return u.persist(ctx, link.UserID, link.ID, req, result, existing)
}

func (u *BudgetUseCase) persist(
	ctx context.Context,
	ownerID, formLinkID string,
	req entities.BudgetRequest,
	result entities.BudgetResult,
	existing entities.Client,
) (entities.Budget, error) {
	now := u.now()
	b := entities.Budget{
		ID:         u.newID(),
		UserID:     ownerID,
		FormLinkID: formLinkID,
		Request:    req,
		Result:     result,
		Status:     entities.BudgetStatusActive,
		CustomLink: entities.DefaultCustomLink(now),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if total, ok := result.CalculatedTotal(); ok {
		b.Total = entities.AmountPtr(total)
		b.TotalPrice = entities.AmountPtr(total)
	}

	creation := interfaces.BudgetCreation{}
	if existing.ID != "" {
		b.ClientID = existing.ID
		creation.ExistingClientID = existing.ID
	} else {
		c := entities.ClientFromRequest(u.newID(), ownerID, req, b.RecordedTotal(), now)
		b.ClientID = c.ID
		creation.NewClient = &c
	}

	base := b.CustomLink
	for attempt := 1; ; attempt++ {
		creation.Budget = b
		created, err := u.repo.Create(ctx, creation)
		if err == nil {
			budgetLog().Info().
				Str("owner_id", ownerID).
				Str("budget_id", created.ID).
				Str("client_id", created.ClientID).
				Bool("new_client", creation.NewClient != nil).
				Str("custom_link", created.CustomLink).
				Msg("budget created")
			return created, nil
		}
		var conflict *interfaces.UniqueConflictError
		if !errors.As(err, &conflict) || conflict.Scope != interfaces.ScopeBudgetLink || attempt >= maxLinkAttempts {
			return entities.Budget{}, err
		}
		b.CustomLink = fmt.Sprintf("%s-%d", base, attempt+1)
	}
}

func (u *BudgetUseCase) ownedClient(ctx context.Context, ownerID, clientID string) (entities.Client, error) {
	c, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" || c.UserID != ownerID || !c.IsActive {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *BudgetUseCase) Get(ctx context.Context, ownerID, id string) (entities.Budget, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Budget{}, ErrInvalidOwner
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" || b.UserID != ownerID {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// List returns the owner's budgets, newest first. An empty status lists all.
func (u *BudgetUseCase) List(ctx context.Context, ownerID string, status entities.BudgetStatus) ([]entities.Budget, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	if status != "" && !status.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"status": codeInvalid}}
	}

	all, err := u.repo.ListByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Budget, 0, len(all))
	for _, b := range all {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

// Edit replaces the stored request snapshot. The price is not recalculated.
func (u *BudgetUseCase) Edit(ctx context.Context, ownerID, id string, req entities.BudgetRequest) (entities.Budget, error) {
	req = normalizeBudgetRequest(req)
	if err := validateBudgetRequest(req); err != nil {
		return entities.Budget{}, err
	}
	b, err := u.Get(ctx, ownerID, id)
	if err != nil {
		return entities.Budget{}, err
	}

	updated, err := u.repo.UpdateRequest(ctx, b.ID, req)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

// SetCustomLink changes the public link. Setting the current value is a
// no-op; a link used by another budget is rejected without any suffixing.
func (u *BudgetUseCase) SetCustomLink(ctx context.Context, ownerID, id, customLink string) (entities.Budget, error) {
	customLink = strings.ToLower(strings.TrimSpace(customLink))
	if !validSlug(customLink) {
		return entities.Budget{}, ErrInvalidCustomLink
	}
	b, err := u.Get(ctx, ownerID, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.CustomLink == customLink {
		return b, nil
	}

	updated, err := u.repo.UpdateCustomLink(ctx, b.ID, b.CustomLink, customLink)
	if err != nil {
		if errors.Is(err, interfaces.ErrUniqueConflict) {
			return entities.Budget{}, ErrCustomLinkTaken
		}
		if errors.Is(err, interfaces.ErrPreconditionFailed) {
			return entities.Budget{}, ErrBudgetNotFound
		}
		return entities.Budget{}, err
	}
	budgetLog().Info().Str("budget_id", b.ID).Str("from", b.CustomLink).Str("to", customLink).Msg("custom link changed")
	return updated, nil
}

func (u *BudgetUseCase) Delete(ctx context.Context, ownerID, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	b, err := u.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, b); err != nil {
		return err
	}
	if err := u.items.DeleteByBudgetID(ctx, b.ID); err != nil {
		budgetLog().Error().Err(err).Str("budget_id", b.ID).Msg("budget deleted but items cleanup failed")
	}
	budgetLog().Info().Str("owner_id", b.UserID).Str("budget_id", b.ID).Msg("budget deleted")
	return nil
}

// Totals computes the money view of a budget. Additional items only take
// part in the computation; they are never stored.
func (u *BudgetUseCase) Totals(ctx context.Context, ownerID, id string, additional []entities.AdditionalItem) (BudgetTotals, error) {
	b, err := u.Get(ctx, ownerID, id)
	if err != nil {
		return BudgetTotals{}, err
	}
	items, err := u.items.ListByBudgetID(ctx, b.ID)
	if err != nil {
		return BudgetTotals{}, err
	}
	additional = entities.WithLineTotals(additional)
	groups, itemsTotal := pricing.GroupItems(items)
	return BudgetTotals{
		Display:         pricing.DisplayTotal(b, items, additional),
		ItemsTotal:      itemsTotal,
		AdditionalTotal: pricing.AdditionalTotal(additional),
		Groups:          groups,
	}, nil
}

// GetByCustomLink resolves a public quote link. Drafts are not public.
func (u *BudgetUseCase) GetByCustomLink(ctx context.Context, customLink string) (entities.Budget, error) {
	customLink = strings.ToLower(strings.TrimSpace(customLink))
	if customLink == "" {
		return entities.Budget{}, ErrInvalidCustomLink
	}
	b, err := u.repo.GetByCustomLink(ctx, customLink)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" || b.Status == entities.BudgetStatusDraft {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

var decidableStatuses = []entities.BudgetStatus{entities.BudgetStatusActive, entities.BudgetStatusResubmitted}

func (u *BudgetUseCase) Approve(ctx context.Context, customLink string) (entities.Budget, error) {
	return u.transition(ctx, customLink, interfaces.StatusChange{From: decidableStatuses, To: entities.BudgetStatusApproved})
}

func (u *BudgetUseCase) Reject(ctx context.Context, customLink, comment string) (entities.Budget, error) {
	return u.transition(ctx, customLink, interfaces.StatusChange{
		From:             decidableStatuses,
		To:               entities.BudgetStatusRejected,
		RejectionComment: strings.TrimSpace(comment),
	})
}

func (u *BudgetUseCase) transition(ctx context.Context, customLink string, change interfaces.StatusChange) (entities.Budget, error) {
	b, err := u.GetByCustomLink(ctx, customLink)
	if err != nil {
		return entities.Budget{}, err
	}
	if !slices.Contains(change.From, b.Status) {
		return entities.Budget{}, ErrInvalidStatusTransition
	}
	change.At = u.now()

	updated, err := u.repo.UpdateStatus(ctx, b.ID, change)
	if err != nil {
		if errors.Is(err, interfaces.ErrPreconditionFailed) {
			return entities.Budget{}, ErrInvalidStatusTransition
		}
		return entities.Budget{}, err
	}
	budgetLog().Info().Str("budget_id", b.ID).Str("from", string(b.Status)).Str("to", string(change.To)).Msg("budget status changed")
	return updated, nil
}

// Resubmit reprices a rejected budget with corrected data and marks it
// resubmitted.
func (u *BudgetUseCase) Resubmit(ctx context.Context, customLink string, req entities.BudgetRequest) (entities.Budget, error) {
	req = normalizeBudgetRequest(req)
	if err := validateBudgetRequest(req); err != nil {
		return entities.Budget{}, err
	}
	b, err := u.GetByCustomLink(ctx, customLink)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusRejected {
		return entities.Budget{}, ErrInvalidStatusTransition
	}

	result, err := u.calculate(ctx, req)
	if err != nil {
		return entities.Budget{}, err
	}

	updated, err := u.repo.ApplyResubmission(ctx, b, req, result, u.now())
	if err != nil {
		if errors.Is(err, interfaces.ErrPreconditionFailed) {
			return entities.Budget{}, ErrInvalidStatusTransition
		}
		return entities.Budget{}, err
	}
	budgetLog().Info().Str("budget_id", b.ID).Msg("budget resubmitted")
	return updated, nil
}
