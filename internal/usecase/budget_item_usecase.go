package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/domain/pricing"
	"ongeo_api/internal/logger"
	"ongeo_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetItemNotFound = errors.New("budget item not found")
	ErrInvalidItemID      = errors.New("invalid budget item id")
)

// BudgetItemInput is the editable part of a budget item.
type BudgetItemInput struct {
	ItemType    entities.ItemType `json:"item_type" validate:"oneof=servico_geo insumo deslocamento hospedagem alimentacao outros"`
	Description string            `json:"description" validate:"required"`
	Quantity    entities.Amount   `json:"quantity" validate:"gt=0"`
	Unit        string            `json:"unit"`
	UnitPrice   entities.Amount   `json:"unit_price" validate:"gte=0"`
	Notes       string            `json:"notes"`
}

// ItemOverlay is the grouped view of the persisted items of a budget.
type ItemOverlay struct {
	Items  []entities.BudgetItem
	Groups []pricing.ItemGroup
	Total  decimal.Decimal
}

type IBudgetItemUseCase interface {
	List(ctx context.Context, ownerID, budgetID string) (ItemOverlay, error)
	Create(ctx context.Context, ownerID, budgetID string, in BudgetItemInput) (entities.BudgetItem, error)
	Update(ctx context.Context, ownerID, itemID string, in BudgetItemInput) (entities.BudgetItem, error)
	Delete(ctx context.Context, ownerID, itemID string, confirmed bool) error
	ListTemplates(ctx context.Context) ([]entities.BudgetItemTemplate, error)
}

type BudgetItemUseCase struct {
	budgets   interfaces.IBudgetRepository
	repo      interfaces.IBudgetItemRepository
	templates interfaces.IBudgetItemTemplateRepository

	now   func() time.Time
	newID func() string
}

var _ IBudgetItemUseCase = (*BudgetItemUseCase)(nil)

func NewBudgetItemUseCase(budgets interfaces.IBudgetRepository, repo interfaces.IBudgetItemRepository, templates interfaces.IBudgetItemTemplateRepository) *BudgetItemUseCase {
	return &BudgetItemUseCase{
		budgets:   budgets,
		repo:      repo,
		templates: templates,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func normalizeItemInput(in BudgetItemInput) BudgetItemInput {
	in.Description = strings.TrimSpace(in.Description)
	in.Unit = strings.TrimSpace(in.Unit)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.ItemType == "" {
		in.ItemType = entities.ItemTypeOutros
	}
	if in.Unit == "" {
		in.Unit = "un"
	}
	return in
}

func validateItemInput(in BudgetItemInput) error {
	return validateStruct(in)
}

func (u *BudgetItemUseCase) ownedBudget(ctx context.Context, ownerID, budgetID string) (entities.Budget, error) {
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

func (u *BudgetItemUseCase) ownedItem(ctx context.Context, ownerID, itemID string) (entities.BudgetItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.BudgetItem{}, ErrInvalidItemID
	}
	it, err := u.repo.GetByID(ctx, itemID)
	if err != nil {
		return entities.BudgetItem{}, err
	}
	if it.ID == "" {
		return entities.BudgetItem{}, ErrBudgetItemNotFound
	}
	if _, err := u.ownedBudget(ctx, ownerID, it.BudgetID); err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			return entities.BudgetItem{}, ErrBudgetItemNotFound
		}
		return entities.BudgetItem{}, err
	}
	return it, nil
}

func (u *BudgetItemUseCase) List(ctx context.Context, ownerID, budgetID string) (ItemOverlay, error) {
	b, err := u.ownedBudget(ctx, ownerID, budgetID)
	if err != nil {
		return ItemOverlay{}, err
	}
	items, err := u.repo.ListByBudgetID(ctx, b.ID)
	if err != nil {
		return ItemOverlay{}, err
	}
	groups, total := pricing.GroupItems(items)
	return ItemOverlay{Items: items, Groups: groups, Total: total}, nil
}

func (u *BudgetItemUseCase) Create(ctx context.Context, ownerID, budgetID string, in BudgetItemInput) (entities.BudgetItem, error) {
	in = normalizeItemInput(in)
	if err := validateItemInput(in); err != nil {
		return entities.BudgetItem{}, err
	}
	b, err := u.ownedBudget(ctx, ownerID, budgetID)
	if err != nil {
		return entities.BudgetItem{}, err
	}

	now := u.now()
	it := entities.BudgetItem{
		ID:          u.newID(),
		BudgetID:    b.ID,
		ItemType:    in.ItemType,
		Description: in.Description,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		UnitPrice:   in.UnitPrice,
		TotalPrice:  entities.LineTotal(in.Quantity, in.UnitPrice),
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, it)
}

func (u *BudgetItemUseCase) Update(ctx context.Context, ownerID, itemID string, in BudgetItemInput) (entities.BudgetItem, error) {
	in = normalizeItemInput(in)
	if err := validateItemInput(in); err != nil {
		return entities.BudgetItem{}, err
	}
	it, err := u.ownedItem(ctx, ownerID, itemID)
	if err != nil {
		return entities.BudgetItem{}, err
	}

	it.ItemType = in.ItemType
	it.Description = in.Description
	it.Quantity = in.Quantity
	it.Unit = in.Unit
	it.UnitPrice = in.UnitPrice
	it.TotalPrice = entities.LineTotal(in.Quantity, in.UnitPrice)
	it.Notes = in.Notes
	it.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, it)
	if err != nil {
		if errors.Is(err, interfaces.ErrPreconditionFailed) {
			return entities.BudgetItem{}, ErrBudgetItemNotFound
		}
		return entities.BudgetItem{}, err
	}
	return updated, nil
}

func (u *BudgetItemUseCase) Delete(ctx context.Context, ownerID, itemID string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	it, err := u.ownedItem(ctx, ownerID, itemID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, it.ID); err != nil {
		return err
	}
	l := logger.Component("budget_item.usecase")
	l.Info().Str("budget_id", it.BudgetID).Str("item_id", it.ID).Msg("budget item deleted")
	return nil
}

func (u *BudgetItemUseCase) ListTemplates(ctx context.Context) ([]entities.BudgetItemTemplate, error) {
	return u.templates.ListActive(ctx)
}
