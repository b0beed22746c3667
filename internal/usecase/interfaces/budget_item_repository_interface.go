package interfaces

import (
	"context"

	"ongeo_api/internal/domain/entities"
)

// IBudgetItemRepository abstracts DynamoDB persistence for BudgetItem.
type IBudgetItemRepository interface {
	Create(ctx context.Context, it entities.BudgetItem) (entities.BudgetItem, error)
	GetByID(ctx context.Context, id string) (entities.BudgetItem, error)
	// ListByBudgetID returns items in insertion order (created_at ascending).
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetItem, error)
	Update(ctx context.Context, it entities.BudgetItem) (entities.BudgetItem, error)
	Delete(ctx context.Context, id string) error
	DeleteByBudgetID(ctx context.Context, budgetID string) error
}

// IBudgetItemTemplateRepository reads item presets.
type IBudgetItemTemplateRepository interface {
	ListActive(ctx context.Context) ([]entities.BudgetItemTemplate, error)
}
