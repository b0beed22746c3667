package interfaces

import (
	"context"

	"ongeo_api/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Counters (total_budgets, total_spent) are not written here; they only move
// inside budget transactions.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	ListByUserID(ctx context.Context, userID string, includeInactive bool) ([]entities.Client, error)
	FindByEmail(ctx context.Context, userID, email string) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Client, error)
}
