package interfaces

import (
	"context"
	"time"

	"ongeo_api/internal/domain/entities"
)

// BudgetCreation is everything written atomically when a budget is created:
// the budget, its custom link key and either a brand new client or an atomic
// counter increment on an existing one.
type BudgetCreation struct {
	Budget           entities.Budget
	NewClient        *entities.Client
	ExistingClientID string
}

// StatusChange describes a status transition and the dates it stamps.
type StatusChange struct {
	From             []entities.BudgetStatus
	To               entities.BudgetStatus
	At               time.Time
	RejectionComment string
}

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Lookups return a zero Budget (empty ID) when nothing matches.
type IBudgetRepository interface {
	Create(ctx context.Context, c BudgetCreation) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetByCustomLink(ctx context.Context, customLink string) (entities.Budget, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Budget, error)
	UpdateRequest(ctx context.Context, id string, req entities.BudgetRequest) (entities.Budget, error)
	// ApplyResubmission stores the new request/result of a rejected budget and
	// moves the client's total_spent by the difference between both totals.
	ApplyResubmission(ctx context.Context, current entities.Budget, req entities.BudgetRequest, result entities.BudgetResult, at time.Time) (entities.Budget, error)
	UpdateStatus(ctx context.Context, id string, change StatusChange) (entities.Budget, error)
	UpdateCustomLink(ctx context.Context, id, currentLink, newLink string) (entities.Budget, error)
	// Delete removes the budget and its link key and decrements the client
	// counters in one transaction.
	Delete(ctx context.Context, b entities.Budget) error
}
