package interfaces

import (
	"context"
	"time"

	"ongeo_api/internal/domain/entities"
)

// IFormLinkRepository abstracts DynamoDB persistence for BudgetFormLink.
//
// Create and Update return *UniqueConflictError when the slug or the
// one-link-per-user guard rejects the write.
type IFormLinkRepository interface {
	Create(ctx context.Context, l entities.BudgetFormLink) (entities.BudgetFormLink, error)
	GetByUserID(ctx context.Context, userID string) (entities.BudgetFormLink, error)
	GetBySlug(ctx context.Context, slug string) (entities.BudgetFormLink, error)
	Update(ctx context.Context, l entities.BudgetFormLink, previousSlug string) (entities.BudgetFormLink, error)
	SetActive(ctx context.Context, id string, active bool) (entities.BudgetFormLink, error)
	RecordView(ctx context.Context, id string, at time.Time) error
	RecordSubmission(ctx context.Context, id string) error
}
