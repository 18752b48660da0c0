package interfaces

import (
	"context"
	"construction_quote/internal/domain/entities"
)

// ILeadRepository abstracts the leads collection.
//
// Create is a single insert: no retries and no idempotency key, so a repeated
// submission produces a second lead.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
	Delete(ctx context.Context, id string) (bool, error)
}
