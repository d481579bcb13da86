package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessDraftRepository persists in-progress business registrations.
// A merchant holds at most one draft at a time.
type BusinessDraftRepository interface {
	// UpsertBusinessDraft inserts the draft or replaces the merchant's
	// existing one.
	UpsertBusinessDraft(ctx context.Context, draft *entity.BusinessDraft) error

	// FindBusinessDraftByOwner retrieves the merchant's saved draft.
	FindBusinessDraftByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessDraft, error)

	// DeleteBusinessDraft removes the merchant's saved draft.
	DeleteBusinessDraft(ctx context.Context, ownerID uuid.UUID) error
}
