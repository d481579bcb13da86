package usecase

import (
	"context"
	"io"

	"bazaar/internal/domain/entity"
	"bazaar/internal/listing"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BusinessInput defines the editable fields of a business.
type BusinessInput struct {
	Name        string
	Description string
	Type        entity.BusinessType
	Category    string
	Phone       string
	Email       string
	Address     string
	Latitude    float64
	Longitude   float64
}

// BusinessListQuery carries the catalog filter and sort criteria parsed from
// query parameters. Zero values disable the corresponding filter.
type BusinessListQuery struct {
	Search    string
	Type      string // business type, "all" or empty disables
	Category  string // category label, "all" or empty disables
	MinRating *float64
	Active    listing.TriState
	Sort      string // rating | newest | name | nearest
	Latitude  *float64
	Longitude *float64
	Page      int
	PageSize  int
}

// BusinessDraftInput carries one step of the multi-step business registration
// form. Nil fields leave the saved draft value untouched, so any step can be
// submitted on its own and in any order.
type BusinessDraftInput struct {
	Name        *string
	Description *string
	Type        *string
	Category    *string
	Phone       *string
	Email       *string
	Address     *string
	Latitude    *float64
	Longitude   *float64
	Step        *int
}

// MediaUpload carries an uploaded image stream.
type MediaUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// --- Output DTOs ---

// BusinessListOutput is a filtered, sorted and paginated catalog slice.
type BusinessListOutput struct {
	Items    []*entity.Business `json:"items"`
	Total    int                `json:"total"` // matches before pagination
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// BusinessUsecase defines the interface for business management operations.
type BusinessUsecase interface {
	// CreateBusiness registers a new storefront for a merchant. A saved
	// registration draft is discarded on success.
	CreateBusiness(ctx context.Context, ownerID uuid.UUID, input *BusinessInput) (*entity.Business, error)

	// SaveBusinessDraft merges one form step into the merchant's registration
	// draft. No completeness checks apply until the final submit.
	SaveBusinessDraft(ctx context.Context, ownerID uuid.UUID, input *BusinessDraftInput) (*entity.BusinessDraft, error)

	// GetBusinessDraft retrieves the merchant's saved registration draft.
	GetBusinessDraft(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessDraft, error)

	// DiscardBusinessDraft removes the merchant's saved registration draft.
	DiscardBusinessDraft(ctx context.Context, ownerID uuid.UUID) error

	// GetBusiness retrieves one business by ID.
	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// ListBusinesses applies the query criteria to the full catalog.
	ListBusinesses(ctx context.Context, query *BusinessListQuery) (*BusinessListOutput, error)

	// GetOwnerBusinesses retrieves all businesses of one merchant.
	GetOwnerBusinesses(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error)

	// UpdateBusiness edits a business owned by the caller.
	UpdateBusiness(ctx context.Context, ownerID, businessID uuid.UUID, input *BusinessInput) (*entity.Business, error)

	// SetBusinessStatus toggles whether the business accepts orders.
	SetBusinessStatus(ctx context.Context, ownerID, businessID uuid.UUID, isActive bool) error

	// DeleteBusiness removes a business owned by the caller.
	DeleteBusiness(ctx context.Context, ownerID, businessID uuid.UUID) error

	// GenerateStorefrontQR returns a PNG QR code pointing at the storefront.
	GenerateStorefrontQR(ctx context.Context, businessID uuid.UUID) ([]byte, error)

	// UploadBusinessImage stores a cover image and sets it on the business.
	UploadBusinessImage(ctx context.Context, ownerID, businessID uuid.UUID, upload *MediaUpload) (string, error)
}
