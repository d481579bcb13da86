package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/listing"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	businessRepo repository.BusinessRepository
	mediaStorage service.MediaStorage
	config       *config.Config
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	BusinessRepo repository.BusinessRepository
	MediaStorage service.MediaStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		businessRepo: params.BusinessRepo,
		mediaStorage: params.MediaStorage,
		config:       params.Config,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a product to a business owned by the caller.
func (srv *productService) CreateProduct(ctx context.Context, ownerID, businessID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.checkOwnership(ctx, ownerID, businessID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.New(),
		BusinessID:  businessID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		InStock:     true,
		IsVeg:       input.IsVeg,
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("business_id", businessID.String()),
	)

	return product, nil
}

// GetProduct retrieves one product by ID.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return product, nil
}

// ListBusinessProducts applies the query criteria to a business's catalog.
func (srv *productService) ListBusinessProducts(ctx context.Context, businessID uuid.UUID, query *usecase.ProductListQuery) (*usecase.ProductListOutput, error) {
	products, err := srv.productRepo.FindProductsByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by business")
	}

	criteria := buildProductCriteria(query)
	matched := listing.Apply(products, criteria)

	page, pageSize := pageBoundsWithConfig(srv.config, query.Page, query.PageSize)

	return &usecase.ProductListOutput{
		Items:    listing.Page(matched, page, pageSize),
		Total:    len(matched),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// buildProductCriteria translates the query into listing descriptors.
func buildProductCriteria(query *usecase.ProductListQuery) listing.Criteria[*entity.Product] {
	criteria := listing.Criteria[*entity.Product]{
		Filters: []listing.Filter[*entity.Product]{
			listing.Match[*entity.Product]{
				Value: query.Category,
				Key:   func(p *entity.Product) string { return p.Category },
			},
			listing.Range[*entity.Product]{
				Min: query.MinPrice,
				Max: query.MaxPrice,
				Key: func(p *entity.Product) (float64, bool) { return p.Price, true },
			},
			listing.Flag[*entity.Product]{
				State: query.VegOnly,
				Key:   func(p *entity.Product) bool { return p.IsVeg },
			},
			listing.Flag[*entity.Product]{
				State: query.InStock,
				Key:   func(p *entity.Product) bool { return p.InStock },
			},
		},
		Search: &listing.Search[*entity.Product]{
			Term: query.Search,
			Fields: []func(*entity.Product) string{
				func(p *entity.Product) string { return p.Name },
				func(p *entity.Product) string { return p.Description },
			},
		},
	}

	switch query.Sort {
	case "price-low":
		criteria.Sort = listing.ByNumber(func(p *entity.Product) (float64, bool) { return p.Price, true }, false)
	case "price-high":
		criteria.Sort = listing.ByNumber(func(p *entity.Product) (float64, bool) { return p.Price, true }, true)
	case "name":
		criteria.Sort = listing.ByString(func(p *entity.Product) string { return p.Name }, false)
	case "newest", "":
		criteria.Sort = listing.ByTime(func(p *entity.Product) time.Time { return p.CreatedAt }, true)
	}

	return criteria
}

// UpdateProduct edits a product on a business owned by the caller.
func (srv *productService) UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Category = input.Category
	product.Price = input.Price
	product.IsVeg = input.IsVeg

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// SetProductStock toggles availability.
func (srv *productService) SetProductStock(ctx context.Context, ownerID, productID uuid.UUID, inStock bool) error {
	if _, err := srv.ownedProduct(ctx, ownerID, productID); err != nil {
		return err
	}

	if err := srv.productRepo.UpdateProductStock(ctx, productID, inStock); err != nil {
		return errors.Wrap(err, "failed to update product stock")
	}

	return nil
}

// DeleteProduct removes a product on a business owned by the caller.
func (srv *productService) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {
	if _, err := srv.ownedProduct(ctx, ownerID, productID); err != nil {
		return err
	}

	if err := srv.productRepo.DeleteProduct(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// UploadProductImage stores a product image and sets it on the product.
func (srv *productService) UploadProductImage(ctx context.Context, ownerID, productID uuid.UUID, upload *usecase.MediaUpload) (string, error) {
	product, err := srv.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("products/%s/image%s", productID, path.Ext(upload.Filename))
	url, err := srv.mediaStorage.Save(ctx, key, upload.ContentType, upload.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store product image")
	}

	product.ImageURL = url
	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return "", errors.Wrap(err, "failed to update product image URL")
	}

	return url, nil
}

// ownedProduct loads a product and checks the caller owns its business.
func (srv *productService) ownedProduct(ctx context.Context, ownerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	if err := srv.checkOwnership(ctx, ownerID, product.BusinessID); err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *productService) checkOwnership(ctx context.Context, ownerID, businessID uuid.UUID) error {
	business, err := srv.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to find business by ID")
	}

	if business.OwnerID != ownerID {
		return domainerrors.ErrNotBusinessOwner
	}

	return nil
}
