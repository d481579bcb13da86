package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	NewOrderRepository() OrderRepository
	NewProductRepository() ProductRepository
	NewPromoCodeRepository() PromoCodeRepository
	NewLoyaltyRepository() LoyaltyRepository
	NewPaymentRepository() PaymentRepository
	NewBusinessRepository() BusinessRepository
	NewReviewRepository() ReviewRepository
}

// TransactionManager runs a function inside a single database transaction.
// Every repository obtained from the factory joins that transaction; an error
// from the callback rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
