package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for storefront QR code generation and
// parsing. Businesses print these codes so customers can jump straight to the
// storefront page.
type QRCodeService interface {
	// GenerateStorefrontQR generates a QR code pointing at a business storefront.
	GenerateStorefrontQR(businessID uuid.UUID) ([]byte, error)

	// ParseStorefrontQR parses scanned QR data and returns the business ID.
	ParseStorefrontQR(qrData string) (uuid.UUID, error)
}
