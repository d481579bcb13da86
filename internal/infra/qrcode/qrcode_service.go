// Package qrcode generates and parses storefront QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	BusinessID string `json:"business_id"`
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateStorefrontQR generates a QR code pointing at a business storefront
func (s *qrcodeService) GenerateStorefrontQR(businessID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		BusinessID: businessID.String(),
		Type:       "storefront",
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/store/%s", s.baseURL, businessID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseStorefrontQR parses scanned QR data and returns the business ID
func (s *qrcodeService) ParseStorefrontQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "storefront" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	businessID, err := uuid.Parse(data.BusinessID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	return businessID, nil
}
