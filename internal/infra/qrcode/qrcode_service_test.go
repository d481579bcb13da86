package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://bazaar.example.com")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateStorefrontQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://bazaar.example.com")
	businessID := uuid.New()

	qrBytes, err := service.GenerateStorefrontQR(businessID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateStorefrontQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "")
			businessID := uuid.New()

			qrBytes, err := service.GenerateStorefrontQR(businessID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseStorefrontQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	businessID := uuid.New()

	data := QRCodeData{
		BusinessID: businessID.String(),
		Type:       "storefront",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseStorefrontQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, businessID, parsedID)
}

func TestQRCodeService_ParseStorefrontQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.ParseStorefrontQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseStorefrontQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	data := QRCodeData{
		BusinessID: uuid.New().String(),
		Type:       "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseStorefrontQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseStorefrontQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	data := QRCodeData{
		BusinessID: "not-a-valid-uuid",
		Type:       "storefront",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseStorefrontQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse business ID")
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://bazaar.example.com")
	originalBusinessID := uuid.New()

	qrBytes, err := service.GenerateStorefrontQR(originalBusinessID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// The PNG cannot be decoded back here; a scanner would hand the JSON
	// string to ParseStorefrontQR, so feed it directly.
	data := QRCodeData{
		BusinessID: originalBusinessID.String(),
		Type:       "storefront",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseStorefrontQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, originalBusinessID, parsedID)
}
