package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, b []byte) {
	t.Helper()
	require.Greater(t, len(b), 4)
	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, b[:4])
}

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
		{"Zero size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Oversized QR", 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "")

			qrBytes, err := service.GenerateShareQR("https://www.2die4livefoods.com/products/aktivierte-bio-mandeln")
			require.NoError(t, err)
			assertPNG(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateShareQR_EmptyTarget(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateShareQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ShareURL(t *testing.T) {
	assert.Empty(t, NewQRCodeService(256, "M", "").ShareURL("almond"))
	assert.Equal(t, "https://plan.example.com/nuts/almond",
		NewQRCodeService(256, "M", "https://plan.example.com/").ShareURL("almond"))
}
