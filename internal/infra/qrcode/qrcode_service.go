package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"nutriplan/config"
	"nutriplan/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	// maxSize keeps request-sized images bounded
	maxSize = 1024
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
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

	if size <= 0 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateShareQR generates a PNG QR code encoding target
func (s *qrcodeService) GenerateShareQR(target string) ([]byte, error) {
	if target == "" {
		return nil, fmt.Errorf("empty QR code target")
	}

	qrCode, err := qrcode.New(target, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ShareURL returns the public nut page, or "" when no base URL is configured
func (s *qrcodeService) ShareURL(nutID string) string {
	if s.baseURL == "" {
		return ""
	}

	return s.baseURL + "/nuts/" + url.PathEscape(nutID)
}
