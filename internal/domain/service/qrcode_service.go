package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateShareQR renders a PNG QR code pointing at target
	GenerateShareQR(target string) ([]byte, error)

	// ShareURL builds the public link for a nut page
	ShareURL(nutID string) string
}
