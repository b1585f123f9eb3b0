package service

// QRCodeService generates QR code images for quote references.
type QRCodeService interface {
	// GenerateQuoteQR returns a PNG image encoding the tracking URL for the
	// given quote reference.
	GenerateQuoteQR(reference string) ([]byte, error)
}
