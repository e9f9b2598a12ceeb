package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for session check-in QR codes
type QRCodeService interface {
	// GenerateSessionQR renders a PNG QR code that identifies the session
	GenerateSessionQR(sessionID uuid.UUID) ([]byte, error)

	// ParseSessionQR parses QR code data and returns the session ID
	ParseSessionQR(qrData string) (uuid.UUID, error)
}
