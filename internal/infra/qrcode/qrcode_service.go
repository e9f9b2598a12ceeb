// Package qrcode renders and parses session check-in codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"wingman/internal/domain/service"
	"wingman/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize     = 256
	sessionCodeType = "session_checkin"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the JSON payload encoded in a check-in code
type QRCodeData struct {
	SessionID string `json:"session_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "L", "LOW":
		return qrcode.Low
	case "Q", "HIGH":
		return qrcode.High
	case "H", "HIGHEST":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateSessionQR renders a PNG with the session's check-in payload
func (s *qrcodeService) GenerateSessionQR(sessionID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(QRCodeData{
		SessionID: sessionID.String(),
		Type:      sessionCodeType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	pngBytes, err := qrcode.Encode(string(jsonData), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code PNG")
	}

	return pngBytes, nil
}

// ParseSessionQR parses QR code data and returns the session ID
func (s *qrcodeService) ParseSessionQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != sessionCodeType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	sessionID, err := uuid.Parse(data.SessionID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse session ID")
	}

	return sessionID, nil
}
