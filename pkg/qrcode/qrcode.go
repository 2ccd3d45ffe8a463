package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024
)

// QRService renders share codes for public photographer profiles.
type QRService struct {
	baseURL string // client origin, e.g. "https://photobooker.app"
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ProfileURL is the client-facing page of a photographer.
func (s *QRService) ProfileURL(photographerID uint) string {
	return fmt.Sprintf("%s/photographer/%d", s.baseURL, photographerID)
}

// GenerateProfileQRCode returns a PNG of the profile URL, size pixels wide.
func (s *QRService) GenerateProfileQRCode(photographerID uint, size int) ([]byte, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("size must be between %d and %d", MinSize, MaxSize)
	}

	png, err := qrcode.Encode(s.ProfileURL(photographerID), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}
