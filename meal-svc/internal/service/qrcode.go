package service

import (
	"context"
	"fmt"
	"net/url"

	"nutrilens/aggregator"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(link string) ([]byte, error)
}

type DefaultQRGenerator struct{}

func (DefaultQRGenerator) Generate(link string) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, 256)
}

// ShareService produces links and QR codes for a user's daily summary page.
type ShareService struct {
	baseURL   string
	qrEncoder QRGenerator
}

func NewShareService(baseURL string, qr QRGenerator) *ShareService {
	return &ShareService{baseURL: baseURL, qrEncoder: qr}
}

func (s *ShareService) Link(userID uuid.UUID, day aggregator.Date) string {
	query := url.Values{}
	query.Set("user", userID.String())
	query.Set("date", day.String())
	return fmt.Sprintf("%s/share.html?%s", s.baseURL, query.Encode())
}

func (s *ShareService) QRCode(ctx context.Context, day aggregator.Date) ([]byte, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(s.Link(userID, day))
}
