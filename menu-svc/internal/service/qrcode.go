package service

import (
	"net/url"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// ReceiptQRGenerator encodes a link to the customer-facing receipt page.
type ReceiptQRGenerator struct {
	BaseURL string
	Size    int
}

func (g ReceiptQRGenerator) ReceiptURL(orderID string) string {
	return g.BaseURL + "/receipt?order_id=" + url.QueryEscape(orderID)
}

func (g ReceiptQRGenerator) Generate(orderID string) ([]byte, error) {
	size := g.Size
	if size == 0 {
		size = 256
	}
	return qrcode.Encode(g.ReceiptURL(orderID), qrcode.Medium, size)
}
