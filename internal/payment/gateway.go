package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// GatewayOrder заказ, созданный на стороне платёжного шлюза
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// Gateway клиент платёжного шлюза. Суммы в минимальных единицах валюты.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error)
}

// RazorpayGateway реализация поверх Razorpay Orders API. Клиент создаётся
// один раз при старте процесса и безопасен для конкурентного использования.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

var _ Gateway = (*RazorpayGateway)(nil)

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	out := &GatewayOrder{Amount: amount, Currency: currency}
	if id, ok := body["id"].(string); ok {
		out.ID = id
	}
	if out.ID == "" {
		return nil, fmt.Errorf("gateway order response has no id")
	}
	// echo back what the gateway actually registered
	if a, ok := body["amount"].(float64); ok {
		out.Amount = int64(a)
	}
	if c, ok := body["currency"].(string); ok {
		out.Currency = c
	}
	return out, nil
}
