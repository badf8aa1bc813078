package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"iraxas/internal/domain"
	"iraxas/internal/payment"
	"iraxas/internal/repository"
)

// OrderService реализует поток заказа: открытие заказа в платёжном шлюзе и
// сверку подписи после оплаты
type OrderService struct {
	orders  repository.OrderRepository
	gateway payment.Gateway
	secret  string
}

// Currency единственная валюта магазина; суммы шлюзу уходят в пайсах
const Currency = "INR"

func NewOrderService(orders repository.OrderRepository, gateway payment.Gateway, gatewaySecret string) *OrderService {
	return &OrderService{orders: orders, gateway: gateway, secret: gatewaySecret}
}

var ErrSignatureMismatch = errors.New("payment verification failed")

// CreateOrderResult ответ на создание заказа: локальный и шлюзовой
// идентификаторы плюс сумма, которую шлюз ждёт к оплате
type CreateOrderResult struct {
	OrderID        string `json:"order_id"`
	GatewayOrderID string `json:"gateway_order_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
}

// Create считает итог по позициям, открывает заказ в шлюзе и сохраняет
// локальный заказ в статусе pending с идентификатором шлюза как ключом сверки.
// Если локальное сохранение упадёт после ответа шлюза, заказ на стороне шлюза
// остаётся висеть — компенсации нет.
func (s *OrderService) Create(ctx context.Context, userID string, items []domain.OrderItem, addr domain.ShippingAddress) (*CreateOrderResult, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	for _, it := range items {
		if it.ProductID == "" || it.Quantity <= 0 || it.Price < 0 {
			return nil, ErrInvalidInput
		}
	}

	// Prices come from the client and are not re-checked against the catalog.
	// TODO: re-derive prices from the product catalog before charging.
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	amount := int64(math.Round(total * 100))
	receipt := fmt.Sprintf("receipt_%d_%s", time.Now().UnixMilli(), userID)

	gw, err := s.gateway.CreateOrder(ctx, amount, Currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	o := domain.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: addr,
		GatewayOrderID:  gw.ID,
		Status:          domain.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, &o); err != nil {
		return nil, err
	}

	return &CreateOrderResult{
		OrderID:        o.ID,
		GatewayOrderID: gw.ID,
		Amount:         gw.Amount,
		Currency:       gw.Currency,
	}, nil
}

// ListByUser возвращает заказы пользователя, новые первыми
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.orders.ListByUser(ctx, userID)
}

// VerifyPayment сверяет подпись колбэка оплаты и финализирует заказ: при
// совпадении помечает paid заказ запрашивающего пользователя, при расхождении
// помечает cancelled заказ по одному лишь идентификатору шлюза. Асимметрия
// областей выборки повторяет исходное поведение.
func (s *OrderService) VerifyPayment(ctx context.Context, userID, gatewayOrderID, paymentID, signature string) error {
	if userID == "" || gatewayOrderID == "" || paymentID == "" {
		return ErrInvalidInput
	}

	if payment.VerifySignature(gatewayOrderID, paymentID, signature, s.secret) {
		return s.orders.SetStatusByGatewayOrderForUser(ctx, gatewayOrderID, userID, domain.OrderStatusPaid)
	}

	if err := s.orders.SetStatusByGatewayOrder(ctx, gatewayOrderID, domain.OrderStatusCancelled); err != nil {
		return err
	}
	return ErrSignatureMismatch
}
