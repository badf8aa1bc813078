package repository

import (
	"context"
	"errors"

	"iraxas/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// ProductFilter параметры фильтрации списка товаров
type ProductFilter struct {
	NameSubstring string
	Category      string
	MinPrice      *float64
	MaxPrice      *float64
}

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

// VerificationCodeRepository хранит одноразовые коды входа, один на email
type VerificationCodeRepository interface {
	Upsert(ctx context.Context, vc *domain.VerificationCode) error
	Find(ctx context.Context, email, code string) (*domain.VerificationCode, error)
	Delete(ctx context.Context, email string) error
}

// CartRepository интерфейс репозитория корзин; слияние позиций — в сервисе
type CartRepository interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	Upsert(ctx context.Context, cart *domain.Cart) error
}

// OrderRepository интерфейс репозитория заказов. Статус пишется по
// идентификатору заказа шлюза: на успешной ветке выборка ограничена
// владельцем, на ветке отказа — нет.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	SetStatusByGatewayOrder(ctx context.Context, gatewayOrderID string, status domain.OrderStatus) error
	SetStatusByGatewayOrderForUser(ctx context.Context, gatewayOrderID, userID string, status domain.OrderStatus) error
}
