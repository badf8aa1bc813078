package cache

import (
	"context"
	"errors"

	"iraxas/internal/domain"
)

// ErrCacheMiss возвращается, когда товара нет в кэше
var ErrCacheMiss = errors.New("cache miss")

// ProductCache кэш карточек товаров
type ProductCache interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Set(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, productID string) error
}
