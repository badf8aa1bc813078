package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"iraxas/internal/domain"
	"iraxas/internal/repository"
)

// CartService логика корзины: одна корзина на пользователя, позиции
// сливаются по связке товар+размер+цвет
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// GetCart возвращает корзину пользователя, создавая пустую при первом обращении
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}

	cart, err := s.carts.GetByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		cart = &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
		if err := s.carts.Upsert(ctx, cart); err != nil {
			return nil, err
		}
		return cart, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem кладёт товар в корзину. Цена берётся из каталога, не от клиента.
// Если позиция с теми же товаром, размером и цветом уже есть — количества
// складываются, иначе добавляется новая строка.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int64, size, color string) (*domain.Cart, error) {
	if userID == "" || productID == "" || quantity <= 0 {
		return nil, ErrInvalidInput
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		it := &cart.Items[i]
		if it.ProductID == productID && it.Size == size && it.Color == color {
			it.Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, domain.CartItem{
			ID:        uuid.NewString(),
			ProductID: productID,
			Quantity:  quantity,
			Size:      size,
			Color:     color,
			Price:     p.Price,
		})
	}

	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItemQuantity меняет количество позиции; ноль и меньше удаляют позицию
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int64) (*domain.Cart, error) {
	if userID == "" || itemID == "" {
		return nil, ErrInvalidInput
	}

	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, repository.ErrNotFound
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity = quantity
	}

	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear опустошает корзину пользователя
func (s *CartService) Clear(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Items = []domain.CartItem{}
	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem убирает позицию из корзины
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error) {
	if userID == "" || itemID == "" {
		return nil, ErrInvalidInput
	}

	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, repository.ErrNotFound
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
