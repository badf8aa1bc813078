package service

import (
	"context"
	"errors"
	"testing"

	"iraxas/internal/domain"
	"iraxas/internal/repository"
)

func setupCS(t *testing.T) (*CartService, *domain.Product) {
	t.Helper()
	store := repository.NewMemoryStore()
	carts := repository.NewMemoryCarts(store)

	p := domain.Product{Name: "Shirt", Price: 150, Stock: 10, Sizes: []string{"M", "L"}, Colors: []string{"blue"}}
	if err := store.Create(context.Background(), &p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return NewCartService(carts, store), &p
}

func TestCart_GetCart_CreatesEmpty(t *testing.T) {
	ctx := context.Background()
	cs, _ := setupCS(t)

	cart, err := cs.GetCart(ctx, "user-a")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.UserID != "user-a" || len(cart.Items) != 0 {
		t.Fatalf("expected fresh empty cart, got %+v", cart)
	}

	// second call returns the same cart, not a new one
	again, err := cs.GetCart(ctx, "user-a")
	if err != nil {
		t.Fatalf("get cart again: %v", err)
	}
	if again.ID != cart.ID {
		t.Fatalf("cart recreated: %s != %s", again.ID, cart.ID)
	}
}

func TestCart_AddItem_PriceFromCatalog(t *testing.T) {
	ctx := context.Background()
	cs, p := setupCS(t)

	cart, err := cs.AddItem(ctx, "user-a", p.ID, 2, "M", "blue")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cart.Items))
	}
	it := cart.Items[0]
	if it.Price != p.Price {
		t.Fatalf("price must come from the catalog: got %v, want %v", it.Price, p.Price)
	}
	if it.Quantity != 2 || it.ID == "" {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestCart_AddItem_MergesSameVariant(t *testing.T) {
	ctx := context.Background()
	cs, p := setupCS(t)

	_, _ = cs.AddItem(ctx, "user-a", p.ID, 1, "M", "blue")
	cart, err := cs.AddItem(ctx, "user-a", p.ID, 2, "M", "blue")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("same variant must merge, got %+v", cart.Items)
	}

	// different size is a separate line
	cart, err = cs.AddItem(ctx, "user-a", p.ID, 1, "L", "blue")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("different variant must not merge, got %+v", cart.Items)
	}
}

func TestCart_AddItem_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	cs, _ := setupCS(t)

	if _, err := cs.AddItem(ctx, "user-a", "missing", 1, "", ""); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCart_AddItem_Invalid(t *testing.T) {
	ctx := context.Background()
	cs, p := setupCS(t)

	if _, err := cs.AddItem(ctx, "user-a", p.ID, 0, "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero quantity, got %v", err)
	}
	if _, err := cs.AddItem(ctx, "", p.ID, 1, "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty user, got %v", err)
	}
}

func TestCart_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()
	cs, p := setupCS(t)

	cart, _ := cs.AddItem(ctx, "user-a", p.ID, 2, "M", "blue")
	itemID := cart.Items[0].ID

	cart, err := cs.UpdateItemQuantity(ctx, "user-a", itemID, 5)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("quantity expected 5, got %v", cart.Items[0].Quantity)
	}

	// zero removes the line
	cart, err = cs.UpdateItemQuantity(ctx, "user-a", itemID, 0)
	if err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("zero quantity must remove the item, got %+v", cart.Items)
	}
}

func TestCart_UpdateItemQuantity_UnknownItem(t *testing.T) {
	ctx := context.Background()
	cs, p := setupCS(t)

	_, _ = cs.AddItem(ctx, "user-a", p.ID, 1, "", "")
	if _, err := cs.UpdateItemQuantity(ctx, "user-a", "missing", 1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCart_RemoveItem(t *testing.T) {
	ctx := context.Background()
	cs, p := setupCS(t)

	cart, _ := cs.AddItem(ctx, "user-a", p.ID, 1, "M", "blue")
	itemID := cart.Items[0].ID

	cart, err := cs.RemoveItem(ctx, "user-a", itemID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}

	if _, err := cs.RemoveItem(ctx, "user-a", itemID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found on second remove, got %v", err)
	}
}

func TestCart_Clear(t *testing.T) {
	ctx := context.Background()
	cs, p := setupCS(t)

	_, _ = cs.AddItem(ctx, "user-a", p.ID, 2, "M", "blue")
	_, _ = cs.AddItem(ctx, "user-a", p.ID, 1, "L", "blue")

	cart, err := cs.Clear(ctx, "user-a")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}

	cart, _ = cs.GetCart(ctx, "user-a")
	if len(cart.Items) != 0 {
		t.Fatalf("clear not persisted, got %+v", cart.Items)
	}

	// clearing a never-seen cart just yields an empty one
	cart, err = cs.Clear(ctx, "user-b")
	if err != nil || len(cart.Items) != 0 {
		t.Fatalf("clear fresh cart: %+v %v", cart, err)
	}

	if _, err := cs.Clear(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestCart_IsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	cs, p := setupCS(t)

	_, _ = cs.AddItem(ctx, "user-a", p.ID, 1, "M", "blue")
	cart, err := cs.GetCart(ctx, "user-b")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("carts must be per user, got %+v", cart.Items)
	}
}
