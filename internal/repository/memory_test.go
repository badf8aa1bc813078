package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"iraxas/internal/domain"
)

func TestMemoryStore_ProductCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := domain.Product{Name: "Shirt", Price: 10, Stock: 5}
	if err := store.Create(ctx, &p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("no id")
	}

	got, err := store.GetByID(ctx, p.ID)
	if err != nil || got.ID != p.ID {
		t.Fatalf("get: %v", err)
	}

	p.Price = 12
	if err := store.Update(ctx, &p); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = store.GetByID(ctx, p.ID)
	if got.Price != 12 {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := store.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetByID(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found")
	}
}

func TestMemoryStore_ProductList_Filters(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	seed := []domain.Product{
		{Name: "Blue Shirt", Price: 100, Category: "tops"},
		{Name: "White Shirt", Price: 300, Category: "tops"},
		{Name: "Black Jeans", Price: 500, Category: "bottoms"},
	}
	for i := range seed {
		if err := store.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	list, _ := store.List(ctx, ProductFilter{NameSubstring: "SHIRT"})
	if len(list) != 2 {
		t.Fatalf("name filter is case-insensitive, got %d", len(list))
	}

	list, _ = store.List(ctx, ProductFilter{Category: "bottoms"})
	if len(list) != 1 || list[0].Name != "Black Jeans" {
		t.Fatalf("category filter: %+v", list)
	}

	min, max := float64(200), float64(400)
	list, _ = store.List(ctx, ProductFilter{MinPrice: &min, MaxPrice: &max})
	if len(list) != 1 || list[0].Name != "White Shirt" {
		t.Fatalf("price filter: %+v", list)
	}
}

func TestMemoryUsers_CRUD(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryUsers(NewMemoryStore())

	u := domain.User{Email: "a@example.com", Name: "Alice", Role: domain.RoleUser}
	if err := users.Create(ctx, &u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("no id")
	}

	got, err := users.GetByEmail(ctx, "a@example.com")
	if err != nil || got.ID != u.ID {
		t.Fatalf("get by email: %v", err)
	}

	got.Name = "Alicia"
	if err := users.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = users.GetByID(ctx, u.ID)
	if got.Name != "Alicia" {
		t.Fatalf("update not applied: %+v", got)
	}

	if _, err := users.GetByEmail(ctx, "b@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found")
	}
}

func TestMemoryCodes_UpsertFindDelete(t *testing.T) {
	ctx := context.Background()
	codes := NewMemoryCodes(NewMemoryStore())

	vc := domain.VerificationCode{Email: "a@example.com", Code: "123456", ExpiresAt: time.Now().Add(time.Minute)}
	if err := codes.Upsert(ctx, &vc); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if _, err := codes.Find(ctx, "a@example.com", "123456"); err != nil {
		t.Fatalf("find: %v", err)
	}
	if _, err := codes.Find(ctx, "a@example.com", "654321"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrong code must not match")
	}

	// upsert replaces the previous code for the same email
	vc.Code = "999999"
	_ = codes.Upsert(ctx, &vc)
	if _, err := codes.Find(ctx, "a@example.com", "123456"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("old code must be replaced")
	}

	if err := codes.Delete(ctx, "a@example.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := codes.Find(ctx, "a@example.com", "999999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete")
	}
}

func TestMemoryCarts_Upsert(t *testing.T) {
	ctx := context.Background()
	carts := NewMemoryCarts(NewMemoryStore())

	if _, err := carts.GetByUser(ctx, "user-a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for fresh user")
	}

	cart := domain.Cart{UserID: "user-a", Items: []domain.CartItem{{ID: "i1", ProductID: "p1", Quantity: 1}}}
	if err := carts.Upsert(ctx, &cart); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if cart.ID == "" {
		t.Fatalf("no id assigned")
	}

	got, err := carts.GetByUser(ctx, "user-a")
	if err != nil || len(got.Items) != 1 {
		t.Fatalf("get: %+v %v", got, err)
	}

	// returned cart is a copy, mutating it must not touch the store
	got.Items[0].Quantity = 99
	again, _ := carts.GetByUser(ctx, "user-a")
	if again.Items[0].Quantity != 1 {
		t.Fatalf("store leaked a shared slice")
	}
}

func TestMemoryOrders_StatusByGatewayOrder(t *testing.T) {
	ctx := context.Background()
	orders := NewMemoryOrders(NewMemoryStore())

	o := domain.Order{UserID: "user-a", GatewayOrderID: "order_gw_1", Status: domain.OrderStatusPending}
	if err := orders.Create(ctx, &o); err != nil {
		t.Fatalf("create: %v", err)
	}

	// user-scoped update matches only the owner
	err := orders.SetStatusByGatewayOrderForUser(ctx, "order_gw_1", "user-b", domain.OrderStatusPaid)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign user must not match, got %v", err)
	}
	if err := orders.SetStatusByGatewayOrderForUser(ctx, "order_gw_1", "user-a", domain.OrderStatusPaid); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	got, _ := orders.GetByID(ctx, o.ID)
	if got.Status != domain.OrderStatusPaid {
		t.Fatalf("expected paid, got %v", got.Status)
	}

	// unscoped update matches regardless of owner
	if err := orders.SetStatusByGatewayOrder(ctx, "order_gw_1", domain.OrderStatusCancelled); err != nil {
		t.Fatalf("unscoped update: %v", err)
	}
	got, _ = orders.GetByID(ctx, o.ID)
	if got.Status != domain.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %v", got.Status)
	}

	if err := orders.SetStatusByGatewayOrder(ctx, "order_gw_missing", domain.OrderStatusPaid); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown gateway order must be not found, got %v", err)
	}
}

func TestMemoryOrders_ListByUser_Sorted(t *testing.T) {
	ctx := context.Background()
	orders := NewMemoryOrders(NewMemoryStore())

	for i := 0; i < 3; i++ {
		o := domain.Order{UserID: "user-a", GatewayOrderID: "gw", Status: domain.OrderStatusPending}
		if err := orders.Create(ctx, &o); err != nil {
			t.Fatalf("create: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	_ = orders.Create(ctx, &domain.Order{UserID: "user-b"})

	list, err := orders.ListByUser(ctx, "user-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].CreatedAt.Before(list[i].CreatedAt) {
			t.Fatalf("expected most recent first")
		}
	}
	for _, o := range list {
		if o.UserID != "user-a" {
			t.Fatalf("foreign order in listing")
		}
	}
}
