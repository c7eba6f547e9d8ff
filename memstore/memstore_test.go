package memstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pharmahub/models"
	"pharmahub/stores"
)

func TestUsersCreateAssignsSequentialIDs(t *testing.T) {
	users := NewUsers()
	ctx := context.Background()

	a, err := users.Create(ctx, models.User{Name: "A", Email: "a@b.vn"})
	if err != nil {
		t.Fatal(err)
	}
	b, _ := users.Create(ctx, models.User{Name: "B", Email: "b@b.vn"})
	if a.ID != 1 || b.ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", a.ID, b.ID)
	}

	_, err = users.Create(ctx, models.User{Name: "A2", Email: "a@b.vn"})
	if !errors.Is(err, stores.ErrConflict) {
		t.Errorf("duplicate email: err = %v, want ErrConflict", err)
	}
}

func TestUsersSeedContinuesSequence(t *testing.T) {
	users := NewUsers(SeedUsers()...)
	u, err := users.Create(context.Background(), models.User{Name: "New", Email: "new@b.vn"})
	if err != nil {
		t.Fatal(err)
	}
	if u.ID != 4 {
		t.Errorf("id after 3 seeded users = %d, want 4", u.ID)
	}
}

func TestUsersGetByEmailIsCaseSensitive(t *testing.T) {
	users := NewUsers(SeedUsers()...)
	ctx := context.Background()

	if _, err := users.GetByEmail(ctx, "nguyenvana@gmail.com"); err != nil {
		t.Errorf("exact email: %v", err)
	}
	if _, err := users.GetByEmail(ctx, "NguyenVanA@gmail.com"); !errors.Is(err, stores.ErrNotFound) {
		t.Errorf("cased email: err = %v, want ErrNotFound", err)
	}
}

func TestOrdersSortedNewestFirst(t *testing.T) {
	ords := NewOrders()
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	ords.Insert(ctx, models.Order{ID: "DH00000001", UserID: 1, CreatedAt: base})
	ords.Insert(ctx, models.Order{ID: "DH00000002", UserID: 1, CreatedAt: base.Add(time.Hour)})
	ords.Insert(ctx, models.Order{ID: "DH00000003", UserID: 1, CreatedAt: base.Add(30 * time.Minute)})

	list, err := ords.ListByUser(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"DH00000002", "DH00000003", "DH00000001"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, list[i].ID, id)
		}
	}
}

func TestCartsConcurrentAddsMerge(t *testing.T) {
	carts := NewCarts()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			carts.Add(ctx, models.CartLine{
				ID: "line", UserID: 1, ProductID: 1, Unit: "Vỉ 10 viên", Quantity: 1, Price: 50000,
			})
		}(i)
	}
	wg.Wait()

	lines, _ := carts.Lines(ctx, 1)
	if len(lines) != 1 {
		t.Fatalf("concurrent adds produced %d lines, want 1 merged line", len(lines))
	}
	if lines[0].Quantity != 20 {
		t.Errorf("merged quantity = %d, want 20", lines[0].Quantity)
	}
}

func TestAddressesSingleDefaultUnderConcurrency(t *testing.T) {
	addrs := NewAddresses()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			addrs.Create(ctx, models.Address{
				ID: string(rune('a' + n)), UserID: 1, RecipientName: "A",
				RecipientPhone: "0901234567", FullAddress: "x", IsDefault: true,
			})
		}(i)
	}
	wg.Wait()

	list, _ := addrs.List(ctx, 1)
	defaults := 0
	for _, a := range list {
		if a.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Errorf("%d defaults after concurrent default creates, want 1", defaults)
	}
}

func TestOrdersSetStatusUnknownID(t *testing.T) {
	ords := NewOrders()
	_, err := ords.SetStatus(context.Background(), "DH404", "shipping", time.Now())
	if !errors.Is(err, stores.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
