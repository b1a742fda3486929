package models

import "testing"

func product(id string, price int) Product {
	return Product{ID: id, Name: "Product " + id, Price: price, InStock: true}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	cart := NewCart()
	p := product("1", 1000)

	cart.AddItem(p)
	cart.AddItem(p)

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
}

func TestInsertionOrderSurvivesQuantityChanges(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("a", 100))
	cart.AddItem(product("b", 200))
	cart.AddItem(product("c", 300))

	cart.UpdateQuantity("a", 9)
	cart.AddItem(product("b", 200))

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if cart.Items[i].Product.ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, cart.Items[i].Product.ID)
		}
	}
}

func TestUpdateQuantityRemovesAtZeroOrBelow(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("1", 500))
	cart.UpdateQuantity("1", 0)
	if len(cart.Items) != 0 {
		t.Fatalf("quantity 0 should remove the line, got %d lines", len(cart.Items))
	}

	cart.AddItem(product("1", 500))
	cart.UpdateQuantity("1", -1)
	if len(cart.Items) != 0 {
		t.Fatalf("negative quantity should remove the line, got %d lines", len(cart.Items))
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("1", 500))

	cart.UpdateQuantity("missing", 5)

	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatalf("unexpected cart state: %+v", cart.Items)
	}
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("1", 500))

	cart.RemoveItem("missing")

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Items))
	}
}

func TestTotalsArePureFunctionsOfState(t *testing.T) {
	cart := NewCart()
	if cart.TotalItems() != 0 || cart.TotalPrice() != 0 {
		t.Fatalf("empty cart totals should be 0, got items=%d price=%d", cart.TotalItems(), cart.TotalPrice())
	}

	cart.AddItem(product("1", 1000))
	cart.AddItem(product("2", 250))
	cart.UpdateQuantity("1", 3)

	if cart.TotalItems() != 4 {
		t.Fatalf("expected 4 total items, got %d", cart.TotalItems())
	}
	if cart.TotalPrice() != 3*1000+250 {
		t.Fatalf("expected total price %d, got %d", 3*1000+250, cart.TotalPrice())
	}

	cart.RemoveItem("2")
	if cart.TotalItems() != 3 || cart.TotalPrice() != 3000 {
		t.Fatalf("after removal: items=%d price=%d", cart.TotalItems(), cart.TotalPrice())
	}
}

func TestInvariantsHoldOverMutationSequences(t *testing.T) {
	cart := NewCart()
	ops := []func(){
		func() { cart.AddItem(product("1", 100)) },
		func() { cart.AddItem(product("2", 200)) },
		func() { cart.UpdateQuantity("1", 5) },
		func() { cart.AddItem(product("1", 100)) },
		func() { cart.UpdateQuantity("2", -3) },
		func() { cart.AddItem(product("3", 300)) },
		func() { cart.RemoveItem("1") },
		func() { cart.AddItem(product("3", 300)) },
	}

	for _, op := range ops {
		op()
		seen := map[string]bool{}
		for _, item := range cart.Items {
			if item.Quantity < 1 {
				t.Fatalf("line %s has quantity %d", item.Product.ID, item.Quantity)
			}
			if seen[item.Product.ID] {
				t.Fatalf("duplicate line for product %s", item.Product.ID)
			}
			seen[item.Product.ID] = true
		}
	}
}

func TestClearEmptiesCart(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("1", 100))
	cart.AddItem(product("2", 200))

	cart.Clear()

	if !cart.IsEmpty() || cart.TotalItems() != 0 || cart.TotalPrice() != 0 {
		t.Fatalf("cart not empty after clear: %+v", cart.Items)
	}
}

func TestSnapshotIsValueCopy(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("1", 1000))
	cart.AddItem(product("2", 2000))

	snap := cart.Snapshot()
	cart.Clear()

	if len(snap) != 2 {
		t.Fatalf("expected 2 snapshot items, got %d", len(snap))
	}
	if snap[0].ProductID != "1" || snap[0].Quantity != 1 || snap[0].Price != 1000 {
		t.Fatalf("unexpected snapshot item: %+v", snap[0])
	}
}
