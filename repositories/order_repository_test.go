package repositories

import (
	"errors"
	"testing"

	"github.com/efeurhobobullish/SwiftBuy/models"
)

func TestOrderRepository(t *testing.T) {
	repo := NewOrderRepository()
	repo.Create("session-a", models.Order{ID: "ORD-1", TotalAmount: 4500})
	repo.Create("session-a", models.Order{ID: "ORD-2", TotalAmount: 900})
	repo.Create("session-b", models.Order{ID: "ORD-3", TotalAmount: 100})

	got, err := repo.GetByID("ORD-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalAmount != 4500 {
		t.Fatalf("unexpected order: %+v", got)
	}

	if _, err := repo.GetByID("ORD-404"); !errors.Is(err, models.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	mine := repo.ListBySession("session-a")
	if len(mine) != 2 || mine[0].ID != "ORD-1" || mine[1].ID != "ORD-2" {
		t.Fatalf("unexpected session orders: %+v", mine)
	}
	if len(repo.ListBySession("session-c")) != 0 {
		t.Fatal("expected no orders for unknown session")
	}
}
