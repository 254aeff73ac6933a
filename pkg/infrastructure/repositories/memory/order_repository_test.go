package memory

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/prateekshas457/magu-orderhub/pkg/domain/entities"
)

func testOrder(id entities.OrderID, product string, stage entities.StageName) *entities.Order {
	return &entities.Order{
		ID:      id,
		Product: product,
		Qty:     1,
		Value:   decimal.Zero,
		Stage:   stage,
	}
}

func TestOrderRepository_AddFrontInsertion(t *testing.T) {
	repo := NewOrderRepository()

	if err := repo.Add(testOrder("A", "Crib", "Carpentry")); err != nil {
		t.Fatalf("Add A failed: %v", err)
	}
	if err := repo.Add(testOrder("B", "Table", "Carpentry")); err != nil {
		t.Fatalf("Add B failed: %v", err)
	}

	orders, err := repo.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("Expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != "B" || orders[1].ID != "A" {
		t.Errorf("Expected most-recent-first [B A], got [%s %s]", orders[0].ID, orders[1].ID)
	}
}

func TestOrderRepository_AddRejectsDuplicateID(t *testing.T) {
	repo := NewOrderRepository()

	if err := repo.Add(testOrder("A", "Crib", "Carpentry")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	err := repo.Add(testOrder("A", "Table", "Sanding"))
	if !errors.Is(err, entities.ErrDuplicateID) {
		t.Fatalf("Expected ErrDuplicateID, got %v", err)
	}
	if repo.Len() != 1 {
		t.Errorf("Failed add must leave the store unchanged, got %d orders", repo.Len())
	}
}

func TestOrderRepository_SetStageReturnsPriorStage(t *testing.T) {
	repo := NewOrderRepository()
	if err := repo.Add(testOrder("A", "Crib", "Carpentry")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	prior, err := repo.SetStage("A", "Sanding")
	if err != nil {
		t.Fatalf("SetStage failed: %v", err)
	}
	if prior != "Carpentry" {
		t.Errorf("Expected prior stage Carpentry, got %s", prior)
	}

	order, err := repo.Get("A")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if order.Stage != "Sanding" {
		t.Errorf("Expected stage Sanding, got %s", order.Stage)
	}
}

func TestOrderRepository_UnknownIDSurfacesNotFound(t *testing.T) {
	repo := NewOrderRepository()

	if _, err := repo.Get("missing"); !errors.Is(err, entities.ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.SetStage("missing", "Sanding"); !errors.Is(err, entities.ErrNotFound) {
		t.Errorf("SetStage: expected ErrNotFound, got %v", err)
	}
	if err := repo.Remove("missing"); !errors.Is(err, entities.ErrNotFound) {
		t.Errorf("Remove: expected ErrNotFound, got %v", err)
	}
}

func TestOrderRepository_GetReturnsCopy(t *testing.T) {
	repo := NewOrderRepository()
	if err := repo.Add(testOrder("A", "Crib", "Carpentry")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	order, err := repo.Get("A")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	order.Stage = "Dispatch"

	stored, err := repo.Get("A")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Stage != "Carpentry" {
		t.Errorf("Mutating a returned order must not affect the store, got %s", stored.Stage)
	}
}
