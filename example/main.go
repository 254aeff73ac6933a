package main

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prateekshas457/magu-orderhub/pkg/application/services"
	"github.com/prateekshas457/magu-orderhub/pkg/domain/entities"
	"github.com/prateekshas457/magu-orderhub/pkg/infrastructure/config"
	"github.com/prateekshas457/magu-orderhub/pkg/infrastructure/history"
	"github.com/prateekshas457/magu-orderhub/pkg/infrastructure/repositories/memory"
)

// Demonstrates driving a session programmatically: seed a few orders, move
// them through the pipeline, undo the last change, and build a pick list.
func main() {
	cfg := config.Default()

	stages := make([]entities.StageName, 0, len(cfg.Stages))
	for _, stage := range cfg.Stages {
		stages = append(stages, entities.StageName(stage))
	}

	session := services.NewSessionService(
		memory.NewStageRegistry(stages),
		memory.NewOrderRepository(),
		history.NewLog(cfg.HistoryCapacity),
		nil,
	)

	due := time.Now().AddDate(0, 0, 3)
	crib, err := entities.NewOrder(
		"ORD-1001", "Alice", "Alice Crib", 2,
		decimal.NewFromInt(450), &due, "Carpentry",
	)
	if err != nil {
		log.Fatalf("creating order: %v", err)
	}

	table, err := entities.NewOrder(
		"ORD-1002", "Bob", "Oak Dining Table", 1,
		decimal.NewFromInt(1200), &due, "Material Acquisition",
	)
	if err != nil {
		log.Fatalf("creating order: %v", err)
	}
	table.Items = []entities.OrderItem{
		{Name: "Oak Plank", Qty: 8},
		{Name: "Table Leg", Qty: 4},
	}

	for _, order := range []*entities.Order{crib, table} {
		if err := session.AddOrder(order); err != nil {
			log.Fatalf("adding order: %v", err)
		}
	}

	if err := session.MoveOrder("ORD-1001", "Sanding"); err != nil {
		log.Fatalf("moving order: %v", err)
	}
	if err := session.AdvanceOrder("ORD-1002"); err != nil {
		log.Fatalf("advancing order: %v", err)
	}

	// Second thoughts about the sanding move
	if undone, err := session.Undo(); err != nil {
		log.Fatalf("undo: %v", err)
	} else if undone {
		fmt.Println("undid the last change; history entries left:", session.HistoryLen())
	}

	bom := []*entities.BOMEntry{
		{Product: "Alice Crib", Component: "Side Rail", Per: decimal.NewFromInt(2)},
		{Product: "Alice Crib", Component: "Mattress Board", Per: decimal.NewFromInt(1)},
		{Product: "Oak Dining Table", Component: "Varnish (L)", Per: decimal.NewFromFloat(0.5)},
	}

	pickList, err := services.NewPickListService().BuildPickList(
		mustOrders(session), bom, time.Now(), cfg.WindowDays,
		entities.StageName(cfg.TerminalStage),
	)
	if err != nil {
		log.Fatalf("building pick list: %v", err)
	}

	fmt.Println("\nPick list for the next", cfg.WindowDays, "days:")
	for _, row := range pickList {
		fmt.Printf("  %-16s %8s  from orders %v\n", row.Component, row.TotalQty, row.OrderIDs)
	}
}

func mustOrders(session *services.SessionService) []*entities.Order {
	orders, err := session.Orders()
	if err != nil {
		log.Fatalf("reading orders: %v", err)
	}
	return orders
}
