package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prateekshas457/magu-orderhub/pkg/domain/entities"
	"github.com/prateekshas457/magu-orderhub/pkg/domain/services/calendar"
	"github.com/prateekshas457/magu-orderhub/pkg/domain/services/matching"
)

// ComponentDemand aggregates raw-material demand for one component across
// the orders contributing to it
type ComponentDemand struct {
	Component string
	TotalQty  decimal.Decimal
	OrderIDs  []string
}

// PickListService computes per-component material demand for orders due
// within a rolling window. It is a pure read-only aggregator: identical
// inputs always yield identical output and no state is mutated.
type PickListService struct {
	matcher *matching.ProductMatcher
}

// NewPickListService creates a new pick-list service
func NewPickListService() *PickListService {
	return &PickListService{
		matcher: matching.NewProductMatcher(),
	}
}

// BuildPickList selects every order with a due date inside
// [asOf, asOf+windowDays] at day granularity whose stage is not the terminal
// sentinel, then aggregates demand two ways:
//
//   - BOM matching: for every BOM entry whose product pattern matches the
//     order's product, per * order qty is added to that component.
//   - Itemized overlay: each explicit order item adds item qty * order qty
//     under the item name, independent of BOM matching. The same physical
//     part can therefore be counted by both paths.
//
// Rows are sorted by component name, with sorted contributing order ids.
func (s *PickListService) BuildPickList(
	orders []*entities.Order,
	bom []*entities.BOMEntry,
	asOf time.Time,
	windowDays int,
	terminalStage entities.StageName,
) ([]ComponentDemand, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("window days must be positive, got %d: %w", windowDays, entities.ErrInvalidWindow)
	}

	type aggregate struct {
		total    decimal.Decimal
		orderIDs map[string]struct{}
	}
	totals := make(map[string]*aggregate)

	record := func(component string, qty decimal.Decimal, id entities.OrderID) {
		agg, exists := totals[component]
		if !exists {
			agg = &aggregate{
				total:    decimal.Zero,
				orderIDs: make(map[string]struct{}),
			}
			totals[component] = agg
		}
		agg.total = agg.total.Add(qty)
		agg.orderIDs[string(id)] = struct{}{}
	}

	for _, order := range orders {
		if order.Due == nil {
			continue
		}
		if !calendar.WithinWindow(*order.Due, asOf, windowDays) {
			continue
		}
		if order.Stage == terminalStage {
			continue
		}

		orderQty := decimal.NewFromInt(int64(order.Qty))

		for _, entry := range bom {
			if s.matcher.Matches(order.Product, entry.Product) {
				record(entry.Component, entry.Per.Mul(orderQty), order.ID)
			}
		}

		for _, item := range order.Items {
			itemQty := decimal.NewFromInt(int64(item.Qty))
			record(item.Name, itemQty.Mul(orderQty), order.ID)
		}
	}

	rows := make([]ComponentDemand, 0, len(totals))
	for component, agg := range totals {
		orderIDs := make([]string, 0, len(agg.orderIDs))
		for id := range agg.orderIDs {
			orderIDs = append(orderIDs, id)
		}
		sort.Strings(orderIDs)

		rows = append(rows, ComponentDemand{
			Component: component,
			TotalQty:  agg.total,
			OrderIDs:  orderIDs,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Component < rows[j].Component
	})
	return rows, nil
}
