package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prateekshas457/magu-orderhub/pkg/domain/entities"
)

// Loader handles loading session data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadBOM loads BOM rows from a CSV file
func (l *Loader) LoadBOM(filename string) ([]*entities.BOMEntry, error) {
	records, err := readAll(filename, "BOM")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"product", "component", "per"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("BOM CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var entries []*entities.BOMEntry
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("BOM CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		entry, err := parseBOMEntry(record)
		if err != nil {
			return nil, fmt.Errorf("BOM CSV row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// LoadOrders loads a seed order list from a CSV file
func (l *Loader) LoadOrders(filename string) ([]*entities.Order, error) {
	records, err := readAll(filename, "orders")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{
		"id", "customer", "product", "qty", "value", "due", "stage", "assigned", "notes", "items",
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("orders CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var orders []*entities.Order
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("orders CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		order, err := parseOrder(record)
		if err != nil {
			return nil, fmt.Errorf("orders CSV row %d: %w", i+2, err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// LoadStages loads a stage sequence from a CSV file
func (l *Loader) LoadStages(filename string) ([]entities.StageName, error) {
	records, err := readAll(filename, "stages")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"stage"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("stages CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var stages []entities.StageName
	for i, record := range records[1:] {
		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("stages CSV row %d: stage name cannot be empty", i+2)
		}
		stages = append(stages, entities.StageName(name))
	}

	return stages, nil
}

func readAll(filename, kind string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", kind)
	}
	return records, nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, field := range expected {
		if strings.TrimSpace(header[i]) != field {
			return false
		}
	}
	return true
}

func parseBOMEntry(record []string) (*entities.BOMEntry, error) {
	per, err := decimal.NewFromString(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, fmt.Errorf("invalid per-unit quantity %q: %w", record[2], err)
	}
	return entities.NewBOMEntry(strings.TrimSpace(record[0]), strings.TrimSpace(record[1]), per)
}

func parseOrder(record []string) (*entities.Order, error) {
	qty, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q: %w", record[3], err)
	}

	value := decimal.Zero
	if raw := strings.TrimSpace(record[4]); raw != "" {
		value, err = decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", record[4], err)
		}
	}

	var due *time.Time
	if raw := strings.TrimSpace(record[5]); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid due date %q: %w", record[5], err)
		}
		due = &parsed
	}

	order, err := entities.NewOrder(
		entities.OrderID(strings.TrimSpace(record[0])),
		strings.TrimSpace(record[1]),
		strings.TrimSpace(record[2]),
		entities.Quantity(qty),
		value,
		due,
		entities.StageName(strings.TrimSpace(record[6])),
	)
	if err != nil {
		return nil, err
	}

	order.Assigned = strings.TrimSpace(record[7])
	order.Notes = strings.TrimSpace(record[8])

	items, err := parseItems(strings.TrimSpace(record[9]))
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// parseItems parses an order's explicit parts list encoded as
// "name:qty|name:qty". An empty field means no itemized list.
func parseItems(raw string) ([]entities.OrderItem, error) {
	if raw == "" {
		return nil, nil
	}

	var items []entities.OrderItem
	for _, part := range strings.Split(raw, "|") {
		name, qtyRaw, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("invalid item %q: expected name:qty", part)
		}

		qty, err := strconv.ParseInt(strings.TrimSpace(qtyRaw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid item quantity %q: %w", qtyRaw, err)
		}
		if qty <= 0 {
			return nil, fmt.Errorf("item quantity must be positive, got %d", qty)
		}

		items = append(items, entities.OrderItem{
			Name: strings.TrimSpace(name),
			Qty:  entities.Quantity(qty),
		})
	}
	return items, nil
}
