package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prateekshas457/magu-orderhub/pkg/application/services"
	"github.com/prateekshas457/magu-orderhub/pkg/domain/services/calendar"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	AsOf      time.Time
}

// Result bundles the projections rendered by the CLI
type Result struct {
	Board    []services.StageColumn
	PickList []services.ComponentDemand
}

// Generate creates output in the specified format
func Generate(result *Result, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *Result, config Config) error {
	fmt.Printf("📋 Production Board\n")
	fmt.Printf("===================\n\n")

	for _, column := range result.Board {
		fmt.Printf("%s (%d)\n", column.Stage, len(column.Orders))
		for _, order := range column.Orders {
			due := "-"
			overdueMark := ""
			if order.Due != nil {
				due = order.Due.Format("2006-01-02")
				if calendar.Overdue(order.Due, config.AsOf) {
					overdueMark = " ⚠ overdue"
				}
			}
			fmt.Printf("  %-10s %-24s qty %-4d due %s%s\n",
				order.ID, order.Product, order.Qty, due, overdueMark)
		}
	}
	fmt.Println()

	fmt.Printf("🪵 Pick List (as of %s)\n", config.AsOf.Format("2006-01-02"))
	fmt.Printf("%-28s %-12s %s\n", "Component", "Total Qty", "Orders")
	fmt.Printf("%-28s %-12s %s\n", "----------------------------", "------------", "------")

	for _, row := range result.PickList {
		fmt.Printf("%-28s %-12s %v\n", row.Component, row.TotalQty, row.OrderIDs)
	}
	fmt.Println()

	return nil
}

// generateJSONOutput writes the result as a single JSON document
func generateJSONOutput(result *Result, config Config) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "picklist.json")
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	fmt.Printf("Results written to %s\n", filename)
	return nil
}

// generateCSVOutput writes the pick list as CSV rows
func generateCSVOutput(result *Result, config Config) error {
	out := os.Stdout
	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, "picklist.csv")
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", filename, err)
		}
		defer file.Close()
		out = file
	}

	writer := csv.NewWriter(out)
	defer writer.Flush()

	if err := writer.Write([]string{"component", "total_qty", "orders"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range result.PickList {
		record := []string{row.Component, row.TotalQty.String(), joinIDs(row.OrderIDs)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}

func joinIDs(ids []string) string {
	joined := ""
	for i, id := range ids {
		if i > 0 {
			joined += "|"
		}
		joined += id
	}
	return joined
}
