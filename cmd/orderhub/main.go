package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/prateekshas457/magu-orderhub/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		configFile = flag.String("config", "", "Path to YAML session configuration")
		bomFile    = flag.String("bom", "", "Path to BOM CSV file")
		ordersFile = flag.String("orders", "", "Path to seed orders CSV file")
		stagesFile = flag.String("stages", "", "Path to stage sequence CSV file")
		asOf       = flag.String("as-of", "", "Pick-list reference date (YYYY-MM-DD, default today)")
		window     = flag.Int("window", 0, "Rolling window in days (default from config)")
		outputDir  = flag.String("output", "", "Output directory for results (optional)")
		format     = flag.String("format", "text", "Output format: text, json, csv")
		verbose    = flag.Bool("verbose", false, "Dump the effective configuration")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ConfigFile: *configFile,
		BOMFile:    *bomFile,
		OrdersFile: *ordersFile,
		StagesFile: *stagesFile,
		AsOf:       *asOf,
		WindowDays: *window,
		OutputDir:  *outputDir,
		Format:     *format,
		Verbose:    *verbose,
		Help:       *help,
	}

	// Create and execute command
	cmd := commands.NewPickListCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
