package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/prateekshas457/magu-orderhub/pkg/application/services"
	"github.com/prateekshas457/magu-orderhub/pkg/domain/entities"
	"github.com/prateekshas457/magu-orderhub/pkg/infrastructure/config"
	"github.com/prateekshas457/magu-orderhub/pkg/infrastructure/history"
	"github.com/prateekshas457/magu-orderhub/pkg/infrastructure/logging"
	"github.com/prateekshas457/magu-orderhub/pkg/infrastructure/repositories/csv"
	"github.com/prateekshas457/magu-orderhub/pkg/infrastructure/repositories/memory"
	"github.com/prateekshas457/magu-orderhub/pkg/interfaces/cli/output"
)

// Config holds configuration for the pick-list command
type Config struct {
	ConfigFile string
	BOMFile    string
	OrdersFile string
	StagesFile string
	AsOf       string
	WindowDays int
	OutputDir  string
	Format     string
	Verbose    bool
	Help       bool
}

// PickListCommand loads session data, builds the pick list, and renders the
// board and demand projections
type PickListCommand struct {
	config Config
}

// NewPickListCommand creates a new pick-list command with the given configuration
func NewPickListCommand(config Config) *PickListCommand {
	return &PickListCommand{
		config: config,
	}
}

// Execute runs the pick-list command
func (c *PickListCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	sessionCfg := config.Default()
	if c.config.ConfigFile != "" {
		loaded, err := config.Load(c.config.ConfigFile)
		if err != nil {
			return err
		}
		sessionCfg = loaded
	}

	logger := logging.New(logging.Config{
		Level:  sessionCfg.Log.Level,
		Format: sessionCfg.Log.Format,
		Output: sessionCfg.Log.Output,
	})

	if c.config.BOMFile == "" {
		return fmt.Errorf("validation error: -bom file is required")
	}
	if c.config.OrdersFile == "" {
		return fmt.Errorf("validation error: -orders file is required")
	}

	windowDays := sessionCfg.WindowDays
	if c.config.WindowDays > 0 {
		windowDays = c.config.WindowDays
	}

	asOf := time.Now()
	if c.config.AsOf != "" {
		parsed, err := time.Parse("2006-01-02", c.config.AsOf)
		if err != nil {
			return fmt.Errorf("invalid as-of date %q: %w", c.config.AsOf, entities.ErrInvalidWindow)
		}
		asOf = parsed
	}

	if c.config.Verbose {
		fmt.Printf("Session configuration:\n%s\n", spew.Sdump(sessionCfg))
	}

	loader := csv.NewLoader()

	bomEntries, err := loader.LoadBOM(c.config.BOMFile)
	if err != nil {
		return fmt.Errorf("error loading BOM: %w", err)
	}

	seedOrders, err := loader.LoadOrders(c.config.OrdersFile)
	if err != nil {
		return fmt.Errorf("error loading orders: %w", err)
	}

	stages := make([]entities.StageName, 0, len(sessionCfg.Stages))
	for _, stage := range sessionCfg.Stages {
		stages = append(stages, entities.StageName(stage))
	}
	if c.config.StagesFile != "" {
		stages, err = loader.LoadStages(c.config.StagesFile)
		if err != nil {
			return fmt.Errorf("error loading stages: %w", err)
		}
	}

	logger.Info("session data loaded",
		"bom_entries", len(bomEntries),
		"orders", len(seedOrders),
		"stages", len(stages))

	bomRepo := memory.NewBOMRepository(len(bomEntries))
	if err := bomRepo.LoadEntries(bomEntries); err != nil {
		return fmt.Errorf("failed to load BOM entries into repository: %w", err)
	}

	session := services.NewSessionService(
		memory.NewStageRegistry(stages),
		memory.NewOrderRepository(),
		history.NewLog(sessionCfg.HistoryCapacity),
		logger,
	)
	// Seed files list oldest first; front insertion leaves the newest on top
	for _, order := range seedOrders {
		if err := session.AddOrder(order); err != nil {
			return fmt.Errorf("failed to seed order %s: %w", order.ID, err)
		}
	}

	orders, err := session.Orders()
	if err != nil {
		return fmt.Errorf("failed to read orders: %w", err)
	}

	allBOM, err := bomRepo.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to read BOM entries: %w", err)
	}

	pickList, err := services.NewPickListService().BuildPickList(
		orders, allBOM, asOf, windowDays, entities.StageName(sessionCfg.TerminalStage))
	if err != nil {
		return fmt.Errorf("failed to build pick list: %w", err)
	}

	board, err := session.Board()
	if err != nil {
		return fmt.Errorf("failed to build board: %w", err)
	}

	return output.Generate(&output.Result{
		Board:    board,
		PickList: pickList,
	}, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		AsOf:      asOf,
	})
}

func (c *PickListCommand) showHelp() {
	fmt.Println("orderhub - furniture order tracking and material pick lists")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  orderhub -bom bom.csv -orders orders.csv [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -config file    YAML session configuration")
	fmt.Println("  -bom file       BOM CSV (product,component,per)")
	fmt.Println("  -orders file    seed orders CSV")
	fmt.Println("  -stages file    stage sequence CSV (overrides config)")
	fmt.Println("  -as-of date     pick-list reference date, YYYY-MM-DD (default today)")
	fmt.Println("  -window days    rolling window in days (default from config)")
	fmt.Println("  -format fmt     output format: text, json, csv")
	fmt.Println("  -output dir     write results to a directory instead of stdout")
	fmt.Println("  -verbose        dump the effective configuration")
}
