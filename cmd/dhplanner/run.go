package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dhplan/dhplanner/catalogue"
	"github.com/dhplan/dhplanner/internal/config"
	"github.com/dhplan/dhplanner/pipeline"
)

type runFlags struct {
	configPath   string
	buildings    string
	roads        string
	catalogueDir string
	prices       string
	out          string
}

// newRunCmd builds the `run` subcommand. getLogger is resolved lazily
// since cobra populates PersistentPreRun's logger after newRunCmd runs but
// before RunE fires.
func newRunCmd(getLogger func() *slog.Logger) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the design pipeline over a building/road dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesign(cmd.Context(), getLogger(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to the run configuration (YAML)")
	cmd.Flags().StringVar(&flags.buildings, "buildings", "", "path to the buildings JSON file")
	cmd.Flags().StringVar(&flags.roads, "roads", "", "path to the road segments JSON file (omit for the greenfield strategy)")
	cmd.Flags().StringVar(&flags.catalogueDir, "catalogue-dir", "", "directory holding pipe catalogue tables")
	cmd.Flags().StringVar(&flags.prices, "prices", "", "path to the pipe price table JSON file")
	cmd.Flags().StringVar(&flags.out, "out", ".", "directory to write run results under")
	_ = cmd.MarkFlagRequired("buildings")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// runDesign loads every input named by flags, runs the pipeline to
// completion or cancellation, and writes the result under a fresh
// uuid-named subdirectory of --out (spec §6: persisted run artifacts are
// namespaced per run).
func runDesign(ctx context.Context, logger *slog.Logger, flags runFlags) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		logger.Error("failed to load configuration", "config", flags.configPath, "error", err)
		return err
	}

	buildings, err := loadBuildings(flags.buildings)
	if err != nil {
		logger.Error("failed to load buildings", "buildings", flags.buildings, "error", err)
		return err
	}
	roads, err := loadRoads(flags.roads)
	if err != nil {
		logger.Error("failed to load roads", "roads", flags.roads, "error", err)
		return err
	}

	var cat *catalogue.Catalogue
	var prices catalogue.PriceTable
	if len(buildings) > 1 {
		cat, prices, err = loadCatalogueAndPrices(flags.catalogueDir, flags.prices)
		if err != nil {
			logger.Error("failed to load pipe catalogue", "catalogue-dir", flags.catalogueDir, "prices", flags.prices, "error", err)
			return err
		}
	}

	runID := uuid.New()
	resultsDir := filepath.Join(flags.out, runID.String())
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		logger.Error("failed to create results directory", "out", resultsDir, "error", err)
		return err
	}

	logger.Info("starting run",
		"run_id", runID.String(),
		"buildings", len(buildings),
		"roads", len(roads),
		"installation_strategy", cfg.InstallationStrategy,
		"results_dir", resultsDir,
	)

	result, err := pipeline.Run(ctx, cfg, roads, buildings, cat, prices, resultsDir)
	if err != nil {
		logger.Error("run failed", "run_id", runID.String(), "error", err)
		return err
	}

	outPath := filepath.Join(resultsDir, "result.json")
	if err := writeResult(outPath, result); err != nil {
		logger.Error("failed to write result", "path", outPath, "error", err)
		return err
	}

	logger.Info("run complete",
		"run_id", runID.String(),
		"clusters", len(result.Clusters),
		"total_cost", result.Sums.TotalCost,
		"fitness", result.Sums.Fitness,
		"constraint_broken_count", result.PenaltyCount,
	)
	return nil
}

func loadCatalogueAndPrices(catalogueDir, pricesPath string) (*catalogue.Catalogue, catalogue.PriceTable, error) {
	if catalogueDir == "" || pricesPath == "" {
		return nil, nil, fmt.Errorf("catalogue-dir and prices are required when more than one building is supplied")
	}

	cat, err := catalogue.LoadDir(catalogueDir)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(pricesPath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	prices, err := catalogue.LoadPrices(f)
	if err != nil {
		return nil, nil, err
	}
	if err := prices.Validate(cat); err != nil {
		return nil, nil, err
	}
	return cat, prices, nil
}

func writeResult(path string, result pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	encErr := enc.Encode(result)
	closeErr := f.Close()
	if encErr != nil {
		return encErr
	}
	return closeErr
}
