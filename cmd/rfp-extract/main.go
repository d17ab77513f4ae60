package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/osuji-k/rfp-extractor/internal/common"
	"github.com/osuji-k/rfp-extractor/internal/export"
	"github.com/osuji-k/rfp-extractor/internal/llm"
	"github.com/osuji-k/rfp-extractor/internal/pipeline"
	"github.com/osuji-k/rfp-extractor/internal/textsource"
)

var (
	flagDir      string
	flagOut      string
	flagLLM      string
	flagModel    string
	flagWorkers  int
	flagXLSX     string
	flagProgress bool
)

var rootCmd = &cobra.Command{
	Use:   "rfp-extract",
	Short: "Extract structured procurement fields from RFP documents",
	Long: `rfp-extract walks a directory of solicitation documents (PDF, HTML, plain
text), runs the rule-based field extractor over each one, optionally refines
the result with an LLM pass, and writes one JSON record per document.`,
	RunE: runBatch,
}

func init() {
	rootCmd.Flags().StringVarP(&flagDir, "dir", "d", "", "input directory to scan (overrides RFP_INPUT_DIR)")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output directory for JSON records (overrides RFP_OUTPUT_DIR)")
	rootCmd.Flags().StringVar(&flagLLM, "llm", "", "LLM provider: gemini, groq, or empty for rule-only (overrides LLM_PROVIDER)")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "LLM model name (overrides LLM_MODEL)")
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "concurrent documents (overrides RFP_WORKERS)")
	rootCmd.Flags().StringVar(&flagXLSX, "xlsx", "", "write a batch summary workbook to this path (overrides RFP_XLSX_PATH)")
	rootCmd.Flags().BoolVar(&flagProgress, "progress", true, "show a progress bar")
}

func runBatch(cmd *cobra.Command, args []string) error {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("run_id", uuid.New().String())
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if flagDir != "" {
		cfg.Input.Dir = flagDir
	}
	if flagOut != "" {
		cfg.Output.Dir = flagOut
	}
	if flagLLM != "" {
		cfg.LLM.Provider = flagLLM
	}
	if flagModel != "" {
		cfg.LLM.Model = flagModel
	}
	if flagWorkers > 0 {
		cfg.Output.Workers = flagWorkers
	}
	if flagXLSX != "" {
		cfg.Output.XLSXPath = flagXLSX
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := llm.NewProvider(llm.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		Timeout:  cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	processor := pipeline.NewProcessor(logger, textsource.NewAcquirer(logger), provider)
	runner := &pipeline.Runner{
		Processor: processor,
		Workers:   cfg.Output.Workers,
		Progress:  flagProgress,
	}

	ctx := context.Background()
	logger.Info("batch.start",
		"input_dir", cfg.Input.Dir,
		"output_dir", cfg.Output.Dir,
		"workers", cfg.Output.Workers,
		"llm_provider", cfg.LLM.Provider,
	)

	results, stats, err := runner.Run(ctx, cfg.Input.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("batch run: %w", err)
	}

	if cfg.Output.XLSXPath != "" {
		if err := export.WriteSummaryXLSX(cfg.Output.XLSXPath, results, logger); err != nil {
			logger.Error("batch.xlsx_failed", "path", cfg.Output.XLSXPath, "error", err)
		}
	}

	logger.Info("batch.done",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"llm_used", stats.LLMUsed,
	)

	fmt.Printf("Processed %d document(s): %d succeeded, %d failed, %d used the LLM pass\n",
		stats.Matched, stats.Succeeded, stats.Failed, stats.LLMUsed)
	for _, res := range results {
		if res.Err != "" {
			fmt.Printf("- %s: %s\n", res.Path, res.Err)
		}
	}
	if cfg.Output.XLSXPath != "" {
		fmt.Printf("Summary workbook: %s\n", cfg.Output.XLSXPath)
	}

	if stats.Failed > 0 {
		return fmt.Errorf("%d document(s) failed", stats.Failed)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
