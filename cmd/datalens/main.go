package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"datalens/adapters/ingest"
	"datalens/app"
	"datalens/internal/config"
	"datalens/internal/export"
	"datalens/internal/session"
	"datalens/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	service *app.AnalysisService

	flagOutDir string
	flagJSON   bool
)

var rootCmd = &cobra.Command{
	Use:   "datalens",
	Short: "Exploratory analysis for tabular datasets",
	Long: `datalens profiles a CSV or Excel dataset: shape and types, missing
values, duplicates, per-column summaries, correlations, IQR outliers, and a
cleaned copy with duplicates removed and missing values imputed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; environment variables win regardless.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("[CLI] Warning: could not load .env: %v", err)
		}
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		registry := session.NewRegistry(cfg.Session.HandleTTL)
		service = app.NewAnalysisService(cfg, ports.LoaderFunc(ingest.LoadBytes), registry)
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Run the full analysis and write the export bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		ctx := context.Background()
		handle, result, err := service.AnalyzeUpload(ctx, content, filepath.Base(path))
		if err != nil {
			return err
		}

		if flagJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		outDir := flagOutDir
		if outDir == "" {
			outDir = cfg.Export.OutputDir
		}
		if err := export.WriteBundle(ctx, outDir, result); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Analysis bundle written to %s (handle %s)\n", outDir, handle.ID)
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Write a de-duplicated, imputed copy of the dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		cleaned, err := service.CleanUpload(content, filepath.Base(path))
		if err != nil {
			return err
		}

		outDir := flagOutDir
		if outDir == "" {
			outDir = cfg.Export.OutputDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", outDir, err)
		}
		outPath := filepath.Join(outDir, export.CleanedDataFile)
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		defer f.Close()
		if err := export.WriteCleanedCSV(f, cleaned); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleaned data written to %s (%d rows)\n", outPath, cleaned.Rows())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutDir, "out", "o", "", "output directory (default from DATALENS_EXPORT_DIR)")
	analyzeCmd.Flags().BoolVar(&flagJSON, "json", false, "print the analysis result as JSON instead of writing files")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(cleanCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
