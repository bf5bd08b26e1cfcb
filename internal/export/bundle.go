package export

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"datalens/domain/report"
	"datalens/internal/errors"

	"golang.org/x/sync/errgroup"
)

// Artifact filenames inside a bundle directory.
const (
	CleanedDataFile       = "cleaned_data.csv"
	MissingReportFile     = "missing_values_report.csv"
	CorrelationMatrixFile = "correlation_matrix.csv"
	WorkbookFile          = "analysis.xlsx"
	SummaryMarkdownFile   = "report.md"
	SummaryHTMLFile       = "report.html"
)

// WriteBundle writes every export artifact for one analysis result into
// dir, creating it if needed. The artifacts are independent, so they are
// written concurrently; the first failure cancels the rest.
func WriteBundle(ctx context.Context, dir string, result *report.AnalysisResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create export directory")
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		return writeFile(filepath.Join(dir, CleanedDataFile), func(f *os.File) error {
			return WriteCleanedCSV(f, result.Cleaned)
		})
	})
	g.Go(func() error {
		return writeFile(filepath.Join(dir, MissingReportFile), func(f *os.File) error {
			return WriteMissingReportCSV(f, result.Missing)
		})
	})
	g.Go(func() error {
		return writeFile(filepath.Join(dir, CorrelationMatrixFile), func(f *os.File) error {
			return WriteCorrelationCSV(f, result.Correlation)
		})
	})
	g.Go(func() error {
		if err := WriteWorkbook(filepath.Join(dir, WorkbookFile), result); err != nil {
			return errors.ExportError(WorkbookFile, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := os.WriteFile(filepath.Join(dir, SummaryMarkdownFile), MarkdownSummary(result), 0o644); err != nil {
			return errors.ExportError(SummaryMarkdownFile, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := os.WriteFile(filepath.Join(dir, SummaryHTMLFile), HTMLSummary(result), 0o644); err != nil {
			return errors.ExportError(SummaryHTMLFile, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Printf("[Export] Wrote analysis bundle to %s", dir)
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.ExportError(filepath.Base(path), err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return errors.ExportError(filepath.Base(path), err)
	}
	return nil
}
