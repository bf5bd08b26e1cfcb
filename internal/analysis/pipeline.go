// Package analysis implements the exploratory analysis pipeline: a fixed
// sequence of tabular statistics over a loaded table, with a size-based
// policy that bounds worst-case latency on large inputs.
package analysis

import (
	"fmt"
	"log"

	"datalens/domain/report"
	"datalens/domain/table"
	"datalens/internal"
	"datalens/internal/config"
)

// Pipeline orchestrates the analysis steps. It holds only configuration;
// every run is independent, so one Pipeline is safe to share across
// concurrent callers.
type Pipeline struct {
	cfg    config.AnalysisConfig
	logger *internal.Logger
}

// NewPipeline creates a pipeline with the given tuning configuration.
func NewPipeline(cfg config.AnalysisConfig) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		logger: internal.NewDefaultLogger(),
	}
}

// Analyze runs the full pipeline over a loaded table and assembles the
// aggregate result. Tables above the configured row threshold run in
// reduced mode: correlation and outlier detection are skipped and tagged as
// such. The pipeline is wholly successful or wholly failed; the first error
// aborts the run and propagates unchanged.
func (p *Pipeline) Analyze(t *table.Table) (*report.AnalysisResult, error) {
	reduced := t.Rows() > p.cfg.LargeRowThreshold
	mode := "standard"
	if reduced {
		mode = "reduced"
	}
	log.Printf("[Pipeline] Analyzing table: %d rows x %d columns (%s mode)", t.Rows(), t.Cols(), mode)

	result := &report.AnalysisResult{
		Overview:   BuildOverview(t),
		Missing:    AnalyzeMissing(t),
		Duplicates: DetectDuplicates(t, p.cfg.DuplicateSampleLimit),
		Summaries:  SummarizeColumns(t),
	}
	p.logger.Debug("[Pipeline] Summarized %d numeric and %d categorical columns",
		len(result.Summaries.Numeric), len(result.Summaries.Categorical))

	if reduced {
		reason := fmt.Sprintf("skipped for large dataset (>%d rows)", p.cfg.LargeRowThreshold)
		result.Correlation = report.CorrelationOutcome{Status: report.OutcomeSkipped, Reason: reason}
		result.Outliers = report.OutlierOutcome{Status: report.OutcomeSkipped, Reason: reason}
	} else {
		result.Correlation = report.CorrelationOutcome{
			Status: report.OutcomeComputed,
			Matrix: Correlate(t),
		}
		result.Outliers = report.OutlierOutcome{
			Status:  report.OutcomeComputed,
			Columns: OutlierSummary(t),
		}
	}

	cleaned, err := Clean(t)
	if err != nil {
		return nil, fmt.Errorf("cleaning failed: %w", err)
	}
	result.Cleaned = cleaned

	log.Printf("[Pipeline] Analysis complete: %d duplicates, %d cleaned rows", result.Duplicates.TotalDuplicates, cleaned.Rows())
	return result, nil
}
