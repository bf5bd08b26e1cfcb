package export

import (
	"bytes"
	"fmt"

	"datalens/domain/report"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// MarkdownSummary renders a human-readable analysis digest as Markdown.
func MarkdownSummary(result *report.AnalysisResult) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# Dataset Analysis\n\n")
	fmt.Fprintf(&b, "%d rows x %d columns, ~%d bytes in memory.\n\n",
		result.Overview.Rows, result.Overview.Columns, result.Overview.MemoryBytes)

	fmt.Fprintf(&b, "## Missing Values\n\n")
	fmt.Fprintf(&b, "| Column | Missing | %% |\n|---|---|---|\n")
	for _, e := range result.Missing.Entries {
		fmt.Fprintf(&b, "| %s | %d | %.2f |\n", e.Column, e.MissingCount, e.MissingPercent)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Duplicates\n\n")
	fmt.Fprintf(&b, "%d duplicate rows (%.2f%% of the dataset).\n\n",
		result.Duplicates.TotalDuplicates, result.Duplicates.DuplicatePercent)

	if len(result.Summaries.Numeric) > 0 {
		fmt.Fprintf(&b, "## Numeric Columns\n\n")
		fmt.Fprintf(&b, "| Column | Count | Mean | Std | Min | P25 | Median | P75 | Max |\n")
		fmt.Fprintf(&b, "|---|---|---|---|---|---|---|---|---|\n")
		for _, n := range result.Summaries.Numeric {
			fmt.Fprintf(&b, "| %s | %d | %.4g | %.4g | %.4g | %.4g | %.4g | %.4g | %.4g |\n",
				n.Column, n.Count, n.Mean, n.StdDev, n.Min, n.P25, n.Median, n.P75, n.Max)
		}
		b.WriteString("\n")
	}

	if len(result.Summaries.Categorical) > 0 {
		fmt.Fprintf(&b, "## Categorical Columns\n\n")
		fmt.Fprintf(&b, "| Column | Unique | Most Common | Count | %% |\n|---|---|---|---|---|\n")
		for _, c := range result.Summaries.Categorical {
			fmt.Fprintf(&b, "| %s | %d | %s | %d | %.2f |\n",
				c.Column, c.UniqueValues, c.MostCommon, c.MostCommonCount, c.MostCommonPercent)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Correlation\n\n")
	if result.Correlation.Status == report.OutcomeSkipped {
		fmt.Fprintf(&b, "%s.\n\n", result.Correlation.Reason)
	} else if result.Correlation.Matrix.IsEmpty() {
		fmt.Fprintf(&b, "Fewer than two numeric columns; no correlation to report.\n\n")
	} else {
		fmt.Fprintf(&b, "Computed over %d numeric columns; see the correlation matrix export.\n\n",
			len(result.Correlation.Matrix.Columns))
	}

	fmt.Fprintf(&b, "## Outliers\n\n")
	if result.Outliers.Status == report.OutcomeSkipped {
		fmt.Fprintf(&b, "%s.\n", result.Outliers.Reason)
	} else {
		fmt.Fprintf(&b, "| Column | Count | %% | Lower | Upper |\n|---|---|---|---|---|\n")
		for _, name := range sortedKeys(result.Outliers.Columns) {
			r := result.Outliers.Columns[name]
			fmt.Fprintf(&b, "| %s | %d | %.2f | %.4g | %.4g |\n",
				r.Column, r.Count, r.Percent, r.LowerBound, r.UpperBound)
		}
	}

	if result.Cleaned != nil {
		fmt.Fprintf(&b, "\n## Cleaned Dataset\n\n")
		fmt.Fprintf(&b, "%d rows after duplicate removal and imputation.\n", result.Cleaned.Rows())
	}

	return b.Bytes()
}

// HTMLSummary converts the Markdown digest into a standalone HTML document.
func HTMLSummary(result *report.AnalysisResult) []byte {
	md := MarkdownSummary(result)
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	return markdown.ToHTML(md, p, renderer)
}
