// Package ports defines the interfaces between the analysis core and its
// collaborators.
package ports

import (
	"datalens/domain/report"
	"datalens/domain/table"
)

// TableLoader parses raw upload bytes into a table.
type TableLoader interface {
	Load(content []byte, filename string) (*table.Table, error)
}

// Analyzer runs the exploratory analysis pipeline over a loaded table.
type Analyzer interface {
	Analyze(t *table.Table) (*report.AnalysisResult, error)
}

// Cleaner produces a cleaned copy of a table without full analysis.
type Cleaner interface {
	Clean(t *table.Table) (*table.Table, error)
}

// LoaderFunc adapts a plain function to the TableLoader interface.
type LoaderFunc func(content []byte, filename string) (*table.Table, error)

func (f LoaderFunc) Load(content []byte, filename string) (*table.Table, error) {
	return f(content, filename)
}
