package analysis

import (
	"testing"

	"datalens/domain/table"

	"github.com/stretchr/testify/require"
)

// mustTable builds a table from name -> values pairs in declaration order.
func mustTable(t *testing.T, columns ...table.Column) *table.Table {
	t.Helper()
	tbl, err := table.New(columns)
	require.NoError(t, err)
	return tbl
}

func col(name string, values ...string) table.Column {
	return table.Column{Name: name, Values: values}
}
