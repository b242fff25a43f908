package latex

import (
	"fmt"
	"strings"
)

// NewTabular creates tabular environment node, rows are rendered as cells joined with & and separated with \\.
// An empty row is rendered as \hline. Cells are escaped, rows are copied.
func NewTabular(spec, pos string, rows [][]string) (*Node, error) {
	columns := len(ColumnSpecs(spec))
	if columns == 0 {
		return nil, fmt.Errorf("column spec %q does not declare any columns", spec)
	}

	for index, row := range rows {
		if len(row) > columns {
			return nil, fmt.Errorf("row %d has %d cells, but only %d columns are declared", index, len(row), columns)
		}
	}

	if strings.ContainsAny(pos, "[]") {
		return nil, fmt.Errorf("invalid position %q", pos)
	}

	params := optional(pos) + required(spec)
	if err := Validate(params); err != nil {
		return nil, err
	}

	return &Node{Kind: TabularKind, Params: params, Rows: cloneRows(rows)}, nil
}
