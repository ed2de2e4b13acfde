package output

import (
	"fmt"
	"io"
	"sort"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to convert rows to the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes rows in the formatter's specific format
	Format(rows []map[string]interface{}) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// orderedColumns returns a deterministic column order for heterogeneous
// rows: Category first, Count last, everything else sorted in between.
func orderedColumns(rows []map[string]interface{}) []string {
	columnSet := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			columnSet[col] = true
		}
	}

	columns := make([]string, 0, len(columnSet))
	for col := range columnSet {
		if col == "Category" || col == "Count" {
			continue
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	if columnSet["Category"] {
		columns = append([]string{"Category"}, columns...)
	}
	if columnSet["Count"] {
		columns = append(columns, "Count")
	}

	return columns
}

// formatValue converts a cell value to a string for CSV and table output
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
