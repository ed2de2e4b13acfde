package feature

// ColumnNames returns all unique column names across rows. Row maps do not
// preserve insertion order, so the result order is unspecified.
func ColumnNames(rows []map[string]interface{}) []string {
	if len(rows) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	columns := make([]string, 0)

	for _, row := range rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}

	return columns
}

// NaNRecords returns the rows that have a missing value in at least one
// column. A value is missing when the cell is nil or the column key is
// absent, measured against the union of column names across all rows.
func NaNRecords(rows []map[string]interface{}) []map[string]interface{} {
	columns := ColumnNames(rows)
	selected := make([]map[string]interface{}, 0)

	for _, row := range rows {
		for _, col := range columns {
			value, exists := row[col]
			if !exists || value == nil {
				selected = append(selected, row)
				break
			}
		}
	}

	return selected
}
