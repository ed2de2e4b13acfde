package feature

import "fmt"

// RemoveOutliers keeps only rows whose numeric value in column lies
// strictly between low and high. Rows equal to either bound are dropped;
// both thresholds are exclusive.
func RemoveOutliers(rows []map[string]interface{}, column string, low, high float64) ([]map[string]interface{}, error) {
	filtered := make([]map[string]interface{}, 0)

	for i, row := range rows {
		value, exists := row[column]
		if !exists {
			return nil, fmt.Errorf("column %q not found", column)
		}

		num, err := valueToNumber(value)
		if err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w", i, column, err)
		}

		if num > low && num < high {
			filtered = append(filtered, row)
		}
	}

	return filtered, nil
}
