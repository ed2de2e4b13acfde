package feature

import (
	"fmt"
	"sort"
)

// countGroup accumulates the occurrence count for one (category, time) pair
type countGroup struct {
	category interface{}
	time     interface{}
	count    int64
}

// groupKey builds a collision-safe hash key for a (category, time) pair
func groupKey(category, timeValue interface{}) string {
	// %#v differentiates types, the separator avoids value collisions
	return fmt.Sprintf("%#v\x00||\x00%#v", category, timeValue)
}

// CountTable counts rows per (category, time) pair.
//
// Conceptually each row contributes a constant Count of 1, the table is
// projected to {category, time, Count}, and groups are summed. The result
// has one row per distinct (category, time) pair holding the pair and its
// occurrence count, sorted by category then time.
func CountTable(rows []map[string]interface{}, categoryColumn, timeColumn string) ([]map[string]interface{}, error) {
	groups := make(map[string]*countGroup)

	for _, row := range rows {
		category, exists := row[categoryColumn]
		if !exists {
			return nil, fmt.Errorf("column %q not found", categoryColumn)
		}
		timeValue, exists := row[timeColumn]
		if !exists {
			return nil, fmt.Errorf("column %q not found", timeColumn)
		}

		key := groupKey(category, timeValue)
		if g, ok := groups[key]; ok {
			g.count++
		} else {
			groups[key] = &countGroup{category: category, time: timeValue, count: 1}
		}
	}

	result := make([]map[string]interface{}, 0, len(groups))
	for _, g := range groups {
		result = append(result, map[string]interface{}{
			categoryColumn: g.category,
			timeColumn:     g.time,
			"Count":        g.count,
		})
	}

	// Natural ordering of the grouping keys
	sort.Slice(result, func(i, j int) bool {
		if cmp := compareValues(result[i][categoryColumn], result[j][categoryColumn]); cmp != 0 {
			return cmp < 0
		}
		return compareValues(result[i][timeColumn], result[j][timeColumn]) < 0
	})

	return result, nil
}

// CategoriesBelowThreshold returns the distinct Category values whose
// Count is strictly below threshold, in first-occurrence order. The input
// is expected to already carry Count and Category columns, typically a
// CountTable result.
func CategoriesBelowThreshold(rows []map[string]interface{}, threshold float64) ([]string, error) {
	seen := make(map[string]bool)
	categories := make([]string, 0)

	for i, row := range rows {
		count, exists := row["Count"]
		if !exists {
			return nil, fmt.Errorf(`column "Count" not found`)
		}
		num, err := valueToNumber(count)
		if err != nil {
			return nil, fmt.Errorf("row %d: column \"Count\": %w", i, err)
		}
		if num >= threshold {
			continue
		}

		category, exists := row["Category"]
		if !exists {
			return nil, fmt.Errorf(`column "Category" not found`)
		}
		name, err := valueToString(category)
		if err != nil {
			return nil, fmt.Errorf("row %d: column \"Category\": %w", i, err)
		}

		if !seen[name] {
			seen[name] = true
			categories = append(categories, name)
		}
	}

	return categories, nil
}

// isNoStreet reports whether a street cell is the no-street placeholder:
// nil, numeric zero, or the string "0"
func isNoStreet(v interface{}) bool {
	if v == nil {
		return true
	}
	if num, ok := toFloat64(v); ok && num == 0 {
		return true
	}
	return v == "0"
}

// CountTableByStreet pivots category frequencies per street.
//
// The result has one row per distinct Category value, labeled by a
// Category column, and one column per distinct Street value holding the
// number of rows with that street and category. Streets carrying the
// no-street placeholder are skipped; street/category combinations that
// never occur are absent from their row rather than zero.
func CountTableByStreet(rows []map[string]interface{}) ([]map[string]interface{}, error) {
	counts := make(map[string]map[string]int64) // category -> street -> count
	categories := make([]string, 0)

	for i, row := range rows {
		streetValue, exists := row["Street"]
		if !exists {
			return nil, fmt.Errorf(`column "Street" not found`)
		}
		if isNoStreet(streetValue) {
			continue
		}
		street, err := valueToString(streetValue)
		if err != nil {
			return nil, fmt.Errorf("row %d: column \"Street\": %w", i, err)
		}

		categoryValue, exists := row["Category"]
		if !exists {
			return nil, fmt.Errorf(`column "Category" not found`)
		}
		category, err := valueToString(categoryValue)
		if err != nil {
			return nil, fmt.Errorf("row %d: column \"Category\": %w", i, err)
		}

		if _, ok := counts[category]; !ok {
			counts[category] = make(map[string]int64)
			categories = append(categories, category)
		}
		counts[category][street]++
	}

	sort.Strings(categories)

	result := make([]map[string]interface{}, 0, len(categories))
	for _, category := range categories {
		pivotRow := make(map[string]interface{}, len(counts[category])+1)
		pivotRow["Category"] = category
		for street, n := range counts[category] {
			pivotRow[street] = n
		}
		result = append(result, pivotRow)
	}

	return result, nil
}
