package feature

import (
	"fmt"
	"math"
)

// DefaultPeriod is the period of an hour-of-day cycle. Use 12 for
// month-of-year values and 7 for weekday values.
const DefaultPeriod = 24.0

// Harmonic maps a cyclic scalar onto the unit circle, returning
// (cos(2π·value/period), sin(2π·value/period)).
//
// The encoding preserves wrap-around adjacency: hour 23 and hour 0 land
// next to each other, which a plain linear encoding loses. Harmonic is
// periodic in its first argument with period p: Harmonic(v, p) equals
// Harmonic(v+p, p) up to floating-point error.
func Harmonic(value, period float64) (float64, float64) {
	angle := value * 2 * math.Pi / period
	return math.Cos(angle), math.Sin(angle)
}

// AppendHarmonicCols adds <column>_cos and <column>_sin columns holding
// the harmonic encoding of a numeric column with the given period.
func AppendHarmonicCols(rows []map[string]interface{}, column string, period float64) ([]map[string]interface{}, error) {
	result := make([]map[string]interface{}, 0, len(rows))

	for i, row := range rows {
		value, exists := row[column]
		if !exists {
			return nil, fmt.Errorf("column %q not found", column)
		}

		num, err := valueToNumber(value)
		if err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w", i, column, err)
		}

		cos, sin := Harmonic(num, period)
		clone := cloneRow(row)
		clone[column+"_cos"] = cos
		clone[column+"_sin"] = sin
		result = append(result, clone)
	}

	return result, nil
}
