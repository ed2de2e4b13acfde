package feature

import (
	"fmt"
	"strconv"
)

// toFloat64 converts a value to float64 if possible
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// toString converts a value to string if possible
func toString(v interface{}) (string, bool) {
	if str, ok := v.(string); ok {
		return str, true
	}
	return "", false
}

// toBool converts a value to bool if possible
func toBool(v interface{}) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	return false, false
}

// valueToString converts a value to its string representation
func valueToString(v interface{}) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val), nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val), nil
	case float32, float64:
		return fmt.Sprintf("%v", val), nil
	case bool:
		return fmt.Sprintf("%t", val), nil
	default:
		return "", fmt.Errorf("cannot convert %T to string", v)
	}
}

// valueToNumber converts a value to float64, parsing strings if necessary
func valueToNumber(v interface{}) (float64, error) {
	if num, ok := toFloat64(v); ok {
		return num, nil
	}
	if str, ok := v.(string); ok {
		return strconv.ParseFloat(str, 64)
	}
	return 0, fmt.Errorf("cannot convert %T to number", v)
}

// compareValues compares two cell values and returns:
// -1 if a < b
//
//	0 if a == b
//
// +1 if a > b
func compareValues(a, b interface{}) int {
	// Handle nil values
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	// Try numeric comparison
	aNum, aIsNum := toFloat64(a)
	bNum, bIsNum := toFloat64(b)
	if aIsNum && bIsNum {
		if aNum < bNum {
			return -1
		}
		if aNum > bNum {
			return 1
		}
		return 0
	}

	// Try string comparison
	aStr, aIsStr := toString(a)
	bStr, bIsStr := toString(b)
	if aIsStr && bIsStr {
		if aStr < bStr {
			return -1
		}
		if aStr > bStr {
			return 1
		}
		return 0
	}

	// Try boolean comparison
	aBool, aIsBool := toBool(a)
	bBool, bIsBool := toBool(b)
	if aIsBool && bIsBool {
		if !aBool && bBool {
			return -1 // false < true
		}
		if aBool && !bBool {
			return 1 // true > false
		}
		return 0
	}

	// Type mismatch or unsupported types - treat as equal
	return 0
}

// valuesEqual reports whether two cell values agree. Unlike compareValues
// it never treats a type mismatch as equality: values of incomparable
// types do not agree.
func valuesEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	aNum, aIsNum := toFloat64(a)
	bNum, bIsNum := toFloat64(b)
	if aIsNum && bIsNum {
		return aNum == bNum
	}

	aStr, aIsStr := toString(a)
	bStr, bIsStr := toString(b)
	if aIsStr && bIsStr {
		return aStr == bStr
	}

	aBool, aIsBool := toBool(a)
	bBool, bIsBool := toBool(b)
	if aIsBool && bIsBool {
		return aBool == bBool
	}

	return false
}

// cloneRow copies a row so transforms never mutate caller-owned maps
func cloneRow(row map[string]interface{}) map[string]interface{} {
	clone := make(map[string]interface{}, len(row)+1)
	for col, val := range row {
		clone[col] = val
	}
	return clone
}
