package feature

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// intersectionPattern matches "word word / word word" address forms
	intersectionPattern = regexp.MustCompile(`\w+\s\w+\s/\s\w+\s\w+`)

	// streetPattern captures the two words following a house number and
	// block prefix, e.g. "MAIN ST" in "100 BLOCK OF MAIN ST"
	streetPattern = regexp.MustCompile(`\d+\s\w+\s\w+\s(\w+\s\w+)`)
)

// NoMatchPlaceholder is stored in the Street and Intersection columns when
// an address contains no extractable pattern. A blank placeholder rather
// than a nil cell keeps unmatched addresses out of NaNRecords and lets
// per-street counts group them under a single bucket.
const NoMatchPlaceholder = " "

// AppendStreetCols extracts Street and Intersection columns from a
// freeform address column.
//
// The Intersection value is the first "word word / word word" pattern in
// the address, and the Street value is the trailing two words after a
// leading house number and two words. When a pattern is absent, or the
// cell is not a string, the placeholder " " is stored instead.
func AppendStreetCols(rows []map[string]interface{}, addressColumn string) ([]map[string]interface{}, error) {
	result := make([]map[string]interface{}, 0, len(rows))

	for _, row := range rows {
		value, exists := row[addressColumn]
		if !exists {
			return nil, fmt.Errorf("column %q not found", addressColumn)
		}

		street := NoMatchPlaceholder
		intersection := NoMatchPlaceholder
		if addr, ok := value.(string); ok {
			if m := intersectionPattern.FindString(addr); m != "" {
				intersection = m
			}
			if m := streetPattern.FindStringSubmatch(addr); m != nil {
				street = m[1]
			}
		}

		clone := cloneRow(row)
		clone["Street"] = street
		clone["Intersection"] = intersection
		result = append(result, clone)
	}

	return result, nil
}

// AppendAddressEncodedCol adds an address_encoded column flagging whether
// the delimiter substring occurs in the address column: 1 if present,
// 0 otherwise.
func AppendAddressEncodedCol(rows []map[string]interface{}, delimiter, addressColumn string) ([]map[string]interface{}, error) {
	result := make([]map[string]interface{}, 0, len(rows))

	for i, row := range rows {
		value, exists := row[addressColumn]
		if !exists {
			return nil, fmt.Errorf("column %q not found", addressColumn)
		}

		addr, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("row %d: column %q: cannot test %T for delimiter", i, addressColumn, value)
		}

		var flag int64
		if strings.Contains(addr, delimiter) {
			flag = 1
		}

		clone := cloneRow(row)
		clone["address_encoded"] = flag
		result = append(result, clone)
	}

	return result, nil
}
