package feature

import (
	"fmt"
	"math"
	"time"
)

// timestampLayouts are tried in order when parsing timestamp cells
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// parseTimestamp parses a timestamp cell against the accepted layouts
func parseTimestamp(v interface{}) (time.Time, error) {
	str, err := valueToString(v)
	if err != nil {
		return time.Time{}, err
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", str)
}

// AppendTimeCols parses the timestamp column and adds Year, Month, Day,
// DayOfYear, Hour and Minute columns.
//
// The timestamp cell itself is rewritten in RFC3339 form, and Day holds
// the calendar date only ("2006-01-02"). RFC3339 is among the accepted
// input layouts, so re-running the decomposition on an already-decomposed
// table yields the same derived columns. A parse failure on any row fails
// the whole call.
func AppendTimeCols(rows []map[string]interface{}, timestampColumn string) ([]map[string]interface{}, error) {
	result := make([]map[string]interface{}, 0, len(rows))

	for i, row := range rows {
		value, exists := row[timestampColumn]
		if !exists {
			return nil, fmt.Errorf("column %q not found", timestampColumn)
		}

		ts, err := parseTimestamp(value)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		clone := cloneRow(row)
		clone[timestampColumn] = ts.Format(time.RFC3339)
		clone["Year"] = int64(ts.Year())
		clone["Month"] = int64(ts.Month())
		clone["Day"] = ts.Format("2006-01-02")
		clone["DayOfYear"] = int64(ts.YearDay())
		clone["Hour"] = int64(ts.Hour())
		clone["Minute"] = int64(ts.Minute())
		result = append(result, clone)
	}

	return result, nil
}

// weekdayNums maps weekday names to their calendar-order index
var weekdayNums = map[string]int64{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// AppendWeekdayNumCol maps a weekday-name column to a weekdayNumerical
// column of integers 0 (Monday) through 6 (Sunday). A name outside the
// Monday..Sunday set is a hard failure, not a silent default.
func AppendWeekdayNumCol(rows []map[string]interface{}, weekdayColumn string) ([]map[string]interface{}, error) {
	result := make([]map[string]interface{}, 0, len(rows))

	for i, row := range rows {
		value, exists := row[weekdayColumn]
		if !exists {
			return nil, fmt.Errorf("column %q not found", weekdayColumn)
		}

		name, err := valueToString(value)
		if err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w", i, weekdayColumn, err)
		}

		num, ok := weekdayNums[name]
		if !ok {
			return nil, fmt.Errorf("row %d: column %q: unknown weekday %q", i, weekdayColumn, name)
		}

		clone := cloneRow(row)
		clone["weekdayNumerical"] = num
		result = append(result, clone)
	}

	return result, nil
}

// seasonByMonth maps month numbers to season codes: winter=1, spring=2,
// summer=3, autumn=4
var seasonByMonth = map[int64]int64{
	12: 1, 1: 1, 2: 1,
	3: 2, 4: 2, 5: 2,
	6: 3, 7: 3, 8: 3,
	9: 4, 10: 4, 11: 4,
}

// AppendSeasonCol maps a numeric month column to a Season column of codes
// 1 through 4. Month values outside 1..12, non-integral numbers and
// non-numeric cells yield a nil Season cell rather than an error, so the
// gaps surface later through NaNRecords.
func AppendSeasonCol(rows []map[string]interface{}, monthColumn string) ([]map[string]interface{}, error) {
	result := make([]map[string]interface{}, 0, len(rows))

	for _, row := range rows {
		value, exists := row[monthColumn]
		if !exists {
			return nil, fmt.Errorf("column %q not found", monthColumn)
		}

		clone := cloneRow(row)
		clone["Season"] = nil
		if num, ok := toFloat64(value); ok && num == math.Trunc(num) {
			if code, mapped := seasonByMonth[int64(num)]; mapped {
				clone["Season"] = code
			}
		}
		result = append(result, clone)
	}

	return result, nil
}
