// Package feature provides stateless feature-engineering transforms over
// tabular records.
//
// Tables are represented as []map[string]interface{}: an ordered sequence
// of rows, each mapping a column name to a string, number, boolean or nil
// (missing) value. Every transform is a pure function of its inputs: it
// returns a new table (transforms that add columns copy each row before
// modifying it) or a scalar summary, and holds no state between calls.
//
// Transforms are additive and preserve row count, with two exceptions:
// RemoveOutliers and NaNRecords filter rows, and the count-table functions
// aggregate them.
//
// # Column Derivation
//
// Decompose a string timestamp column into calendar parts:
//
//	rows, err := feature.AppendTimeCols(rows, "Dates")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// rows now carry Year, Month, Day, DayOfYear, Hour, Minute
//
// Extract street and intersection names from freeform addresses:
//
//	rows, err := feature.AppendStreetCols(rows, "Address")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Cyclic Encoding
//
// Map a cyclic scalar onto the unit circle so that adjacency wraps
// correctly (hour 23 sits next to hour 0):
//
//	cos, sin := feature.Harmonic(23, feature.DefaultPeriod)
//
// # Counting
//
// Count occurrences per (category, time) pair:
//
//	counts, err := feature.CountTable(rows, "Category", "Day")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// No transform recovers partially: a missing column, an unparseable
// timestamp or an unmappable value fails the whole call with an error
// naming the offending column or row. Callers validate preconditions
// before invoking a transform.
package feature
