// Package output provides formatters for rendering record tables to a
// caller-supplied writer.
//
// This package defines the Formatter interface and provides
// implementations for common output formats. All formatters work with
// rows represented as []map[string]interface{}.
//
// # Supported Formats
//
//   - JSON Lines: One JSON object per line (suitable for streaming)
//   - CSV: Comma-separated values with header row
//   - Table: Aligned text table, suited to count and pivot tables
//
// # Basic Usage
//
// Using the table formatter:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(rows); err != nil {
//	    log.Fatal(err)
//	}
//
// # Using as String
//
// Write to a bytes buffer to get string output:
//
//	var buf bytes.Buffer
//	formatter := output.NewCSVFormatter(&buf)
//	if err := formatter.Format(rows); err != nil {
//	    log.Fatal(err)
//	}
//	csvString := buf.String()
//
// # Column Ordering
//
// The CSV and table formatters emit columns in a deterministic order: a
// Category column first, a Count column last, and everything else sorted
// alphabetically in between. That keeps count and pivot tables readable
// without the caller specifying an order.
//
// # Type Handling
//
// Strings, numbers and booleans are output directly; nil cells render as
// an empty field in CSV and table output and as JSON null.
package output
