// Package featcat provides stateless feature-engineering transforms for
// tabular records.
//
// Featcat operates on in-memory tables represented as rows of
// map[string]interface{}, the same shape produced by columnar file readers
// and SQL-style row pipelines. Each transform is an independent pure
// function: it takes a table (plus scalar parameters such as column names,
// thresholds or a cyclic period) and returns a derived table or a scalar
// summary. There is no shared state between calls and no I/O; callers own
// both the input table and the destination of any formatted output.
//
// # Packages
//
// The library is organized into the following packages:
//
//   - feature: column derivation, cyclic encoding, outlier filtering,
//     counting and aggregation, accuracy scoring
//   - output: JSON Lines, CSV and text-table formatters for derived tables
//
// # Quick Start
//
// Derive time and address features from incident records:
//
//	rows, err := feature.AppendTimeCols(rows, "Dates")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, err = feature.AppendStreetCols(rows, "Address")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	counts, err := feature.CountTable(rows, "Category", "Day")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(counts); err != nil {
//	    log.Fatal(err)
//	}
package featcat
