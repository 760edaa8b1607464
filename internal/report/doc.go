// Package report turns derived entity lists into output tables and writes
// them in one of several formats.
//
// Each report is registered under a key and built from a loaded
// core.Dataset on every call, so results always reflect the dataset:
//
//	table, err := report.Generate(report.CustomersRanking, ds)
//	if err != nil {
//	    return err
//	}
//	f, err := report.NewFormatter(report.FormatCSV, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	return f.Format(table)
//
// # Formats
//
//   - csv: header row plus one record per row (default)
//   - json: JSON Lines, one object per row
//   - table: aligned text table for terminals
//   - parquet: typed columns, one file per report
package report
