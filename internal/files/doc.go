// Package files is the input boundary: it reads compliance report workbooks,
// reference sheet CSVs, and the metric and error exports the other engines
// consume, resolving flexible column headers so exports from different tools
// load without manual cleanup.
package files
