// Package exporter writes result tables to disk: CSV with an optional UTF-8
// BOM for Excel compatibility, and plain multi-sheet xlsx workbooks.
package exporter
