// Package main provides the entry point for the adops CLI.
//
// adops is a toolkit for ad-operations reporting: it reconciles supply-chain
// compliance reports against a canonical ads.txt referential, diffs
// performance exports between periods, distributes error counts per website,
// and models revenue scenarios.
//
// Usage:
//
//	adops reconcile --report report.xlsx --reference reference.csv
//	adops highlight --latest this_week.csv --oldest last_week.csv
//
// See --help for all available options.
package main

// main is the entry point for adops.
func main() {
	Execute()
}
