// Package supplychain implements the ads.txt supply-chain reconciliation
// engine: it parses free-text "missing lines" report cells into candidate
// ads.txt entries, classifies each entry against a referential of known
// lines through a cascade of increasingly lossy matching strategies, and
// aggregates the classifications into per-(domain, publisher) summaries.
//
// The engine is synchronous and deterministic: reconciliation is a pure
// function of the report rows and the reference index, and output order
// follows first appearance of each (domain, name) key.
package supplychain
