// Package io reads and writes worlds in the CSV edge-list format.
//
// # Format
//
// The first line is the fixed header, followed by one line per edge:
//
//	From,To,Cost
//	0,1,7
//	0,2,3.5180940227372566
//
// Node IDs are decimal integers. Costs are written with the shortest
// representation that parses back to the same float64, so a file written by
// [WriteCSV] and read by [ReadCSV] reproduces every edge exactly. Integral
// costs carry no fractional part.
//
// Edges are written in input order. Parallel edges and self loops are kept.
//
// # Export
//
// Use [ExportCSV] to write to a path (the file is created or truncated) or
// [WriteCSV] to write to any io.Writer:
//
//	if err := io.ExportCSV("sparse_world.csv", edges); err != nil {
//	    return err
//	}
//
// A failure partway through leaves a truncated file behind.
//
// # Import
//
// Use [ImportCSV] or [ReadCSV]. A missing or mismatched header, a row that
// does not have exactly three fields, or an unparsable field returns an
// INVALID_FORMAT error naming the line.
package io
