// Package dataprocessing converts raw Alveograph instrument text into
// aligned batches ready for export.
//
// The package is organized into two main components:
//
// 1. Parser: scans one raw instrument file for the configured marker
// line and decomposes every following data line into a labeled numeric
// measurement.
//
// 2. Aligner: validates that a batch of parsed records shares one
// column schema (same headers, same order) before any worksheet is
// written.
//
// # Usage
//
//	record, err := dataprocessing.Parse("trial_01.txt", rawText, store)
//	if err != nil {
//	    return err
//	}
//	batch, err := dataprocessing.Align(records)
//	if err != nil {
//	    return err
//	}
//
// # Data Flow
//
//	Instrument text → Parse → TestData → Align → AlignedBatch → exporter
//
// An AlignedBatch can only be produced by a successful Align call, so
// the align-before-export precondition holds by construction.
//
// # Error Handling
//
// All failures carry enough context for the caller to name the problem
// to the user: MalformedRowError includes the offending line number and
// content, SchemaMismatchError names the record and both header
// sequences. Functions in this package never log.
package dataprocessing
