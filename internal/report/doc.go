// Package report contains the output sinks that render the aggregated
// procurement data into files: a styled two-sheet Excel workbook, PNG charts
// and a Word document.
//
// The sinks hold no state between runs and never mutate their inputs. Each
// one is a single pass over already-computed tables; failures are limited to
// I/O and rendering-library errors.
package report
