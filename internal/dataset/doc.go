// Package dataset produces the in-memory procurement order table the report
// pipeline consumes.
//
// The package exposes a Provider interface so the synthetic sample source can
// be swapped for a real one without touching aggregation or rendering. The
// bundled SampleProvider generates a deterministic dataset from a fixed seed
// and an explicit reference time.
package dataset
