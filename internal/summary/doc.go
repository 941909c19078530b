// Package summary derives the aggregate views the report sinks render: the
// monthly summary table (order counts, exact spend totals, month-over-month
// savings) and the top-spend drug ranking.
//
// All currency arithmetic uses exact decimals; totals are conserved, meaning
// the sum of monthly spend always equals the sum of order values. The first
// month in range carries no savings figure at all (nil), which is distinct
// from a month whose savings happen to be zero.
package summary
