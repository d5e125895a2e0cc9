// Package treasury implements the cash planning core for a multi-entity
// group: debt instruments and their generated cash-flow schedules, manual
// transactions, stress scenarios (FX, rate shocks, financing failure), and
// the balance aggregation used by the reports.
//
// The core is a pure pipeline: GenerateSchedule derives events from debts
// under a StressConfig, MergeEvents folds them with manual entries into one
// chronological stream, and Aggregator walks that stream into running
// balances, monthly summaries and a daily balance calendar. Every function
// takes "now" as an argument; nothing in this package reads the wall clock
// besides date.Today used at the CLI boundary.
package treasury
