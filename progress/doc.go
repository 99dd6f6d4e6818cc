// Package progress aggregates counters of processing jobs (submitted,
// running, completed, failed) for display on the dashboard.
package progress
