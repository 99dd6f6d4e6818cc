// Package idgen generates the identifiers given to runs, processing jobs
// and journal events. Tests replace NewFunc to obtain stable ids.
package idgen
