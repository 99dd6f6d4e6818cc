// Package tracing wraps OpenTelemetry so that the store and the outbound
// service clients can record spans without importing the upstream packages
// directly. Until Init or InitWithExporter is called spans are no-op.
package tracing
