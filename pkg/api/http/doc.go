// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Root greeting and version reporting
//   - Health checks
//   - Mock predictions
//   - Prometheus metrics
package http
