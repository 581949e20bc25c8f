// Package health exposes the storage write probe at GET /health.
package health
