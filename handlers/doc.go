// Package handlers provides HTTP request handlers for the hello service.
//
// Overview
//
// Handlers are plain gin.HandlerFunc values registered by the root router:
//   - root.go: greeting endpoint (GET /)
//   - items.go: item echo endpoint (GET /items/:item_id)
//   - health.go: health check endpoint (GET /healthz)
//   - errors.go: 404 and 405 fallbacks
//
// Request Flow
//
// Each handler binds its inputs through gin, asks the services package for
// the response payload, updates metrics and writes JSON. Handlers keep no
// state between requests.
//
// Error Handling
//
// The only input that can be rejected is the item_id path segment. When gin
// cannot coerce it to an integer the handler answers 422 with a structured
// {"detail": [...]} body. Framework-level failures use {"detail": "<reason>"}:
//   - 404: Not Found (no route)
//   - 405: Method Not Allowed (route exists for another method)
//
// Constants
//
// Log field keys are defined as constants for consistency:
//   - LogFieldEndpoint: handler name
//   - LogFieldField: rejected parameter name
//   - LogFieldInput: rejected raw value
package handlers
