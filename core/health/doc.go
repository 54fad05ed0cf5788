// Package health provides HTTP probes for the storefront dev server.
//
// Handlers:
//   - Liveness: process is running (no dependency checks)
//   - Readiness: all dependencies are available
//   - NoContent: returns 204 for minimal overhead
//
// Usage:
//
//	mux.HandleFunc("GET /health/live", health.Liveness)
//	mux.Handle("GET /health/ready", health.Readiness(log,
//		health.HTTPCheck(nil, upstream+"/categories"),
//		redis.Healthcheck(client),
//	))
//
// Dependency checks follow the func(context.Context) error signature.
package health
