// Package server wires the customers HTTP service: routing, middleware, handlers, and the startup sequence.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation registers method-qualified patterns ("GET /customers") on an [http.ServeMux],
// so a request with the wrong method receives 405 from the mux itself.
//
// # Handlers
//
//	GET /customers → [CustomersHandler], every stored customer as a JSON array
//	GET /health    → [HealthHandler], lifecycle state and row count; 200 only while serving
//	GET /metrics   → [MetricsHandler], Prometheus exposition of request counts, latency and stored customers
//
// # Startup
//
// [App] runs the startup sequence linearly: open storage, create the schema, seed, then listen.
// The listener is opened only after seeding, so requests never see a partially seeded table.
// Progress is tracked by a [Lifecycle] that moves Uninitialized → SchemaReady → Seeded → Serving.
package server
