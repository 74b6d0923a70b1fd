// Package metrics exposes Prometheus instrumentation for the catalog service.
//
// A Manager owns its own registry so tests and multiple instances never collide
// on the global default registerer.
//
// # Metrics
//
//   - catalog_upstream_requests_total{outcome}: backend calls by outcome
//     (success, upstream_error, transport_error).
//   - catalog_upstream_request_duration_seconds: backend call latency.
//   - catalog_http_requests_total{route,method,status}: inbound page requests.
//
// # Usage
//
//	m := metrics.NewManager()
//	doer := upstream.Instrument(client, m)
//	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
package metrics
