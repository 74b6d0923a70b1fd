// Package upstream provides the HTTP plumbing used to talk to the backend catalog API.
//
// It owns the outbound *http.Client and the small Doer interface that loaders
// depend on, so request execution can be swapped for a mock in unit tests
// (see core/upstream/mocks).
//
// # Components
//
//   - Config: base URL and optional request timeout.
//   - NewClient: builds a pooled *http.Client from Config.
//   - Instrument: wraps any Doer so every request is counted and timed.
//
// # Usage
//
//	client := upstream.NewClient(cfg.Upstream)
//	doer := upstream.Instrument(client, recorder)
//	resp, err := doer.Do(req)
package upstream
