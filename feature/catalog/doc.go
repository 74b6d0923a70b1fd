// Package catalog implements the catalog item page.
//
// Given an item identifier taken from the page URL, it fetches the record from
// the backend API at {base}/catalog/{item} and supplies it to the page renderer.
//
// # Loading
//
// ItemLoader performs exactly one GET per call, with no retries and no caching.
// The backend wraps records as {"data": ...}; the wrapper is discarded.
//
// Failures come in two tiers:
//   - A non-2xx status becomes an *UpstreamError carried in Result.Err. Its
//     message is always "Could not load the item" and the body is ignored.
//   - Transport failures and bodies that are not a valid envelope (including a
//     missing "data" key, reported as *DecodeError) are returned as errors and
//     left to Fiber's error handler.
//
// # HTTP Endpoints
//
//   - GET /catalog/:item : Render the item page (HTML, or JSON on request).
package catalog
