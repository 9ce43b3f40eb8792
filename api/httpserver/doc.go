// Package httpserver exposes the codec over HTTP.
//
// The server is a thin wrapper around the cipher core: it parses a
// per-request key, runs the codec, and returns the result. Nothing in this
// package touches the transformation semantics.
//
// # Endpoints
//
// Stateless transforms:
//
//	POST /api/v1/encrypt    {"key": <hex>, "data": <base64>} -> {"data": <base64>}
//	POST /api/v1/decrypt    {"key": <hex>, "data": <base64>} -> {"data": <base64>}
//
// The vault, storing ciphertext under caller-chosen IDs:
//
//	PUT    /api/v1/vault/{id}       encrypt and store
//	POST   /api/v1/vault/{id}/open  load and decrypt
//	DELETE /api/v1/vault/{id}       remove
//
// Keys travel with each request and are never persisted; the store only
// ever sees ciphertext.
//
// # Lifecycle
//
// BaseServer provides liveness (/livez), readiness (/readyz), drain and
// undrain endpoints, optional pprof, request logging, and graceful
// shutdown with a configurable drain window for load balancers.
package httpserver
