// Package store persists named ciphertext blobs for the vault service.
//
// Blobs are opaque: the store never sees keys or plaintext, only the
// encoded output of the codec. Two implementations are provided, a
// PostgreSQL-backed store for deployments and an in-memory store for tests
// and unconfigured single-node setups.
package store
