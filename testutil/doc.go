// Package testutil provides fixtures and generators shared by tests across
// the repository.
//
// It supplies the reference key schedule used by the block-level test
// vectors, deterministic keys, and random payload generators, so individual
// test files can focus on the property under test instead of fixture
// construction.
package testutil
