// Package cmd provides the CLI commands.
//
// # Commands
//
// gridaes: Encrypts or decrypts a single file with a password-derived key.
//
//	go run ./cmd/gridaes --in plain.txt --out secret.bin --password hunter2
//	go run ./cmd/gridaes --decrypt --in secret.bin --out plain.txt --password hunter2
//
// vaultd: Runs the HTTP vault service with stateless transform endpoints
// and ciphertext storage backed by PostgreSQL or memory.
//
//	go run ./cmd/vaultd --config=vaultd.yaml
//	go run ./cmd/vaultd --addr=:9090 --pprof
//
// # Configuration
//
// vaultd supports a YAML configuration file via the --config flag.
// Command-line flags override config file values.
package cmd
