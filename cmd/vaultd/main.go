// Command vaultd runs the HTTP vault service.
//
// The service exposes stateless encrypt/decrypt endpoints and a vault that
// stores ciphertext under caller-chosen IDs. Keys travel with each request
// and are never persisted.
//
// # Configuration File
//
// Create a YAML file with service settings:
//
//	listen_addr: ":8080"
//	enable_pprof: false
//	workers: 4
//	postgres:
//	  host: "localhost"
//	  port: 5432
//	  user: "vault"
//	  password: "secret"
//	  database: "vault"
//	  ssl_mode: "disable"
//
// Without a postgres section the service keeps blobs in memory.
//
// # Usage
//
//	go run ./cmd/vaultd --config=vaultd.yaml
//	go run ./cmd/vaultd --addr=:9090 --pprof
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kruug/gridaes/api/httpserver"
	"github.com/kruug/gridaes/store"
)

// Config holds the vaultd service configuration.
type Config struct {
	ListenAddr  string                `yaml:"listen_addr"`
	EnablePprof bool                  `yaml:"enable_pprof"`
	Workers     int                   `yaml:"workers"`
	Postgres    *store.PostgresConfig `yaml:"postgres"`
}

// DefaultConfig returns a config suitable for local development.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: ":8080",
		Workers:    1,
	}
}

func main() {
	var (
		configPath  = flag.String("config", "", "Path to YAML config file")
		addr        = flag.String("addr", "", "HTTP listen address")
		enablePprof = flag.Bool("pprof", false, "Enable the pprof debugging API")
		workers     = flag.Int("workers", 0, "Number of goroutines processing blocks per request")
		logJSON     = flag.Bool("log-json", false, "Log in JSON format")
	)
	flag.Parse()

	cfg, err := loadConfiguration(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	applyFlagOverrides(cfg, *addr, *enablePprof, *workers)

	log := newLogger(*logJSON)

	blobs, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Error("Opening blob store failed", "err", err)
		os.Exit(1)
	}
	defer closeStore()

	handler := httpserver.NewCipherHandler(blobs, cfg.Workers, log)

	srv, err := httpserver.New(&httpserver.HTTPServerConfig{
		ListenAddr:               cfg.ListenAddr,
		EnablePprof:              cfg.EnablePprof,
		Log:                      log,
		DrainDuration:            5 * time.Second,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              15 * time.Second,
		WriteTimeout:             15 * time.Second,
	}, handler)
	if err != nil {
		log.Error("Creating HTTP server failed", "err", err)
		os.Exit(1)
	}

	srv.RunInBackground()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down")
	srv.Shutdown()
}

func newLogger(json bool) *slog.Logger {
	if json {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func loadConfiguration(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}

	body, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(body, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func applyFlagOverrides(cfg *Config, addr string, enablePprof bool, workers int) {
	if addr != "" {
		cfg.ListenAddr = addr
	}
	if enablePprof {
		cfg.EnablePprof = true
	}
	if workers > 0 {
		cfg.Workers = workers
	}
}

// openStore picks the blob store backend: Postgres when configured,
// otherwise an in-memory map.
func openStore(cfg *Config, log *slog.Logger) (store.BlobStore, func(), error) {
	if cfg.Postgres != nil {
		pg, err := store.NewPostgresStore(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using PostgreSQL blob store", "host", cfg.Postgres.Host, "database", cfg.Postgres.Database)
		return pg, func() {
			if err := pg.Close(); err != nil {
				log.Error("Closing blob store failed", "err", err)
			}
		}, nil
	}

	log.Info("Using in-memory blob store, blobs do not survive restarts")
	return store.NewMemoryStore(), func() {}, nil
}
