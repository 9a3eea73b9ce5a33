// Package server wires configuration, storage, and the gRPC server into the
// characters service entrypoint.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	platformcmd "github.com/louisbranch/zelda-characters/internal/platform/cmd"
	"github.com/louisbranch/zelda-characters/internal/server"
	"github.com/louisbranch/zelda-characters/internal/storage/mongodb"
)

// Config holds the characters service settings.
type Config struct {
	// Port is the TCP port for the gRPC listener. Ignored when Addr is set.
	Port int `env:"ZELDA_CHARACTERS_PORT" envDefault:"50051"`
	// Addr overrides the listen address entirely (host:port).
	Addr string `env:"ZELDA_CHARACTERS_ADDR"`
	// MongoURI is the MongoDB connection string.
	MongoURI string `env:"ZELDA_CHARACTERS_MONGO_URI" envDefault:"mongodb://localhost:27017"`
	// MongoDB is the database name.
	MongoDB string `env:"ZELDA_CHARACTERS_MONGO_DB" envDefault:"zelda_characters"`
}

// ListenAddr resolves the configured listen address.
func (c Config) ListenAddr() string {
	if strings.TrimSpace(c.Addr) != "" {
		return c.Addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// ParseConfig loads environment defaults and then applies flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Port, "port", cfg.Port, "gRPC listen port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "gRPC listen address (overrides -port)")
	fs.StringVar(&cfg.MongoURI, "mongo-uri", cfg.MongoURI, "MongoDB connection string")
	fs.StringVar(&cfg.MongoDB, "mongo-db", cfg.MongoDB, "MongoDB database name")

	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the characters service and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceCharacters, func(ctx context.Context) error {
		store, err := mongodb.Open(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			if err := store.Close(context.Background()); err != nil {
				log.Printf("close store: %v", err)
			}
		}()

		if err := store.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}

		srv, err := server.NewWithAddr(cfg.ListenAddr(), store)
		if err != nil {
			return err
		}

		log.Printf("characters service listening on %s", srv.Addr())
		return srv.Serve(ctx)
	})
}
