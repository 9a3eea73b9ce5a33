// Command server runs the characters gRPC service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/zelda-characters/internal/cmd/server"
	"github.com/louisbranch/zelda-characters/internal/platform/config"
)

func main() {
	log.SetPrefix("[CHARACTERS] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fs := flag.NewFlagSet("server", flag.ExitOnError)
	cfg, err := server.ParseConfig(fs, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}

	if err := server.Run(ctx, cfg); err != nil {
		config.Exitf("run: %v", err)
	}
}
