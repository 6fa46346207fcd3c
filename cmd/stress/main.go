package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/tracecell/internal/cmd/stress"
	"github.com/louisbranch/tracecell/internal/platform/config"
	entrypoint "github.com/louisbranch/tracecell/internal/platform/cmd"
)

func main() {
	cfg, err := stress.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[STRESS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := entrypoint.NewLogger(entrypoint.ServiceStress)
	config.ExitOnError("create logger", err)
	defer func() { _ = logger.Sync() }()

	if err := stress.Run(ctx, cfg, os.Stdout, logger); err != nil {
		config.Exitf("stress failed: %v", err)
	}
}
