// Package cellmcp parses MCP bridge flags and serves cell tools on stdio.
package cellmcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/tracecell/internal/platform/cmd"
	"github.com/louisbranch/tracecell/internal/services/cellmcp"
)

// Config holds MCP bridge command configuration.
type Config struct {
	Addr string `env:"CELL_GRPC_ADDR" envDefault:"localhost:8090"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "cell server address")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP bridge.
func Run(ctx context.Context, cfg Config) error {
	logger, err := entrypoint.NewLogger(entrypoint.ServiceCellMCP)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCellMCP, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return cellmcp.Run(ctx, cellmcp.Config{GRPCAddr: cfg.Addr, Logger: logger})
	})
}
