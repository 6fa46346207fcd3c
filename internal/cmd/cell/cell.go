// Package cell parses cell command flags and starts the cell server.
package cell

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/tracecell/internal/platform/cmd"
	server "github.com/louisbranch/tracecell/internal/services/cell/app"
)

// Config holds cell command configuration.
type Config struct {
	Port        int    `env:"CELL_PORT" envDefault:"8090"`
	Addr        string `env:"CELL_ADDR"`
	PolicyFile  string `env:"POLICY_FILE"`
	MetricsAddr string `env:"METRICS_ADDR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The cell server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The cell server listen address (overrides -port)")
	fs.StringVar(&cfg.PolicyFile, "policies", cfg.PolicyFile, "Optional YAML rule file merged into the default policies")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Optional address serving /metrics")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the cell service.
func Run(ctx context.Context, cfg Config) error {
	logger, err := entrypoint.NewLogger(entrypoint.ServiceCell)
	if err != nil {
		return err
	}
	serverCfg := server.Config{
		Addr:        cfg.Addr,
		PolicyFile:  cfg.PolicyFile,
		MetricsAddr: cfg.MetricsAddr,
		Logger:      logger,
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCell, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		if cfg.Addr != "" {
			return server.RunWithAddr(ctx, serverCfg)
		}
		return server.Run(ctx, cfg.Port, serverCfg)
	})
}
