// Package stress drives one cell from many goroutines and checks the
// resulting history against what the workers observed.
package stress

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/louisbranch/tracecell/internal/cell"
	"github.com/louisbranch/tracecell/internal/cell/policy"
	"github.com/louisbranch/tracecell/internal/platform/config"
	entrypoint "github.com/louisbranch/tracecell/internal/platform/cmd"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Operation mixes.
const (
	MixInc   = "inc"
	MixMixed = "mixed"
)

// monotonicEvery is how many operations a worker issues between read checks.
const monotonicEvery = 64

// ErrMismatch reports a final state that disagrees with the workers' counts.
var ErrMismatch = errors.New("stress result mismatch")

// Config holds stress command configuration.
type Config struct {
	Workers    int    `env:"STRESS_WORKERS" envDefault:"8"`
	Ops        int    `env:"STRESS_OPS" envDefault:"1000"`
	Policy     string `env:"STRESS_POLICY" envDefault:"always-true"`
	Mix        string `env:"STRESS_MIX" envDefault:"inc"`
	PolicyFile string `env:"POLICY_FILE"`
}

// Result summarizes one stress run.
type Result struct {
	Value     int
	Length    int
	Digest    string
	Committed int64
	Rejected  int64
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of concurrent workers")
	fs.IntVar(&cfg.Ops, "ops", cfg.Ops, "Operations per worker")
	fs.StringVar(&cfg.Policy, "policy", cfg.Policy, "Policy the cell enforces")
	fs.StringVar(&cfg.Mix, "mix", cfg.Mix, "Operation mix: inc or mixed")
	fs.StringVar(&cfg.PolicyFile, "policies", cfg.PolicyFile, "Optional YAML rule file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Ops < 0 {
		return fmt.Errorf("ops must not be negative, got %d", c.Ops)
	}
	switch c.Mix {
	case MixInc, MixMixed:
		return nil
	default:
		return fmt.Errorf("mix %q is not supported", c.Mix)
	}
}

// Run executes the stress run and prints its result to out.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	res, err := Execute(ctx, cfg, logger)
	if res != nil {
		fmt.Fprintf(out, "value=%d length=%d digest=%s committed=%d rejected=%d\n",
			res.Value, res.Length, res.Digest, res.Committed, res.Rejected)
	}
	return err
}

// Execute drives a fresh cell with cfg.Workers goroutines of cfg.Ops
// operations each. Every worker owns a cell.Client. In the inc mix workers
// also check that consecutive reads never run backwards.
func Execute(ctx context.Context, cfg Config, logger *zap.Logger) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	p, err := lookupPolicy(cfg)
	if err != nil {
		return nil, err
	}
	c, tok, err := cell.New(p)
	if err != nil {
		return nil, err
	}
	logger.Info("stress starting",
		zap.String("cell_id", c.ID().String()),
		zap.String("policy", policy.NameOf(p)),
		zap.Int("workers", cfg.Workers),
		zap.Int("ops", cfg.Ops),
		zap.String("mix", cfg.Mix),
	)

	var committed, rejected atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		worker := w
		g.Go(func() error {
			cl := cell.NewClient(c, tok)
			for i := 0; i < cfg.Ops; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				err := step(cl, cfg.Mix, worker+i)
				switch {
				case err == nil:
					committed.Add(1)
				case errors.Is(err, cell.ErrPolicyViolation), errors.Is(err, cell.ErrValueOverflow):
					rejected.Add(1)
				default:
					return fmt.Errorf("worker %d op %d: %w", worker, i, err)
				}
				if cfg.Mix == MixInc && i%monotonicEvery == 0 {
					if err := cell.CheckMonotonic(cl); err != nil {
						return fmt.Errorf("worker %d: %w", worker, err)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	_, h, err := c.History(cell.Token{})
	if err != nil {
		return nil, err
	}
	res := &Result{
		Value:     h.Execute(),
		Length:    h.Len(),
		Digest:    h.Digest(),
		Committed: committed.Load(),
		Rejected:  rejected.Load(),
	}
	logger.Info("stress finished",
		zap.Int("value", res.Value),
		zap.Int("length", res.Length),
		zap.Int64("committed", res.Committed),
		zap.Int64("rejected", res.Rejected),
	)

	if int64(res.Length) != 1+res.Committed {
		return res, fmt.Errorf("%w: length %d, committed %d", ErrMismatch, res.Length, res.Committed)
	}
	if cfg.Mix == MixInc {
		want := cfg.Workers * cfg.Ops
		if res.Rejected == 0 && res.Value != want {
			return res, fmt.Errorf("%w: value %d, want %d", ErrMismatch, res.Value, want)
		}
	}
	return res, nil
}

// step issues one operation. The mixed workload rotates through increment,
// decrement and a compare-and-swap from the last observed value.
func step(cl *cell.Client, mix string, n int) error {
	if mix == MixInc {
		_, err := cl.Increment()
		return err
	}
	switch n % 3 {
	case 0:
		_, err := cl.Increment()
		return err
	case 1:
		_, err := cl.Decrement()
		return err
	default:
		last, _ := cl.Last()
		_, err := cl.CompareAndSwap(last, last+1)
		return err
	}
}

func lookupPolicy(cfg Config) (policy.Policy, error) {
	data, err := config.ReadOptionalFile(cfg.PolicyFile)
	if err != nil {
		return nil, err
	}
	registry, err := policy.LoadRegistry(data)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(cfg.Policy)
	if name == "" {
		name = policy.NameAlwaysTrue
	}
	return registry.Lookup(name)
}
