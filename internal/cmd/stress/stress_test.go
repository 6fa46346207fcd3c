package stress

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/louisbranch/tracecell/internal/cell/history"
	"go.uber.org/zap/zaptest"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("stress", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Workers != 8 || cfg.Ops != 1000 || cfg.Policy != "always-true" || cfg.Mix != MixInc {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("stress", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-workers", "3", "-ops", "7", "-policy", "ratchet", "-mix", "mixed"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Workers != 3 || cfg.Ops != 7 || cfg.Policy != "ratchet" || cfg.Mix != MixMixed {
		t.Fatalf("overrides = %+v", cfg)
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	tests := [][]string{
		{"-workers", "0"},
		{"-ops", "-1"},
		{"-mix", "random"},
	}
	for _, args := range tests {
		fs := flag.NewFlagSet("stress", flag.ContinueOnError)
		fs.SetOutput(&bytes.Buffer{})
		if _, err := ParseConfig(fs, args); err == nil {
			t.Fatalf("expected %v to be rejected", args)
		}
	}
}

func TestExecuteIncrements(t *testing.T) {
	cfg := Config{Workers: 8, Ops: 250, Policy: "increment-only", Mix: MixInc}
	res, err := Execute(context.Background(), cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Value != 2000 || res.Length != 2001 {
		t.Fatalf("result = %+v, want value 2000 length 2001", res)
	}
	if res.Committed != 2000 || res.Rejected != 0 {
		t.Fatalf("counts = %d committed %d rejected", res.Committed, res.Rejected)
	}
}

func TestExecuteMixedUnderRatchet(t *testing.T) {
	cfg := Config{Workers: 4, Ops: 300, Policy: "ratchet", Mix: MixMixed}
	res, err := Execute(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Rejected == 0 {
		t.Fatal("expected ratchet to reject decrements")
	}
	if res.Committed+res.Rejected != 1200 {
		t.Fatalf("counts = %d committed %d rejected, want 1200 total", res.Committed, res.Rejected)
	}
	if res.Value < 0 {
		t.Fatalf("value = %d, ratchet must keep it non-negative", res.Value)
	}
}

func TestExecuteWithPolicyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policies.yaml")
	doc := "policies:\n  - name: capped\n    max: 10\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write policies: %v", err)
	}
	cfg := Config{Workers: 4, Ops: 10, Policy: "capped", Mix: MixInc, PolicyFile: path}
	res, err := Execute(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Value != 10 || res.Committed != 10 || res.Rejected != 30 {
		t.Fatalf("result = %+v, want value 10 with 30 rejections", res)
	}
}

func TestExecuteUnknownPolicy(t *testing.T) {
	_, err := Execute(context.Background(), Config{Workers: 1, Ops: 1, Policy: "nope", Mix: MixInc}, nil)
	if err == nil {
		t.Fatal("expected unknown policy error")
	}
}

func TestExecuteHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Execute(ctx, Config{Workers: 2, Ops: 10, Policy: "always-true", Mix: MixInc}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want %v", err, context.Canceled)
	}
}

func TestRunPrintsResult(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Workers: 2, Ops: 5, Policy: "always-true", Mix: MixInc}
	if err := Run(context.Background(), cfg, &out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	h := history.New()
	for i := 0; i < 10; i++ {
		h = h.Append(history.Inc())
	}
	want := "value=10 length=11 digest=" + h.Digest() + " committed=10 rejected=0\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}
