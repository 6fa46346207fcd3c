package cell

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("cell", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8090 {
		t.Fatalf("expected default port 8090, got %d", cfg.Port)
	}
	if cfg.Addr != "" || cfg.PolicyFile != "" || cfg.MetricsAddr != "" {
		t.Fatalf("expected empty optional settings, got %+v", cfg)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("TRACECELL_CELL_PORT", "9100")
	t.Setenv("TRACECELL_POLICY_FILE", "/etc/tracecell/policies.yaml")
	fs := flag.NewFlagSet("cell", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9100 {
		t.Fatalf("expected env port 9100, got %d", cfg.Port)
	}
	if cfg.PolicyFile != "/etc/tracecell/policies.yaml" {
		t.Fatalf("expected env policy file, got %q", cfg.PolicyFile)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("cell", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "9001", "-addr", "127.0.0.1:9999", "-metrics-addr", ":9102", "-policies", "p.yaml"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9001 {
		t.Fatalf("expected port 9001, got %d", cfg.Port)
	}
	if cfg.Addr != "127.0.0.1:9999" {
		t.Fatalf("expected addr override, got %q", cfg.Addr)
	}
	if cfg.MetricsAddr != ":9102" || cfg.PolicyFile != "p.yaml" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
}
