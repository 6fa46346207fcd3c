package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

func TestDialWithHealthReturnsHealthStageWhenNotServing(t *testing.T) {
	listener, _ := startHealthServer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	_, err := DialWithHealth(context.Background(), "passthrough:///bufnet", 300*time.Millisecond, nil, bufDialer(listener))
	var dialErr *DialError
	if !errors.As(err, &dialErr) {
		t.Fatalf("error = %v, want *DialError", err)
	}
	if dialErr.Stage != DialStageHealth {
		t.Fatalf("stage = %s, want %s", dialErr.Stage, DialStageHealth)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline in chain, got %v", err)
	}
}

func TestDialErrorFormatting(t *testing.T) {
	err := &DialError{Stage: DialStageHealth, Err: errors.New("boom")}
	if got, want := err.Error(), "dial cell server (health): boom"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	var nilErr *DialError
	if nilErr.Error() != "dial cell server" || nilErr.Unwrap() != nil {
		t.Fatal("nil DialError should format safely")
	}
}
