package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func startHealthServer(t *testing.T, status grpc_health_v1.HealthCheckResponse_ServingStatus) (*bufconn.Listener, *health.Server) {
	t.Helper()

	listener := bufconn.Listen(1 << 16)
	server := gogrpc.NewServer()
	healthServer := NewHealthServer(server, "tracecell.v1.CellService")
	healthServer.SetServingStatus("", status)

	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)
	return listener, healthServer
}

func bufDialer(listener *bufconn.Listener) gogrpc.DialOption {
	return gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return listener.DialContext(ctx)
	})
}

func TestNewHealthServerMarksServicesServing(t *testing.T) {
	listener, _ := startHealthServer(t, grpc_health_v1.HealthCheckResponse_SERVING)
	conn, err := DialWithHealth(context.Background(), "passthrough:///bufnet", 2*time.Second, nil, bufDialer(listener))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := WaitForHealth(ctx, conn, "tracecell.v1.CellService", nil); err != nil {
		t.Fatalf("wait for service health: %v", err)
	}
}

func TestWaitForHealthTransitionsToServing(t *testing.T) {
	listener, healthServer := startHealthServer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	conn, err := gogrpc.NewClient("passthrough:///bufnet", append(DefaultClientDialOptions(), bufDialer(listener))...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer conn.Close()

	go func() {
		time.Sleep(200 * time.Millisecond)
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := WaitForHealth(ctx, conn, "", nil); err != nil {
		t.Fatalf("wait for health after transition: %v", err)
	}
}

func TestWaitForHealthRespectsContext(t *testing.T) {
	listener, _ := startHealthServer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	conn, err := gogrpc.NewClient("passthrough:///bufnet", append(DefaultClientDialOptions(), bufDialer(listener))...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	err = WaitForHealth(ctx, conn, "", nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want deadline exceeded", err)
	}
}

func TestWaitForHealthRequiresConn(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, "", nil); err == nil {
		t.Fatal("expected error for nil connection")
	}
}
