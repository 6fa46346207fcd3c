package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	tracecellv1 "github.com/louisbranch/tracecell/api/gen/go/tracecell/v1"
	"github.com/louisbranch/tracecell/internal/cell/policy"
	"github.com/louisbranch/tracecell/internal/platform/config"
	platformgrpc "github.com/louisbranch/tracecell/internal/platform/grpc"
	"github.com/louisbranch/tracecell/internal/platform/timeouts"
	cellgrpc "github.com/louisbranch/tracecell/internal/services/cell/api/grpc/cell"
	"github.com/louisbranch/tracecell/internal/services/cell/observability/metrics"
	"github.com/louisbranch/tracecell/internal/services/cell/store"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

// Config describes how the cell server listens and which policies it loads.
type Config struct {
	// Addr is the gRPC listen address, such as ":8090".
	Addr string
	// PolicyFile optionally names a YAML rule file merged into the defaults.
	PolicyFile string
	// MetricsAddr optionally serves Prometheus metrics at /metrics.
	MetricsAddr string
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Server hosts the tracecell cell service.
type Server struct {
	listener        net.Listener
	grpcServer      *grpc.Server
	health          *health.Server
	metricsListener net.Listener
	metricsServer   *http.Server
	logger          *zap.Logger
}

// New creates a configured cell server listening on cfg.Addr.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	registry, err := loadPolicies(cfg.PolicyFile)
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	m := metrics.New(nil)
	service, err := cellgrpc.NewService(store.NewMemory(), registry,
		cellgrpc.WithLogger(logger),
		cellgrpc.WithMetrics(m),
	)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	tracecellv1.RegisterCellServiceServer(grpcServer, service)
	healthServer := platformgrpc.NewHealthServer(grpcServer, tracecellv1.CellService_ServiceDesc.ServiceName)

	s := &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		logger:     logger,
	}

	if addr := strings.TrimSpace(cfg.MetricsAddr); addr != "" {
		metricsListener, err := net.Listen("tcp", addr)
		if err != nil {
			_ = listener.Close()
			return nil, fmt.Errorf("listen on metrics %s: %w", addr, err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		s.metricsListener = metricsListener
		s.metricsServer = &http.Server{Handler: mux, ReadHeaderTimeout: timeouts.ReadHeader}
	}
	return s, nil
}

// Addr returns the gRPC listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// MetricsAddr returns the metrics listener address, or "" when disabled.
func (s *Server) MetricsAddr() string {
	if s == nil || s.metricsListener == nil {
		return ""
	}
	return s.metricsListener.Addr().String()
}

// Run creates and serves a cell server on port until the context ends.
func Run(ctx context.Context, port int, cfg Config) error {
	cfg.Addr = fmt.Sprintf(":%d", port)
	return RunWithAddr(ctx, cfg)
}

// RunWithAddr creates and serves a cell server on cfg.Addr until the
// context ends.
func RunWithAddr(ctx context.Context, cfg Config) error {
	srv, err := New(cfg)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}

// Serve starts the server and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s.logger.Info("cell server listening", zap.String("addr", s.Addr()))
	serveErr := make(chan error, 2)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()
	if s.metricsServer != nil {
		s.logger.Info("metrics listening", zap.String("addr", s.MetricsAddr()))
		go func() {
			if err := s.metricsServer.Serve(s.metricsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- fmt.Errorf("serve metrics: %w", err)
			}
		}()
	}

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}
	s.shutdown()
	return handleErr(err)
}

func (s *Server) shutdown() {
	if s.health != nil {
		s.health.Shutdown()
	}
	s.grpcServer.GracefulStop()
	if s.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			s.logger.Warn("metrics shutdown", zap.Error(err))
		}
	}
}

func loadPolicies(path string) (*policy.Registry, error) {
	data, err := config.ReadOptionalFile(path)
	if err != nil {
		return nil, fmt.Errorf("load policies: %w", err)
	}
	registry, err := policy.LoadRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("load policies: %w", err)
	}
	return registry, nil
}
