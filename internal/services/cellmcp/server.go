package cellmcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tracecellv1 "github.com/louisbranch/tracecell/api/gen/go/tracecell/v1"
	platformgrpc "github.com/louisbranch/tracecell/internal/platform/grpc"
	"github.com/louisbranch/tracecell/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const (
	serverName    = "tracecell-mcp"
	serverVersion = "0.1.0"
	// defaultGRPCAddr is used when no cell server address is configured.
	defaultGRPCAddr = "localhost:8090"
)

// Config configures the MCP bridge.
type Config struct {
	// GRPCAddr is the cell server address.
	GRPCAddr string
	// Logger defaults to a no-op logger. It must not write to stdout.
	Logger *zap.Logger
}

// Server bridges MCP tool calls to a cell server.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
	tokens    *Tokens
	logger    *zap.Logger
}

// New dials the cell server at cfg.GRPCAddr and registers the cell tools.
func New(ctx context.Context, cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	addr := grpcAddress(cfg.GRPCAddr)
	conn, err := platformgrpc.DialWithHealth(ctx, addr, timeouts.GRPCDial, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to cell server at %s: %w", addr, err)
	}
	s := newServer(tracecellv1.NewCellServiceClient(conn), logger)
	s.conn = conn
	return s, nil
}

// newServer registers every cell tool against client.
func newServer(client tracecellv1.CellServiceClient, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	tokens := NewTokens()

	mcp.AddTool(mcpServer, CreateTool(), CreateHandler(client, tokens))
	mcp.AddTool(mcpServer, IncrementTool(), IncrementHandler(client, tokens))
	mcp.AddTool(mcpServer, DecrementTool(), DecrementHandler(client, tokens))
	mcp.AddTool(mcpServer, CompareAndSwapTool(), CompareAndSwapHandler(client, tokens))
	mcp.AddTool(mcpServer, GetTool(), GetHandler(client, tokens))
	mcp.AddTool(mcpServer, HistoryTool(), HistoryHandler(client, tokens))
	mcp.AddTool(mcpServer, DisposeTool(), DisposeHandler(client, tokens))
	mcp.AddTool(mcpServer, PoliciesTool(), PoliciesHandler(client))
	mcp.AddTool(mcpServer, ListTool(), ListHandler(client))

	return &Server{mcpServer: mcpServer, tokens: tokens, logger: logger}
}

// Run dials the cell server and serves MCP over stdio until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return runWithTransport(ctx, cfg, &mcp.StdioTransport{})
}

func runWithTransport(ctx context.Context, cfg Config, transport mcp.Transport) error {
	s, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return s.serveWithTransport(ctx, transport)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the gRPC connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	s.logger.Info("mcp bridge serving", zap.String("server", serverName))
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

func grpcAddress(addr string) string {
	if addr = strings.TrimSpace(addr); addr != "" {
		return addr
	}
	return defaultGRPCAddr
}
