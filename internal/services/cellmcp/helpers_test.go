package cellmcp

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	tracecellv1 "github.com/louisbranch/tracecell/api/gen/go/tracecell/v1"
	"github.com/louisbranch/tracecell/internal/cell/policy"
	cellgrpc "github.com/louisbranch/tracecell/internal/services/cell/api/grpc/cell"
	"github.com/louisbranch/tracecell/internal/services/cell/store"
	"google.golang.org/grpc"
)

// serviceClient calls a cell service in process and records the tokens it
// was handed.
type serviceClient struct {
	svc *cellgrpc.Service

	mu        sync.Mutex
	presented []*tracecellv1.Token
}

func newServiceClient(t *testing.T) *serviceClient {
	t.Helper()
	registry, err := policy.DefaultRegistry()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	svc, err := cellgrpc.NewService(store.NewMemory(), registry)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return &serviceClient{svc: svc}
}

func (c *serviceClient) record(tok *tracecellv1.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.presented = append(c.presented, tok)
}

func (c *serviceClient) lastPresented() *tracecellv1.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.presented) == 0 {
		return nil
	}
	return c.presented[len(c.presented)-1]
}

func (c *serviceClient) CreateCell(ctx context.Context, in *tracecellv1.CreateCellRequest, _ ...grpc.CallOption) (*tracecellv1.CreateCellResponse, error) {
	return c.svc.CreateCell(ctx, in)
}

func (c *serviceClient) Increment(ctx context.Context, in *tracecellv1.CellRequest, _ ...grpc.CallOption) (*tracecellv1.ValueResponse, error) {
	c.record(in.GetToken())
	return c.svc.Increment(ctx, in)
}

func (c *serviceClient) Decrement(ctx context.Context, in *tracecellv1.CellRequest, _ ...grpc.CallOption) (*tracecellv1.ValueResponse, error) {
	c.record(in.GetToken())
	return c.svc.Decrement(ctx, in)
}

func (c *serviceClient) CompareAndSwap(ctx context.Context, in *tracecellv1.CompareAndSwapRequest, _ ...grpc.CallOption) (*tracecellv1.CompareAndSwapResponse, error) {
	c.record(in.GetToken())
	return c.svc.CompareAndSwap(ctx, in)
}

func (c *serviceClient) GetValue(ctx context.Context, in *tracecellv1.CellRequest, _ ...grpc.CallOption) (*tracecellv1.ValueResponse, error) {
	c.record(in.GetToken())
	return c.svc.GetValue(ctx, in)
}

func (c *serviceClient) GetHistory(ctx context.Context, in *tracecellv1.CellRequest, _ ...grpc.CallOption) (*tracecellv1.GetHistoryResponse, error) {
	c.record(in.GetToken())
	return c.svc.GetHistory(ctx, in)
}

func (c *serviceClient) DisposeCell(ctx context.Context, in *tracecellv1.DisposeCellRequest, _ ...grpc.CallOption) (*tracecellv1.DisposeCellResponse, error) {
	return c.svc.DisposeCell(ctx, in)
}

func (c *serviceClient) ListPolicies(ctx context.Context, in *tracecellv1.ListPoliciesRequest, _ ...grpc.CallOption) (*tracecellv1.ListPoliciesResponse, error) {
	return c.svc.ListPolicies(ctx, in)
}

func (c *serviceClient) ListCells(ctx context.Context, in *tracecellv1.ListCellsRequest, _ ...grpc.CallOption) (*tracecellv1.ListCellsResponse, error) {
	return c.svc.ListCells(ctx, in)
}

// failingClient fails every call with err.
type failingClient struct {
	err error
}

func (c failingClient) CreateCell(context.Context, *tracecellv1.CreateCellRequest, ...grpc.CallOption) (*tracecellv1.CreateCellResponse, error) {
	return nil, c.err
}

func (c failingClient) Increment(context.Context, *tracecellv1.CellRequest, ...grpc.CallOption) (*tracecellv1.ValueResponse, error) {
	return nil, c.err
}

func (c failingClient) Decrement(context.Context, *tracecellv1.CellRequest, ...grpc.CallOption) (*tracecellv1.ValueResponse, error) {
	return nil, c.err
}

func (c failingClient) CompareAndSwap(context.Context, *tracecellv1.CompareAndSwapRequest, ...grpc.CallOption) (*tracecellv1.CompareAndSwapResponse, error) {
	return nil, c.err
}

func (c failingClient) GetValue(context.Context, *tracecellv1.CellRequest, ...grpc.CallOption) (*tracecellv1.ValueResponse, error) {
	return nil, c.err
}

func (c failingClient) GetHistory(context.Context, *tracecellv1.CellRequest, ...grpc.CallOption) (*tracecellv1.GetHistoryResponse, error) {
	return nil, c.err
}

func (c failingClient) DisposeCell(context.Context, *tracecellv1.DisposeCellRequest, ...grpc.CallOption) (*tracecellv1.DisposeCellResponse, error) {
	return nil, c.err
}

func (c failingClient) ListPolicies(context.Context, *tracecellv1.ListPoliciesRequest, ...grpc.CallOption) (*tracecellv1.ListPoliciesResponse, error) {
	return nil, c.err
}

func (c failingClient) ListCells(context.Context, *tracecellv1.ListCellsRequest, ...grpc.CallOption) (*tracecellv1.ListCellsResponse, error) {
	return nil, c.err
}

var errUnavailable = errors.New("connection refused")

func decodeStructuredContent[T any](t *testing.T, value any) T {
	t.Helper()
	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
	return out
}
