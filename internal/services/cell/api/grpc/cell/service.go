package cell

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	tracecellv1 "github.com/louisbranch/tracecell/api/gen/go/tracecell/v1"
	domain "github.com/louisbranch/tracecell/internal/cell"
	"github.com/louisbranch/tracecell/internal/cell/history"
	"github.com/louisbranch/tracecell/internal/cell/policy"
	apperrors "github.com/louisbranch/tracecell/internal/platform/errors"
	"github.com/louisbranch/tracecell/internal/platform/otel"
	"github.com/louisbranch/tracecell/internal/services/cell/observability/metrics"
	"github.com/louisbranch/tracecell/internal/services/cell/store"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var (
	// ErrStoreRequired indicates a missing cell store.
	ErrStoreRequired = errors.New("cell store is required")
	// ErrRegistryRequired indicates a missing policy registry.
	ErrRegistryRequired = errors.New("policy registry is required")
)

const tracerName = "github.com/louisbranch/tracecell/internal/services/cell/api/grpc/cell"

// CellStore holds hosted cells.
type CellStore interface {
	Put(ctx context.Context, entry store.Entry) (store.Entry, error)
	Get(ctx context.Context, id uuid.UUID) (store.Entry, error)
	List(ctx context.Context) ([]store.Entry, error)
}

// Service implements the CellService gRPC API over a cell store.
type Service struct {
	tracecellv1.UnimplementedCellServiceServer
	store    CellStore
	policies *policy.Registry
	metrics  *metrics.Metrics
	logger   *zap.Logger
	tracer   trace.Tracer
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records cell activity on m.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates a cell service.
func NewService(cells CellStore, policies *policy.Registry, opts ...ServiceOption) (*Service, error) {
	if cells == nil {
		return nil, ErrStoreRequired
	}
	if policies == nil {
		return nil, ErrRegistryRequired
	}
	s := &Service{
		store:    cells,
		policies: policies,
		logger:   zap.NewNop(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreateCell makes a new cell under the named policy.
func (s *Service) CreateCell(ctx context.Context, in *tracecellv1.CreateCellRequest) (*tracecellv1.CreateCellResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create cell request is required")
	}
	ctx, span := s.tracer.Start(ctx, "CellService.CreateCell")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, s.fail(ctx, span, err)
	}
	name := strings.TrimSpace(in.GetPolicy())
	if name == "" {
		name = policy.NameAlwaysTrue
	}
	span.SetAttributes(attribute.String("cell.policy", name))

	p, err := s.policies.Lookup(name)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	c, tok, err := domain.New(p, domain.WithObserver(s.observer()))
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	if _, err := s.store.Put(ctx, store.Entry{Cell: c, Policy: name}); err != nil {
		return nil, s.fail(ctx, span, err)
	}
	if s.metrics != nil {
		s.metrics.CellCreated()
	}
	span.SetAttributes(attribute.String("cell.id", c.ID().String()))
	s.logger.Info("cell created", zap.String("cell_id", c.ID().String()), zap.String("policy", name))

	return &tracecellv1.CreateCellResponse{
		CellId: c.ID().String(),
		Policy: name,
		Token:  tokenToProto(tok),
	}, nil
}

// Increment appends Inc.
func (s *Service) Increment(ctx context.Context, in *tracecellv1.CellRequest) (*tracecellv1.ValueResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "increment request is required")
	}
	tok, out, err := s.apply(ctx, "CellService.Increment", in.GetCellId(), in.GetToken(), history.Inc())
	if err != nil {
		return nil, err
	}
	return &tracecellv1.ValueResponse{Token: tok, Value: int64(out.Value)}, nil
}

// Decrement appends Dec.
func (s *Service) Decrement(ctx context.Context, in *tracecellv1.CellRequest) (*tracecellv1.ValueResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "decrement request is required")
	}
	tok, out, err := s.apply(ctx, "CellService.Decrement", in.GetCellId(), in.GetToken(), history.Dec())
	if err != nil {
		return nil, err
	}
	return &tracecellv1.ValueResponse{Token: tok, Value: int64(out.Value)}, nil
}

// CompareAndSwap appends Cas(old, new).
func (s *Service) CompareAndSwap(ctx context.Context, in *tracecellv1.CompareAndSwapRequest) (*tracecellv1.CompareAndSwapResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "compare and swap request is required")
	}
	old, next := int(in.GetOld()), int(in.GetNew())
	tok, out, err := s.apply(ctx, "CellService.CompareAndSwap", in.GetCellId(), in.GetToken(), history.Cas(old, next))
	if err != nil {
		return nil, err
	}
	return &tracecellv1.CompareAndSwapResponse{
		Token:   tok,
		Prior:   int64(out.Prior),
		Value:   int64(out.Value),
		Swapped: out.Prior == old,
	}, nil
}

// GetValue reads the current value.
func (s *Service) GetValue(ctx context.Context, in *tracecellv1.CellRequest) (*tracecellv1.ValueResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get value request is required")
	}
	ctx, span := s.tracer.Start(ctx, "CellService.GetValue")
	defer span.End()

	c, tok, err := s.resolve(ctx, span, in.GetCellId(), in.GetToken())
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	next, value, err := c.Get(tok)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	return &tracecellv1.ValueResponse{Token: tokenToProto(next), Value: int64(value)}, nil
}

// GetHistory returns the committed history and its digest.
func (s *Service) GetHistory(ctx context.Context, in *tracecellv1.CellRequest) (*tracecellv1.GetHistoryResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get history request is required")
	}
	ctx, span := s.tracer.Start(ctx, "CellService.GetHistory")
	defer span.End()

	c, tok, err := s.resolve(ctx, span, in.GetCellId(), in.GetToken())
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	next, h, err := c.History(tok)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	span.SetAttributes(attribute.Int("cell.history_length", h.Len()))

	ops := h.Ops()
	resp := &tracecellv1.GetHistoryResponse{
		Token:  tokenToProto(next),
		Ops:    make([]*tracecellv1.Operation, 0, len(ops)),
		Value:  int64(h.Execute()),
		Digest: h.Digest(),
	}
	for _, op := range ops {
		resp.Ops = append(resp.Ops, OperationToProto(op))
	}
	return resp, nil
}

// DisposeCell moves the cell to its terminal state.
func (s *Service) DisposeCell(ctx context.Context, in *tracecellv1.DisposeCellRequest) (*tracecellv1.DisposeCellResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "dispose cell request is required")
	}
	ctx, span := s.tracer.Start(ctx, "CellService.DisposeCell")
	defer span.End()

	c, _, err := s.resolve(ctx, span, in.GetCellId(), nil)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	if err := c.Dispose(); err != nil {
		return nil, s.fail(ctx, span, err)
	}
	if s.metrics != nil {
		s.metrics.CellDisposed()
	}
	s.logger.Info("cell disposed", zap.String("cell_id", c.ID().String()))
	return &tracecellv1.DisposeCellResponse{}, nil
}

// ListPolicies lists the registered policies.
func (s *Service) ListPolicies(ctx context.Context, in *tracecellv1.ListPoliciesRequest) (*tracecellv1.ListPoliciesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list policies request is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.HandleError(err, apperrors.LocaleFromContext(ctx))
	}
	entries := s.policies.Entries()
	resp := &tracecellv1.ListPoliciesResponse{
		Policies: make([]*tracecellv1.Policy, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Policies = append(resp.Policies, &tracecellv1.Policy{Name: e.Name, Description: e.Description})
	}
	return resp, nil
}

// ListCells lists every hosted cell, oldest first. Disposed cells stay
// listed with the disposed state.
func (s *Service) ListCells(ctx context.Context, in *tracecellv1.ListCellsRequest) (*tracecellv1.ListCellsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list cells request is required")
	}
	ctx, span := s.tracer.Start(ctx, "CellService.ListCells")
	defer span.End()

	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	span.SetAttributes(attribute.Int("cell.count", len(entries)))

	resp := &tracecellv1.ListCellsResponse{
		Cells: make([]*tracecellv1.CellSummary, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Cells = append(resp.Cells, &tracecellv1.CellSummary{
			CellId:    entry.Cell.ID().String(),
			Policy:    entry.Policy,
			State:     stateToProto(entry.Cell.State()),
			CreatedAt: timestamppb.New(entry.CreatedAt),
		})
	}
	return resp, nil
}

func (s *Service) apply(ctx context.Context, spanName, cellID string, wire *tracecellv1.Token, op history.Operation) (*tracecellv1.Token, domain.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, spanName, trace.WithAttributes(attribute.String("cell.op", op.String())))
	defer span.End()

	c, tok, err := s.resolve(ctx, span, cellID, wire)
	if err != nil {
		return nil, domain.Outcome{}, s.fail(ctx, span, err)
	}
	next, out, err := c.Apply(tok, op)
	if err != nil {
		return nil, domain.Outcome{}, s.fail(ctx, span, err)
	}
	span.SetAttributes(attribute.Int("cell.history_length", next.Len()))
	return tokenToProto(next), out, nil
}

// resolve loads the addressed cell and decodes the caller's token.
func (s *Service) resolve(ctx context.Context, span trace.Span, cellID string, wire *tracecellv1.Token) (*domain.Cell, domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.Token{}, err
	}
	id, err := store.ParseID(cellID)
	if err != nil {
		return nil, domain.Token{}, err
	}
	span.SetAttributes(attribute.String("cell.id", id.String()))
	entry, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, domain.Token{}, err
	}
	tok, err := tokenFromProto(id, wire)
	if err != nil {
		return nil, domain.Token{}, err
	}
	return entry.Cell, tok, nil
}

// fail logs err, records it on the span, and converts it to a gRPC status.
func (s *Service) fail(ctx context.Context, span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())

	code := apperrors.GetCode(err)
	switch {
	case domain.IsNonRetryable(err):
		s.logger.Error("cell misuse", zap.String("code", string(code)), zap.Error(err))
		if s.metrics != nil {
			s.metrics.LifecycleError(string(code))
		}
	case code == apperrors.CodeUnknown:
		s.logger.Error("cell request failed", zap.Error(err))
	default:
		s.logger.Debug("cell request rejected", zap.String("code", string(code)), zap.Error(err))
	}
	return apperrors.HandleError(err, apperrors.LocaleFromContext(ctx))
}

func (s *Service) observer() domain.Observer {
	observers := domain.Observers{logObserver{logger: s.logger}}
	if s.metrics != nil {
		observers = append(observers, s.metrics)
	}
	return observers
}
