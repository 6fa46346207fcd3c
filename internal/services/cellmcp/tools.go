package cellmcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	tracecellv1 "github.com/louisbranch/tracecell/api/gen/go/tracecell/v1"
	"github.com/louisbranch/tracecell/internal/platform/timeouts"
	cellgrpc "github.com/louisbranch/tracecell/internal/services/cell/api/grpc/cell"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

// CreateInput represents the MCP tool input for cell creation.
type CreateInput struct {
	Policy string `json:"policy,omitempty" jsonschema:"policy name; defaults to always-true"`
}

// CreateResult represents the MCP tool output for cell creation.
type CreateResult struct {
	CellID string `json:"cell_id" jsonschema:"identifier of the new cell"`
	Policy string `json:"policy" jsonschema:"policy the cell enforces"`
	Length int    `json:"length" jsonschema:"history length witnessed"`
}

// CellInput addresses one cell.
type CellInput struct {
	CellID string `json:"cell_id" jsonschema:"cell identifier"`
}

// ValueResult reports a cell value after an operation.
type ValueResult struct {
	CellID string `json:"cell_id" jsonschema:"cell identifier"`
	Value  int    `json:"value" jsonschema:"current value"`
	Length int    `json:"length" jsonschema:"history length witnessed"`
}

// CompareAndSwapInput represents the MCP tool input for compare-and-swap.
type CompareAndSwapInput struct {
	CellID string `json:"cell_id" jsonschema:"cell identifier"`
	Old    int    `json:"old" jsonschema:"expected current value"`
	New    int    `json:"new" jsonschema:"value to store when the expectation holds"`
}

// CompareAndSwapResult represents the MCP tool output for compare-and-swap.
type CompareAndSwapResult struct {
	CellID  string `json:"cell_id" jsonschema:"cell identifier"`
	Prior   int    `json:"prior" jsonschema:"value before the attempt"`
	Value   int    `json:"value" jsonschema:"value after the attempt"`
	Swapped bool   `json:"swapped" jsonschema:"whether the value changed"`
	Length  int    `json:"length" jsonschema:"history length witnessed"`
}

// HistoryResult represents the MCP tool output for a history snapshot.
type HistoryResult struct {
	CellID string   `json:"cell_id" jsonschema:"cell identifier"`
	Ops    []string `json:"ops" jsonschema:"operations in commit order"`
	Value  int      `json:"value" jsonschema:"value the history folds to"`
	Length int      `json:"length" jsonschema:"history length"`
	Digest string   `json:"digest" jsonschema:"chain digest of the history"`
}

// DisposeResult represents the MCP tool output for disposal.
type DisposeResult struct {
	CellID   string `json:"cell_id" jsonschema:"cell identifier"`
	Disposed bool   `json:"disposed" jsonschema:"whether the cell is now disposed"`
}

// PoliciesInput is empty.
type PoliciesInput struct{}

// PolicyInfo describes one registered policy.
type PolicyInfo struct {
	Name        string `json:"name" jsonschema:"policy name"`
	Description string `json:"description,omitempty" jsonschema:"what the policy admits"`
}

// PoliciesResult lists the policies a new cell may use.
type PoliciesResult struct {
	Policies []PolicyInfo `json:"policies" jsonschema:"registered policies"`
}

// ListInput is empty.
type ListInput struct{}

// CellInfo summarizes one hosted cell.
type CellInfo struct {
	CellID    string `json:"cell_id" jsonschema:"cell identifier"`
	Policy    string `json:"policy" jsonschema:"policy the cell enforces"`
	State     string `json:"state" jsonschema:"live or disposed"`
	CreatedAt string `json:"created_at,omitempty" jsonschema:"creation time in RFC 3339"`
}

// ListResult lists the hosted cells, oldest first.
type ListResult struct {
	Cells []CellInfo `json:"cells" jsonschema:"hosted cells"`
}

// CreateTool defines the MCP tool schema for cell creation.
func CreateTool() *mcp.Tool {
	return &mcp.Tool{Name: "cell_create", Description: "Creates a counter cell governed by a named policy"}
}

// IncrementTool defines the MCP tool schema for increments.
func IncrementTool() *mcp.Tool {
	return &mcp.Tool{Name: "cell_increment", Description: "Adds one to a cell"}
}

// DecrementTool defines the MCP tool schema for decrements.
func DecrementTool() *mcp.Tool {
	return &mcp.Tool{Name: "cell_decrement", Description: "Subtracts one from a cell"}
}

// CompareAndSwapTool defines the MCP tool schema for compare-and-swap.
func CompareAndSwapTool() *mcp.Tool {
	return &mcp.Tool{Name: "cell_cas", Description: "Sets a cell to new if it currently holds old; the attempt is recorded either way"}
}

// GetTool defines the MCP tool schema for reads.
func GetTool() *mcp.Tool {
	return &mcp.Tool{Name: "cell_get", Description: "Reads the current value of a cell"}
}

// HistoryTool defines the MCP tool schema for history snapshots.
func HistoryTool() *mcp.Tool {
	return &mcp.Tool{Name: "cell_history", Description: "Returns every operation applied to a cell with its digest"}
}

// DisposeTool defines the MCP tool schema for disposal.
func DisposeTool() *mcp.Tool {
	return &mcp.Tool{Name: "cell_dispose", Description: "Disposes a cell; later operations on it fail"}
}

// PoliciesTool defines the MCP tool schema for listing policies.
func PoliciesTool() *mcp.Tool {
	return &mcp.Tool{Name: "cell_policies", Description: "Lists the policies available to new cells"}
}

// ListTool defines the MCP tool schema for listing cells.
func ListTool() *mcp.Tool {
	return &mcp.Tool{Name: "cell_list", Description: "Lists the cells hosted by the server, including disposed ones"}
}

// CreateHandler creates a cell and remembers its first token.
func CreateHandler(client tracecellv1.CellServiceClient, tokens *Tokens) mcp.ToolHandlerFor[CreateInput, CreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateInput) (*mcp.CallToolResult, CreateResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		resp, err := client.CreateCell(callCtx, &tracecellv1.CreateCellRequest{Policy: strings.TrimSpace(input.Policy)})
		if err != nil {
			return nil, CreateResult{}, fmt.Errorf("create cell failed: %w", err)
		}
		if resp.GetCellId() == "" {
			return nil, CreateResult{}, fmt.Errorf("create cell: response is missing cell id")
		}
		tokens.Observe(resp.GetCellId(), resp.GetToken())
		return &mcp.CallToolResult{}, CreateResult{
			CellID: resp.GetCellId(),
			Policy: resp.GetPolicy(),
			Length: int(resp.GetToken().GetLength()),
		}, nil
	}
}

// IncrementHandler adds one to a cell.
func IncrementHandler(client tracecellv1.CellServiceClient, tokens *Tokens) mcp.ToolHandlerFor[CellInput, ValueResult] {
	return valueHandler("increment", client.Increment, tokens)
}

// DecrementHandler subtracts one from a cell.
func DecrementHandler(client tracecellv1.CellServiceClient, tokens *Tokens) mcp.ToolHandlerFor[CellInput, ValueResult] {
	return valueHandler("decrement", client.Decrement, tokens)
}

// GetHandler reads a cell.
func GetHandler(client tracecellv1.CellServiceClient, tokens *Tokens) mcp.ToolHandlerFor[CellInput, ValueResult] {
	return valueHandler("get", client.GetValue, tokens)
}

type valueCall func(context.Context, *tracecellv1.CellRequest, ...grpc.CallOption) (*tracecellv1.ValueResponse, error)

func valueHandler(name string, call valueCall, tokens *Tokens) mcp.ToolHandlerFor[CellInput, ValueResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CellInput) (*mcp.CallToolResult, ValueResult, error) {
		cellID, err := requireCellID(input.CellID)
		if err != nil {
			return nil, ValueResult{}, err
		}
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		resp, err := call(callCtx, &tracecellv1.CellRequest{CellId: cellID, Token: tokens.Get(cellID)})
		if err != nil {
			return nil, ValueResult{}, fmt.Errorf("%s cell failed: %w", name, err)
		}
		tokens.Observe(cellID, resp.GetToken())
		return &mcp.CallToolResult{}, ValueResult{
			CellID: cellID,
			Value:  int(resp.GetValue()),
			Length: int(resp.GetToken().GetLength()),
		}, nil
	}
}

// CompareAndSwapHandler attempts a compare-and-swap.
func CompareAndSwapHandler(client tracecellv1.CellServiceClient, tokens *Tokens) mcp.ToolHandlerFor[CompareAndSwapInput, CompareAndSwapResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CompareAndSwapInput) (*mcp.CallToolResult, CompareAndSwapResult, error) {
		cellID, err := requireCellID(input.CellID)
		if err != nil {
			return nil, CompareAndSwapResult{}, err
		}
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		resp, err := client.CompareAndSwap(callCtx, &tracecellv1.CompareAndSwapRequest{
			CellId: cellID,
			Token:  tokens.Get(cellID),
			Old:    int64(input.Old),
			New:    int64(input.New),
		})
		if err != nil {
			return nil, CompareAndSwapResult{}, fmt.Errorf("compare-and-swap failed: %w", err)
		}
		tokens.Observe(cellID, resp.GetToken())
		return &mcp.CallToolResult{}, CompareAndSwapResult{
			CellID:  cellID,
			Prior:   int(resp.GetPrior()),
			Value:   int(resp.GetValue()),
			Swapped: resp.GetSwapped(),
			Length:  int(resp.GetToken().GetLength()),
		}, nil
	}
}

// HistoryHandler returns a cell's history rendered one operation per entry.
func HistoryHandler(client tracecellv1.CellServiceClient, tokens *Tokens) mcp.ToolHandlerFor[CellInput, HistoryResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CellInput) (*mcp.CallToolResult, HistoryResult, error) {
		cellID, err := requireCellID(input.CellID)
		if err != nil {
			return nil, HistoryResult{}, err
		}
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		resp, err := client.GetHistory(callCtx, &tracecellv1.CellRequest{CellId: cellID, Token: tokens.Get(cellID)})
		if err != nil {
			return nil, HistoryResult{}, fmt.Errorf("history failed: %w", err)
		}
		decoded, err := cellgrpc.OperationsFromProto(resp.GetOps())
		if err != nil {
			return nil, HistoryResult{}, fmt.Errorf("history: %w", err)
		}
		tokens.Observe(cellID, resp.GetToken())
		ops := make([]string, 0, len(decoded))
		for _, op := range decoded {
			ops = append(ops, op.String())
		}
		return &mcp.CallToolResult{}, HistoryResult{
			CellID: cellID,
			Ops:    ops,
			Value:  int(resp.GetValue()),
			Length: len(ops),
			Digest: resp.GetDigest(),
		}, nil
	}
}

// DisposeHandler disposes a cell and forgets its token.
func DisposeHandler(client tracecellv1.CellServiceClient, tokens *Tokens) mcp.ToolHandlerFor[CellInput, DisposeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CellInput) (*mcp.CallToolResult, DisposeResult, error) {
		cellID, err := requireCellID(input.CellID)
		if err != nil {
			return nil, DisposeResult{}, err
		}
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		if _, err := client.DisposeCell(callCtx, &tracecellv1.DisposeCellRequest{CellId: cellID}); err != nil {
			return nil, DisposeResult{}, fmt.Errorf("dispose failed: %w", err)
		}
		tokens.Forget(cellID)
		return &mcp.CallToolResult{}, DisposeResult{CellID: cellID, Disposed: true}, nil
	}
}

// PoliciesHandler lists the registered policies.
func PoliciesHandler(client tracecellv1.CellServiceClient) mcp.ToolHandlerFor[PoliciesInput, PoliciesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ PoliciesInput) (*mcp.CallToolResult, PoliciesResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		resp, err := client.ListPolicies(callCtx, &tracecellv1.ListPoliciesRequest{})
		if err != nil {
			return nil, PoliciesResult{}, fmt.Errorf("list policies failed: %w", err)
		}
		policies := make([]PolicyInfo, 0, len(resp.GetPolicies()))
		for _, p := range resp.GetPolicies() {
			policies = append(policies, PolicyInfo{Name: p.GetName(), Description: p.GetDescription()})
		}
		return &mcp.CallToolResult{}, PoliciesResult{Policies: policies}, nil
	}
}

// ListHandler lists the hosted cells.
func ListHandler(client tracecellv1.CellServiceClient) mcp.ToolHandlerFor[ListInput, ListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, ListResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		resp, err := client.ListCells(callCtx, &tracecellv1.ListCellsRequest{})
		if err != nil {
			return nil, ListResult{}, fmt.Errorf("list cells failed: %w", err)
		}
		cells := make([]CellInfo, 0, len(resp.GetCells()))
		for _, c := range resp.GetCells() {
			info := CellInfo{
				CellID: c.GetCellId(),
				Policy: c.GetPolicy(),
				State:  stateName(c.GetState()),
			}
			if c.GetCreatedAt() != nil {
				info.CreatedAt = c.GetCreatedAt().AsTime().Format(time.RFC3339)
			}
			cells = append(cells, info)
		}
		return &mcp.CallToolResult{}, ListResult{Cells: cells}, nil
	}
}

func stateName(s tracecellv1.CellState) string {
	switch s {
	case tracecellv1.CellState_CELL_STATE_LIVE:
		return "live"
	case tracecellv1.CellState_CELL_STATE_DISPOSED:
		return "disposed"
	default:
		return "unknown"
	}
}

func requireCellID(raw string) (string, error) {
	cellID := strings.TrimSpace(raw)
	if cellID == "" {
		return "", fmt.Errorf("cell_id is required")
	}
	return cellID, nil
}
