package cell

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	tracecellv1 "github.com/louisbranch/tracecell/api/gen/go/tracecell/v1"
	domain "github.com/louisbranch/tracecell/internal/cell"
	"github.com/louisbranch/tracecell/internal/cell/history"
	"github.com/louisbranch/tracecell/internal/services/cell/store"
)

func tokenToProto(tok domain.Token) *tracecellv1.Token {
	if tok.IsZero() {
		return &tracecellv1.Token{}
	}
	return &tracecellv1.Token{CellId: tok.CellID().String(), Length: int64(tok.Len())}
}

// tokenFromProto decodes a wire token. A missing token or a blank cell id
// is read against the addressed cell.
func tokenFromProto(cellID uuid.UUID, in *tracecellv1.Token) (domain.Token, error) {
	if in.GetLength() <= 0 {
		return domain.Token{}, nil
	}
	if strings.TrimSpace(in.GetCellId()) == "" {
		return domain.RestoreToken(cellID, int(in.GetLength())), nil
	}
	id, err := store.ParseID(in.GetCellId())
	if err != nil {
		return domain.Token{}, err
	}
	return domain.RestoreToken(id, int(in.GetLength())), nil
}

func kindToProto(k history.Kind) tracecellv1.OperationKind {
	switch k {
	case history.KindInit:
		return tracecellv1.OperationKind_OPERATION_KIND_INIT
	case history.KindInc:
		return tracecellv1.OperationKind_OPERATION_KIND_INC
	case history.KindDec:
		return tracecellv1.OperationKind_OPERATION_KIND_DEC
	case history.KindCas:
		return tracecellv1.OperationKind_OPERATION_KIND_CAS
	default:
		return tracecellv1.OperationKind_OPERATION_KIND_UNSPECIFIED
	}
}

func kindFromProto(k tracecellv1.OperationKind) (history.Kind, error) {
	switch k {
	case tracecellv1.OperationKind_OPERATION_KIND_INIT:
		return history.KindInit, nil
	case tracecellv1.OperationKind_OPERATION_KIND_INC:
		return history.KindInc, nil
	case tracecellv1.OperationKind_OPERATION_KIND_DEC:
		return history.KindDec, nil
	case tracecellv1.OperationKind_OPERATION_KIND_CAS:
		return history.KindCas, nil
	default:
		return 0, fmt.Errorf("operation kind %s: %w", k, history.ErrUnknownKind)
	}
}

// OperationToProto converts a recorded operation to its wire form.
func OperationToProto(op history.Operation) *tracecellv1.Operation {
	out := &tracecellv1.Operation{Kind: kindToProto(op.Kind)}
	if op.Kind == history.KindCas {
		out.Old = int64(op.Old)
		out.New = int64(op.New)
	}
	return out
}

// OperationsFromProto decodes wire operations in order.
func OperationsFromProto(in []*tracecellv1.Operation) ([]history.Operation, error) {
	out := make([]history.Operation, 0, len(in))
	for i, op := range in {
		kind, err := kindFromProto(op.GetKind())
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		decoded := history.Operation{Kind: kind}
		if kind == history.KindCas {
			decoded.Old = int(op.GetOld())
			decoded.New = int(op.GetNew())
		}
		out = append(out, decoded)
	}
	return out, nil
}

func stateToProto(s domain.State) tracecellv1.CellState {
	switch s {
	case domain.StateLive:
		return tracecellv1.CellState_CELL_STATE_LIVE
	case domain.StateDisposed:
		return tracecellv1.CellState_CELL_STATE_DISPOSED
	default:
		return tracecellv1.CellState_CELL_STATE_UNSPECIFIED
	}
}
