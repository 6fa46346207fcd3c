package cell

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/louisbranch/tracecell/internal/cell/history"
	"github.com/louisbranch/tracecell/internal/cell/policy"
	apperrors "github.com/louisbranch/tracecell/internal/platform/errors"
)

var (
	// ErrPolicyRejectsInitial indicates the policy does not admit [Init].
	ErrPolicyRejectsInitial = apperrors.New(apperrors.CodeCellPolicyRejectsInitial, "policy rejects the initial history")
	// ErrPolicyViolation indicates the policy rejected a mutation.
	ErrPolicyViolation = apperrors.New(apperrors.CodeCellPolicyViolation, "policy rejects the operation")
	// ErrUseAfterDispose indicates an operation on a disposed cell.
	ErrUseAfterDispose = apperrors.New(apperrors.CodeCellUseAfterDispose, "cell has been disposed")
	// ErrDoubleDispose indicates a second Dispose call.
	ErrDoubleDispose = apperrors.New(apperrors.CodeCellDoubleDispose, "cell already disposed")
	// ErrForeignToken indicates a token issued by another cell.
	ErrForeignToken = apperrors.New(apperrors.CodeCellForeignToken, "token was issued by another cell")
	// ErrTokenAhead indicates a token longer than the cell's history.
	ErrTokenAhead = apperrors.New(apperrors.CodeCellTokenAhead, "token is ahead of the cell history")
	// ErrInvalidOperation indicates an operation that cannot be appended.
	ErrInvalidOperation = apperrors.New(apperrors.CodeCellOperationInvalid, "operation cannot be appended")
	// ErrValueOverflow indicates an increment or decrement past the int range.
	ErrValueOverflow = apperrors.New(apperrors.CodeCellValueOverflow, "operation would overflow the value")
	// ErrNonMonotonic indicates a later read observed a smaller value.
	ErrNonMonotonic = apperrors.New(apperrors.CodeCellNonMonotonic, "observed value decreased")
)

// nonRetryableError marks caller bugs that retrying cannot fix.
type nonRetryableError struct {
	err error
}

func (e *nonRetryableError) Error() string { return e.err.Error() }
func (e *nonRetryableError) Unwrap() error { return e.err }

// NonRetryable returns true from IsNonRetryable checks.
func (e *nonRetryableError) NonRetryable() bool { return true }

func wrapNonRetryable(err error) error {
	if err == nil {
		return nil
	}
	return &nonRetryableError{err: err}
}

// IsNonRetryable returns true when the error (or any error in its chain)
// reports misuse of a cell: lifecycle violations and invalid tokens.
func IsNonRetryable(err error) bool {
	var target interface{ NonRetryable() bool }
	if errors.As(err, &target) {
		return target.NonRetryable()
	}
	return false
}

func rejectsInitialError(p policy.Policy) error {
	name := "nil"
	if p != nil {
		name = policy.NameOf(p)
	}
	return apperrors.WithMetadata(
		apperrors.CodeCellPolicyRejectsInitial,
		"policy "+name+" rejects the initial history",
		map[string]string{"Policy": name},
	)
}

func violationError(p policy.Policy, op history.Operation) error {
	name := policy.NameOf(p)
	return apperrors.WithMetadata(
		apperrors.CodeCellPolicyViolation,
		"policy "+name+" rejects "+op.String(),
		map[string]string{"Policy": name, "Operation": op.String()},
	)
}

func useAfterDisposeError(id uuid.UUID) error {
	return wrapNonRetryable(apperrors.WithMetadata(
		apperrors.CodeCellUseAfterDispose,
		"cell "+id.String()+" has been disposed",
		map[string]string{"CellID": id.String()},
	))
}

func doubleDisposeError(id uuid.UUID) error {
	return wrapNonRetryable(apperrors.WithMetadata(
		apperrors.CodeCellDoubleDispose,
		"cell "+id.String()+" already disposed",
		map[string]string{"CellID": id.String()},
	))
}

func foreignTokenError(id uuid.UUID, tok Token) error {
	return wrapNonRetryable(apperrors.WithMetadata(
		apperrors.CodeCellForeignToken,
		"token for cell "+tok.cell.String()+" presented to cell "+id.String(),
		map[string]string{"CellID": id.String(), "TokenCellID": tok.cell.String()},
	))
}

func tokenAheadError(tok Token, length int) error {
	return wrapNonRetryable(apperrors.WithMetadata(
		apperrors.CodeCellTokenAhead,
		"token length "+strconv.Itoa(tok.length)+" exceeds history length "+strconv.Itoa(length),
		map[string]string{"TokenLen": strconv.Itoa(tok.length), "HistoryLen": strconv.Itoa(length)},
	))
}

func invalidOperationError(op history.Operation) error {
	return apperrors.WithMetadata(
		apperrors.CodeCellOperationInvalid,
		"operation "+op.String()+" cannot be appended",
		map[string]string{"Operation": op.String()},
	)
}

func overflowError(op history.Operation, prior int) error {
	return apperrors.WithMetadata(
		apperrors.CodeCellValueOverflow,
		op.String()+" would overflow value "+strconv.Itoa(prior),
		map[string]string{"Operation": op.String(), "Value": strconv.Itoa(prior)},
	)
}

func nonMonotonicError(before, after int) error {
	return apperrors.WithMetadata(
		apperrors.CodeCellNonMonotonic,
		"observed value decreased from "+strconv.Itoa(before)+" to "+strconv.Itoa(after),
		map[string]string{"Before": strconv.Itoa(before), "After": strconv.Itoa(after)},
	)
}
