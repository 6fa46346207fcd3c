// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Cell policy errors
	CodeCellPolicyRejectsInitial Code = "CELL_POLICY_REJECTS_INITIAL"
	CodeCellPolicyViolation      Code = "CELL_POLICY_VIOLATION"

	// Cell lifecycle errors
	CodeCellUseAfterDispose Code = "CELL_USE_AFTER_DISPOSE"
	CodeCellDoubleDispose   Code = "CELL_DOUBLE_DISPOSE"

	// Operation errors
	CodeCellOperationInvalid Code = "CELL_OPERATION_INVALID"
	CodeCellValueOverflow    Code = "CELL_VALUE_OVERFLOW"

	// Observation token errors
	CodeCellForeignToken Code = "CELL_FOREIGN_TOKEN"
	CodeCellTokenAhead   Code = "CELL_TOKEN_AHEAD"
	CodeCellNonMonotonic Code = "CELL_NON_MONOTONIC"

	// Policy catalog errors
	CodePolicyUnknown Code = "POLICY_UNKNOWN"
	CodePolicyInvalid Code = "POLICY_INVALID"

	// Request errors
	CodeCellIDInvalid Code = "CELL_ID_INVALID"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeCellPolicyRejectsInitial,
		CodeCellForeignToken,
		CodeCellTokenAhead,
		CodeCellIDInvalid,
		CodeCellOperationInvalid,
		CodePolicyUnknown,
		CodePolicyInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeCellPolicyViolation,
		CodeCellUseAfterDispose,
		CodeCellDoubleDispose:
		return codes.FailedPrecondition

	// OutOfRange - the value cannot move past the integer range
	case CodeCellValueOverflow:
		return codes.OutOfRange

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
