package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeCellPolicyRejectsInitial = "CELL_POLICY_REJECTS_INITIAL"
	CodeCellPolicyViolation      = "CELL_POLICY_VIOLATION"
	CodeCellUseAfterDispose      = "CELL_USE_AFTER_DISPOSE"
	CodeCellDoubleDispose        = "CELL_DOUBLE_DISPOSE"
	CodeCellOperationInvalid     = "CELL_OPERATION_INVALID"
	CodeCellValueOverflow        = "CELL_VALUE_OVERFLOW"
	CodeCellForeignToken         = "CELL_FOREIGN_TOKEN"
	CodeCellTokenAhead           = "CELL_TOKEN_AHEAD"
	CodeCellNonMonotonic         = "CELL_NON_MONOTONIC"
	CodePolicyUnknown            = "POLICY_UNKNOWN"
	CodePolicyInvalid            = "POLICY_INVALID"
	CodeCellIDInvalid            = "CELL_ID_INVALID"
	CodeNotFound                 = "NOT_FOUND"
)

var enUSMessages = map[Code]string{
	CodeCellPolicyRejectsInitial: "Policy {{.Policy}} does not admit a freshly initialized cell",
	CodeCellPolicyViolation:      "Policy {{.Policy}} rejected {{.Operation}}",
	CodeCellUseAfterDispose:      "Cell {{.CellID}} has been disposed",
	CodeCellDoubleDispose:        "Cell {{.CellID}} was already disposed",
	CodeCellOperationInvalid:     "Operation {{.Operation}} cannot be applied to a live cell",
	CodeCellValueOverflow:        "{{.Operation}} would move the value {{.Value}} out of range",
	CodeCellForeignToken:         "Token belongs to cell {{.TokenCellID}}, not {{.CellID}}",
	CodeCellTokenAhead:           "Token has witnessed {{.TokenLen}} operations but the cell only has {{.HistoryLen}}",
	CodeCellNonMonotonic:         "Value went backwards from {{.Before}} to {{.After}}",
	CodePolicyUnknown:            "Unknown policy: {{.Policy}}",
	CodePolicyInvalid:            "Invalid policy definition {{.Policy}}: {{.Reason}}",
	CodeCellIDInvalid:            "Invalid cell ID: {{.CellID}}",
	CodeNotFound:                 "{{.Resource}} not found",
}
