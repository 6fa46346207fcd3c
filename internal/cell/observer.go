package cell

import (
	"github.com/google/uuid"
	"github.com/louisbranch/tracecell/internal/cell/history"
)

// Commit describes an appended operation.
type Commit struct {
	CellID uuid.UUID
	Op     history.Operation
	Prior  int
	Value  int
	Length int
}

// Rejection describes an operation the policy refused.
type Rejection struct {
	CellID uuid.UUID
	Op     history.Operation
	Value  int
	Length int
	Err    error
}

// Observer is notified after each mutation attempt, outside the cell lock.
// Implementations must be safe for concurrent use.
type Observer interface {
	OnCommit(Commit)
	OnReject(Rejection)
}

// Observers fans notifications out to every member in order.
type Observers []Observer

func (o Observers) OnCommit(c Commit) {
	for _, obs := range o {
		if obs != nil {
			obs.OnCommit(c)
		}
	}
}

func (o Observers) OnReject(r Rejection) {
	for _, obs := range o {
		if obs != nil {
			obs.OnReject(r)
		}
	}
}
