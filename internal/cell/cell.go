package cell

import (
	"sync"

	"github.com/google/uuid"
	"github.com/louisbranch/tracecell/internal/cell/history"
	"github.com/louisbranch/tracecell/internal/cell/policy"
)

// State is the lifecycle state of a cell.
type State uint8

const (
	// StateLive accepts operations.
	StateLive State = iota
	// StateDisposed is terminal.
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// Outcome reports the value before and after an applied operation.
type Outcome struct {
	Prior int
	Value int
}

// Cell is an integer whose history of mutations is kept admissible under a
// policy. All methods are safe for concurrent use.
type Cell struct {
	id       uuid.UUID
	policy   policy.Policy
	stepper  policy.Stepper
	observer Observer

	mu    sync.Mutex
	log   *history.Log
	state State
}

// New creates a live cell holding [Init] and returns the token of length
// one. It fails with ErrPolicyRejectsInitial when p is nil or does not admit
// the initial history.
func New(p policy.Policy, opts ...Option) (*Cell, Token, error) {
	if p == nil || !p.Admits(history.New()) {
		return nil, Token{}, rejectsInitialError(p)
	}
	c := &Cell{
		id:     uuid.New(),
		policy: p,
		log:    history.NewLog(),
	}
	if s, ok := p.(policy.Stepper); ok {
		c.stepper = s
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, Token{cell: c.id, length: c.log.Len()}, nil
}

// ID returns the cell id.
func (c *Cell) ID() uuid.UUID {
	return c.id
}

// Policy returns the policy fixed at creation.
func (c *Cell) Policy() policy.Policy {
	return c.policy
}

// State returns the lifecycle state.
func (c *Cell) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Increment appends Inc if the policy admits it.
func (c *Cell) Increment(tok Token) (Token, error) {
	next, _, err := c.Apply(tok, history.Inc())
	return next, err
}

// Decrement appends Dec if the policy admits it.
func (c *Cell) Decrement(tok Token) (Token, error) {
	next, _, err := c.Apply(tok, history.Dec())
	return next, err
}

// CompareAndSwap appends Cas(old, new) if the policy admits it and returns
// the value held before the attempt. The value becomes new only when it
// equalled old, but the attempt is recorded either way.
func (c *Cell) CompareAndSwap(tok Token, old, new int) (Token, int, error) {
	next, out, err := c.Apply(tok, history.Cas(old, new))
	return next, out.Prior, err
}

// Apply appends op if the policy admits the extended history. An increment
// or decrement that would wrap past the int range is rejected whatever the
// policy. On error the presented token is returned unchanged and remains
// valid.
func (c *Cell) Apply(tok Token, op history.Operation) (Token, Outcome, error) {
	if op.Kind == history.KindInit || !op.Kind.IsValid() {
		return tok, Outcome{}, invalidOperationError(op)
	}

	c.mu.Lock()
	if err := c.checkLocked(tok); err != nil {
		c.mu.Unlock()
		return tok, Outcome{}, err
	}
	prior := c.log.Value()
	var err error
	switch {
	case op.Overflows(prior):
		err = overflowError(op, prior)
	case !c.admitsLocked(prior, op):
		err = violationError(c.policy, op)
	}
	if err != nil {
		length := c.log.Len()
		c.mu.Unlock()

		if c.observer != nil {
			c.observer.OnReject(Rejection{CellID: c.id, Op: op, Value: prior, Length: length, Err: err})
		}
		return tok, Outcome{}, err
	}
	value := c.log.Append(op)
	length := c.log.Len()
	c.mu.Unlock()

	if c.observer != nil {
		c.observer.OnCommit(Commit{CellID: c.id, Op: op, Prior: prior, Value: value, Length: length})
	}
	return Token{cell: c.id, length: length}, Outcome{Prior: prior, Value: value}, nil
}

// Get returns the current value and a token covering the whole history.
func (c *Cell) Get(tok Token) (Token, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkLocked(tok); err != nil {
		return tok, 0, err
	}
	return Token{cell: c.id, length: c.log.Len()}, c.log.Value(), nil
}

// History returns a snapshot of the committed history and a token
// covering it.
func (c *Cell) History(tok Token) (Token, history.History, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkLocked(tok); err != nil {
		return tok, history.History{}, err
	}
	snap := c.log.Snapshot()
	return Token{cell: c.id, length: snap.Len()}, snap, nil
}

// Witnessed returns the prefix of the history that tok denotes.
func (c *Cell) Witnessed(tok Token) (history.History, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkLocked(tok); err != nil {
		return history.History{}, err
	}
	return c.log.Snapshot().Prefix(tok.length), nil
}

// Dispose moves the cell to its terminal state and releases its history.
func (c *Cell) Dispose() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateDisposed {
		return doubleDisposeError(c.id)
	}
	c.state = StateDisposed
	c.log = nil
	return nil
}

func (c *Cell) checkLocked(tok Token) error {
	if c.state == StateDisposed {
		return useAfterDisposeError(c.id)
	}
	if tok.IsZero() {
		return nil
	}
	if tok.cell != c.id {
		return foreignTokenError(c.id, tok)
	}
	if tok.length > c.log.Len() {
		return tokenAheadError(tok, c.log.Len())
	}
	return nil
}

func (c *Cell) admitsLocked(prior int, op history.Operation) bool {
	if c.stepper != nil {
		return c.stepper.AdmitsStep(prior, op)
	}
	return c.policy.Admits(c.log.Propose(op))
}
