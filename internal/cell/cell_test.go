package cell

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/louisbranch/tracecell/internal/cell/history"
	"github.com/louisbranch/tracecell/internal/cell/policy"
)

func mustNew(t *testing.T, p policy.Policy, opts ...Option) (*Cell, Token) {
	t.Helper()
	c, tok, err := New(p, opts...)
	if err != nil {
		t.Fatalf("new cell: %v", err)
	}
	return c, tok
}

func TestNew_RejectsInitial(t *testing.T) {
	never := policy.Func(func(history.History) bool { return false })
	tests := []struct {
		name   string
		policy policy.Policy
	}{
		{name: "nil policy", policy: nil},
		{name: "never", policy: never},
		{name: "range excludes zero", policy: policy.Bounded(1, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tok, err := New(tt.policy)
			if !errors.Is(err, ErrPolicyRejectsInitial) {
				t.Fatalf("error = %v, want %v", err, ErrPolicyRejectsInitial)
			}
			if c != nil {
				t.Fatal("expected no cell")
			}
			if !tok.IsZero() {
				t.Fatalf("token = %v, want zero", tok)
			}
			if IsNonRetryable(err) {
				t.Fatal("creation rejection should be recoverable")
			}
		})
	}
}

func TestNew_InitialState(t *testing.T) {
	id := uuid.New()
	c, tok := mustNew(t, policy.AlwaysTrue(), WithID(id))
	if c.ID() != id {
		t.Fatalf("id = %s, want %s", c.ID(), id)
	}
	if tok.Len() != 1 || tok.CellID() != id {
		t.Fatalf("token = %v, want length 1 for %s", tok, id)
	}
	if c.State() != StateLive {
		t.Fatalf("state = %s, want live", c.State())
	}
	_, h, err := c.History(tok)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if diff := cmp.Diff([]history.Operation{history.Init()}, h.Ops()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestCell_EndToEndScenario(t *testing.T) {
	c, tok := mustNew(t, policy.AlwaysTrue())

	tok, err := c.Increment(tok)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	tok, err = c.Increment(tok)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if _, v, _ := c.Get(tok); v != 2 {
		t.Fatalf("value = %d, want 2", v)
	}
	tok, prior, err := c.CompareAndSwap(tok, 2, 5)
	if err != nil {
		t.Fatalf("cas: %v", err)
	}
	if prior != 2 {
		t.Fatalf("prior = %d, want 2", prior)
	}
	tok, err = c.Decrement(tok)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	tok, value, err := c.Get(tok)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != 4 {
		t.Fatalf("value = %d, want 4", value)
	}
	if tok.Len() != 5 {
		t.Fatalf("token len = %d, want 5", tok.Len())
	}

	_, h, err := c.History(tok)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	want := []history.Operation{history.Init(), history.Inc(), history.Inc(), history.Cas(2, 5), history.Dec()}
	if diff := cmp.Diff(want, h.Ops()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestCell_CompareAndSwapRecordsFailedAttempt(t *testing.T) {
	c, tok := mustNew(t, policy.AlwaysTrue())
	for i := 0; i < 5; i++ {
		var err error
		if tok, err = c.Increment(tok); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	tok, prior, err := c.CompareAndSwap(tok, 5, 10)
	if err != nil {
		t.Fatalf("cas: %v", err)
	}
	if prior != 5 {
		t.Fatalf("prior = %d, want 5", prior)
	}
	tok, prior, err = c.CompareAndSwap(tok, 5, 99)
	if err != nil {
		t.Fatalf("cas: %v", err)
	}
	if prior != 10 {
		t.Fatalf("prior = %d, want 10", prior)
	}
	tok, value, err := c.Get(tok)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != 10 {
		t.Fatalf("value = %d, want 10", value)
	}

	_, h, _ := c.History(tok)
	if h.Len() != 8 {
		t.Fatalf("history len = %d, want 8", h.Len())
	}
	if diff := cmp.Diff([]history.Operation{history.Cas(5, 10), history.Cas(5, 99)}, h.Ops()[6:]); diff != "" {
		t.Fatalf("cas attempts mismatch (-want +got):\n%s", diff)
	}
}

func TestCell_RejectedMutationLeavesStateUnchanged(t *testing.T) {
	c, tok := mustNew(t, policy.IncrementOnly())
	tok, err := c.Increment(tok)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}

	tests := []struct {
		name string
		run  func(Token) (Token, error)
	}{
		{name: "decrement", run: c.Decrement},
		{name: "lowering cas", run: func(tk Token) (Token, error) {
			next, _, err := c.CompareAndSwap(tk, 1, 0)
			return next, err
		}},
		{name: "lowering cas that would miss", run: func(tk Token) (Token, error) {
			next, _, err := c.CompareAndSwap(tk, 7, 3)
			return next, err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := tt.run(tok)
			if !errors.Is(err, ErrPolicyViolation) {
				t.Fatalf("error = %v, want %v", err, ErrPolicyViolation)
			}
			if IsNonRetryable(err) {
				t.Fatal("policy violation should be recoverable")
			}
			if next != tok {
				t.Fatalf("token = %v, want presented %v", next, tok)
			}
			after, value, err := c.Get(tok)
			if err != nil {
				t.Fatalf("presented token must stay valid: %v", err)
			}
			if value != 1 || after.Len() != 2 {
				t.Fatalf("state = (%d, len %d), want (1, len 2)", value, after.Len())
			}
		})
	}
}

func TestCell_RejectsWrapAtIntBounds(t *testing.T) {
	anything := policy.Func(func(history.History) bool { return true })
	tests := []struct {
		name   string
		policy policy.Policy
		start  int
		op     history.Operation
	}{
		{name: "increment only inc at max", policy: policy.IncrementOnly(), start: math.MaxInt, op: history.Inc()},
		{name: "always true inc at max", policy: policy.AlwaysTrue(), start: math.MaxInt, op: history.Inc()},
		{name: "always true dec at min", policy: policy.AlwaysTrue(), start: math.MinInt, op: history.Dec()},
		{name: "plain policy dec at min", policy: anything, start: math.MinInt, op: history.Dec()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &recordingObserver{}
			c, tok := mustNew(t, tt.policy, WithObserver(obs))
			obs.cell = c
			tok, _, err := c.CompareAndSwap(tok, 0, tt.start)
			if err != nil {
				t.Fatalf("cas to %d: %v", tt.start, err)
			}

			next, _, err := c.Apply(tok, tt.op)
			if !errors.Is(err, ErrValueOverflow) {
				t.Fatalf("error = %v, want %v", err, ErrValueOverflow)
			}
			if IsNonRetryable(err) {
				t.Fatal("overflow should be recoverable")
			}
			if next != tok {
				t.Fatalf("token = %v, want presented %v", next, tok)
			}
			after, value, err := c.Get(tok)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if value != tt.start || after.Len() != 2 {
				t.Fatalf("state = (%d, len %d), want (%d, len 2)", value, after.Len(), tt.start)
			}
			if len(obs.rejects) != 1 || obs.rejects[0].Op != tt.op || obs.rejects[0].Value != tt.start {
				t.Fatalf("rejects = %+v", obs.rejects)
			}
		})
	}
}

func TestCell_PlainPolicyIsEvaluatedOnFullHistory(t *testing.T) {
	calls := 0
	atMostTwo := policy.Func(func(h history.History) bool {
		calls++
		return h.Execute() <= 2
	})
	c, tok := mustNew(t, atMostTwo)
	var err error
	for i := 0; i < 2; i++ {
		if tok, err = c.Increment(tok); err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
	}
	if _, err := c.Increment(tok); !errors.Is(err, ErrPolicyViolation) {
		t.Fatalf("error = %v, want %v", err, ErrPolicyViolation)
	}
	if calls != 4 {
		t.Fatalf("policy calls = %d, want 4", calls)
	}
	// The rejected proposal must not leak into the next candidate.
	if tok, err = c.Decrement(tok); err != nil {
		t.Fatalf("decrement: %v", err)
	}
	_, h, _ := c.History(tok)
	want := []history.Operation{history.Init(), history.Inc(), history.Inc(), history.Dec()}
	if diff := cmp.Diff(want, h.Ops()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestCell_RejectsInitOperation(t *testing.T) {
	c, tok := mustNew(t, policy.AlwaysTrue())
	if _, _, err := c.Apply(tok, history.Init()); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidOperation)
	}
	if _, _, err := c.Apply(tok, history.Operation{Kind: history.Kind(42)}); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidOperation)
	}
}

func TestCell_DisposeLifecycle(t *testing.T) {
	c, tok := mustNew(t, policy.AlwaysTrue())
	if err := c.Dispose(); err != nil {
		t.Fatalf("dispose: %v", err)
	}
	if c.State() != StateDisposed {
		t.Fatalf("state = %s, want disposed", c.State())
	}

	err := c.Dispose()
	if !errors.Is(err, ErrDoubleDispose) {
		t.Fatalf("error = %v, want %v", err, ErrDoubleDispose)
	}
	if !IsNonRetryable(err) {
		t.Fatal("double dispose should be non-retryable")
	}

	calls := map[string]func() error{
		"increment": func() error { _, err := c.Increment(tok); return err },
		"decrement": func() error { _, err := c.Decrement(tok); return err },
		"cas":       func() error { _, _, err := c.CompareAndSwap(tok, 0, 1); return err },
		"get":       func() error { _, _, err := c.Get(tok); return err },
		"history":   func() error { _, _, err := c.History(tok); return err },
		"witnessed": func() error { _, err := c.Witnessed(tok); return err },
	}
	for name, call := range calls {
		err := call()
		if !errors.Is(err, ErrUseAfterDispose) {
			t.Fatalf("%s error = %v, want %v", name, err, ErrUseAfterDispose)
		}
		if !IsNonRetryable(err) {
			t.Fatalf("%s error should be non-retryable", name)
		}
	}
}

func TestCell_TokenValidation(t *testing.T) {
	c, tok := mustNew(t, policy.AlwaysTrue())
	other, otherTok := mustNew(t, policy.AlwaysTrue())

	if _, err := c.Increment(otherTok); !errors.Is(err, ErrForeignToken) {
		t.Fatalf("error = %v, want %v", err, ErrForeignToken)
	}
	if _, _, err := c.Get(RestoreToken(c.ID(), 5)); !errors.Is(err, ErrTokenAhead) {
		t.Fatalf("error = %v, want %v", err, ErrTokenAhead)
	}
	if _, _, err := other.Get(Token{}); err != nil {
		t.Fatalf("zero token should be accepted: %v", err)
	}
	next, value, err := c.Get(Token{})
	if err != nil {
		t.Fatalf("get with zero token: %v", err)
	}
	if value != 0 || next != tok {
		t.Fatalf("get = (%v, %d), want (%v, 0)", next, value, tok)
	}
}

func TestCell_Witnessed(t *testing.T) {
	c, tok := mustNew(t, policy.AlwaysTrue())
	first, _ := c.Increment(tok)
	if _, err := c.Decrement(first); err != nil {
		t.Fatalf("decrement: %v", err)
	}

	h, err := c.Witnessed(first)
	if err != nil {
		t.Fatalf("witnessed: %v", err)
	}
	if diff := cmp.Diff([]history.Operation{history.Init(), history.Inc()}, h.Ops()); diff != "" {
		t.Fatalf("witnessed mismatch (-want +got):\n%s", diff)
	}
	empty, err := c.Witnessed(Token{})
	if err != nil {
		t.Fatalf("witnessed zero: %v", err)
	}
	if empty.Len() != 0 {
		t.Fatalf("zero token witnessed %d ops, want 0", empty.Len())
	}
}

type recordingObserver struct {
	cell *Cell

	mu      sync.Mutex
	commits []Commit
	rejects []Rejection
	reads   []int
}

func (o *recordingObserver) OnCommit(c Commit) {
	// Reading back from the cell proves the lock is released.
	_, v, _ := o.cell.Get(Token{})
	o.mu.Lock()
	defer o.mu.Unlock()
	o.commits = append(o.commits, c)
	o.reads = append(o.reads, v)
}

func (o *recordingObserver) OnReject(r Rejection) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rejects = append(o.rejects, r)
}

func TestCell_ObserverRunsOutsideLock(t *testing.T) {
	obs := &recordingObserver{}
	c, tok := mustNew(t, policy.IncrementOnly(), WithObserver(obs))
	obs.cell = c

	tok, err := c.Increment(tok)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if _, err := c.Decrement(tok); err == nil {
		t.Fatal("expected decrement to be rejected")
	}

	want := []Commit{{CellID: c.ID(), Op: history.Inc(), Prior: 0, Value: 1, Length: 2}}
	if diff := cmp.Diff(want, obs.commits); diff != "" {
		t.Fatalf("commits mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, obs.reads); diff != "" {
		t.Fatalf("reads mismatch (-want +got):\n%s", diff)
	}
	if len(obs.rejects) != 1 || obs.rejects[0].Op != history.Dec() || obs.rejects[0].Length != 2 {
		t.Fatalf("rejects = %+v", obs.rejects)
	}
	if !errors.Is(obs.rejects[0].Err, ErrPolicyViolation) {
		t.Fatalf("reject error = %v", obs.rejects[0].Err)
	}
}

func TestToken_IsPrefixOf(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	tests := []struct {
		name string
		x, y Token
		want bool
	}{
		{name: "zero", x: Token{}, y: RestoreToken(a, 3), want: true},
		{name: "shorter", x: RestoreToken(a, 2), y: RestoreToken(a, 3), want: true},
		{name: "equal", x: RestoreToken(a, 3), y: RestoreToken(a, 3), want: true},
		{name: "longer", x: RestoreToken(a, 4), y: RestoreToken(a, 3), want: false},
		{name: "other cell", x: RestoreToken(a, 1), y: RestoreToken(b, 3), want: false},
	}
	for _, tt := range tests {
		if got := tt.x.IsPrefixOf(tt.y); got != tt.want {
			t.Fatalf("%s: IsPrefixOf = %v, want %v", tt.name, got, tt.want)
		}
	}
	if !RestoreToken(a, 0).IsZero() || !RestoreToken(a, -3).IsZero() {
		t.Fatal("non-positive lengths restore the zero token")
	}
}
