package cell

import (
	"errors"
	"math"
	"testing"

	"github.com/louisbranch/tracecell/internal/cell/policy"
)

func TestClient_TracksTokenAndValue(t *testing.T) {
	c, tok := mustNew(t, policy.AlwaysTrue())
	cl := NewClient(c, tok)

	if _, ok := cl.Last(); ok {
		t.Fatal("fresh client has observed nothing")
	}
	if v, err := cl.Increment(); err != nil || v != 1 {
		t.Fatalf("increment = (%d, %v), want (1, nil)", v, err)
	}
	if v, err := cl.Increment(); err != nil || v != 2 {
		t.Fatalf("increment = (%d, %v), want (2, nil)", v, err)
	}
	if prior, err := cl.CompareAndSwap(2, 5); err != nil || prior != 2 {
		t.Fatalf("cas = (%d, %v), want (2, nil)", prior, err)
	}
	if last, _ := cl.Last(); last != 5 {
		t.Fatalf("last = %d, want 5", last)
	}
	if v, err := cl.Decrement(); err != nil || v != 4 {
		t.Fatalf("decrement = (%d, %v), want (4, nil)", v, err)
	}
	if v, err := cl.Get(); err != nil || v != 4 {
		t.Fatalf("get = (%d, %v), want (4, nil)", v, err)
	}
	if cl.Token().Len() != 5 {
		t.Fatalf("token len = %d, want 5", cl.Token().Len())
	}
}

func TestClient_FailedCallKeepsToken(t *testing.T) {
	c, tok := mustNew(t, policy.NonNegative())
	cl := NewClient(c, tok)
	if _, err := cl.Decrement(); !errors.Is(err, ErrPolicyViolation) {
		t.Fatalf("error = %v, want %v", err, ErrPolicyViolation)
	}
	if cl.Token() != tok {
		t.Fatalf("token = %v, want %v", cl.Token(), tok)
	}
}

// A policy that admits decrements lets another caller lower the value
// between two reads; the check must catch it.
func TestCheckMonotonic_DetectsDecrease(t *testing.T) {
	c, tok := mustNew(t, policy.AlwaysTrue())
	cl := NewClient(c, tok)
	if _, err := cl.Increment(); err != nil {
		t.Fatalf("increment: %v", err)
	}

	lower := func() { _, _ = c.Decrement(Token{}) }
	if err := checkMonotonic(cl, lower); !errors.Is(err, ErrNonMonotonic) {
		t.Fatalf("error = %v, want %v", err, ErrNonMonotonic)
	}
	if err := CheckMonotonic(cl); err != nil {
		t.Fatalf("quiet cell should read monotonically: %v", err)
	}
}

// A value pinned at math.MaxInt must not wrap to math.MinInt on the next
// increment.
func TestClient_IncrementOnlyStaysMonotonicAtMaxInt(t *testing.T) {
	c, tok := mustNew(t, policy.IncrementOnly())
	if _, _, err := c.CompareAndSwap(tok, 0, math.MaxInt); err != nil {
		t.Fatalf("cas: %v", err)
	}

	cl := NewClient(c, Token{})
	before, err := cl.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, err := cl.Increment(); !errors.Is(err, ErrValueOverflow) {
		t.Fatalf("error = %v, want %v", err, ErrValueOverflow)
	}
	after, err := cl.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if before != math.MaxInt || after != math.MaxInt {
		t.Fatalf("before=%d after=%d, want both %d", before, after, math.MaxInt)
	}
	if err := CheckMonotonic(cl); err != nil {
		t.Fatalf("check monotonic: %v", err)
	}
}
