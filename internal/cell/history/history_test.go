package history

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func build(ops ...Operation) History {
	h := New()
	for _, op := range ops {
		h = h.Append(op)
	}
	return h
}

func TestHistory_Execute(t *testing.T) {
	tests := []struct {
		name string
		h    History
		want int
	}{
		{name: "empty", h: History{}, want: 0},
		{name: "init only", h: New(), want: 0},
		{name: "increments", h: build(Inc(), Inc(), Inc()), want: 3},
		{name: "decrement below zero", h: build(Dec(), Dec()), want: -2},
		{name: "cas hit", h: build(Inc(), Cas(1, 7)), want: 7},
		{name: "cas miss", h: build(Inc(), Cas(5, 7)), want: 1},
		{name: "mixed", h: build(Inc(), Inc(), Cas(2, 5), Dec()), want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.Execute(); got != tt.want {
				t.Fatalf("Execute() = %d, want %d", got, tt.want)
			}
			if again := tt.h.Execute(); again != tt.want {
				t.Fatalf("second Execute() = %d, want %d", again, tt.want)
			}
		})
	}
}

func TestHistory_AppendDoesNotAliasSiblings(t *testing.T) {
	base := build(Inc())
	a := base.Append(Inc())
	b := base.Append(Dec())

	if got := a.Execute(); got != 2 {
		t.Fatalf("a = %d, want 2", got)
	}
	if got := b.Execute(); got != 0 {
		t.Fatalf("b = %d, want 0", got)
	}
	if base.Len() != 2 {
		t.Fatalf("base len = %d, want 2", base.Len())
	}
}

func TestIsPrefix_PartialOrder(t *testing.T) {
	h0 := New()
	h1 := h0.Append(Inc())
	h2 := h1.Append(Cas(1, 3))
	other := h0.Append(Dec())

	if !IsPrefix(h2, h2) {
		t.Fatal("expected reflexive prefix")
	}
	if !IsPrefix(h0, h1) || !IsPrefix(h1, h2) || !IsPrefix(h0, h2) {
		t.Fatal("expected transitive prefix chain")
	}
	if IsPrefix(h2, h1) {
		t.Fatal("longer history cannot be a prefix of a shorter one")
	}
	if IsPrefix(other, h2) || IsPrefix(h1, other) {
		t.Fatal("diverging histories must not be prefixes")
	}
	if !IsPrefix(History{}, other) {
		t.Fatal("empty history is a prefix of everything")
	}
	if !h1.IsPrefixOf(h2) {
		t.Fatal("method form disagrees with IsPrefix")
	}
}

func TestIsPrefix_AntisymmetricOnEqualLength(t *testing.T) {
	a := build(Inc(), Dec())
	b := build(Inc(), Dec())
	if !IsPrefix(a, b) || !IsPrefix(b, a) {
		t.Fatal("expected mutual prefix for equal histories")
	}
	if !a.Equal(b) {
		t.Fatal("mutual prefixes must be equal")
	}
}

func TestHistory_Prefix(t *testing.T) {
	h := build(Inc(), Inc(), Dec())
	tests := []struct {
		n    int
		want int
	}{
		{n: -1, want: 0},
		{n: 0, want: 0},
		{n: 2, want: 2},
		{n: 4, want: 4},
		{n: 10, want: 4},
	}
	for _, tt := range tests {
		p := h.Prefix(tt.n)
		if p.Len() != tt.want {
			t.Fatalf("Prefix(%d).Len() = %d, want %d", tt.n, p.Len(), tt.want)
		}
		if !IsPrefix(p, h) {
			t.Fatalf("Prefix(%d) is not a prefix", tt.n)
		}
	}
}

func TestFromOps(t *testing.T) {
	tests := []struct {
		name string
		ops  []Operation
		err  error
	}{
		{name: "empty", ops: nil, err: ErrEmpty},
		{name: "missing init", ops: []Operation{Inc()}, err: ErrMissingInit},
		{name: "misplaced init", ops: []Operation{Init(), Inc(), Init()}, err: ErrMisplacedInit},
		{name: "unknown kind", ops: []Operation{Init(), {Kind: Kind(9)}}, err: ErrUnknownKind},
		{name: "valid", ops: []Operation{Init(), Inc(), Cas(1, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := FromOps(tt.ops)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("from ops: %v", err)
			}
			if diff := cmp.Diff(tt.ops, h.Ops()); diff != "" {
				t.Fatalf("ops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromOps_CopiesInput(t *testing.T) {
	ops := []Operation{Init(), Inc()}
	h, err := FromOps(ops)
	if err != nil {
		t.Fatalf("from ops: %v", err)
	}
	ops[1] = Dec()
	if got := h.Execute(); got != 1 {
		t.Fatalf("Execute() = %d, want 1", got)
	}
}

func TestOperation_JSON(t *testing.T) {
	data, err := json.Marshal([]Operation{Init(), Cas(5, 10)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"kind":"init"},{"kind":"cas","old":5,"new":10}]`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}

	var decoded []Operation
	if err := json.Unmarshal([]byte(`[{"kind":"INC"},{"kind":"bogus"}]`), &decoded); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestHistory_String(t *testing.T) {
	h := build(Inc(), Cas(1, 4), Dec())
	if got, want := h.String(), "[init inc cas(1,4) dec]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestOperation_Overflows(t *testing.T) {
	tests := []struct {
		name  string
		op    Operation
		prior int
		want  bool
	}{
		{name: "inc at max", op: Inc(), prior: math.MaxInt, want: true},
		{name: "inc below max", op: Inc(), prior: math.MaxInt - 1},
		{name: "dec at min", op: Dec(), prior: math.MinInt, want: true},
		{name: "dec above min", op: Dec(), prior: math.MinInt + 1},
		{name: "cas at max", op: Cas(math.MaxInt, math.MinInt), prior: math.MaxInt},
		{name: "init", op: Init(), prior: math.MinInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.Overflows(tt.prior); got != tt.want {
				t.Fatalf("%s.Overflows(%d) = %v, want %v", tt.op, tt.prior, got, tt.want)
			}
		})
	}
}
