package cellmcp

import (
	"sync"

	tracecellv1 "github.com/louisbranch/tracecell/api/gen/go/tracecell/v1"
)

// Tokens remembers the latest token seen for each cell.
type Tokens struct {
	mu     sync.Mutex
	latest map[string]*tracecellv1.Token
}

// NewTokens creates an empty token table.
func NewTokens() *Tokens {
	return &Tokens{latest: make(map[string]*tracecellv1.Token)}
}

// Get returns the token to present for cellID. Unknown cells get nil, the
// zero token every cell accepts.
func (t *Tokens) Get(cellID string) *tracecellv1.Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[cellID]
}

// Observe records tok for cellID unless a longer token is already known.
// Replies to concurrent calls can arrive in any order.
func (t *Tokens) Observe(cellID string, tok *tracecellv1.Token) {
	if tok.GetLength() <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if cur, ok := t.latest[cellID]; ok && cur.GetLength() >= tok.GetLength() {
		return
	}
	t.latest[cellID] = tok
}

// Forget drops the token for cellID.
func (t *Tokens) Forget(cellID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.latest, cellID)
}
