package cell

import (
	"fmt"

	"github.com/google/uuid"
)

// Token records how much of a cell's history its holder has witnessed.
//
// The zero Token has witnessed nothing and is accepted by every cell.
type Token struct {
	cell   uuid.UUID
	length int
}

// RestoreToken rebuilds a token from its wire form. The cell validates it
// on use.
func RestoreToken(cellID uuid.UUID, length int) Token {
	if length <= 0 {
		return Token{}
	}
	return Token{cell: cellID, length: length}
}

// CellID returns the id of the issuing cell, or uuid.Nil for the zero token.
func (t Token) CellID() uuid.UUID {
	return t.cell
}

// Len returns the number of witnessed operations.
func (t Token) Len() int {
	return t.length
}

// IsZero reports whether the token has witnessed nothing.
func (t Token) IsZero() bool {
	return t.length == 0
}

// IsPrefixOf reports whether the history t denotes is a prefix of the one
// other denotes. Tokens of distinct cells are unrelated.
func (t Token) IsPrefixOf(other Token) bool {
	if t.IsZero() {
		return true
	}
	return t.cell == other.cell && t.length <= other.length
}

func (t Token) String() string {
	if t.IsZero() {
		return "token(0)"
	}
	return fmt.Sprintf("token(%s,%d)", t.cell, t.length)
}
