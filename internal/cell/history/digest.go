package history

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"strings"
)

const digestDomain = "tracecell.history.v1"

// Digest returns the hex SHA-256 chain hash of the history.
//
// Each link hashes the previous link with the canonical encoding of one
// operation, so the digest of a prefix is an intermediate link of every
// history extending it.
func (h History) Digest() string {
	link := sha256.Sum256([]byte(digestDomain))
	for _, op := range h.ops {
		link = chainLink(link, op)
	}
	return hex.EncodeToString(link[:])
}

// VerifyDigest reports whether digest matches the chain hash of h.
func VerifyDigest(h History, digest string) bool {
	digest = strings.ToLower(strings.TrimSpace(digest))
	return subtle.ConstantTimeCompare([]byte(h.Digest()), []byte(digest)) == 1
}

func chainLink(prev [sha256.Size]byte, op Operation) [sha256.Size]byte {
	var buf [sha256.Size + 1 + 16]byte
	copy(buf[:], prev[:])
	buf[sha256.Size] = byte(op.Kind)
	binary.BigEndian.PutUint64(buf[sha256.Size+1:], uint64(int64(op.Old)))
	binary.BigEndian.PutUint64(buf[sha256.Size+9:], uint64(int64(op.New)))
	return sha256.Sum256(buf[:])
}
