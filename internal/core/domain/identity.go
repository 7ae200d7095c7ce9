package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Identity is the SHA-256 digest of a generation request's semantic inputs.
type Identity [sha256.Size]byte

// String returns the lowercase hex form used as a directory name.
func (id Identity) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether the identity was never computed.
func (id Identity) IsZero() bool {
	return id == Identity{}
}

// ParseIdentity parses the hex form produced by String.
func ParseIdentity(s string) (Identity, bool) {
	var id Identity
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(id) {
		return Identity{}, false
	}
	copy(id[:], b)
	return id, true
}
