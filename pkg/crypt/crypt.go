// Package crypt provides the password digest used by registration and login.
//
// The digest is a deterministic SHA-256 hex string: login looks users up with
// an equality filter on (email, password_hash), so the same password must
// always produce the same stored value. Both code paths MUST go through
// Hash. A second algorithm or encoding would silently lock every existing
// account out.
package crypt

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the SHA-256 hex digest of input.
func Hash(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}
