package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint identifies upload content by its SHA-256 digest. Two uploads
// with the same fingerprint carry byte-identical data.
type Fingerprint string

// NewFingerprint computes the fingerprint of raw upload bytes.
func NewFingerprint(data []byte) Fingerprint {
	sum := sha256.Sum256(data)
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (f Fingerprint) String() string {
	return string(f)
}

// IsEmpty checks if the fingerprint is empty
func (f Fingerprint) IsEmpty() bool {
	return f == ""
}

// Short returns a truncated form for log lines.
func (f Fingerprint) Short() string {
	if len(f) <= 12 {
		return string(f)
	}
	return string(f[:12])
}
