package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
)

// HashAlgorithm represents the hashing algorithm to use
type HashAlgorithm string

const (
	SHA256 HashAlgorithm = "sha256"
	// Extensible: add more algorithms here
)

// Hasher computes content digests without buffering whole inputs in memory.
type Hasher struct {
	algorithm HashAlgorithm
}

// NewHasher creates a new hasher with the specified algorithm
func NewHasher(algorithm HashAlgorithm) *Hasher {
	return &Hasher{algorithm: algorithm}
}

// DefaultHasher returns a hasher with the default algorithm
func DefaultHasher() *Hasher {
	return NewHasher(SHA256)
}

func (h *Hasher) newDigest() hash.Hash {
	switch h.algorithm {
	case SHA256:
		return sha256.New()
	default:
		return sha256.New()
	}
}

// Sum streams r through the digest and returns the lowercase hex result.
// The digest is deterministic: identical content yields identical output.
func (h *Hasher) Sum(r io.Reader) (string, error) {
	d := h.newDigest()
	if _, err := io.Copy(d, r); err != nil {
		return "", fmt.Errorf("digest read: %w", err)
	}
	return hex.EncodeToString(d.Sum(nil)), nil
}

// SumBytes computes the digest of an in-memory buffer.
func (h *Hasher) SumBytes(data []byte) string {
	d := h.newDigest()
	d.Write(data)
	return hex.EncodeToString(d.Sum(nil))
}
