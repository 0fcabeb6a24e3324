package core

import (
	"crypto/rand"
	"math/big"
)

// CryptoRandomSource draws the draft's single random bit from crypto/rand.
// It is the default source wired in by the CLI and HTTP API; tests use a
// FixedRandomSource instead for reproducibility.
type CryptoRandomSource struct{}

// Bool returns a cryptographically random boolean.
func (CryptoRandomSource) Bool() bool {
	n, err := rand.Int(rand.Reader, big.NewInt(2))
	if err != nil {
		// crypto/rand failing indicates a broken host entropy source; fall
		// back to a fixed pick rather than propagating an error through a
		// function contract that the rest of the core keeps infallible.
		return false
	}
	return n.Int64() == 1
}

// FixedRandomSource always returns the same bit. Used in tests and by
// callers that want to reproduce a prior draft exactly.
type FixedRandomSource bool

// Bool returns the fixed value.
func (f FixedRandomSource) Bool() bool { return bool(f) }
