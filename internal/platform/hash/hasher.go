package hash

import (
	"fmt"

	"github.com/peaceoutommy/DMA-API/internal/config"
)

const (
	AlgorithmBcrypt = "bcrypt"
	AlgorithmArgon2 = "argon2"
)

// Hasher hashes and verifies passwords. Implementations embed their own salt
// in the returned string.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}

// New returns the hasher selected by opts.Algorithm. The pepper is only used by argon2.
//
//nolint:ireturn // the algorithm is chosen at runtime
func New(opts *config.HashOptions, pepper string) (Hasher, error) {
	switch opts.Algorithm {
	case "", AlgorithmBcrypt:
		return NewBcryptHasher(opts.BcryptCost), nil
	case AlgorithmArgon2:
		return NewArgon2Hasher(&opts.Argon2, pepper), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm: %q", opts.Algorithm)
	}
}
