package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return sum(sha256.New(), hashable)
}

// XXH3 returns the 64-bit XXH3 hashing of the given Hashable as a
// hex-encoded string. Much faster than Sha256, not suitable where
// collision resistance against adversarial input matters.
func XXH3(hashable Hashable) (string, error) {
	return sum(xxh3.New(), hashable)
}

// XXHash64 returns the 64-bit xxHash of the given Hashable as a hex-encoded string.
func XXHash64(hashable Hashable) (string, error) {
	return sum(xxhash.New64(), hashable)
}

func sum(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashableString is a string that can be fed to a HashFunc.
type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}
