package simsig

import (
	"github.com/dchest/siphash"
	"github.com/zeebo/xxh3"
)

// Hasher maps an item to a fixed-width value of signature type S. It is the
// only contract the engines place on item hashing: determinism (the same
// item always maps to the same value for a given instance) and a
// well-distributed output. Instances may be keyed or unkeyed.
type Hasher[S Bits[S]] interface {
	// Sum returns the hash of data.
	Sum(data []byte) S
	// SumString returns the hash of s. Implementations backed by a
	// string-aware hash avoid the []byte conversion allocation.
	SumString(s string) S
	// Zero returns the all-zero value of the hasher's output width.
	Zero() S
}

// XXH3Hasher64 hashes items to 64 bits using unkeyed xxh3.
type XXH3Hasher64 struct{}

// NewXXH3Hasher64 returns an unkeyed 64-bit xxh3 hasher.
func NewXXH3Hasher64() XXH3Hasher64 { return XXH3Hasher64{} }

// Sum returns the 64-bit xxh3 hash of data.
func (XXH3Hasher64) Sum(data []byte) Sig64 { return Sig64(xxh3.Hash(data)) }

// SumString returns the 64-bit xxh3 hash of s without allocating.
func (XXH3Hasher64) SumString(s string) Sig64 { return Sig64(xxh3.HashString(s)) }

// Zero returns the all-zero 64-bit value.
func (XXH3Hasher64) Zero() Sig64 { return 0 }

// XXH3Hasher128 hashes items to 128 bits using unkeyed xxh3.
type XXH3Hasher128 struct{}

// NewXXH3Hasher128 returns an unkeyed 128-bit xxh3 hasher.
func NewXXH3Hasher128() XXH3Hasher128 { return XXH3Hasher128{} }

// Sum returns the 128-bit xxh3 hash of data.
func (XXH3Hasher128) Sum(data []byte) Sig128 {
	u := xxh3.Hash128(data)
	return Sig128{Hi: u.Hi, Lo: u.Lo}
}

// SumString returns the 128-bit xxh3 hash of s without allocating.
func (XXH3Hasher128) SumString(s string) Sig128 {
	u := xxh3.HashString128(s)
	return Sig128{Hi: u.Hi, Lo: u.Lo}
}

// Zero returns the all-zero 128-bit value.
func (XXH3Hasher128) Zero() Sig128 { return Sig128{} }

// SipHasher64 hashes items to 64 bits using SipHash-2-4 keyed with two
// 64-bit keys.
type SipHasher64 struct {
	k0, k1 uint64
}

// NewSipHasher64 returns a 64-bit SipHash-2-4 hasher keyed with k0 and k1.
func NewSipHasher64(k0, k1 uint64) SipHasher64 {
	return SipHasher64{k0: k0, k1: k1}
}

// Sum returns the keyed 64-bit SipHash of data.
func (h SipHasher64) Sum(data []byte) Sig64 {
	return Sig64(siphash.Hash(h.k0, h.k1, data))
}

// SumString returns the keyed 64-bit SipHash of s.
func (h SipHasher64) SumString(s string) Sig64 {
	return Sig64(siphash.Hash(h.k0, h.k1, []byte(s)))
}

// Zero returns the all-zero 64-bit value.
func (SipHasher64) Zero() Sig64 { return 0 }

// SipHasher128 hashes items to 128 bits using SipHash-2-4 keyed with two
// 64-bit keys.
type SipHasher128 struct {
	k0, k1 uint64
}

// NewSipHasher128 returns a 128-bit SipHash-2-4 hasher keyed with k0 and k1.
func NewSipHasher128(k0, k1 uint64) SipHasher128 {
	return SipHasher128{k0: k0, k1: k1}
}

// Sum returns the keyed 128-bit SipHash of data.
func (h SipHasher128) Sum(data []byte) Sig128 {
	lo, hi := siphash.Hash128(h.k0, h.k1, data)
	return Sig128{Hi: hi, Lo: lo}
}

// SumString returns the keyed 128-bit SipHash of s.
func (h SipHasher128) SumString(s string) Sig128 {
	lo, hi := siphash.Hash128(h.k0, h.k1, []byte(s))
	return Sig128{Hi: hi, Lo: lo}
}

// Zero returns the all-zero 128-bit value.
func (SipHasher128) Zero() Sig128 { return Sig128{} }
