package simsig

import "math/bits"

// Bits is the capability set a type must provide to be usable as a
// signature. It is implemented by [Sig64], [Sig128] and [BitArray], and
// callers may supply their own fixed-width types.
//
// All operations are width-preserving: the receiver's width determines the
// width of the result. Implementations must be value types whose operations
// never mutate the receiver, so signatures stay immutable once produced.
type Bits[S any] interface {
	// Zero returns the all-zero value of the receiver's width.
	Zero() S
	// One returns the value with only bit 0 set, at the receiver's width.
	One() S
	// And returns the bitwise AND of the receiver and other.
	And(other S) S
	// Or returns the bitwise OR of the receiver and other.
	Or(other S) S
	// Xor returns the bitwise XOR of the receiver and other.
	Xor(other S) S
	// ShiftLeft returns the receiver shifted left by n bits. Bits shifted
	// past the width are discarded.
	ShiftLeft(n uint) S
	// ShiftRight returns the receiver shifted right by n bits.
	ShiftRight(n uint) S
	// Equal reports whether the receiver and other are bit-identical.
	Equal(other S) bool
	// HammingDistance returns the number of differing bit positions
	// between the receiver and other.
	HammingDistance(other S) int
	// BitLen returns the width of the value in bits.
	BitLen() int
}

// Sig64 is a 64-bit signature.
type Sig64 uint64

// Zero returns 0.
func (Sig64) Zero() Sig64 { return 0 }

// One returns 1.
func (Sig64) One() Sig64 { return 1 }

// And returns the bitwise AND of s and other.
func (s Sig64) And(other Sig64) Sig64 { return s & other }

// Or returns the bitwise OR of s and other.
func (s Sig64) Or(other Sig64) Sig64 { return s | other }

// Xor returns the bitwise XOR of s and other.
func (s Sig64) Xor(other Sig64) Sig64 { return s ^ other }

// ShiftLeft returns s << n.
func (s Sig64) ShiftLeft(n uint) Sig64 { return s << n }

// ShiftRight returns s >> n.
func (s Sig64) ShiftRight(n uint) Sig64 { return s >> n }

// Equal reports whether s == other.
func (s Sig64) Equal(other Sig64) bool { return s == other }

// HammingDistance returns the number of differing bits between s and other.
func (s Sig64) HammingDistance(other Sig64) int {
	return bits.OnesCount64(uint64(s ^ other))
}

// BitLen returns 64.
func (Sig64) BitLen() int { return 64 }

// Sig128 is a 128-bit signature stored as two 64-bit halves.
// Bit 0 is the least significant bit of Lo; bit 64 is the least
// significant bit of Hi.
type Sig128 struct {
	Hi, Lo uint64
}

// Zero returns the all-zero 128-bit value.
func (Sig128) Zero() Sig128 { return Sig128{} }

// One returns the 128-bit value with only bit 0 set.
func (Sig128) One() Sig128 { return Sig128{Lo: 1} }

// And returns the bitwise AND of s and other.
func (s Sig128) And(other Sig128) Sig128 {
	return Sig128{Hi: s.Hi & other.Hi, Lo: s.Lo & other.Lo}
}

// Or returns the bitwise OR of s and other.
func (s Sig128) Or(other Sig128) Sig128 {
	return Sig128{Hi: s.Hi | other.Hi, Lo: s.Lo | other.Lo}
}

// Xor returns the bitwise XOR of s and other.
func (s Sig128) Xor(other Sig128) Sig128 {
	return Sig128{Hi: s.Hi ^ other.Hi, Lo: s.Lo ^ other.Lo}
}

// ShiftLeft returns s << n. Bits shifted past position 127 are discarded.
func (s Sig128) ShiftLeft(n uint) Sig128 {
	switch {
	case n >= 128:
		return Sig128{}
	case n >= 64:
		return Sig128{Hi: s.Lo << (n - 64)}
	default:
		// Shifts >= 64 evaluate to 0 in Go, so n == 0 needs no special case.
		return Sig128{Hi: s.Hi<<n | s.Lo>>(64-n), Lo: s.Lo << n}
	}
}

// ShiftRight returns s >> n.
func (s Sig128) ShiftRight(n uint) Sig128 {
	switch {
	case n >= 128:
		return Sig128{}
	case n >= 64:
		return Sig128{Lo: s.Hi >> (n - 64)}
	default:
		return Sig128{Hi: s.Hi >> n, Lo: s.Lo>>n | s.Hi<<(64-n)}
	}
}

// Equal reports whether s == other.
func (s Sig128) Equal(other Sig128) bool { return s == other }

// HammingDistance returns the number of differing bits between s and other.
func (s Sig128) HammingDistance(other Sig128) int {
	return bits.OnesCount64(s.Hi^other.Hi) + bits.OnesCount64(s.Lo^other.Lo)
}

// BitLen returns 128.
func (Sig128) BitLen() int { return 128 }

// BitArray is a signature of arbitrary width, stored as a slice of 64-bit
// words. Bit i lives at word i/64, bit position i%64, so the words form one
// contiguous logical bit string with word 0 holding the least significant
// bits.
//
// Operands of binary operations must have the same word count; a mismatch
// is a programming error and panics.
type BitArray []uint64

// NewBitArray returns an all-zero BitArray of the given word count
// (words * 64 bits).
func NewBitArray(words int) BitArray {
	return make(BitArray, words)
}

// mustMatch panics if a and b have different word counts.
func mustMatch(a, b BitArray) {
	if len(a) != len(b) {
		panic("simsig: bit array word count mismatch")
	}
}

// Zero returns an all-zero BitArray of the same width as b.
func (b BitArray) Zero() BitArray { return make(BitArray, len(b)) }

// One returns a BitArray of the same width as b with only bit 0 set.
func (b BitArray) One() BitArray {
	out := make(BitArray, len(b))
	if len(out) > 0 {
		out[0] = 1
	}
	return out
}

// And returns the bitwise AND of b and other.
func (b BitArray) And(other BitArray) BitArray {
	mustMatch(b, other)
	out := make(BitArray, len(b))
	for i := range b {
		out[i] = b[i] & other[i]
	}
	return out
}

// Or returns the bitwise OR of b and other.
func (b BitArray) Or(other BitArray) BitArray {
	mustMatch(b, other)
	out := make(BitArray, len(b))
	for i := range b {
		out[i] = b[i] | other[i]
	}
	return out
}

// Xor returns the bitwise XOR of b and other.
func (b BitArray) Xor(other BitArray) BitArray {
	mustMatch(b, other)
	out := make(BitArray, len(b))
	for i := range b {
		out[i] = b[i] ^ other[i]
	}
	return out
}

// ShiftLeft returns b shifted left by n bits, propagating carries across
// word boundaries. Bits shifted past the width are discarded.
func (b BitArray) ShiftLeft(n uint) BitArray {
	out := make(BitArray, len(b))
	words := int(n / 64)
	s := n % 64
	for i := len(b) - 1; i >= 0; i-- {
		src := i - words
		if src < 0 {
			break
		}
		w := b[src] << s
		// Shifts >= 64 evaluate to 0 in Go, so s == 0 contributes no carry.
		if src > 0 {
			w |= b[src-1] >> (64 - s)
		}
		out[i] = w
	}
	return out
}

// ShiftRight returns b shifted right by n bits, propagating carries across
// word boundaries.
func (b BitArray) ShiftRight(n uint) BitArray {
	out := make(BitArray, len(b))
	words := int(n / 64)
	s := n % 64
	for i := 0; i < len(b); i++ {
		src := i + words
		if src >= len(b) {
			break
		}
		w := b[src] >> s
		if src+1 < len(b) {
			w |= b[src+1] << (64 - s)
		}
		out[i] = w
	}
	return out
}

// Equal reports whether b and other are bit-identical.
func (b BitArray) Equal(other BitArray) bool {
	mustMatch(b, other)
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// HammingDistance returns the number of differing bits between b and other.
func (b BitArray) HammingDistance(other BitArray) int {
	mustMatch(b, other)
	var d int
	for i := range b {
		d += bits.OnesCount64(b[i] ^ other[i])
	}
	return d
}

// BitLen returns the width of b in bits.
func (b BitArray) BitLen() int { return len(b) * 64 }
