package simsig

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidBlockSize is returned when a Super-Bit engine is constructed
// with a block size that is zero, negative, or does not evenly divide the
// signature width.
var ErrInvalidBlockSize = errors.New("simsig: block size must be positive and divide the signature width")

// SuperBit computes signatures of type S using block-orthonormalized random
// projections instead of the independent random hyperplanes of classic
// SimHash. Projections within a block are decorrelated by construction,
// which reduces the variance of the Hamming-distance estimator for a fixed
// angle between two weighted feature vectors.
//
// The signature width L is split into m = L/r blocks of r bits. At
// construction the engine derives one r×r orthonormal matrix per block from
// the seed; the same (r, seed, width) always reproduces the same blocks.
// Per item, a SplitMix64-driven ±1 sign vector is projected through each
// block's matrix and the weighted projections accumulate into L per-bit
// counters; bits are set where the final counter is strictly positive.
//
// A SuperBit engine is immutable after construction and safe for concurrent
// use.
type SuperBit[S Bits[S]] struct {
	hasher  Hasher[Sig64]
	zero    S
	one     S
	bits    int
	r       int         // block size
	m       int         // number of blocks = bits / r
	qBlocks [][]float32 // m blocks, each r×r row-major orthonormal
	seed    uint64
}

// NewSuperBit creates a Super-Bit engine. hasher supplies the stable 64-bit
// base hash per item, sig is a zero-valued exemplar fixing the signature
// type and width (for example NewBitArray(16) for 1024 bits), r is the
// block size and must evenly divide the width, and seed makes block
// construction and sign vectors reproducible.
//
// Returns [ErrInvalidBlockSize] if r <= 0 or the width is not a multiple
// of r.
func NewSuperBit[S Bits[S]](hasher Hasher[Sig64], sig S, r int, seed uint64) (*SuperBit[S], error) {
	zero := sig.Zero()
	bits := zero.BitLen()
	if r <= 0 || bits%r != 0 {
		return nil, fmt.Errorf("%w: block size %d, width %d", ErrInvalidBlockSize, r, bits)
	}

	m := bits / r
	qBlocks := make([][]float32, m)
	for b := range qBlocks {
		qBlocks[b] = orthonormalBlock(r, seed^(uint64(b)*0x9E3779B9))
	}

	return &SuperBit[S]{
		hasher:  hasher,
		zero:    zero,
		one:     zero.One(),
		bits:    bits,
		r:       r,
		m:       m,
		qBlocks: qBlocks,
		seed:    seed,
	}, nil
}

// BitLen returns the signature width in bits.
func (sb *SuperBit[S]) BitLen() int { return sb.bits }

// BlockSize returns the block size r.
func (sb *SuperBit[S]) BlockSize() int { return sb.r }

// NumBlocks returns the number of orthonormal blocks m = BitLen() / BlockSize().
func (sb *SuperBit[S]) NumBlocks() int { return sb.m }

// CreateSignature computes the signature of the item stream with every item
// weighted 1.0. An empty stream yields the all-zero signature.
func (sb *SuperBit[S]) CreateSignature(items iter.Seq[[]byte]) S {
	return sb.CreateSignatureWeighted(func(yield func([]byte, float32) bool) {
		for item := range items {
			if !yield(item, 1.0) {
				return
			}
		}
	})
}

// CreateSignatureStrings is CreateSignature for string items.
func (sb *SuperBit[S]) CreateSignatureStrings(items iter.Seq[string]) S {
	return sb.CreateSignatureWeightedStrings(func(yield func(string, float32) bool) {
		for item := range items {
			if !yield(item, 1.0) {
				return
			}
		}
	})
}

// CreateSignatureWeighted computes the signature of a weighted item stream
// in a single pass. Items with weight 0 contribute nothing. Weights must be
// finite. An empty stream yields the all-zero signature.
func (sb *SuperBit[S]) CreateSignatureWeighted(items iter.Seq2[[]byte, float32]) S {
	counts := make([]float32, sb.bits)
	g := make([]float32, sb.r)
	for item, w := range items {
		if w == 0 {
			continue
		}
		sb.accumulate(counts, g, uint64(sb.hasher.Sum(item)), w)
	}
	return sb.threshold(counts)
}

// CreateSignatureWeightedStrings is CreateSignatureWeighted for string items.
func (sb *SuperBit[S]) CreateSignatureWeightedStrings(items iter.Seq2[string, float32]) S {
	counts := make([]float32, sb.bits)
	g := make([]float32, sb.r)
	for item, w := range items {
		if w == 0 {
			continue
		}
		sb.accumulate(counts, g, uint64(sb.hasher.SumString(item)), w)
	}
	return sb.threshold(counts)
}

// accumulate adds one item's weighted block projections to counts. base is
// the item's 64-bit hash, stable across blocks; g is a reusable scratch
// buffer of length r.
func (sb *SuperBit[S]) accumulate(counts, g []float32, base uint64, w float32) {
	for b := 0; b < sb.m; b++ {
		qb := sb.qBlocks[b]

		// One SplitMix64 stream per (item, block) pair.
		s := sb.seed ^ base ^ (uint64(b) << 32) ^ 0x9E3779B97F4A7C15
		for j := range g {
			s = splitmix64(s)
			if s>>63 == 0 {
				g[j] = 1
			} else {
				g[j] = -1
			}
		}

		// u = Q_b · g, accumulated as w·u into this block's counters.
		off := b * sb.r
		for row := 0; row < sb.r; row++ {
			var acc float32
			rowOff := row * sb.r
			for col := 0; col < sb.r; col++ {
				acc += qb[rowOff+col] * g[col]
			}
			counts[off+row] += w * acc
		}
	}
}

// threshold converts accumulated projections into a signature: bit i is set
// iff counts[i] is strictly positive.
func (sb *SuperBit[S]) threshold(counts []float32) S {
	out := sb.zero
	for i, c := range counts {
		if c > 0 {
			out = out.Or(sb.one.ShiftLeft(uint(i)))
		}
	}
	return out
}
