package simsig

import "iter"

// FastSimHash is a 64-bit specialization of [SimHash]. It produces the same
// signatures as a SimHash engine over the same 64-bit hasher but votes and
// thresholds with plain uint64 arithmetic instead of the generic Bits
// operations, keeping the per-item loop branch-light and allocation-free.
//
// A FastSimHash engine is immutable and safe for concurrent use.
type FastSimHash struct {
	hasher Hasher[Sig64]
}

// NewFastSimHash creates a 64-bit SimHash engine.
func NewFastSimHash(hasher Hasher[Sig64]) *FastSimHash {
	return &FastSimHash{hasher: hasher}
}

// BitLen returns 64.
func (f *FastSimHash) BitLen() int { return 64 }

// CreateSignature computes the 64-bit signature of the item stream. An empty
// stream yields the all-zero signature.
func (f *FastSimHash) CreateSignature(items iter.Seq[[]byte]) Sig64 {
	var counts [64]int64
	for item := range items {
		fastVote(&counts, uint64(f.hasher.Sum(item)))
	}
	return fastThreshold(&counts)
}

// CreateSignatureStrings is CreateSignature for string items.
func (f *FastSimHash) CreateSignatureStrings(items iter.Seq[string]) Sig64 {
	var counts [64]int64
	for item := range items {
		fastVote(&counts, uint64(f.hasher.SumString(item)))
	}
	return fastThreshold(&counts)
}

// CreateSignatureWeighted computes the 64-bit signature of a weighted item
// stream. Items with weight 0 contribute nothing.
func (f *FastSimHash) CreateSignatureWeighted(items iter.Seq2[[]byte, float32]) Sig64 {
	var counts [64]float32
	for item, w := range items {
		if w == 0 {
			continue
		}
		h := uint64(f.hasher.Sum(item))
		for i := 0; i < 64; i++ {
			if h&1 == 0 {
				counts[i] += w
			} else {
				counts[i] -= w
			}
			h >>= 1
		}
	}

	var out uint64
	for i, c := range counts {
		if c > 0 {
			out |= 1 << uint(i)
		}
	}
	return Sig64(out)
}

// fastVote adds the ±1 votes of one 64-bit hash to counts.
func fastVote(counts *[64]int64, h uint64) {
	for i := 0; i < 64; i++ {
		if h&1 == 0 {
			counts[i]++
		} else {
			counts[i]--
		}
		h >>= 1
	}
}

// fastThreshold converts accumulated votes into a 64-bit signature.
func fastThreshold(counts *[64]int64) Sig64 {
	var out uint64
	for i, c := range counts {
		if c > 0 {
			out |= 1 << uint(i)
		}
	}
	return Sig64(out)
}
