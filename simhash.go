package simsig

import "iter"

// SimHash computes bit-voting signatures of type S from streams of items.
//
// Each item's hash casts a ±1 (or ±weight) vote on every bit position of the
// signature: a 0 hash bit votes the output bit towards 0, a 1 hash bit votes
// it towards 1. After a single pass over the stream, each output bit is set
// iff its accumulated vote count is strictly positive. The Hamming distance
// between two signatures then approximates the angular dissimilarity of the
// underlying feature sets.
//
// A SimHash engine is immutable and safe for concurrent use.
type SimHash[S Bits[S]] struct {
	hasher Hasher[S]
	zero   S
	one    S
	bits   int
}

// NewSimHash creates a SimHash engine producing signatures of the hasher's
// output width.
func NewSimHash[S Bits[S]](hasher Hasher[S]) *SimHash[S] {
	zero := hasher.Zero()
	return &SimHash[S]{
		hasher: hasher,
		zero:   zero,
		one:    zero.One(),
		bits:   zero.BitLen(),
	}
}

// BitLen returns the signature width in bits.
func (sh *SimHash[S]) BitLen() int { return sh.bits }

// CreateSignature computes the signature of the item stream, with every item
// weighted equally. An empty stream yields the all-zero signature.
func (sh *SimHash[S]) CreateSignature(items iter.Seq[[]byte]) S {
	counts := make([]int64, sh.bits)
	for item := range items {
		sh.vote(counts, sh.hasher.Sum(item))
	}
	return sh.threshold(counts)
}

// CreateSignatureStrings is CreateSignature for string items, avoiding the
// []byte conversion where the hasher supports it.
func (sh *SimHash[S]) CreateSignatureStrings(items iter.Seq[string]) S {
	counts := make([]int64, sh.bits)
	for item := range items {
		sh.vote(counts, sh.hasher.SumString(item))
	}
	return sh.threshold(counts)
}

// vote adds the ±1 votes of one hash value to counts.
func (sh *SimHash[S]) vote(counts []int64, hash S) {
	for i := range counts {
		if hash.And(sh.one).Equal(sh.zero) {
			counts[i]++
		} else {
			counts[i]--
		}
		hash = hash.ShiftRight(1)
	}
}

// CreateSignatureWeighted computes the signature of a weighted item stream.
// Each item votes ±weight per bit instead of ±1. Items with weight 0
// contribute nothing. An empty stream yields the all-zero signature.
func (sh *SimHash[S]) CreateSignatureWeighted(items iter.Seq2[[]byte, float32]) S {
	counts := make([]float32, sh.bits)
	for item, w := range items {
		if w == 0 {
			continue
		}
		sh.voteWeighted(counts, sh.hasher.Sum(item), w)
	}
	return sh.thresholdFloat(counts)
}

// CreateSignatureWeightedStrings is CreateSignatureWeighted for string items.
func (sh *SimHash[S]) CreateSignatureWeightedStrings(items iter.Seq2[string, float32]) S {
	counts := make([]float32, sh.bits)
	for item, w := range items {
		if w == 0 {
			continue
		}
		sh.voteWeighted(counts, sh.hasher.SumString(item), w)
	}
	return sh.thresholdFloat(counts)
}

// voteWeighted adds the ±w votes of one hash value to counts.
func (sh *SimHash[S]) voteWeighted(counts []float32, hash S, w float32) {
	for i := range counts {
		if hash.And(sh.one).Equal(sh.zero) {
			counts[i] += w
		} else {
			counts[i] -= w
		}
		hash = hash.ShiftRight(1)
	}
}

// CreateCentroid computes the bit-wise strict-majority signature of a batch
// of signatures: output bit i is set iff more than half of the inputs have
// bit i set. Ties resolve to 0. The centroid of a single signature is that
// signature; an empty batch yields the all-zero signature.
func (sh *SimHash[S]) CreateCentroid(signatures iter.Seq[S]) S {
	counts := make([]int, sh.bits)
	n := 0
	for sig := range signatures {
		for i := range counts {
			if sig.ShiftRight(uint(i)).And(sh.one).Equal(sh.one) {
				counts[i]++
			}
		}
		n++
	}

	centroid := sh.zero
	for i, c := range counts {
		if c > n/2 {
			centroid = centroid.Or(sh.one.ShiftLeft(uint(i)))
		}
	}
	return centroid
}

// threshold converts accumulated integer votes into a signature.
func (sh *SimHash[S]) threshold(counts []int64) S {
	out := sh.zero
	for i, c := range counts {
		if c > 0 {
			out = out.Or(sh.one.ShiftLeft(uint(i)))
		}
	}
	return out
}

// thresholdFloat converts accumulated float votes into a signature.
func (sh *SimHash[S]) thresholdFloat(counts []float32) S {
	out := sh.zero
	for i, c := range counts {
		if c > 0 {
			out = out.Or(sh.one.ShiftLeft(uint(i)))
		}
	}
	return out
}
