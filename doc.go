// Package simsig computes compact fixed-width binary signatures from
// streams of (optionally weighted) feature items, such that the Hamming
// distance between two signatures approximates the angular dissimilarity of
// the underlying feature sets. It is a locality-sensitive-hashing primitive
// for near-duplicate detection, deduplication, and approximate similarity
// over large or streaming collections.
//
// # Architecture
//
// Signatures are values of any type implementing the [Bits] capability set:
// bitwise AND/OR/XOR, shifts, equality, and popcount-based Hamming distance.
// [Sig64] and [Sig128] cover the native widths; [BitArray] packs any
// multiple of 64 bits into a word slice with carry-correct shifting, so
// wide signatures (for example 1024 bits) use the same engines unchanged.
//
// Two engines produce signatures:
//
// [SimHash] implements the classic weighted bit-voting scheme: every item's
// hash casts a ±1 (or ±weight) vote per output bit, and each bit is set iff
// its vote total is strictly positive. It also computes strict-majority
// centroids across batches of signatures. [FastSimHash] is a 64-bit
// specialization with plain uint64 loops on the hot path.
//
// [SuperBit] replaces the independent random hyperplanes of SimHash with
// block-orthonormalized random projections: the signature width is split
// into blocks, each backed by a random orthonormal matrix built once at
// construction via Box–Muller Gaussian fill and classical Gram–Schmidt.
// Per item, a seeded SplitMix64 sign vector is projected through each
// block, decorrelating the projections within a block and reducing the
// variance of the Hamming-distance estimator for a fixed angle.
//
// Item hashing is pluggable through the [Hasher] capability. Built-in
// collaborators cover unkeyed xxh3 ([XXH3Hasher64], [XXH3Hasher128]) and
// SipHash-2-4 keyed with two 64-bit keys ([SipHasher64], [SipHasher128]).
//
// # Determinism
//
// All pseudo-randomness is derived from explicit seeds through specified
// mixing functions (seeded xxh3 for the Gaussian fill, SplitMix64 for the
// sign vectors). Rebuilding an engine with the same hasher, width, block
// size and seed reproduces bit-identical orthonormal blocks and signatures.
//
// # Choosing Parameters
//
// The signature width is fixed by the hasher (SimHash) or the zero-valued
// exemplar passed at construction (Super-Bit). The Super-Bit block size r
// must evenly divide the width; larger blocks decorrelate more projections
// per block at O(width·r) cost per item. r between 16 and 32 works well for
// wide signatures:
//
//	// 1024-bit signatures, 32 blocks of 32 decorrelated projections
//	sb, err := simsig.NewSuperBit(simsig.NewXXH3Hasher64(), simsig.NewBitArray(16), 32, seed)
//
// # Thread Safety
//
// Engines are immutable after construction: every signature computation
// uses only call-local accumulators, so a single engine may be shared by
// any number of goroutines without synchronization. Construction itself is
// a one-time, single-threaded cost per engine.
//
// # References
//
//   - SimHash: Charikar, "Similarity Estimation Techniques from Rounding
//     Algorithms", STOC 2002
//   - Super-Bit: Ji et al., "Super-Bit Locality-Sensitive Hashing",
//     NIPS 2012
package simsig
