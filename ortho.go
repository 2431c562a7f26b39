package simsig

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
	"gonum.org/v1/gonum/floats"
)

// normFloor guards the Gram–Schmidt normalization against near-zero column
// norms.
const normFloor = 1e-12

// orthonormalBlock builds an r×r row-major matrix whose columns form a
// random orthonormal basis, derived deterministically from seed.
//
// The matrix is first filled with approximately standard-normal values
// produced by a Box–Muller transform over hashed-counter uniform draws, then
// the columns are orthonormalized with classical Gram–Schmidt. The same
// (r, seed) pair always reproduces the same block.
func orthonormalBlock(r int, seed uint64) []float32 {
	// Gaussian fill, in column-major scratch so Gram–Schmidt can work on
	// whole columns. The counter k advances in row-major cell order.
	cols := make([][]float64, r)
	for j := range cols {
		cols[j] = make([]float64, r)
	}

	var k uint64
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			u1 := uniform01(seed, k^(uint64(i)<<16)^uint64(j))
			u2 := uniform01(seed, k*0x9E3779B97F4A7C15^0xBF58476D)
			k++
			mag := math.Sqrt(-2 * math.Log(u1))
			cols[j][i] = mag * math.Cos(2*math.Pi*u2)
		}
	}

	// Classical Gram–Schmidt: subtract each column's projections onto the
	// already-processed columns, then normalize.
	for j := 0; j < r; j++ {
		for p := 0; p < j; p++ {
			d := floats.Dot(cols[j], cols[p])
			floats.AddScaled(cols[j], -d, cols[p])
		}
		n := math.Max(floats.Norm(cols[j], 2), normFloor)
		floats.Scale(1/n, cols[j])
	}

	mat := make([]float32, r*r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			mat[i*r+j] = float32(cols[j][i])
		}
	}
	return mat
}

// uniform01 derives a uniform value in (0, 1) from a seeded hash of x.
func uniform01(seed, x uint64) float64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], x)
	v := xxh3.HashSeed(buf[:], seed)
	// Map the top 53 bits to (0,1); the +0.5 keeps the endpoints open.
	return (float64(v>>11) + 0.5) / (1 << 53)
}

// splitmix64 is one step of the SplitMix64 mixing function. It drives the
// per-(item, block) sign vectors; changing it changes every Super-Bit
// signature produced under a given seed.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
