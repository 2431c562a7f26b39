package simsig

import (
	"math/rand/v2"
	"testing"
)

func TestSig64Ops(t *testing.T) {
	a := Sig64(0b1100)
	b := Sig64(0b1010)

	if got := a.And(b); got != 0b1000 {
		t.Errorf("And: got %b, want 1000", got)
	}
	if got := a.Or(b); got != 0b1110 {
		t.Errorf("Or: got %b, want 1110", got)
	}
	if got := a.Xor(b); got != 0b0110 {
		t.Errorf("Xor: got %b, want 0110", got)
	}
	if got := a.ShiftLeft(2); got != 0b110000 {
		t.Errorf("ShiftLeft: got %b, want 110000", got)
	}
	if got := a.ShiftRight(2); got != 0b11 {
		t.Errorf("ShiftRight: got %b, want 11", got)
	}
	if a.Zero() != 0 || a.One() != 1 {
		t.Error("Zero/One mismatch")
	}
	if a.BitLen() != 64 {
		t.Errorf("BitLen: got %d, want 64", a.BitLen())
	}
}

func TestSig128Shift(t *testing.T) {
	one := Sig128{}.One()

	// Crossing the 64-bit boundary.
	if got := one.ShiftLeft(64); got != (Sig128{Hi: 1}) {
		t.Errorf("1 << 64: got %+v", got)
	}
	if got := one.ShiftLeft(127); got != (Sig128{Hi: 1 << 63}) {
		t.Errorf("1 << 127: got %+v", got)
	}
	if got := one.ShiftLeft(128); got != (Sig128{}) {
		t.Errorf("1 << 128: got %+v, want zero", got)
	}

	v := Sig128{Lo: 1 << 63}
	if got := v.ShiftLeft(1); got != (Sig128{Hi: 1}) {
		t.Errorf("carry into Hi: got %+v", got)
	}
	if got := (Sig128{Hi: 1}).ShiftRight(1); got != (Sig128{Lo: 1 << 63}) {
		t.Errorf("carry into Lo: got %+v", got)
	}

	// Shift by zero is the identity.
	w := Sig128{Hi: 0xDEADBEEF, Lo: 0xCAFEBABE}
	if w.ShiftLeft(0) != w || w.ShiftRight(0) != w {
		t.Error("shift by 0 is not the identity")
	}
}

// TestBitArrayMatchesSig128 cross-checks BitArray's word-boundary carry
// logic against the hand-written 128-bit implementation.
func TestBitArrayMatchesSig128(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		lo, hi := rng.Uint64(), rng.Uint64()
		s := Sig128{Hi: hi, Lo: lo}
		ba := BitArray{lo, hi}
		n := uint(rng.UintN(140))

		sl := s.ShiftLeft(n)
		bl := ba.ShiftLeft(n)
		if bl[0] != sl.Lo || bl[1] != sl.Hi {
			t.Fatalf("ShiftLeft(%d): BitArray %x|%x, Sig128 %x|%x", n, bl[1], bl[0], sl.Hi, sl.Lo)
		}

		sr := s.ShiftRight(n)
		br := ba.ShiftRight(n)
		if br[0] != sr.Lo || br[1] != sr.Hi {
			t.Fatalf("ShiftRight(%d): BitArray %x|%x, Sig128 %x|%x", n, br[1], br[0], sr.Hi, sr.Lo)
		}

		if got, want := ba.HammingDistance(BitArray{hi, lo}), s.HammingDistance(Sig128{Hi: lo, Lo: hi}); got != want {
			t.Fatalf("HammingDistance: BitArray %d, Sig128 %d", got, want)
		}
	}
}

func TestBitArrayShiftCarry(t *testing.T) {
	ba := NewBitArray(3)
	ba[0] = 1 << 63

	shifted := ba.ShiftLeft(1)
	if shifted[0] != 0 || shifted[1] != 1 || shifted[2] != 0 {
		t.Errorf("carry across word boundary failed: %x", shifted)
	}

	shifted = ba.ShiftLeft(65)
	if shifted[0] != 0 || shifted[1] != 0 || shifted[2] != 1 {
		t.Errorf("shift by 65 failed: %x", shifted)
	}

	back := shifted.ShiftRight(65)
	if !back.Equal(ba) {
		t.Errorf("round trip failed: %x", back)
	}

	// Bits shifted past the width are discarded.
	if got := ba.ShiftLeft(129); !got.Equal(ba.Zero()) {
		t.Errorf("overflow shift: got %x, want zero", got)
	}
}

func TestHammingDistanceProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for range 100 {
		a := Sig64(rng.Uint64())
		b := Sig64(rng.Uint64())

		if a.HammingDistance(b) != b.HammingDistance(a) {
			t.Fatal("Hamming distance is not symmetric")
		}
		if a.HammingDistance(a) != 0 {
			t.Fatal("Hamming distance to self is not zero")
		}
		if !a.Equal(b) && a.HammingDistance(b) == 0 {
			t.Fatal("zero distance between distinct values")
		}
	}

	a := BitArray{0xFF, 0, 0xF0F0}
	b := BitArray{0x0F, 0, 0xF0F0}
	if got := a.HammingDistance(b); got != 8 {
		t.Errorf("BitArray Hamming distance: got %d, want 8", got)
	}
	if a.HammingDistance(b) != b.HammingDistance(a) {
		t.Error("BitArray Hamming distance is not symmetric")
	}
}

func TestBitArrayWidthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on word count mismatch")
		}
	}()
	NewBitArray(2).HammingDistance(NewBitArray(3))
}

func TestBitArrayZeroOne(t *testing.T) {
	ba := NewBitArray(4)
	if ba.BitLen() != 256 {
		t.Errorf("BitLen: got %d, want 256", ba.BitLen())
	}

	one := ba.One()
	if one[0] != 1 || one[1] != 0 || one[2] != 0 || one[3] != 0 {
		t.Errorf("One: got %x", one)
	}
	if !ba.Zero().Equal(NewBitArray(4)) {
		t.Error("Zero is not all-zero")
	}
}
