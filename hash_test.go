package simsig

import "testing"

func TestHashersDeterministic(t *testing.T) {
	data := []byte("determinism is required, not optional")

	x64 := NewXXH3Hasher64()
	if x64.Sum(data) != x64.Sum(data) {
		t.Error("xxh3-64 is not deterministic")
	}
	if x64.Sum(data) != x64.SumString(string(data)) {
		t.Error("xxh3-64 Sum and SumString disagree")
	}

	x128 := NewXXH3Hasher128()
	if x128.Sum(data) != x128.Sum(data) {
		t.Error("xxh3-128 is not deterministic")
	}
	if x128.Sum(data) != x128.SumString(string(data)) {
		t.Error("xxh3-128 Sum and SumString disagree")
	}

	s64 := NewSipHasher64(1, 2)
	if s64.Sum(data) != s64.Sum(data) {
		t.Error("siphash-64 is not deterministic")
	}
	if s64.Sum(data) != s64.SumString(string(data)) {
		t.Error("siphash-64 Sum and SumString disagree")
	}

	s128 := NewSipHasher128(1, 2)
	if s128.Sum(data) != s128.Sum(data) {
		t.Error("siphash-128 is not deterministic")
	}
	if s128.Sum(data) != s128.SumString(string(data)) {
		t.Error("siphash-128 Sum and SumString disagree")
	}
}

func TestSipHasherKeys(t *testing.T) {
	data := []byte("keyed hashing")

	a := NewSipHasher64(1, 2)
	b := NewSipHasher64(3, 4)
	if a.Sum(data) == b.Sum(data) {
		t.Error("different keys produced the same 64-bit hash")
	}

	c := NewSipHasher128(1, 2)
	d := NewSipHasher128(3, 4)
	if c.Sum(data) == d.Sum(data) {
		t.Error("different keys produced the same 128-bit hash")
	}
}

func TestHasherZero(t *testing.T) {
	if z := NewXXH3Hasher64().Zero(); z != 0 || z.BitLen() != 64 {
		t.Errorf("xxh3-64 Zero: %v", z)
	}
	if z := NewXXH3Hasher128().Zero(); z != (Sig128{}) || z.BitLen() != 128 {
		t.Errorf("xxh3-128 Zero: %+v", z)
	}
	if z := NewSipHasher64(7, 8).Zero(); z != 0 {
		t.Errorf("siphash-64 Zero: %v", z)
	}
	if z := NewSipHasher128(7, 8).Zero(); z != (Sig128{}) {
		t.Errorf("siphash-128 Zero: %+v", z)
	}
}
