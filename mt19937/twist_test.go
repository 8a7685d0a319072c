package mt19937

import (
	"testing"
)

func allZero(w *[N]uint32) bool {
	for _, v := range w {
		if v != 0 {
			return false
		}
	}
	return true
}

func TestTwistNeverZero(t *testing.T) {
	for _, c := range []struct {
		label string
		setup func(mt *MT)
	}{
		{
			label: "scalar-seed-0",
			setup: func(mt *MT) {
				mt.Seed(0)
			},
		},
		{
			label: "array-seed",
			setup: func(mt *MT) {
				mt.SeedArray([]uint32{0})
			},
		},
		{
			label: "msb-only",
			setup: func(mt *MT) {
				// The weakest state array seeding can leave behind.
				mt.words = [N]uint32{0: 0x80000000}
				mt.index = N
				mt.seeded = true
			},
		},
		{
			label: "lsb-last",
			setup: func(mt *MT) {
				mt.words = [N]uint32{N - 1: 1}
				mt.index = N
				mt.seeded = true
			},
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			mt := New()
			c.setup(mt)
			for i := 0; i < 50; i++ {
				mt.twist()
				if mt.index != 0 {
					t.Fatalf("index after twist got %d, want 0", mt.index)
				}
				if allZero(&mt.words) {
					t.Fatalf("State vector became all zeros after %d twists", i+1)
				}
			}
		})
	}
}

func TestTwistIsPure(t *testing.T) {
	a := NewSeeded(12345)
	b := NewSeeded(12345)
	// Different positions inside the current block must not matter.
	b.index = 17

	a.twist()
	b.twist()
	if a.words != b.words {
		t.Error("twist depends on something other than the state vector")
	}
}

func TestSentinel(t *testing.T) {
	for _, c := range []struct {
		label string
		mt    *MT
	}{
		{label: "new", mt: New()},
		{label: "zero-value", mt: &MT{}},
	} {
		t.Run(c.label, func(t *testing.T) {
			mt := c.mt
			if mt.seeded {
				t.Fatal("Generator seeded before the first draw")
			}

			mt.twist()
			ref := NewSeeded(DefaultSeed)
			ref.twist()
			if mt.words != ref.words {
				t.Error("Unseeded twist did not fall back to the default seed")
			}
			if !mt.seeded {
				t.Error("Generator still unseeded after twist")
			}
		})
	}
}

func TestSeedArrayMSB(t *testing.T) {
	for _, keys := range [][]uint32{
		{0},
		{0, 0, 0, 0},
		{0xffffffff},
		{1, 2, 3},
	} {
		mt := NewSeededArray(keys)
		if mt.words[0] != 0x80000000 {
			t.Errorf("SeedArray(%v) words[0] got %#x, want 0x80000000", keys, mt.words[0])
		}
		if mt.index != N {
			t.Errorf("SeedArray(%v) index got %d, want %d", keys, mt.index, N)
		}
	}
}

func TestScalarSeedFormula(t *testing.T) {
	mt := NewSeeded(0)
	if mt.words[0] != 0 {
		t.Errorf("words[0] got %d, want 0", mt.words[0])
	}
	// 1812433253 * (0 ^ 0) + 1
	if mt.words[1] != 1 {
		t.Errorf("words[1] got %d, want 1", mt.words[1])
	}
	// 1812433253 * (1 ^ 0) + 2
	if want := uint32(1812433255); mt.words[2] != want {
		t.Errorf("words[2] got %d, want %d", mt.words[2], want)
	}
}

func TestTemper(t *testing.T) {
	if got := temper(0); got != 0 {
		t.Errorf("temper(0) got %#x, want 0", got)
	}
	// Tempering is a bijection, distinct inputs stay distinct.
	seen := make(map[uint32]uint32)
	for i := uint32(0); i < 1<<16; i++ {
		in := i * 65537
		out := temper(in)
		if prev, ok := seen[out]; ok {
			t.Fatalf("temper(%#x) == temper(%#x) == %#x", prev, in, out)
		}
		seen[out] = in
	}
}
