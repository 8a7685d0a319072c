package randbp_test

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"github.com/reddit/twister.go/mt19937"
	"github.com/reddit/twister.go/randbp"
)

// First outputs of MT19937 seeded with 5489.
var referenceOutputs = []uint32{
	3499211612,
	581869302,
	3890346734,
	3586334585,
	545404204,
	4161255391,
	3922919429,
	949333985,
	2715962298,
	1323567403,
}

func mustNewSeeded(tb testing.TB, p randbp.Profile, seed int64) *randbp.Rand {
	tb.Helper()
	r, err := randbp.NewSeeded(p, seed)
	if err != nil {
		tb.Fatalf("NewSeeded(%v, %d) returned error: %v", p, seed, err)
	}
	return r
}

func TestCompatibleReference(t *testing.T) {
	t.Run("Uint32", func(t *testing.T) {
		r := mustNewSeeded(t, randbp.Compatible, int64(mt19937.DefaultSeed))
		got := make([]uint32, len(referenceOutputs))
		for i := range got {
			got[i] = r.Uint32()
		}
		if diff := cmp.Diff(referenceOutputs, got); diff != "" {
			t.Errorf("Sequence mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Int", func(t *testing.T) {
		r := mustNewSeeded(t, randbp.Compatible, int64(mt19937.DefaultSeed))
		for i, u := range referenceOutputs {
			if got, want := r.Int(), int(u>>1); got != want {
				t.Errorf("#%d: Int() got %d, want %d", i, got, want)
			}
		}
	})

	t.Run("Float64", func(t *testing.T) {
		r := mustNewSeeded(t, randbp.Compatible, int64(mt19937.DefaultSeed))
		want := mt19937.Res53(referenceOutputs[0], referenceOutputs[1])
		if got := r.Float64(); got != want {
			t.Errorf("Float64() got %v, want %v", got, want)
		}
	})

	t.Run("wide-seed", func(t *testing.T) {
		const seed = -1
		r := mustNewSeeded(t, randbp.Compatible, seed)
		mt := mt19937.NewSeededArray([]uint32{math.MaxUint32, math.MaxUint32})
		for i := 0; i < 100; i++ {
			if got, want := r.Uint32(), mt.Uint32(); got != want {
				t.Fatalf("#%d: got %d, want %d", i, got, want)
			}
		}
	})
}

func TestNewSeededDeterminism(t *testing.T) {
	for _, p := range randbp.Profiles() {
		t.Run(p.String(), func(t *testing.T) {
			f := func(seed int64) bool {
				a := mustNewSeeded(t, p, seed)
				b := mustNewSeeded(t, p, seed)
				for i := 0; i < 100; i++ {
					if x, y := a.Int(), b.Int(); x != y {
						t.Errorf("Int #%d diverged for seed %d: %d != %d", i, seed, x, y)
						return false
					}
					if x, y := a.Float64(), b.Float64(); x != y {
						t.Errorf("Float64 #%d diverged for seed %d: %v != %v", i, seed, x, y)
						return false
					}
				}
				return true
			}
			if err := quick.Check(f, nil); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestNewInvalidProfile(t *testing.T) {
	for _, p := range []randbp.Profile{-1, 4, 42} {
		t.Run(fmt.Sprintf("%d", int(p)), func(t *testing.T) {
			if _, err := randbp.New(p); !errors.Is(err, randbp.ErrInvalidArgument) {
				t.Errorf("New(%d) got error %v, want %v", int(p), err, randbp.ErrInvalidArgument)
			}
			if _, err := randbp.NewSeeded(p, 1); !errors.Is(err, randbp.ErrInvalidArgument) {
				t.Errorf("NewSeeded(%d) got error %v, want %v", int(p), err, randbp.ErrInvalidArgument)
			}
		})
	}
}

func TestProfileAccessor(t *testing.T) {
	for _, p := range randbp.Profiles() {
		r, err := randbp.New(p)
		if err != nil {
			t.Fatalf("New(%v) returned error: %v", p, err)
		}
		if got := r.Profile(); got != p {
			t.Errorf("Profile() got %v, want %v", got, p)
		}
	}
}

func TestRanges(t *testing.T) {
	for _, p := range randbp.Profiles() {
		t.Run(p.String(), func(t *testing.T) {
			r := mustNewSeeded(t, p, 42)
			for i := 0; i < 10000; i++ {
				if v := r.Int(); v < 0 || v > math.MaxInt32 {
					t.Fatalf("Int() returned %d", v)
				}
				if v := r.Float64(); v < 0 || v >= 1 {
					t.Fatalf("Float64() returned %v", v)
				}
			}
		})
	}
}

func TestIntN(t *testing.T) {
	r := mustNewSeeded(t, randbp.WellBalanced, 1)

	t.Run("invalid", func(t *testing.T) {
		for _, n := range []int{0, -1, math.MinInt} {
			if _, err := r.IntN(n); !errors.Is(err, randbp.ErrInvalidArgument) {
				t.Errorf("IntN(%d) got error %v, want %v", n, err, randbp.ErrInvalidArgument)
			}
		}
	})

	t.Run("one", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			v, err := r.IntN(1)
			if err != nil {
				t.Fatal(err)
			}
			if v != 0 {
				t.Fatalf("IntN(1) returned %d", v)
			}
		}
	})

	t.Run("quick", func(t *testing.T) {
		f := func(u uint32) bool {
			n := int(u) + 1
			v, err := r.IntN(n)
			if err != nil {
				t.Errorf("IntN(%d) returned error: %v", n, err)
				return false
			}
			if v < 0 || v >= n {
				t.Errorf("IntN(%d) returned %d", n, v)
				return false
			}
			return true
		}
		if err := quick.Check(f, nil); err != nil {
			t.Error(err)
		}
	})
}

func TestIntRange(t *testing.T) {
	r := mustNewSeeded(t, randbp.FastestInt32, 1)

	for _, c := range []struct {
		label    string
		min, max int
	}{
		{label: "small", min: -3, max: 3},
		{label: "single", min: 7, max: 8},
		{label: "negative", min: -100, max: -10},
		{label: "full", min: math.MinInt, max: math.MaxInt},
		{label: "high", min: math.MaxInt - 1, max: math.MaxInt},
		{label: "low", min: math.MinInt, max: math.MinInt + 1},
	} {
		t.Run(c.label, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				v, err := r.IntRange(c.min, c.max)
				if err != nil {
					t.Fatalf("IntRange(%d, %d) returned error: %v", c.min, c.max, err)
				}
				if v < c.min || v >= c.max {
					t.Fatalf("IntRange(%d, %d) returned %d", c.min, c.max, v)
				}
			}
		})
	}

	t.Run("invalid", func(t *testing.T) {
		for _, c := range [][2]int{
			{0, 0},
			{5, 5},
			{5, 4},
			{math.MaxInt, math.MinInt},
		} {
			if _, err := r.IntRange(c[0], c[1]); !errors.Is(err, randbp.ErrInvalidArgument) {
				t.Errorf("IntRange(%d, %d) got error %v, want %v", c[0], c[1], err, randbp.ErrInvalidArgument)
			}
		}
	})
}

func TestRead(t *testing.T) {
	for _, size := range []int{0, 1, 7, 8, 9, 16, 1000} {
		t.Run(fmt.Sprintf("size-%d", size), func(t *testing.T) {
			r := mustNewSeeded(t, randbp.Compatible, 5489)
			ref := mustNewSeeded(t, randbp.Compatible, 5489)

			buf := make([]byte, size)
			n, err := r.Read(buf)
			if err != nil {
				t.Fatal(err)
			}
			if n != size {
				t.Errorf("Read returned %d, want %d", n, size)
			}

			want := make([]byte, 0, size+8)
			for len(want) < size {
				want = binary.LittleEndian.AppendUint64(want, ref.Uint64())
			}
			if diff := cmp.Diff(want[:size], buf); diff != "" {
				t.Errorf("Read bytes mismatch (-want +got):\n%s", diff)
			}

			// Both consumed the same number of draws.
			if got, want := r.Uint32(), ref.Uint32(); got != want {
				t.Errorf("Next draw after Read got %d, want %d", got, want)
			}
		})
	}
}

func BenchmarkProfiles(b *testing.B) {
	for _, p := range randbp.Profiles() {
		r := mustNewSeeded(b, p, 1)
		b.Run(p.String()+"/Int", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r.Int()
			}
		})
		b.Run(p.String()+"/Float64", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r.Float64()
			}
		})
	}
}
