package randbp

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Generator is the set of draws every profile supports.
//
// All methods advance the state of the underlying generator.
// Implementations returned by New and NewSeeded are not safe for concurrent
// use, wrap them with NewLocked or borrow them from a Local instead.
type Generator interface {
	// Int returns a non-negative 31-bit integer.
	Int() int

	// IntN returns an integer in [0, n).
	//
	// It returns an error wrapping ErrInvalidArgument when n <= 0.
	IntN(n int) (int, error)

	// IntRange returns an integer in [min, max).
	//
	// It returns an error wrapping ErrInvalidArgument when min >= max.
	IntRange(min, max int) (int, error)

	// Float64 returns a float64 in [0, 1).
	Float64() float64

	// Read fills p with random bytes.
	//
	// It always returns len(p) and nil error.
	Read(p []byte) (int, error)
}

type float64Source interface {
	Float64() float64
}

type int31Source interface {
	Int31() int32
}

type uint32Source interface {
	Uint32() uint32
}

var (
	_ Generator = (*Rand)(nil)
	_ Generator = (*Locked)(nil)
)

// Rand embeds *math/rand/v2.Rand over the source of its profile.
//
// Besides the Generator methods, all the methods of the embedded rand.Rand
// (Uint64, Int64N, Perm, Shuffle, NormFloat64, etc.) are available.
// Int, Uint32 and Float64 use the native draws of the source when it has
// them, so the Compatible profile yields the reference MT19937 values.
//
// A *Rand is not safe for concurrent use.
type Rand struct {
	*rand.Rand

	src     rand.Source
	profile Profile

	f64 float64Source
	i31 int31Source
	u32 uint32Source
}

func newRand(p Profile, src rand.Source) *Rand {
	r := &Rand{
		Rand:    rand.New(src),
		src:     src,
		profile: p,
	}
	r.f64, _ = src.(float64Source)
	r.i31, _ = src.(int31Source)
	r.u32, _ = src.(uint32Source)
	return r
}

// Profile returns the profile r was created with.
func (r *Rand) Profile() Profile {
	return r.profile
}

// Int implements Generator.
func (r *Rand) Int() int {
	if r.i31 != nil {
		return int(r.i31.Int31())
	}
	return int(r.Rand.Int32())
}

// Uint32 returns a uint32.
func (r *Rand) Uint32() uint32 {
	if r.u32 != nil {
		return r.u32.Uint32()
	}
	return r.Rand.Uint32()
}

// IntN implements Generator.
func (r *Rand) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("randbp: IntN(%d): %w", n, ErrInvalidArgument)
	}
	return r.Rand.IntN(n), nil
}

// IntRange implements Generator.
//
// The whole int range is supported,
// e.g. IntRange(math.MinInt, math.MaxInt) never overflows.
func (r *Rand) IntRange(min, max int) (int, error) {
	if min >= max {
		return 0, fmt.Errorf("randbp: IntRange(%d, %d): %w", min, max, ErrInvalidArgument)
	}
	span := uint64(max) - uint64(min)
	return min + int(r.Rand.Uint64N(span)), nil
}

// Float64 implements Generator.
func (r *Rand) Float64() float64 {
	if r.f64 != nil {
		return r.f64.Float64()
	}
	return r.Rand.Float64()
}

// Read implements Generator and io.Reader.
//
// Every 8 bytes of p consume one Uint64 draw, little endian.
// A trailing partial chunk consumes a whole draw.
func (r *Rand) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.src.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		v := r.src.Uint64()
		for i := range p {
			p[i] = byte(v)
			v >>= 8
		}
	}
	return n, nil
}
