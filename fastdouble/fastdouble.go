// Package fastdouble provides a generator tuned for producing float64 values.
//
// It's backed by xorshift64* (github.com/lazybeaver/xorshift).
// Doubles are built the way the double precision SFMT family builds them:
// random bits fill the mantissa of a number in [1, 2), and 1 is subtracted.
// That skips the integer to float conversion entirely.
//
// A Source is not safe for concurrent use and not suitable for security
// purposes.
package fastdouble

import (
	"math"
	"math/rand/v2"

	"github.com/lazybeaver/xorshift"
)

const (
	mantissaBits = 52
	// exponent bits of 1.0
	one = 0x3ff0000000000000

	// splitmix64 increment, used to scramble seeds.
	golden = 0x9e3779b97f4a7c15

	// substitute for the one seed that scrambles to 0
	fallbackState = golden
)

type nexter interface {
	Next() uint64
}

var _ rand.Source = (*Source)(nil)

// Source is the double precision generator.
//
// The zero value behaves as if it was seeded with 0.
type Source struct {
	x nexter
}

// New creates a *Source seeded with seed.
func New(seed uint64) *Source {
	s := new(Source)
	s.Seed(seed)
	return s
}

// Seed resets the generator.
//
// Seeds go through one splitmix64 round first, so nearby seeds (0, 1, 2...)
// start from unrelated states and the xorshift state is never zero.
func (s *Source) Seed(seed uint64) {
	s.x = xorshift.NewXorShift64Star(scramble(seed))
}

func scramble(seed uint64) uint64 {
	z := seed + golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	if z == 0 {
		return fallbackState
	}
	return z
}

// Uint64 implements math/rand/v2.Source.
func (s *Source) Uint64() uint64 {
	if s.x == nil {
		s.Seed(0)
	}
	return s.x.Next()
}

// Float64 returns a value in [0, 1) with 52-bit resolution.
func (s *Source) Float64() float64 {
	return Float64(s.Uint64())
}

// Float64 maps the top 52 bits of u to [0, 1).
func Float64(u uint64) float64 {
	return math.Float64frombits(one|(u>>(64-mantissaBits))) - 1
}
