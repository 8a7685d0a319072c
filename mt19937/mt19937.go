package mt19937

import (
	"errors"
	"math/rand/v2"
)

// Period parameters.
const (
	N = 624
	M = 397

	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
)

const (
	// DefaultSeed is used when an *MT is drawn from before any Seed call.
	DefaultSeed uint32 = 5489

	arraySeedBase uint32 = 19650218
)

// ErrInvalidLength is returned by SeedArrayN when the requested key length is
// not in the range of [1, len(keys)].
var ErrInvalidLength = errors.New("mt19937: invalid key length")

var _ rand.Source = (*MT)(nil)

// MT is the MT19937 state machine.
//
// The zero value is unseeded,
// and will be seeded with DefaultSeed on the first draw.
type MT struct {
	words  [N]uint32
	index  int
	seeded bool
}

// New creates an unseeded *MT.
//
// It will be seeded with DefaultSeed on the first draw.
func New() *MT {
	return new(MT)
}

// NewSeeded creates an *MT seeded with seed.
func NewSeeded(seed uint32) *MT {
	mt := new(MT)
	mt.Seed(seed)
	return mt
}

// NewSeededArray creates an *MT seeded with all of keys.
//
// keys must not be empty.
func NewSeededArray(keys []uint32) *MT {
	mt := new(MT)
	mt.SeedArray(keys)
	return mt
}

// Seeded returns true if the state vector has been initialized,
// either explicitly or by the implicit default seed on the first draw.
func (mt *MT) Seeded() bool {
	return mt.seeded
}

// Seed initializes the state vector from a 32-bit seed (init_genrand).
//
// Every uint32 is a valid seed, including 0.
func (mt *MT) Seed(seed uint32) {
	w := &mt.words
	w[0] = seed
	for i := 1; i < N; i++ {
		w[i] = 1812433253*(w[i-1]^(w[i-1]>>30)) + uint32(i)
	}
	mt.index = N
	mt.seeded = true
}

// SeedArray initializes the state vector from all of keys (init_by_array).
//
// It panics if keys is empty.
func (mt *MT) SeedArray(keys []uint32) {
	if err := mt.SeedArrayN(keys, len(keys)); err != nil {
		panic(err)
	}
}

// SeedArrayN initializes the state vector from the first length elements of
// keys (init_by_array with an explicit key_length).
func (mt *MT) SeedArrayN(keys []uint32, length int) error {
	if length <= 0 || length > len(keys) {
		return ErrInvalidLength
	}

	mt.Seed(arraySeedBase)
	w := &mt.words

	i, j := 1, 0
	k := N
	if length > k {
		k = length
	}
	for ; k > 0; k-- {
		// non-linear
		w[i] = (w[i] ^ ((w[i-1] ^ (w[i-1] >> 30)) * 1664525)) + keys[j] + uint32(j)
		i++
		j++
		if i >= N {
			w[0] = w[N-1]
			i = 1
		}
		if j >= length {
			j = 0
		}
	}
	for k = N - 1; k > 0; k-- {
		w[i] = (w[i] ^ ((w[i-1] ^ (w[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= N {
			w[0] = w[N-1]
			i = 1
		}
	}

	// MSB is 1, the state can never be all zeros.
	w[0] = 0x80000000
	mt.index = N
	return nil
}

var mag01 = [2]uint32{0, matrixA}

// twist regenerates all N words of the state vector.
func (mt *MT) twist() {
	if !mt.seeded {
		mt.Seed(DefaultSeed)
	}

	w := &mt.words
	var y uint32
	kk := 0
	for ; kk < N-M; kk++ {
		y = (w[kk] & upperMask) | (w[kk+1] & lowerMask)
		w[kk] = w[kk+M] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < N-1; kk++ {
		y = (w[kk] & upperMask) | (w[kk+1] & lowerMask)
		w[kk] = w[kk+(M-N)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (w[N-1] & upperMask) | (w[0] & lowerMask)
	w[N-1] = w[M-1] ^ (y >> 1) ^ mag01[y&1]

	mt.index = 0
}

// Uint32 returns the next value of the sequence, in [0, 0xffffffff].
func (mt *MT) Uint32() uint32 {
	if mt.index >= N || !mt.seeded {
		mt.twist()
	}

	y := mt.words[mt.index]
	mt.index++
	return temper(y)
}

func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}

// Uint64 implements math/rand/v2.Source.
//
// It consumes two draws, the first one becomes the high 32 bits.
func (mt *MT) Uint64() uint64 {
	hi := uint64(mt.Uint32())
	return hi<<32 | uint64(mt.Uint32())
}

// Int31 returns a value in [0, 0x7fffffff].
func (mt *MT) Int31() int32 {
	return int32(mt.Uint32() >> 1)
}

// Float64Closed returns a value in [0, 1].
func (mt *MT) Float64Closed() float64 {
	return Closed(mt.Uint32())
}

// Float64HalfOpen returns a value in [0, 1).
func (mt *MT) Float64HalfOpen() float64 {
	return HalfOpen(mt.Uint32())
}

// Float64Open returns a value in (0, 1).
func (mt *MT) Float64Open() float64 {
	return Open(mt.Uint32())
}

// Float64Res53 returns a value in [0, 1) with 53-bit resolution.
//
// It consumes two draws.
func (mt *MT) Float64Res53() float64 {
	a := mt.Uint32()
	return Res53(a, mt.Uint32())
}

// Float64 is an alias of Float64Res53.
func (mt *MT) Float64() float64 {
	return mt.Float64Res53()
}

// Closed maps a draw to [0, 1] (genrand_real1).
func Closed(u uint32) float64 {
	return float64(u) * (1.0 / 4294967295.0)
}

// HalfOpen maps a draw to [0, 1) (genrand_real2).
func HalfOpen(u uint32) float64 {
	return float64(u) * (1.0 / 4294967296.0)
}

// Open maps a draw to (0, 1) (genrand_real3).
func Open(u uint32) float64 {
	return (float64(u) + 0.5) * (1.0 / 4294967296.0)
}

// Res53 combines the top 27 bits of a and the top 26 bits of b into [0, 1)
// (genrand_res53).
func Res53(a, b uint32) float64 {
	return (float64(a>>5)*67108864.0 + float64(b>>6)) * (1.0 / 9007199254740992.0)
}
