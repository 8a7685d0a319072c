// Package mt64 implements the 64-bit Mersenne Twister (MT19937-64).
//
// It's the fastest generator of this module when the caller needs integers,
// as every twist yields 312 full 64-bit words.
// Like mt19937, it's not safe for concurrent use and not suitable for
// security purposes.
package mt64

import (
	"math/rand/v2"
)

// Period parameters.
const (
	NN = 312
	MM = 156

	matrixA   = 0xb5026f5aa96619e9
	upperMask = 0xffffffff80000000
	lowerMask = 0x7fffffff
)

const (
	// DefaultSeed is used when an *MT is drawn from before any Seed call.
	DefaultSeed uint64 = 5489

	arraySeedBase uint64 = 19650218
)

var _ rand.Source = (*MT)(nil)

// MT is the MT19937-64 state machine.
//
// The zero value is unseeded, same as New.
type MT struct {
	words  [NN]uint64
	index  int
	seeded bool
}

// New creates an unseeded *MT, it will be seeded with DefaultSeed on the
// first draw.
func New() *MT {
	return new(MT)
}

// NewSeeded creates an *MT seeded with seed.
func NewSeeded(seed uint64) *MT {
	mt := new(MT)
	mt.Seed(seed)
	return mt
}

// Seed initializes the state vector from a 64-bit seed (init_genrand64).
func (mt *MT) Seed(seed uint64) {
	w := &mt.words
	w[0] = seed
	for i := 1; i < NN; i++ {
		w[i] = 6364136223846793005*(w[i-1]^(w[i-1]>>62)) + uint64(i)
	}
	mt.index = NN
	mt.seeded = true
}

// SeedArray initializes the state vector from keys (init_by_array64).
//
// It panics if keys is empty.
func (mt *MT) SeedArray(keys []uint64) {
	if len(keys) == 0 {
		panic("mt64: SeedArray called with empty keys")
	}

	mt.Seed(arraySeedBase)
	w := &mt.words

	i, j := 1, 0
	k := NN
	if len(keys) > k {
		k = len(keys)
	}
	for ; k > 0; k-- {
		w[i] = (w[i] ^ ((w[i-1] ^ (w[i-1] >> 62)) * 3935559000370003845)) + keys[j] + uint64(j)
		i++
		j++
		if i >= NN {
			w[0] = w[NN-1]
			i = 1
		}
		if j >= len(keys) {
			j = 0
		}
	}
	for k = NN - 1; k > 0; k-- {
		w[i] = (w[i] ^ ((w[i-1] ^ (w[i-1] >> 62)) * 2862933555777941757)) - uint64(i)
		i++
		if i >= NN {
			w[0] = w[NN-1]
			i = 1
		}
	}

	w[0] = 1 << 63
	mt.index = NN
}

var mag01 = [2]uint64{0, matrixA}

func (mt *MT) twist() {
	if !mt.seeded {
		mt.Seed(DefaultSeed)
	}

	w := &mt.words
	var x uint64
	i := 0
	for ; i < NN-MM; i++ {
		x = (w[i] & upperMask) | (w[i+1] & lowerMask)
		w[i] = w[i+MM] ^ (x >> 1) ^ mag01[x&1]
	}
	for ; i < NN-1; i++ {
		x = (w[i] & upperMask) | (w[i+1] & lowerMask)
		w[i] = w[i+(MM-NN)] ^ (x >> 1) ^ mag01[x&1]
	}
	x = (w[NN-1] & upperMask) | (w[0] & lowerMask)
	w[NN-1] = w[MM-1] ^ (x >> 1) ^ mag01[x&1]

	mt.index = 0
}

// Uint64 returns the next value of the sequence.
func (mt *MT) Uint64() uint64 {
	if mt.index >= NN || !mt.seeded {
		mt.twist()
	}

	x := mt.words[mt.index]
	mt.index++

	x ^= (x >> 29) & 0x5555555555555555
	x ^= (x << 17) & 0x71d67fffeda60000
	x ^= (x << 37) & 0xfff7eee000000000
	x ^= x >> 43
	return x
}

// Uint32 returns the high 32 bits of one draw.
func (mt *MT) Uint32() uint32 {
	return uint32(mt.Uint64() >> 32)
}

// Int63 returns a value in [0, 2^63-1].
func (mt *MT) Int63() int64 {
	return int64(mt.Uint64() >> 1)
}

// Float64 returns a value in [0, 1) with 53-bit resolution.
func (mt *MT) Float64() float64 {
	return float64(mt.Uint64()>>11) * (1.0 / 9007199254740992.0)
}
