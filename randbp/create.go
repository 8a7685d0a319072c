package randbp

import (
	"math"
	"math/rand/v2"

	"github.com/reddit/twister.go/fastdouble"
	"github.com/reddit/twister.go/log"
	"github.com/reddit/twister.go/mt19937"
	"github.com/reddit/twister.go/mt64"
)

// Number of seed words Compatible generators are seeded with when no seed is
// given.
const compatibleSeedWords = 4

// New creates a Rand of profile p, seeded from crypto/rand.
func New(p Profile) (*Rand, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var src rand.Source
	switch p {
	case Compatible:
		src = mt19937.NewSeededArray(GetSeedWords(compatibleSeedWords))
	default:
		src = newSource(p, GetSeed())
	}
	recordCreated(p, false)
	log.Debugw("randbp: generator created", "profile", p)
	return newRand(p, src), nil
}

// NewSeeded creates a Rand of profile p with a deterministic seed.
//
// Two Rands created with the same profile and seed produce the same sequence.
//
// For Compatible, a seed in [0, math.MaxUint32] seeds MT19937 directly,
// so NewSeeded(Compatible, 5489) reproduces the reference MT19937 output.
// Other seeds are split into their low and high 32-bit words and go through
// array seeding.
func NewSeeded(p Profile, seed int64) (*Rand, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	recordCreated(p, true)
	log.Debugw("randbp: generator created", "profile", p, "seed", seed)
	return newRand(p, newSource(p, seed)), nil
}

// MustNew is New but panics on error.
//
// It's meant for package level vars and tests with constant profiles.
func MustNew(p Profile) *Rand {
	r, err := New(p)
	if err != nil {
		panic(err)
	}
	return r
}

// NewFromConfig creates a Rand from cfg.
//
// It uses NewSeeded when cfg.Seed is set and New otherwise.
func NewFromConfig(cfg Config) (*Rand, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed != nil {
		return NewSeeded(cfg.Profile, int64(*cfg.Seed))
	}
	return New(cfg.Profile)
}

func newSource(p Profile, seed int64) rand.Source {
	switch p {
	case FastestInt32:
		return mt64.NewSeeded(uint64(seed))
	case Compatible:
		if seed >= 0 && seed <= math.MaxUint32 {
			return mt19937.NewSeeded(uint32(seed))
		}
		u := uint64(seed)
		return mt19937.NewSeededArray([]uint32{uint32(u), uint32(u >> 32)})
	default:
		return fastdouble.New(uint64(seed))
	}
}
