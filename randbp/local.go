package randbp

import (
	"fmt"
	"sync"

	"github.com/reddit/twister.go/internal/prometheusbpint"
)

// Per-profile pools of generators, for callers that want to draw without
// locking.
var (
	WellBalancedLocal  = newRegisteredLocal(WellBalanced)
	FastestInt32Local  = newRegisteredLocal(FastestInt32)
	FastestDoubleLocal = newRegisteredLocal(FastestDouble)
)

// Local is a pool of generators of the same profile.
//
// A generator returned by Get is owned by the calling goroutine until it's
// given back with Put, so no two goroutines ever draw from the same generator
// at the same time and no locking is needed.
// Generators are created lazily, on the first Get that finds the pool empty.
//
// Local must be created with NewLocal.
type Local struct {
	profile Profile
	pool    sync.Pool
	inUse   prometheusbpint.HighWatermark
}

// NewLocal creates a Local of profile p.
//
// factory is called whenever the pool needs a new generator.
// When factory is nil, generators are created by New(p).
// NewLocal panics if p is not a valid profile.
func NewLocal(p Profile, factory func() Generator) *Local {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	if factory == nil {
		factory = func() Generator {
			return MustNew(p)
		}
	}
	l := &Local{profile: p}
	l.pool.New = func() interface{} {
		return factory()
	}
	return l
}

func newRegisteredLocal(p Profile) *Local {
	l := NewLocal(p, nil)
	prometheusbpint.GlobalRegistry.MustRegister(prometheusbpint.HighWatermarkCollector{
		Value:       &l.inUse,
		CurrDesc:    localInUseDesc,
		MaxDesc:     localInUseMaxDesc,
		LabelValues: []string{p.String()},
	})
	return l
}

// Profile returns the profile of the generators in l.
func (l *Local) Profile() Profile {
	return l.profile
}

// Get borrows a generator from l.
//
// It must be given back with Put once the caller is done with it,
// and must not be used after that.
func (l *Local) Get() Generator {
	l.inUse.Inc()
	return l.pool.Get().(Generator)
}

// Put gives g back to l.
//
// g must be a generator previously returned by l.Get.
func (l *Local) Put(g Generator) {
	if g == nil {
		panic(fmt.Sprintf("randbp: Put(nil) to %v Local", l.profile))
	}
	l.inUse.Dec()
	l.pool.Put(g)
}

// Do calls f with a generator borrowed from l,
// and gives it back once f returns.
func (l *Local) Do(f func(Generator)) {
	g := l.Get()
	defer l.Put(g)
	f(g)
}

// InUse returns the number of generators currently borrowed from l,
// and the most that were ever borrowed at the same time.
func (l *Local) InUse() (curr, max int64) {
	return l.inUse.Snapshot()
}
