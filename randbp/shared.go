package randbp

import (
	"sync"
)

var (
	sharedOnce sync.Once
	shared     *Locked

	// Overridable in tests.
	newShared = func() Generator {
		return MustNew(WellBalanced)
	}
)

// Shared returns the process-wide generator.
//
// It's created on first use with the WellBalanced profile and seeded from
// crypto/rand.
// Concurrent first calls all get the same instance.
func Shared() *Locked {
	sharedOnce.Do(func() {
		shared = NewLocked(newShared())
	})
	return shared
}

// Int calls Int on the shared generator.
func Int() int {
	sharedDraws.WithLabelValues(opInt).Inc()
	return Shared().Int()
}

// IntN calls IntN on the shared generator.
func IntN(n int) (int, error) {
	sharedDraws.WithLabelValues(opIntN).Inc()
	return Shared().IntN(n)
}

// IntRange calls IntRange on the shared generator.
func IntRange(min, max int) (int, error) {
	sharedDraws.WithLabelValues(opIntRange).Inc()
	return Shared().IntRange(min, max)
}

// Float64 calls Float64 on the shared generator.
func Float64() float64 {
	sharedDraws.WithLabelValues(opFloat64).Inc()
	return Shared().Float64()
}

// Read calls Read on the shared generator.
//
// Regardless performance, it's never suitable for security purpose,
// and you should always use crypto/rand for that instead.
func Read(p []byte) (int, error) {
	sharedDraws.WithLabelValues(opRead).Inc()
	return Shared().Read(p)
}

// sharedFuncs is a Generator backed by the package level functions,
// so its draws are counted the same way.
type sharedFuncs struct{}

var _ Generator = sharedFuncs{}

func (sharedFuncs) Int() int {
	return Int()
}

func (sharedFuncs) IntN(n int) (int, error) {
	return IntN(n)
}

func (sharedFuncs) IntRange(min, max int) (int, error) {
	return IntRange(min, max)
}

func (sharedFuncs) Float64() float64 {
	return Float64()
}

func (sharedFuncs) Read(p []byte) (int, error) {
	return Read(p)
}
