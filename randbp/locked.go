package randbp

import (
	"sync"
)

// Locked makes a Generator safe for concurrent use.
//
// Every method holds the lock for exactly one draw,
// so concurrent callers get mutually exclusive draws in an unspecified order.
// The wrapped Generator is not reachable other than through the lock.
type Locked struct {
	lock sync.Mutex
	g    Generator
}

// NewLocked wraps g.
//
// g must not be used directly afterwards.
func NewLocked(g Generator) *Locked {
	return &Locked{g: g}
}

// Int implements Generator.
func (l *Locked) Int() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.Int()
}

// IntN implements Generator.
func (l *Locked) IntN(n int) (int, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.IntN(n)
}

// IntRange implements Generator.
func (l *Locked) IntRange(min, max int) (int, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.IntRange(min, max)
}

// Float64 implements Generator.
func (l *Locked) Float64() float64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.Float64()
}

// Read implements Generator.
//
// The whole of p is filled under one lock,
// so the bytes of p come from consecutive draws.
func (l *Locked) Read(p []byte) (int, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.Read(p)
}
