// Package randbp is the entry point of this module.
//
// It provides:
//
// 1. Profiles, which pick a generator algorithm by what the caller needs
// (WellBalanced, FastestInt32, FastestDouble, and Compatible for output that
// matches the reference MT19937 bit for bit).
//
// 2. A factory (New, NewSeeded, NewFromConfig) returning generators that
// implement the Generator interface.
//
// 3. Per-profile pools of goroutine-owned generators (WellBalancedLocal,
// FastestInt32Local, FastestDoubleLocal), which need no locking.
//
// 4. A process-wide, lazily created, mutex guarded generator (Shared),
// and top level functions (Int, IntN, IntRange, Float64, Read) forwarding to
// it.
//
// 5. Helper functions for common use cases (jitter, sampling, random
// strings).
//
// None of the generators are suitable for security purposes,
// use crypto/rand for that instead.
package randbp
