// Package mt19937 implements the 32-bit Mersenne Twister (MT19937) with the
// 2002 initialization procedures.
//
// The output sequence matches the reference implementation by Matsumoto and
// Nishimura bit for bit, for both scalar seeds (init_genrand) and array seeds
// (init_by_array).
// An *MT that was never seeded behaves as if it was seeded with DefaultSeed.
//
// MT is not safe for concurrent use,
// and it's never suitable for security purposes.
//
// *MT implements math/rand/v2.Source, so it can back a *rand.Rand:
//
//	r := rand.New(mt19937.NewSeeded(42))
//	i := r.IntN(10)
package mt19937
