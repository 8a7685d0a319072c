package randbp

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/reddit/twister.go/log"
)

// Overridable in tests.
var (
	cryptoReader = rand.Read

	seedFallbackLog = log.ZapWrapper(log.WarnLevel.ToZapLevel())
)

// Distinguishes fallback seeds taken within the same clock tick.
var fallbackSequence atomic.Uint64

// GetSeed returns a seed for pseudo-random generators.
//
// It reads 8 bytes from crypto/rand,
// and mixes in the current time if that fails for whatever reason.
func GetSeed() int64 {
	var buf [8]byte
	readEntropy(buf[:])
	return int64(binary.BigEndian.Uint64(buf[:]))
}

// GetSeedWords returns n 32-bit seed words, read the same way as GetSeed.
//
// It returns nil when n <= 0.
func GetSeedWords(n int) []uint32 {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, 4*n)
	readEntropy(buf)
	words := make([]uint32, n)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(buf[4*i:])
	}
	return words
}

func readEntropy(buf []byte) {
	n, err := cryptoReader(buf)
	if err == nil && n >= len(buf) {
		return
	}

	seedFallbacks.Inc()
	seedFallbackLog(fmt.Sprintf(
		"randbp: only read %d of %d bytes of seed entropy from crypto/rand, mixing in current time: %v",
		n,
		len(buf),
		err,
	))

	var mix [8]byte
	for i := 0; i < len(buf); i += len(mix) {
		v := uint64(time.Now().UnixNano()) ^ (fallbackSequence.Add(1) * 0x9e3779b97f4a7c15)
		binary.BigEndian.PutUint64(mix[:], v)
		for j := 0; j < len(mix) && i+j < len(buf); j++ {
			buf[i+j] ^= mix[j]
		}
	}
}
