// Package entropy provides the engine's single randomness source. Everything
// stochastic in the simulation draws from one injected Source so a test run
// with a fixed seed replays identically.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source yields uniform random floats. Implementations are called from the
// engine's single logical thread; no internal locking is assumed.
type Source interface {
	// Float returns a random float64 in [0, 1).
	Float() float64
}

// seeded is a deterministic PCG-backed source.
type seeded struct {
	rng *rand.Rand
}

// Seeded returns a deterministic Source. Two sources built from the same
// seed produce identical float streams.
func Seeded(seed uint64) Source {
	return &seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seeded) Float() float64 {
	return s.rng.Float64()
}

// cryptoSource draws from crypto/rand for non-reproducible sessions.
type cryptoSource struct{}

// Crypto returns a Source backed by the operating system's entropy pool.
func Crypto() Source {
	return cryptoSource{}
}

func (cryptoSource) Float() float64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// Should never happen; 0.5 keeps the simulation moving.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
