package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededIsDeterministic(t *testing.T) {
	a := Seeded(42)
	b := Seeded(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float(), b.Float(), "draw %d diverged", i)
	}
}

func TestSeededRange(t *testing.T) {
	s := Seeded(7)
	for i := 0; i < 1000; i++ {
		v := s.Float()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := Seeded(1)
	b := Seeded(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float() != b.Float() {
			same = false
		}
	}
	assert.False(t, same)
}

func TestCryptoRange(t *testing.T) {
	s := Crypto()
	for i := 0; i < 100; i++ {
		v := s.Float()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
