package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"
)

// CryptoSource draws from crypto/rand. Generated strings are secrets, so a
// predictable generator is never acceptable here.
type CryptoSource struct{}

func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

func (CryptoSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: Intn called with n=%d", n))
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failing means the OS entropy source is broken;
		// there is no safe fallback.
		panic(fmt.Sprintf("random: crypto source unavailable: %v", err))
	}
	return int(v.Int64())
}

// Shuffle applies a Fisher-Yates permutation driven by the secure source.
func (s CryptoSource) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}

// SeededSource is a deterministic source for tests. Never use it to
// generate real secrets.
type SeededSource struct {
	r *mathrand.Rand
}

func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{r: mathrand.New(mathrand.NewSource(seed))}
}

func (s *SeededSource) Intn(n int) int {
	return s.r.Intn(n)
}

func (s *SeededSource) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
