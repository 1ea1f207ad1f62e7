package random

import (
	crypto_rand "crypto/rand"
	"math/big"
	"math/rand"

	"github.com/db47h/rand64/v3/xoshiro"
)

func NewSeed() int64 {
	const MaxUint = ^uint(0)
	const MaxInt = int(MaxUint >> 1)
	nBig, err := crypto_rand.Int(crypto_rand.Reader, big.NewInt(int64(MaxInt)))
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}

	return nBig.Int64()
}

// NewShuffleRNG returns the generator injected into deck shuffles:
// xoshiro256** seeded from the crypto source.
func NewShuffleRNG() *rand.Rand {
	src := &xoshiro.Rng256SS{}
	src.Seed(NewSeed())
	return rand.New(src)
}

// NewSeededShuffleRNG is NewShuffleRNG with a fixed seed, for reproducing
// a deck order in tests.
func NewSeededShuffleRNG(seed int64) *rand.Rand {
	src := &xoshiro.Rng256SS{}
	src.Seed(seed)
	return rand.New(src)
}
