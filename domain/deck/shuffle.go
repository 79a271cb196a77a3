package deck

import (
	"crypto/cipher"
	"math/big"
	"math/rand"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffler permutes a slice of card numbers in place.
type Shuffler interface {
	Shuffle(cards []int) error
}

var suite suites.Suite = suites.MustFind("Ed25519")

type cryptoShuffler struct {
	stream func() cipher.Stream
}

// NewCryptoShuffler returns a Fisher-Yates shuffler drawing its indices from
// the Ed25519 suite's cryptographic random stream. It is safe for concurrent
// use.
func NewCryptoShuffler() Shuffler {
	return cryptoShuffler{stream: suite.RandomStream}
}

func (s cryptoShuffler) Shuffle(cards []int) error {
	stream := s.stream()
	for i := len(cards) - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		cards[i], cards[j] = cards[j], cards[i]
	}
	return nil
}

type seededShuffler struct {
	rng *rand.Rand
}

// NewSeededShuffler returns a reproducible Fisher-Yates shuffler. The same
// seed always yields the same permutations in the same order. It is not safe
// for concurrent use.
func NewSeededShuffler(seed int64) Shuffler {
	return &seededShuffler{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededShuffler) Shuffle(cards []int) error {
	for i := len(cards) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return nil
}
