package draw

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidWinnerCount    = errors.New("number of winners must be a positive integer")
	ErrNotEnoughParticipants = errors.New("not enough participants")
)

// Winner is one drawn participant. Rank is 1-based draw order, so it
// doubles as a prize ranking.
type Winner struct {
	Rank int
	Name string
}

// Sampler draws winners with its own generator rather than the shared
// math/rand global so tests can pin the seed.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler() *Sampler {
	return NewSeededSampler(time.Now().UnixNano())
}

func NewSeededSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Draw selects n distinct winners from names with a partial Fisher-Yates
// shuffle. It mutates names in place; after it returns, names[0:n] is a
// uniformly random n-permutation of the original entries. The shuffle
// stops once the first n positions are finalized since nothing reads the
// remainder.
func (s *Sampler) Draw(names []string, n int) ([]Winner, error) {
	switch {
	case n < 1:
		return nil, ErrInvalidWinnerCount
	case len(names) == 0:
		return nil, ErrEmptyRoster
	case n > len(names):
		return nil, fmt.Errorf("%w: wanted %v winners from %v participants",
			ErrNotEnoughParticipants, n, len(names))
	}

	log.Debugf("drawing %v winners from %v participants", n, len(names))

	for i := 0; i < n && i < len(names)-1; i++ {
		j := i + s.rng.Intn(len(names)-i)
		names[i], names[j] = names[j], names[i]
	}

	winners := make([]Winner, n)
	for i := range winners {
		winners[i] = Winner{Rank: i + 1, Name: names[i]}
	}

	return winners, nil
}
