package sortlist

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Identity generation strategies, selectable by name in Config.
const (
	StrategyCounter   = "counter"
	StrategyRandom    = "random"
	StrategyTimestamp = "timestamp"
	StrategyUUID      = "uuid"
)

// DefaultRandomIDLength is the length of ids produced by the random
// strategy when none is configured.
const DefaultRandomIDLength = 8

const randomIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// timestampSuffixLength is the random tail appended by the timestamp
// strategy so that two ids minted in the same millisecond stay distinct.
const timestampSuffixLength = 4

// IDGenerator produces unique tokens for new entities. Uniqueness is
// guaranteed for the counter strategy and overwhelmingly probable for the
// others within one collection's lifetime.
type IDGenerator interface {
	Generate() string
}

// NewIDGenerator returns the generator registered under the given strategy
// name. idLength applies to the random strategy; values below 1 fall back
// to DefaultRandomIDLength.
func NewIDGenerator(strategy string, idLength int) (IDGenerator, error) {
	if idLength < 1 {
		idLength = DefaultRandomIDLength
	}
	switch strategy {
	case StrategyCounter:
		return &counterGenerator{}, nil
	case StrategyRandom:
		return &randomGenerator{length: idLength}, nil
	case StrategyTimestamp:
		return &timestampGenerator{now: time.Now}, nil
	case StrategyUUID:
		return &uuidGenerator{fallback: &randomGenerator{length: idLength}}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}

// counterGenerator hands out monotonically increasing ids. The counter is
// owned by the generator instance, not shared process-wide, so separate
// collections stay independent. Counts are never reused after deletion.
type counterGenerator struct {
	next uint64
}

func (g *counterGenerator) Generate() string {
	g.next++
	return "item-" + strconv.FormatUint(g.next, 10)
}

// randomGenerator produces fixed-alphabet random strings of a configured
// length. It consumes the shared math/rand source but mutates no other state.
type randomGenerator struct {
	length int
}

func (g *randomGenerator) Generate() string {
	b := make([]byte, g.length)
	for i := range b {
		b[i] = randomIDAlphabet[rand.Intn(len(randomIDAlphabet))]
	}
	return string(b)
}

// timestampGenerator combines the current time with a short random suffix,
// so ids stay unique even when a counter-style scheme would restart from
// zero across reloads.
type timestampGenerator struct {
	now func() time.Time
}

func (g *timestampGenerator) Generate() string {
	suffix := (&randomGenerator{length: timestampSuffixLength}).Generate()
	return strconv.FormatInt(g.now().UnixMilli(), 36) + "-" + suffix
}

// uuidGenerator produces RFC-4122 random identifiers. When the crypto
// source is unavailable it falls back to the random-string strategy rather
// than failing the mutation.
type uuidGenerator struct {
	fallback IDGenerator
}

func (g *uuidGenerator) Generate() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return g.fallback.Generate()
	}
	return id.String()
}
