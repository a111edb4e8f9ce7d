package fixture

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"

	"github.com/brandonbloom/isbnfix/internal/checksum"
	"github.com/rs/zerolog"
)

// DefaultCount is the number of records generated when none is configured.
const DefaultCount = 50

// Record pairs a digit sequence with the checksum computed from it.
type Record struct {
	Digits   checksum.Digits
	Checksum int
}

// RandIntFunc returns a uniform value in [0, max).
type RandIntFunc func(max *big.Int) (*big.Int, error)

// Generator samples digit sequences from an explicit random source.
type Generator struct {
	randInt RandIntFunc
}

// NewGenerator returns a Generator backed by crypto/rand, or by a seeded
// math/rand source when seed is non-nil so runs can be reproduced.
func NewGenerator(seed *int64) *Generator {
	if seed == nil {
		return NewGeneratorWith(cryptoRandInt)
	}
	return NewGeneratorWith(seededRandInt(*seed))
}

// NewGeneratorWith wraps an arbitrary random source.
func NewGeneratorWith(randInt RandIntFunc) *Generator {
	return &Generator{randInt: randInt}
}

func cryptoRandInt(max *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, max)
}

func seededRandInt(seed int64) RandIntFunc {
	rng := mrand.New(mrand.NewSource(seed))
	return func(max *big.Int) (*big.Int, error) {
		return new(big.Int).Rand(rng, max), nil
	}
}

var ten = big.NewInt(10)

// Sample draws nine digits, each uniform over 0-9.
func (g *Generator) Sample() (checksum.Digits, error) {
	var d checksum.Digits
	for i := range d {
		n, err := g.randInt(ten)
		if err != nil {
			return checksum.Digits{}, fmt.Errorf("sample digit: %w", err)
		}
		d[i] = int(n.Int64())
	}
	return d, nil
}

// Next samples one sequence and pairs it with its checksum.
func (g *Generator) Next() (Record, error) {
	d, err := g.Sample()
	if err != nil {
		return Record{}, err
	}
	sum, err := checksum.Compute(d)
	if err != nil {
		return Record{}, err
	}
	return Record{Digits: d, Checksum: sum}, nil
}

// Generate returns n records, stopping early if ctx is cancelled.
func (g *Generator) Generate(ctx context.Context, n int) ([]Record, error) {
	if n < 0 {
		return nil, fmt.Errorf("record count must not be negative (got %d)", n)
	}
	logger := zerolog.Ctx(ctx)
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := g.Next()
		if err != nil {
			return nil, err
		}
		logger.Trace().Int("index", i).Stringer("digits", rec.Digits).Int("checksum", rec.Checksum).Msg("sampled record")
		records = append(records, rec)
	}
	logger.Debug().Int("count", n).Msg("generated records")
	return records, nil
}
