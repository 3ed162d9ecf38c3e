package provider

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/trknhr/ghostfaker/internal/logger"
)

const (
	// SampleSize is the number of values produced per selection.
	SampleSize = 10
	// DefaultSeed is applied before every batch.
	DefaultSeed uint64 = 0
)

var ErrUnknownProvider = errors.New("unknown provider")

// Generator produces sample batches. It owns its random source; the source is
// reseeded at the start of every batch.
type Generator struct {
	mu       sync.Mutex
	src      *rand.PCG
	faker    *gofakeit.Faker
	seed     uint64
	now      func() time.Time
	registry map[string]Func
}

type Option func(*Generator)

// WithClock sets the clock used by date and time providers.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithSeed overrides DefaultSeed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.seed = seed }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		seed:     DefaultSeed,
		now:      time.Now,
		registry: registry,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.src = rand.NewPCG(g.seed, g.seed)
	// the mutex below serialises access, the faker does not need its own lock
	g.faker = gofakeit.NewFaker(g.src, false)
	return g
}

// Generate reseeds the source and calls the named provider SampleSize times.
func (g *Generator) Generate(name string) ([]string, error) {
	fn, ok := g.registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.src.Seed(g.seed, g.seed)
	now := g.now()

	values := make([]string, 0, SampleSize)
	for i := 0; i < SampleSize; i++ {
		values = append(values, fn(g.faker, now))
	}
	logger.Debug("generated %d values for %s", len(values), name)
	return values, nil
}

// Has reports whether name is a registered provider.
func (g *Generator) Has(name string) bool {
	_, ok := g.registry[name]
	return ok
}
