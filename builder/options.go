package builder

import (
	"fmt"
	"math/rand"
)

// DefaultYear is the link year used when no year policy is set.
const DefaultYear = 2000

// Option customizes BuildCatalog.
type Option func(*config)

// config is the resolved, immutable configuration seen by constructors.
type config struct {
	rng        *rand.Rand
	fromYear   int
	toYear     int
	firstID    int
	nameFn     func(id int) string
	localityFn func(block int) string
}

func newConfig(opts ...Option) config {
	c := config{
		fromYear:   DefaultYear,
		toYear:     DefaultYear,
		firstID:    1,
		nameFn:     func(id int) string { return fmt.Sprintf("Lodge %d", id) },
		localityFn: func(block int) string { return fmt.Sprintf("Valley %d", block+1) },
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithSeed installs a seeded RNG for random topologies and year draws.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithYears draws each link year uniformly from [from, to]. A range wider
// than one year requires an RNG; BuildCatalog rejects from > to.
func WithYears(from, to int) Option {
	return func(c *config) { c.fromYear, c.toYear = from, to }
}

// WithFirstID sets the id of the first generated lodge (default 1).
func WithFirstID(id int) Option {
	return func(c *config) { c.firstID = id }
}

// WithNames overrides the lodge naming scheme. Panics on nil.
func WithNames(fn func(id int) string) Option {
	if fn == nil {
		panic("builder: WithNames(nil)")
	}

	return func(c *config) { c.nameFn = fn }
}
