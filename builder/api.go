package builder

import (
	"fmt"

	"github.com/katalvlaran/lodgenet/catalog"
)

// Constructor appends one block of lodges and links to acc.
type Constructor func(acc *Accumulator) error

// Accumulator collects generated lodges and links. Constructors call Lodges
// to allocate a block and Link to join two lodges of any block.
type Accumulator struct {
	cfg    config
	lodges []catalog.Lodge
	links  []catalog.Link
	nextID int
	block  int
}

// BuildCatalog resolves opts and applies cons in order. Constructor errors
// are wrapped with their position.
func BuildCatalog(opts []Option, cons ...Constructor) (*catalog.Memory, error) {
	cfg := newConfig(opts...)
	if cfg.fromYear > cfg.toYear {
		return nil, fmt.Errorf("BuildCatalog: %d > %d: %w", cfg.fromYear, cfg.toYear, ErrInvalidYearRange)
	}
	if cfg.fromYear != cfg.toYear && cfg.rng == nil {
		return nil, fmt.Errorf("BuildCatalog: year range: %w", ErrNeedRandSource)
	}

	acc := &Accumulator{cfg: cfg, nextID: cfg.firstID}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildCatalog: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(acc); err != nil {
			return nil, fmt.Errorf("BuildCatalog: constructor %d: %w", i, err)
		}
		acc.block++
	}

	return catalog.NewMemory(acc.lodges, acc.links), nil
}

// Lodges allocates n consecutive lodge ids in the current block and returns
// them.
func (a *Accumulator) Lodges(n int) []int {
	ids := make([]int, n)
	loc := a.cfg.localityFn(a.block)
	for i := range ids {
		id := a.nextID
		a.nextID++
		ids[i] = id
		a.lodges = append(a.lodges, catalog.Lodge{
			ID:       id,
			Name:     a.cfg.nameFn(id),
			Locality: loc,
			Altitude: 1500 + 37*(id%50),
			Capacity: 10 + id%30,
		})
	}

	return ids
}

// Link joins u and v with the next link id and a year from the year policy.
func (a *Accumulator) Link(u, v int) {
	a.links = append(a.links, catalog.Link{
		ID:         len(a.links) + 1,
		Lodge1:     u,
		Lodge2:     v,
		Distance:   1 + float64((u*7+v*3)%40)/4,
		Difficulty: "T",
		Year:       a.year(),
	})
}

// year draws from [fromYear, toYear].
func (a *Accumulator) year() int {
	if a.cfg.fromYear == a.cfg.toYear {
		return a.cfg.fromYear
	}

	return a.cfg.fromYear + a.cfg.rng.Intn(a.cfg.toYear-a.cfg.fromYear+1)
}
