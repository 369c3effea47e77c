package catalog

import (
	"context"
	"sort"
)

// Memory is an in-process Catalog over fixed lodge and link slices.
// It is safe for concurrent readers; it is never mutated after construction.
type Memory struct {
	lodges []Lodge
	links  []Link
}

// NewMemory returns a Memory catalog holding copies of lodges and links.
func NewMemory(lodges []Lodge, links []Link) *Memory {
	m := &Memory{
		lodges: append([]Lodge(nil), lodges...),
		links:  append([]Link(nil), links...),
	}
	sort.Slice(m.links, func(i, j int) bool { return m.links[i].ID < m.links[j].ID })

	return m
}

// FetchAllLodges returns a copy of the lodge records.
func (m *Memory) FetchAllLodges(ctx context.Context) ([]Lodge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return append([]Lodge(nil), m.lodges...), nil
}

// FetchConnectionsUpTo filters links by year and resolves their endpoints.
func (m *Memory) FetchConnectionsUpTo(ctx context.Context, idx Index, year int) ([]Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return resolveUpTo(idx, m.links, year)
}

// resolveUpTo keeps links with Year <= year and resolves them against idx.
func resolveUpTo(idx Index, links []Link, year int) ([]Connection, error) {
	var out []Connection
	for _, l := range links {
		if l.Year > year {
			continue
		}
		c, err := l.Resolve(idx)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

var _ Catalog = (*Memory)(nil)

// Lodges returns a copy of the stored lodge records.
func (m *Memory) Lodges() []Lodge { return append([]Lodge(nil), m.lodges...) }

// Links returns a copy of the stored links, ordered by id.
func (m *Memory) Links() []Link { return append([]Link(nil), m.links...) }
