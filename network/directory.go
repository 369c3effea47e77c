package network

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lodgenet/catalog"
)

// Directory holds the full lodge catalog indexed by id.
//
// It is loaded once and read-only afterwards.
type Directory struct {
	idx catalog.Index
}

// NewDirectory returns an empty Directory.
func NewDirectory() *Directory {
	return &Directory{idx: catalog.Index{}}
}

// Load fetches every lodge from cat and replaces the index.
//
// An empty catalog yields an empty directory and no error. On failure the
// directory is left empty and the wrapped error is returned.
func (d *Directory) Load(ctx context.Context, cat catalog.Catalog) error {
	d.idx = catalog.Index{}

	lodges, err := cat.FetchAllLodges(ctx)
	if err != nil {
		return fmt.Errorf("network: load directory: %w", err)
	}
	idx, err := catalog.NewIndex(lodges)
	if err != nil {
		return fmt.Errorf("network: load directory: %w", err)
	}
	d.idx = idx

	return nil
}

// Resolve returns the lodge for id. A missing id is an invariant violation
// reported as ErrLodgeNotInDirectory.
func (d *Directory) Resolve(id int) (catalog.Lodge, error) {
	l, ok := d.idx[id]
	if !ok {
		return catalog.Lodge{}, fmt.Errorf("%w: %d", ErrLodgeNotInDirectory, id)
	}

	return l, nil
}

// Lookup is Resolve for user-supplied ids, where absence is expected.
func (d *Directory) Lookup(id int) (catalog.Lodge, bool) {
	l, ok := d.idx[id]

	return l, ok
}

// ResolveAll maps ids to lodges, preserving order.
func (d *Directory) ResolveAll(ids []int) ([]catalog.Lodge, error) {
	out := make([]catalog.Lodge, 0, len(ids))
	for _, id := range ids {
		l, err := d.Resolve(id)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	return out, nil
}

// Index exposes the id map handed to the catalog for endpoint resolution.
// Callers must not mutate it.
func (d *Directory) Index() catalog.Index { return d.idx }

// All returns every lodge in ascending id order.
func (d *Directory) All() []catalog.Lodge { return d.idx.Sorted() }

// Len returns the number of lodges.
func (d *Directory) Len() int { return len(d.idx) }
