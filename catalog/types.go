// Package catalog defines the lodge and connection records and the
// Catalog Access Layer the network engine reads them through.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for catalog access.
var (
	// ErrUnknownLodge indicates a connection references a lodge id the index lacks.
	ErrUnknownLodge = errors.New("catalog: connection references unknown lodge")

	// ErrDuplicateLodge indicates two lodge records share an id.
	ErrDuplicateLodge = errors.New("catalog: duplicate lodge id")
)

// Lodge is an immutable mountain-hut record. Only ID is meaningful to the
// network engine; the rest is payload.
type Lodge struct {
	ID       int    `json:"id" yaml:"id" validate:"gt=0"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	Locality string `json:"locality" yaml:"locality"`
	Altitude int    `json:"altitude" yaml:"altitude" validate:"gte=0,lte=9000"`
	Capacity int    `json:"capacity" yaml:"capacity" validate:"gte=0"`
}

// Equal reports whether l and o denote the same lodge (ids match).
func (l Lodge) Equal(o Lodge) bool { return l.ID == o.ID }

// String renders the lodge for CLI output.
func (l Lodge) String() string {
	return fmt.Sprintf("%s (%s, %d m)", l.Name, l.Locality, l.Altitude)
}

// Connection is an undirected trail between two lodges established in Year.
//
// Two connections are equal iff their IDs match; every other field is
// non-identifying payload.
type Connection struct {
	ID         int
	Lodge1     Lodge
	Lodge2     Lodge
	Distance   float64
	Difficulty string
	Duration   string
	Year       int
}

// Equal reports whether c and o denote the same connection (ids match).
func (c Connection) Equal(o Connection) bool { return c.ID == o.ID }

// Link is the stored form of a Connection: endpoints are lodge ids.
type Link struct {
	ID         int     `yaml:"id" validate:"gt=0"`
	Lodge1     int     `yaml:"lodge1" validate:"gt=0"`
	Lodge2     int     `yaml:"lodge2" validate:"gt=0"`
	Distance   float64 `yaml:"distance" validate:"gte=0"`
	Difficulty string  `yaml:"difficulty"`
	Duration   string  `yaml:"duration" validate:"omitempty,hms"`
	Year       int     `yaml:"year" validate:"gt=0"`
}

// Resolve turns l into a Connection using idx.
// Returns ErrUnknownLodge if either endpoint is missing from idx.
func (l Link) Resolve(idx Index) (Connection, error) {
	a, ok := idx[l.Lodge1]
	if !ok {
		return Connection{}, fmt.Errorf("%w: connection %d lodge %d", ErrUnknownLodge, l.ID, l.Lodge1)
	}
	b, ok := idx[l.Lodge2]
	if !ok {
		return Connection{}, fmt.Errorf("%w: connection %d lodge %d", ErrUnknownLodge, l.ID, l.Lodge2)
	}

	return Connection{
		ID:         l.ID,
		Lodge1:     a,
		Lodge2:     b,
		Distance:   l.Distance,
		Difficulty: l.Difficulty,
		Duration:   l.Duration,
		Year:       l.Year,
	}, nil
}

// Index maps lodge id to record.
type Index map[int]Lodge

// NewIndex builds an Index from lodges.
// Returns ErrDuplicateLodge if two records share an id.
func NewIndex(lodges []Lodge) (Index, error) {
	idx := make(Index, len(lodges))
	for _, l := range lodges {
		if _, dup := idx[l.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateLodge, l.ID)
		}
		idx[l.ID] = l
	}

	return idx, nil
}

// Sorted returns the indexed lodges in ascending id order.
func (idx Index) Sorted() []Lodge {
	out := make([]Lodge, 0, len(idx))
	for _, l := range idx {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Catalog is the Catalog Access Layer consumed by the network engine.
type Catalog interface {
	// FetchAllLodges returns every lodge record. An empty slice is not an error.
	FetchAllLodges(ctx context.Context) ([]Lodge, error)

	// FetchConnectionsUpTo returns the connections with Year <= year, both
	// endpoints resolved through idx.
	FetchConnectionsUpTo(ctx context.Context, idx Index, year int) ([]Connection, error)
}
