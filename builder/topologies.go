package builder

import "fmt"

// Minimum sizes per constructor.
const (
	minPathLodges     = 2
	minCycleLodges    = 3
	minStarLodges     = 2
	minCompleteLodges = 1
	minGridDim        = 1
	minIsolatedLodges = 1
)

// Path links n lodges in a chain: 1-2, 2-3, ..., (n-1)-n.
func Path(n int) Constructor {
	return func(acc *Accumulator) error {
		if n < minPathLodges {
			return fmt.Errorf("Path: n=%d < %d: %w", n, minPathLodges, ErrTooFewLodges)
		}
		ids := acc.Lodges(n)
		for i := 0; i+1 < n; i++ {
			acc.Link(ids[i], ids[i+1])
		}

		return nil
	}
}

// Cycle is Path(n) closed by a link from the last lodge back to the first.
func Cycle(n int) Constructor {
	return func(acc *Accumulator) error {
		if n < minCycleLodges {
			return fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleLodges, ErrTooFewLodges)
		}
		ids := acc.Lodges(n)
		for i := 0; i < n; i++ {
			acc.Link(ids[i], ids[(i+1)%n])
		}

		return nil
	}
}

// Star links the first lodge of the block to the n-1 others.
func Star(n int) Constructor {
	return func(acc *Accumulator) error {
		if n < minStarLodges {
			return fmt.Errorf("Star: n=%d < %d: %w", n, minStarLodges, ErrTooFewLodges)
		}
		ids := acc.Lodges(n)
		for _, leaf := range ids[1:] {
			acc.Link(ids[0], leaf)
		}

		return nil
	}
}

// Complete links every unordered pair of n lodges.
func Complete(n int) Constructor {
	return func(acc *Accumulator) error {
		if n < minCompleteLodges {
			return fmt.Errorf("Complete: n=%d < %d: %w", n, minCompleteLodges, ErrTooFewLodges)
		}
		ids := acc.Lodges(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				acc.Link(ids[i], ids[j])
			}
		}

		return nil
	}
}

// Grid lays rows*cols lodges out row-major and links 4-neighbors.
func Grid(rows, cols int) Constructor {
	return func(acc *Accumulator) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewLodges)
		}
		ids := acc.Lodges(rows * cols)
		at := func(r, c int) int { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					acc.Link(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					acc.Link(at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}

// Isolated adds n lodges with no links. They stay in the directory but never
// appear in a built network.
func Isolated(n int) Constructor {
	return func(acc *Accumulator) error {
		if n < minIsolatedLodges {
			return fmt.Errorf("Isolated: n=%d < %d: %w", n, minIsolatedLodges, ErrTooFewLodges)
		}
		acc.Lodges(n)

		return nil
	}
}

// RandomSparse adds n lodges and links each unordered pair independently
// with probability p. Trials run in (i asc, j asc) order, so a fixed seed
// fixes the result.
func RandomSparse(n int, p float64) Constructor {
	return func(acc *Accumulator) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewLodges)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
		}
		rng := acc.cfg.rng
		if rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		ids := acc.Lodges(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && rng.Float64() < p) {
					acc.Link(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}

// RandomLinks adds n lodges and m links with endpoints drawn uniformly,
// self-loops and repeated pairs included.
func RandomLinks(n, m int) Constructor {
	return func(acc *Accumulator) error {
		if n < 1 {
			return fmt.Errorf("RandomLinks: n=%d < 1: %w", n, ErrTooFewLodges)
		}
		rng := acc.cfg.rng
		if rng == nil {
			return fmt.Errorf("RandomLinks: %w", ErrNeedRandSource)
		}
		ids := acc.Lodges(n)
		for k := 0; k < m; k++ {
			acc.Link(ids[rng.Intn(n)], ids[rng.Intn(n)])
		}

		return nil
	}
}
