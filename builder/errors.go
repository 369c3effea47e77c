package builder

import "errors"

var (
	// ErrTooFewLodges indicates a size parameter below the constructor minimum.
	ErrTooFewLodges = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrInvalidYearRange indicates WithYears(from, to) with from > to.
	ErrInvalidYearRange = errors.New("builder: invalid year range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a constructor could not be applied.
	ErrConstructFailed = errors.New("builder: construction failed")
)
