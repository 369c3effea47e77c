// Package builder generates synthetic lodge catalogs from composable,
// deterministic topology constructors.
//
// Each constructor appends a fresh block of lodges (ids continue from the
// previous block) and links among them, so composing constructors yields
// one connected component per constructor:
//
//	m, err := builder.BuildCatalog(
//		[]builder.Option{builder.WithSeed(42), builder.WithYears(1990, 2020)},
//		builder.Path(5),          // lodges 1..5
//		builder.Cycle(4),         // lodges 6..9
//		builder.RandomSparse(20, 0.1),
//	)
//
// Link years come from the year policy: a fixed year by default, or a
// seeded uniform draw over WithYears. Same options and constructor order
// give the same catalog.
//
// Errors
//
//   - ErrTooFewLodges       size parameter below the constructor minimum.
//   - ErrInvalidProbability p outside [0,1].
//   - ErrInvalidYearRange   WithYears(from, to) with from > to.
//   - ErrNeedRandSource     stochastic constructor without WithSeed/WithRand.
//   - ErrConstructFailed    nil constructor.
package builder
