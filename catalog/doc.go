// Package catalog is the Catalog Access Layer: it supplies lodge records and,
// for a year cutoff, the trail connections established on or before it.
//
// Implementations:
//
//	Memory    – fixed in-process slices (fixtures, YAML files)
//	Postgres  – lodge/connection tables via lib/pq; year filter runs in SQL
//	Cached    – Redis decorator for FetchAllLodges over any Catalog
//
// Records are plain values. Lodge and Connection equality is defined on ID
// alone (Equal); the remaining fields are payload the network engine never
// inspects.
//
// A connection whose endpoint is missing from the supplied Index is an input
// data error and is reported as ErrUnknownLodge.
package catalog
