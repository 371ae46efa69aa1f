// Package testutil provides testing utilities for tabula.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible column data with controlled value ranges,
// skew and missing rates.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	vals := rng.Int64s(1000, -50, 50)     // uniform in [-50, 50)
//	keys := rng.ZipfBuckets(1000, 16, 1.5) // skewed keys with many ties
//	present := rng.PresenceMask(1000, 0.1) // ~10% missing
//
// The package does not depend on the column package, so column tests can use
// it without an import cycle; callers substitute sentinels themselves.
package testutil
