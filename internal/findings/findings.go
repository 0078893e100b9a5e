// Package findings registers every built-in finding type into the static
// registry (internal/registry). Each file in this package owns exactly one
// finding type and calls registry.Register from init(); importing this
// package for its side effects is what populates the registry (see
// cmd/mystiks, which blank-imports it).
package findings

import "github.com/Abacus-Group-RTO/Mystiks/internal/types"

// defaultIdealRating is the normalization constant used by finding types that
// don't override it.
const defaultIdealRating = 5

// noIndicators is used by finding types that contribute nothing beyond the
// generic indicator set.
func noIndicators(_ []byte, _, _ int, _ [][]byte) []types.Indicator {
	return nil
}

func round2(v float64) float64 {
	return float64(int64(v*100+sign(v)*0.5)) / 100
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
