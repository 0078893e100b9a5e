// Package scorer implements the indicator pipeline: for each raw match it
// runs the generic delimiter/entropy-agnostic indicators followed by the
// finding type's own indicator function, sums the deltas into a rating, and
// drops matches whose rating is negative.
package scorer

import (
	"github.com/Abacus-Group-RTO/Mystiks/internal/registry"
	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
)

// PreFiltered reports whether raw should be dropped before scoring, per the
// finding type's optional PreFilter (used by the entropy token type to reject
// obvious non-secrets like URLs and hex digests before scoring runs).
func PreFiltered(raw types.RawMatch, ft registry.FindingType) bool {
	if ft.PreFilter == nil {
		return false
	}
	return ft.PreFilter(raw.Capture)
}

// Score runs the full indicator pipeline for one raw match and returns the
// resulting Finding. ok is false if the rating is negative, in which case the
// match is dropped.
func Score(raw types.RawMatch, ft registry.FindingType) (types.Finding, bool) {
	captureStart := int(raw.CaptureStart - raw.ContextStart)
	captureEnd := int(raw.CaptureEnd - raw.ContextStart)

	indicators := genericIndicators(raw.Context, captureStart, captureEnd)
	if ft.Indicators != nil {
		indicators = append(indicators, ft.Indicators(raw.Capture, captureStart, captureEnd, raw.Groups)...)
	}

	var rating float64
	for _, ind := range indicators {
		rating += ind.Delta
	}

	finding := types.Finding{
		RawMatch:    raw,
		Indicators:  indicators,
		Rating:      rating,
		IdealRating: ft.IdealRating,
	}

	return finding, rating >= 0
}
