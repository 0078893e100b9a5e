// Package registry holds the static table mapping a pattern tag to the
// finding type that owns it.
//
// Construction is a single static registry built at startup from an explicit
// registration API, not filesystem-driven auto-discovery: each finding type
// lives in its own file under internal/findings and calls Register from an
// init() function. This keeps extensibility compile-time (or via the small
// Register API) rather than relying on a plugin-glob-and-dynamic-import
// pattern.
package registry

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/Abacus-Group-RTO/Mystiks/internal/scanerr"
	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
)

// IndicatorFunc scores a single raw match and returns the finding-type-specific
// indicators to append after the generic ones. capture_start/capture_end are
// expressed relative to context, not absolute file offsets.
type IndicatorFunc func(capture []byte, captureStart, captureEnd int, groups [][]byte) []types.Indicator

// PreFilterFunc reports whether a raw match should be dropped before scoring
// even begins (e.g. the entropy token pre-filter).
type PreFilterFunc func(capture []byte) bool

// FindingType bundles everything the registry knows about one category of
// secret.
type FindingType struct {
	Name        string
	Description []string
	Patterns    []string
	IdealRating float64
	Indicators  IndicatorFunc
	PreFilter   PreFilterFunc // optional, may be nil

	// CaseInsensitive patterns are wrapped in (?i) at compile time; a pattern
	// may also carry its own (?i) prefix directly in Patterns.
}

// CompiledPattern pairs a compiled regexp with the tag and source it came
// from, ready to hand to the matcher.
type CompiledPattern struct {
	Tag    string
	Source string
	Regexp *regexp.Regexp
}

var (
	mu     sync.Mutex
	types_ []FindingType
)

// Register adds a finding type to the static registry. Intended to be called
// from init() in each file under internal/findings. Adding a new finding type
// is additive: one call to Register, no changes anywhere else.
func Register(ft FindingType) {
	mu.Lock()
	defer mu.Unlock()
	types_ = append(types_, ft)
}

// All returns every registered finding type, keyed by name for lookup by the
// scorer.
func All() []FindingType {
	mu.Lock()
	defer mu.Unlock()
	out := make([]FindingType, len(types_))
	copy(out, types_)
	return out
}

// Build compiles the union of every registered finding type's patterns and
// returns a lookup from pattern tag back to its FindingType. Patterns that
// fail to compile abort the scan before it starts: ErrRegexCompileFailed is
// fatal.
func Build() ([]CompiledPattern, map[string]FindingType, error) {
	findingTypes := All()

	byTag := make(map[string]FindingType, len(findingTypes))
	var compiled []CompiledPattern

	for _, ft := range findingTypes {
		byTag[ft.Name] = ft
		for _, src := range ft.Patterns {
			re, err := regexp.Compile(src)
			if err != nil {
				return nil, nil, fmt.Errorf("compile pattern %q for %q: %w: %w", src, ft.Name, scanerr.ErrRegexCompileFailed, err)
			}
			compiled = append(compiled, CompiledPattern{Tag: ft.Name, Source: src, Regexp: re})
		}
	}

	return compiled, byTag, nil
}
