package findings

import "github.com/Abacus-Group-RTO/Mystiks/internal/registry"

func init() {
	registry.Register(registry.FindingType{
		Name: "Hex Token",
		Description: []string{
			"A long run of hexadecimal digits is a common shape for hashes, encryption keys, and session tokens alike. On its own it's ambiguous - this finding exists to catch the cases the more specific finding types miss, and relies on the generic delimiter heuristics to separate credentials from ordinary hex-encoded data.",
		},
		Patterns:    []string{`[A-Fa-f0-9]{8,128}`},
		IdealRating: defaultIdealRating,
		Indicators:  noIndicators,
	})
}
