package findings

import (
	"fmt"

	"github.com/Abacus-Group-RTO/Mystiks/internal/heuristics"
	"github.com/Abacus-Group-RTO/Mystiks/internal/registry"
	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
)

func init() {
	registry.Register(registry.FindingType{
		Name: "Entropy Token",
		Description: []string{
			"A high-entropy string of letters, digits, and symbols is a common shape for API keys, access tokens, and other opaque secrets that don't match a more specific pattern. This finding uses Shannon entropy, pronounceability, and character-class composition to separate likely secrets from ordinary high-entropy-looking text such as URLs, file paths, and hex-encoded hashes.",
		},
		Patterns:    []string{`[A-Za-z0-9_=.+\-?!@#$%^&*/:]{8,}`},
		IdealRating: 7,
		PreFilter:   entropyPreFilter,
		Indicators:  entropyIndicators,
	})
}

// entropyPreFilter drops matches that are shaped like hex blobs, URLs,
// filesystem paths, or predictable sequences before scoring begins (spec
// §4.4).
func entropyPreFilter(capture []byte) bool {
	if heuristics.LooksLikeHex(capture) {
		return true
	}
	if heuristics.LooksLikeURL(capture) {
		return true
	}
	if heuristics.LooksLikePath(capture) {
		return true
	}
	if heuristics.LongestSequenceRatio(capture) > 0.5 {
		return true
	}
	return false
}

func entropyIndicators(capture []byte, _, _ int, _ [][]byte) []types.Indicator {
	var indicators []types.Indicator

	indicators = append(indicators, entropyIndicator(capture)...)
	indicators = append(indicators, pronounceableIndicator(capture)...)
	indicators = append(indicators, characterClassIndicators(capture)...)
	indicators = append(indicators, sequenceIndicator(capture)...)

	return indicators
}

// entropyIndicator scores Shannon entropy against a [min,max] band.
func entropyIndicator(capture []byte) []types.Indicator {
	const min, max, mid = 2.5, 4.5, 3.5
	h := heuristics.ShannonEntropy(capture)

	switch {
	case h >= max:
		return []types.Indicator{{Label: fmt.Sprintf("Value has high Shannon entropy of %.4f", h), Delta: 4}}
	case h <= min:
		return []types.Indicator{{Label: fmt.Sprintf("Value has low Shannon entropy of %.4f", h), Delta: -4}}
	default:
		delta := round2(((h - mid) / (max - min)) * 4)
		return []types.Indicator{{Label: fmt.Sprintf("Value has Shannon entropy of %.4f", h), Delta: delta}}
	}
}

// pronounceableIndicator scores pronounceability against a [min,max] band.
// Note the sign is inverted relative to entropy: high pronounceability
// argues AGAINST the capture being a random secret.
func pronounceableIndicator(capture []byte) []types.Indicator {
	const min, max, mid, amplitude = 0.5, 1.0, 0.75, 2.0
	p := heuristics.Pronounceable(capture)

	switch {
	case p >= max:
		return []types.Indicator{{Label: fmt.Sprintf("Value has a high pronounceable rating of %.4f", p), Delta: -amplitude}}
	case p <= min:
		return []types.Indicator{{Label: fmt.Sprintf("Value has a low pronounceable rating of %.4f", p), Delta: amplitude}}
	default:
		delta := -round2(((p - mid) / (max - min)) * amplitude)
		return []types.Indicator{{Label: fmt.Sprintf("Value has a pronounceable rating of %.4f", p), Delta: delta}}
	}
}

func characterClassIndicators(capture []byte) []types.Indicator {
	letters, digits, symbols := heuristics.CharacterCounts(capture)
	n := len(capture)

	switch {
	case letters == n || digits == n || symbols == n:
		return []types.Indicator{{Label: "Value only contains one character type", Delta: -1}}
	case letters > 0 && digits > 0 && symbols > 0:
		return []types.Indicator{{Label: "Value contains all character types", Delta: 1}}
	default:
		return nil
	}
}

func sequenceIndicator(capture []byte) []types.Indicator {
	ratio := heuristics.LongestSequenceRatio(capture)
	if ratio <= 0.25 {
		return nil
	}
	return []types.Indicator{{
		Label: fmt.Sprintf("Value contains a predictable sequence covering %.0f%% of its length", ratio*100),
		Delta: round2(-0.5 * ratio),
	}}
}
