// Package heuristics implements the byte-level scoring primitives shared by
// the finding types' indicator functions: Shannon entropy, pronounceability,
// character-class composition, sequence detection, and the URL/path/hex
// shape tests used by the entropy token pre-filter.
package heuristics

import (
	"encoding/base64"
	"math"
	"regexp"
)

// ShannonEntropy computes H = -Σ p_i·log2(p_i) over byte frequencies in data.
func ShannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	var entropy float64
	total := float64(len(data))
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// consonantVowelCluster models a plausible "pronounceable" English-like
// syllable: an optional consonant cluster, a vowel, an optional trailing
// consonant. Runs of characters that fit this shape are treated as
// pronounceable; runs that don't (long consonant stacks, repeated symbols,
// digit clumps) count against it.
var syllablePattern = regexp.MustCompile(`(?i)[bcdfghjklmnpqrstvwxyz]{0,3}[aeiou][bcdfghjklmnpqrstvwxyz]{0,2}`)

// Pronounceable returns a score in [0,1]: the fraction of capture (by byte
// count) covered by non-overlapping syllable-shaped runs. A high-entropy
// opaque token made of random characters rarely lines up with this pattern,
// while ordinary words and variable names mostly do.
func Pronounceable(capture []byte) float64 {
	if len(capture) == 0 {
		return 0
	}

	covered := 0
	for _, m := range syllablePattern.FindAllIndex(capture, -1) {
		covered += m[1] - m[0]
	}

	return float64(covered) / float64(len(capture))
}

// CharacterCounts returns the number of letters, digits, and symbols
// (everything else) in capture.
func CharacterCounts(capture []byte) (letters, digits, symbols int) {
	for _, b := range capture {
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
			letters++
		case b >= '0' && b <= '9':
			digits++
		default:
			symbols++
		}
	}
	return
}

// LongestSequenceRatio returns the fraction of capture occupied by the
// longest run of adjacent bytes whose absolute difference is <= 1
// (monotonic increments/decrements or repeated bytes), e.g. "abcdef" or
// "aaaaaa".
func LongestSequenceRatio(capture []byte) float64 {
	if len(capture) < 2 {
		return 0
	}

	longest, current := 0, 0
	for i := 1; i < len(capture); i++ {
		delta := int(capture[i]) - int(capture[i-1])
		if delta < 0 {
			delta = -delta
		}
		if delta <= 1 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	// +1 to count the run itself, not just the number of steps within it.
	return float64(longest+1) / float64(len(capture))
}

var hexPattern = regexp.MustCompile(`(?i)^[a-f0-9]+$`)

// LooksLikeHex reports whether capture is entirely hex digits.
func LooksLikeHex(capture []byte) bool {
	return hexPattern.Match(capture)
}

var (
	urlWithSchemePattern = regexp.MustCompile(`(?i)^[a-z0-9]*://[a-z0-9\-.]+(/[a-z0-9\-+_.%/?&=\[\]{}#]*)?$`)
	urlWithHostPattern   = regexp.MustCompile(`(?i)^(?:[a-z0-9]*://)?(?:[a-z0-9\-]+\.){1,}[a-z0-9\-]+(/[a-z0-9\-+_.%/?&=\[\]{}#]*)?$`)
)

// LooksLikeURL reports whether capture resembles scheme://host[/...] or
// host.tld[/...].
func LooksLikeURL(capture []byte) bool {
	return urlWithSchemePattern.Match(capture) || urlWithHostPattern.Match(capture)
}

var pathPattern = regexp.MustCompile(`(?i)^(?:[a-z0-9\-+_. =]+/?){1,}$`)

// LooksLikePath reports whether capture resembles slash-separated path
// components made of typical path characters.
func LooksLikePath(capture []byte) bool {
	return bytesContain(capture, '/') && pathPattern.Match(capture)
}

func bytesContain(b []byte, c byte) bool {
	for _, x := range b {
		if x == c {
			return true
		}
	}
	return false
}

// Base64URLDecode right-pads segment to a length divisible by 4 with '=' and
// decodes it as standard base64 (the JWT segment alphabet is base64url, but
// padded-length normalization is the only transform needed here).
func Base64URLDecode(segment []byte) ([]byte, error) {
	padded := make([]byte, len(segment))
	copy(padded, segment)
	if rem := len(padded) % 4; rem != 0 {
		for i := 0; i < 4-rem; i++ {
			padded = append(padded, '=')
		}
	}
	return base64.URLEncoding.WithPadding(base64.StdPadding).DecodeString(string(padded))
}
