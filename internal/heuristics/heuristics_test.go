package heuristics

import (
	"math"
	"testing"
)

func TestShannonEntropy(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want float64
	}{
		{"empty", nil, 0},
		{"single repeated byte", []byte("aaaaaaaa"), 0},
		{"two symbols evenly split", []byte("aabb"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShannonEntropy(tt.data)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ShannonEntropy(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestPronounceable(t *testing.T) {
	if got := Pronounceable(nil); got != 0 {
		t.Errorf("Pronounceable(nil) = %v, want 0", got)
	}

	word := Pronounceable([]byte("banana"))
	gibberish := Pronounceable([]byte("xqzjkv7h2"))
	if word <= gibberish {
		t.Errorf("expected an English-like word to score higher than gibberish: word=%v gibberish=%v", word, gibberish)
	}
}

func TestCharacterCounts(t *testing.T) {
	letters, digits, symbols := CharacterCounts([]byte("aA1!"))
	if letters != 2 || digits != 1 || symbols != 1 {
		t.Errorf("CharacterCounts = (%d,%d,%d), want (2,1,1)", letters, digits, symbols)
	}
}

func TestLongestSequenceRatio(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want float64
	}{
		{"too short", []byte("a"), 0},
		{"all repeated", []byte("aaaa"), 1},
		{"ascending run", []byte("abcdef"), 1},
		{"no run", []byte("a9m2z"), 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LongestSequenceRatio(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("LongestSequenceRatio(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLooksLikeHex(t *testing.T) {
	if !LooksLikeHex([]byte("deadbeefdeadbeef")) {
		t.Error("expected hex string to match")
	}
	if LooksLikeHex([]byte("not-hex-at-all!")) {
		t.Error("expected non-hex string not to match")
	}
}

func TestLooksLikeURL(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/path":     true,
		"ftp://host.name/a/b?x=1":      true,
		"www.example.com/a":            true,
		"just some random text abc123": false,
	}
	for in, want := range cases {
		if got := LooksLikeURL([]byte(in)); got != want {
			t.Errorf("LooksLikeURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLooksLikePath(t *testing.T) {
	if !LooksLikePath([]byte("usr/local/bin")) {
		t.Error("expected path-shaped string to match")
	}
	if LooksLikePath([]byte("no-slash-here")) {
		t.Error("expected string without a slash not to match")
	}
}

func TestBase64URLDecode(t *testing.T) {
	// "hello" base64url-encoded without padding.
	decoded, err := Base64URLDecode([]byte("aGVsbG8"))
	if err != nil {
		t.Fatalf("Base64URLDecode returned error: %v", err)
	}
	if string(decoded) != "hello" {
		t.Errorf("Base64URLDecode = %q, want %q", decoded, "hello")
	}

	if _, err := Base64URLDecode([]byte("not valid base64!!")); err == nil {
		t.Error("expected an error decoding invalid base64")
	}
}
