package main

import "testing"

func TestParseSizeValid(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"500", 500},
		{"1KB", 1000},
		{"1KiB", 1024},
		{"500MB", 500000000},
		{"1GB", 1000000000},
	}

	for _, tt := range tests {
		got, err := parseSize(tt.input)
		if err != nil {
			t.Errorf("parseSize(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSize(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseSizeInvalid(t *testing.T) {
	if _, err := parseSize("not-a-size"); err == nil {
		t.Error("expected an error parsing an invalid size string")
	}
}

func TestParseFormats(t *testing.T) {
	html, json, err := parseFormats([]string{"HTML", "JSON"})
	if err != nil {
		t.Fatalf("parseFormats returned error: %v", err)
	}
	if !html || !json {
		t.Errorf("expected both html and json to be true, got html=%v json=%v", html, json)
	}

	html, json, err = parseFormats([]string{"JSON"})
	if err != nil {
		t.Fatalf("parseFormats returned error: %v", err)
	}
	if html || !json {
		t.Errorf("expected html=false json=true, got html=%v json=%v", html, json)
	}

	if _, _, err := parseFormats([]string{"XML"}); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
