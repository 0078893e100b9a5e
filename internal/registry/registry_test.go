package registry

import (
	"testing"
)

func TestBuildReturnsOneCompiledPatternPerSource(t *testing.T) {
	mu.Lock()
	saved := types_
	types_ = nil
	mu.Unlock()
	defer func() {
		mu.Lock()
		types_ = saved
		mu.Unlock()
	}()

	Register(FindingType{
		Name:        "Test Type",
		Patterns:    []string{"a+", "b+"},
		IdealRating: 5,
	})

	compiled, byTag, err := Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(compiled) != 2 {
		t.Fatalf("expected 2 compiled patterns, got %d", len(compiled))
	}
	for _, p := range compiled {
		if p.Tag != "Test Type" {
			t.Errorf("Tag = %q, want %q", p.Tag, "Test Type")
		}
		if !p.Regexp.MatchString("aaa") && !p.Regexp.MatchString("bbb") {
			t.Errorf("compiled pattern %q matched neither test string", p.Source)
		}
	}
	if _, ok := byTag["Test Type"]; !ok {
		t.Error("expected byTag to contain the registered finding type")
	}
}

func TestBuildFailsOnInvalidPattern(t *testing.T) {
	mu.Lock()
	saved := types_
	types_ = nil
	mu.Unlock()
	defer func() {
		mu.Lock()
		types_ = saved
		mu.Unlock()
	}()

	Register(FindingType{
		Name:        "Broken Type",
		Patterns:    []string{"[unterminated"},
		IdealRating: 5,
	})

	if _, _, err := Build(); err == nil {
		t.Error("expected Build to fail on an uncompilable pattern")
	}
}
