package manifest

import (
	"testing"

	"github.com/Abacus-Group-RTO/Mystiks/internal/registry"
	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
)

func finding(uuid, typeName, fileName string, captureStart int64, rating, idealRating float64) types.Finding {
	return types.Finding{
		RawMatch: types.RawMatch{
			UUID:         uuid,
			PatternTag:   typeName,
			FileName:     fileName,
			CaptureStart: captureStart,
		},
		Rating:      rating,
		IdealRating: idealRating,
	}
}

func TestBuildDedupesByTypeFileAndCaptureStart(t *testing.T) {
	findings := []types.Finding{
		finding("u1", "AWS", "a.txt", 10, 2, 5),
		finding("u2", "AWS", "a.txt", 10, 4, 5), // same key, higher rating: should win
	}

	m := Build(findings, map[string]registry.FindingType{}, Options{Root: "/scan/root"})

	if len(m.Findings) != 1 {
		t.Fatalf("expected 1 finding after dedup, got %d", len(m.Findings))
	}
	kept, ok := m.Findings["u2"]
	if !ok {
		t.Fatalf("expected the higher-rated finding (u2) to survive dedup, findings=%+v", m.Findings)
	}
	if kept.Rating != 4 {
		t.Errorf("Rating = %v, want 4", kept.Rating)
	}
}

func TestBuildSortingOrdersByNormalizedRatingDescending(t *testing.T) {
	findings := []types.Finding{
		finding("u1", "TypeA", "a.txt", 0, 2, 5),  // normalized 0.4
		finding("u2", "TypeB", "b.txt", 0, 9, 10), // normalized 0.9
		finding("u3", "TypeC", "c.txt", 0, 1, 2),  // normalized 0.5
	}

	m := Build(findings, map[string]registry.FindingType{}, Options{Root: "/scan/root"})

	want := []string{"u2", "u3", "u1"}
	if len(m.Sorting) != len(want) {
		t.Fatalf("Sorting = %v, want %v", m.Sorting, want)
	}
	for i, uuid := range want {
		if m.Sorting[i] != uuid {
			t.Errorf("Sorting[%d] = %q, want %q", i, m.Sorting[i], uuid)
		}
	}
}

func TestBuildSortingTieBreaksByUUID(t *testing.T) {
	findings := []types.Finding{
		finding("zzz", "TypeA", "a.txt", 0, 1, 1),
		finding("aaa", "TypeB", "b.txt", 0, 1, 1),
	}

	m := Build(findings, map[string]registry.FindingType{}, Options{Root: "/scan/root"})

	if m.Sorting[0] != "aaa" || m.Sorting[1] != "zzz" {
		t.Errorf("Sorting = %v, want [aaa zzz] (stable tie-break by uuid)", m.Sorting)
	}
}

func TestBuildUniqueFilesCountsDistinctFileNames(t *testing.T) {
	findings := []types.Finding{
		finding("u1", "TypeA", "a.txt", 0, 1, 1),
		finding("u2", "TypeA", "a.txt", 50, 1, 1),
		finding("u3", "TypeB", "b.txt", 0, 1, 1),
	}

	m := Build(findings, map[string]registry.FindingType{}, Options{Root: "/scan/root"})

	if m.Metadata.UniqueFiles != 2 {
		t.Errorf("UniqueFiles = %d, want 2", m.Metadata.UniqueFiles)
	}
}

func TestBuildNameDefaultsToRootLeaf(t *testing.T) {
	m := Build(nil, map[string]registry.FindingType{}, Options{Root: "/scan/project-root"})
	if m.Metadata.Name != "project-root" {
		t.Errorf("Name = %q, want %q", m.Metadata.Name, "project-root")
	}

	m = Build(nil, map[string]registry.FindingType{}, Options{Root: "/scan/project-root", Name: "custom"})
	if m.Metadata.Name != "custom" {
		t.Errorf("Name = %q, want %q", m.Metadata.Name, "custom")
	}
}

func TestBuildEmptyFindingsProducesEmptyManifest(t *testing.T) {
	m := Build(nil, map[string]registry.FindingType{}, Options{Root: "/scan/root"})
	if len(m.Sorting) != 0 || len(m.Findings) != 0 || m.Metadata.UniqueFiles != 0 {
		t.Errorf("expected an empty manifest, got %+v", m.Metadata)
	}
}
