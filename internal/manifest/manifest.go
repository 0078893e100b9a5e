// Package manifest builds the final scan output from a stream of surviving
// findings: deduplicates, ranks, and attaches scan metadata.
package manifest

import (
	"path/filepath"
	"sort"

	"github.com/Abacus-Group-RTO/Mystiks/internal/registry"
	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
	"github.com/google/uuid"
)

// dedupKey identifies a finding for deduplication: the highest-rated match
// per (type name, file name, capture start) wins.
type dedupKey struct {
	typeName     string
	fileName     string
	captureStart int64
}

// Options configures manifest assembly.
type Options struct {
	Name        string // manifest name; empty means derive from Root
	Root        string // scan root, used to derive Name when Name is empty
	StartedAt   int64
	CompletedAt int64

	TotalFilesScanned       int64
	TotalDirectoriesScanned int64
}

// Build deduplicates findings, computes the sorting order, and assembles the
// final Manifest.
func Build(findings []types.Finding, byTag map[string]registry.FindingType, opts Options) types.Manifest {
	best := make(map[dedupKey]types.Finding, len(findings))
	for _, f := range findings {
		key := dedupKey{typeName: f.PatternTag, fileName: f.FileName, captureStart: f.CaptureStart}
		if existing, ok := best[key]; !ok || f.Rating > existing.Rating {
			best[key] = f
		}
	}

	byUUID := make(map[string]types.Finding, len(best))
	uniqueFiles := make(map[string]struct{}, len(best))
	for _, f := range best {
		byUUID[f.UUID] = f
		uniqueFiles[f.FileName] = struct{}{}
	}

	sorting := make([]string, 0, len(byUUID))
	for uuid := range byUUID {
		sorting = append(sorting, uuid)
	}
	sort.Slice(sorting, func(i, j int) bool {
		fi, fj := byUUID[sorting[i]], byUUID[sorting[j]]
		ri, rj := normalizedRating(fi), normalizedRating(fj)
		if ri != rj {
			return ri > rj
		}
		return sorting[i] < sorting[j]
	})

	name := opts.Name
	if name == "" {
		name = filepath.Base(filepath.Clean(opts.Root))
	}

	descriptions := make(map[string][]string, len(byTag))
	for typeName, ft := range byTag {
		descriptions[typeName] = ft.Description
	}

	return types.Manifest{
		Metadata: types.ScanMetadata{
			Name:                    name,
			UUID:                    uuid.NewString(),
			StartedAt:               opts.StartedAt,
			CompletedAt:             opts.CompletedAt,
			TotalFilesScanned:       opts.TotalFilesScanned,
			TotalDirectoriesScanned: opts.TotalDirectoriesScanned,
			UniqueFiles:             len(uniqueFiles),
		},
		Descriptions: descriptions,
		Sorting:      sorting,
		Findings:     byUUID,
	}
}

// normalizedRating is the rating/idealRating ratio used for ranking. A zero
// or unset ideal rating would make every finding of that type incomparable;
// the registry always supplies a positive ideal rating so this never divides
// by zero in practice.
func normalizedRating(f types.Finding) float64 {
	if f.IdealRating == 0 {
		return f.Rating
	}
	return f.Rating / f.IdealRating
}
