// Package types provides the shared data model used across the mystiks codebase:
// patterns, raw matches, indicators, findings, and the final manifest.
package types

import (
	"encoding/json"
	"fmt"
)

// Pattern is a single compiled-from-source regular expression belonging to a
// finding type. Tags are not unique across patterns: many patterns may share a
// tag when they all belong to the same finding type.
type Pattern struct {
	Tag    string
	Source string
}

// FileUnit is a unit of scan work produced by the walker.
type FileUnit struct {
	Path string
	Size int64
}

// Indicator is a single labeled, signed contribution to a match's rating.
// Order is preserved and is part of the public output.
type Indicator struct {
	Label string  `json:"label"`
	Delta float64 `json:"delta"`
}

// MarshalJSON renders an Indicator as the two-element [label, delta] array the
// manifest JSON schema requires, rather than an object.
func (i Indicator) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{i.Label, i.Delta})
}

// UnmarshalJSON reverses MarshalJSON's [label, delta] array encoding.
func (i *Indicator) UnmarshalJSON(data []byte) error {
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("indicator: %w", err)
	}
	if len(arr) != 2 {
		return fmt.Errorf("indicator: expected a 2-element array, got %d elements", len(arr))
	}
	if err := json.Unmarshal(arr[0], &i.Label); err != nil {
		return fmt.Errorf("indicator label: %w", err)
	}
	if err := json.Unmarshal(arr[1], &i.Delta); err != nil {
		return fmt.Errorf("indicator delta: %w", err)
	}
	return nil
}

// RawMatch is a single regex match discovered by the matcher, before scoring.
type RawMatch struct {
	UUID         string
	FileName     string
	Pattern      string
	PatternTag   string
	Capture      []byte
	CaptureStart int64
	CaptureEnd   int64
	Context      []byte
	ContextStart int64
	ContextEnd   int64
	Groups       [][]byte
}

// Finding is a RawMatch that survived scoring: it carries the indicator
// breakdown and the resulting rating.
type Finding struct {
	RawMatch
	Indicators  []Indicator
	Rating      float64
	IdealRating float64
}

// MarshalJSON renders a Finding per the normative manifest schema: the UUID is
// omitted (it is the map key under Manifest.Findings) and the finding type
// name surfaces as patternName.
func (f Finding) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FileName     string      `json:"fileName"`
		Pattern      string      `json:"pattern"`
		PatternName  string      `json:"patternName"`
		Context      []byte      `json:"context"`
		ContextStart int64       `json:"contextStart"`
		ContextEnd   int64       `json:"contextEnd"`
		Capture      []byte      `json:"capture"`
		CaptureStart int64       `json:"captureStart"`
		CaptureEnd   int64       `json:"captureEnd"`
		Groups       [][]byte    `json:"groups"`
		Indicators   []Indicator `json:"indicators"`
		Rating       float64     `json:"rating"`
		IdealRating  float64     `json:"idealRating"`
	}{
		FileName:     f.FileName,
		Pattern:      f.Pattern,
		PatternName:  f.PatternTag,
		Context:      f.Context,
		ContextStart: f.ContextStart,
		ContextEnd:   f.ContextEnd,
		Capture:      f.Capture,
		CaptureStart: f.CaptureStart,
		CaptureEnd:   f.CaptureEnd,
		Groups:       f.Groups,
		Indicators:   f.Indicators,
		Rating:       f.Rating,
		IdealRating:  f.IdealRating,
	})
}

// UnmarshalJSON reverses MarshalJSON's field renaming and UUID omission.
// UUID is left zero-valued: it is the key under Manifest.Findings, and
// Manifest.UnmarshalJSON repopulates it from there after decoding.
func (f *Finding) UnmarshalJSON(data []byte) error {
	var aux struct {
		FileName     string      `json:"fileName"`
		Pattern      string      `json:"pattern"`
		PatternName  string      `json:"patternName"`
		Context      []byte      `json:"context"`
		ContextStart int64       `json:"contextStart"`
		ContextEnd   int64       `json:"contextEnd"`
		Capture      []byte      `json:"capture"`
		CaptureStart int64       `json:"captureStart"`
		CaptureEnd   int64       `json:"captureEnd"`
		Groups       [][]byte    `json:"groups"`
		Indicators   []Indicator `json:"indicators"`
		Rating       float64     `json:"rating"`
		IdealRating  float64     `json:"idealRating"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	f.RawMatch = RawMatch{
		FileName:     aux.FileName,
		Pattern:      aux.Pattern,
		PatternTag:   aux.PatternName,
		Capture:      aux.Capture,
		CaptureStart: aux.CaptureStart,
		CaptureEnd:   aux.CaptureEnd,
		Context:      aux.Context,
		ContextStart: aux.ContextStart,
		ContextEnd:   aux.ContextEnd,
		Groups:       aux.Groups,
	}
	f.Indicators = aux.Indicators
	f.Rating = aux.Rating
	f.IdealRating = aux.IdealRating
	return nil
}

// ScanMetadata records scan-wide counters and timing.
type ScanMetadata struct {
	Name                    string `json:"name"`
	UUID                    string `json:"uuid"`
	StartedAt               int64  `json:"startedAt"`
	CompletedAt             int64  `json:"completedAt"`
	TotalFilesScanned       int64  `json:"totalFilesScanned"`
	TotalDirectoriesScanned int64  `json:"totalDirectoriesScanned"`
	UniqueFiles             int    `json:"uniqueFiles"`
}

// Manifest is the final structured output of a scan.
type Manifest struct {
	Metadata     ScanMetadata        `json:"metadata"`
	Descriptions map[string][]string `json:"descriptions"`
	Sorting      []string            `json:"sorting"`
	Findings     map[string]Finding  `json:"findings"`
}

// UnmarshalJSON decodes a Manifest and repopulates each Finding's UUID from
// its key in the Findings map, since Finding.MarshalJSON omits it.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	type shadow Manifest
	var s shadow
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for id, f := range s.Findings {
		f.UUID = id
		s.Findings[id] = f
	}
	*m = Manifest(s)
	return nil
}
