package findings

import "github.com/Abacus-Group-RTO/Mystiks/internal/registry"

func init() {
	registry.Register(registry.FindingType{
		Name: "Base64 Blob",
		Description: []string{
			"Base64 is a common transport encoding for credentials: basic-auth headers, encoded API tokens, and serialized key material all tend to show up as base64 blobs in source and config files. Most base64 blobs are harmless (images, binary fixtures), so this finding leans on the generic delimiter heuristics rather than attempting to decode and classify the payload.",
		},
		Patterns:    []string{`[A-Za-z0-9+/]{8,}={0,2}`},
		IdealRating: defaultIdealRating,
		Indicators:  noIndicators,
	})
}
