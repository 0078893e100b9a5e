package findings

import "github.com/Abacus-Group-RTO/Mystiks/internal/registry"

func init() {
	registry.Register(registry.FindingType{
		Name: "Google API Key",
		Description: []string{
			"Google API keys authorize requests against Google Cloud and Firebase services. An exposed key can be used to consume billed quota, exfiltrate data from APIs it's scoped to, or impersonate the application it was issued for.",
		},
		Patterns:    []string{`AIza[A-Za-z0-9_-]{35}`},
		IdealRating: defaultIdealRating,
		Indicators:  noIndicators,
	})
}
