package findings

import (
	"github.com/Abacus-Group-RTO/Mystiks/internal/registry"
	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
)

func init() {
	registry.Register(registry.FindingType{
		Name: "Universally Unique Identifier (UUID)",
		Description: []string{
			"A UUID, or universally unique identifier, is a 128-bit value used to uniquely identify information in computer systems. Sometimes, a UUID can be used as an API token, which is a security mechanism used to authenticate and authorize access to an API.",
			"However, it is a bad idea to expose API tokens to end users because it can lead to security vulnerabilities. If an API token is exposed, it can be used by anyone to access the API and potentially perform unauthorized actions. This can be especially dangerous if the API provides access to sensitive information or functionality. Therefore, it is important to keep API tokens secure and limit their exposure to only authorized users and systems.",
		},
		Patterns:    []string{`(?i)[a-z0-9]{8}-([0-9a-z]{4}-){3}[0-9a-z]{12}`},
		IdealRating: 3,
		Indicators:  uuidIndicators,
	})
}

// uuidIndicators inspects the 15th byte of the capture (index 14) to guess
// whether the UUID specifies a known RFC version.
func uuidIndicators(capture []byte, _, _ int, _ [][]byte) []types.Indicator {
	if len(capture) <= 14 {
		return []types.Indicator{{Label: "Value does not specify a known UUID version", Delta: -0.5}}
	}

	switch capture[14] {
	case '1', '3', '4', '5':
		return []types.Indicator{{Label: "Value specifies a known UUID version", Delta: 1}}
	default:
		return []types.Indicator{{Label: "Value does not specify a known UUID version", Delta: -0.5}}
	}
}
