package findings

import (
	"bytes"
	"encoding/json"

	"github.com/Abacus-Group-RTO/Mystiks/internal/heuristics"
	"github.com/Abacus-Group-RTO/Mystiks/internal/registry"
	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
)

func init() {
	registry.Register(registry.FindingType{
		Name: "JSON Web Token (JWT)",
		Description: []string{
			"A JSON Web Token (JWT) is a widely used authentication mechanism that securely transmits information between parties. However, exposing a static JWT in a public-facing application can pose a significant security risk. If a malicious actor gains access to a static JWT, they could potentially impersonate an administrative user or service account, giving them unauthorized access to sensitive information or the ability to perform unauthorized actions on behalf of the user. Therefore, it is crucial to keep JWTs secure and refresh them regularly to minimize the impact of a potential security breach.",
		},
		Patterns:    []string{`[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`},
		IdealRating: 6,
		Indicators:  jwtIndicators,
	})
}

// jwtIndicators base64url-decodes each of the three dot-separated segments
// and attempts to JSON-decode them, weighting each segment's validity.
func jwtIndicators(capture []byte, _, _ int, _ [][]byte) []types.Indicator {
	segments := bytes.SplitN(capture, []byte{'.'}, 3)
	for len(segments) < 3 {
		segments = append(segments, nil)
	}

	var indicators []types.Indicator
	isEncrypted := false

	// Segment 1: header.
	header, decodeErr := heuristics.Base64URLDecode(segments[0])
	if decodeErr != nil {
		indicators = append(indicators, types.Indicator{Label: "First segment is not valid base64", Delta: -2})
	} else {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(header, &obj); err != nil {
			if looksLikeJSON(header) {
				indicators = append(indicators, types.Indicator{Label: "First segment is not a valid JSON object", Delta: -1})
			} else {
				indicators = append(indicators, types.Indicator{Label: "First segment is not valid JSON", Delta: -2})
			}
		} else {
			indicators = append(indicators, types.Indicator{Label: "First segment is valid JSON", Delta: 1})
			if _, ok := obj["enc"]; ok {
				isEncrypted = true
			}
			if _, ok := obj["alg"]; ok {
				indicators = append(indicators, types.Indicator{Label: "First segment contains expected JSON", Delta: 1})
			}
		}
	}

	// Segment 2: payload.
	payload, decodeErr := heuristics.Base64URLDecode(segments[1])
	if decodeErr != nil {
		if isEncrypted {
			indicators = append(indicators, types.Indicator{Label: "Second segment appears to be encrypted", Delta: 1})
		} else {
			indicators = append(indicators, types.Indicator{Label: "Second segment is not valid base64", Delta: -1})
		}
	} else {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(payload, &obj); err != nil {
			if isEncrypted {
				indicators = append(indicators, types.Indicator{Label: "Second segment appears to be encrypted", Delta: 1})
			} else if looksLikeJSON(payload) {
				indicators = append(indicators, types.Indicator{Label: "Second segment is not a valid JSON object", Delta: -1})
			} else {
				indicators = append(indicators, types.Indicator{Label: "Second segment is not valid JSON", Delta: -1})
			}
		} else {
			indicators = append(indicators, types.Indicator{Label: "Second segment is valid JSON", Delta: 1})
			if _, ok := obj["sub"]; ok {
				indicators = append(indicators, types.Indicator{Label: "Second segment contains a subject", Delta: 1})
			}
		}
	}

	// Segment 3: signature. A signature should not decode as JSON.
	sig, decodeErr := heuristics.Base64URLDecode(segments[2])
	if decodeErr != nil {
		indicators = append(indicators, types.Indicator{Label: "Third segment is not valid base64", Delta: 0.5})
	} else {
		var anything interface{}
		if err := json.Unmarshal(sig, &anything); err != nil {
			indicators = append(indicators, types.Indicator{Label: "Third segment is not valid JSON", Delta: 0.5})
		} else {
			indicators = append(indicators, types.Indicator{Label: "Third segment is valid JSON", Delta: -2})
		}
	}

	return indicators
}

// looksLikeJSON reports whether data parses as *some* JSON value, even if
// not an object - used to distinguish "valid JSON, wrong shape" (-1) from
// "not JSON at all" (-2) for segments 1 and 2.
func looksLikeJSON(data []byte) bool {
	var v interface{}
	return json.Unmarshal(data, &v) == nil
}
