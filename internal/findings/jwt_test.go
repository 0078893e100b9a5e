package findings

import (
	"encoding/base64"
	"strings"
	"testing"
)

func b64url(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestJWTIndicatorsWellFormedToken(t *testing.T) {
	header := `{"alg":"HS256","typ":"JWT"}`
	payload := `{"sub":"u1"}`
	token := b64url(header) + "." + b64url(payload) + "." + b64url("signaturebytes")

	indicators := jwtIndicators([]byte(token), 0, 0, nil)

	labels := make([]string, len(indicators))
	for i, ind := range indicators {
		labels[i] = ind.Label
	}
	joined := strings.Join(labels, "|")

	for _, want := range []string{
		"First segment is valid JSON",
		"First segment contains expected JSON",
		"Second segment is valid JSON",
		"Second segment contains a subject",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected indicator labels to contain %q, got %v", want, labels)
		}
	}
}

func TestJWTIndicatorsSignatureDecodesAsJSON(t *testing.T) {
	header := `{"alg":"HS256"}`
	payload := `{"sub":"u1"}`
	// A signature segment that happens to decode as valid JSON should be
	// penalized: real HMAC/RSA signatures never do.
	token := b64url(header) + "." + b64url(payload) + "." + b64url(`{"not":"a signature"}`)

	indicators := jwtIndicators([]byte(token), 0, 0, nil)

	var sawPenalty bool
	for _, ind := range indicators {
		if ind.Label == "Third segment is valid JSON" && ind.Delta == -2 {
			sawPenalty = true
		}
	}
	if !sawPenalty {
		t.Errorf("expected a -2 penalty when the signature segment decodes as JSON, got %+v", indicators)
	}
}

func TestJWTIndicatorsInvalidBase64Header(t *testing.T) {
	token := "!!!not-base64!!!." + b64url(`{"sub":"u1"}`) + "." + b64url("sig")

	indicators := jwtIndicators([]byte(token), 0, 0, nil)
	if indicators[0].Label != "First segment is not valid base64" || indicators[0].Delta != -2 {
		t.Errorf("expected first indicator to flag invalid base64, got %+v", indicators[0])
	}
}
