package scorer

import "github.com/Abacus-Group-RTO/Mystiks/internal/types"

// genericIndicators implements the delimiter analysis shared by every
// finding type. captureStart/captureEnd are offsets into context, not
// absolute file offsets.
func genericIndicators(context []byte, captureStart, captureEnd int) []types.Indicator {
	indicators := []types.Indicator{{Label: "Capture matches pattern", Delta: 1}}

	var before, after *byte
	if captureStart > 0 {
		b := context[captureStart-1]
		before = &b
	}
	if captureEnd < len(context) {
		a := context[captureEnd]
		after = &a
	}

	switch {
	case before == nil && after == nil:
		indicators = append(indicators, types.Indicator{Label: "Capture is the entire file", Delta: 1})
	case before != nil && after != nil && *before == *after && isQuoteByte(*before):
		indicators = append(indicators, types.Indicator{Label: "Capture is quoted", Delta: 1})
	case before != nil && after != nil && *before == *after && isPrintableNonAlnum(*before):
		indicators = append(indicators, types.Indicator{Label: "Capture is segmented", Delta: 0.5})
	case before == nil && after != nil && isSegmentDelimiter(*after):
		indicators = append(indicators, types.Indicator{Label: "Capture appears segmented", Delta: 0.25})
	case after == nil && before != nil && isSegmentDelimiter(*before):
		indicators = append(indicators, types.Indicator{Label: "Capture appears segmented", Delta: 0.25})
	default:
		indicators = append(indicators, types.Indicator{Label: "Capture is not segmented", Delta: -0.5})
	}

	return indicators
}

func isQuoteByte(b byte) bool {
	return b == '\'' || b == '"' || b == '`'
}

func isSegmentDelimiter(b byte) bool {
	switch b {
	case ',', ':', '|', '\t', ' ':
		return true
	default:
		return false
	}
}

// isPrintableNonAlnum matches the "any other printable non-alphanumeric"
// case: printable ASCII, not a letter or digit.
func isPrintableNonAlnum(b byte) bool {
	if b < 0x20 || b > 0x7e {
		return false
	}
	if b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' {
		return false
	}
	return true
}
