// Package matcher runs the compiled pattern set against a file's raw bytes
// and, optionally, a UTF-16 expansion of those bytes, producing RawMatches
// with byte-accurate context windows.
package matcher

import (
	"fmt"
	"os"

	"github.com/Abacus-Group-RTO/Mystiks/internal/registry"
	"github.com/Abacus-Group-RTO/Mystiks/internal/scanerr"
	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
	"github.com/google/uuid"
)

// Match reads path fully into memory and runs every compiled pattern against
// it (and, if includeUTF16 is set, against a UTF-16 expansion of the same
// bytes), returning one RawMatch per distinct (pattern_tag, capture_start,
// capture_end).
//
// A read failure discards any partial result: the caller must not count the
// file as scanned.
func Match(path string, patterns []registry.CompiledPattern, desiredContext int, includeUTF16 bool) ([]types.RawMatch, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", path, scanerr.ErrFileUnreadable, err)
	}

	var matches []types.RawMatch
	for _, p := range patterns {
		matches = append(matches, matchBuffer(buf, buf, path, p, desiredContext, 1)...)
	}

	if includeUTF16 {
		for _, bigEndian := range []bool{false, true} {
			decoded := decodeUTF16(buf, bigEndian)
			if decoded == nil {
				continue
			}
			for _, p := range patterns {
				matches = append(matches, matchBuffer(decoded, buf, path, p, desiredContext, 2)...)
			}
		}
	}

	return matches, nil
}

// matchBuffer runs one compiled pattern against searchBuf (either the raw
// file bytes, or a UTF-16 decoded projection of them) and builds RawMatches
// whose offsets are expressed in fileBuf's coordinate space. scale converts a
// searchBuf offset to a fileBuf offset: 1 for raw bytes, 2 for a UTF-16
// code-unit projection, so a decoded offset of i always lands on file byte
// 2*i.
func matchBuffer(searchBuf, fileBuf []byte, path string, p registry.CompiledPattern, desiredContext, scale int) []types.RawMatch {
	idxs := p.Regexp.FindAllSubmatchIndex(searchBuf, -1)
	if idxs == nil {
		return nil
	}

	fileSize := int64(len(fileBuf))
	var out []types.RawMatch

	for _, idx := range idxs {
		captureStart := int64(idx[0] * scale)
		captureEnd := int64(idx[1] * scale)
		if captureStart < 0 || captureEnd > fileSize {
			continue
		}

		contextStart := captureStart - int64(desiredContext)
		if contextStart < 0 {
			contextStart = 0
		}
		contextEnd := captureEnd + int64(desiredContext)
		if contextEnd > fileSize {
			contextEnd = fileSize
		}

		groups := make([][]byte, 0, len(idx)/2-1)
		for i := 2; i < len(idx); i += 2 {
			gs, ge := idx[i], idx[i+1]
			if gs < 0 || ge < 0 {
				groups = append(groups, []byte{})
				continue
			}
			gStart, gEnd := int64(gs*scale), int64(ge*scale)
			groups = append(groups, cloneBytes(fileBuf[gStart:gEnd]))
		}

		out = append(out, types.RawMatch{
			UUID:         uuid.NewString(),
			FileName:     path,
			Pattern:      p.Source,
			PatternTag:   p.Tag,
			Capture:      cloneBytes(fileBuf[captureStart:captureEnd]),
			CaptureStart: captureStart,
			CaptureEnd:   captureEnd,
			Context:      cloneBytes(fileBuf[contextStart:contextEnd]),
			ContextStart: contextStart,
			ContextEnd:   contextEnd,
			Groups:       groups,
		})
	}

	return out
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// decodeUTF16 projects buf, interpreted as a sequence of 2-byte UTF-16 code
// units, down to one output byte per code unit: the ASCII-range low byte when
// the other byte of the pair is zero, or a 0x00 placeholder otherwise. This
// keeps the decoded buffer in lockstep with the original (decoded index i <->
// original bytes [2i, 2i+2)), which is what makes the offset-translation
// formula start = 2*decoded_start exact rather than approximate. Returns nil
// if buf is too short to contain any code units.
func decodeUTF16(buf []byte, bigEndian bool) []byte {
	n := len(buf) / 2
	if n == 0 {
		return nil
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var hi, lo byte
		if bigEndian {
			hi, lo = buf[2*i], buf[2*i+1]
		} else {
			lo, hi = buf[2*i], buf[2*i+1]
		}
		if hi == 0 {
			out[i] = lo
		} else {
			out[i] = 0x00
		}
	}
	return out
}
