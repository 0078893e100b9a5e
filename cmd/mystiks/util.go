package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// parseSize parses a human-readable size string into bytes, accepting unit
// suffixes B/KB/MB/GB in binary multiples, case-insensitive.
func parseSize(s string) (int64, error) {
	bytes, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	return int64(bytes), nil
}

// parseFormats validates and normalizes the comma-separated --formats value
// against the supported set {HTML,JSON}.
func parseFormats(raw []string) (html, json bool, err error) {
	for _, f := range raw {
		switch f {
		case "HTML":
			html = true
		case "JSON":
			json = true
		default:
			return false, false, fmt.Errorf("unknown format %q (expected HTML or JSON)", f)
		}
	}
	return html, json, nil
}
