// Package report renders a Manifest to the output formats described in spec
// §6: a pretty-printed JSON file, and/or a static HTML asset tree with the
// manifest embedded as a script.
package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
)

//go:embed assets
var assets embed.FS

const assetsRoot = "assets"

// WriteJSON writes the full manifest, pretty-printed, to
// <outputDir>/report.json.
func WriteJSON(outputDir string, m types.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(outputDir, "report.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteHTML copies the embedded static asset tree into outputDir and writes
// scripts/data.js containing the compact manifest as a global. Asset-copy
// failures are tolerated best-effort; a failure to write data.js itself is
// returned since without it the page is empty.
func WriteHTML(outputDir string, m types.Manifest) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	_ = fs.WalkDir(assets, assetsRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // best-effort: skip entries we can't stat
		}

		rel, relErr := filepath.Rel(assetsRoot, path)
		if relErr != nil {
			return nil
		}
		dest := filepath.Join(outputDir, rel)

		if d.IsDir() {
			_ = os.MkdirAll(dest, 0o755)
			return nil
		}

		data, readErr := assets.ReadFile(path)
		if readErr != nil {
			return nil
		}
		_ = os.MkdirAll(filepath.Dir(dest), 0o755)
		_ = os.WriteFile(dest, data, 0o644)
		return nil
	})

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	scriptsDir := filepath.Join(outputDir, "scripts")
	if err := os.MkdirAll(scriptsDir, 0o755); err != nil {
		return fmt.Errorf("create scripts directory: %w", err)
	}

	dataJS := append([]byte("window.manifest="), data...)
	dataJS = append(dataJS, ';')

	path := filepath.Join(scriptsDir, "data.js")
	if err := os.WriteFile(path, dataJS, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
