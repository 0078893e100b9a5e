package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Abacus-Group-RTO/Mystiks/internal/executor"
	"github.com/Abacus-Group-RTO/Mystiks/internal/manifest"
	"github.com/Abacus-Group-RTO/Mystiks/internal/registry"
	"github.com/Abacus-Group-RTO/Mystiks/internal/report"
	"github.com/Abacus-Group-RTO/Mystiks/internal/scanerr"
	"github.com/Abacus-Group-RTO/Mystiks/internal/walker"

	// Registering every built-in finding type is a side effect of importing
	// the package for its init() calls: the registry is a static table, not
	// a filesystem-driven plugin scan.
	_ "github.com/Abacus-Group-RTO/Mystiks/internal/findings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// scanOptions holds CLI flags for the scan command.
type scanOptions struct {
	name       string
	output     string
	limitStr   string
	threads    int
	context    int
	formats    []string
	utf16      bool
	excludes   []string
	inclusions []string
	noProgress bool
}

func newScanCmd() *cobra.Command {
	opts := &scanOptions{
		limitStr: "500MB",
		threads:  runtime.NumCPU(),
		context:  128,
		formats:  []string{"HTML", "JSON"},
	}

	cmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Recursively scan a directory for credentials and secrets",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScan(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Manifest name (default: leaf of path)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default: Mystik-<manifest uuid>)")
	cmd.Flags().StringVarP(&opts.limitStr, "limit", "l", opts.limitStr, "Max scannable file size (e.g. 500MB, 1GB)")
	cmd.Flags().IntVarP(&opts.threads, "threads", "t", opts.threads, "Worker thread count")
	cmd.Flags().IntVarP(&opts.context, "context", "c", opts.context, "Context bytes retained on each side of a capture")
	cmd.Flags().StringSliceVarP(&opts.formats, "formats", "f", opts.formats, "Comma-separated output formats: HTML,JSON")
	cmd.Flags().BoolVarP(&opts.utf16, "utf16", "u", false, "Also scan a UTF-16 decoding of each file")
	cmd.Flags().StringSliceVarP(&opts.excludes, "exclude", "e", nil, "Glob patterns to exclude")
	cmd.Flags().StringSliceVarP(&opts.inclusions, "include", "i", nil, "Glob patterns to include (default: all)")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "Disable progress output")

	return cmd
}

// runScan executes the full pipeline: walk -> execute (match + score) ->
// build manifest -> write reports.
func runScan(path string, opts *scanOptions) error {
	info, err := os.Stat(path)
	if err != nil {
		printFail("path %q does not exist or is not accessible: %v", path, err)
		return fmt.Errorf("%w: %s", scanerr.ErrPathMissing, path)
	}
	if !info.IsDir() {
		printFail("path %q is not a directory", path)
		return fmt.Errorf("%w: %s", scanerr.ErrPathMissing, path)
	}

	limit, err := parseSize(opts.limitStr)
	if err != nil {
		printFail("invalid --limit %q: %v", opts.limitStr, err)
		return fmt.Errorf("%w: %v", scanerr.ErrArgumentInvalid, err)
	}

	htmlFmt, jsonFmt, err := parseFormats(opts.formats)
	if err != nil {
		printFail("invalid --formats: %v", err)
		return fmt.Errorf("%w: %v", scanerr.ErrArgumentInvalid, err)
	}
	if !htmlFmt && !jsonFmt {
		printFail("--formats must name at least one of HTML, JSON")
		return fmt.Errorf("%w: empty --formats", scanerr.ErrArgumentInvalid)
	}

	if opts.threads < 1 {
		printFail("--threads must be at least 1")
		return fmt.Errorf("%w: --threads", scanerr.ErrArgumentInvalid)
	}

	patterns, byTag, err := registry.Build()
	if err != nil {
		printFail("%v", err)
		return err
	}

	showProgress := !opts.noProgress
	errCh := make(chan error, 100)
	go drainErrors(errCh)
	defer close(errCh)

	startedAt := time.Now()

	printInfo("walking %s", path)
	files, walkStats := walker.New(path, limit, opts.excludes, opts.inclusions, opts.threads, showProgress, errCh).Run()

	printInfo("scanning %d files with %d workers", len(files), opts.threads)
	exec := executor.New(files, patterns, byTag, opts.threads, opts.context, opts.utf16, showProgress, errCh)
	findings, _ := exec.Run()

	completedAt := time.Now()

	m := manifest.Build(findings, byTag, manifest.Options{
		Name:                    opts.name,
		Root:                    path,
		StartedAt:               startedAt.Unix(),
		CompletedAt:             completedAt.Unix(),
		TotalFilesScanned:       walkStats.FilesScanned.Load(),
		TotalDirectoriesScanned: walkStats.DirectoriesScanned.Load(),
	})

	printSuccess("found %d candidate secrets across %d files", len(m.Sorting), m.Metadata.UniqueFiles)

	outputDir := opts.output
	if outputDir == "" {
		outputDir = "Mystik-" + m.Metadata.UUID
	}

	if jsonFmt {
		if err := report.WriteJSON(outputDir, m); err != nil {
			printFail("writing JSON report: %v", err)
			return err
		}
		printInfo("wrote %s", filepath.Join(outputDir, "report.json"))
	}

	if htmlFmt {
		if err := report.WriteHTML(outputDir, m); err != nil {
			printFail("writing HTML report: %v", err)
			return err
		}
		printInfo("wrote %s", outputDir)
	}

	return nil
}

// drainErrors consumes non-fatal errors from the shared channel and writes
// them to stderr, clearing the progress bar line first.
func drainErrors(errs <-chan error) {
	for err := range errs {
		fmt.Fprintf(os.Stderr, "\r\033[K[-] %v\n", err)
	}
}

var (
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
)

func printInfo(format string, args ...interface{}) {
	infoColor.Fprintf(os.Stdout, "[i] "+format+"\n", args...)
}

func printSuccess(format string, args ...interface{}) {
	successColor.Fprintf(os.Stdout, "[+] "+format+"\n", args...)
}

func printFail(format string, args ...interface{}) {
	failColor.Fprintf(os.Stderr, "[-] "+format+"\n", args...)
}
