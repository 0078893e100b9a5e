// Package scanerr defines the error kinds used across mystiks, so callers can
// distinguish a fatal startup error from a per-file condition that the scan is
// expected to shrug off.
package scanerr

import "errors"

// Sentinel errors for each error kind. Wrap with fmt.Errorf("...: %w", Kind)
// at the point of detection; callers compare with errors.Is.
var (
	// ErrArgumentInvalid means a CLI flag failed validation. Fatal: aborts before
	// any scanning begins.
	ErrArgumentInvalid = errors.New("argument invalid")

	// ErrPathMissing means the scan root does not exist. Fatal.
	ErrPathMissing = errors.New("path missing")

	// ErrFileUnreadable means a file could not be opened or read (permission,
	// race, I/O error). Non-fatal: the walker/matcher skip the file and do not
	// increment totalFilesScanned.
	ErrFileUnreadable = errors.New("file unreadable")

	// ErrFileTooLarge means a file exceeds the configured size limit. Non-fatal,
	// same accounting as ErrFileUnreadable.
	ErrFileTooLarge = errors.New("file too large")

	// ErrRegexCompileFailed means a finding type's pattern failed to compile.
	// Fatal: aborts before any scanning begins, since the registry is built once
	// at startup and shared read-only for the rest of the run.
	ErrRegexCompileFailed = errors.New("regex compile failed")

	// ErrDecodeFailed is a scorer-internal signal, not a propagated error: a
	// scorer that hits it folds it into a negative indicator and keeps scoring.
	ErrDecodeFailed = errors.New("decode failed")
)
