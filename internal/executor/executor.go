// Package executor wires the walker's file list through the matcher and
// scorer using a fixed worker pool over a buffered job channel with a
// results channel fed by per-worker local slices.
//
// # Concurrency Model
//
//  1. WORKER GOROUTINES (fixed pool)
//     - N workers consume types.FileUnit jobs from a buffered channel
//     - Each worker matches, pre-filters, and scores independently and
//     appends surviving Findings to its own local slice
//
//  2. COLLECTOR (main goroutine)
//     - Waits for all workers, then concatenates their local slices
//
// Workers never share mutable state except through resultsCh and the atomic
// Stats counters, so there is no lock contention on the hot path.
//
// Cancellation is single-shot: calling Cancel closes a shared channel.
// Workers check it between files, never mid-file: the current file always
// finishes and its findings are kept.
package executor

import (
	"sync"
	"sync/atomic"

	"github.com/Abacus-Group-RTO/Mystiks/internal/matcher"
	"github.com/Abacus-Group-RTO/Mystiks/internal/progress"
	"github.com/Abacus-Group-RTO/Mystiks/internal/registry"
	"github.com/Abacus-Group-RTO/Mystiks/internal/scorer"
	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
	"github.com/dustin/go-humanize"
)

// Stats tracks execution progress with atomic counters, mirroring walker.Stats.
type Stats struct {
	FilesProcessed  atomic.Int64
	MatchesFound    atomic.Int64
	FindingsKept    atomic.Int64
	FilesUnreadable atomic.Int64
}

func (s *Stats) String() string {
	return "Scanned " + humanize.Comma(s.FilesProcessed.Load()) + " files, found " +
		humanize.Comma(s.FindingsKept.Load()) + " candidate secrets"
}

// Executor runs the matcher and scorer over a fixed set of files using a
// bounded worker pool.
//
// The executor is designed for single-use: create with New(), call Run() once.
type Executor struct {
	files    []types.FileUnit
	patterns []registry.CompiledPattern
	byTag    map[string]registry.FindingType

	threads      int
	contextSize  int
	includeUTF16 bool
	showProgress bool
	errCh        chan<- error

	cancel chan struct{}
	once   sync.Once

	stats *Stats
	bar   *progress.Bar
}

// New creates an Executor. threads bounds the number of files processed
// concurrently; contextSize is the number of bytes of context to retain on
// either side of a capture; includeUTF16 enables the UTF-16 decoding pass.
// errCh, if non-nil, receives non-fatal per-file errors (unreadable files).
func New(files []types.FileUnit, patterns []registry.CompiledPattern, byTag map[string]registry.FindingType, threads, contextSize int, includeUTF16, showProgress bool, errCh chan<- error) *Executor {
	return &Executor{
		files:        files,
		patterns:     patterns,
		byTag:        byTag,
		threads:      threads,
		contextSize:  contextSize,
		includeUTF16: includeUTF16,
		showProgress: showProgress,
		errCh:        errCh,
		cancel:       make(chan struct{}),
	}
}

// Cancel signals every worker to stop pulling new jobs once its current file
// is done. Safe to call multiple times or concurrently with Run.
func (e *Executor) Cancel() {
	e.once.Do(func() { close(e.cancel) })
}

// Run matches and scores every file, returning the surviving findings
// together with final counters. Findings are returned in no particular
// order; internal/manifest imposes the final sort.
func (e *Executor) Run() ([]types.Finding, *Stats) {
	e.stats = &Stats{}
	e.bar = progress.New(e.showProgress, int64(len(e.files)))
	e.bar.Describe(e.stats)

	jobCh := make(chan types.FileUnit, 1000)
	resultsCh := make(chan []types.Finding, e.threads)

	var workerWg sync.WaitGroup
	for i := 0; i < e.threads; i++ {
		workerWg.Add(1)
		go func() {
			defer workerWg.Done()
			var local []types.Finding
			for f := range jobCh {
				local = append(local, e.processFile(f)...)
				e.bar.Set(uint64(e.stats.FilesProcessed.Load()))
			}
			if len(local) > 0 {
				resultsCh <- local
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for _, f := range e.files {
			select {
			case <-e.cancel:
				return
			case jobCh <- f:
			}
		}
	}()

	go func() {
		workerWg.Wait()
		close(resultsCh)
	}()

	var findings []types.Finding
	for batch := range resultsCh {
		findings = append(findings, batch...)
	}

	e.bar.Finish(e.stats)
	return findings, e.stats
}

// processFile matches, pre-filters, and scores every pattern match in one
// file. Read failures are reported on errCh and the file is skipped without
// incrementing FilesProcessed: non-fatal, does not count as scanned.
func (e *Executor) processFile(f types.FileUnit) []types.Finding {
	raws, err := matcher.Match(f.Path, e.patterns, e.contextSize, e.includeUTF16)
	if err != nil {
		e.stats.FilesUnreadable.Add(1)
		e.sendError(err)
		return nil
	}
	e.stats.FilesProcessed.Add(1)

	var findings []types.Finding
	for _, raw := range raws {
		e.stats.MatchesFound.Add(1)

		ft, ok := e.byTag[raw.PatternTag]
		if !ok {
			continue
		}
		if scorer.PreFiltered(raw, ft) {
			continue
		}

		finding, ok := scorer.Score(raw, ft)
		if !ok {
			continue
		}
		e.stats.FindingsKept.Add(1)
		findings = append(findings, finding)
	}

	return findings
}

func (e *Executor) sendError(err error) {
	if e.errCh != nil {
		e.errCh <- err
	}
}
