// Package walker provides parallel recursive filesystem traversal for the
// scanner's file-discovery stage.
//
// # Architecture Overview
//
// The walker uses a concurrent fan-out/fan-in architecture: one goroutine
// per discovered directory, bounded by a semaphore, feeding a single
// collector goroutine over a buffered channel.
//
// # Concurrency Model
//
//  1. WALKER GOROUTINES (fan-out)
//     - One goroutine spawned per directory discovered
//     - Concurrency limited by a semaphore (dirSem)
//     - Each walker: acquires semaphore -> lists directory -> releases
//     semaphore -> spawns child walkers
//
//  2. COLLECTOR GOROUTINE (fan-in)
//     - Single goroutine that drains resultCh into a slice
//     - Runs until resultCh is closed
//
//  3. MAIN GOROUTINE (orchestrator)
//     - Initializes channels and spawns the initial walker
//     - Waits for all walkers, then closes resultCh, then waits for the
//     collector
//
// Symbolic links are never followed. Files above the size limit and
// unreadable entries are skipped without aborting the scan and without
// incrementing totalFilesScanned.
package walker

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/Abacus-Group-RTO/Mystiks/internal/progress"
	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
	"github.com/dustin/go-humanize"
)

// Stats tracks walk progress using atomic counters for lock-free updates from
// any walker goroutine. FilesScanned and DirectoriesScanned back
// types.ScanMetadata.TotalFilesScanned/TotalDirectoriesScanned directly: they
// count only directories entered and files fully emitted, not files skipped
// for size or unreadability.
type Stats struct {
	DirectoriesScanned atomic.Int64
	FilesScanned       atomic.Int64
	BytesScanned       atomic.Int64
}

func (s *Stats) String() string {
	return "Found " + humanize.Comma(s.FilesScanned.Load()) + " files (" +
		humanize.IBytes(uint64(s.BytesScanned.Load())) + ") in " +
		humanize.Comma(s.DirectoriesScanned.Load()) + " directories"
}

// semaphore is a counting semaphore backed by a buffered channel.
type semaphore chan struct{}

func newSemaphore(n int) semaphore { return make(semaphore, n) }
func (s semaphore) acquire()       { s <- struct{}{} }
func (s semaphore) release()       { <-s }

// Walker discovers files under a root path matching size and glob criteria.
//
// The walker is designed for single-use: create with New(), call Run() once.
type Walker struct {
	root         string
	maxFileSize  int64
	excludes     []string
	inclusions   []string
	concurrency  int
	showProgress bool
	errCh        chan<- error

	dirSem   semaphore
	dirWg    sync.WaitGroup
	resultCh chan types.FileUnit
	stats    *Stats
	bar      *progress.Bar
}

// New creates a Walker. concurrency bounds the number of directories read at
// once (not the number of pending goroutines, which is bounded by directory
// count). errCh, if non-nil, receives non-fatal per-entry errors.
func New(root string, maxFileSize int64, excludes, inclusions []string, concurrency int, showProgress bool, errCh chan<- error) *Walker {
	return &Walker{
		root:         root,
		maxFileSize:  maxFileSize,
		excludes:     excludes,
		inclusions:   inclusions,
		concurrency:  concurrency,
		showProgress: showProgress,
		errCh:        errCh,
	}
}

// Run executes the walk and returns discovered files together with final
// counters.
func (w *Walker) Run() ([]types.FileUnit, *Stats) {
	w.dirSem = newSemaphore(w.concurrency)
	w.stats = &Stats{}
	w.bar = progress.New(w.showProgress, -1)
	w.bar.Describe(w.stats)
	w.resultCh = make(chan types.FileUnit, 1000)

	var results []types.FileUnit
	var collectorWg sync.WaitGroup
	collectorWg.Add(1)
	go func() {
		defer collectorWg.Done()
		for f := range w.resultCh {
			results = append(results, f)
		}
	}()

	absRoot, err := filepath.Abs(w.root)
	if err != nil {
		w.sendError(err)
	} else {
		w.walkDirectory(absRoot)
	}

	w.dirWg.Wait()
	close(w.resultCh)
	collectorWg.Wait()

	w.bar.Finish(w.stats)
	return results, w.stats
}

// walkDirectory spawns a goroutine that reads one directory and recursively
// spawns children in a breadth-controlled depth-first traversal: the
// semaphore limits concurrent directory reads, not the total number of
// pending goroutines.
func (w *Walker) walkDirectory(dir string) {
	w.dirWg.Add(1)
	go func() {
		defer w.dirWg.Done()

		w.dirSem.acquire()
		defer w.dirSem.release()

		files, subdirs, err := w.listDirectory(dir)
		if err != nil {
			w.sendError(err)
			return
		}
		w.stats.DirectoriesScanned.Add(1)

		for _, f := range files {
			if f.Size > w.maxFileSize {
				continue
			}
			if !w.included(f.Path) || w.excluded(f.Path) {
				continue
			}
			w.resultCh <- f
			w.stats.FilesScanned.Add(1)
			w.stats.BytesScanned.Add(f.Size)
		}
		w.bar.Describe(w.stats)

		for _, sub := range subdirs {
			w.walkDirectory(sub)
		}
	}()
}

// listDirectory reads a single directory, returning regular files and
// subdirectories. Symlinks, devices, sockets, etc. are skipped. Batched
// ReadDir bounds memory usage for directories with very large fan-out.
func (w *Walker) listDirectory(dirPath string) (files []types.FileUnit, subdirs []string, err error) {
	dir, err := os.Open(dirPath)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = dir.Close() }()

	const batchSize = 1000
	for {
		entries, err := dir.ReadDir(batchSize)
		if len(entries) == 0 {
			if err != nil && err != io.EOF {
				return files, subdirs, err
			}
			break
		}

		for _, entry := range entries {
			fullPath := filepath.Join(dirPath, entry.Name())

			if entry.IsDir() {
				subdirs = append(subdirs, fullPath)
				continue
			}

			// Symlinks are never followed: only regular files are emitted.
			if !entry.Type().IsRegular() {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				// Race between ReadDir and Info, or a permission error on
				// stat: skip, don't abort the scan.
				continue
			}

			files = append(files, types.FileUnit{Path: fullPath, Size: info.Size()})
		}
	}

	return files, subdirs, nil
}

func (w *Walker) sendError(err error) {
	if w.errCh != nil {
		w.errCh <- err
	}
}

func (w *Walker) excluded(path string) bool {
	return matchesAny(w.excludes, path)
}

func (w *Walker) included(path string) bool {
	if len(w.inclusions) == 0 {
		return true
	}
	return matchesAny(w.inclusions, path)
}

func matchesAny(patterns []string, path string) bool {
	if len(patterns) == 0 {
		return false
	}
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, path); matched {
			return true
		}
	}
	return false
}
