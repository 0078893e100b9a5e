package walker

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/Abacus-Group-RTO/Mystiks/internal/types"
)

func createFile(t *testing.T, path string, size int64) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent directory for %s: %v", path, err)
	}
	data := make([]byte, size)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func pathsOf(files []types.FileUnit) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	sort.Strings(out)
	return out
}

func TestWalkerFindsNestedFiles(t *testing.T) {
	root := t.TempDir()
	createFile(t, filepath.Join(root, "a.txt"), 10)
	createFile(t, filepath.Join(root, "sub", "b.txt"), 20)

	files, stats := New(root, 1<<20, nil, nil, 4, false, nil).Run()

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), pathsOf(files))
	}
	if stats.FilesScanned.Load() != 2 {
		t.Errorf("FilesScanned = %d, want 2", stats.FilesScanned.Load())
	}
	if stats.DirectoriesScanned.Load() != 2 {
		t.Errorf("DirectoriesScanned = %d, want 2 (root + sub)", stats.DirectoriesScanned.Load())
	}
}

func TestWalkerSkipsOversizeFilesWithoutCountingThem(t *testing.T) {
	root := t.TempDir()
	createFile(t, filepath.Join(root, "small.txt"), 10)
	createFile(t, filepath.Join(root, "big.txt"), 100)

	files, stats := New(root, 50, nil, nil, 2, false, nil).Run()

	if len(files) != 1 || files[0].Path != filepath.Join(root, "small.txt") {
		t.Fatalf("expected only small.txt, got %v", pathsOf(files))
	}
	if stats.FilesScanned.Load() != 1 {
		t.Errorf("FilesScanned = %d, want 1 (oversize file must not be counted)", stats.FilesScanned.Load())
	}
}

func TestWalkerFileExactlyAtLimitIsScanned(t *testing.T) {
	root := t.TempDir()
	createFile(t, filepath.Join(root, "exact.txt"), 50)

	files, stats := New(root, 50, nil, nil, 2, false, nil).Run()

	if len(files) != 1 {
		t.Fatalf("expected a file of exactly max_file_size to be scanned, got %d files", len(files))
	}
	if stats.FilesScanned.Load() != 1 {
		t.Errorf("FilesScanned = %d, want 1", stats.FilesScanned.Load())
	}
}

func TestWalkerExcludeGlob(t *testing.T) {
	root := t.TempDir()
	createFile(t, filepath.Join(root, "keep.txt"), 10)
	createFile(t, filepath.Join(root, "skip.log"), 10)

	files, _ := New(root, 1<<20, []string{"*.log"}, nil, 2, false, nil).Run()

	if len(files) != 1 || filepath.Base(files[0].Path) != "keep.txt" {
		t.Fatalf("expected only keep.txt after excluding *.log, got %v", pathsOf(files))
	}
}

func TestWalkerInclusionGlob(t *testing.T) {
	root := t.TempDir()
	createFile(t, filepath.Join(root, "a.go"), 10)
	createFile(t, filepath.Join(root, "b.txt"), 10)

	files, _ := New(root, 1<<20, nil, []string{"*.go"}, 2, false, nil).Run()

	if len(files) != 1 || filepath.Base(files[0].Path) != "a.go" {
		t.Fatalf("expected only a.go when including *.go, got %v", pathsOf(files))
	}
}

func TestWalkerDoesNotFollowSymlinks(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real.txt")
	createFile(t, target, 10)

	link := filepath.Join(root, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported in this environment: %v", err)
	}

	files, _ := New(root, 1<<20, nil, nil, 2, false, nil).Run()

	if len(files) != 1 || filepath.Base(files[0].Path) != "real.txt" {
		t.Fatalf("expected only the real file, symlinks must not be followed, got %v", pathsOf(files))
	}
}

func TestWalkerEmptyDirectoryProducesNoFiles(t *testing.T) {
	root := t.TempDir()

	files, stats := New(root, 1<<20, nil, nil, 2, false, nil).Run()

	if len(files) != 0 {
		t.Errorf("expected no files in an empty directory, got %d", len(files))
	}
	if stats.DirectoriesScanned.Load() != 1 {
		t.Errorf("DirectoriesScanned = %d, want 1 (the root itself)", stats.DirectoriesScanned.Load())
	}
}
