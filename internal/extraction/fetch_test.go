package extraction

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fetcharr/internal/domain/command"
	"fetcharr/internal/models"
)

// writeFile creates a file with content in dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %q: %v", path, err)
	}
	return path
}

// TestLocateOutputFile checks output file discovery in a download dir.
func TestLocateOutputFile(t *testing.T) {
	t.Parallel()

	// Empty directory
	empty := t.TempDir()
	if _, err := locateOutputFile(empty); err == nil {
		t.Fatalf("expected error for empty directory, got nil")
	}

	// Single produced file
	single := t.TempDir()
	want := writeFile(t, single, "My_Video.mp4", "data")
	got, err := locateOutputFile(single)
	if err != nil {
		t.Fatalf("locateOutputFile() unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("path mismatch: got %q want %q", got, want)
	}

	// Partials are skipped
	partials := t.TempDir()
	writeFile(t, partials, "My_Video.mp4.part", "partial")
	want = writeFile(t, partials, "My_Video.webm", "data")
	got, err = locateOutputFile(partials)
	if err != nil {
		t.Fatalf("locateOutputFile() unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("partial should be skipped: got %q want %q", got, want)
	}

	// Video container preferred over leftover audio track
	mixed := t.TempDir()
	writeFile(t, mixed, "My_Video.m4a", "audio")
	want = writeFile(t, mixed, "My_Video.mkv", "video")
	got, err = locateOutputFile(mixed)
	if err != nil {
		t.Fatalf("locateOutputFile() unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("video container should win: got %q want %q", got, want)
	}
}

// TestVerifyVideoDownload checks file verification.
func TestVerifyVideoDownload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Non-empty file passes with its size
	path := writeFile(t, dir, "ok.mp4", "12345")
	size, err := verifyVideoDownload(path)
	if err != nil {
		t.Fatalf("verifyVideoDownload() unexpected error: %v", err)
	}
	if size != 5 {
		t.Fatalf("size mismatch: got %d want 5", size)
	}

	// Empty file fails
	emptyPath := writeFile(t, dir, "empty.mp4", "")
	if _, err := verifyVideoDownload(emptyPath); err == nil {
		t.Fatalf("expected error for empty file, got nil")
	}

	// Missing file fails
	if _, err := verifyVideoDownload(filepath.Join(dir, "missing.mp4")); err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}

	// Directory fails
	if _, err := verifyVideoDownload(dir); err == nil {
		t.Fatalf("expected error for directory path, got nil")
	}
}

// TestTail checks subprocess output trimming.
func TestTail(t *testing.T) {
	t.Parallel()

	if got := tail([]byte("one\ntwo\n")); got != "one\ntwo" {
		t.Fatalf("short output should pass through: got %q", got)
	}

	long := []byte("1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n")
	got := tail(long)
	if got != "3\n4\n5\n6\n7\n8\n9\n10" {
		t.Fatalf("long output should keep the last lines: got %q", got)
	}
}

// TestBuildFetchCommandFormats checks format selection arguments.
func TestBuildFetchCommandFormats(t *testing.T) {
	t.Parallel()

	e := New(&models.Settings{YtdlpPath: "yt-dlp"}, nil)

	hasArgPair := func(args []string, flag, value string) bool {
		for i := 0; i < len(args)-1; i++ {
			if args[i] == flag && args[i+1] == value {
				return true
			}
		}
		return false
	}

	// Explicit format IDs pass through unchanged.
	cmd := e.buildFetchCommand(context.Background(), "https://example.com/watch", "137+140", t.TempDir())
	if !hasArgPair(cmd.Args, command.Format, "137+140") {
		t.Fatalf("expected '-f 137+140' in args, got %v", cmd.Args)
	}

	// An omitted format falls back to best video plus best audio.
	cmd = e.buildFetchCommand(context.Background(), "https://example.com/watch", "", t.TempDir())
	if !hasArgPair(cmd.Args, command.Format, command.DefaultFormatSpec) {
		t.Fatalf("expected '-f %s' in args, got %v", command.DefaultFormatSpec, cmd.Args)
	}
}
