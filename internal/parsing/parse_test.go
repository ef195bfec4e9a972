package parsing_test

import (
	"testing"
	"time"

	"fetcharr/internal/parsing"
)

// TestHumanReadableSize checks byte count formatting.
func TestHumanReadableSize(t *testing.T) {
	cases := map[int64]string{
		0:                      "Unknown",
		-1:                     "Unknown",
		512:                    "512.0 B",
		2048:                   "2.0 KB",
		5 * 1024 * 1024:        "5.0 MB",
		3 * 1024 * 1024 * 1024: "3.0 GB",
	}
	for in, want := range cases {
		if got := parsing.HumanReadableSize(in); got != want {
			t.Fatalf("HumanReadableSize(%d) = %q, want %q", in, got, want)
		}
	}
}

// TestSanitizeFilename checks unsafe character replacement.
func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"My Video Title":        "My_Video_Title",
		"a/b\\c:d":              "a_b_c_d",
		"Ünïcödé":               "n_c_d",
		"already-safe_name.mp4": "already-safe_name.mp4",
		"   ":                   "download",
		"...":                   "download",
	}
	for in, want := range cases {
		if got := parsing.SanitizeFilename(in); got != want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestParseUploadDate checks the canonical yyyymmdd shape and fallbacks.
func TestParseUploadDate(t *testing.T) {
	got, err := parsing.ParseUploadDate("20240115")
	if err != nil {
		t.Fatalf("unexpected error for yyyymmdd date: %v", err)
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseUploadDate = %v, want %v", got, want)
	}

	if _, err := parsing.ParseUploadDate("Jan 2, 2024"); err != nil {
		t.Fatalf("unexpected error for word date: %v", err)
	}

	if _, err := parsing.ParseUploadDate(""); err == nil {
		t.Fatalf("expected error for empty date, got nil")
	}

	if _, err := parsing.ParseUploadDate("not a date"); err == nil {
		t.Fatalf("expected error for garbage date, got nil")
	}
}
