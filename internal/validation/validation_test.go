package validation_test

import (
	"path/filepath"
	"testing"

	"fetcharr/internal/validation"
)

// TestValidateRequestURL checks URL presence, scheme, and host handling.
func TestValidateRequestURL(t *testing.T) {
	// Valid URLs pass through normalized
	got, err := validation.ValidateRequestURL("  https://example.com/watch?v=abc123  ")
	if err != nil {
		t.Fatalf("expected valid URL to pass, got: %v", err)
	}
	if got != "https://example.com/watch?v=abc123" {
		t.Fatalf("unexpected normalized URL: %q", got)
	}

	// Empty input
	if _, err := validation.ValidateRequestURL(""); err == nil {
		t.Fatalf("expected error for empty URL, got nil")
	}

	// Whitespace only
	if _, err := validation.ValidateRequestURL("   "); err == nil {
		t.Fatalf("expected error for whitespace URL, got nil")
	}

	// Missing scheme
	if _, err := validation.ValidateRequestURL("example.com/video"); err == nil {
		t.Fatalf("expected error for scheme-less URL, got nil")
	}

	// Non-web scheme
	if _, err := validation.ValidateRequestURL("ftp://example.com/video"); err == nil {
		t.Fatalf("expected error for ftp URL, got nil")
	}

	// Unparseable
	if _, err := validation.ValidateRequestURL("https://exa mple.com/%zz"); err == nil {
		t.Fatalf("expected error for malformed URL, got nil")
	}
}

// TestValidateFormatID checks identifier charset handling.
func TestValidateFormatID(t *testing.T) {
	valid := []string{
		"137",
		"137+140",
		"bv*+ba/b",
		"bestvideo[height<=1080]+bestaudio/best",
		"hls-720p",
	}
	for _, id := range valid {
		if _, err := validation.ValidateFormatID(id); err != nil {
			t.Fatalf("expected format ID %q to pass, got: %v", id, err)
		}
	}

	invalid := []string{
		"",
		"   ",
		"137; rm -rf /",
		"137 140",
		"best&worst",
	}
	for _, id := range invalid {
		if _, err := validation.ValidateFormatID(id); err == nil {
			t.Fatalf("expected format ID %q to fail, got nil", id)
		}
	}
}

// TestValidateMaxFilesize checks filesize normalization.
func TestValidateMaxFilesize(t *testing.T) {
	cases := map[string]string{
		"":      "",
		"10M":   "10m",
		"10MB":  "10m",
		"512K":  "512k",
		"1G":    "1g",
		"12345": "12345",
	}
	for in, want := range cases {
		got, err := validation.ValidateMaxFilesize(in)
		if err != nil {
			t.Fatalf("ValidateMaxFilesize(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ValidateMaxFilesize(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"abc", "10x", "m10"} {
		if _, err := validation.ValidateMaxFilesize(in); err == nil {
			t.Fatalf("ValidateMaxFilesize(%q) expected error, got nil", in)
		}
	}
}

// TestValidateOutputExtension checks merge container validation.
func TestValidateOutputExtension(t *testing.T) {
	for _, e := range []string{"", "mp4", ".mkv", "WEBM"} {
		if err := validation.ValidateOutputExtension(e); err != nil {
			t.Fatalf("expected extension %q to pass, got: %v", e, err)
		}
	}
	for _, e := range []string{"exe", "txt", "mp3"} {
		if err := validation.ValidateOutputExtension(e); err == nil {
			t.Fatalf("expected extension %q to fail, got nil", e)
		}
	}
}

// TestValidateDirectory checks stat and create-if-missing behavior.
func TestValidateDirectory(t *testing.T) {
	temp := t.TempDir()

	// Existing directory passes
	if _, err := validation.ValidateDirectory(temp, false); err != nil {
		t.Fatalf("expected existing directory to pass, got: %v", err)
	}

	// Missing directory without create fails
	missing := filepath.Join(temp, "does_not_exist")
	if _, err := validation.ValidateDirectory(missing, false); err == nil {
		t.Fatalf("expected error for missing directory, got nil")
	}

	// Missing directory with create succeeds
	if _, err := validation.ValidateDirectory(missing, true); err != nil {
		t.Fatalf("expected directory creation to succeed, got: %v", err)
	}
}
