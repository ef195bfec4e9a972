// Package validation handles validation of user and request input.
package validation

import (
	"fmt"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/utils/logging"
)

// ValidateRequestURL verifies that a request URL is present, parseable, and
// uses a web scheme. Runs before any subprocess is spawned.
func ValidateRequestURL(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("url is required")
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("url %q is invalid: %w", s, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("url %q must use http or https", s)
	}
	if u.Host == "" {
		return "", fmt.Errorf("url %q has no host", s)
	}

	return u.String(), nil
}

// ValidateFormatID verifies a format identifier is present and safe to pass
// to the extraction tool. Merged identifiers ("137+140") and selector
// expressions like "bv*+ba/b" are allowed.
func ValidateFormatID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("format_id is required")
	}

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '+', r == '-', r == '_', r == '.', r == '/', r == '*',
			r == '[', r == ']', r == '=', r == '<', r == '>', r == ':':
		default:
			return "", fmt.Errorf("format_id %q contains invalid character %q", s, r)
		}
	}

	return s, nil
}

// ValidateMaxFilesize normalizes a max filesize string for yt-dlp.
func ValidateMaxFilesize(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.TrimSuffix(s, "b")

	// Handle K, M, G suffixes
	if strings.HasSuffix(s, "k") || strings.HasSuffix(s, "m") || strings.HasSuffix(s, "g") {
		n := s[:len(s)-1]
		if _, err := strconv.Atoi(n); err != nil {
			return "", fmt.Errorf("invalid size number: %s", s)
		}
		return s, nil
	}

	// Check raw integer is valid
	if _, err := strconv.Atoi(s); err == nil {
		return s, nil
	}

	return "", fmt.Errorf("invalid max filesize format: %s", input)
}

// ValidateOutputExtension validates the merge-output-format compatibility of
// the inputted extension.
func ValidateOutputExtension(e string) error {
	if e == "" {
		return nil
	}
	e = strings.TrimSpace(e)
	e = strings.TrimPrefix(e, ".")
	e = strings.ToLower(e)

	if !slices.Contains([]string{
		"avi",
		"flv",
		"mkv",
		"mov",
		"mp4",
		"webm",
	}, e) {
		return fmt.Errorf("output extension %v is invalid or not supported", e)
	}

	return nil
}

// ValidateDirectory validates that the directory exists, else creates it if
// desired.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	logging.D(3, "Statting directory %q...", dir)

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("path %q exists but is not a directory", dir)
		}
		return info, nil
	case os.IsNotExist(err):
		if !createIfNotFound {
			return nil, fmt.Errorf("directory %q does not exist", dir)
		}
		if err := os.MkdirAll(dir, consts.PermsGenericDir); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
		return os.Stat(dir)
	default:
		return nil, fmt.Errorf("failed to stat directory %q: %w", dir, err)
	}
}
