// Package parsing holds small parse/format helpers shared across Fetcharr.
package parsing

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// HumanReadableSize converts a byte count to a human readable string.
func HumanReadableSize(sizeBytes int64) string {
	if sizeBytes <= 0 {
		return "Unknown"
	}

	size := float64(sizeBytes)
	for _, unit := range []string{"B", "KB", "MB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f GB", size)
}

// SanitizeFilename replaces characters unsafe for a Content-Disposition
// filename or a filesystem path.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	s := strings.Trim(b.String(), "._")
	if s == "" {
		return "download"
	}
	return s
}

// ParseUploadDate parses a date string from the extraction tool's info JSON
// (commonly yyyymmdd, but site extractors vary) into a time.Time.
func ParseUploadDate(dateString string) (time.Time, error) {
	d := strings.TrimSpace(dateString)
	if d == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	// yt-dlp's canonical upload_date shape.
	if len(d) == 8 {
		if t, err := time.Parse("20060102", d); err == nil {
			return t, nil
		}
	}

	t, err := dateparse.ParseAny(d)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", dateString)
	}
	return t, nil
}
