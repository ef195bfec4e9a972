// Package extraction shells out to the external yt-dlp tool for format
// probing and media downloads. All platform negotiation lives in the tool;
// this package builds commands, runs them, and shapes their output.
package extraction

import (
	"context"

	"fetcharr/internal/models"
)

// CookieProvider supplies an optional Netscape cookie file for a URL.
type CookieProvider interface {
	CookieFilePath(ctx context.Context, rawURL string) (string, error)
}

// Extractor invokes yt-dlp as a subprocess.
type Extractor struct {
	settings *models.Settings
	cookies  CookieProvider
}

// New returns an Extractor using the given settings. cookies may be nil.
func New(settings *models.Settings, cookies CookieProvider) *Extractor {
	return &Extractor{
		settings: settings,
		cookies:  cookies,
	}
}

// cookieFile resolves the cookie file for a URL, or "" when cookies are
// disabled or unavailable. Failures are non-fatal.
func (e *Extractor) cookieFile(ctx context.Context, rawURL string) string {
	if e.cookies == nil || e.settings.CookieSource == "" {
		return ""
	}

	path, err := e.cookies.CookieFilePath(ctx, rawURL)
	if err != nil {
		return ""
	}
	return path
}
