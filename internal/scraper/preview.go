// Package scraper handles web scraping operations: lightweight page
// previews and browser cookie export for the extraction tool.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"

// Scraper fetches page metadata without invoking the extraction tool.
type Scraper struct{}

// New returns a new Scraper instance.
func New() *Scraper {
	return &Scraper{}
}

// Preview fetches the page at rawURL and scrapes its OpenGraph title and
// image. Used by the UI for a quick peek while the slower format probe runs.
func (s *Scraper) Preview(_ context.Context, rawURL string) (*models.Preview, error) {
	var (
		preview  *models.Preview
		parseErr error
	)

	collector := colly.NewCollector(colly.UserAgent(userAgent))
	collector.OnResponse(func(r *colly.Response) {
		preview, parseErr = ParsePreviewHTML(bytes.NewReader(r.Body))
	})

	if err := collector.Visit(rawURL); err != nil {
		return nil, fmt.Errorf("error visiting webpage %q: %w", rawURL, err)
	}
	collector.Wait()

	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse webpage %q: %w", rawURL, parseErr)
	}
	if preview == nil {
		return nil, fmt.Errorf("no response received from webpage %q", rawURL)
	}

	logging.D(1, "Preview for %q: title=%q thumbnail=%q", rawURL, preview.Title, preview.Thumbnail)
	return preview, nil
}

// ParsePreviewHTML extracts OpenGraph metadata from an HTML document,
// falling back to the <title> element.
func ParsePreviewHTML(r io.Reader) (*models.Preview, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	p := &models.Preview{}

	if content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		p.Title = strings.TrimSpace(content)
	}
	if content, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok {
		p.Thumbnail = strings.TrimSpace(content)
	}

	if p.Title == "" {
		p.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	return p, nil
}
