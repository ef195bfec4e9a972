package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fetcharr/internal/parsing"
	"fetcharr/internal/utils/logging"

	"github.com/browserutils/kooky"
	// Use all browsers for Kooky:
	_ "github.com/browserutils/kooky/browser/all"
	"golang.org/x/net/publicsuffix"
)

// CookieManager exports browser cookies per domain into Netscape cookie
// files for the extraction tool's '--cookies' flag.
type CookieManager struct {
	mu       sync.RWMutex
	cacheDir string
	files    map[string]string
}

// NewCookieManager initializes a new cookie manager instance writing cookie
// files under cacheDir.
func NewCookieManager(cacheDir string) *CookieManager {
	return &CookieManager{
		cacheDir: cacheDir,
		files:    make(map[string]string),
	}
}

// CookieFilePath returns the path of a Netscape cookie file for the URL's
// registrable domain, exporting browser cookies on first use. Returns ""
// when the domain has no cookies.
func (cm *CookieManager) CookieFilePath(_ context.Context, rawURL string) (string, error) {
	domain, err := baseDomain(rawURL)
	if err != nil {
		return "", fmt.Errorf("error extracting base domain in cookie grab: %w", err)
	}

	// Check if we already exported cookies for this domain
	cm.mu.RLock()
	if path, ok := cm.files[domain]; ok {
		cm.mu.RUnlock()
		return path, nil
	}
	cm.mu.RUnlock()

	cookies := cm.loadCookiesForDomain(domain)

	path := ""
	if len(cookies) > 0 {
		path = filepath.Join(cm.cacheDir, "cookies-"+parsing.SanitizeFilename(domain)+".txt")
		if err := saveCookiesToFile(cookies, domain, path); err != nil {
			return "", fmt.Errorf("failed to save cookies for %s: %w", domain, err)
		}
	}

	cm.mu.Lock()
	cm.files[domain] = path
	cm.mu.Unlock()

	return path, nil
}

// loadCookiesForDomain reads cookies for a domain from every browser cookie
// store found on the system.
func (cm *CookieManager) loadCookiesForDomain(domain string) []*http.Cookie {
	var found []*http.Cookie

	for _, store := range kooky.FindAllCookieStores() {
		browserName := store.Browser()
		logging.D(2, "Attempting to read cookies from %s", browserName)

		cookies, err := store.ReadCookies(kooky.Valid, kooky.Domain(domain))
		if err != nil {
			logging.D(2, "Failed to read cookies from %s: %v", browserName, err)
			continue
		}

		if len(cookies) > 0 {
			logging.I("Read %d cookies from %s for domain %s", len(cookies), browserName, domain)
			found = append(found, convertToHTTPCookies(cookies)...)
		}
	}

	if len(found) == 0 {
		logging.I("No cookies found for %s", domain)
	}
	return found
}

// convertToHTTPCookies converts kooky cookies to http.Cookie format.
func convertToHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, len(kookyCookies))
	for i, c := range kookyCookies {
		httpCookies[i] = &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
			Secure:  c.Secure,
		}
	}
	return httpCookies
}

// saveCookiesToFile saves the cookies to a file in Netscape format.
func saveCookiesToFile(cookies []*http.Cookie, domain, cookieFilePath string) error {
	file, err := os.Create(cookieFilePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.E("Failed to close file %q due to error: %v", cookieFilePath, err)
		}
	}()

	// Write the header for the Netscape cookies file
	if _, err := file.WriteString("# Netscape HTTP Cookie File\n# https://curl.haxx.se/rfc/cookie_spec.html\n# This is a generated file! Do not edit.\n\n"); err != nil {
		return err
	}

	logging.D(1, "Saving %d cookies to file %s...", len(cookies), cookieFilePath)

	for _, cookie := range cookies {
		cookieDomain := cookie.Domain
		if cookieDomain == "" {
			cookieDomain = domain
		}
		if !strings.HasPrefix(cookieDomain, ".") && strings.Count(cookieDomain, ".") > 1 {
			cookieDomain = "." + cookieDomain
		}

		secure := "FALSE"
		if cookie.Secure {
			secure = "TRUE"
		}

		expires := int64(0)
		if !cookie.Expires.IsZero() {
			expires = cookie.Expires.Unix()
		} else {
			logging.W("Cookie %s has no expiration time set", cookie.Name)
		}

		if _, err := fmt.Fprintf(file, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			cookieDomain, "FALSE", cookie.Path, secure, expires, cookie.Name, cookie.Value); err != nil {
			return err
		}
	}
	return nil
}

// baseDomain returns the registrable domain of a URL (e.g. sub.example.co.uk
// → example.co.uk).
func baseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("url %q has no host", rawURL)
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Hosts without a public suffix (e.g. localhost) are used as-is.
		return host, nil
	}
	return domain, nil
}
