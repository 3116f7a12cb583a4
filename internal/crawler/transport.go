package crawler

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

const defaultHTTPTimeout = 30 * time.Second

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient returns the provided client, or one with a cookie
// jar so the archive's login session survives across requests.
func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return &http.Client{Timeout: timeout}
	}
	return &http.Client{Timeout: timeout, Jar: jar}
}

func normalizeBaseURL(raw string) string {
	return strings.TrimSuffix(raw, "/")
}

// absoluteURL resolves hrefs scraped from archive pages, which are a
// mix of absolute links and site-relative paths.
func absoluteURL(base, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		return base + href
	}
	return base + "/" + href
}
