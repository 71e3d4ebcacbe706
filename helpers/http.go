package helpers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	mathrand "math/rand"
	"net/http"
	"net/url"
	"slices"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	apperrors "sjsage522/olxworker/pkg/errors"
)

// Browser-like header values
var (
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}

	rateLimitStatuses = []int{http.StatusTooManyRequests, 430}
)

// NewClient creates an HTTP client with the given timeout.
// A non-empty proxyURL (http, https or socks5) routes every request through it.
func NewClient(timeout time.Duration, proxyURL string) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if proxyURL != "" {
		proxy, err := url.Parse(proxyURL)
		if err != nil {
			return nil, apperrors.NewConfiguration("invalid proxy URL", err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}, nil
}

// FetchPage sends a GET request with browser-identifying headers, converts
// the response body to UTF-8 (if needed), and returns it as an io.Reader.
func FetchPage(ctx context.Context, client *http.Client, pageURL string) (io.Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, apperrors.NewNetwork(pageURL, "failed to create request", err)
	}

	rnd := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	req.Header.Set("User-Agent", userAgents[rnd.Intn(len(userAgents))])
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := client.Do(req)
	if err != nil {
		return nil, apperrors.NewNetwork(pageURL, "failed to fetch URL", err)
	}
	defer resp.Body.Close()

	// Check for rate limiting
	if slices.Contains(rateLimitStatuses, resp.StatusCode) {
		return nil, apperrors.NewRateLimit(pageURL, resp.Header.Get("Retry-After"))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewNetwork(pageURL, fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewNetwork(pageURL, "failed to read response body", err)
	}

	return toUTF8(bodyBytes, resp.Header.Get("Content-Type"))
}

// toUTF8 decodes body using the charset declared in the header or the markup.
// Without a declaration, a body that is already valid UTF-8 is kept as is.
func toUTF8(body []byte, contentType string) (io.Reader, error) {
	encoding, name, certain := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" || name == "UTF-8" || (!certain && utf8.Valid(body)) {
		return bytes.NewReader(body), nil
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, encoding.NewDecoder().Reader(bytes.NewReader(body))); err != nil {
		return nil, apperrors.NewParsing(name, "failed to convert body to UTF-8", err)
	}
	return &buf, nil
}
