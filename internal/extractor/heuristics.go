package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	minTitleLen    = 21
	maxTitleLen    = 99
	maxLocationLen = 50
)

// locationPattern matches comma-separated place names such as "Mumbai, Maharashtra"
// or "Sector 62, Noida". Dashes are only allowed after the first comma, so
// "Mumbai, Maharashtra - Today" matches while "Car Cover - Waterproof, Size M" does not.
var locationPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 .]*(,\s*[A-Za-z][A-Za-z0-9 .\-]*)+$`)

// Heuristics infers listing fields from text lines and DOM subtrees.
// All methods are total: they return a sentinel instead of failing.
type Heuristics struct {
	// Origin is prefixed to relative links, e.g. "https://www.olx.in"
	Origin string
	// CurrencySymbols mark a line as carrying a price
	CurrencySymbols []string
}

// Title returns the first line of title-like length that does not open with a price
func (h Heuristics) Title(lines []string) string {
	for _, line := range lines {
		n := runeLen(line)
		if n < minTitleLen || n > maxTitleLen {
			continue
		}
		if h.startsWithCurrency(line) || strings.HasPrefix(line, "Rs") {
			continue
		}
		return line
	}
	if len(lines) > 0 {
		return lines[0]
	}
	return UnknownTitle
}

// Price returns the first line carrying a currency symbol or an "rs" prefix
func (h Heuristics) Price(lines []string) string {
	for _, line := range lines {
		if h.hasCurrency(line) || strings.HasPrefix(strings.ToLower(line), "rs") {
			return line
		}
	}
	return UnknownPrice
}

// Location returns the first short line shaped like "Place, Region"
func (h Heuristics) Location(lines []string) string {
	for _, line := range lines {
		if isLocation(line) {
			return line
		}
	}
	return UnknownLocation
}

// URL returns the first link inside the selection, made absolute against Origin
func (h Heuristics) URL(sel *goquery.Selection) string {
	link := sel.Filter("a[href]").AddSelection(sel.Find("a[href]")).First()
	if link.Length() == 0 {
		return UnknownURL
	}

	href := strings.TrimSpace(link.AttrOr("href", ""))
	if href == "" {
		return UnknownURL
	}
	return h.resolve(href)
}

// resolve makes a link absolute without touching links that already are
func (h Heuristics) resolve(href string) string {
	switch {
	case strings.HasPrefix(href, "http"):
		return href
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "/"):
		return strings.TrimRight(h.Origin, "/") + href
	default:
		return strings.TrimRight(h.Origin, "/") + "/" + href
	}
}

func (h Heuristics) hasCurrency(line string) bool {
	return containsAny(line, h.CurrencySymbols)
}

func (h Heuristics) startsWithCurrency(line string) bool {
	for _, symbol := range h.CurrencySymbols {
		if symbol != "" && strings.HasPrefix(line, symbol) {
			return true
		}
	}
	return false
}

func isLocation(line string) bool {
	return runeLen(line) < maxLocationLen && locationPattern.MatchString(line)
}
