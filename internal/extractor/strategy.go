package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minElementText is the shortest element text worth parsing as a listing
const minElementText = 30

// Strategy is one self-contained extraction procedure tried by the cascade.
// Implementations hold configuration only and return relevance-filtered records.
type Strategy interface {
	// Name identifies the strategy in logs and results
	Name() string

	// Extract maps a parsed page to listing records
	Extract(doc *goquery.Document, obs Observer) []Record
}

// elementMapper turns a single DOM element into a candidate record
type elementMapper struct {
	heuristics Heuristics
	filter     RelevanceFilter
}

// mapElement extracts a record from the element's visible text.
// Elements with too little text to hold a listing are skipped.
func (m elementMapper) mapElement(s *goquery.Selection) (Record, bool) {
	lines := VisibleLines(s)
	if len(lines) == 0 || runeLen(strings.Join(lines, "")) < minElementText {
		return Record{}, false
	}

	return Record{
		Title:    m.heuristics.Title(lines),
		Price:    m.heuristics.Price(lines),
		Location: m.heuristics.Location(lines),
		Date:     RecentDate,
		URL:      m.heuristics.URL(s),
	}, true
}

// relevant maps the element and applies the relevance filter
func (m elementMapper) relevant(s *goquery.Selection) (Record, bool) {
	record, ok := m.mapElement(s)
	if !ok || !m.filter.IsRelevant(record) {
		return Record{}, false
	}
	return record, true
}
