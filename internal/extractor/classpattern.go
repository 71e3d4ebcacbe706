package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ClassPatternStrategy selects elements by class-name fragments and opaque
// class tokens. Generic patterns also catch navigation and footer blocks, so
// elements must look like a listing before they are parsed.
type ClassPatternStrategy struct {
	elementMapper
	Selectors []string
	// PreFilterKeywords admit an element that carries no currency symbol
	PreFilterKeywords []string
}

// NewClassPatternStrategy creates the class-pattern strategy
func NewClassPatternStrategy(selectors, preFilter []string, h Heuristics, f RelevanceFilter) *ClassPatternStrategy {
	return &ClassPatternStrategy{
		elementMapper:     elementMapper{heuristics: h, filter: f},
		Selectors:         selectors,
		PreFilterKeywords: lowerAll(preFilter),
	}
}

// Name returns the strategy name
func (s *ClassPatternStrategy) Name() string {
	return "class-pattern"
}

// Extract maps every matched element that passes the listing pre-filter
func (s *ClassPatternStrategy) Extract(doc *goquery.Document, obs Observer) []Record {
	records := make([]Record, 0)
	for _, selector := range s.Selectors {
		elements := doc.Find(selector)
		if elements.Length() == 0 {
			continue
		}
		obs.SelectorMatched(s.Name(), selector, elements.Length())

		elements.Each(func(_ int, el *goquery.Selection) {
			if !s.looksLikeListing(el) {
				return
			}
			if record, ok := s.relevant(el); ok {
				records = append(records, record)
			}
		})
	}
	return records
}

// looksLikeListing requires enough text plus a price or a category word
func (s *ClassPatternStrategy) looksLikeListing(el *goquery.Selection) bool {
	text := strings.Join(VisibleLines(el), "")
	if runeLen(text) <= minElementText {
		return false
	}
	return s.heuristics.hasCurrency(text) || containsAny(strings.ToLower(text), s.PreFilterKeywords)
}
