package extractor

import "github.com/PuerkitoBio/goquery"

// AttributeHookStrategy selects listing cards through data-* automation hooks.
// Selectors may overlap; an element matched twice yields two records.
type AttributeHookStrategy struct {
	elementMapper
	Selectors []string
}

// NewAttributeHookStrategy creates the attribute-hook strategy
func NewAttributeHookStrategy(selectors []string, h Heuristics, f RelevanceFilter) *AttributeHookStrategy {
	return &AttributeHookStrategy{
		elementMapper: elementMapper{heuristics: h, filter: f},
		Selectors:     selectors,
	}
}

// Name returns the strategy name
func (s *AttributeHookStrategy) Name() string {
	return "attribute-hook"
}

// Extract maps every element matched by every selector
func (s *AttributeHookStrategy) Extract(doc *goquery.Document, obs Observer) []Record {
	records := make([]Record, 0)
	for _, selector := range s.Selectors {
		elements := doc.Find(selector)
		if elements.Length() == 0 {
			continue
		}
		obs.SelectorMatched(s.Name(), selector, elements.Length())

		elements.Each(func(_ int, el *goquery.Selection) {
			if record, ok := s.relevant(el); ok {
				records = append(records, record)
			}
		})
	}
	return records
}
