package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StructuralStrategy selects listing links by shape and extracts from the
// enclosing container, since the link alone rarely carries price or place.
type StructuralStrategy struct {
	elementMapper
	Selectors []string
	// ContainerTags are the element names accepted as the enclosing unit
	ContainerTags []string
}

// NewStructuralStrategy creates the structural strategy
func NewStructuralStrategy(selectors, containers []string, h Heuristics, f RelevanceFilter) *StructuralStrategy {
	return &StructuralStrategy{
		elementMapper: elementMapper{heuristics: h, filter: f},
		Selectors:     selectors,
		ContainerTags: containers,
	}
}

// Name returns the strategy name
func (s *StructuralStrategy) Name() string {
	return "structural"
}

// Extract maps the nearest container of every matched link
func (s *StructuralStrategy) Extract(doc *goquery.Document, obs Observer) []Record {
	records := make([]Record, 0)
	if len(s.ContainerTags) == 0 {
		return records
	}
	containers := strings.Join(s.ContainerTags, ", ")

	for _, selector := range s.Selectors {
		links := doc.Find(selector)
		if links.Length() == 0 {
			continue
		}
		obs.SelectorMatched(s.Name(), selector, links.Length())

		links.Each(func(_ int, link *goquery.Selection) {
			container := link.Parent().Closest(containers)
			if container.Length() == 0 {
				return
			}
			if record, ok := s.relevant(container); ok {
				records = append(records, record)
			}
		})
	}
	return records
}
