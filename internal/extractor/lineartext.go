package extractor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

const (
	minCandidateLen = 25
	maxCandidateLen = 150
	// contextWindow is how many lines either side of a title are searched
	contextWindow = 3
)

// LinearTextStrategy is the last resort: it ignores DOM structure and scans the
// flattened page text for title-like lines, taking price and location from the
// lines around each title. Links cannot be recovered from flat text, so every
// record gets a numbered placeholder URL instead.
type LinearTextStrategy struct {
	heuristics        Heuristics
	filter            RelevanceFilter
	StrippedElements  []string
	CandidateKeywords []string
	BoilerplateTerms  []string
}

// NewLinearTextStrategy creates the linear-text strategy
func NewLinearTextStrategy(stripped, candidates, boilerplate []string, h Heuristics, f RelevanceFilter) *LinearTextStrategy {
	return &LinearTextStrategy{
		heuristics:        h,
		filter:            f,
		StrippedElements:  stripped,
		CandidateKeywords: lowerAll(candidates),
		BoilerplateTerms:  lowerAll(boilerplate),
	}
}

// Name returns the strategy name
func (s *LinearTextStrategy) Name() string {
	return "linear-text"
}

// Extract segments the page text into records around title candidates
func (s *LinearTextStrategy) Extract(doc *goquery.Document, obs Observer) []Record {
	// Work on a copy so the caller's document keeps its chrome
	root := doc.Selection.Clone()
	if len(s.StrippedElements) > 0 {
		root.Find(strings.Join(s.StrippedElements, ", ")).Remove()
	}

	lines := VisibleLines(root)
	obs.SelectorMatched(s.Name(), "visible-text", len(lines))

	candidates := s.segment(lines)

	records := make([]Record, 0, len(candidates))
	for _, record := range candidates {
		if s.filter.IsRelevant(record) {
			records = append(records, record)
		}
	}
	return records
}

// segment opens a new record on every title candidate and closes the previous one
func (s *LinearTextStrategy) segment(lines []string) []Record {
	var (
		records []Record
		current Record
		open    bool
	)

	for i, line := range lines {
		if !s.isTitleCandidate(line) {
			continue
		}

		if open && current.Title != "" {
			records = append(records, current)
		}

		current = Record{
			Title:    line,
			Price:    s.priceNear(lines, i),
			Location: s.locationNear(lines, i),
			Date:     RecentDate,
			URL:      s.placeholderURL(len(records) + 1),
		}
		open = true
	}

	if open && current.Title != "" {
		records = append(records, current)
	}
	return records
}

// isTitleCandidate accepts product-like lines and rejects headers and site chrome
func (s *LinearTextStrategy) isTitleCandidate(line string) bool {
	lower := strings.ToLower(line)
	if containsAny(lower, s.BoilerplateTerms) {
		return false
	}

	n := runeLen(line)
	if n < minCandidateLen || n > maxCandidateLen {
		return false
	}

	if isAllUpper(line) {
		return false
	}

	if containsAny(lower, s.CandidateKeywords) {
		return true
	}
	return s.heuristics.hasCurrency(line) || strings.Contains(lower, "rs")
}

// priceNear returns the first currency-marked line in the window around index
func (s *LinearTextStrategy) priceNear(lines []string, index int) string {
	from, to := window(len(lines), index)
	for i := from; i < to; i++ {
		if s.heuristics.hasCurrency(lines[i]) {
			return lines[i]
		}
	}
	return UnknownPrice
}

// locationNear returns the first place-shaped line in the window around index
func (s *LinearTextStrategy) locationNear(lines []string, index int) string {
	from, to := window(len(lines), index)
	for i := from; i < to; i++ {
		if isLocation(lines[i]) {
			return lines[i]
		}
	}
	return UnknownLocation
}

func (s *LinearTextStrategy) placeholderURL(n int) string {
	return fmt.Sprintf("%s/item/%d", strings.TrimRight(s.heuristics.Origin, "/"), n)
}

// window returns the half-open index range [index-3, index+4) clamped to size
func window(size, index int) (int, int) {
	return max(0, index-contextWindow), min(size, index+contextWindow+1)
}

// isAllUpper reports whether s has cased letters and none of them are lowercase
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func lowerAll(words []string) []string {
	lowered := make([]string, 0, len(words))
	for _, w := range words {
		lowered = append(lowered, strings.ToLower(w))
	}
	return lowered
}
