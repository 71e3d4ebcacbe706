package extractor

import "strings"

// RelevanceFilter gates records into the target category by title keywords.
// Price and location text are ignored.
type RelevanceFilter struct {
	Keywords []string
}

// NewRelevanceFilter creates a filter over lowercased keywords
func NewRelevanceFilter(keywords []string) RelevanceFilter {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}
	return RelevanceFilter{Keywords: lowered}
}

// IsRelevant reports whether the record's title mentions any category keyword
func (f RelevanceFilter) IsRelevant(r Record) bool {
	return containsAny(strings.ToLower(r.Title), f.Keywords)
}
