package extractor

import (
	"github.com/PuerkitoBio/goquery"

	"sjsage522/olxworker/config"
)

// Result is the outcome of one cascade run
type Result struct {
	Records []Record
	// Strategy names the strategy that produced Records, empty when exhausted
	Strategy string
}

// Exhausted reports whether every strategy came back empty
func (r Result) Exhausted() bool {
	return len(r.Records) == 0
}

// Cascade tries strategies in priority order and stops at the first one
// that yields a relevant record. Results are never merged across strategies.
type Cascade struct {
	strategies []Strategy
	observer   Observer
}

// NewCascade creates a cascade over the given strategies in priority order
func NewCascade(observer Observer, strategies ...Strategy) *Cascade {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Cascade{
		strategies: strategies,
		observer:   observer,
	}
}

// New creates the standard four-stage cascade from extraction rules
func New(rules config.Rules, origin string, observer Observer) *Cascade {
	h := Heuristics{Origin: origin, CurrencySymbols: rules.CurrencySymbols}
	f := NewRelevanceFilter(rules.RelevanceKeywords)

	return NewCascade(observer,
		NewAttributeHookStrategy(rules.AttributeSelectors, h, f),
		NewClassPatternStrategy(rules.ClassSelectors, rules.PreFilterKeywords, h, f),
		NewStructuralStrategy(rules.StructuralSelectors, rules.ContainerTags, h, f),
		NewLinearTextStrategy(rules.StrippedElements, rules.CandidateKeywords, rules.BoilerplateTerms, h, f),
	)
}

// Strategies returns the strategy names in the order they are tried
func (c *Cascade) Strategies() []string {
	names := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Run extracts records from the document
func (c *Cascade) Run(doc *goquery.Document) Result {
	for _, strategy := range c.strategies {
		c.observer.StrategyStarted(strategy.Name())

		records := strategy.Extract(doc, c.observer)
		c.observer.StrategyFinished(strategy.Name(), len(records))

		if len(records) > 0 {
			return Result{Records: records, Strategy: strategy.Name()}
		}
	}

	c.observer.CascadeExhausted()
	return Result{Records: []Record{}}
}
