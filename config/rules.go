package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the selector lists and keyword sets that drive extraction.
// The class-name tokens in particular are observed on the live site and are
// expected to change, so every list can be overridden from a YAML file.
type Rules struct {
	AttributeSelectors  []string `yaml:"attribute_selectors"`
	ClassSelectors      []string `yaml:"class_selectors"`
	StructuralSelectors []string `yaml:"structural_selectors"`
	ContainerTags       []string `yaml:"container_tags"`

	// RelevanceKeywords decide whether a record's title is in category
	RelevanceKeywords []string `yaml:"relevance_keywords"`
	// PreFilterKeywords admit a class-pattern element for parsing
	PreFilterKeywords []string `yaml:"prefilter_keywords"`
	// CandidateKeywords mark a line as a title in linear-text extraction
	CandidateKeywords []string `yaml:"candidate_keywords"`
	// BoilerplateTerms disqualify a line as a title in linear-text extraction
	BoilerplateTerms []string `yaml:"boilerplate_terms"`
	// StrippedElements are removed before the page is flattened to text
	StrippedElements []string `yaml:"stripped_elements"`

	CurrencySymbols []string `yaml:"currency_symbols"`
}

// DefaultRules returns the built-in rules for the OLX car-cover search page
func DefaultRules() Rules {
	return Rules{
		AttributeSelectors: []string{
			`[data-testid*="listing"]`,
			`[data-testid*="card"]`,
			`[data-testid*="ad"]`,
			`[data-cy*="listing"]`,
			`[data-cy*="card"]`,
			`[data-aut-id*="item"]`,
			`[data-q*="listing"]`,
		},
		ClassSelectors: []string{
			`[class*="listing"]`,
			`[class*="card"]`,
			`[class*="offer"]`,
			`[class*="ad"]`,
			`[class*="item"]`,
			`[class*="product"]`,
			`.IKo3_`,
			`._2v8Tq`,
			`.mBpKI`,
			`._2tW1I`,
			`._89yzn`,
		},
		StructuralSelectors: []string{
			`li > div > a`,
			`div > div > a`,
			`a[href*="/item/"]`,
			`a[href*="/ad/"]`,
		},
		ContainerTags:     []string{"li", "div"},
		RelevanceKeywords: []string{"cover", "car cover", "vehicle cover", "waterproof", "dust cover", "sun protection"},
		PreFilterKeywords: []string{"cover"},
		CandidateKeywords: []string{"cover", "car", "vehicle", "waterproof", "dust", "protection", "universal", "premium", "size"},
		BoilerplateTerms:  []string{"home", "login", "sign", "about", "contact", "help", "privacy", "terms"},
		StrippedElements:  []string{"script", "style", "nav", "header", "footer"},
		CurrencySymbols:   []string{"₹"},
	}
}

// LoadRules reads rules from a YAML file on top of the defaults.
// Lists absent from the file keep their default value; an empty path
// returns the defaults unchanged.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file: %w", err)
	}

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	return rules, nil
}
