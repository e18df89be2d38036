// Package story turns free-form narrative text into the two raw inputs
// the timeline compiler consumes: an ordered sentence list and an
// ordered list of candidate character names.
package story

import "strings"

// Extractor holds the tunable parts of the heuristic.
type Extractor struct {
	// Terminators are the sentence-ending runes. A run of one or more
	// of them splits the text, even inside quotations.
	Terminators string
	// Stopwords are capitalized sentence-starters that must never be
	// treated as character names.
	Stopwords map[string]bool
}

// NewExtractor creates an Extractor with the default terminator set and
// stopword list.
func NewExtractor() *Extractor {
	return &Extractor{
		Terminators: ".!?",
		Stopwords: map[string]bool{
			"The": true,
			"A":   true,
			"An":  true,
			"In":  true,
			"On":  true,
			"At":  true,
			"To":  true,
		},
	}
}

// Sentences splits text on runs of terminators, trims whitespace and
// drops empty results. Abbreviations and quoted terminators are not
// special-cased; a period inside quotes still splits.
func (e *Extractor) Sentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(e.Terminators, r)
	})

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// Names returns candidate character names in first-occurrence order,
// deduplicated. A token qualifies only if it is exactly one uppercase
// ASCII letter followed by lowercase ASCII letters; attached punctuation
// or digits disqualify it. That loses "Max," at a comma, which is an
// accepted precision limit of the heuristic.
func (e *Extractor) Names(text string) []string {
	var names []string
	seen := make(map[string]bool)

	for _, token := range strings.Fields(text) {
		if !isNameShaped(token) {
			continue
		}
		if e.Stopwords[token] || seen[token] {
			continue
		}
		seen[token] = true
		names = append(names, token)
	}
	return names
}

func isNameShaped(token string) bool {
	if len(token) < 2 {
		return false
	}
	if token[0] < 'A' || token[0] > 'Z' {
		return false
	}
	for i := 1; i < len(token); i++ {
		if token[i] < 'a' || token[i] > 'z' {
			return false
		}
	}
	return true
}
