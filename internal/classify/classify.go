// Package classify removes boilerplate paragraphs (navigation, footers, legal and
// publishing metadata) from text extracted out of web pages, so that they do not
// skew word frequencies.
//
// A paragraph is boilerplate when the share of its words whose English stem is a
// known boilerplate stem exceeds a threshold. The threshold is lowest at the
// start and end of a page, where headers and footers live. Paragraphs with no
// alphabetic words, such as figures or dates, are always content.
package classify

import (
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

// boilerplateStems are snowball stems of words typical of page chrome.
var boilerplateStems = map[string]struct{}{
	// publishing and document structure
	"author": {}, "appendix": {}, "book": {}, "chapter": {}, "content": {}, "edit": {},
	"ebook": {}, "footer": {}, "glossari": {}, "gutenberg": {}, "navig": {}, "note": {},
	"page": {}, "project": {}, "publish": {}, "text": {},

	// navigation and interaction
	"about": {}, "locat": {}, "profil": {}, "share": {}, "updat": {},

	// legal
	"copyright": {}, "manag": {}, "permiss": {}, "polici": {}, "privaci": {}, "public": {},
	"purpos": {}, "reproduc": {}, "reserv": {}, "right": {}, "risk": {}, "standard": {},
	"term": {}, "use": {},

	// references
	"citat": {}, "depart": {}, "edu": {}, "feder": {}, "foundat": {}, "https": {},
	"isbn": {}, "refer": {},
}

const (
	edgeThreshold   = 0.1  // first and last paragraphs
	middleThreshold = 0.33 // center of the page
	smallThreshold  = 0.5  // pages of three paragraphs or fewer
)

var wordPattern = regexp.MustCompile(`\b[a-zA-Z]+\b`)

// Filter classifies paragraphs as content or boilerplate.
type Filter struct {
	language string
}

// NewFilter returns a Filter using the English stemmer.
func NewFilter() *Filter {
	return &Filter{language: "english"}
}

// SplitParagraphs splits text on blank lines, dropping empty paragraphs.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Keep returns the paragraphs that are not boilerplate, in order.
func (f *Filter) Keep(paragraphs []string) []string {
	kept := make([]string, 0, len(paragraphs))
	for i, p := range paragraphs {
		if !f.IsBoilerplate(p, i, len(paragraphs)) {
			kept = append(kept, p)
		}
	}

	slog.Debug("Boilerplate filtered", "paragraphs", len(paragraphs), "kept", len(kept))
	return kept
}

// IsBoilerplate reports whether the paragraph at index of total is boilerplate.
// Out-of-range positions and paragraphs without alphabetic words are never boilerplate.
func (f *Filter) IsBoilerplate(paragraph string, index, total int) bool {
	if total <= 0 || index < 0 || index >= total {
		return false
	}

	words := wordPattern.FindAllString(strings.ToLower(paragraph), -1)
	if len(words) == 0 {
		return false
	}

	hits := 0
	for _, word := range words {
		stem, err := snowball.Stem(word, f.language, true)
		if err != nil {
			stem = word
		}
		if _, ok := boilerplateStems[stem]; ok {
			hits++
		}
	}

	return float64(hits)/float64(len(words)) > threshold(index, total)
}

// threshold interpolates along an inverted V: edgeThreshold at both ends,
// middleThreshold in the center.
func threshold(index, total int) float64 {
	if total <= 3 {
		return smallThreshold
	}

	position := float64(index) / float64(total-1)
	factor := 1.0 - math.Abs(2.0*position-1.0)

	return edgeThreshold + (middleThreshold-edgeThreshold)*factor
}
