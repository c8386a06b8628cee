package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"edelgado544/ecomscraper/helpers"
)

// ExtractField tries each selector in order against the document and returns
// the first non-empty cleaned text, along with the index of the winning rule.
// Matched nodes are visited in document order. Returns nil when every rule is
// exhausted; that is a valid absent-field outcome, not an error.
//
// Selector order encodes observed reliability per site: the selector most
// likely to hit is listed first so the fallbacks are rarely evaluated.
func ExtractField(doc *goquery.Document, selectors []string) *ExtractedField {
	for i, selector := range selectors {
		var field *ExtractedField
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := helpers.CleanText(s.Text())
			if text == "" {
				return true
			}
			field = &ExtractedField{Text: text, RuleIndex: i}
			return false
		})
		if field != nil {
			return field
		}
	}
	return nil
}
