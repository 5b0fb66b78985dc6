package assistant

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopkori/assistant-platform/internal/locale"
	"github.com/shopkori/assistant-platform/internal/model"
)

// stopWords are dropped from utterances before catalog matching.
var stopWords = map[string]bool{
	"i": true, "want": true, "need": true, "looking": true, "for": true,
	"show": true, "me": true, "find": true, "search": true,
}

// knownCategories drive category browsing; the storefront's fixed set.
var knownCategories = []string{"electronics", "watches", "fashion", "books", "sports", "home"}

// extractSearchTerms splits the utterance on whitespace, drops tokens of
// length <= 2 and stop words, and caps the result at 3 terms.
func extractSearchTerms(msg string) []string {
	var terms []string
	for _, word := range strings.Fields(msg) {
		if len(word) <= 2 || stopWords[word] {
			continue
		}
		terms = append(terms, word)
		if len(terms) == 3 {
			break
		}
	}
	return terms
}

// extractCategory returns the first known category mentioned in the
// utterance, or "general" when none is.
func extractCategory(msg string) string {
	for _, cat := range knownCategories {
		if strings.Contains(msg, cat) {
			return cat
		}
	}
	return "general"
}

// searchProducts filters the snapshot to products whose name, description
// or category contains any search term. With no terms it returns the
// first few catalog entries.
func (a *Assistant) searchProducts(terms []string) []model.Product {
	if len(terms) == 0 {
		return limitProducts(a.products, 5)
	}

	var matches []model.Product
	for _, p := range a.products {
		haystack := strings.ToLower(p.Name + " " + p.Description + " " + p.Category)
		for _, term := range terms {
			if strings.Contains(haystack, strings.ToLower(term)) {
				matches = append(matches, p)
				break
			}
		}
	}
	return matches
}

func limitProducts(products []model.Product, n int) []model.Product {
	if len(products) > n {
		return products[:n]
	}
	return products
}

// formatProductResults renders a numbered list of name, price and a
// truncated description, framed by the intro template and a follow-up
// prompt. Optional params feed the intro template.
func (a *Assistant) formatProductResults(products []model.Product, introKey locale.Key, params ...map[string]string) string {
	var introParams map[string]string
	if len(params) > 0 {
		introParams = params[0]
	}

	var b strings.Builder
	b.WriteString(a.render(introKey, introParams))
	b.WriteString("\n\n")
	for i, p := range products {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strconv.Itoa(i+1) + ". **" + p.Name + "** - ৳" + formatPrice(p.Price))
		b.WriteString("\n   " + truncate(p.Description, 80) + "...")
	}
	b.WriteString("\n\n")
	b.WriteString(a.render(locale.KeyMoreHelp, nil))
	return b.String()
}

// formatTechnicalSpecs renders a structured block of whichever optional
// fields the product carries.
func (a *Assistant) formatTechnicalSpecs(p model.Product) string {
	var b strings.Builder
	b.WriteString("**" + p.Name + "** - Technical Specifications:\n\n")

	if p.Price > 0 {
		b.WriteString("💰 **Price**: ৳" + formatPrice(p.Price) + "\n")
	}
	if p.Category != "" {
		b.WriteString("📂 **Category**: " + p.Category + "\n")
	}
	if p.Brand != "" {
		b.WriteString("🏷️ **Brand**: " + p.Brand + "\n")
	}
	if len(p.Features) > 0 {
		b.WriteString("✨ **Features**:\n")
		features := p.Features
		if len(features) > 5 {
			features = features[:5]
		}
		for _, f := range features {
			b.WriteString("   • " + f + "\n")
		}
	}
	if p.Description != "" {
		b.WriteString("📝 **Description**: " + p.Description + "\n")
	}
	b.WriteString("📦 **Stock**: " + itoa(p.StockQuantity) + " units available\n")

	b.WriteString("\n")
	b.WriteString(a.render(locale.KeyNeedMoreSpecs, nil))
	return b.String()
}

// truncate cuts s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
