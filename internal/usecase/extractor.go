package usecase

import (
	"fmt"
	"strings"

	"github.com/despensa/backend/internal/domain"
)

// Positions of the product id and slug within the sitemap URL path.
// Example: https://tienda.mercadona.es/product/12345/aceite-de-oliva-virgen
const (
	urlSegmentID   = 4
	urlSegmentSlug = 5
)

// spanishStopWords are function words dropped from product slugs; they carry
// no search signal and would inflate the match ratio denominator.
var spanishStopWords = map[string]bool{
	"de":   true,
	"la":   true,
	"el":   true,
	"y":    true,
	"con":  true,
	"sin":  true,
	"para": true,
}

// CatalogExtractor turns raw sitemap URL entries into lightweight catalog
// entries with tokenized query terms parsed out of the URL slug.
type CatalogExtractor struct {
	productBaseURL string
}

// NewCatalogExtractor creates an extractor that builds detail URLs against
// the given product API base URL.
func NewCatalogExtractor(productBaseURL string) *CatalogExtractor {
	return &CatalogExtractor{
		productBaseURL: strings.TrimSuffix(productBaseURL, "/"),
	}
}

// Extract builds one CatalogEntry per sitemap URL that carries a product id.
// A missing slug yields an entry with no query tokens; it stays addressable
// by id but never matches a textual query.
func (e *CatalogExtractor) Extract(urls []domain.SitemapURL) []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(urls))

	for _, u := range urls {
		segments := strings.Split(u.Loc, "/")
		if len(segments) <= urlSegmentID || segments[urlSegmentID] == "" {
			continue
		}

		id := segments[urlSegmentID]

		var slug string
		if len(segments) > urlSegmentSlug {
			slug = segments[urlSegmentSlug]
		}

		entries = append(entries, domain.CatalogEntry{
			ID:          id,
			DetailURL:   fmt.Sprintf("%s/%s", e.productBaseURL, id),
			QueryTokens: tokenizeSlug(slug),
		})
	}

	return entries
}

// tokenizeSlug splits a hyphen-delimited product slug into query tokens,
// dropping stop words, purely numeric tokens, and single-character tokens.
func tokenizeSlug(slug string) []string {
	if slug == "" {
		return nil
	}

	parts := strings.Split(slug, "-")
	tokens := make([]string, 0, len(parts))

	for _, part := range parts {
		if len(part) <= 1 {
			continue
		}
		if spanishStopWords[strings.ToLower(part)] {
			continue
		}
		if isNumeric(part) {
			continue
		}
		tokens = append(tokens, part)
	}

	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
