package usecase

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/despensa/backend/internal/domain"
)

// Scoring weights. These are tuned heuristics carried over from the
// deployed service; changing them changes result ordering for existing
// queries, so they are kept as-is.
const (
	wordMatchWeight   = 10.0 // each matched word
	phraseMatchWeight = 15.0 // each search term matching as a whole phrase
	coverageWeight    = 5.0  // fraction of the entry's tokens explained by the query
)

// Ranker scores catalog entries against normalized search terms and returns
// them ordered by descending relevance.
type Ranker struct{}

// NewRanker creates a new ranker
func NewRanker() *Ranker {
	return &Ranker{}
}

// termPattern holds the per-term matchers compiled once per Rank call.
type termPattern struct {
	words    []string
	phraseRe *regexp.Regexp
	wordRes  []*regexp.Regexp
}

// Rank returns the catalog entries matching the search terms, descending by
// weight. Entries with zero weight are excluded. Ordering is deterministic:
// ties keep the catalog's original relative order.
func (r *Ranker) Rank(searchTerms []string, catalog []domain.CatalogEntry) []domain.CatalogEntry {
	patterns := compileTermPatterns(searchTerms)
	if len(patterns) == 0 {
		return nil
	}

	scored := make([]domain.ScoredEntry, 0, len(catalog))

	for _, entry := range catalog {
		weight := scoreEntry(patterns, entry)
		if weight <= 0 {
			continue
		}
		scored = append(scored, domain.ScoredEntry{Entry: entry, Weight: weight})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Weight > scored[j].Weight
	})

	ranked := make([]domain.CatalogEntry, len(scored))
	for i, s := range scored {
		ranked[i] = s.Entry
	}
	return ranked
}

// scoreEntry computes the relevance weight of one catalog entry. Entries
// with no tokens, or with no matching word at all, score zero.
func scoreEntry(patterns []termPattern, entry domain.CatalogEntry) float64 {
	if len(entry.QueryTokens) == 0 {
		return 0
	}

	queryString := normalizeText(strings.Join(entry.QueryTokens, " "))
	queryWords := strings.Fields(queryString)
	if len(queryWords) == 0 {
		return 0
	}

	matchCount := 0
	fullTermMatches := 0

	for _, p := range patterns {
		// Whole-phrase match first: it subsumes the per-word checks.
		if p.phraseRe != nil && p.phraseRe.MatchString(queryString) {
			fullTermMatches++
			matchCount += len(p.words)
			continue
		}

		for _, wordRe := range p.wordRes {
			if wordRe.MatchString(queryString) {
				matchCount++
			}
		}
	}

	if matchCount == 0 {
		return 0
	}

	matchRatio := float64(matchCount) / float64(len(queryWords))
	return float64(matchCount)*wordMatchWeight +
		float64(fullTermMatches)*phraseMatchWeight +
		matchRatio*coverageWeight
}

// compileTermPatterns normalizes each search term and compiles its
// word-boundary matchers. Empty terms are skipped.
func compileTermPatterns(searchTerms []string) []termPattern {
	patterns := make([]termPattern, 0, len(searchTerms))

	for _, term := range searchTerms {
		normalized := normalizeText(term)
		words := strings.Fields(normalized)
		if len(words) == 0 {
			continue
		}

		p := termPattern{words: words}
		p.phraseRe = wholeWordPattern(strings.Join(words, " "))
		for _, word := range words {
			if re := wholeWordPattern(word); re != nil {
				p.wordRes = append(p.wordRes, re)
			}
		}

		patterns = append(patterns, p)
	}

	return patterns
}

// wholeWordPattern compiles a word-boundary anchored matcher for the given
// phrase. Returns nil if the phrase cannot be compiled.
func wholeWordPattern(phrase string) *regexp.Regexp {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	if err != nil {
		return nil
	}
	return re
}

// normalizeText lowercases the input and strips diacritics by decomposing to
// NFD and removing combining marks, so "jamon" and "jamón" compare equal.
func normalizeText(s string) string {
	lowered := strings.ToLower(s)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}
