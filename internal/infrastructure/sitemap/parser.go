package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/despensa/backend/internal/domain"
)

// urlSet mirrors the sitemap protocol's <urlset> document.
type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

// Parser decodes sitemap XML into URL entries.
type Parser struct{}

// NewParser creates a new sitemap parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a <urlset> document. Malformed XML is a parse failure; a
// well-formed document with no <url> entries is just an empty result.
func (p *Parser) Parse(data []byte) ([]domain.SitemapURL, error) {
	var set urlSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}

	urls := make([]domain.SitemapURL, 0, len(set.URLs))
	for _, u := range set.URLs {
		loc := strings.TrimSpace(u.Loc)
		if loc == "" {
			continue
		}
		urls = append(urls, domain.SitemapURL{Loc: loc})
	}

	return urls, nil
}
