package domain

// CatalogEntry is a product's sitemap-derived identity plus its tokenized
// searchable text. Built once per sitemap parse; never mutated afterwards.
type CatalogEntry struct {
	ID          string
	DetailURL   string
	QueryTokens []string
}

// ScoredEntry pairs a catalog entry with its relevance weight during ranking.
type ScoredEntry struct {
	Entry  CatalogEntry
	Weight float64
}

// ProductDetail is the displayable result for a single product. It is a
// tagged success/failure variant: either the detail fields are populated, or
// Error is set with ID — never both.
type ProductDetail struct {
	ID                    string  `json:"id"`
	Thumbnail             string  `json:"thumbnail,omitempty"`
	Description           string  `json:"description,omitempty"`
	TranslatedDescription string  `json:"translatedDescription,omitempty"`
	UnitPrice             float64 `json:"unitPrice,omitempty"`
	UnitSize              float64 `json:"unitSize,omitempty"`
	SizeFormat            string  `json:"sizeFormat,omitempty"`
	Error                 string  `json:"error,omitempty"`
}

// SearchRequest represents an incoming product search.
type SearchRequest struct {
	SearchTerms []string `json:"searchTerms"`
	Page        int      `json:"page"`
}

// SearchResponse is one page of search results.
type SearchResponse struct {
	Products     []ProductDetail `json:"products"`
	TotalResults int             `json:"totalResults"`
	CurrentPage  int             `json:"currentPage"`
	TotalPages   int             `json:"totalPages"`
	HasMore      bool            `json:"hasMore"`
}

// SitemapURL is a single <url> element from the retailer sitemap.
type SitemapURL struct {
	Loc string
}
