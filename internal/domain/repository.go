package domain

import "context"

// SitemapSource provides the raw retailer sitemap, refreshing it when stale.
type SitemapSource interface {
	Get(ctx context.Context) ([]byte, error)
}

// SitemapParser turns raw sitemap XML into URL entries.
type SitemapParser interface {
	Parse(data []byte) ([]SitemapURL, error)
}

// Translator translates a single piece of text into the target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// ProductClient fetches the full detail document for one product URL.
type ProductClient interface {
	FetchDetail(ctx context.Context, productURL string) (*ProductDetail, error)
}
