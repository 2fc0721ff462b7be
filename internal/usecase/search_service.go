package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/despensa/backend/internal/domain"
)

// FetchPolicy selects how a page of detail fetches is executed. Concurrency
// of 1 (or less) runs fetches sequentially in ranked order; anything higher
// fans out with that many workers. Either way a failing item degrades to an
// error placeholder instead of failing the page.
type FetchPolicy struct {
	Concurrency int
}

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	ResultsPerPage      int
	TargetLanguage      string        // language the search terms are translated into
	DescriptionLanguage string        // language product descriptions are translated into
	Timeout             time.Duration // overall deadline for one search
	Fetch               FetchPolicy
}

// SearchService orchestrates a product search: translate the terms, load and
// parse the sitemap, extract the catalog, rank it, then fetch details for
// the requested page.
type SearchService struct {
	sitemap    domain.SitemapSource
	parser     domain.SitemapParser
	translator domain.Translator
	products   domain.ProductClient
	extractor  *CatalogExtractor
	ranker     *Ranker

	resultsPerPage      int
	targetLanguage      string
	descriptionLanguage string
	timeout             time.Duration
	fetch               FetchPolicy
}

// NewSearchService creates a new search service with dependencies
func NewSearchService(
	sitemap domain.SitemapSource,
	parser domain.SitemapParser,
	translator domain.Translator,
	products domain.ProductClient,
	extractor *CatalogExtractor,
	config SearchServiceConfig,
) *SearchService {
	resultsPerPage := config.ResultsPerPage
	if resultsPerPage <= 0 {
		resultsPerPage = 6
	}

	targetLanguage := config.TargetLanguage
	if targetLanguage == "" {
		targetLanguage = "es"
	}

	descriptionLanguage := config.DescriptionLanguage
	if descriptionLanguage == "" {
		descriptionLanguage = "en"
	}

	return &SearchService{
		sitemap:             sitemap,
		parser:              parser,
		translator:          translator,
		products:            products,
		extractor:           extractor,
		ranker:              NewRanker(),
		resultsPerPage:      resultsPerPage,
		targetLanguage:      targetLanguage,
		descriptionLanguage: descriptionLanguage,
		timeout:             config.Timeout,
		fetch:               config.Fetch,
	}
}

// Search runs the full pipeline for one request and assembles the page
// response. Translation failures degrade to the untranslated terms; only a
// sitemap failure is request-fatal.
func (s *SearchService) Search(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResponse, error) {
	if request == nil || len(request.SearchTerms) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	page := request.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, domain.ErrInvalidRequest
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	translatedTerms := s.translateTerms(ctx, request.SearchTerms)

	rawSitemap, err := s.sitemap.Get(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, domain.ErrDependencyTimeout) {
			return nil, fmt.Errorf("%w: sitemap", domain.ErrDependencyTimeout)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrSitemapUnavailable, err)
	}

	sitemapURLs, err := s.parser.Parse(rawSitemap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSitemapUnavailable, err)
	}

	catalog := s.extractor.Extract(sitemapURLs)
	ranked := s.ranker.Rank(translatedTerms, catalog)
	log.Printf("[SEARCH] terms=%v matches=%d page=%d", translatedTerms, len(ranked), page)

	products := s.fetchPage(ctx, ranked, page)

	total := len(ranked)
	totalPages := (total + s.resultsPerPage - 1) / s.resultsPerPage

	return &domain.SearchResponse{
		Products:     products,
		TotalResults: total,
		CurrentPage:  page,
		TotalPages:   totalPages,
		HasMore:      page*s.resultsPerPage < total,
	}, nil
}

// translateTerms translates each search term into the target language. A
// failed translation falls back to the original term so the search can
// proceed in degraded mode.
func (s *SearchService) translateTerms(ctx context.Context, terms []string) []string {
	translated := make([]string, len(terms))

	for i, term := range terms {
		result, err := s.translator.Translate(ctx, term, s.targetLanguage)
		if err != nil || result == "" {
			log.Printf("[SEARCH] translation failed for %q, using original term: %v", term, err)
			translated[i] = term
			continue
		}
		translated[i] = result
	}

	return translated
}

// fetchPage selects the requested slice of the ranked list and fetches full
// details for each entry, preserving ranked order in the result.
func (s *SearchService) fetchPage(ctx context.Context, ranked []domain.CatalogEntry, page int) []domain.ProductDetail {
	start := (page - 1) * s.resultsPerPage
	if start >= len(ranked) {
		return []domain.ProductDetail{}
	}

	end := start + s.resultsPerPage
	if end > len(ranked) {
		end = len(ranked)
	}
	selected := ranked[start:end]

	if s.fetch.Concurrency > 1 {
		return s.fetchConcurrent(ctx, selected)
	}
	return s.fetchSequential(ctx, selected)
}

// fetchSequential fetches one entry at a time in ranked order. The product
// client's own throttle provides the inter-request delay.
func (s *SearchService) fetchSequential(ctx context.Context, entries []domain.CatalogEntry) []domain.ProductDetail {
	details := make([]domain.ProductDetail, len(entries))
	for i, entry := range entries {
		details[i] = s.fetchOne(ctx, entry)
	}
	return details
}

// fetchConcurrent fans the page out across a bounded worker group. Each slot
// writes only its own index, so no further synchronization is needed.
func (s *SearchService) fetchConcurrent(ctx context.Context, entries []domain.CatalogEntry) []domain.ProductDetail {
	details := make([]domain.ProductDetail, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fetch.Concurrency)

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			details[i] = s.fetchOne(gctx, entry)
			return nil
		})
	}

	// Workers never return errors; failures are isolated per item.
	_ = g.Wait()

	return details
}

// fetchOne fetches a single product detail and converts any failure into an
// error placeholder carrying the catalog id. The fetched description is also
// translated best-effort; a translation failure just leaves it absent.
func (s *SearchService) fetchOne(ctx context.Context, entry domain.CatalogEntry) domain.ProductDetail {
	detail, err := s.products.FetchDetail(ctx, entry.DetailURL)
	if err != nil {
		log.Printf("[SEARCH] detail fetch failed for product %s: %v", entry.ID, err)
		return domain.ProductDetail{
			ID:    entry.ID,
			Error: "failed to fetch product details",
		}
	}

	if detail.ID == "" {
		detail.ID = entry.ID
	}

	if detail.Description != "" {
		translated, err := s.translator.Translate(ctx, detail.Description, s.descriptionLanguage)
		if err == nil {
			detail.TranslatedDescription = translated
		}
	}

	return *detail
}
