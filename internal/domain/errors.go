package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrSitemapUnavailable is returned when the sitemap cannot be fetched
	ErrSitemapUnavailable = errors.New("sitemap fetch failed")

	// ErrParseFailure is returned when a dependency returns a malformed payload
	ErrParseFailure = errors.New("malformed payload")

	// ErrDependencyTimeout is returned when a request-fatal dependency never answers
	ErrDependencyTimeout = errors.New("dependency timed out")

	// ErrTranslationFailure is returned when the translation service fails;
	// callers recover by keeping the untranslated term
	ErrTranslationFailure = errors.New("translation request failed")

	// ErrProductFetchFailure is returned when a single product detail fetch
	// fails; callers recover with an error placeholder for that item
	ErrProductFetchFailure = errors.New("product detail fetch failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
