package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/despensa/backend/internal/domain"
)

// SearchService is the usecase surface the handlers depend on.
type SearchService interface {
	Search(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResponse, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search SearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(search SearchService) *Handler {
	return &Handler{search: search}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "despensa-backend",
		"version": "1.0.0",
	})
}

// searchRequestBody is the wire shape of a search request. Page is a pointer
// so an explicit invalid zero can be told apart from an absent field.
type searchRequestBody struct {
	SearchTerms []string `json:"searchTerms"`
	Page        *int     `json:"page"`
}

// Search handles product search requests. Validation failures come back as
// a 400 with field-level details; dependency failures as a generic 500.
func (h *Handler) Search(c *gin.Context) {
	var body searchRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []string{"request body must be valid JSON"},
		})
		return
	}

	if validationErrors := validateSearchRequest(&body); len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrors})
		return
	}

	request := &domain.SearchRequest{
		SearchTerms: body.SearchTerms,
		Page:        1,
	}
	if body.Page != nil {
		request.Page = *body.Page
	}

	response, err := h.search.Search(c.Request.Context(), request)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []string{"invalid request parameters"},
			})
			return
		}
		// No internal detail leaks out of the 500 body.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "an error occurred while processing your request",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// validateSearchRequest returns field-level validation messages, empty when
// the request is well-formed.
func validateSearchRequest(body *searchRequestBody) []string {
	var validationErrors []string

	if len(body.SearchTerms) == 0 {
		validationErrors = append(validationErrors, "searchTerms must be a non-empty array")
	}
	for _, term := range body.SearchTerms {
		if strings.TrimSpace(term) == "" {
			validationErrors = append(validationErrors, "searchTerms must not contain empty strings")
			break
		}
	}

	if body.Page != nil && *body.Page < 1 {
		validationErrors = append(validationErrors, "page must be a positive integer")
	}

	return validationErrors
}
