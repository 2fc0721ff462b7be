package tienda

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/despensa/backend/internal/domain"
)

// wireProduct mirrors the slice of the retailer's product document we use.
type wireProduct struct {
	ID     flexString `json:"id"`
	Photos []struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"photos"`
	Details struct {
		Description string `json:"description"`
	} `json:"details"`
	PriceInstructions struct {
		UnitPrice  flexFloat `json:"unit_price"`
		UnitSize   flexFloat `json:"unit_size"`
		SizeFormat string    `json:"size_format"`
	} `json:"price_instructions"`
}

// mapToProductDetail converts a wire product to our domain ProductDetail model
func mapToProductDetail(product *wireProduct) *domain.ProductDetail {
	detail := &domain.ProductDetail{
		ID:          string(product.ID),
		Description: product.Details.Description,
		UnitPrice:   float64(product.PriceInstructions.UnitPrice),
		UnitSize:    float64(product.PriceInstructions.UnitSize),
		SizeFormat:  product.PriceInstructions.SizeFormat,
	}

	if len(product.Photos) > 0 {
		detail.Thumbnail = product.Photos[0].Thumbnail
	}

	return detail
}

// flexString accepts either a JSON string or a bare number; the retailer API
// has shipped product ids both ways.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) >= 2 && data[0] == '"' {
		var raw string
		if err := unquote(data, &raw); err != nil {
			return err
		}
		*s = flexString(raw)
		return nil
	}
	*s = flexString(data)
	return nil
}

// flexFloat accepts either a JSON number or a numeric string; prices come
// back as strings like "2.50".
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q: %w", raw, err)
	}
	*f = flexFloat(value)
	return nil
}

// unquote decodes a JSON string literal.
func unquote(data []byte, out *string) error {
	unquoted, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid string value: %w", err)
	}
	*out = unquoted
	return nil
}
