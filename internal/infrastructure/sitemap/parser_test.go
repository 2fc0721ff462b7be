package sitemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/despensa/backend/internal/domain"
)

func TestParse(t *testing.T) {
	parser := NewParser()

	t.Run("decodes urlset entries", func(t *testing.T) {
		payload := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://tienda.example.es/product/1/pan-integral</loc>
    <lastmod>2024-01-01</lastmod>
  </url>
  <url>
    <loc>
      https://tienda.example.es/product/2/leche-entera
    </loc>
  </url>
</urlset>`

		urls, err := parser.Parse([]byte(payload))
		require.NoError(t, err)
		require.Len(t, urls, 2)
		assert.Equal(t, "https://tienda.example.es/product/1/pan-integral", urls[0].Loc)
		assert.Equal(t, "https://tienda.example.es/product/2/leche-entera", urls[1].Loc)
	})

	t.Run("malformed XML is a parse failure", func(t *testing.T) {
		_, err := parser.Parse([]byte("<urlset><url></urlset>"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("empty urlset yields no entries", func(t *testing.T) {
		urls, err := parser.Parse([]byte(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"></urlset>`))
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("entries without loc are skipped", func(t *testing.T) {
		urls, err := parser.Parse([]byte(`<urlset><url><loc></loc></url><url><loc>https://x/p/1/a</loc></url></urlset>`))
		require.NoError(t, err)
		require.Len(t, urls, 1)
		assert.Equal(t, "https://x/p/1/a", urls[0].Loc)
	})
}
