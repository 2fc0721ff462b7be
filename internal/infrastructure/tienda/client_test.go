package tienda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/despensa/backend/internal/domain"
)

const productPayload = `{
	"id": "48027",
	"photos": [
		{"thumbnail": "https://img.example.es/48027/thumb.jpg"},
		{"thumbnail": "https://img.example.es/48027/thumb2.jpg"}
	],
	"details": {"description": "Aceite de oliva virgen extra"},
	"price_instructions": {
		"unit_price": "4.50",
		"unit_size": 1,
		"size_format": "L"
	}
}`

func TestFetchDetail_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "despensa-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productPayload))
	}))
	defer server.Close()

	client := NewClient("despensa-test", 0, 5*time.Second)

	detail, err := client.FetchDetail(context.Background(), server.URL+"/api/products/48027")
	require.NoError(t, err)

	assert.Equal(t, "48027", detail.ID)
	assert.Equal(t, "https://img.example.es/48027/thumb.jpg", detail.Thumbnail)
	assert.Equal(t, "Aceite de oliva virgen extra", detail.Description)
	assert.Equal(t, 4.50, detail.UnitPrice)
	assert.Equal(t, 1.0, detail.UnitSize)
	assert.Equal(t, "L", detail.SizeFormat)
	assert.Empty(t, detail.Error)
}

func TestFetchDetail_NumericID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 48027, "details": {"description": "x"}, "price_instructions": {"unit_price": 2.5}}`))
	}))
	defer server.Close()

	client := NewClient("despensa-test", 0, 5*time.Second)

	detail, err := client.FetchDetail(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "48027", detail.ID)
	assert.Equal(t, 2.5, detail.UnitPrice)
}

func TestFetchDetail_NoPhotos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "1", "photos": [], "details": {"description": "x"}, "price_instructions": {"unit_price": "1.00"}}`))
	}))
	defer server.Close()

	client := NewClient("despensa-test", 0, 5*time.Second)

	detail, err := client.FetchDetail(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Empty(t, detail.Thumbnail)
}

func TestFetchDetail_HTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"rate limited", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient("despensa-test", 0, 5*time.Second)

			_, err := client.FetchDetail(context.Background(), server.URL)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrProductFetchFailure)
		})
	}
}

func TestFetchDetail_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": `))
	}))
	defer server.Close()

	client := NewClient("despensa-test", 0, 5*time.Second)

	_, err := client.FetchDetail(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductFetchFailure)
}

func TestFetchDetail_Throttling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(productPayload))
	}))
	defer server.Close()

	delay := 80 * time.Millisecond
	client := NewClient("despensa-test", delay, 5*time.Second)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := client.FetchDetail(ctx, server.URL)
		require.NoError(t, err)
	}
	elapsed := time.Since(start)

	// Three spaced requests need at least two full delays.
	assert.GreaterOrEqual(t, elapsed, 2*delay)
}

func TestFetchDetail_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	client := NewClient("despensa-test", 0, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchDetail(ctx, server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductFetchFailure)
}

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"quoted decimal", `"4.50"`, 4.50, false},
		{"bare number", `4.5`, 4.5, false},
		{"integer", `3`, 3, false},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"garbage", `"abc"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flexFloat
			err := f.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, float64(f))
		})
	}
}
