package sitemap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/despensa/backend/internal/domain"
)

// Cache holds the raw sitemap payload and refetches it from the remote
// source once it is older than the TTL. Concurrent callers hitting an
// expired cache share a single in-flight fetch. There is no stale fallback:
// a failed refetch fails the read.
type Cache struct {
	httpClient *http.Client
	url        string
	userAgent  string
	ttl        time.Duration
	cachePath  string

	mu        sync.RWMutex
	data      []byte
	fetchedAt time.Time

	group singleflight.Group
	now   func() time.Time
}

// NewCache creates a sitemap cache for the given remote URL. If cachePath is
// non-empty, the payload is mirrored to disk and reused on restart while
// still within the TTL.
func NewCache(url, userAgent, cachePath string, ttl time.Duration) *Cache {
	c := &Cache{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		url:       url,
		userAgent: userAgent,
		ttl:       ttl,
		cachePath: cachePath,
		now:       time.Now,
	}

	c.loadFromDisk()

	return c
}

// Get returns the cached sitemap payload, refetching it first if the cache
// is empty or the data has reached the TTL.
func (c *Cache) Get(ctx context.Context) ([]byte, error) {
	c.mu.RLock()
	if c.fresh() {
		data := c.data
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do("sitemap", func() (interface{}, error) {
		return c.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// fresh reports whether the cached payload exists and is younger than the
// TTL. Callers must hold at least a read lock.
func (c *Cache) fresh() bool {
	return c.data != nil && c.now().Sub(c.fetchedAt) < c.ttl
}

// refresh fetches the sitemap from the remote source and stores it. A caller
// that queued behind a completed flight re-checks freshness first so it does
// not refetch data that just arrived.
func (c *Cache) refresh(ctx context.Context) ([]byte, error) {
	c.mu.RLock()
	if c.fresh() {
		data := c.data
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSitemapUnavailable, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", domain.ErrDependencyTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrSitemapUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrSitemapUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSitemapUnavailable, err)
	}

	c.mu.Lock()
	c.data = data
	c.fetchedAt = c.now()
	c.mu.Unlock()

	c.persistToDisk(data)
	log.Printf("[SITEMAP] refreshed, %d bytes", len(data))

	return data, nil
}

// loadFromDisk seeds the cache from a previous run's payload if the file is
// still within the TTL. Any problem just means starting cold.
func (c *Cache) loadFromDisk() {
	if c.cachePath == "" {
		return
	}

	info, err := os.Stat(c.cachePath)
	if err != nil {
		return
	}
	if c.now().Sub(info.ModTime()) >= c.ttl {
		return
	}

	data, err := os.ReadFile(c.cachePath)
	if err != nil || len(data) == 0 {
		return
	}

	c.data = data
	c.fetchedAt = info.ModTime()
	log.Printf("[SITEMAP] reusing cached payload from %s", c.cachePath)
}

// persistToDisk mirrors the payload to the cache file, best effort.
func (c *Cache) persistToDisk(data []byte) {
	if c.cachePath == "" {
		return
	}
	if err := os.WriteFile(c.cachePath, data, 0o644); err != nil {
		log.Printf("[SITEMAP] failed to write cache file: %v", err)
	}
}
