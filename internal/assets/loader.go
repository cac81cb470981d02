// Package assets resolves and caches the logo bitmaps a card render
// references. Loads are batched per render and cached for the process
// lifetime; the asset set is small and static so nothing is ever evicted.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

// Cache is the process-wide bitmap cache, keyed by logo reference. Entries
// are append-only: a failed load is cached too so it is not retried.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
}

type entry struct {
	img     image.Image // nil when the load failed
	settled bool
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: map[string]entry{}}
}

func (c *Cache) get(ref string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[ref]
	return e.img, ok && e.settled
}

func (c *Cache) put(ref string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[ref] = entry{img: img, settled: true}
}

// Loader fetches logo bitmaps. References starting with http:// or
// https:// are fetched remotely; absolute paths like /tokens/klv.png
// resolve under the local asset directory.
type Loader struct {
	cache  *Cache
	client *http.Client
	dir    string
	log    zerolog.Logger
}

// NewLoader builds a loader over a shared cache. dir is the local asset
// root for path references; empty disables local resolution.
func NewLoader(cache *Cache, dir string, log zerolog.Logger) *Loader {
	return &Loader{
		cache:  cache,
		client: &http.Client{Timeout: 10 * time.Second},
		dir:    dir,
		log:    log,
	}
}

// FetchAll resolves every reference and returns ref -> bitmap, with nil for
// failed loads. Cached entries are served synchronously; the rest load
// concurrently and the call returns once all of them settle. An empty set
// returns an empty map without any I/O. Cancelling ctx abandons the batch:
// in-flight fetches fail fast and settle as failures for this call only;
// only genuine load failures are cached, so an abandoned batch does not
// keep a later request from loading the same asset.
func (l *Loader) FetchAll(ctx context.Context, refs []string) map[string]image.Image {
	out := make(map[string]image.Image, len(refs))
	var wg sync.WaitGroup
	var mu sync.Mutex

	seen := map[string]bool{}
	for _, ref := range refs {
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true

		if img, ok := l.cache.get(ref); ok {
			out[ref] = img
			continue
		}

		wg.Add(1)
		go func(ref string) {
			defer wg.Done()
			img, err := l.fetch(ctx, ref)
			if err != nil {
				l.log.Warn().Str("ref", ref).Err(err).Msg("asset load failed")
				img = nil
			}
			// an abandoned batch never settled for real: leave the cache
			// untouched so the next request loads the asset fresh
			if err == nil || ctx.Err() == nil {
				l.cache.put(ref, img)
			}
			mu.Lock()
			out[ref] = img
			mu.Unlock()
		}(ref)
	}

	wg.Wait()
	return out
}

func (l *Loader) fetch(ctx context.Context, ref string) (image.Image, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return l.fetchRemote(ctx, ref)
	}
	return l.fetchLocal(ref)
}

func (l *Loader) fetchRemote(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func (l *Loader) fetchLocal(ref string) (image.Image, error) {
	if l.dir == "" {
		return nil, errors.New("no local asset directory configured")
	}
	path := filepath.Join(l.dir, filepath.FromSlash(strings.TrimPrefix(ref, "/")))
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}
