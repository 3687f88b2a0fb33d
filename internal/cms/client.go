// Package cms reads long-form content pages from an optional remote CMS,
// falling back to markdown files on disk.
package cms

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a CMS resource cannot be located.
var ErrNotFound = errors.New("cms: not found")

const (
	defaultContentDir = "content"
	defaultLang       = "en"
	defaultCacheTTL   = 5 * time.Minute
)

// Client provides read-only access to content pages.
type Client struct {
	baseURL    string
	http       *http.Client
	contentDir string
	logger     *zap.Logger

	mu       sync.RWMutex
	cache    map[string]cacheEntry
	cacheTTL time.Duration
}

type cacheEntry struct {
	page    ContentPage
	expires time.Time
}

// NewClient constructs a Client. An empty baseURL disables the remote CMS.
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimSpace(baseURL)
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: 5 * time.Second},
		contentDir: defaultContentDir,
		logger:     zap.NewNop(),
		cache:      map[string]cacheEntry{},
		cacheTTL:   defaultCacheTTL,
	}
}

// SetContentDir configures the fallback directory for markdown pages.
func (c *Client) SetContentDir(dir string) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultContentDir
	}
	c.contentDir = dir
}

// ContentDir returns the configured fallback directory.
func (c *Client) ContentDir() string {
	if c == nil || strings.TrimSpace(c.contentDir) == "" {
		return defaultContentDir
	}
	return c.contentDir
}

// SetLogger sets the logger used to report remote failures.
func (c *Client) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l
}

// SetHTTPClient replaces the client used for remote requests.
func (c *Client) SetHTTPClient(h *http.Client) {
	if h != nil {
		c.http = h
	}
}

// SetCacheTTL overrides how long pages stay cached. Zero or less disables caching.
func (c *Client) SetCacheTTL(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cacheTTL = d
	c.cache = map[string]cacheEntry{}
}

func (c *Client) cached(key string) (ContentPage, bool) {
	c.mu.RLock()
	entry, ok := c.cache[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return ContentPage{}, false
	}
	return entry.page, true
}

func (c *Client) store(key string, page ContentPage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cacheTTL <= 0 {
		return
	}
	c.cache[key] = cacheEntry{page: page, expires: time.Now().Add(c.cacheTTL)}
}
