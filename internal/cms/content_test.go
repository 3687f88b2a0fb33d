package cms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newLocalClient(t *testing.T) (*Client, string) {
	t.Helper()
	dir := t.TempDir()
	c := NewClient("")
	c.SetContentDir(dir)
	return c, dir
}

func TestGetContentPageLocalMarkdown(t *testing.T) {
	c, dir := newLocalClient(t)
	writeFile(t, filepath.Join(dir, "about", "en", "our-story.md"), `---
title: Our story
summary: How we started.
updated_at: 2025-03-01
seo:
  description: Story of the team.
  robots: noindex
---

## Beginnings

Started in **Penrith**.

<script>alert(1)</script>
`)

	page, err := c.GetContentPage(context.Background(), "about", "our-story", "en")
	require.NoError(t, err)
	require.Equal(t, "Our story", page.Title)
	require.Equal(t, "How we started.", page.Summary)
	require.Equal(t, "markdown", page.Format)
	require.Equal(t, "noindex", page.SEO.Robots)
	require.Equal(t, 2025, page.UpdatedAt.Year())

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML()))
	require.NoError(t, err)
	require.Equal(t, "Beginnings", doc.Find("h2#beginnings").Text())
	require.Equal(t, "Penrith", doc.Find("strong").Text())
	require.Zero(t, doc.Find("script").Length())
	require.NotContains(t, page.HTML(), "alert(1)")
}

func TestGetContentPageFallsBackToEnglish(t *testing.T) {
	c, dir := newLocalClient(t)
	writeFile(t, filepath.Join(dir, "policies", "en", "privacy.md"), "# Privacy\n")

	page, err := c.GetContentPage(context.Background(), "policies", "privacy", "vi")
	require.NoError(t, err)
	require.Equal(t, "en", page.Lang)
	require.Equal(t, "Privacy", page.Title, "title defaults to the prettified slug")
}

func TestGetContentPageNotFound(t *testing.T) {
	c, _ := newLocalClient(t)
	for _, slug := range []string{"missing", "", "../secret", "a/b", `a\b`} {
		_, err := c.GetContentPage(context.Background(), "about", slug, "en")
		require.ErrorIs(t, err, ErrNotFound, slug)
	}
	_, err := c.GetContentPage(context.Background(), "../etc", "passwd", "en")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetContentPageBadFrontMatter(t *testing.T) {
	c, dir := newLocalClient(t)
	writeFile(t, filepath.Join(dir, "about", "en", "broken.md"), "---\ntitle: [unclosed\n---\nbody\n")

	_, err := c.GetContentPage(context.Background(), "about", "broken", "en")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestListContentPagesOrdersByOrderThenTitle(t *testing.T) {
	c, dir := newLocalClient(t)
	writeFile(t, filepath.Join(dir, "about", "en", "b.md"), "---\ntitle: Bravo\norder: 2\n---\nx\n")
	writeFile(t, filepath.Join(dir, "about", "en", "a.md"), "---\ntitle: Alpha\norder: 2\n---\nx\n")
	writeFile(t, filepath.Join(dir, "about", "en", "c.md"), "---\ntitle: Charlie\norder: 1\n---\nx\n")
	writeFile(t, filepath.Join(dir, "about", "en", "notes.txt"), "ignored")

	pages, err := c.ListContentPages(context.Background(), "about", "en")
	require.NoError(t, err)
	var slugs []string
	for _, p := range pages {
		slugs = append(slugs, p.Slug)
	}
	require.Equal(t, []string{"c", "a", "b"}, slugs)

	empty, err := c.ListContentPages(context.Background(), "policies", "en")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestGetContentPageRemote(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/content/about/remote-page" || r.URL.Query().Get("lang") != "en" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title":  "From the CMS",
			"body":   "<p onclick=\"x()\">Hello</p>",
			"format": "html",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetContentDir(t.TempDir())

	page, err := c.GetContentPage(context.Background(), "about", "remote-page", "en")
	require.NoError(t, err)
	require.Equal(t, "From the CMS", page.Title)
	require.Equal(t, "<p>Hello</p>", page.HTML())

	_, err = c.GetContentPage(context.Background(), "about", "remote-page", "en")
	require.NoError(t, err)
	require.EqualValues(t, 1, hits.Load(), "second read is served from cache")
}

func TestGetContentPageRemoteFailureUsesLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "contact", "en", "enquire.md"), "---\ntitle: Enquire\n---\nCall us.\n")
	c := NewClient(srv.URL)
	c.SetContentDir(dir)
	c.SetCacheTTL(0)

	page, err := c.GetContentPage(context.Background(), "contact", "enquire", "en")
	require.NoError(t, err)
	require.Equal(t, "Enquire", page.Title)
}

func TestRepositoryContentParses(t *testing.T) {
	c := NewClient("")
	c.SetContentDir(filepath.Join("..", "..", "content"))
	for _, kind := range []string{"about", "contact", "policies"} {
		pages, err := c.ListContentPages(context.Background(), kind, "en")
		require.NoError(t, err, kind)
		require.NotEmpty(t, pages, kind)
		for _, p := range pages {
			require.NotEmpty(t, p.Title)
			require.NotEmpty(t, p.HTML())
		}
	}
}
