package sitegen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"summitcare.com.au/web/internal/cms"
	"summitcare.com.au/web/internal/i18n"
	"summitcare.com.au/web/internal/locations"
	"summitcare.com.au/web/internal/pages"
)

const baseURL = "https://example.test"

func newBuilder(t *testing.T) (*Builder, string) {
	t.Helper()
	bundle, err := i18n.Default()
	require.NoError(t, err)
	table, err := locations.Default()
	require.NoError(t, err)
	client := cms.NewClient("")
	client.SetContentDir("../../content")

	public := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(public, "assets", "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "assets", "css", "site.css"), []byte("body{}"), 0o644))

	out := filepath.Join(t.TempDir(), "dist")
	return &Builder{
		Site: &pages.Site{
			Brand:     pages.Brand{Name: "Summit Care"},
			BaseURL:   baseURL,
			Locations: table,
			CMS:       client,
			Bundle:    bundle,
		},
		OutDir:    out,
		PublicDir: public,
		Lang:      "en",
		Logger:    zaptest.NewLogger(t),
	}, out
}

func readDoc(t *testing.T, path string) *goquery.Document {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	d, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return d
}

func TestBuildWritesEveryLocation(t *testing.T) {
	b, out := newBuilder(t)
	report, err := b.Build(context.Background())
	require.NoError(t, err)

	table := b.Site.Locations
	require.Equal(t, table.Slugs(), report.Locations)

	dirs, err := os.ReadDir(filepath.Join(out, "sil"))
	require.NoError(t, err)
	var built []string
	for _, d := range dirs {
		if d.IsDir() {
			built = append(built, d.Name())
		}
	}
	require.Len(t, built, table.Len())

	for _, slug := range built {
		d := readDoc(t, filepath.Join(out, "sil", slug, "index.html"))
		canonical := d.Find(`link[rel="canonical"]`).AttrOr("href", "")
		got, ok := strings.CutPrefix(canonical, baseURL+"/sil/")
		require.True(t, ok, canonical)
		rec, err := table.Lookup(got)
		require.NoError(t, err)
		require.Equal(t, slug, rec.Slug)
		require.Equal(t, rec.HeroTitle, strings.TrimSpace(d.Find("h1").First().Text()))
	}
}

func TestBuildWritesSupportFiles(t *testing.T) {
	b, out := newBuilder(t)
	stale := filepath.Join(out, "stale.html")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	report, err := b.Build(context.Background())
	require.NoError(t, err)
	require.NoFileExists(t, stale)

	for _, p := range report.Pages {
		require.FileExists(t, filepath.Join(out, filepath.FromSlash(p), "index.html"), p)
	}
	require.FileExists(t, filepath.Join(out, "index.html"))
	require.FileExists(t, filepath.Join(out, "404.html"))
	require.FileExists(t, filepath.Join(out, "assets", "css", "site.css"))

	css, err := os.ReadFile(filepath.Join(out, "assets", "effects.css"))
	require.NoError(t, err)
	require.Contains(t, string(css), "@keyframes")

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	require.Equal(t, len(report.Pages), strings.Count(string(sitemap), "<loc>"))
}

func TestBuildRejectsUnsafeOutDir(t *testing.T) {
	b, _ := newBuilder(t)
	unsafe := []string{
		"", " ", ".", "/", "..", "../..",
		b.PublicDir,
		filepath.Dir(b.PublicDir),
		filepath.Join(b.PublicDir, "assets"),
		"../../content",
		"../../content/about",
	}
	for _, dir := range unsafe {
		b.OutDir = dir
		_, err := b.Build(context.Background())
		require.Error(t, err, dir)
	}
	require.FileExists(t, filepath.Join(b.PublicDir, "assets", "css", "site.css"))
	require.FileExists(t, "../../content/about/en/about-summit.md")
}

func TestBuildReloadsSite(t *testing.T) {
	b, out := newBuilder(t)
	contentDir := t.TempDir()
	page := filepath.Join(contentDir, "about", "en", "story.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(page), 0o755))
	require.NoError(t, os.WriteFile(page, []byte("---\ntitle: First draft\n---\nbody\n"), 0o644))

	base := *b.Site
	var loads int
	b.Load = func() (*pages.Site, error) {
		loads++
		client := cms.NewClient("")
		client.SetContentDir(contentDir)
		site := base
		site.CMS = client
		return &site, nil
	}

	_, err := b.Build(context.Background())
	require.NoError(t, err)
	d := readDoc(t, filepath.Join(out, "about", "story", "index.html"))
	require.Equal(t, "First draft", strings.TrimSpace(d.Find("h1").First().Text()))

	require.NoError(t, os.WriteFile(page, []byte("---\ntitle: Second draft\n---\nbody\n"), 0o644))
	_, err = b.Build(context.Background())
	require.NoError(t, err)
	d = readDoc(t, filepath.Join(out, "about", "story", "index.html"))
	require.Equal(t, "Second draft", strings.TrimSpace(d.Find("h1").First().Text()))
	require.Equal(t, 2, loads)
}

func TestBuildLoadError(t *testing.T) {
	b, _ := newBuilder(t)
	b.Load = func() (*pages.Site, error) { return nil, os.ErrNotExist }
	_, err := b.Build(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcherDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(zaptest.NewLogger(t), dir, filepath.Join(dir, "missing"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, 50*time.Millisecond, func() { calls.Add(1) }) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte{byte('a' + i)}, 0o644))
	}
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 3*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
