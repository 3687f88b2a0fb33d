package pages

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"summitcare.com.au/web/internal/cms"
	"summitcare.com.au/web/internal/content"
	"summitcare.com.au/web/internal/i18n"
	"summitcare.com.au/web/internal/locations"
	"summitcare.com.au/web/internal/ui"
)

func newTestSite(t *testing.T, table *locations.Table) *Site {
	t.Helper()
	ui.InitEffectStyles()
	bundle, err := i18n.Default()
	require.NoError(t, err)
	if table == nil {
		table, err = locations.Default()
		require.NoError(t, err)
	}
	dir := t.TempDir()
	writeMarkdown(t, filepath.Join(dir, "about", "en", "our-story.md"), "---\ntitle: Our story\nsummary: How we began.\norder: 1\n---\n## Beginnings\n\nWe started <script>alert(1)</script>in **2019**.\n")
	writeMarkdown(t, filepath.Join(dir, "policies", "en", "privacy.md"), "---\ntitle: Privacy\nseo:\n  robots: noindex\n---\nWe keep your data safe.\n")
	client := cms.NewClient("")
	client.SetContentDir(dir)

	return &Site{
		Brand:     Brand{Name: "Summit Care", Phone: "1300 786 648", Region: "NSW", Country: "AU"},
		BaseURL:   "https://example.test/",
		Locations: table,
		CMS:       client,
		Bundle:    bundle,
	}
}

func writeMarkdown(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func renderDoc(t *testing.T, s *Site, p Page) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, s.Render(&sb, "en", p))
	d, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return d
}

func jsonLD(t *testing.T, d *goquery.Document) []map[string]any {
	t.Helper()
	var out []map[string]any
	d.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(sel.Text()), &m))
		out = append(out, m)
	})
	return out
}

func TestLocationStructuredData(t *testing.T) {
	t.Parallel()

	table, err := locations.New([]locations.Record{{
		Slug:      "testville",
		Name:      "Testville",
		Region:    "Western Sydney",
		HeroTitle: "SIL in Testville",
		FAQs:      []locations.FAQ{{Question: "Q1", Answer: "A1"}},
	}})
	require.NoError(t, err)
	s := newTestSite(t, table)

	p, err := s.Location("en", "testville")
	require.NoError(t, err)
	require.Equal(t, "/sil/testville", p.Path)

	docs := jsonLD(t, renderDoc(t, s, p))
	require.Len(t, docs, 3)
	require.Equal(t, "FAQPage", docs[0]["@type"])
	entities := docs[0]["mainEntity"].([]any)
	require.Len(t, entities, 1)
	q := entities[0].(map[string]any)
	require.Equal(t, "Q1", q["name"])
	require.Equal(t, "A1", q["acceptedAnswer"].(map[string]any)["text"])
	require.Equal(t, "LocalBusiness", docs[1]["@type"])
	area := docs[1]["areaServed"].([]any)[0].(map[string]any)
	require.Equal(t, "Testville", area["name"])
	require.Equal(t, "Western Sydney", area["containedInPlace"].(map[string]any)["name"])
	require.Equal(t, "BreadcrumbList", docs[2]["@type"])
}

func TestLocationPage(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)
	rec, err := s.Locations.Lookup("parramatta")
	require.NoError(t, err)

	p, err := s.Location("en", "parramatta")
	require.NoError(t, err)
	d := renderDoc(t, s, p)

	require.Equal(t, rec.MetaTitle, d.Find("title").Text())
	require.Equal(t, "https://example.test/sil/parramatta", d.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, rec.HeroTitle, strings.TrimSpace(d.Find("h1").First().Text()))
	require.Equal(t, len(rec.FAQs), d.Find(".ui-accordion details").Length())
	require.Equal(t, len(rec.NearbySuburbs), d.Find(".ui-badge").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		for _, suburb := range rec.NearbySuburbs {
			if sel.Text() == suburb {
				return true
			}
		}
		return false
	}).Length())

	crumb := d.Find(`.breadcrumbs [aria-current="page"]`)
	require.Equal(t, rec.Name, crumb.Text())

	others := d.Find(`a.ui-card[href^="/sil/"]`)
	require.Equal(t, s.Locations.Len()-1, others.Length())
	others.Each(func(_ int, sel *goquery.Selection) {
		require.NotEqual(t, "/sil/parramatta", sel.AttrOr("href", ""))
	})
}

func TestLocationNotFound(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)
	_, err := s.Location("en", "nowhere")
	require.Error(t, err)
	require.True(t, IsNotFound(err))

	_, err = (&Site{}).Location("en", "parramatta")
	require.True(t, IsNotFound(err))
}

func TestEffectsStylesheetLinkedOnce(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)
	for _, p := range []Page{s.Home("en"), s.Components("en", ""), s.NotFound("en")} {
		d := renderDoc(t, s, p)
		links := d.Find(`link[rel="stylesheet"][href^="/assets/effects.css"]`)
		require.Equal(t, 1, links.Length(), p.Title)
		require.Equal(t, "/assets/effects.css?v="+ui.EffectStylesheetDigest(), links.AttrOr("href", ""))
	}
}

func TestHomePage(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)
	d := renderDoc(t, s, s.Home("en"))

	stack := d.Find(`[data-arrangement="circle"]`)
	require.Equal(t, 1, stack.Length())
	require.Equal(t, len(content.HomePage().SupportIcons), stack.Find(".ui-icon").Length())

	for _, svc := range content.Services() {
		require.Equal(t, 1, d.Find(`a.ui-card[href="`+svc.Path()+`"]`).Length(), svc.Slug)
	}
	require.Equal(t, 0, d.Find(".breadcrumbs").Length())

	types := []any{}
	for _, m := range jsonLD(t, d) {
		types = append(types, m["@type"])
	}
	require.Equal(t, []any{"Organization", "WebSite"}, types)
	require.Equal(t, "page", d.Find(`header a[href="/"][aria-current]`).AttrOr("aria-current", ""))
}

func TestServicePage(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)
	p, err := s.Service("en", "sil")
	require.NoError(t, err)
	d := renderDoc(t, s, p)
	require.Equal(t, s.Locations.Len(), d.Find(`a.ui-card[href^="/sil/"]`).Length())
	require.Equal(t, "page", d.Find(`header a[href="/sil"]`).AttrOr("aria-current", ""))

	p, err = s.Service("en", "sda")
	require.NoError(t, err)
	d = renderDoc(t, s, p)
	require.Equal(t, 0, d.Find(`a.ui-card[href^="/sil/"]`).Length())
	require.Equal(t, "FAQPage", jsonLD(t, d)[0]["@type"])

	_, err = s.Service("en", "respite")
	require.True(t, IsNotFound(err))
}

func TestContentPage(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)
	ctx := context.Background()

	p, err := s.Content(ctx, "en", "about", "our-story")
	require.NoError(t, err)
	d := renderDoc(t, s, p)
	body := d.Find("article.cms-body")
	require.Equal(t, 1, body.Find("h2#beginnings").Length())
	require.Equal(t, "2019", body.Find("strong").Text())
	require.Equal(t, 0, body.Find("script").Length())
	require.Equal(t, "Our story", d.Find(`.breadcrumbs [aria-current="page"]`).Text())
	require.Equal(t, "How we began.", d.Find(`meta[name="description"]`).AttrOr("content", ""))

	p, err = s.Content(ctx, "en", "policies", "privacy")
	require.NoError(t, err)
	require.Equal(t, "noindex", renderDoc(t, s, p).Find(`meta[name="robots"]`).AttrOr("content", ""))

	_, err = s.Content(ctx, "en", "about", "missing")
	require.True(t, IsNotFound(err))
	_, err = s.Content(ctx, "en", "secrets", "our-story")
	require.True(t, IsNotFound(err))
}

func TestSectionPage(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)
	ctx := context.Background()

	p, err := s.Section(ctx, "en", "about")
	require.NoError(t, err)
	d := renderDoc(t, s, p)
	require.Equal(t, 1, d.Find(`a.ui-card[href="/about/our-story"]`).Length())

	p, err = s.Section(ctx, "en", "contact")
	require.NoError(t, err)
	d = renderDoc(t, s, p)
	require.Equal(t, 0, d.Find(".ui-card").Length())
	require.Contains(t, d.Find("main").Text(), s.t("en", "section.empty"))

	_, err = s.Section(ctx, "en", "secrets")
	require.True(t, IsNotFound(err))
}

func TestComponentsSearch(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)

	all := renderDoc(t, s, s.Components("en", ""))
	require.Equal(t, len(ui.Catalog().All()), all.Find("[data-component]").Length())
	require.Equal(t, "noindex", all.Find(`meta[name="robots"]`).AttrOr("content", ""))

	d := renderDoc(t, s, s.Components("en", "  badge "))
	require.Equal(t, 1, d.Find(`[data-component="Badge"]`).Length())
	require.Equal(t, 0, d.Find(`[data-component="EnhancedIcon"]`).Length())
	require.Equal(t, "badge", d.Find(`input[name="q"]`).AttrOr("value", ""))

	none := renderDoc(t, s, s.Components("en", "zzz-no-match"))
	require.Equal(t, 0, none.Find("[data-component]").Length())
	require.Contains(t, none.Find("main").Text(), "zzz-no-match")
}

func TestComponentsUsesSiteCatalog(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)
	s.Catalog = ui.NewRegistry(ui.ComponentMeta{
		Name:        "Widget",
		Category:    ui.CategoryContent,
		Description: "Only entry.",
	})

	d := renderDoc(t, s, s.Components("en", ""))
	require.Equal(t, 1, d.Find("[data-component]").Length())
	require.Equal(t, 1, d.Find(`[data-component="Widget"]`).Length())
	require.Equal(t, 0, d.Find(`[data-component="Badge"]`).Length())
}

func TestNotFoundPage(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)
	d := renderDoc(t, s, s.NotFound("en"))
	require.Equal(t, 0, d.Find(`link[rel="canonical"]`).Length())
	require.Equal(t, 0, d.Find(`header [aria-current]`).Length())
	require.Equal(t, "noindex", d.Find(`meta[name="robots"]`).AttrOr("content", ""))
}

func TestPathsAndPageFor(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)
	ctx := context.Background()
	paths, err := s.Paths(ctx)
	require.NoError(t, err)

	require.Equal(t, "/", paths[0])
	require.Equal(t, "/components", paths[len(paths)-1])
	for _, want := range []string{"/sil", "/sda", "/sta", "/mta", "/about", "/about/our-story", "/contact", "/policies", "/policies/privacy"} {
		require.Contains(t, paths, want)
	}
	for _, slug := range s.Locations.Slugs() {
		require.Contains(t, paths, LocationPath(slug))
	}

	seen := map[string]bool{}
	for _, path := range paths {
		require.False(t, seen[path], "duplicate %s", path)
		seen[path] = true
		p, err := s.PageFor(ctx, "en", path)
		require.NoError(t, err, path)
		require.Equal(t, path, p.Path)
	}

	for _, path := range []string{"/nope", "/sil/nowhere", "/about/missing", "/a/b/c"} {
		_, err := s.PageFor(ctx, "en", path)
		require.True(t, IsNotFound(err), path)
	}
}

func TestSitemap(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, nil)
	out, err := s.Sitemap([]string{"/", "/sil/parramatta"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), xml.Header))

	var set struct {
		URLs []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(out, &set))
	require.Len(t, set.URLs, 2)
	require.Equal(t, "https://example.test/", set.URLs[0].Loc)
	require.Equal(t, "https://example.test/sil/parramatta", set.URLs[1].Loc)
}
