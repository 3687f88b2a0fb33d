package pages

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"summitcare.com.au/web/internal/content"
)

// Paths lists every static route in a stable order: home, services,
// locations, content sections and their pages, then the component library.
func (s *Site) Paths(ctx context.Context) ([]string, error) {
	paths := []string{"/"}
	for _, svc := range content.Services() {
		paths = append(paths, svc.Path())
	}
	if s.Locations != nil {
		for _, slug := range s.Locations.Slugs() {
			paths = append(paths, LocationPath(slug))
		}
	}
	for _, kind := range ContentKinds {
		paths = append(paths, "/"+kind)
		if s.CMS == nil {
			continue
		}
		list, err := s.CMS.ListContentPages(ctx, kind, "")
		if err != nil {
			return nil, fmt.Errorf("pages: list %s: %w", kind, err)
		}
		for _, cp := range list {
			paths = append(paths, "/"+kind+"/"+cp.Slug)
		}
	}
	return append(paths, "/components"), nil
}

// PageFor builds the page served at path. Unknown paths return an error for
// which IsNotFound is true.
func (s *Site) PageFor(ctx context.Context, lang, path string) (Page, error) {
	switch path {
	case "/":
		return s.Home(lang), nil
	case "/components":
		return s.Components(lang, ""), nil
	}
	seg := splitPath(path)
	switch {
	case len(seg) == 1 && isContentKind(seg[0]):
		return s.Section(ctx, lang, seg[0])
	case len(seg) == 1:
		return s.Service(lang, seg[0])
	case len(seg) == 2 && seg[0] == "sil":
		return s.Location(lang, seg[1])
	case len(seg) == 2 && isContentKind(seg[0]):
		return s.Content(ctx, lang, seg[0], seg[1])
	}
	return Page{}, fmt.Errorf("%w: %q", content.ErrUnknownService, path)
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// Sitemap renders sitemap.xml for paths, using absolute URLs.
func (s *Site) Sitemap(paths []string) ([]byte, error) {
	set := urlset{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range paths {
		set.URLs = append(set.URLs, sitemapURL{Loc: s.absURL(p)})
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("pages: encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func isContentKind(kind string) bool {
	for _, k := range ContentKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}
